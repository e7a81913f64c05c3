package api

import (
	"net/http"

	reqdto "autocare-api/internal/handler/dto/request"
	resdto "autocare-api/internal/handler/dto/response"
	"autocare-api/internal/handler/middleware"
	"autocare-api/internal/pkg/errs"
	"autocare-api/internal/usecase/commands"
	"autocare-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ServiceRequestHandler struct {
	serviceRequestCommands commands.ServiceRequestCommands
	serviceRequestQueries  queries.ServiceRequestQueries
}

func NewServiceRequestHandler(
	serviceRequestCommands commands.ServiceRequestCommands,
	serviceRequestQueries queries.ServiceRequestQueries,
) *ServiceRequestHandler {
	return &ServiceRequestHandler{
		serviceRequestCommands: serviceRequestCommands,
		serviceRequestQueries:  serviceRequestQueries,
	}
}

// @Summary Create service request
// @Description Book a new vehicle service request
// @Tags service-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateServiceRequestRequest true "Service request"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /service-requests [post]
func (h *ServiceRequestHandler) Create(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.serviceRequestCommands.Create(c.Request.Context(), actor, commands.CreateServiceRequestParams{
		CustomerID:    actor.ID,
		VehicleDesc:   req.VehicleDesc,
		ProblemDesc:   req.ProblemDesc,
		RequestedDate: req.RequestedDate,
	})
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Get service request
// @Description Get service request by ID
// @Tags service-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service request ID"
// @Success 200 {object} resdto.ServiceRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /service-requests/{id} [get]
func (h *ServiceRequestHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service request ID format",
		})
		return
	}

	view, err := h.serviceRequestQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Service request not found",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromServiceRequestView(view))
}

// @Summary List service requests
// @Description List service requests visible to the current user
// @Tags service-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ServiceRequestListResponse
// @Failure 401 {object} map[string]string
// @Router /service-requests [get]
func (h *ServiceRequestHandler) List(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.serviceRequestQueries.ListForActor(c.Request.Context(), actor.ID, actor.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.ServiceRequestListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromServiceRequestListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Update status
// @Description Transition a service request to a new status
// @Tags service-requests
// @Accept json
// @Security BearerAuth
// @Param id path string true "Service request ID"
// @Param request body reqdto.UpdateStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /service-requests/{id}/status [patch]
func (h *ServiceRequestHandler) UpdateStatus(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service request ID format",
		})
		return
	}

	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.serviceRequestCommands.UpdateStatus(c.Request.Context(), actor, commands.UpdateStatusParams{
		RequestID: id,
		NewStatus: req.Status,
	})
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Assign technician
// @Description Assign a technician to a service request
// @Tags service-requests
// @Accept json
// @Security BearerAuth
// @Param id path string true "Service request ID"
// @Param request body reqdto.AssignTechnicianRequest true "Technician assignment"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /service-requests/{id}/technician [patch]
func (h *ServiceRequestHandler) AssignTechnician(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service request ID format",
		})
		return
	}

	var req reqdto.AssignTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.serviceRequestCommands.AssignTechnician(c.Request.Context(), actor, commands.AssignTechnicianParams{
		RequestID:    id,
		TechnicianID: req.TechnicianID,
	})
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Reschedule service request
// @Description Change the requested date of a service request
// @Tags service-requests
// @Accept json
// @Security BearerAuth
// @Param id path string true "Service request ID"
// @Param request body reqdto.RescheduleRequest true "New requested date"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /service-requests/{id}/schedule [patch]
func (h *ServiceRequestHandler) Reschedule(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service request ID format",
		})
		return
	}

	var req reqdto.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.serviceRequestCommands.Reschedule(c.Request.Context(), actor, commands.RescheduleParams{
		RequestID:     id,
		RequestedDate: req.RequestedDate,
	})
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Cancel service request
// @Description Cancel a service request
// @Tags service-requests
// @Security BearerAuth
// @Param id path string true "Service request ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /service-requests/{id} [delete]
func (h *ServiceRequestHandler) Cancel(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid service request ID format",
		})
		return
	}

	if err := h.serviceRequestCommands.Cancel(c.Request.Context(), actor, id); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// respondCommandError matches with errs.Is because the command layer attaches
// its sentinels with errs.Mark, which the standard errors.Is cannot see.
func (h *ServiceRequestHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrServiceRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Service request not found",
		})
	case errs.Is(err, commands.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
	case errs.Is(err, commands.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid status",
		})
	case errs.Is(err, commands.ErrInvalidTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid status transition",
		})
	case errs.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}

func currentActor(c *gin.Context) (commands.Actor, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return commands.Actor{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return commands.Actor{}, false
	}
	return commands.Actor{ID: userID, Role: role}, true
}
