package components

import (
	"autocare-api/internal/infra/readstore"
	"autocare-api/internal/infra/repository"
	"autocare-api/internal/usecase"
	"autocare-api/internal/usecase/commands"
	"autocare-api/internal/usecase/notifier"
	"autocare-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Notification
		fx.Annotate(
			readstore.NewNotificationReadStore,
			fx.As(new(queries.NotificationReadStore)),
		),
		// ServiceRequest: read views plus the consumer's snapshot source
		fx.Annotate(
			readstore.NewServiceRequestReadStore,
			fx.As(new(queries.ServiceRequestReadStore)),
			fx.As(new(notifier.ServiceRequestSource)),
		),
		// User: auth reads plus the consumer's role directory
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(usecase.AuthUserReadStore)),
			fx.As(new(notifier.RoleDirectory)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewServiceRequestRepository,
			fx.As(new(commands.ServiceRequestRepository)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(notifier.NotificationStore)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserLoginRecorder)),
		),
	),
)
