package components

import (
	"context"
	"log/slog"

	"autocare-api/internal/domain/notification"
	"autocare-api/internal/pkg/clock"
	"autocare-api/internal/pkg/config"
	"autocare-api/internal/pkg/eventq"
	"autocare-api/internal/usecase/notifier"

	"go.uber.org/fx"
)

// NotifierModule wires the service-change notification pipeline: one shared
// unbounded queue, a fire-and-forget publisher for the command side, and a
// single consumer goroutine bound to the application lifecycle.
var NotifierModule = fx.Module("notifier",
	fx.Provide(
		eventq.New[notification.ChangeEvent],
		fx.Annotate(
			notifier.NewQueuePublisher,
			fx.As(new(notifier.Publisher)),
		),
		NewConsumer,
	),
	fx.Invoke(StartConsumer),
)

func NewConsumer(
	queue *eventq.Queue[notification.ChangeEvent],
	requests notifier.ServiceRequestSource,
	roles notifier.RoleDirectory,
	store notifier.NotificationStore,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) *notifier.Consumer {
	return notifier.NewConsumer(queue, requests, roles, store, clk, cfg.Notifier.DedupWindow, logger)
}

// StartConsumer runs the consumer for the lifetime of the application.
// Stop cancels its context and waits for the drain to finish, so nothing
// already queued at shutdown is silently discarded.
func StartConsumer(lc fx.Lifecycle, consumer *notifier.Consumer) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				consumer.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
