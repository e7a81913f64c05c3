package notifier

import (
	"autocare-api/internal/domain/notification"
	"autocare-api/internal/pkg/eventq"
	"autocare-api/internal/pkg/metrics"
)

// Publisher is the producer-facing side of the pipeline. Publishing is
// fire-and-forget: it cannot fail, never blocks on the consumer, and gives
// no signal about whether a notification will ultimately be stored.
type Publisher interface {
	Publish(ev notification.ChangeEvent)
}

type QueuePublisher struct {
	queue *eventq.Queue[notification.ChangeEvent]
}

func NewQueuePublisher(queue *eventq.Queue[notification.ChangeEvent]) *QueuePublisher {
	return &QueuePublisher{queue: queue}
}

func (p *QueuePublisher) Publish(ev notification.ChangeEvent) {
	p.queue.Publish(ev)
	metrics.QueueDepth.Set(float64(p.queue.Len()))
}
