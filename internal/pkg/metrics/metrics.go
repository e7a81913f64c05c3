package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QueueDepth tracks the number of change events waiting in the in-process
	// queue. The queue is unbounded, so sustained growth here is the primary
	// signal of a stalled or failing consumer.
	QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "notifier_queue_depth",
		Help: "Current number of change events waiting in the notification queue",
	})

	// EventsConsumed counts dequeued change events by outcome (processed/dropped).
	EventsConsumed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notifier_events_consumed_total",
		Help: "Total number of change events consumed from the notification queue",
	}, []string{"outcome"})

	// NotificationsCreated counts notification rows persisted, by recipient role.
	NotificationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notifier_notifications_created_total",
		Help: "Total number of notifications persisted",
	}, []string{"role"})

	// DuplicatesSuppressed counts notifications skipped by the dedup guard.
	DuplicatesSuppressed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "notifier_duplicates_suppressed_total",
		Help: "Total number of notifications suppressed by the deduplication window",
	})
)
