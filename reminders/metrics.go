package reminders

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	remindersSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "health_tracker_reminders_sent_total",
		Help: "Medication reminders handed to the notifier successfully.",
	})
	reminderFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "health_tracker_reminder_failures_total",
		Help: "Medication reminders that were skipped because of an error, by stage.",
	}, []string{"stage"})
	dosesMarked = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "health_tracker_doses_marked_total",
		Help: "Doses recorded as taken, by entry path.",
	}, []string{"source"})
)
