package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of database operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "collection"},
	)

	// Reminder Metrics
	ReminderOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminder_operations_total",
			Help: "Total number of reminder operations",
		},
		[]string{"operation"}, // create, load, delete
	)

	// Authentication Metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"status", "type"}, // success/failure, login/register
	)

	// Error Metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by type and cause",
		},
		[]string{"type", "cause"},
	)
)

// TrackDBOperation returns a timer observing into the DB duration
// histogram. Use with defer:
//
//	timer := utils.TrackDBOperation("find", "reminders")
//	defer timer.ObserveDuration()
func TrackDBOperation(operation, collection string) *prometheus.Timer {
	return prometheus.NewTimer(DBOperationDuration.WithLabelValues(operation, collection))
}

func TrackError(errorType, cause string) {
	ErrorsTotal.WithLabelValues(errorType, cause).Inc()
}

func TrackReminderOperation(operation string) {
	ReminderOperationsTotal.WithLabelValues(operation).Inc()
}

func TrackAuthAttempt(status, authType string) {
	AuthAttempts.WithLabelValues(status, authType).Inc()
}
