// Package metrics exposes Prometheus counters for board operations, the
// fees they collect and the events they emit.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/feedboard-dev/feedboard/internal/domain"
)

var (
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedboard_operations_total",
			Help: "Board operations by outcome. Status is ok or a stable error code.",
		},
		[]string{"operation", "status"},
	)

	feeUnitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedboard_fee_units_total",
			Help: "Fee units collected by the platform account per operation.",
		},
		[]string{"operation"},
	)

	eventsEmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedboard_events_emitted_total",
			Help: "Events handed to the emitter by type and outcome.",
		},
		[]string{"type", "status"},
	)
)

// RecordOperation counts one operation attempt. Error codes are a small
// closed set, so using them as a label is safe.
func RecordOperation(op domain.Operation, err error) {
	status := "ok"
	if err != nil {
		status = domain.CodeOf(err)
	}
	operationsTotal.WithLabelValues(op.String(), status).Inc()
}

// RecordFee adds the units collected by a successful operation.
func RecordFee(op domain.Operation, amount int64) {
	if amount <= 0 {
		return
	}
	feeUnitsTotal.WithLabelValues(op.String()).Add(float64(amount))
}

// RecordEvent counts one emission attempt.
func RecordEvent(eventType string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	eventsEmittedTotal.WithLabelValues(eventType, status).Inc()
}
