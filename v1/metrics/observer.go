package metrics

import (
	"github.com/vektorlabs/embeddings/v1/observability"
)

var _ observability.Observer = (*Metrics)(nil)

// ObserveOperation records one completed embedding operation.
//
// It increments the operation counter (status derived from the error),
// observes the duration, and observes the batch size when present.
func (m *Metrics) ObserveOperation(op observability.OperationContext) {
	status := "success"
	if op.Error != nil {
		status = "error"
	}

	m.operationsTotal.WithLabelValues(op.Component, op.Operation, status).Inc()
	m.operationDuration.WithLabelValues(op.Component, op.Operation).Observe(op.Duration.Seconds())

	if op.Size > 0 {
		m.batchSize.WithLabelValues(op.Component).Observe(float64(op.Size))
	}
}
