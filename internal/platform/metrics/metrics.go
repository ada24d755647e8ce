package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the boundary metrics shared by every use case.
type Metrics struct {
	OperationDuration *prometheus.HistogramVec
	OperationsTotal   *prometheus.CounterVec
}

// New creates and registers the boundary metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "kiosk_operation_duration_seconds",
			Help:    "Latency of use case operations by operation and outcome code",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"operation", "code"}),
		OperationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kiosk_operations_total",
			Help: "Total number of use case operations by operation and outcome code",
		}, []string{"operation", "code"}),
	}
}

// ObserveOperation records one finished operation. An empty code means success.
func (m *Metrics) ObserveOperation(operation, code string, start time.Time) {
	if code == "" {
		code = "ok"
	}
	m.OperationDuration.WithLabelValues(operation, code).Observe(time.Since(start).Seconds())
	m.OperationsTotal.WithLabelValues(operation, code).Inc()
}
