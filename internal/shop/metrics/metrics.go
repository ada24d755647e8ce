package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the shop module.
// Tracks store/totem creation counts and the totem resolution path.
type Metrics struct {
	StoresCreated        prometheus.Counter
	TotemsCreated        prometheus.Counter
	ResolveTotemDuration prometheus.Histogram
}

// New registers the shop metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		StoresCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "kiosk_stores_created_total",
			Help: "Total number of stores created",
		}),
		TotemsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "kiosk_totems_created_total",
			Help: "Total number of totems registered",
		}),
		ResolveTotemDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "kiosk_resolve_totem_duration_seconds",
			Help:    "Duration of GetTotemByToken operations (totem authentication path)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

func (m *Metrics) IncrementStoreCreated() {
	m.StoresCreated.Inc()
}

func (m *Metrics) IncrementTotemCreated() {
	m.TotemsCreated.Inc()
}

// ObserveResolveTotem records the duration of a GetTotemByToken operation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveResolveTotem(start time.Time) {
	m.ResolveTotemDuration.Observe(time.Since(start).Seconds())
}
