package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the payment module.
type Metrics struct {
	PaymentsCreated  *prometheus.CounterVec
	PaymentsSettled  *prometheus.CounterVec
	ChargeDuration   prometheus.Histogram
	ChargesRequested *prometheus.CounterVec
}

// New registers the payment metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PaymentsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kiosk_payments_created_total",
			Help: "Total number of payments created by payment type",
		}, []string{"type"}),
		PaymentsSettled: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kiosk_payments_settled_total",
			Help: "Payments leaving PENDING by outcome",
		}, []string{"outcome"}),
		ChargeDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "kiosk_payment_charge_duration_seconds",
			Help:    "Duration of external charge requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		ChargesRequested: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kiosk_payment_charges_total",
			Help: "External charge requests by result",
		}, []string{"result"}),
	}
}

func (m *Metrics) IncrementPaymentCreated(paymentType string) {
	m.PaymentsCreated.WithLabelValues(paymentType).Inc()
}

// IncrementSettled records an approval or refusal.
func (m *Metrics) IncrementSettled(outcome string) {
	m.PaymentsSettled.WithLabelValues(outcome).Inc()
}

// ObserveCharge records the duration and result of a provider call.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveCharge(start time.Time, err error) {
	m.ChargeDuration.Observe(time.Since(start).Seconds())
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.ChargesRequested.WithLabelValues(result).Inc()
}
