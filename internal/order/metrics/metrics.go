package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the order module.
type Metrics struct {
	OrdersCreated    prometheus.Counter
	OrderTransitions *prometheus.CounterVec
	ItemsRemoved     prometheus.Counter
	OrderValue       prometheus.Histogram
}

// New registers the order metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		OrdersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "kiosk_orders_created_total",
			Help: "Total number of orders created",
		}),
		OrderTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kiosk_order_transitions_total",
			Help: "Order status transitions by target status",
		}, []string{"status"}),
		ItemsRemoved: factory.NewCounter(prometheus.CounterOpts{
			Name: "kiosk_order_items_removed_total",
			Help: "Total number of items removed from pending orders",
		}),
		OrderValue: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "kiosk_order_value",
			Help:    "Total price of orders at creation",
			Buckets: []float64{5, 10, 20, 35, 50, 75, 100, 150, 250},
		}),
	}
}

// IncrementOrderCreated records a new order and its total.
func (m *Metrics) IncrementOrderCreated(total float64) {
	m.OrdersCreated.Inc()
	m.OrderValue.Observe(total)
}

// IncrementTransition records a successful status change.
func (m *Metrics) IncrementTransition(status string) {
	m.OrderTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) IncrementItemRemoved() {
	m.ItemsRemoved.Inc()
}
