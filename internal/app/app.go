// Package app wires the kiosk contexts together and owns the boundary every
// controller calls through.
//
// New builds the whole object graph once at startup: in-memory gateways, the
// cross-context adapters, the use case services and their metrics. Nothing in
// the graph is a process-wide singleton, so tests build as many apps as they
// like, each with its own registry.
package app

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	catalogservice "kiosk/internal/catalog/service"
	catalogstore "kiosk/internal/catalog/store"
	customerservice "kiosk/internal/customer/service"
	customerstore "kiosk/internal/customer/store"
	ordermetrics "kiosk/internal/order/metrics"
	orderservice "kiosk/internal/order/service"
	orderstore "kiosk/internal/order/store"
	paymentmetrics "kiosk/internal/payment/metrics"
	"kiosk/internal/payment/provider"
	paymentservice "kiosk/internal/payment/service"
	paymentstore "kiosk/internal/payment/store"
	"kiosk/internal/platform/config"
	platformmetrics "kiosk/internal/platform/metrics"
	shopmetrics "kiosk/internal/shop/metrics"
	shopservice "kiosk/internal/shop/service"
	shopstore "kiosk/internal/shop/store"
)

const tracerName = "kiosk/internal/app"

// Deps are the process level collaborators the container does not build.
type Deps struct {
	Config   config.Server
	Logger   zerolog.Logger
	Registry *prometheus.Registry
	Clock    func() time.Time
}

// App is the dependency injection container.
type App struct {
	Orders    *orderservice.Service
	Payments  *paymentservice.Service
	Customers *customerservice.Service
	Shops     *shopservice.Service
	Catalog   *catalogservice.Service

	// Provider is the payment platform stand-in; exposed so operators and
	// tests can simulate an outage.
	Provider *provider.Fake
	Registry *prometheus.Registry

	log     zerolog.Logger
	metrics *platformmetrics.Metrics
	tracer  trace.Tracer
	clock   func() time.Time
}

func New(deps Deps) (*App, error) {
	if deps.Registry == nil {
		return nil, errors.New("metrics registry is required")
	}
	if !deps.Config.DefaultPlatform.IsValid() {
		return nil, errors.New("default payment platform is required")
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	shops := shopstore.NewInMemory()
	catalog := catalogstore.NewInMemory()
	customers := customerstore.NewInMemory()
	orders := orderstore.NewInMemory()
	payments := paymentstore.NewInMemory()
	fake := provider.NewFake(deps.Config.DefaultPlatform)

	shopSvc, err := shopservice.New(shops, shopservice.WithMetrics(shopmetrics.New(deps.Registry)))
	if err != nil {
		return nil, err
	}
	catalogSvc, err := catalogservice.New(catalog, storeDirectory{shops: shops})
	if err != nil {
		return nil, err
	}
	customerSvc, err := customerservice.New(customers)
	if err != nil {
		return nil, err
	}
	orderSvc, err := orderservice.New(
		orders,
		productCatalog{catalog: catalog},
		storeDirectory{shops: shops},
		customerDirectory{customers: customers},
		orderservice.WithMetrics(ordermetrics.New(deps.Registry)),
	)
	if err != nil {
		return nil, err
	}
	paymentSvc, err := paymentservice.New(
		payments,
		orderReader{orders: orders},
		fake,
		paymentservice.WithMetrics(paymentmetrics.New(deps.Registry)),
	)
	if err != nil {
		return nil, err
	}

	return &App{
		Orders:    orderSvc,
		Payments:  paymentSvc,
		Customers: customerSvc,
		Shops:     shopSvc,
		Catalog:   catalogSvc,
		Provider:  fake,
		Registry:  deps.Registry,
		log:       deps.Logger,
		metrics:   platformmetrics.New(deps.Registry),
		tracer:    otel.Tracer(tracerName),
		clock:     clock,
	}, nil
}
