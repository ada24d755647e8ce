package service

import (
	"context"
	"errors"

	paymentmetrics "kiosk/internal/payment/metrics"
	"kiosk/internal/payment/models"
	id "kiosk/pkg/domain"
)

// PaymentStore persists payment aggregates. Lookups return
// sentinel.ErrNotFound for unknown keys; Save returns sentinel.ErrAlreadyUsed
// when another payment already holds the same external id.
type PaymentStore interface {
	FindByID(ctx context.Context, paymentID id.PaymentID) (*models.Payment, error)
	FindByExternalID(ctx context.Context, externalID string) (*models.Payment, error)
	ListByOrder(ctx context.Context, orderID id.OrderID) ([]*models.Payment, error)
	Save(ctx context.Context, payment *models.Payment) error
}

// OrderSnapshot is the part of an order a payment needs.
type OrderSnapshot struct {
	ID      id.OrderID
	StoreID id.StoreID
	Total   float64
	Pending bool
}

// OrderReader loads the order a payment is created for.
type OrderReader interface {
	FindOrder(ctx context.Context, orderID id.OrderID) (OrderSnapshot, error)
}

// ChargeRequest asks the payment provider to open a charge.
type ChargeRequest struct {
	PaymentID id.PaymentID
	OrderID   id.OrderID
	Type      id.PaymentType
	Amount    float64
}

// Charge is the provider's answer to a ChargeRequest.
type Charge struct {
	ExternalID string
	Platform   id.PaymentPlatform
	QRCode     string
}

// Provider opens charges with the external payment platform. It returns
// sentinel.ErrUnavailable when the platform cannot be reached.
type Provider interface {
	CreateCharge(ctx context.Context, req ChargeRequest) (Charge, error)
}

// Service implements the payment use cases.
type Service struct {
	payments PaymentStore
	orders   OrderReader
	provider Provider
	metrics  *paymentmetrics.Metrics
}

type Option func(*Service)

func WithMetrics(m *paymentmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs the payment service.
func New(payments PaymentStore, orders OrderReader, provider Provider, opts ...Option) (*Service, error) {
	if payments == nil {
		return nil, errors.New("payments store is required")
	}
	if orders == nil {
		return nil, errors.New("order reader is required")
	}
	if provider == nil {
		return nil, errors.New("payment provider is required")
	}
	s := &Service{payments: payments, orders: orders, provider: provider}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}
