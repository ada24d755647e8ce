package service

import (
	"context"
	"errors"

	ordermetrics "kiosk/internal/order/metrics"
	"kiosk/internal/order/models"
	"kiosk/pkg/document"
	id "kiosk/pkg/domain"
)

// OrderStore persists order aggregates. FindByID returns sentinel.ErrNotFound
// for unknown orders. Save is an upsert with last-write-wins semantics.
type OrderStore interface {
	FindByID(ctx context.Context, orderID id.OrderID) (*models.Order, error)
	ListByStore(ctx context.Context, storeID id.StoreID, statuses ...models.OrderStatus) ([]*models.Order, error)
	Save(ctx context.Context, order *models.Order) error
}

// ProductSnapshot is the part of a catalog product an order line needs.
type ProductSnapshot struct {
	ID      id.ProductID
	StoreID id.StoreID
	Price   float64
}

// ProductCatalog resolves products for order lines.
type ProductCatalog interface {
	FindProduct(ctx context.Context, productID id.ProductID) (ProductSnapshot, error)
}

// StoreDirectory answers questions about stores and their totems.
type StoreDirectory interface {
	CheckStore(ctx context.Context, storeID id.StoreID) error
	FindTotemStore(ctx context.Context, totemID id.TotemID) (id.StoreID, error)
}

// CustomerDirectory resolves customers referenced by orders.
type CustomerDirectory interface {
	CheckCustomer(ctx context.Context, customerID id.CustomerID) error
	FindCustomerIDByCPF(ctx context.Context, cpf document.CPF) (id.CustomerID, error)
}

// Service implements the order use cases.
type Service struct {
	orders    OrderStore
	products  ProductCatalog
	stores    StoreDirectory
	customers CustomerDirectory
	metrics   *ordermetrics.Metrics
}

type Option func(*Service)

func WithMetrics(m *ordermetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs the order service. Every gateway is required.
func New(orders OrderStore, products ProductCatalog, stores StoreDirectory, customers CustomerDirectory, opts ...Option) (*Service, error) {
	if orders == nil {
		return nil, errors.New("orders store is required")
	}
	if products == nil {
		return nil, errors.New("product catalog is required")
	}
	if stores == nil {
		return nil, errors.New("store directory is required")
	}
	if customers == nil {
		return nil, errors.New("customer directory is required")
	}
	s := &Service{orders: orders, products: products, stores: stores, customers: customers}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Service) incrementOrderCreated(total float64) {
	if s.metrics != nil {
		s.metrics.IncrementOrderCreated(total)
	}
}

func (s *Service) incrementTransition(status models.OrderStatus) {
	if s.metrics != nil {
		s.metrics.IncrementTransition(status.String())
	}
}

func (s *Service) incrementItemRemoved() {
	if s.metrics != nil {
		s.metrics.IncrementItemRemoved()
	}
}
