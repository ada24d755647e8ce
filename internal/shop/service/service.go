package service

import (
	"context"
	"errors"

	shopmetrics "kiosk/internal/shop/metrics"
	"kiosk/internal/shop/models"
	"kiosk/internal/shop/secrets"
	id "kiosk/pkg/domain"
)

// ShopStore persists stores and totems. Creation methods return errors
// wrapping sentinel.ErrAlreadyUsed for taken unique keys; lookups return
// sentinel.ErrNotFound.
type ShopStore interface {
	CreateStoreIfCNPJAvailable(ctx context.Context, store *models.Store) error
	FindStoreByID(ctx context.Context, storeID id.StoreID) (*models.Store, error)
	CreateTotem(ctx context.Context, totem *models.Totem) error
	FindTotemByID(ctx context.Context, totemID id.TotemID) (*models.Totem, error)
	FindTotemByTokenDigest(ctx context.Context, digest string) (*models.Totem, error)
	ListTotems(ctx context.Context, storeID id.StoreID) ([]*models.Totem, error)
}

// Service orchestrates store and totem management.
type Service struct {
	shops         ShopStore
	metrics       *shopmetrics.Metrics
	generateToken func() (string, error)
}

type Option func(*Service)

func WithMetrics(m *shopmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTokenGenerator replaces the random totem token source.
func WithTokenGenerator(fn func() (string, error)) Option {
	return func(s *Service) {
		s.generateToken = fn
	}
}

func New(shops ShopStore, opts ...Option) (*Service, error) {
	if shops == nil {
		return nil, errors.New("shop store is required")
	}
	s := &Service{shops: shops, generateToken: secrets.Generate}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}
