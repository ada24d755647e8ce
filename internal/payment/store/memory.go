// Package store holds the in-memory payment gateway.
package store

import (
	"context"
	"fmt"
	"sync"

	"kiosk/internal/payment/models"
	id "kiosk/pkg/domain"
	"kiosk/pkg/platform/sentinel"
)

// InMemory keeps payment records keyed by payment id with a secondary index
// on the external id.
type InMemory struct {
	mu         sync.RWMutex
	payments   map[string]models.PaymentRecord
	byExternal map[string]string
}

func NewInMemory() *InMemory {
	return &InMemory{
		payments:   make(map[string]models.PaymentRecord),
		byExternal: make(map[string]string),
	}
}

func (s *InMemory) FindByID(_ context.Context, paymentID id.PaymentID) (*models.Payment, error) {
	s.mu.RLock()
	rec, ok := s.payments[paymentID.String()]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("payment %s: %w", paymentID, sentinel.ErrNotFound)
	}
	return models.FromRecord(rec)
}

func (s *InMemory) FindByExternalID(_ context.Context, externalID string) (*models.Payment, error) {
	s.mu.RLock()
	rec, ok := s.payments[s.byExternal[externalID]]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("payment with external id %q: %w", externalID, sentinel.ErrNotFound)
	}
	return models.FromRecord(rec)
}

// ListByOrder returns every payment attempt for an order.
func (s *InMemory) ListByOrder(_ context.Context, orderID id.OrderID) ([]*models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Payment
	for _, rec := range s.payments {
		if rec.OrderID != orderID.String() {
			continue
		}
		payment, err := models.FromRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, payment)
	}
	return out, nil
}

// Save upserts the payment. An external id held by another payment is
// rejected with sentinel.ErrAlreadyUsed.
func (s *InMemory) Save(_ context.Context, payment *models.Payment) error {
	rec := payment.ToRecord()
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.ExternalID != "" {
		if owner, taken := s.byExternal[rec.ExternalID]; taken && owner != rec.ID {
			return fmt.Errorf("external id %q: %w", rec.ExternalID, sentinel.ErrAlreadyUsed)
		}
		s.byExternal[rec.ExternalID] = rec.ID
	}
	s.payments[rec.ID] = rec
	return nil
}
