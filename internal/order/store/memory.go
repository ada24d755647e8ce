// Package store holds the in-memory order gateway.
package store

import (
	"context"
	"fmt"
	"sync"

	"kiosk/internal/order/models"
	id "kiosk/pkg/domain"
	"kiosk/pkg/platform/sentinel"
)

// InMemory keeps order records keyed by order id. Aggregates are converted to
// records on Save and rehydrated on every read, so callers never share state
// with the store.
type InMemory struct {
	mu     sync.RWMutex
	orders map[string]models.OrderRecord
}

func NewInMemory() *InMemory {
	return &InMemory{orders: make(map[string]models.OrderRecord)}
}

func (s *InMemory) FindByID(_ context.Context, orderID id.OrderID) (*models.Order, error) {
	s.mu.RLock()
	rec, ok := s.orders[orderID.String()]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("order %s: %w", orderID, sentinel.ErrNotFound)
	}
	return models.FromRecord(rec)
}

// ListByStore returns the store's orders with the given statuses, or all of
// them when no status is given.
func (s *InMemory) ListByStore(_ context.Context, storeID id.StoreID, statuses ...models.OrderStatus) ([]*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]bool, len(statuses))
	for _, st := range statuses {
		wanted[st.String()] = true
	}
	var out []*models.Order
	for _, rec := range s.orders {
		if rec.StoreID != storeID.String() {
			continue
		}
		if len(wanted) > 0 && !wanted[rec.Status] {
			continue
		}
		order, err := models.FromRecord(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, order)
	}
	return out, nil
}

// Save upserts the order. Concurrent saves of the same order are last write
// wins.
func (s *InMemory) Save(_ context.Context, order *models.Order) error {
	rec := order.ToRecord()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[rec.ID] = rec
	return nil
}
