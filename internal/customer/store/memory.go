// Package store holds the in-memory customer gateway.
package store

import (
	"context"
	"fmt"
	"sync"

	"kiosk/internal/customer/models"
	"kiosk/pkg/document"
	id "kiosk/pkg/domain"
	"kiosk/pkg/platform/sentinel"
)

type InMemory struct {
	mu        sync.RWMutex
	customers map[id.CustomerID]models.Customer
	byCPF     map[string]id.CustomerID
}

func NewInMemory() *InMemory {
	return &InMemory{
		customers: make(map[id.CustomerID]models.Customer),
		byCPF:     make(map[string]id.CustomerID),
	}
}

// CreateIfCPFAvailable stores a new customer unless the CPF is already
// registered.
func (s *InMemory) CreateIfCPFAvailable(_ context.Context, customer *models.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := customer.CPF.String()
	if _, taken := s.byCPF[key]; taken {
		return fmt.Errorf("cpf: %w", sentinel.ErrAlreadyUsed)
	}
	s.customers[customer.ID] = *customer
	s.byCPF[key] = customer.ID
	return nil
}

func (s *InMemory) FindByID(_ context.Context, customerID id.CustomerID) (*models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.customers[customerID]
	if !ok {
		return nil, fmt.Errorf("customer %s: %w", customerID, sentinel.ErrNotFound)
	}
	return &c, nil
}

func (s *InMemory) FindByCPF(_ context.Context, cpf document.CPF) (*models.Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customerID, ok := s.byCPF[cpf.String()]
	if !ok {
		return nil, fmt.Errorf("customer by cpf: %w", sentinel.ErrNotFound)
	}
	c := s.customers[customerID]
	return &c, nil
}
