// Package store holds the in-memory catalog gateway.
package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"kiosk/internal/catalog/models"
	id "kiosk/pkg/domain"
	"kiosk/pkg/platform/sentinel"
)

type InMemory struct {
	mu             sync.RWMutex
	categories     map[id.CategoryID]models.Category
	categoryByName map[string]id.CategoryID
	products       map[id.ProductID]models.Product
}

func NewInMemory() *InMemory {
	return &InMemory{
		categories:     make(map[id.CategoryID]models.Category),
		categoryByName: make(map[string]id.CategoryID),
		products:       make(map[id.ProductID]models.Product),
	}
}

// CreateCategoryIfNameAvailable enforces case-insensitive name uniqueness per
// store.
func (s *InMemory) CreateCategoryIfNameAvailable(_ context.Context, category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := category.StoreID.String() + "/" + strings.ToLower(category.Name)
	if _, taken := s.categoryByName[key]; taken {
		return fmt.Errorf("category name: %w", sentinel.ErrAlreadyUsed)
	}
	s.categories[category.ID] = *category
	s.categoryByName[key] = category.ID
	return nil
}

func (s *InMemory) FindCategoryByID(_ context.Context, categoryID id.CategoryID) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[categoryID]
	if !ok {
		return nil, fmt.Errorf("category %s: %w", categoryID, sentinel.ErrNotFound)
	}
	return &c, nil
}

func (s *InMemory) CreateProduct(_ context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[product.ID] = *product
	return nil
}

func (s *InMemory) FindProductByID(_ context.Context, productID id.ProductID) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[productID]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", productID, sentinel.ErrNotFound)
	}
	return &p, nil
}

func (s *InMemory) ListProductsByCategory(_ context.Context, categoryID id.CategoryID) ([]*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Product
	for _, p := range s.products {
		if p.CategoryID == categoryID {
			out = append(out, &p)
		}
	}
	return out, nil
}
