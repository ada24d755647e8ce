package models

import (
	"strings"
	"time"

	id "kiosk/pkg/domain"
	dErrors "kiosk/pkg/domain-errors"
)

const (
	maxNameLength        = 128
	maxDescriptionLength = 1024
)

// Category groups a store's products on the totem menu. Names are unique per
// store (enforced by the gateway).
type Category struct {
	ID        id.CategoryID
	StoreID   id.StoreID
	Name      string
	CreatedAt time.Time
}

func NewCategory(categoryID id.CategoryID, storeID id.StoreID, name string, now time.Time) (*Category, error) {
	if storeID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Store id is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Category name is required")
	}
	if len(name) > maxNameLength {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Category name must be 128 characters or less")
	}
	return &Category{ID: categoryID, StoreID: storeID, Name: name, CreatedAt: now}, nil
}

// Product is an item a store sells.
//
// Invariants:
//   - Price is strictly positive
//   - the product and its category belong to the same store
type Product struct {
	ID          id.ProductID
	StoreID     id.StoreID
	CategoryID  id.CategoryID
	Name        string
	Description string
	Price       float64
	CreatedAt   time.Time
}

func NewProduct(productID id.ProductID, category *Category, name, description string, price float64, now time.Time) (*Product, error) {
	if category == nil {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Category is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Product name is required")
	}
	if len(name) > maxNameLength {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Product name must be 128 characters or less")
	}
	description = strings.TrimSpace(description)
	if len(description) > maxDescriptionLength {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Product description must be 1024 characters or less")
	}
	if price <= 0 {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Product price must be greater than zero")
	}
	return &Product{
		ID:          productID,
		StoreID:     category.StoreID,
		CategoryID:  category.ID,
		Name:        name,
		Description: description,
		Price:       price,
		CreatedAt:   now,
	}, nil
}
