package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"kiosk/internal/catalog/store"
	id "kiosk/pkg/domain"
	dErrors "kiosk/pkg/domain-errors"
	"kiosk/pkg/platform/sentinel"
	"kiosk/pkg/requestcontext"
)

// knownStores is a StoreChecker backed by a fixed set of store ids.
type knownStores map[id.StoreID]bool

func (k knownStores) CheckStore(_ context.Context, storeID id.StoreID) error {
	if !k[storeID] {
		return fmt.Errorf("store %s: %w", storeID, sentinel.ErrNotFound)
	}
	return nil
}

type CatalogServiceSuite struct {
	suite.Suite
	service *Service
	ctx     context.Context
	storeA  id.StoreID
	storeB  id.StoreID
}

func TestCatalogServiceSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceSuite))
}

func (s *CatalogServiceSuite) SetupTest() {
	s.storeA = id.NewStoreID()
	s.storeB = id.NewStoreID()
	var err error
	s.service, err = New(store.NewInMemory(), knownStores{s.storeA: true, s.storeB: true})
	s.Require().NoError(err)
	s.ctx = requestcontext.WithTime(context.Background(), time.Date(2024, 11, 5, 10, 0, 0, 0, time.UTC))
}

func (s *CatalogServiceSuite) category(storeID id.StoreID, name string) *CategoryOutput {
	out, err := s.service.CreateCategory(s.ctx, CreateCategoryInput{StoreID: storeID.String(), Name: name})
	s.Require().NoError(err)
	return out
}

func (s *CatalogServiceSuite) TestNew() {
	_, err := New(nil, knownStores{})
	s.Require().Error(err)
	s.Contains(err.Error(), "catalog store is required")

	_, err = New(store.NewInMemory(), nil)
	s.Require().Error(err)
	s.Contains(err.Error(), "store checker is required")
}

func (s *CatalogServiceSuite) TestCreateCategory() {
	s.Run("creates a category", func() {
		out := s.category(s.storeA, " Drinks ")
		s.Equal("Drinks", out.Name)
	})

	s.Run("name is unique per store", func() {
		_, err := s.service.CreateCategory(s.ctx, CreateCategoryInput{StoreID: s.storeA.String(), Name: "drinks"})
		s.Require().Error(err)
		s.Equal("Category name already in use", err.Error())
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))

		s.category(s.storeB, "Drinks")
	})

	s.Run("unknown store", func() {
		_, err := s.service.CreateCategory(s.ctx, CreateCategoryInput{StoreID: id.NewStoreID().String(), Name: "Food"})
		s.Require().Error(err)
		s.Equal("Store not found", err.Error())
	})
}

func (s *CatalogServiceSuite) TestProducts() {
	drinks := s.category(s.storeA, "Drinks")

	s.Run("creates and reads a product", func() {
		created, err := s.service.CreateProduct(s.ctx, CreateProductInput{
			StoreID:     s.storeA.String(),
			CategoryID:  drinks.ID,
			Name:        "Soda",
			Description: "350ml can",
			Price:       6.5,
		})
		s.Require().NoError(err)
		s.Equal(s.storeA.String(), created.StoreID)

		found, err := s.service.GetProduct(s.ctx, created.ID)
		s.Require().NoError(err)
		s.Equal(created, found)
	})

	s.Run("price must be positive", func() {
		_, err := s.service.CreateProduct(s.ctx, CreateProductInput{
			StoreID: s.storeA.String(), CategoryID: drinks.ID, Name: "Free water", Price: 0,
		})
		s.Require().Error(err)
		s.Equal("Product price must be greater than zero", err.Error())
	})

	s.Run("category must belong to the store", func() {
		_, err := s.service.CreateProduct(s.ctx, CreateProductInput{
			StoreID: s.storeB.String(), CategoryID: drinks.ID, Name: "Juice", Price: 8,
		})
		s.Require().Error(err)
		s.Equal("Category does not belong to the store", err.Error())
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidResource))
	})

	s.Run("unknown category", func() {
		_, err := s.service.CreateProduct(s.ctx, CreateProductInput{
			StoreID: s.storeA.String(), CategoryID: id.NewCategoryID().String(), Name: "Juice", Price: 8,
		})
		s.Require().Error(err)
		s.Equal("Category not found", err.Error())
	})

	s.Run("lists by category ordered by name", func() {
		_, err := s.service.CreateProduct(s.ctx, CreateProductInput{
			StoreID: s.storeA.String(), CategoryID: drinks.ID, Name: "Beer", Price: 12,
		})
		s.Require().NoError(err)

		products, err := s.service.ListProductsByCategory(s.ctx, drinks.ID)
		s.Require().NoError(err)
		s.Require().Len(products, 2)
		s.Equal("Beer", products[0].Name)
		s.Equal("Soda", products[1].Name)
	})

	s.Run("unknown product", func() {
		_, err := s.service.GetProduct(s.ctx, id.NewProductID().String())
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}
