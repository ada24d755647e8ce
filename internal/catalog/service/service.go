package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"kiosk/internal/catalog/models"
	id "kiosk/pkg/domain"
	dErrors "kiosk/pkg/domain-errors"
	"kiosk/pkg/platform/sentinel"
	"kiosk/pkg/requestcontext"
)

// CatalogStore persists categories and products.
type CatalogStore interface {
	CreateCategoryIfNameAvailable(ctx context.Context, category *models.Category) error
	FindCategoryByID(ctx context.Context, categoryID id.CategoryID) (*models.Category, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	FindProductByID(ctx context.Context, productID id.ProductID) (*models.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID id.CategoryID) ([]*models.Product, error)
}

// StoreChecker reports whether a store exists, returning
// sentinel.ErrNotFound when it does not.
type StoreChecker interface {
	CheckStore(ctx context.Context, storeID id.StoreID) error
}

// Service implements the catalog use cases.
type Service struct {
	catalog CatalogStore
	stores  StoreChecker
}

func New(catalog CatalogStore, stores StoreChecker) (*Service, error) {
	if catalog == nil {
		return nil, errors.New("catalog store is required")
	}
	if stores == nil {
		return nil, errors.New("store checker is required")
	}
	return &Service{catalog: catalog, stores: stores}, nil
}

type CreateCategoryInput struct {
	StoreID string
	Name    string
}

type CreateProductInput struct {
	StoreID     string
	CategoryID  string
	Name        string
	Description string
	Price       float64
}

type CategoryOutput struct {
	ID        string
	StoreID   string
	Name      string
	CreatedAt time.Time
}

type ProductOutput struct {
	ID          string
	StoreID     string
	CategoryID  string
	Name        string
	Description string
	Price       float64
	CreatedAt   time.Time
}

func toProductOutput(p *models.Product) *ProductOutput {
	return &ProductOutput{
		ID:          p.ID.String(),
		StoreID:     p.StoreID.String(),
		CategoryID:  p.CategoryID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
	}
}

func (s *Service) CreateCategory(ctx context.Context, in CreateCategoryInput) (*CategoryOutput, error) {
	storeID, err := id.ParseStoreID(in.StoreID)
	if err != nil {
		return nil, err
	}
	if err := s.checkStore(ctx, storeID); err != nil {
		return nil, err
	}
	category, err := models.NewCategory(id.NewCategoryID(), storeID, in.Name, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.catalog.CreateCategoryIfNameAvailable(ctx, category); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return nil, dErrors.New(dErrors.CodeConflict, "Category name already in use")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create category")
	}
	return &CategoryOutput{
		ID:        category.ID.String(),
		StoreID:   category.StoreID.String(),
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
	}, nil
}

// CreateProduct adds a product to a category of the same store.
func (s *Service) CreateProduct(ctx context.Context, in CreateProductInput) (*ProductOutput, error) {
	storeID, err := id.ParseStoreID(in.StoreID)
	if err != nil {
		return nil, err
	}
	categoryID, err := id.ParseCategoryID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if err := s.checkStore(ctx, storeID); err != nil {
		return nil, err
	}
	category, err := s.catalog.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, wrapLookupErr(err, "Category not found")
	}
	if category.StoreID != storeID {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Category does not belong to the store")
	}

	product, err := models.NewProduct(id.NewProductID(), category, in.Name, in.Description, in.Price, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.catalog.CreateProduct(ctx, product); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create product")
	}
	return toProductOutput(product), nil
}

func (s *Service) GetProduct(ctx context.Context, rawID string) (*ProductOutput, error) {
	productID, err := id.ParseProductID(rawID)
	if err != nil {
		return nil, err
	}
	product, err := s.catalog.FindProductByID(ctx, productID)
	if err != nil {
		return nil, wrapLookupErr(err, "Product not found")
	}
	return toProductOutput(product), nil
}

// ListProductsByCategory returns the category's products ordered by name.
func (s *Service) ListProductsByCategory(ctx context.Context, rawCategoryID string) ([]*ProductOutput, error) {
	categoryID, err := id.ParseCategoryID(rawCategoryID)
	if err != nil {
		return nil, err
	}
	if _, err := s.catalog.FindCategoryByID(ctx, categoryID); err != nil {
		return nil, wrapLookupErr(err, "Category not found")
	}
	products, err := s.catalog.ListProductsByCategory(ctx, categoryID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list products")
	}
	out := make([]*ProductOutput, 0, len(products))
	for _, p := range products {
		out = append(out, toProductOutput(p))
	}
	slices.SortFunc(out, func(a, b *ProductOutput) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}

func (s *Service) checkStore(ctx context.Context, storeID id.StoreID) error {
	if err := s.stores.CheckStore(ctx, storeID); err != nil {
		return wrapLookupErr(err, "Store not found")
	}
	return nil
}

func wrapLookupErr(err error, notFound string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, notFound)
	}
	if _, ok := dErrors.As(err); ok {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "catalog lookup failed")
}
