package app

import (
	"context"

	catalogservice "kiosk/internal/catalog/service"
	customerservice "kiosk/internal/customer/service"
	shopservice "kiosk/internal/shop/service"
)

// DemoSeed describes what SeedDemo created.
type DemoSeed struct {
	StoreID    string
	TotemID    string
	TotemToken string
	CategoryID string
	ProductIDs []string
	CustomerID string
}

type demoProduct struct {
	name        string
	description string
	price       float64
}

var demoMenu = []demoProduct{
	{name: "X-Burger", description: "Pão, hambúrguer e queijo", price: 15.99},
	{name: "Batata frita", description: "Porção média", price: 9.5},
	{name: "Refrigerante", description: "Lata 350ml", price: 6},
}

// SeedDemo creates a store with one totem, a small menu and a customer so a
// fresh process can take orders right away. Every step goes through the use
// cases, so the seed obeys the same invariants as live traffic.
func SeedDemo(ctx context.Context, a *App) (*DemoSeed, error) {
	store, err := Invoke(ctx, a, "SeedCreateStore", func(ctx context.Context) (*shopservice.StoreOutput, error) {
		return a.Shops.CreateStore(ctx, shopservice.CreateStoreInput{
			Name:  "Kiosk Demo",
			CNPJ:  "11.222.333/0001-81",
			Email: "contato@kioskdemo.com.br",
			Phone: "+55 (11) 98765-4321",
		})
	})
	if err != nil {
		return nil, err
	}

	totem, err := Invoke(ctx, a, "SeedAddTotem", func(ctx context.Context) (*shopservice.TotemOutput, error) {
		return a.Shops.AddTotem(ctx, shopservice.AddTotemInput{StoreID: store.ID, Name: "Totem 1"})
	})
	if err != nil {
		return nil, err
	}

	category, err := Invoke(ctx, a, "SeedCreateCategory", func(ctx context.Context) (*catalogservice.CategoryOutput, error) {
		return a.Catalog.CreateCategory(ctx, catalogservice.CreateCategoryInput{StoreID: store.ID, Name: "Lanches"})
	})
	if err != nil {
		return nil, err
	}

	seed := &DemoSeed{
		StoreID:    store.ID,
		TotemID:    totem.ID,
		TotemToken: totem.Token,
		CategoryID: category.ID,
	}
	for _, item := range demoMenu {
		product, err := Invoke(ctx, a, "SeedCreateProduct", func(ctx context.Context) (*catalogservice.ProductOutput, error) {
			return a.Catalog.CreateProduct(ctx, catalogservice.CreateProductInput{
				StoreID:     store.ID,
				CategoryID:  category.ID,
				Name:        item.name,
				Description: item.description,
				Price:       item.price,
			})
		})
		if err != nil {
			return nil, err
		}
		seed.ProductIDs = append(seed.ProductIDs, product.ID)
	}

	customer, err := Invoke(ctx, a, "SeedCreateCustomer", func(ctx context.Context) (*customerservice.CustomerOutput, error) {
		return a.Customers.CreateCustomer(ctx, customerservice.CreateCustomerInput{
			CPF:   "529.982.247-25",
			Email: "maria.silva@example.com",
		})
	})
	if err != nil {
		return nil, err
	}
	seed.CustomerID = customer.ID

	a.log.Info().
		Str("store_id", seed.StoreID).
		Str("totem_id", seed.TotemID).
		Int("products", len(seed.ProductIDs)).
		Msg("demo data seeded")
	return seed, nil
}
