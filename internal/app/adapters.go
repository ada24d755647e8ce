package app

import (
	"context"

	catalogstore "kiosk/internal/catalog/store"
	customerstore "kiosk/internal/customer/store"
	"kiosk/internal/order/models"
	orderservice "kiosk/internal/order/service"
	orderstore "kiosk/internal/order/store"
	paymentservice "kiosk/internal/payment/service"
	shopstore "kiosk/internal/shop/store"
	"kiosk/pkg/document"
	id "kiosk/pkg/domain"
)

// The adapters below let one context read another context's gateway through
// the narrow port the reading context declares. Gateway errors, including the
// not-found sentinel, pass through unchanged.

type storeDirectory struct {
	shops *shopstore.InMemory
}

func (d storeDirectory) CheckStore(ctx context.Context, storeID id.StoreID) error {
	_, err := d.shops.FindStoreByID(ctx, storeID)
	return err
}

func (d storeDirectory) FindTotemStore(ctx context.Context, totemID id.TotemID) (id.StoreID, error) {
	totem, err := d.shops.FindTotemByID(ctx, totemID)
	if err != nil {
		return id.StoreID{}, err
	}
	return totem.StoreID, nil
}

type productCatalog struct {
	catalog *catalogstore.InMemory
}

func (c productCatalog) FindProduct(ctx context.Context, productID id.ProductID) (orderservice.ProductSnapshot, error) {
	product, err := c.catalog.FindProductByID(ctx, productID)
	if err != nil {
		return orderservice.ProductSnapshot{}, err
	}
	return orderservice.ProductSnapshot{ID: product.ID, StoreID: product.StoreID, Price: product.Price}, nil
}

type customerDirectory struct {
	customers *customerstore.InMemory
}

func (d customerDirectory) CheckCustomer(ctx context.Context, customerID id.CustomerID) error {
	_, err := d.customers.FindByID(ctx, customerID)
	return err
}

func (d customerDirectory) FindCustomerIDByCPF(ctx context.Context, cpf document.CPF) (id.CustomerID, error) {
	customer, err := d.customers.FindByCPF(ctx, cpf)
	if err != nil {
		return id.CustomerID{}, err
	}
	return customer.ID, nil
}

type orderReader struct {
	orders *orderstore.InMemory
}

func (r orderReader) FindOrder(ctx context.Context, orderID id.OrderID) (paymentservice.OrderSnapshot, error) {
	order, err := r.orders.FindByID(ctx, orderID)
	if err != nil {
		return paymentservice.OrderSnapshot{}, err
	}
	return paymentservice.OrderSnapshot{
		ID:      order.ID(),
		StoreID: order.StoreID(),
		Total:   order.TotalPrice(),
		Pending: order.Status() == models.OrderStatusPending,
	}, nil
}
