package service

import (
	"context"
	"slices"
	"time"

	"kiosk/internal/order/models"
	"kiosk/pkg/document"
	id "kiosk/pkg/domain"
	dErrors "kiosk/pkg/domain-errors"
	"kiosk/pkg/requestcontext"
)

// CreateOrder places a PENDING order. Unit prices are taken from the catalog,
// never from the caller.
func (s *Service) CreateOrder(ctx context.Context, in CreateOrderInput) (*OrderOutput, error) {
	now := requestcontext.Now(ctx)

	storeID, err := id.ParseStoreID(in.StoreID)
	if err != nil {
		return nil, err
	}
	if err := s.stores.CheckStore(ctx, storeID); err != nil {
		return nil, translate(err, "Store not found", "failed to load store")
	}

	totemID, err := s.resolveTotem(ctx, in.TotemID, storeID)
	if err != nil {
		return nil, err
	}

	var customerID id.CustomerID
	if in.CustomerID != "" {
		if customerID, err = id.ParseCustomerID(in.CustomerID); err != nil {
			return nil, err
		}
		if err := s.customers.CheckCustomer(ctx, customerID); err != nil {
			return nil, translate(err, "Customer not found", "failed to load customer")
		}
	}

	items := make([]models.OrderItem, 0, len(in.Items))
	for _, line := range in.Items {
		item, err := s.buildItem(ctx, line, storeID, now)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	order, err := models.NewOrder(id.NewOrderID(), storeID, items, customerID, totemID, now)
	if err != nil {
		return nil, err
	}
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save order")
	}

	s.incrementOrderCreated(order.TotalPrice())
	return toOutput(order), nil
}

func (s *Service) resolveTotem(ctx context.Context, raw string, storeID id.StoreID) (id.TotemID, error) {
	totemID := requestcontext.TotemID(ctx)
	if raw != "" {
		parsed, err := id.ParseTotemID(raw)
		if err != nil {
			return id.TotemID{}, err
		}
		totemID = parsed
	}
	if totemID.IsNil() {
		return id.TotemID{}, nil
	}

	owner, err := s.stores.FindTotemStore(ctx, totemID)
	if err != nil {
		return id.TotemID{}, translate(err, "Totem not found", "failed to load totem")
	}
	if owner != storeID {
		return id.TotemID{}, dErrors.New(dErrors.CodeInvalidResource, "Totem does not belong to the store")
	}
	return totemID, nil
}

func (s *Service) buildItem(ctx context.Context, line CreateOrderItemInput, storeID id.StoreID, now time.Time) (models.OrderItem, error) {
	productID, err := id.ParseProductID(line.ProductID)
	if err != nil {
		return models.OrderItem{}, err
	}
	product, err := s.products.FindProduct(ctx, productID)
	if err != nil {
		return models.OrderItem{}, translate(err, "Product not found", "failed to load product")
	}
	if product.StoreID != storeID {
		return models.OrderItem{}, dErrors.New(dErrors.CodeInvalidResource, "Product does not belong to the store")
	}
	return models.NewOrderItem(id.NewOrderItemID(), productID, product.Price, line.Quantity, now)
}

func (s *Service) GetOrder(ctx context.Context, rawID string) (*OrderOutput, error) {
	order, err := s.load(ctx, rawID)
	if err != nil {
		return nil, err
	}
	return toOutput(order), nil
}

// ListOrders returns a store's orders, oldest first.
func (s *Service) ListOrders(ctx context.Context, in ListOrdersInput) ([]*OrderOutput, error) {
	storeID, err := id.ParseStoreID(in.StoreID)
	if err != nil {
		return nil, err
	}
	statuses := make([]models.OrderStatus, 0, len(in.Statuses))
	for _, raw := range in.Statuses {
		status, err := models.ParseOrderStatus(raw)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}

	orders, err := s.orders.ListByStore(ctx, storeID, statuses...)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list orders")
	}
	slices.SortFunc(orders, func(a, b *models.Order) int {
		return a.CreatedAt().Compare(b.CreatedAt())
	})

	out := make([]*OrderOutput, 0, len(orders))
	for _, order := range orders {
		out = append(out, toOutput(order))
	}
	return out, nil
}

// UpdateOrderStatus moves an order to the requested status through the single
// transition method that enters it.
func (s *Service) UpdateOrderStatus(ctx context.Context, in UpdateOrderStatusInput) (*OrderOutput, error) {
	status, err := models.ParseOrderStatus(in.Status)
	if err != nil {
		return nil, err
	}
	order, err := s.load(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if err := order.SetStatus(status, requestcontext.Now(ctx)); err != nil {
		return nil, err
	}
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save order")
	}

	s.incrementTransition(status)
	return toOutput(order), nil
}

func (s *Service) RemoveOrderItem(ctx context.Context, in RemoveOrderItemInput) (*OrderOutput, error) {
	itemID, err := id.ParseOrderItemID(in.ItemID)
	if err != nil {
		return nil, err
	}
	order, err := s.load(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	if err := order.RemoveItem(itemID, requestcontext.Now(ctx)); err != nil {
		return nil, err
	}
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save order")
	}

	s.incrementItemRemoved()
	return toOutput(order), nil
}

// AssociateCustomer attaches the customer identified by a CPF to an order.
func (s *Service) AssociateCustomer(ctx context.Context, in AssociateCustomerInput) (*OrderOutput, error) {
	cpf, err := document.NewCPF(in.CPF)
	if err != nil {
		return nil, err
	}
	order, err := s.load(ctx, in.OrderID)
	if err != nil {
		return nil, err
	}
	customerID, err := s.customers.FindCustomerIDByCPF(ctx, cpf)
	if err != nil {
		return nil, translate(err, "Customer not found", "failed to load customer")
	}
	if err := order.AssociateCustomer(customerID, requestcontext.Now(ctx)); err != nil {
		return nil, err
	}
	if err := s.orders.Save(ctx, order); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save order")
	}
	return toOutput(order), nil
}

func (s *Service) load(ctx context.Context, rawID string) (*models.Order, error) {
	orderID, err := id.ParseOrderID(rawID)
	if err != nil {
		return nil, err
	}
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, translate(err, "Order not found", "failed to load order")
	}
	return order, nil
}
