package models

import (
	"slices"
	"time"

	id "kiosk/pkg/domain"
	dErrors "kiosk/pkg/domain-errors"
)

// OrderItem is one product line of an order. The unit price is captured from
// the product when the order is placed and never changes afterwards.
type OrderItem struct {
	id        id.OrderItemID
	productID id.ProductID
	unitPrice float64
	quantity  int
	createdAt time.Time
}

// NewOrderItem validates a product line.
func NewOrderItem(itemID id.OrderItemID, productID id.ProductID, unitPrice float64, quantity int, now time.Time) (OrderItem, error) {
	if itemID.IsNil() {
		return OrderItem{}, dErrors.New(dErrors.CodeInvalidResource, "Order item id is required")
	}
	if productID.IsNil() {
		return OrderItem{}, dErrors.New(dErrors.CodeInvalidResource, "Product id is required")
	}
	if unitPrice < 0 {
		return OrderItem{}, dErrors.New(dErrors.CodeInvalidResource, "Order item price cannot be negative")
	}
	if quantity < 1 {
		return OrderItem{}, dErrors.New(dErrors.CodeInvalidResource, "Order item quantity must be at least one")
	}
	return OrderItem{
		id:        itemID,
		productID: productID,
		unitPrice: unitPrice,
		quantity:  quantity,
		createdAt: now,
	}, nil
}

func (i OrderItem) ID() id.OrderItemID      { return i.id }
func (i OrderItem) ProductID() id.ProductID { return i.productID }
func (i OrderItem) UnitPrice() float64      { return i.unitPrice }
func (i OrderItem) Quantity() int           { return i.quantity }
func (i OrderItem) CreatedAt() time.Time    { return i.createdAt }

// Subtotal is unit price times quantity.
func (i OrderItem) Subtotal() float64 {
	return i.unitPrice * float64(i.quantity)
}

// Order is the aggregate root for a customer order placed at a store.
//
// Invariants:
//   - StoreID is never nil
//   - at least one item at all times
//   - item ids are unique within the order
//   - status only moves along the OrderStatus transition table
//   - a customer is associated at most once
//
// Customer and totem are optional; the nil ID means absent.
type Order struct {
	id         id.OrderID
	storeID    id.StoreID
	customerID id.CustomerID
	totemID    id.TotemID
	status     OrderStatus
	items      []OrderItem
	createdAt  time.Time
	updatedAt  time.Time
}

// NewOrder creates a PENDING order.
func NewOrder(orderID id.OrderID, storeID id.StoreID, items []OrderItem, customerID id.CustomerID, totemID id.TotemID, now time.Time) (*Order, error) {
	if storeID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Store id is required")
	}
	if len(items) == 0 {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Order must have at least one item")
	}
	if !uniqueItemIDs(items) {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Order items must have unique ids")
	}
	return &Order{
		id:         orderID,
		storeID:    storeID,
		customerID: customerID,
		totemID:    totemID,
		status:     OrderStatusPending,
		items:      slices.Clone(items),
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func uniqueItemIDs(items []OrderItem) bool {
	seen := make(map[id.OrderItemID]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.id]; dup {
			return false
		}
		seen[item.id] = struct{}{}
	}
	return true
}

func (o *Order) ID() id.OrderID            { return o.id }
func (o *Order) StoreID() id.StoreID       { return o.storeID }
func (o *Order) CustomerID() id.CustomerID { return o.customerID }
func (o *Order) TotemID() id.TotemID       { return o.totemID }
func (o *Order) Status() OrderStatus       { return o.status }
func (o *Order) CreatedAt() time.Time      { return o.createdAt }
func (o *Order) UpdatedAt() time.Time      { return o.updatedAt }

// Items returns a copy of the order lines.
func (o *Order) Items() []OrderItem {
	return slices.Clone(o.items)
}

func (o *Order) HasCustomer() bool {
	return !o.customerID.IsNil()
}

// TotalPrice sums the current items on every call.
func (o *Order) TotalPrice() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Subtotal()
	}
	return total
}

func (o *Order) SetToReceived(now time.Time) error {
	return o.transition(OrderStatusReceived, "Order can only be received if it is pending", now)
}

func (o *Order) SetToInProgress(now time.Time) error {
	return o.transition(OrderStatusInProgress, "Order can only be started if it is received", now)
}

func (o *Order) SetToReady(now time.Time) error {
	return o.transition(OrderStatusReady, "Order can only be set to ready if it is in progress", now)
}

func (o *Order) SetToFinished(now time.Time) error {
	return o.transition(OrderStatusFinished, "Order can only be finished if it is ready", now)
}

func (o *Order) SetToCanceled(now time.Time) error {
	return o.transition(OrderStatusCanceled, "Order can only be canceled if it is pending", now)
}

// SetStatus dispatches to the transition method that enters target.
func (o *Order) SetStatus(target OrderStatus, now time.Time) error {
	switch target {
	case OrderStatusReceived:
		return o.SetToReceived(now)
	case OrderStatusInProgress:
		return o.SetToInProgress(now)
	case OrderStatusReady:
		return o.SetToReady(now)
	case OrderStatusFinished:
		return o.SetToFinished(now)
	case OrderStatusCanceled:
		return o.SetToCanceled(now)
	default:
		return dErrors.New(dErrors.CodeInvalidResource, "Invalid order status")
	}
}

func (o *Order) transition(target OrderStatus, failure string, now time.Time) error {
	if !o.status.CanTransitionTo(target) {
		return dErrors.New(dErrors.CodeInvalidResource, failure)
	}
	o.status = target
	o.updatedAt = now
	return nil
}

// RemoveItem drops one line from a pending order. The last line can never be
// removed.
func (o *Order) RemoveItem(itemID id.OrderItemID, now time.Time) error {
	if o.status != OrderStatusPending {
		return dErrors.New(dErrors.CodeInvalidResource, "Order items can only be removed from pending orders")
	}
	idx := slices.IndexFunc(o.items, func(item OrderItem) bool { return item.id == itemID })
	if idx < 0 {
		return dErrors.New(dErrors.CodeNotFound, "Order item not found")
	}
	if len(o.items) == 1 {
		return dErrors.New(dErrors.CodeInvalidResource, "Order must have at least one item")
	}
	o.items = slices.Delete(o.items, idx, idx+1)
	o.updatedAt = now
	return nil
}

// AssociateCustomer attaches a customer to an active order.
func (o *Order) AssociateCustomer(customerID id.CustomerID, now time.Time) error {
	if o.HasCustomer() {
		return dErrors.New(dErrors.CodeConflict, "Order already has a customer associated")
	}
	if o.status.IsTerminal() {
		return dErrors.New(dErrors.CodeInvalidResource, "Customer can only be associated with active orders")
	}
	if customerID.IsNil() {
		return dErrors.New(dErrors.CodeInvalidResource, "Customer id is required")
	}
	o.customerID = customerID
	o.updatedAt = now
	return nil
}
