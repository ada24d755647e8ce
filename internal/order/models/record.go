package models

import (
	"time"

	id "kiosk/pkg/domain"
)

// OrderRecord is the flat persistence shape of an Order. Optional references
// are empty strings when absent.
type OrderRecord struct {
	ID         string
	StoreID    string
	CustomerID string
	TotemID    string
	Status     string
	Items      []OrderItemRecord
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type OrderItemRecord struct {
	ID        string
	ProductID string
	UnitPrice float64
	Quantity  int
	CreatedAt time.Time
}

// ToRecord flattens the aggregate for a gateway.
func (o *Order) ToRecord() OrderRecord {
	rec := OrderRecord{
		ID:        o.id.String(),
		StoreID:   o.storeID.String(),
		Status:    o.status.String(),
		Items:     make([]OrderItemRecord, 0, len(o.items)),
		CreatedAt: o.createdAt,
		UpdatedAt: o.updatedAt,
	}
	if !o.customerID.IsNil() {
		rec.CustomerID = o.customerID.String()
	}
	if !o.totemID.IsNil() {
		rec.TotemID = o.totemID.String()
	}
	for _, item := range o.items {
		rec.Items = append(rec.Items, OrderItemRecord{
			ID:        item.id.String(),
			ProductID: item.productID.String(),
			UnitPrice: item.unitPrice,
			Quantity:  item.quantity,
			CreatedAt: item.createdAt,
		})
	}
	return rec
}

// FromRecord rehydrates an Order, re-checking every invariant NewOrder checks.
func FromRecord(rec OrderRecord) (*Order, error) {
	orderID, err := id.ParseOrderID(rec.ID)
	if err != nil {
		return nil, err
	}
	storeID, err := id.ParseStoreID(rec.StoreID)
	if err != nil {
		return nil, err
	}
	var customerID id.CustomerID
	if rec.CustomerID != "" {
		if customerID, err = id.ParseCustomerID(rec.CustomerID); err != nil {
			return nil, err
		}
	}
	var totemID id.TotemID
	if rec.TotemID != "" {
		if totemID, err = id.ParseTotemID(rec.TotemID); err != nil {
			return nil, err
		}
	}
	status, err := ParseOrderStatus(rec.Status)
	if err != nil {
		return nil, err
	}

	items := make([]OrderItem, 0, len(rec.Items))
	for _, ir := range rec.Items {
		itemID, err := id.ParseOrderItemID(ir.ID)
		if err != nil {
			return nil, err
		}
		productID, err := id.ParseProductID(ir.ProductID)
		if err != nil {
			return nil, err
		}
		item, err := NewOrderItem(itemID, productID, ir.UnitPrice, ir.Quantity, ir.CreatedAt)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	order, err := NewOrder(orderID, storeID, items, customerID, totemID, rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	order.status = status
	order.updatedAt = rec.UpdatedAt
	return order, nil
}
