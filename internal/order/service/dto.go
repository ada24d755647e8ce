package service

import (
	"time"

	"kiosk/internal/order/models"
)

type CreateOrderItemInput struct {
	ProductID string
	Quantity  int
}

// CreateOrderInput places an order. TotemID and CustomerID are optional; when
// TotemID is empty the totem recorded on the context is used.
type CreateOrderInput struct {
	StoreID    string
	TotemID    string
	CustomerID string
	Items      []CreateOrderItemInput
}

// ListOrdersInput filters a store's orders by status; no statuses means all.
type ListOrdersInput struct {
	StoreID  string
	Statuses []string
}

type UpdateOrderStatusInput struct {
	OrderID string
	Status  string
}

type RemoveOrderItemInput struct {
	OrderID string
	ItemID  string
}

type AssociateCustomerInput struct {
	OrderID string
	CPF     string
}

type OrderItemOutput struct {
	ID        string
	ProductID string
	UnitPrice float64
	Quantity  int
	CreatedAt time.Time
}

type OrderOutput struct {
	ID         string
	StoreID    string
	CustomerID string
	TotemID    string
	Status     string
	Items      []OrderItemOutput
	TotalPrice float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func toOutput(order *models.Order) *OrderOutput {
	rec := order.ToRecord()
	out := &OrderOutput{
		ID:         rec.ID,
		StoreID:    rec.StoreID,
		CustomerID: rec.CustomerID,
		TotemID:    rec.TotemID,
		Status:     rec.Status,
		Items:      make([]OrderItemOutput, 0, len(rec.Items)),
		TotalPrice: order.TotalPrice(),
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
	for _, item := range rec.Items {
		out.Items = append(out.Items, OrderItemOutput(item))
	}
	return out
}
