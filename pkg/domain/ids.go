// Package domain holds the domain primitives shared by every kiosk context:
// typed identifiers and small enumerations that are validated once at the
// trust boundary and then passed around as distinct types.
package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "kiosk/pkg/domain-errors"
)

// Typed identifiers. Each wraps a UUID so a StoreID can never be passed where
// an OrderID is expected.
type (
	StoreID     uuid.UUID
	TotemID     uuid.UUID
	CustomerID  uuid.UUID
	CategoryID  uuid.UUID
	ProductID   uuid.UUID
	OrderID     uuid.UUID
	OrderItemID uuid.UUID
	PaymentID   uuid.UUID
)

func (id StoreID) String() string     { return uuid.UUID(id).String() }
func (id TotemID) String() string     { return uuid.UUID(id).String() }
func (id CustomerID) String() string  { return uuid.UUID(id).String() }
func (id CategoryID) String() string  { return uuid.UUID(id).String() }
func (id ProductID) String() string   { return uuid.UUID(id).String() }
func (id OrderID) String() string     { return uuid.UUID(id).String() }
func (id OrderItemID) String() string { return uuid.UUID(id).String() }
func (id PaymentID) String() string   { return uuid.UUID(id).String() }

func (id StoreID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id TotemID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id CustomerID) IsNil() bool  { return uuid.UUID(id) == uuid.Nil }
func (id CategoryID) IsNil() bool  { return uuid.UUID(id) == uuid.Nil }
func (id ProductID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }
func (id OrderID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id OrderItemID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id PaymentID) IsNil() bool   { return uuid.UUID(id) == uuid.Nil }

func NewStoreID() StoreID         { return StoreID(uuid.New()) }
func NewTotemID() TotemID         { return TotemID(uuid.New()) }
func NewCustomerID() CustomerID   { return CustomerID(uuid.New()) }
func NewCategoryID() CategoryID   { return CategoryID(uuid.New()) }
func NewProductID() ProductID     { return ProductID(uuid.New()) }
func NewOrderID() OrderID         { return OrderID(uuid.New()) }
func NewOrderItemID() OrderItemID { return OrderItemID(uuid.New()) }
func NewPaymentID() PaymentID     { return PaymentID(uuid.New()) }

// parseID rejects empty, malformed and nil UUIDs.
func parseID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidResource, strings.ToUpper(label[:1])+label[1:]+" is required")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidResource, "Invalid "+label)
	}
	if parsed == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidResource, "Invalid "+label)
	}
	return parsed, nil
}

func ParseStoreID(s string) (StoreID, error) {
	id, err := parseID(s, "store id")
	return StoreID(id), err
}

func ParseTotemID(s string) (TotemID, error) {
	id, err := parseID(s, "totem id")
	return TotemID(id), err
}

func ParseCustomerID(s string) (CustomerID, error) {
	id, err := parseID(s, "customer id")
	return CustomerID(id), err
}

func ParseCategoryID(s string) (CategoryID, error) {
	id, err := parseID(s, "category id")
	return CategoryID(id), err
}

func ParseProductID(s string) (ProductID, error) {
	id, err := parseID(s, "product id")
	return ProductID(id), err
}

func ParseOrderID(s string) (OrderID, error) {
	id, err := parseID(s, "order id")
	return OrderID(id), err
}

func ParseOrderItemID(s string) (OrderItemID, error) {
	id, err := parseID(s, "order item id")
	return OrderItemID(id), err
}

func ParsePaymentID(s string) (PaymentID, error) {
	id, err := parseID(s, "payment id")
	return PaymentID(id), err
}
