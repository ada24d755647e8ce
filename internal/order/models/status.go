package models

import dErrors "kiosk/pkg/domain-errors"

// OrderStatus is the lifecycle state of an order.
//
// Transitions:
//
//	PENDING → RECEIVED → IN_PROGRESS → READY → FINISHED
//	PENDING → CANCELED
//
// FINISHED and CANCELED are terminal.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusReceived   OrderStatus = "RECEIVED"
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	OrderStatusReady      OrderStatus = "READY"
	OrderStatusFinished   OrderStatus = "FINISHED"
	OrderStatusCanceled   OrderStatus = "CANCELED"
)

// AllOrderStatuses lists every status in lifecycle order.
var AllOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusReceived,
	OrderStatusInProgress,
	OrderStatusReady,
	OrderStatusFinished,
	OrderStatusCanceled,
}

// predecessor maps each reachable status to the single status it can be
// entered from.
var predecessor = map[OrderStatus]OrderStatus{
	OrderStatusReceived:   OrderStatusPending,
	OrderStatusInProgress: OrderStatusReceived,
	OrderStatusReady:      OrderStatusInProgress,
	OrderStatusFinished:   OrderStatusReady,
	OrderStatusCanceled:   OrderStatusPending,
}

// ParseOrderStatus validates a status received from outside the domain.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !status.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidResource, "Invalid order status")
	}
	return status, nil
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusReceived, OrderStatusInProgress,
		OrderStatusReady, OrderStatusFinished, OrderStatusCanceled:
		return true
	}
	return false
}

// CanTransitionTo reports whether target is directly reachable from s.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	from, ok := predecessor[target]
	return ok && from == s
}

// IsTerminal reports whether no transition leaves s.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusFinished || s == OrderStatusCanceled
}

func (s OrderStatus) String() string {
	return string(s)
}
