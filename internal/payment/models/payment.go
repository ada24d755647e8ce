package models

import (
	"strings"
	"time"

	id "kiosk/pkg/domain"
	dErrors "kiosk/pkg/domain-errors"
)

// PaymentStatus is the settlement state of a payment. APPROVED and REFUSED
// are terminal.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusApproved PaymentStatus = "APPROVED"
	PaymentStatusRefused  PaymentStatus = "REFUSED"
)

var AllPaymentStatuses = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusApproved,
	PaymentStatusRefused,
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch status := PaymentStatus(s); status {
	case PaymentStatusPending, PaymentStatusApproved, PaymentStatusRefused:
		return status, nil
	}
	return "", dErrors.New(dErrors.CodeInvalidResource, "Invalid payment status")
}

func (s PaymentStatus) String() string {
	return string(s)
}

// Payment tracks one settlement attempt for an order.
//
// Invariants:
//   - total is strictly positive
//   - order and store ids are never nil
//   - external id and platform are set together, at most once
//   - a QR code is only kept for QR_CODE payments
//   - status leaves PENDING at most once
type Payment struct {
	id          id.PaymentID
	orderID     id.OrderID
	storeID     id.StoreID
	paymentType id.PaymentType
	status      PaymentStatus
	total       float64
	platform    id.PaymentPlatform
	externalID  string
	qrCode      string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewPayment creates a PENDING payment with no external association.
func NewPayment(paymentID id.PaymentID, orderID id.OrderID, storeID id.StoreID, paymentType id.PaymentType, total float64, now time.Time) (*Payment, error) {
	if total <= 0 {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Payment total must be greater than zero")
	}
	if orderID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Order id is required")
	}
	if storeID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Store id is required")
	}
	if !paymentType.IsValid() {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Invalid payment type")
	}
	return &Payment{
		id:          paymentID,
		orderID:     orderID,
		storeID:     storeID,
		paymentType: paymentType,
		status:      PaymentStatusPending,
		total:       total,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func (p *Payment) ID() id.PaymentID             { return p.id }
func (p *Payment) OrderID() id.OrderID          { return p.orderID }
func (p *Payment) StoreID() id.StoreID          { return p.storeID }
func (p *Payment) Type() id.PaymentType         { return p.paymentType }
func (p *Payment) Status() PaymentStatus        { return p.status }
func (p *Payment) Total() float64               { return p.total }
func (p *Payment) Platform() id.PaymentPlatform { return p.platform }
func (p *Payment) ExternalID() string           { return p.externalID }
func (p *Payment) QRCode() string               { return p.qrCode }
func (p *Payment) CreatedAt() time.Time         { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time         { return p.updatedAt }
func (p *Payment) HasExternalAssociation() bool { return p.externalID != "" }

// AssociateExternal links the payment to the provider's charge. A QR code
// supplied for a non-QR payment is ignored.
func (p *Payment) AssociateExternal(externalID string, platform id.PaymentPlatform, qrCode string, now time.Time) error {
	if p.HasExternalAssociation() {
		return dErrors.New(dErrors.CodeConflict, "Payment already associated with external source")
	}
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return dErrors.New(dErrors.CodeInvalidResource, "External id is required")
	}
	if !platform.IsValid() {
		return dErrors.New(dErrors.CodeInvalidResource, "Invalid payment platform")
	}
	p.externalID = externalID
	p.platform = platform
	if p.paymentType.IsQRCode() {
		p.qrCode = qrCode
	}
	p.updatedAt = now
	return nil
}

func (p *Payment) Approve(now time.Time) error {
	if p.status != PaymentStatusPending {
		return dErrors.New(dErrors.CodeConflict, "Payment must be pending to be Approved")
	}
	p.status = PaymentStatusApproved
	p.updatedAt = now
	return nil
}

func (p *Payment) Reject(now time.Time) error {
	if p.status != PaymentStatusPending {
		return dErrors.New(dErrors.CodeConflict, "Payment must be pending to be Rejected")
	}
	p.status = PaymentStatusRefused
	p.updatedAt = now
	return nil
}
