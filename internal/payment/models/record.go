package models

import (
	"time"

	id "kiosk/pkg/domain"
	dErrors "kiosk/pkg/domain-errors"
)

// PaymentRecord is the flat persistence shape of a Payment. Platform,
// ExternalID and QRCode are empty until the payment is associated.
type PaymentRecord struct {
	ID         string
	OrderID    string
	StoreID    string
	Type       string
	Status     string
	Total      float64
	Platform   string
	ExternalID string
	QRCode     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (p *Payment) ToRecord() PaymentRecord {
	return PaymentRecord{
		ID:         p.id.String(),
		OrderID:    p.orderID.String(),
		StoreID:    p.storeID.String(),
		Type:       p.paymentType.String(),
		Status:     p.status.String(),
		Total:      p.total,
		Platform:   p.platform.String(),
		ExternalID: p.externalID,
		QRCode:     p.qrCode,
		CreatedAt:  p.createdAt,
		UpdatedAt:  p.updatedAt,
	}
}

// FromRecord rehydrates a Payment and re-checks its invariants.
func FromRecord(rec PaymentRecord) (*Payment, error) {
	paymentID, err := id.ParsePaymentID(rec.ID)
	if err != nil {
		return nil, err
	}
	orderID, err := id.ParseOrderID(rec.OrderID)
	if err != nil {
		return nil, err
	}
	storeID, err := id.ParseStoreID(rec.StoreID)
	if err != nil {
		return nil, err
	}
	paymentType, err := id.ParsePaymentType(rec.Type)
	if err != nil {
		return nil, err
	}
	status, err := ParsePaymentStatus(rec.Status)
	if err != nil {
		return nil, err
	}

	payment, err := NewPayment(paymentID, orderID, storeID, paymentType, rec.Total, rec.CreatedAt)
	if err != nil {
		return nil, err
	}
	if (rec.ExternalID == "") != (rec.Platform == "") {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "External id and platform must be set together")
	}
	if rec.ExternalID != "" {
		if err := payment.AssociateExternal(rec.ExternalID, id.PaymentPlatform(rec.Platform), rec.QRCode, rec.UpdatedAt); err != nil {
			return nil, err
		}
	}
	payment.status = status
	payment.updatedAt = rec.UpdatedAt
	return payment, nil
}
