package service

import (
	"time"

	"kiosk/internal/payment/models"
)

type CreatePaymentInput struct {
	OrderID     string
	PaymentType string
}

// AssociateExternalInput records a charge opened outside the kiosk, usually
// reported back by the provider's webhook.
type AssociateExternalInput struct {
	PaymentID  string
	ExternalID string
	Platform   string
	QRCode     string
}

type PaymentOutput struct {
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

func toOutput(p *models.Payment) *PaymentOutput {
	out := PaymentOutput(p.ToRecord())
	return &out
}
