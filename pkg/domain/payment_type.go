package domain

import dErrors "kiosk/pkg/domain-errors"

// PaymentType identifies how a customer pays at the totem.
// Invariant: the value must be one of the supported payment types.
//
// Usage: construct via ParsePaymentType at trust boundaries; direct casting
// bypasses validation.
type PaymentType string

const (
	PaymentTypeQRCode PaymentType = "QR_CODE"
	PaymentTypeCard   PaymentType = "CARD"
)

var validPaymentTypes = map[PaymentType]bool{
	PaymentTypeQRCode: true,
	PaymentTypeCard:   true,
}

// ParsePaymentType constructs a PaymentType from external input.
//
// Errors: returns CodeInvalidResource when the value is empty or unsupported.
func ParsePaymentType(s string) (PaymentType, error) {
	p := PaymentType(s)
	if !p.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidResource, "Invalid payment type")
	}
	return p, nil
}

// IsValid checks if the payment type is one of the supported values.
func (p PaymentType) IsValid() bool {
	return validPaymentTypes[p]
}

// IsQRCode reports whether payments of this type carry a QR code.
func (p PaymentType) IsQRCode() bool {
	return p == PaymentTypeQRCode
}

func (p PaymentType) String() string {
	return string(p)
}

// PaymentPlatform names the external provider a payment was associated with.
type PaymentPlatform string

const (
	PaymentPlatformMercadoPago PaymentPlatform = "MERCADO_PAGO"
	PaymentPlatformPagSeguro   PaymentPlatform = "PAG_SEGURO"
	PaymentPlatformStone       PaymentPlatform = "STONE"
)

var validPaymentPlatforms = map[PaymentPlatform]bool{
	PaymentPlatformMercadoPago: true,
	PaymentPlatformPagSeguro:   true,
	PaymentPlatformStone:       true,
}

// ParsePaymentPlatform constructs a PaymentPlatform from external input.
func ParsePaymentPlatform(s string) (PaymentPlatform, error) {
	p := PaymentPlatform(s)
	if !p.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidResource, "Invalid payment platform")
	}
	return p, nil
}

func (p PaymentPlatform) IsValid() bool {
	return validPaymentPlatforms[p]
}

func (p PaymentPlatform) String() string {
	return string(p)
}
