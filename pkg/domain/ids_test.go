package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "kiosk/pkg/domain-errors"
)

// TestParseUUID_Invariants validates the parsing invariant:
// "IDs must be valid, non-empty, non-nil UUIDs"
func TestParseUUID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseOrderID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidResource))
		assert.Equal(t, "Order id is required", err.Error())
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseOrderID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidResource))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseOrderID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidResource))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		validUUID := uuid.New()
		id, err := ParseOrderID(validUUID.String())
		require.NoError(t, err)
		assert.Equal(t, OrderID(validUUID), id)
		assert.False(t, id.IsNil())
	})
}

// TestTypeDistinction documents that typed IDs are distinct types.
// The following would fail to compile:
//
//	var _ OrderID = PaymentID(uuid.New())
func TestTypeDistinction(t *testing.T) {
	orderID := NewOrderID()
	paymentID := NewPaymentID()
	assert.NotEqual(t, uuid.UUID(orderID), uuid.UUID(paymentID))
}

func TestParseID_HostileInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"SQL injection attempt", "'; DROP TABLE orders;--", true},
		{"Path traversal", "../../../etc/passwd", true},
		{"Null byte injection", "550e8400\x00-e29b-41d4-a716-446655440000", true},
		{"Oversized input", strings.Repeat("a", 1000), true},
		{"Unicode zero-width space", "550e8400\u200B-e29b-41d4-a716-446655440000", true},
		{"Empty string", "", true},
		{"Nil UUID", uuid.Nil.String(), true},
		{"Whitespace only", "   ", true},
		{"Uppercase valid UUID", "550E8400-E29B-41D4-A716-446655440000", false},
		{"Valid UUID lowercase", "550e8400-e29b-41d4-a716-446655440000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStoreID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidResource))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAllIDTypes_ConsistentBehavior(t *testing.T) {
	parsers := map[string]func(string) error{
		"store":      func(s string) error { _, err := ParseStoreID(s); return err },
		"totem":      func(s string) error { _, err := ParseTotemID(s); return err },
		"customer":   func(s string) error { _, err := ParseCustomerID(s); return err },
		"category":   func(s string) error { _, err := ParseCategoryID(s); return err },
		"product":    func(s string) error { _, err := ParseProductID(s); return err },
		"order":      func(s string) error { _, err := ParseOrderID(s); return err },
		"order item": func(s string) error { _, err := ParseOrderItemID(s); return err },
		"payment":    func(s string) error { _, err := ParsePaymentID(s); return err },
	}

	valid := uuid.New().String()
	for name, parse := range parsers {
		t.Run(name+" accepts valid UUID", func(t *testing.T) {
			require.NoError(t, parse(valid))
		})
		for _, input := range []string{"", "invalid", uuid.Nil.String()} {
			t.Run(name+" rejects "+input, func(t *testing.T) {
				require.Error(t, parse(input))
			})
		}
	}
}

func TestParsePaymentType(t *testing.T) {
	t.Run("accepts supported types", func(t *testing.T) {
		pt, err := ParsePaymentType("QR_CODE")
		require.NoError(t, err)
		assert.True(t, pt.IsQRCode())

		pt, err = ParsePaymentType("CARD")
		require.NoError(t, err)
		assert.False(t, pt.IsQRCode())
	})

	t.Run("rejects unknown and empty types", func(t *testing.T) {
		for _, input := range []string{"", "qr_code", "PIX", "BOLETO"} {
			_, err := ParsePaymentType(input)
			require.Error(t, err)
			assert.Equal(t, "Invalid payment type", err.Error())
		}
	})
}

func TestParsePaymentPlatform(t *testing.T) {
	p, err := ParsePaymentPlatform("MERCADO_PAGO")
	require.NoError(t, err)
	assert.Equal(t, PaymentPlatformMercadoPago, p)

	_, err = ParsePaymentPlatform("PAYPAL")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidResource))
}
