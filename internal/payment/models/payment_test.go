package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	id "kiosk/pkg/domain"
	dErrors "kiosk/pkg/domain-errors"
	"kiosk/pkg/testutil"
)

type PaymentSuite struct {
	suite.Suite
	now time.Time
}

func TestPaymentSuite(t *testing.T) {
	suite.Run(t, new(PaymentSuite))
}

func (s *PaymentSuite) SetupTest() {
	s.now = time.Date(2024, 7, 1, 18, 0, 0, 0, time.UTC)
}

func (s *PaymentSuite) newPayment(paymentType id.PaymentType) *Payment {
	p, err := NewPayment(id.NewPaymentID(), id.NewOrderID(), id.NewStoreID(), paymentType, 42.5, s.now)
	s.Require().NoError(err)
	return p
}

func (s *PaymentSuite) TestNewPayment() {
	s.Run("starts pending without external association", func() {
		p := s.newPayment(id.PaymentTypeCard)
		s.Equal(PaymentStatusPending, p.Status())
		s.False(p.HasExternalAssociation())
		s.Empty(p.ExternalID())
		s.Empty(p.Platform())
		s.Empty(p.QRCode())
		s.Equal(42.5, p.Total())
	})

	cases := []struct {
		name        string
		orderID     id.OrderID
		storeID     id.StoreID
		paymentType id.PaymentType
		total       float64
		message     string
	}{
		{"zero total", id.NewOrderID(), id.NewStoreID(), id.PaymentTypeCard, 0, "Payment total must be greater than zero"},
		{"negative total", id.NewOrderID(), id.NewStoreID(), id.PaymentTypeCard, -1, "Payment total must be greater than zero"},
		{"missing order", id.OrderID{}, id.NewStoreID(), id.PaymentTypeCard, 10, "Order id is required"},
		{"missing store", id.NewOrderID(), id.StoreID{}, id.PaymentTypeCard, 10, "Store id is required"},
		{"unknown type", id.NewOrderID(), id.NewStoreID(), id.PaymentType("PIX"), 10, "Invalid payment type"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := NewPayment(id.NewPaymentID(), tc.orderID, tc.storeID, tc.paymentType, tc.total, s.now)
			s.Require().Error(err)
			s.Equal(tc.message, err.Error())
			s.True(dErrors.HasCode(err, dErrors.CodeInvalidResource))
		})
	}
}

func (s *PaymentSuite) TestAssociateExternalIdempotency() {
	testutil.Given(s.T(), "a pending payment", func(t *testing.T) {
		p := s.newPayment(id.PaymentTypeQRCode)

		testutil.When(t, "it is associated with ext-1", func(t *testing.T) {
			require.NoError(t, p.AssociateExternal("ext-1", id.PaymentPlatformMercadoPago, "", s.now))

			testutil.Then(t, "a second association with ext-2 conflicts and keeps ext-1", func(t *testing.T) {
				err := p.AssociateExternal("ext-2", id.PaymentPlatformStone, "", s.now)
				require.Error(t, err)
				assert.Equal(t, "Payment already associated with external source", err.Error())
				assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
				assert.Equal(t, "ext-1", p.ExternalID())
				assert.Equal(t, id.PaymentPlatformMercadoPago, p.Platform())
			})
		})
	})
}

func (s *PaymentSuite) TestAssociateExternal() {
	s.Run("keeps the QR code for QR payments", func() {
		p := s.newPayment(id.PaymentTypeQRCode)
		later := s.now.Add(time.Second)
		s.Require().NoError(p.AssociateExternal("ext-qr", id.PaymentPlatformPagSeguro, "qr-payload", later))
		s.Equal("qr-payload", p.QRCode())
		s.Equal(later, p.UpdatedAt())
	})

	s.Run("ignores the QR code for card payments", func() {
		p := s.newPayment(id.PaymentTypeCard)
		s.Require().NoError(p.AssociateExternal("ext-card", id.PaymentPlatformStone, "qr-payload", s.now))
		s.Empty(p.QRCode())
		s.Equal("ext-card", p.ExternalID())
	})

	s.Run("requires an external id", func() {
		p := s.newPayment(id.PaymentTypeCard)
		err := p.AssociateExternal("   ", id.PaymentPlatformStone, "", s.now)
		s.Require().Error(err)
		s.Equal("External id is required", err.Error())
		s.False(p.HasExternalAssociation())
	})

	s.Run("requires a known platform", func() {
		p := s.newPayment(id.PaymentTypeCard)
		err := p.AssociateExternal("ext", id.PaymentPlatform("PAYPAL"), "", s.now)
		s.Require().Error(err)
		s.Equal("Invalid payment platform", err.Error())
		s.False(p.HasExternalAssociation())
	})
}

func (s *PaymentSuite) TestSettlementExhaustiveness() {
	type op struct {
		name    string
		apply   func(*Payment) error
		target  PaymentStatus
		message string
	}
	ops := []op{
		{"approve", func(p *Payment) error { return p.Approve(s.now) }, PaymentStatusApproved, "Payment must be pending to be Approved"},
		{"reject", func(p *Payment) error { return p.Reject(s.now) }, PaymentStatusRefused, "Payment must be pending to be Rejected"},
	}

	for _, from := range AllPaymentStatuses {
		for _, o := range ops {
			s.Run(o.name+" from "+string(from), func() {
				p := s.newPayment(id.PaymentTypeCard)
				p.status = from

				err := o.apply(p)
				if from == PaymentStatusPending {
					s.Require().NoError(err)
					s.Equal(o.target, p.Status())
					return
				}
				s.Require().Error(err)
				s.Equal(o.message, err.Error())
				s.True(dErrors.HasCode(err, dErrors.CodeConflict))
				s.Equal(from, p.Status())
			})
		}
	}
}

func (s *PaymentSuite) TestRecordConversion() {
	s.Run("round-trips an associated payment", func() {
		p := s.newPayment(id.PaymentTypeQRCode)
		s.Require().NoError(p.AssociateExternal("ext-9", id.PaymentPlatformMercadoPago, "qr", s.now.Add(time.Minute)))
		s.Require().NoError(p.Approve(s.now.Add(2 * time.Minute)))

		restored, err := FromRecord(p.ToRecord())
		s.Require().NoError(err)
		s.Equal(p, restored)
	})

	s.Run("round-trips a fresh payment", func() {
		p := s.newPayment(id.PaymentTypeCard)
		restored, err := FromRecord(p.ToRecord())
		s.Require().NoError(err)
		s.Equal(p, restored)
	})

	s.Run("rejects half an external association", func() {
		rec := s.newPayment(id.PaymentTypeCard).ToRecord()
		rec.ExternalID = "ext"
		_, err := FromRecord(rec)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidResource))
	})

	s.Run("rejects a non-positive total", func() {
		rec := s.newPayment(id.PaymentTypeCard).ToRecord()
		rec.Total = 0
		_, err := FromRecord(rec)
		s.Require().Error(err)
		s.Equal("Payment total must be greater than zero", err.Error())
	})
}
