package service

import (
	"context"
	"strings"
	"time"

	"kiosk/internal/payment/models"
	id "kiosk/pkg/domain"
	dErrors "kiosk/pkg/domain-errors"
	"kiosk/pkg/requestcontext"
)

// CreatePayment opens a PENDING payment for a pending order. Total and store
// are copied from the order. A new attempt is only allowed once every earlier
// attempt was refused.
func (s *Service) CreatePayment(ctx context.Context, in CreatePaymentInput) (*PaymentOutput, error) {
	paymentType, err := id.ParsePaymentType(in.PaymentType)
	if err != nil {
		return nil, err
	}
	orderID, err := id.ParseOrderID(in.OrderID)
	if err != nil {
		return nil, err
	}
	order, err := s.orders.FindOrder(ctx, orderID)
	if err != nil {
		return nil, wrapOrderErr(err)
	}
	if !order.Pending {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Payments can only be created for pending orders")
	}
	existing, err := s.payments.ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, wrapPaymentErr(err, "failed to list payments")
	}
	for _, p := range existing {
		if p.Status() != models.PaymentStatusRefused {
			return nil, dErrors.New(dErrors.CodeConflict, "Order already has an active payment")
		}
	}

	payment, err := models.NewPayment(id.NewPaymentID(), order.ID, order.StoreID, paymentType, order.Total, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.payments.Save(ctx, payment); err != nil {
		return nil, wrapPaymentErr(err, "failed to save payment")
	}

	s.incrementPaymentCreated(paymentType)
	return toOutput(payment), nil
}

func (s *Service) GetPayment(ctx context.Context, rawID string) (*PaymentOutput, error) {
	payment, err := s.load(ctx, rawID)
	if err != nil {
		return nil, err
	}
	return toOutput(payment), nil
}

// GetPaymentByExternalID resolves a payment from the provider's reference.
func (s *Service) GetPaymentByExternalID(ctx context.Context, externalID string) (*PaymentOutput, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "External id is required")
	}
	payment, err := s.payments.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, wrapPaymentErr(err, "failed to load payment")
	}
	return toOutput(payment), nil
}

// RequestExternalCharge asks the provider for a charge and associates the
// payment with it. A payment that is already associated is rejected before
// the provider is called.
func (s *Service) RequestExternalCharge(ctx context.Context, rawID string) (*PaymentOutput, error) {
	payment, err := s.load(ctx, rawID)
	if err != nil {
		return nil, err
	}
	if payment.HasExternalAssociation() {
		return nil, dErrors.New(dErrors.CodeConflict, "Payment already associated with external source")
	}
	if payment.Status() != models.PaymentStatusPending {
		return nil, dErrors.New(dErrors.CodeConflict, "Payment must be pending to be charged")
	}

	start := time.Now()
	charge, err := s.provider.CreateCharge(ctx, ChargeRequest{
		PaymentID: payment.ID(),
		OrderID:   payment.OrderID(),
		Type:      payment.Type(),
		Amount:    payment.Total(),
	})
	s.observeCharge(start, err)
	if err != nil {
		return nil, wrapProviderErr(err)
	}

	if err := payment.AssociateExternal(charge.ExternalID, charge.Platform, charge.QRCode, requestcontext.Now(ctx)); err != nil {
		return nil, err
	}
	if err := s.payments.Save(ctx, payment); err != nil {
		return nil, wrapPaymentErr(err, "failed to save payment")
	}
	return toOutput(payment), nil
}

func (s *Service) AssociateExternal(ctx context.Context, in AssociateExternalInput) (*PaymentOutput, error) {
	payment, err := s.load(ctx, in.PaymentID)
	if err != nil {
		return nil, err
	}
	err = payment.AssociateExternal(in.ExternalID, id.PaymentPlatform(in.Platform), in.QRCode, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.payments.Save(ctx, payment); err != nil {
		return nil, wrapPaymentErr(err, "failed to save payment")
	}
	return toOutput(payment), nil
}

// ApprovePayment settles a pending payment as approved. The order's status is
// not touched; callers advance it through the order service.
func (s *Service) ApprovePayment(ctx context.Context, rawID string) (*PaymentOutput, error) {
	return s.settle(ctx, rawID, (*models.Payment).Approve)
}

// RejectPayment settles a pending payment as refused.
func (s *Service) RejectPayment(ctx context.Context, rawID string) (*PaymentOutput, error) {
	return s.settle(ctx, rawID, (*models.Payment).Reject)
}

func (s *Service) settle(ctx context.Context, rawID string, apply func(*models.Payment, time.Time) error) (*PaymentOutput, error) {
	payment, err := s.load(ctx, rawID)
	if err != nil {
		return nil, err
	}
	if err := apply(payment, requestcontext.Now(ctx)); err != nil {
		return nil, err
	}
	if err := s.payments.Save(ctx, payment); err != nil {
		return nil, wrapPaymentErr(err, "failed to save payment")
	}

	s.incrementSettled(payment.Status())
	return toOutput(payment), nil
}

func (s *Service) load(ctx context.Context, rawID string) (*models.Payment, error) {
	paymentID, err := id.ParsePaymentID(rawID)
	if err != nil {
		return nil, err
	}
	payment, err := s.payments.FindByID(ctx, paymentID)
	if err != nil {
		return nil, wrapPaymentErr(err, "failed to load payment")
	}
	return payment, nil
}

func (s *Service) incrementPaymentCreated(paymentType id.PaymentType) {
	if s.metrics != nil {
		s.metrics.IncrementPaymentCreated(paymentType.String())
	}
}

func (s *Service) incrementSettled(status models.PaymentStatus) {
	if s.metrics != nil {
		s.metrics.IncrementSettled(status.String())
	}
}

func (s *Service) observeCharge(start time.Time, err error) {
	if s.metrics != nil {
		s.metrics.ObserveCharge(start, err)
	}
}
