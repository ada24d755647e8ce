// Package provider holds payment provider adapters.
package provider

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"kiosk/internal/payment/service"
	id "kiosk/pkg/domain"
	"kiosk/pkg/platform/sentinel"
)

// Fake opens charges locally. It stands in for a real platform in
// development and tests: external ids are random and QR payloads are
// deterministic strings built from the charge.
type Fake struct {
	platform id.PaymentPlatform

	mu      sync.Mutex
	charges map[id.PaymentID]service.Charge
	down    bool
}

func NewFake(platform id.PaymentPlatform) *Fake {
	return &Fake{platform: platform, charges: make(map[id.PaymentID]service.Charge)}
}

// SetAvailable toggles whether CreateCharge reaches the platform.
func (f *Fake) SetAvailable(available bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.down = !available
}

func (f *Fake) CreateCharge(ctx context.Context, req service.ChargeRequest) (service.Charge, error) {
	if err := ctx.Err(); err != nil {
		return service.Charge{}, fmt.Errorf("create charge: %w: %w", sentinel.ErrUnavailable, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return service.Charge{}, fmt.Errorf("create charge: %w", sentinel.ErrUnavailable)
	}
	if existing, ok := f.charges[req.PaymentID]; ok {
		return existing, nil
	}

	charge := service.Charge{
		ExternalID: "fake-" + uuid.NewString(),
		Platform:   f.platform,
	}
	if req.Type.IsQRCode() {
		charge.QRCode = fmt.Sprintf("kiosk://pay/%s?order=%s&amount=%.2f", charge.ExternalID, req.OrderID, req.Amount)
	}
	f.charges[req.PaymentID] = charge
	return charge, nil
}

// ChargeCount reports how many distinct charges were opened.
func (f *Fake) ChargeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.charges)
}
