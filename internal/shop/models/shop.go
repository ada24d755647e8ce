package models

import (
	"strings"
	"time"

	"kiosk/pkg/document"
	id "kiosk/pkg/domain"
	dErrors "kiosk/pkg/domain-errors"
	"kiosk/pkg/email"
	"kiosk/pkg/phone"
)

const maxNameLength = 128

// Store is a business that sells through kiosks.
//
// Invariants:
//   - Name is non-empty and at most 128 characters
//   - CNPJ, Email and Phone are validated value objects
//   - CreatedAt is immutable after construction
type Store struct {
	ID        id.StoreID
	Name      string
	CNPJ      document.CNPJ
	Email     email.Email
	Phone     phone.BrazilianPhone
	CreatedAt time.Time
}

func NewStore(storeID id.StoreID, name string, cnpj document.CNPJ, mail email.Email, tel phone.BrazilianPhone, now time.Time) (*Store, error) {
	if storeID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Store id is required")
	}
	name, err := validName(name, "Store")
	if err != nil {
		return nil, err
	}
	if cnpj.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Invalid CNPJ")
	}
	if mail.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Invalid Email")
	}
	if tel.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Invalid BrazilianPhone")
	}
	return &Store{
		ID:        storeID,
		Name:      name,
		CNPJ:      cnpj,
		Email:     mail,
		Phone:     tel,
		CreatedAt: now,
	}, nil
}

// Totem is a self-service terminal installed in a store. It authenticates
// with Token, which is generated once at creation.
//
// Invariants:
//   - StoreID is never nil
//   - Name is unique per store (enforced by the gateway)
//   - TokenDigest is non-empty and globally unique (enforced by the gateway)
//   - the plaintext token is never stored
type Totem struct {
	ID          id.TotemID
	StoreID     id.StoreID
	Name        string
	TokenDigest string
	CreatedAt   time.Time
}

func NewTotem(totemID id.TotemID, storeID id.StoreID, name, tokenDigest string, now time.Time) (*Totem, error) {
	if totemID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Totem id is required")
	}
	if storeID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Store id is required")
	}
	name, err := validName(name, "Totem")
	if err != nil {
		return nil, err
	}
	if tokenDigest == "" {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Totem token is required")
	}
	return &Totem{
		ID:          totemID,
		StoreID:     storeID,
		Name:        name,
		TokenDigest: tokenDigest,
		CreatedAt:   now,
	}, nil
}

func validName(name, entity string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", dErrors.New(dErrors.CodeInvalidResource, entity+" name is required")
	}
	if len(name) > maxNameLength {
		return "", dErrors.New(dErrors.CodeInvalidResource, entity+" name must be 128 characters or less")
	}
	return name, nil
}
