package models

import (
	"strings"
	"time"

	"kiosk/pkg/document"
	id "kiosk/pkg/domain"
	dErrors "kiosk/pkg/domain-errors"
	"kiosk/pkg/email"
)

const maxNameLength = 128

// Customer is a person identified by CPF who can be attached to orders.
//
// Invariants:
//   - ID is never nil
//   - CPF and Email are validated value objects
//   - Name is non-empty and at most 128 characters
type Customer struct {
	ID        id.CustomerID
	Name      string
	CPF       document.CPF
	Email     email.Email
	CreatedAt time.Time
}

// NewCustomer builds a customer. A blank name is derived from the e-mail
// local part.
func NewCustomer(customerID id.CustomerID, name string, cpf document.CPF, mail email.Email, now time.Time) (*Customer, error) {
	if customerID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Customer id is required")
	}
	if cpf.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Invalid CPF")
	}
	if mail.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Invalid Email")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		first, last := email.DeriveNameFromEmail(mail.String())
		name = first + " " + last
	}
	if len(name) > maxNameLength {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Customer name must be 128 characters or less")
	}
	return &Customer{
		ID:        customerID,
		Name:      name,
		CPF:       cpf,
		Email:     mail,
		CreatedAt: now,
	}, nil
}
