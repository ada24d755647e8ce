package service

import (
	"context"
	"errors"
	"time"

	"kiosk/internal/customer/models"
	"kiosk/pkg/document"
	id "kiosk/pkg/domain"
	dErrors "kiosk/pkg/domain-errors"
	"kiosk/pkg/email"
	"kiosk/pkg/platform/sentinel"
	"kiosk/pkg/requestcontext"
)

// CustomerStore persists customers. CreateIfCPFAvailable returns
// sentinel.ErrAlreadyUsed for a registered CPF; lookups return
// sentinel.ErrNotFound.
type CustomerStore interface {
	CreateIfCPFAvailable(ctx context.Context, customer *models.Customer) error
	FindByID(ctx context.Context, customerID id.CustomerID) (*models.Customer, error)
	FindByCPF(ctx context.Context, cpf document.CPF) (*models.Customer, error)
}

// Service implements the customer use cases.
type Service struct {
	customers CustomerStore
}

func New(customers CustomerStore) (*Service, error) {
	if customers == nil {
		return nil, errors.New("customers store is required")
	}
	return &Service{customers: customers}, nil
}

type CreateCustomerInput struct {
	Name  string
	CPF   string
	Email string
}

type CustomerOutput struct {
	ID        string
	Name      string
	CPF       string
	Email     string
	CreatedAt time.Time
}

func toOutput(c *models.Customer) *CustomerOutput {
	return &CustomerOutput{
		ID:        c.ID.String(),
		Name:      c.Name,
		CPF:       c.CPF.Format(),
		Email:     c.Email.String(),
		CreatedAt: c.CreatedAt,
	}
}

func (s *Service) CreateCustomer(ctx context.Context, in CreateCustomerInput) (*CustomerOutput, error) {
	cpf, err := document.NewCPF(in.CPF)
	if err != nil {
		return nil, err
	}
	mail, err := email.New(in.Email)
	if err != nil {
		return nil, err
	}
	customer, err := models.NewCustomer(id.NewCustomerID(), in.Name, cpf, mail, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.customers.CreateIfCPFAvailable(ctx, customer); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return nil, dErrors.New(dErrors.CodeConflict, "CPF already registered")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create customer")
	}
	return toOutput(customer), nil
}

func (s *Service) GetCustomer(ctx context.Context, rawID string) (*CustomerOutput, error) {
	customerID, err := id.ParseCustomerID(rawID)
	if err != nil {
		return nil, err
	}
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, wrapCustomerErr(err)
	}
	return toOutput(customer), nil
}

// GetCustomerByCPF accepts the CPF formatted or as bare digits.
func (s *Service) GetCustomerByCPF(ctx context.Context, rawCPF string) (*CustomerOutput, error) {
	cpf, err := document.NewCPF(rawCPF)
	if err != nil {
		return nil, err
	}
	customer, err := s.customers.FindByCPF(ctx, cpf)
	if err != nil {
		return nil, wrapCustomerErr(err)
	}
	return toOutput(customer), nil
}

func wrapCustomerErr(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "Customer not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load customer")
}
