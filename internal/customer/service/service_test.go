package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"kiosk/internal/customer/store"
	id "kiosk/pkg/domain"
	dErrors "kiosk/pkg/domain-errors"
	"kiosk/pkg/requestcontext"
)

type CustomerServiceSuite struct {
	suite.Suite
	service *Service
	ctx     context.Context
	now     time.Time
}

func TestCustomerServiceSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceSuite))
}

func (s *CustomerServiceSuite) SetupTest() {
	var err error
	s.service, err = New(store.NewInMemory())
	s.Require().NoError(err)
	s.now = time.Date(2024, 9, 9, 9, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
}

func (s *CustomerServiceSuite) TestNew() {
	_, err := New(nil)
	s.Require().Error(err)
	s.Contains(err.Error(), "customers store is required")
}

func (s *CustomerServiceSuite) TestCreateCustomer() {
	s.Run("normalizes documents and contact", func() {
		out, err := s.service.CreateCustomer(s.ctx, CreateCustomerInput{
			Name:  "Joao",
			CPF:   "52998224725",
			Email: " Joao@Example.com ",
		})
		s.Require().NoError(err)
		s.Equal("529.982.247-25", out.CPF)
		s.Equal("joao@example.com", out.Email)
		s.Equal(s.now, out.CreatedAt)
	})

	s.Run("duplicate CPF conflicts", func() {
		_, err := s.service.CreateCustomer(s.ctx, CreateCustomerInput{
			CPF:   "529.982.247-25",
			Email: "other@example.com",
		})
		s.Require().Error(err)
		s.Equal("CPF already registered", err.Error())
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})

	s.Run("invalid CPF", func() {
		_, err := s.service.CreateCustomer(s.ctx, CreateCustomerInput{CPF: "123", Email: "a@b.com"})
		s.Require().Error(err)
		s.Equal("Invalid CPF", err.Error())
	})

	s.Run("invalid e-mail", func() {
		_, err := s.service.CreateCustomer(s.ctx, CreateCustomerInput{CPF: "111.444.777-35", Email: "nope"})
		s.Require().Error(err)
		s.Equal("Invalid Email", err.Error())
	})
}

func (s *CustomerServiceSuite) TestLookups() {
	created, err := s.service.CreateCustomer(s.ctx, CreateCustomerInput{CPF: "111.444.777-35", Email: "ana.souza@example.com"})
	s.Require().NoError(err)
	s.Equal("Ana Souza", created.Name)

	s.Run("by id", func() {
		out, err := s.service.GetCustomer(s.ctx, created.ID)
		s.Require().NoError(err)
		s.Equal(created, out)
	})

	s.Run("by CPF in any format", func() {
		out, err := s.service.GetCustomerByCPF(s.ctx, "11144477735")
		s.Require().NoError(err)
		s.Equal(created.ID, out.ID)
	})

	s.Run("unknown customer", func() {
		_, err := s.service.GetCustomer(s.ctx, id.NewCustomerID().String())
		s.Require().Error(err)
		s.Equal("Customer not found", err.Error())
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}
