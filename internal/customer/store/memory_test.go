package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiosk/internal/customer/models"
	"kiosk/pkg/document"
	id "kiosk/pkg/domain"
	"kiosk/pkg/email"
	"kiosk/pkg/platform/sentinel"
)

func newCustomer(t *testing.T, rawCPF string) *models.Customer {
	t.Helper()
	cpf, err := document.NewCPF(rawCPF)
	require.NoError(t, err)
	mail, err := email.New("cliente@example.com")
	require.NoError(t, err)
	c, err := models.NewCustomer(id.NewCustomerID(), "Cliente", cpf, mail, time.Now())
	require.NoError(t, err)
	return c
}

func TestCreateAndFind(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()
	c := newCustomer(t, "529.982.247-25")
	require.NoError(t, s.CreateIfCPFAvailable(ctx, c))

	byID, err := s.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c, byID)

	byCPF, err := s.FindByCPF(ctx, c.CPF)
	require.NoError(t, err)
	assert.Equal(t, c.ID, byCPF.ID)

	_, err = s.FindByID(ctx, id.NewCustomerID())
	require.ErrorIs(t, err, sentinel.ErrNotFound)

	other, err := document.NewCPF("111.444.777-35")
	require.NoError(t, err)
	_, err = s.FindByCPF(ctx, other)
	require.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestConcurrentRegistrationWithSameCPF(t *testing.T) {
	ctx := context.Background()
	s := NewInMemory()

	customers := make([]*models.Customer, 20)
	for i := range customers {
		customers[i] = newCustomer(t, "52998224725")
	}

	var wg sync.WaitGroup
	errs := make([]error, len(customers))
	for i, c := range customers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = s.CreateIfCPFAvailable(ctx, c)
		}()
	}
	wg.Wait()

	var created int
	for _, err := range errs {
		if err == nil {
			created++
			continue
		}
		assert.ErrorIs(t, err, sentinel.ErrAlreadyUsed)
	}
	assert.Equal(t, 1, created)
}
