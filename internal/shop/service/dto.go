package service

import (
	"time"

	"kiosk/internal/shop/models"
)

type CreateStoreInput struct {
	Name  string
	CNPJ  string
	Email string
	Phone string
}

type AddTotemInput struct {
	StoreID string
	Name    string
}

type StoreOutput struct {
	ID        string
	Name      string
	CNPJ      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

// TotemOutput carries the totem token only when the totem is created; it is
// the credential the totem uses from then on and cannot be read back.
type TotemOutput struct {
	ID        string
	StoreID   string
	Name      string
	Token     string
	CreatedAt time.Time
}

func toStoreOutput(st *models.Store) *StoreOutput {
	return &StoreOutput{
		ID:        st.ID.String(),
		Name:      st.Name,
		CNPJ:      st.CNPJ.Format(),
		Email:     st.Email.String(),
		Phone:     st.Phone.Format(),
		CreatedAt: st.CreatedAt,
	}
}

func toTotemOutput(t *models.Totem) *TotemOutput {
	return &TotemOutput{
		ID:        t.ID.String(),
		StoreID:   t.StoreID.String(),
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
	}
}
