package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"kiosk/internal/shop/models"
	"kiosk/pkg/document"
	id "kiosk/pkg/domain"
	"kiosk/pkg/email"
	"kiosk/pkg/phone"
	"kiosk/pkg/platform/sentinel"
)

type ShopStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func TestShopStoreSuite(t *testing.T) {
	suite.Run(t, new(ShopStoreSuite))
}

func (s *ShopStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func (s *ShopStoreSuite) newStore(rawCNPJ string) *models.Store {
	cnpj, err := document.NewCNPJ(rawCNPJ)
	s.Require().NoError(err)
	mail, err := email.New("loja@example.com")
	s.Require().NoError(err)
	tel, err := phone.New("+55 21 2555-1234")
	s.Require().NoError(err)
	st, err := models.NewStore(id.NewStoreID(), "Loja", cnpj, mail, tel, time.Now())
	s.Require().NoError(err)
	return st
}

func (s *ShopStoreSuite) newTotem(storeID id.StoreID, name, token string) *models.Totem {
	totem, err := models.NewTotem(id.NewTotemID(), storeID, name, token, time.Now())
	s.Require().NoError(err)
	return totem
}

func (s *ShopStoreSuite) TestStores() {
	st := s.newStore("11.222.333/0001-81")
	s.Require().NoError(s.store.CreateStoreIfCNPJAvailable(s.ctx, st))

	s.Run("finds by id", func() {
		found, err := s.store.FindStoreByID(s.ctx, st.ID)
		s.Require().NoError(err)
		s.Equal(st, found)
	})

	s.Run("rejects a taken CNPJ", func() {
		err := s.store.CreateStoreIfCNPJAvailable(s.ctx, s.newStore("11222333000181"))
		s.Require().ErrorIs(err, sentinel.ErrAlreadyUsed)
		s.Require().ErrorIs(err, ErrCNPJTaken)
	})

	s.Run("unknown id", func() {
		_, err := s.store.FindStoreByID(s.ctx, id.NewStoreID())
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *ShopStoreSuite) TestTotems() {
	st := s.newStore("11.222.333/0001-81")
	s.Require().NoError(s.store.CreateStoreIfCNPJAvailable(s.ctx, st))
	totem := s.newTotem(st.ID, "Front", "token-1")
	s.Require().NoError(s.store.CreateTotem(s.ctx, totem))

	s.Run("finds by id and token digest", func() {
		byID, err := s.store.FindTotemByID(s.ctx, totem.ID)
		s.Require().NoError(err)
		s.Equal(totem, byID)

		byToken, err := s.store.FindTotemByTokenDigest(s.ctx, "token-1")
		s.Require().NoError(err)
		s.Equal(totem.ID, byToken.ID)
	})

	s.Run("unique keys", func() {
		err := s.store.CreateTotem(s.ctx, s.newTotem(st.ID, "front", "token-2"))
		s.Require().ErrorIs(err, ErrTotemNameTaken)

		err = s.store.CreateTotem(s.ctx, s.newTotem(st.ID, "Back", "token-1"))
		s.Require().ErrorIs(err, ErrTokenTaken)
	})

	s.Run("requires an existing store", func() {
		err := s.store.CreateTotem(s.ctx, s.newTotem(id.NewStoreID(), "Side", "token-3"))
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("lists by store", func() {
		totems, err := s.store.ListTotems(s.ctx, st.ID)
		s.Require().NoError(err)
		s.Len(totems, 1)
	})
}
