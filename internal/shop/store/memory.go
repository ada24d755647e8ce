// Package store holds the in-memory gateway for stores and totems.
package store

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"kiosk/internal/shop/models"
	id "kiosk/pkg/domain"
	"kiosk/pkg/platform/sentinel"
)

// Sentinel-wrapping errors that name the violated unique key, so services can
// pick the right conflict message.
var (
	ErrCNPJTaken      = fmt.Errorf("cnpj: %w", sentinel.ErrAlreadyUsed)
	ErrTotemNameTaken = fmt.Errorf("totem name: %w", sentinel.ErrAlreadyUsed)
	ErrTokenTaken     = fmt.Errorf("totem token: %w", sentinel.ErrAlreadyUsed)
)

type InMemory struct {
	mu           sync.RWMutex
	stores       map[id.StoreID]models.Store
	byCNPJ       map[string]id.StoreID
	totems       map[id.TotemID]models.Totem
	byToken      map[string]id.TotemID
	byStoreTotem map[string]id.TotemID
}

func NewInMemory() *InMemory {
	return &InMemory{
		stores:       make(map[id.StoreID]models.Store),
		byCNPJ:       make(map[string]id.StoreID),
		totems:       make(map[id.TotemID]models.Totem),
		byToken:      make(map[string]id.TotemID),
		byStoreTotem: make(map[string]id.TotemID),
	}
}

// CreateStoreIfCNPJAvailable stores a new store unless its CNPJ is taken.
func (s *InMemory) CreateStoreIfCNPJAvailable(_ context.Context, store *models.Store) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := store.CNPJ.String()
	if _, taken := s.byCNPJ[key]; taken {
		return ErrCNPJTaken
	}
	s.stores[store.ID] = *store
	s.byCNPJ[key] = store.ID
	return nil
}

func (s *InMemory) FindStoreByID(_ context.Context, storeID id.StoreID) (*models.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	store, ok := s.stores[storeID]
	if !ok {
		return nil, fmt.Errorf("store %s: %w", storeID, sentinel.ErrNotFound)
	}
	return &store, nil
}

// CreateTotem stores a totem after checking that its store exists, its name
// is free within the store (case-insensitive) and its token digest is unused.
func (s *InMemory) CreateTotem(_ context.Context, totem *models.Totem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.stores[totem.StoreID]; !ok {
		return fmt.Errorf("store %s: %w", totem.StoreID, sentinel.ErrNotFound)
	}
	nameKey := totemNameKey(totem.StoreID, totem.Name)
	if _, taken := s.byStoreTotem[nameKey]; taken {
		return ErrTotemNameTaken
	}
	if _, taken := s.byToken[totem.TokenDigest]; taken {
		return ErrTokenTaken
	}
	s.totems[totem.ID] = *totem
	s.byToken[totem.TokenDigest] = totem.ID
	s.byStoreTotem[nameKey] = totem.ID
	return nil
}

func (s *InMemory) FindTotemByID(_ context.Context, totemID id.TotemID) (*models.Totem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totem, ok := s.totems[totemID]
	if !ok {
		return nil, fmt.Errorf("totem %s: %w", totemID, sentinel.ErrNotFound)
	}
	return &totem, nil
}

func (s *InMemory) FindTotemByTokenDigest(_ context.Context, digest string) (*models.Totem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	totemID, ok := s.byToken[digest]
	if !ok {
		return nil, fmt.Errorf("totem by token: %w", sentinel.ErrNotFound)
	}
	totem := s.totems[totemID]
	return &totem, nil
}

// ListTotems returns the store's totems.
func (s *InMemory) ListTotems(_ context.Context, storeID id.StoreID) ([]*models.Totem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Totem
	for _, totem := range s.totems {
		if totem.StoreID == storeID {
			out = append(out, &totem)
		}
	}
	return out, nil
}

func totemNameKey(storeID id.StoreID, name string) string {
	return storeID.String() + "/" + strings.ToLower(name)
}
