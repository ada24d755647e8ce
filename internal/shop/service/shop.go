package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"kiosk/internal/shop/models"
	"kiosk/internal/shop/secrets"
	"kiosk/internal/shop/store"
	"kiosk/pkg/document"
	id "kiosk/pkg/domain"
	dErrors "kiosk/pkg/domain-errors"
	"kiosk/pkg/email"
	"kiosk/pkg/phone"
	"kiosk/pkg/platform/sentinel"
	"kiosk/pkg/requestcontext"
)

func (s *Service) CreateStore(ctx context.Context, in CreateStoreInput) (*StoreOutput, error) {
	cnpj, err := document.NewCNPJ(in.CNPJ)
	if err != nil {
		return nil, err
	}
	mail, err := email.New(in.Email)
	if err != nil {
		return nil, err
	}
	tel, err := phone.New(in.Phone)
	if err != nil {
		return nil, err
	}

	st, err := models.NewStore(id.NewStoreID(), in.Name, cnpj, mail, tel, requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.shops.CreateStoreIfCNPJAvailable(ctx, st); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return nil, dErrors.New(dErrors.CodeConflict, "CNPJ already registered")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create store")
	}

	s.incrementStoreCreated()
	return toStoreOutput(st), nil
}

func (s *Service) GetStore(ctx context.Context, rawID string) (*StoreOutput, error) {
	storeID, err := id.ParseStoreID(rawID)
	if err != nil {
		return nil, err
	}
	st, err := s.shops.FindStoreByID(ctx, storeID)
	if err != nil {
		return nil, wrapStoreErr(err)
	}
	return toStoreOutput(st), nil
}

// AddTotem registers a totem under a store and returns it with its freshly
// generated token.
func (s *Service) AddTotem(ctx context.Context, in AddTotemInput) (*TotemOutput, error) {
	storeID, err := id.ParseStoreID(in.StoreID)
	if err != nil {
		return nil, err
	}
	token, err := s.generateToken()
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to generate totem token")
	}

	totem, err := models.NewTotem(id.NewTotemID(), storeID, in.Name, secrets.Digest(token), requestcontext.Now(ctx))
	if err != nil {
		return nil, err
	}
	if err := s.shops.CreateTotem(ctx, totem); err != nil {
		switch {
		case errors.Is(err, store.ErrTotemNameTaken):
			return nil, dErrors.New(dErrors.CodeConflict, "Totem name already in use")
		case errors.Is(err, store.ErrTokenTaken):
			return nil, dErrors.New(dErrors.CodeConflict, "Totem token already in use")
		default:
			return nil, wrapStoreErr(err)
		}
	}

	s.incrementTotemCreated()
	out := toTotemOutput(totem)
	out.Token = token
	return out, nil
}

// GetTotemByToken resolves the totem presenting token.
func (s *Service) GetTotemByToken(ctx context.Context, token string) (*TotemOutput, error) {
	start := time.Now()
	defer s.observeResolveTotem(start)

	token = strings.TrimSpace(token)
	if token == "" {
		return nil, dErrors.New(dErrors.CodeInvalidResource, "Totem token is required")
	}
	totem, err := s.shops.FindTotemByTokenDigest(ctx, secrets.Digest(token))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "Totem not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve totem")
	}
	return toTotemOutput(totem), nil
}

// ListTotems returns the store's totems ordered by name.
func (s *Service) ListTotems(ctx context.Context, rawStoreID string) ([]*TotemOutput, error) {
	storeID, err := id.ParseStoreID(rawStoreID)
	if err != nil {
		return nil, err
	}
	if _, err := s.shops.FindStoreByID(ctx, storeID); err != nil {
		return nil, wrapStoreErr(err)
	}
	totems, err := s.shops.ListTotems(ctx, storeID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list totems")
	}
	out := make([]*TotemOutput, 0, len(totems))
	for _, t := range totems {
		out = append(out, toTotemOutput(t))
	}
	slices.SortFunc(out, func(a, b *TotemOutput) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}

func wrapStoreErr(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "Store not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load store")
}

func (s *Service) incrementStoreCreated() {
	if s.metrics != nil {
		s.metrics.IncrementStoreCreated()
	}
}

func (s *Service) incrementTotemCreated() {
	if s.metrics != nil {
		s.metrics.IncrementTotemCreated()
	}
}

func (s *Service) observeResolveTotem(start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveResolveTotem(start)
	}
}
