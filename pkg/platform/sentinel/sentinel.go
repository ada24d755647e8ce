package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Gateways and the payment provider
// return these (optionally wrapped) and services translate them into coded
// domain errors:
//   - ErrNotFound: no record with the requested key
//   - ErrAlreadyUsed: a unique key (CPF, CNPJ, totem token, external id) is taken
//   - ErrUnavailable: the external payment provider could not be reached
//
// Validation failures never use these; see pkg/domain-errors.
var (
	ErrNotFound    = errors.New("not found")
	ErrAlreadyUsed = errors.New("already used")
	ErrUnavailable = errors.New("unavailable")
)
