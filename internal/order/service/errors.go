package service

import (
	"errors"

	dErrors "kiosk/pkg/domain-errors"
	"kiosk/pkg/platform/sentinel"
)

// translate maps a gateway error onto the domain vocabulary. Domain errors
// pass through untouched.
func translate(err error, notFound, failure string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, notFound)
	}
	if _, ok := dErrors.As(err); ok {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, failure)
}
