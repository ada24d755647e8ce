// Package phone implements the BrazilianPhone value object.
package phone

import (
	"strings"

	dErrors "kiosk/pkg/domain-errors"
)

const (
	countryCode    = "55"
	landlineLength = 10
	mobileLength   = 11
)

// BrazilianPhone is a phone number normalized to digits with the 55 country
// prefix, e.g. "5511987654321". The zero value is not a valid phone.
type BrazilianPhone struct {
	digits string
}

// New parses raw input such as "+55 (11) 98765-4321", "11 3456-7890" or
// "5511987654321".
//
// The local part (after the optional 55 prefix) must be either 11 digits
// whose subscriber number starts with 9 (mobile) or 10 digits whose
// subscriber number starts with 2-5 (landline). Area codes never start
// with 0. Input with a leading "+" must carry the 55 prefix.
func New(raw string) (BrazilianPhone, error) {
	s := strings.TrimSpace(raw)
	international := strings.HasPrefix(s, "+")
	s = strings.TrimPrefix(s, "+")

	digits, ok := stripFormatting(s)
	if !ok {
		return BrazilianPhone{}, invalid()
	}

	local := digits
	switch {
	case strings.HasPrefix(digits, countryCode) && (len(digits) == landlineLength+2 || len(digits) == mobileLength+2):
		local = digits[len(countryCode):]
	case international:
		return BrazilianPhone{}, invalid()
	}

	if !validLocal(local) {
		return BrazilianPhone{}, invalid()
	}
	return BrazilianPhone{digits: countryCode + local}, nil
}

func stripFormatting(s string) (string, bool) {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')' || r == '/' || r == '\t':
		default:
			return "", false
		}
	}
	return b.String(), b.Len() > 0
}

func validLocal(local string) bool {
	if local[0] == '0' {
		return false
	}
	switch len(local) {
	case mobileLength:
		return local[2] == '9'
	case landlineLength:
		return local[2] >= '2' && local[2] <= '5'
	default:
		return false
	}
}

func invalid() error {
	return dErrors.New(dErrors.CodeInvalidResource, "Invalid BrazilianPhone")
}

// String returns the canonical digits including the 55 prefix.
func (p BrazilianPhone) String() string {
	return p.digits
}

// Format returns "+55 (AA) 9NNNN-NNNN" for mobiles and "+55 (AA) NNNN-NNNN"
// for landlines.
func (p BrazilianPhone) Format() string {
	if p.digits == "" {
		return ""
	}
	local := p.local()
	number := local[2:]
	split := len(number) - 4
	return "+" + countryCode + " (" + local[:2] + ") " + number[:split] + "-" + number[split:]
}

func (p BrazilianPhone) Equals(other BrazilianPhone) bool {
	return p.digits == other.digits
}

// IsMobile reports whether the number has the 11-digit mobile layout.
func (p BrazilianPhone) IsMobile() bool {
	return len(p.local()) == mobileLength
}

// AreaCode returns the two-digit DDD.
func (p BrazilianPhone) AreaCode() string {
	if p.digits == "" {
		return ""
	}
	return p.local()[:2]
}

func (p BrazilianPhone) IsZero() bool {
	return p.digits == ""
}

func (p BrazilianPhone) local() string {
	if len(p.digits) < len(countryCode) {
		return ""
	}
	return p.digits[len(countryCode):]
}
