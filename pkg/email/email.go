// Package email implements the Email value object and helpers derived from
// an address.
package email

import (
	"regexp"
	"strings"
	"unicode"

	dErrors "kiosk/pkg/domain-errors"
)

// addressPattern accepts a dotted-atom or quoted local part followed by either
// a bracketed IPv4 literal or a dotted host name whose TLD has at least two
// letters.
var addressPattern = regexp.MustCompile(
	`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-z\-0-9]+\.)+[a-z]{2,}))$`,
)

// Email is a trimmed, lower-cased e-mail address. The zero value is not a
// valid address; use New.
type Email struct {
	address string
}

// New normalizes and validates raw.
func New(raw string) (Email, error) {
	address := strings.ToLower(strings.TrimSpace(raw))
	if !addressPattern.MatchString(address) {
		return Email{}, dErrors.New(dErrors.CodeInvalidResource, "Invalid Email")
	}
	return Email{address: address}, nil
}

func (e Email) String() string {
	return e.address
}

// Equals compares normalized addresses.
func (e Email) Equals(other Email) bool {
	return e.address == other.address
}

// Domain returns the part after the last "@".
func (e Email) Domain() string {
	at := strings.LastIndexByte(e.address, '@')
	if at < 0 {
		return ""
	}
	return e.address[at+1:]
}

func (e Email) IsZero() bool {
	return e.address == ""
}

// DeriveNameFromEmail builds a first and last display name from the local
// part of an address, falling back to "User".
func DeriveNameFromEmail(email string) (string, string) {
	localPart := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		localPart = email[:at]
	}

	parts := strings.FieldsFunc(localPart, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+' || r == '"'
	})

	if len(parts) == 0 {
		return "User", "User"
	}

	first := capitalize(parts[0])
	last := "User"
	if len(parts) > 1 {
		last = capitalize(parts[len(parts)-1])
	}

	return first, last
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
