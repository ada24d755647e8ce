// Package document implements the Brazilian taxpayer identifiers used across
// the kiosk: CPF for individuals and CNPJ for companies.
//
// Both are value objects: construct them with NewCPF / NewCNPJ, which strip
// punctuation, verify the two mod-11 check digits and reject sequences of a
// single repeated digit. A constructed value is always valid.
package document

import "strings"

// formatting holds the punctuation accepted (and discarded) around digits.
const formatting = ".-/() \t"

// onlyDigits strips formatting characters and reports whether what remains is
// a non-empty run of ASCII digits.
func onlyDigits(raw string) (string, bool) {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case strings.ContainsRune(formatting, r):
		default:
			return "", false
		}
	}
	if b.Len() == 0 {
		return "", false
	}
	return b.String(), true
}

func allSame(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

func digitAt(digits string, i int) int {
	return int(digits[i] - '0')
}
