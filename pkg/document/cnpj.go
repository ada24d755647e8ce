package document

import (
	dErrors "kiosk/pkg/domain-errors"
)

const cnpjLength = 14

var (
	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// CNPJ is a 14-digit Brazilian company taxpayer number.
// The zero value is not a valid CNPJ; use NewCNPJ.
type CNPJ struct {
	digits string
}

// NewCNPJ parses and validates a CNPJ, accepting punctuated
// ("11.222.333/0001-81") or bare input.
func NewCNPJ(raw string) (CNPJ, error) {
	digits, ok := onlyDigits(raw)
	if !ok || len(digits) != cnpjLength || allSame(digits) {
		return CNPJ{}, invalidCNPJ()
	}
	if cnpjCheckDigit(digits[:12], cnpjFirstWeights) != digitAt(digits, 12) ||
		cnpjCheckDigit(digits[:13], cnpjSecondWeights) != digitAt(digits, 13) {
		return CNPJ{}, invalidCNPJ()
	}
	return CNPJ{digits: digits}, nil
}

func cnpjCheckDigit(base string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += digitAt(base, i) * w
	}
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

func invalidCNPJ() error {
	return dErrors.New(dErrors.CodeInvalidResource, "Invalid CNPJ")
}

// String returns the 14 canonical digits.
func (c CNPJ) String() string {
	return c.digits
}

// Format returns the punctuated form dd.ddd.ddd/dddd-dd.
func (c CNPJ) Format() string {
	if len(c.digits) != cnpjLength {
		return ""
	}
	d := c.digits
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}

func (c CNPJ) Equals(other CNPJ) bool {
	return c.digits == other.digits
}

func (c CNPJ) IsZero() bool {
	return c.digits == ""
}
