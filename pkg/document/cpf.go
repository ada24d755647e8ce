package document

import (
	dErrors "kiosk/pkg/domain-errors"
)

const cpfLength = 11

// CPF is an 11-digit Brazilian individual taxpayer number.
// The zero value is not a valid CPF; use NewCPF.
type CPF struct {
	digits string
}

// NewCPF parses and validates a CPF, accepting punctuated ("529.982.247-25")
// or bare ("52998224725") input.
func NewCPF(raw string) (CPF, error) {
	digits, ok := onlyDigits(raw)
	if !ok || len(digits) != cpfLength || allSame(digits) {
		return CPF{}, invalidCPF()
	}
	if cpfCheckDigit(digits[:9]) != digitAt(digits, 9) ||
		cpfCheckDigit(digits[:10]) != digitAt(digits, 10) {
		return CPF{}, invalidCPF()
	}
	return CPF{digits: digits}, nil
}

// cpfCheckDigit computes the next check digit over base, weighting the first
// digit with len(base)+1 down to 2 for the last.
func cpfCheckDigit(base string) int {
	sum := 0
	weight := len(base) + 1
	for i := 0; i < len(base); i++ {
		sum += digitAt(base, i) * weight
		weight--
	}
	r := (sum * 10) % 11
	if r >= 10 {
		return 0
	}
	return r
}

func invalidCPF() error {
	return dErrors.New(dErrors.CodeInvalidResource, "Invalid CPF")
}

// String returns the 11 canonical digits.
func (c CPF) String() string {
	return c.digits
}

// Format returns the punctuated form ddd.ddd.ddd-dd.
func (c CPF) Format() string {
	if len(c.digits) != cpfLength {
		return ""
	}
	d := c.digits
	return d[0:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:11]
}

func (c CPF) Equals(other CPF) bool {
	return c.digits == other.digits
}

func (c CPF) IsZero() bool {
	return c.digits == ""
}
