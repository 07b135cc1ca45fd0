package ident

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const digits = "0123456789"

var errNegativeLength = errors.New("length must be non-negative")

// New returns a prefixed record id such as "se8271" or "inv0042". Callers
// own collision avoidance; four random digits match the id shape the rest
// of the fixture data uses.
func New(prefix string) string {
	return prefix + mustRandomDigits(4)
}

// InvoiceNumber returns a display number such as "INV-2026-417".
func InvoiceNumber(year int) string {
	return fmt.Sprintf("INV-%d-%s", year, mustRandomDigits(3))
}

func mustRandomDigits(length int) string {
	value, err := randomDigits(length)
	if err != nil {
		// crypto/rand only fails when the platform entropy source is
		// broken; there is no useful recovery at this layer.
		panic(err)
	}
	return value
}

// randomDigits draws each position independently from crypto/rand so the
// result is unbiased across the alphabet.
func randomDigits(length int) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}

	limit := big.NewInt(int64(len(digits)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = digits[position.Int64()]
	}

	return string(value), nil
}
