package search

import (
	"fmt"
	"strings"

	"github.com/usestring/kaspa-vanity/pkg/types"
)

// Alphabet is the set of characters a vanity pattern may use.
type Alphabet struct {
	chars string
}

// Bech32 is the 32-character set Kaspa addresses are encoded with.
var Bech32 = NewAlphabet("qpzry9x8gf2tvdw0s3jn54khce6mua7l")

// NewAlphabet returns an Alphabet made of chars.
func NewAlphabet(chars string) Alphabet {
	return Alphabet{chars: chars}
}

// String returns the characters in their canonical order.
func (a Alphabet) String() string { return a.chars }

// Contains reports whether every rune of s belongs to the alphabet.
func (a Alphabet) Contains(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune(a.chars, r) {
			return false
		}
	}
	return true
}

// InvalidInputError reports a pattern with characters outside the alphabet.
type InvalidInputError struct {
	Field    string // "prefix" or "suffix"
	Value    string
	Alphabet Alphabet
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("Invalid %s: %s. Allowed characters: %s", e.Field, e.Value, e.Alphabet)
}

// Validate checks s against the alphabet. field names s in the error.
func (a Alphabet) Validate(field, s string) error {
	if a.Contains(s) {
		return nil
	}
	return &InvalidInputError{Field: field, Value: s, Alphabet: a}
}

// ValidateRequest checks the prefix, then the suffix, of req.
func ValidateRequest(a Alphabet, req types.SearchRequest) error {
	if err := a.Validate("prefix", req.Prefix); err != nil {
		return err
	}
	return a.Validate("suffix", req.Suffix)
}
