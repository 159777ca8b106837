package spectrum

import (
	"github.com/slhakit/slhakit/slha"
)

// Core types (re-exported for convenience).
type (
	Collection = slha.Collection
	Block      = slha.Block
	Line       = slha.Line
	Key        = slha.Key
)

// Sentinel errors (re-exported for convenience).
var (
	ErrInvalidKey = slha.ErrInvalidKey
	ErrNotFound   = slha.ErrNotFound
	ErrOutOfRange = slha.ErrOutOfRange
)

// ParseKey parses a structured key of the form "block;line;field".
func ParseKey(s string) (Key, error) {
	return slha.ParseKey(s)
}

// MustParseKey parses a structured key and panics on a malformed one.
func MustParseKey(s string) Key {
	return slha.MustParseKey(s)
}
