package slha

import "errors"

// ErrKind classifies errors returned by this package.
type ErrKind int

const (
	// ErrKindInvalidKey indicates a key string that does not parse.
	ErrKindInvalidKey ErrKind = iota + 1
	// ErrKindNotFound indicates a failed At-style lookup.
	ErrKindNotFound
	// ErrKindOutOfRange indicates a checked field index past the end of a Line.
	ErrKindOutOfRange
)

// Error is the typed error returned by lookups and key parsing.
// It wraps one of the package sentinels so callers can match with errors.Is
// while still seeing the attempted key or index in the message.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrInvalidKey indicates a malformed structured key string.
	ErrInvalidKey = errors.New("slha: invalid key")
	// ErrNotFound indicates a missing block, line, or field.
	ErrNotFound = errors.New("slha: not found")
	// ErrOutOfRange indicates a field index outside a Line.
	ErrOutOfRange = errors.New("slha: index out of range")
)

func notFoundErr(what string) error {
	return &Error{Kind: ErrKindNotFound, Msg: "slha: " + what, Err: ErrNotFound}
}

func outOfRangeErr(what string) error {
	return &Error{Kind: ErrKindOutOfRange, Msg: "slha: " + what, Err: ErrOutOfRange}
}

func invalidKeyErr(what string) error {
	return &Error{Kind: ErrKindInvalidKey, Msg: "slha: " + what, Err: ErrInvalidKey}
}
