package slha

import (
	"strconv"
	"strings"
)

// keySegments is the number of ';'-separated segments in a key string.
const keySegments = 3

// Key addresses a single field in a Collection without holding a live
// reference: the block name, the leading tokens of the line, and the
// zero-based field index. Its canonical string form is
//
//	block;tok1,tok2,...;field
//
// For example "RVHMIX;1,3;2" names the entry in the first row and third
// column of the RVHMIX matrix, "1000022;DECAY;2" the total decay width of
// the lightest neutralino, and "1000022;(any),2,11,24;0" the branching
// ratio of its decay into an electron and a W boson.
//
// A Key is a detached locator: it stays valid only as long as the
// structural shape of the target data matches, and must be re-resolved
// against a live Collection on every use.
type Key struct {
	// Block is the name of the block that contains the field.
	Block string

	// Line holds the leading token(s) of the line that contains the field.
	Line []string

	// Field is the index of the field within the line.
	Field int
}

// ParseKey parses the canonical string form of a Key. It returns
// ErrInvalidKey if s does not split into exactly three ';'-separated
// segments or if the field segment is not a non-negative integer.
func ParseKey(s string) (Key, error) {
	segs := strings.Split(s, ";")
	if len(segs) != keySegments {
		return Key{}, invalidKeyErr("parse key " + strconv.Quote(s) + ": want 3 segments, got " + strconv.Itoa(len(segs)))
	}
	field, err := strconv.ParseUint(segs[2], 10, strconv.IntSize-1)
	if err != nil {
		return Key{}, invalidKeyErr("parse key " + strconv.Quote(s) + ": bad field index " + strconv.Quote(segs[2]))
	}
	return Key{
		Block: segs[0],
		Line:  splitList(segs[1]),
		Field: int(field),
	}, nil
}

// MustParseKey is like ParseKey but panics on a malformed key string.
// It simplifies initialization of well-known keys.
func MustParseKey(s string) Key {
	k, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return k
}

// String renders the canonical form. ParseKey(k.String()) reproduces k.
func (k Key) String() string {
	return k.Block + ";" + strings.Join(k.Line, ",") + ";" + strconv.Itoa(k.Field)
}

// splitList splits a comma-separated token list, collapsing adjacent
// separators and dropping empty tokens.
func splitList(s string) []string {
	var out []string
	for _, tok := range strings.Split(s, ",") {
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
