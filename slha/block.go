package slha

import (
	"strconv"
	"strings"
)

// Block is a named, ordered collection of Lines. The parser groups lines
// under the block name announced by the preceding BLOCK/DECAY definition,
// but a Block is just an ordered container once built: nothing forces its
// Lines to share a leading token, and it may hold zero or several block
// definition lines.
//
// Block names are compared case-insensitively by Collection lookups; the
// Block itself stores the name as written.
type Block struct {
	name  string
	lines []*Line
}

// NewBlock returns an empty Block with the given name.
func NewBlock(name string) *Block {
	return &Block{name: name}
}

// Name returns the Block's name as written in the source.
func (b *Block) Name() string { return b.name }

// SetName renames the Block.
func (b *Block) SetName(name string) { b.name = name }

// Set replaces the Block's Lines with those parsed from text, one per
// physical line. The name is kept.
func (b *Block) Set(text string) *Block {
	b.lines = nil
	rows := strings.Split(text, "\n")
	if n := len(rows); n > 0 && rows[n-1] == "" {
		// a trailing newline is a terminator, not an extra empty line
		rows = rows[:n-1]
	}
	for _, raw := range rows {
		b.lines = append(b.lines, ParseLine(raw))
	}
	return b
}

// Find locates the first Line whose leading fields equal keys, where the
// key token "(any)" matches any field at its position. A Line matches only
// if it has at least len(keys) fields. An empty key matches nothing.
func (b *Block) Find(keys []string) (*Line, bool) {
	if len(keys) == 0 {
		return nil, false
	}
	for _, l := range b.lines {
		if matchKeys(keys, l) {
			return l, true
		}
	}
	return nil, false
}

// At locates the first Line matching keys, or returns ErrNotFound. Each
// key argument may contain several whitespace-separated tokens; they are
// split before matching, so At("1 3") and At("1", "3") are equivalent.
func (b *Block) At(keys ...string) (*Line, error) {
	norm := normalizeKeys(keys)
	if l, ok := b.Find(norm); ok {
		return l, nil
	}
	return nil, notFoundErr("line [" + strings.Join(norm, " ") + "] in block " + strconv.Quote(b.name))
}

// AtInts is At with integer keys, each converted to its decimal form.
func (b *Block) AtInts(keys ...int) (*Line, error) {
	return b.At(intKeys(keys)...)
}

// Index locates the first Line matching keys; if none matches, an empty
// Line is appended to the Block and returned. This mirrors associative-map
// subscripting: lookups through Index never fail.
func (b *Block) Index(keys ...string) *Line {
	if l, ok := b.Find(normalizeKeys(keys)); ok {
		return l
	}
	l := &Line{}
	b.lines = append(b.lines, l)
	return l
}

// IndexInts is Index with integer keys.
func (b *Block) IndexInts(keys ...int) *Line {
	return b.Index(intKeys(keys)...)
}

// Len returns the number of Lines.
func (b *Block) Len() int { return len(b.lines) }

// Empty reports whether the Block has no Lines.
func (b *Block) Empty() bool { return len(b.lines) == 0 }

// Line returns the Line at position i. Access is unchecked: an invalid
// index panics.
func (b *Block) Line(i int) *Line { return b.lines[i] }

// Lines returns the Lines in order. The slice is a copy; the Lines are
// shared, so mutating them mutates the Block.
func (b *Block) Lines() []*Line {
	out := make([]*Line, len(b.lines))
	copy(out, b.lines)
	return out
}

// Append adds a Line to the end of the Block.
func (b *Block) Append(l *Line) {
	b.lines = append(b.lines, l)
}

// AppendText parses one physical line of text and appends it.
func (b *Block) AppendText(text string) {
	b.lines = append(b.lines, ParseLine(text))
}

// RemoveAt deletes the Line at position i. An invalid index panics.
func (b *Block) RemoveAt(i int) {
	b.lines = append(b.lines[:i], b.lines[i+1:]...)
}

// Clear removes all Lines. The name is kept.
func (b *Block) Clear() { b.lines = nil }

// Clone returns a deep copy of the Block.
func (b *Block) Clone() *Block {
	out := &Block{name: b.name, lines: make([]*Line, len(b.lines))}
	for i, l := range b.lines {
		out.lines[i] = l.Clone()
	}
	return out
}

// Equal reports whether both Blocks hold the same field sequences, line by
// line. Neither names nor recorded layouts take part: two Blocks that
// serialize differently but carry the same fields are equal.
func (b *Block) Equal(o *Block) bool {
	if len(b.lines) != len(o.lines) {
		return false
	}
	for i := range b.lines {
		if b.lines[i].Compare(o.lines[i]) != 0 {
			return false
		}
	}
	return true
}

// Compare orders Blocks lexicographically over their Lines' fields.
func (b *Block) Compare(o *Block) int {
	n := min(len(b.lines), len(o.lines))
	for i := 0; i < n; i++ {
		if c := b.lines[i].Compare(o.lines[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(b.lines) < len(o.lines):
		return -1
	case len(b.lines) > len(o.lines):
		return 1
	}
	return 0
}

// matchKeys reports whether the leading fields of l equal keys, honoring
// the wildcard token.
func matchKeys(keys []string, l *Line) bool {
	if len(keys) > len(l.fields) {
		return false
	}
	for i, k := range keys {
		if k != WildcardToken && k != l.fields[i] {
			return false
		}
	}
	return true
}

// normalizeKeys splits every key argument on whitespace and flattens the
// result, so both At("1 3") and At("1", "3") reach Find as ["1" "3"].
func normalizeKeys(keys []string) []string {
	var out []string
	for _, k := range keys {
		out = append(out, strings.Fields(k)...)
	}
	return out
}

// intKeys converts integer keys to their decimal string form.
func intKeys(keys []int) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = strconv.Itoa(k)
	}
	return out
}
