package slha

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Line is one physical line decomposed into whitespace-delimited fields.
// A Line built from " 1 2 0.123 # a comment " holds the fields "1", "2",
// "0.123", and "# a comment": the trailing comment, when present, is a
// single field that keeps its interior spacing.
//
// Alongside the fields, a Line records the column each field occupied in
// the source text, so String reproduces the original layout for untouched
// lines. Reformat replaces that record with canonical SLHA indentation.
//
// The zero value is an empty Line ready for use.
type Line struct {
	fields  []string
	columns []int
}

// ParseLine builds a Line from one physical line of text.
// Content after the first newline, if any, is ignored.
func ParseLine(text string) *Line {
	l := &Line{}
	l.Set(text)
	return l
}

// Set replaces the Line's content with the fields parsed from text and
// records their source columns. Content after the first newline is ignored.
func (l *Line) Set(text string) *Line {
	l.fields = nil
	l.columns = nil

	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return l
	}

	data, comment := trimmed, ""
	if i := strings.IndexByte(trimmed, CommentPrefix); i >= 0 {
		data = strings.TrimSpace(trimmed[:i])
		comment = strings.TrimSpace(trimmed[i:])
	}
	if data != "" {
		l.fields = strings.Fields(data)
	}
	if comment != "" {
		l.fields = append(l.fields, comment)
	}

	// Recover each field's source column by scanning text left to right.
	// A field whose exact text occurs earlier in the line can be matched
	// at the earlier position; callers get the documented layout drift
	// instead of an error.
	l.columns = make([]int, len(l.fields))
	pos := 0
	for i, f := range l.fields {
		if at := strings.Index(text[pos:], f); at >= 0 {
			pos += at
		}
		l.columns[i] = pos
		pos += len(f)
	}
	return l
}

// Append reserializes the Line, concatenates text, and reparses the
// result. Tokenization may change: appending "# n" to a data line grows
// Len by one comment field, while appending to an existing comment only
// lengthens the final field.
func (l *Line) Append(text string) *Line {
	return l.Set(l.String() + text)
}

// AddField adds one field to the end of the Line. The value is converted
// to its string form and trimmed; an empty result is a no-op. If the last
// field contains '#' the raw value is merged into that comment and Len is
// unchanged; otherwise the trimmed value becomes a new field and the Line
// is reformatted.
func (l *Line) AddField(v any) *Line {
	raw := fmt.Sprint(v)
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return l
	}
	if n := len(l.fields); n > 0 && strings.ContainsRune(l.fields[n-1], rune(CommentPrefix)) {
		l.fields[n-1] += raw
		return l
	}
	l.fields = append(l.fields, trimmed)
	l.Reformat()
	return l
}

// AddFields adds each value in order via AddField.
func (l *Line) AddFields(vs ...any) *Line {
	for _, v := range vs {
		l.AddField(v)
	}
	return l
}

// Reformat discards the recorded source columns and computes canonical
// SLHA indentation: block definitions start at column 0 with the name one
// space after, whole-line comments at column 0, data lines at column 1,
// and every further field at the next 4-column tab stop at least two
// spaces after its predecessor.
func (l *Line) Reformat() *Line {
	if len(l.fields) == 0 {
		l.columns = nil
		return l
	}

	cols := make([]int, len(l.fields))
	pos := 0
	next := 1

	switch first := l.fields[0]; {
	case strings.EqualFold(first, BlockToken) || strings.EqualFold(first, DecayToken):
		cols[0] = 0
		pos = len(first)
		if len(l.fields) > 1 {
			pos++
			cols[1] = pos
			pos += len(l.fields[1])
			next = 2
		}
	case first[0] == CommentPrefix:
		cols[0] = 0
		pos = len(first)
	default:
		cols[0] = dataIndent
		pos = dataIndent + len(first)
	}

	for i := next; i < len(l.fields); i++ {
		gap := indentMinGap + 1 - ((pos - 1) % indentTabStop)
		if gap < indentMinGap {
			gap += indentTabStop
		}
		pos += gap
		cols[i] = pos
		pos += len(l.fields[i])
	}
	l.columns = cols
	return l
}

// String renders the fields at their recorded columns, with a single space
// as the minimum separation between adjacent fields.
func (l *Line) String() string {
	var b strings.Builder
	for i, f := range l.fields {
		if i > 0 {
			b.WriteByte(' ')
		}
		col := 0
		if i < len(l.columns) {
			col = l.columns[i]
		}
		for b.Len() < col {
			b.WriteByte(' ')
		}
		b.WriteString(f)
	}
	return b.String()
}

// Plain returns the fields joined with single spaces, ignoring the
// recorded columns.
func (l *Line) Plain() string {
	return strings.Join(l.fields, " ")
}

// IsBlockDef reports whether the Line begins with "BLOCK" or "DECAY",
// compared case-insensitively.
func (l *Line) IsBlockDef() bool {
	if len(l.fields) == 0 {
		return false
	}
	first := l.fields[0]
	return strings.EqualFold(first, BlockToken) || strings.EqualFold(first, DecayToken)
}

// IsCommentLine reports whether the Line begins with '#'.
func (l *Line) IsCommentLine() bool {
	return len(l.fields) > 0 && l.fields[0][0] == CommentPrefix
}

// IsDataLine reports whether the Line is non-empty and neither a block
// definition nor a comment line.
func (l *Line) IsDataLine() bool {
	return len(l.fields) > 0 && !l.IsBlockDef() && !l.IsCommentLine()
}

// Len returns the number of fields, including a trailing comment field.
func (l *Line) Len() int { return len(l.fields) }

// DataLen returns the number of fields excluding a trailing comment field.
func (l *Line) DataLen() int {
	n := len(l.fields)
	if n > 0 && l.fields[n-1][0] == CommentPrefix {
		n--
	}
	return n
}

// Empty reports whether the Line has no fields.
func (l *Line) Empty() bool { return len(l.fields) == 0 }

// Field returns the field at index i. Access is unchecked: an invalid
// index panics. For checked access see At.
func (l *Line) Field(i int) string { return l.fields[i] }

// SetField replaces the field at index i. Access is unchecked: an invalid
// index panics. For checked access see SetAt. The recorded column layout
// is kept, so later fields shift only if the new value is longer than the
// gap in front of them.
func (l *Line) SetField(i int, v string) { l.fields[i] = v }

// At returns the field at index i, or ErrOutOfRange for an invalid index.
func (l *Line) At(i int) (string, error) {
	if i < 0 || i >= len(l.fields) {
		return "", outOfRangeErr("line field " + strconv.Itoa(i) + " of " + strconv.Itoa(len(l.fields)))
	}
	return l.fields[i], nil
}

// SetAt replaces the field at index i, or returns ErrOutOfRange for an
// invalid index.
func (l *Line) SetAt(i int, v string) error {
	if i < 0 || i >= len(l.fields) {
		return outOfRangeErr("line field " + strconv.Itoa(i) + " of " + strconv.Itoa(len(l.fields)))
	}
	l.fields[i] = v
	return nil
}

// Fields returns a copy of the field slice.
func (l *Line) Fields() []string {
	return slices.Clone(l.fields)
}

// Clear removes all fields and the recorded layout.
func (l *Line) Clear() {
	l.fields = nil
	l.columns = nil
}

// Clone returns a deep copy of the Line.
func (l *Line) Clone() *Line {
	return &Line{fields: slices.Clone(l.fields), columns: slices.Clone(l.columns)}
}

// Equal reports whether both Lines hold the same fields and serialize to
// the same text. Formatting is part of a Line's identity: two Lines with
// equal fields but different layouts are not equal.
func (l *Line) Equal(o *Line) bool {
	return slices.Equal(l.fields, o.fields) && l.String() == o.String()
}

// Compare orders Lines lexicographically over their fields, ignoring
// layout.
func (l *Line) Compare(o *Line) int {
	return slices.Compare(l.fields, o.fields)
}
