package slha

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

const (
	// scanBufSize is the initial line buffer handed to bufio.Scanner.
	scanBufSize = 64 * 1024

	// maxLineBytes caps a single physical line; spectrum generators emit
	// long comment banners but nothing near this.
	maxLineBytes = 1 << 20
)

// Collection is an ordered sequence of Blocks, the in-memory form of one
// SLHA file. Blocks are looked up by case-insensitive name; several Blocks
// may share a name (successive Q-scale variants of a running block) and
// are kept distinct, in file order, never merged.
//
// The zero value is an empty Collection ready for use.
type Collection struct {
	blocks []*Block
}

// Parse reads SLHA text from r into a new Collection.
func Parse(r io.Reader) (*Collection, error) {
	c := &Collection{}
	if err := c.Read(r); err != nil {
		return nil, err
	}
	return c, nil
}

// ParseString reads SLHA text from s into a new Collection.
func ParseString(s string) (*Collection, error) {
	return Parse(strings.NewReader(s))
}

// Read consumes r line by line and appends the result to the Collection.
// Blank and whitespace-only lines are dropped. A block definition line
// with at least two data fields opens a new Block named by its second
// field (case preserved) at the end of the Collection, even when a Block
// of that name already exists: same-named blocks stay distinct, in file
// order, never merged. Every kept line, the definition line included, is
// appended to the most recently opened Block. Lines before the first
// block definition land in a Block with the empty name.
func (c *Collection) Read(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, scanBufSize), maxLineBytes)

	var current *Block
	for sc.Scan() {
		raw := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(raw) == "" {
			continue
		}
		line := ParseLine(raw)
		if line.IsBlockDef() && line.DataLen() > 1 {
			current = NewBlock(line.Field(1))
			c.blocks = append(c.blocks, current)
		} else if current == nil {
			current = c.Index("")
		}
		current.Append(line)
	}
	return sc.Err()
}

// Find locates the first Block whose name equals name, compared
// case-insensitively.
func (c *Collection) Find(name string) (*Block, bool) {
	for _, b := range c.blocks {
		if strings.EqualFold(b.name, name) {
			return b, true
		}
	}
	return nil, false
}

// At locates the first Block named name (case-insensitive), or returns
// ErrNotFound.
func (c *Collection) At(name string) (*Block, error) {
	if b, ok := c.Find(name); ok {
		return b, nil
	}
	return nil, notFoundErr("block " + strconv.Quote(name))
}

// Index locates the first Block named name (case-insensitive); if none
// exists, an empty Block with that name is appended and returned.
func (c *Collection) Index(name string) *Block {
	if b, ok := c.Find(name); ok {
		return b
	}
	b := NewBlock(name)
	c.blocks = append(c.blocks, b)
	return b
}

// Count returns the number of Blocks named name (case-insensitive).
func (c *Collection) Count(name string) int {
	n := 0
	for _, b := range c.blocks {
		if strings.EqualFold(b.name, name) {
			n++
		}
	}
	return n
}

// Field resolves key to a field value: the first Block matching key.Block,
// the first Line matching key.Line, the field at key.Field. Any failed
// stage returns its error.
func (c *Collection) Field(key Key) (string, error) {
	l, err := c.fieldLine(key)
	if err != nil {
		return "", err
	}
	return l.At(key.Field)
}

// SetField resolves key like Field and replaces the addressed value.
func (c *Collection) SetField(key Key, value string) error {
	l, err := c.fieldLine(key)
	if err != nil {
		return err
	}
	return l.SetAt(key.Field, value)
}

func (c *Collection) fieldLine(key Key) (*Line, error) {
	b, err := c.At(key.Block)
	if err != nil {
		return nil, err
	}
	return b.At(key.Line...)
}

// Len returns the number of Blocks.
func (c *Collection) Len() int { return len(c.blocks) }

// Empty reports whether the Collection has no Blocks.
func (c *Collection) Empty() bool { return len(c.blocks) == 0 }

// BlockAt returns the Block at position i. Access is unchecked: an
// invalid index panics.
func (c *Collection) BlockAt(i int) *Block { return c.blocks[i] }

// Blocks returns the Blocks in order. The slice is a copy; the Blocks are
// shared, so mutating them mutates the Collection.
func (c *Collection) Blocks() []*Block {
	out := make([]*Block, len(c.blocks))
	copy(out, c.blocks)
	return out
}

// Append adds a Block to the end of the Collection.
func (c *Collection) Append(b *Block) {
	c.blocks = append(c.blocks, b)
}

// RemoveAt deletes the Block at position i. An invalid index panics.
func (c *Collection) RemoveAt(i int) {
	c.blocks = append(c.blocks[:i], c.blocks[i+1:]...)
}

// Clear removes all Blocks.
func (c *Collection) Clear() { c.blocks = nil }

// Clone returns a deep copy of the Collection.
func (c *Collection) Clone() *Collection {
	out := &Collection{blocks: make([]*Block, len(c.blocks))}
	for i, b := range c.blocks {
		out.blocks[i] = b.Clone()
	}
	return out
}

// WriteTo serializes the Collection to w: every Line's formatted output
// followed by a newline, Blocks in order. It implements io.WriterTo.
func (c *Collection) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, b := range c.blocks {
		for _, l := range b.lines {
			m, err := bw.WriteString(l.String())
			n += int64(m)
			if err != nil {
				return n, err
			}
			if err := bw.WriteByte('\n'); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, bw.Flush()
}

// String returns the serialized Collection.
func (c *Collection) String() string {
	var sb strings.Builder
	for _, b := range c.blocks {
		for _, l := range b.lines {
			sb.WriteString(l.String())
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Equal reports whether both Collections hold equal Blocks in the same
// order, by Block equality (fields only, layout excluded).
func (c *Collection) Equal(o *Collection) bool {
	if len(c.blocks) != len(o.blocks) {
		return false
	}
	for i := range c.blocks {
		if !c.blocks[i].Equal(o.blocks[i]) {
			return false
		}
	}
	return true
}

// Compare orders Collections lexicographically over their Blocks.
func (c *Collection) Compare(o *Collection) int {
	n := min(len(c.blocks), len(o.blocks))
	for i := 0; i < n; i++ {
		if v := c.blocks[i].Compare(o.blocks[i]); v != 0 {
			return v
		}
	}
	switch {
	case len(c.blocks) < len(o.blocks):
		return -1
	case len(c.blocks) > len(o.blocks):
		return 1
	}
	return 0
}
