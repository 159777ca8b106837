package slha

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testBlock(t *testing.T, text string) *Block {
	t.Helper()
	b := NewBlock("TEST")
	for _, row := range []string{
		"BLOCK TEST",
		" 1  0.1  # first",
		" 2  0.2  # second",
		" 7  2  11  24  0.5  # branching",
	} {
		b.AppendText(row)
	}
	if text != "" {
		b.AppendText(text)
	}
	return b
}

func TestBlock_Find(t *testing.T) {
	b := testBlock(t, "")

	l, ok := b.Find([]string{"2"})
	require.True(t, ok)
	require.Equal(t, "0.2", l.Field(1))

	// prefix match: key may be shorter than the line
	l, ok = b.Find([]string{"7", "2"})
	require.True(t, ok)
	require.Equal(t, "0.5", l.Field(4))

	// key longer than the line never matches
	_, ok = b.Find([]string{"1", "0.1", "# first", "x"})
	require.False(t, ok)

	// empty key matches nothing
	_, ok = b.Find(nil)
	require.False(t, ok)

	_, ok = b.Find([]string{"9"})
	require.False(t, ok)
}

func TestBlock_FindWildcard(t *testing.T) {
	b := testBlock(t, "")

	l, ok := b.Find([]string{WildcardToken, "2"})
	require.True(t, ok)
	require.Equal(t, "7", l.Field(0))

	// "(any)" positions still require the line to be long enough
	short := NewBlock("S")
	short.AppendText("7")
	_, ok = short.Find([]string{"7", WildcardToken})
	require.False(t, ok)

	l, ok = b.Find([]string{"(any)", "(any)", "11"})
	require.True(t, ok)
	require.Equal(t, "24", l.Field(3))
}

func TestBlock_At(t *testing.T) {
	b := testBlock(t, "")

	l, err := b.At("1")
	require.NoError(t, err)
	require.Equal(t, "0.1", l.Field(1))

	// a single argument may carry a whitespace-joined key
	l, err = b.At("7 2 11")
	require.NoError(t, err)
	require.Equal(t, "24", l.Field(3))

	l, err = b.AtInts(7, 2)
	require.NoError(t, err)
	require.Equal(t, "0.5", l.Field(4))

	_, err = b.At("9")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = b.AtInts(9, 9)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBlock_IndexAutoVivifies(t *testing.T) {
	b := testBlock(t, "")
	n := b.Len()

	// hit: returns the existing line, no growth
	l := b.Index("1")
	require.Equal(t, "0.1", l.Field(1))
	require.Equal(t, n, b.Len())

	// miss: appends an empty line and returns it
	l = b.IndexInts(42)
	require.True(t, l.Empty())
	require.Equal(t, n+1, b.Len())
	require.Same(t, l, b.Line(b.Len()-1))

	l.AddFields(42, 1.5)
	got, err := b.AtInts(42)
	require.NoError(t, err)
	require.Equal(t, "1.5", got.Field(1))
}

func TestBlock_NameAndMutation(t *testing.T) {
	b := NewBlock("SmInputs")
	require.Equal(t, "SmInputs", b.Name())
	b.SetName("SMINPUTS")
	require.Equal(t, "SMINPUTS", b.Name())

	b.AppendText(" 1  127.9")
	b.AppendText(" 2  1.16e-05")
	require.Equal(t, 2, b.Len())

	b.RemoveAt(0)
	require.Equal(t, 1, b.Len())
	require.Equal(t, "2", b.Line(0).Field(0))

	b.Clear()
	require.True(t, b.Empty())
	require.Equal(t, "SMINPUTS", b.Name())
}

func TestBlock_Set(t *testing.T) {
	b := NewBlock("MINPAR")
	b.Set("BLOCK MINPAR\n 1  100.0\n 2  250.0\n")
	require.Equal(t, 3, b.Len())
	require.Equal(t, "250.0", b.Line(2).Field(1))
}

func TestBlock_Equality(t *testing.T) {
	a := NewBlock("A")
	a.AppendText(" 1   0.1")
	a.AppendText(" 2   0.2")

	// same fields, different layout and name: equal
	b := NewBlock("B")
	b.AppendText("1 0.1")
	b.AppendText("2      0.2")
	require.True(t, a.Equal(b))

	b.AppendText("3 0.3")
	require.False(t, a.Equal(b))
	require.Negative(t, a.Compare(b))

	c := NewBlock("C")
	c.AppendText(" 1  0.1")
	c.AppendText(" 2  0.3")
	require.False(t, a.Equal(c))
	require.Negative(t, a.Compare(c))
}
