package slha

const (
	// BlockToken opens a block definition line (case-insensitive).
	BlockToken = "BLOCK"

	// DecayToken opens a decay table definition line (case-insensitive).
	DecayToken = "DECAY"

	// CommentPrefix introduces a comment; everything from the first '#' to
	// the end of the line is one comment field.
	CommentPrefix = '#'

	// WildcardToken matches any value at its position during line lookup.
	WildcardToken = "(any)"

	// dataIndent is the column of the first token on an ordinary data line.
	dataIndent = 1

	// indentTabStop is the column granularity of reformatted token starts.
	indentTabStop = 4

	// indentMinGap is the minimum space run between reformatted tokens.
	indentMinGap = 2
)
