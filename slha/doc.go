/*
Package slha reads, edits, and writes SUSY Les Houches Accord (SLHA) files.

An SLHA file is a line-oriented, whitespace-delimited text format used to
exchange spectrum and decay data between particle physics programs. This
package models it as a three-level container stack:

	Collection -> Block -> Line -> field (string token)

# Quick Start

Parse a file and look up a field:

	c, err := slha.Parse(f)
	if err != nil {
	    log.Fatal(err)
	}
	m0, err := c.Field(slha.MustParseKey("MINPAR;1;1"))

Mutate and write back:

	b, _ := c.At("MINPAR")
	line, _ := b.At("1")
	line.SetField(1, "270.0")
	c.WriteTo(os.Stdout)

# Formatting

Every Line keeps a column descriptor recording where each token sat in the
original text, so untouched lines serialize back byte-for-byte. Reformat
discards that record and computes the conventional blocky SLHA alignment
from scratch.

The column recovery works by scanning the source line left to right for each
token's text. If a token's exact text occurs earlier in the line, the scan
can lock onto the earlier occurrence and record a wrong column. This is a
known limitation of the format-preservation scheme, kept deliberately; see
TestParseLine_DuplicateTokenColumns.

# Lookup Semantics

Blocks are found by case-insensitive name; the first match in file order
wins. Lines are found by their leading tokens, where the key token "(any)"
matches any value at its position. At-style accessors return ErrNotFound on
a miss; Index-style accessors create an empty element at the end instead,
mirroring associative-map subscripting.

A Collection may hold several blocks with the same name (SLHA files do this
for successive Q-scale variants); they stay distinct and in file order.

# Concurrency

All containers are plain in-memory values with no internal locking. A
Collection must not be mutated concurrently; callers embedding this package
in concurrent programs synchronize externally.
*/
package slha
