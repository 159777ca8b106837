package slha

import (
	"strings"
	"testing"
)

// benchText builds a synthetic spectrum with n data lines per block.
func benchText(n int) string {
	var sb strings.Builder
	sb.WriteString("# generated spectrum\n")
	for _, name := range []string{"MASS", "NMIX", "YU"} {
		sb.WriteString("BLOCK " + name + "  # " + name + "\n")
		for i := 0; i < n; i++ {
			sb.WriteString("     1   2.50000000e+02   # entry\n")
		}
	}
	return sb.String()
}

func BenchmarkRead(b *testing.B) {
	text := benchText(500)
	b.SetBytes(int64(len(text)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ParseString(text); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkString(b *testing.B) {
	c, err := ParseString(benchText(500))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = c.String()
	}
}

func BenchmarkField(b *testing.B) {
	c, err := ParseString(benchText(500))
	if err != nil {
		b.Fatal(err)
	}
	key := MustParseKey("NMIX;1;1")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := c.Field(key); err != nil {
			b.Fatal(err)
		}
	}
}
