//go:build unix

package mmfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spectrum.slha")
	want := []byte("BLOCK MINPAR\n 1  1.0  # m0\n")
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, release, err := Map(path)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if !bytes.Equal(data, want) {
		t.Fatalf("mapped content mismatch: got %q", data)
	}
	if err := release(); err != nil {
		t.Fatalf("release: %v", err)
	}
	// releasing twice is a no-op
	if err := release(); err != nil {
		t.Fatalf("second release: %v", err)
	}
}

func TestMap_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.slha")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, release, err := Map(path)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("expected empty mapping, got %d bytes", len(data))
	}
	if err := release(); err != nil {
		t.Fatalf("release: %v", err)
	}
}

func TestMap_Missing(t *testing.T) {
	if _, _, err := Map(filepath.Join(t.TempDir(), "nope.slha")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
