//go:build !unix

// Package mmfile provides platform-specific helpers for loading spectrum
// files without copying. Parsed collections keep only strings, so the
// mapping can be released as soon as parsing finishes.
package mmfile

import "os"

// Map reads the entire file when mmap is not available.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}
