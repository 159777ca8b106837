package spectrum

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/slhakit/slhakit/internal/mmfile"
	"github.com/slhakit/slhakit/internal/textenc"
	"github.com/slhakit/slhakit/slha"
)

// Load reads the spectrum file at path into a Collection.
// A nil opts means UTF-8 input and memory-mapped loading where available.
//
// Example:
//
//	c, err := spectrum.Load("softsusy.slha", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(c.Len(), "blocks")
func Load(path string, opts *LoadOptions) (*Collection, error) {
	if opts == nil {
		opts = &LoadOptions{}
	}
	if !fileExists(path) {
		return nil, fmt.Errorf("spectrum file not found: %s", path)
	}

	if opts.NoMmap {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read spectrum file %s: %w", path, err)
		}
		return loadBytes(data, opts.Encoding)
	}

	data, release, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("failed to map spectrum file %s: %w", path, err)
	}
	defer release()

	return loadBytes(data, opts.Encoding)
}

// LoadReader reads spectrum text from r into a Collection. The NoMmap
// option is ignored; UTF-16 input is not streamable and must go through
// Load or LoadBytes.
func LoadReader(r io.Reader, opts *LoadOptions) (*Collection, error) {
	if opts == nil {
		opts = &LoadOptions{}
	}
	dec, err := textenc.NewReader(r, opts.Encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to decode spectrum input: %w", err)
	}
	return slha.Parse(dec)
}

// LoadBytes reads spectrum text from data into a Collection.
func LoadBytes(data []byte, opts *LoadOptions) (*Collection, error) {
	if opts == nil {
		opts = &LoadOptions{}
	}
	return loadBytes(data, opts.Encoding)
}

func loadBytes(data []byte, enc string) (*Collection, error) {
	decoded, err := textenc.Decode(data, enc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode spectrum input: %w", err)
	}
	return slha.Parse(bytes.NewReader(decoded))
}
