// Package textenc normalizes spectrum-file bytes to UTF-8 before line
// scanning. SLHA is nominally ASCII, but files that passed through
// Windows-hosted tools show up with byte-order marks, UTF-16 encodings,
// or Windows-1252 comment bytes.
package textenc

import (
	"encoding/binary"
	"errors"
	"io"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Supported encoding names for Decode and NewReader.
const (
	EncodingUTF8    = "UTF-8"
	EncodingUTF16LE = "UTF-16LE"
	EncodingUTF16BE = "UTF-16BE"
	EncodingCP1252  = "WINDOWS-1252"
)

// Byte-order marks recognized regardless of the declared encoding.
var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)

// utf16CodeUnitSize is the byte width of a UTF-16 code unit.
const utf16CodeUnitSize = 2

var errUnsupportedEncoding = errors.New("textenc: unsupported encoding")

// Decode converts data to UTF-8 bytes. A byte-order mark wins over the
// declared encoding; without one, enc selects the decoder ("" means
// UTF-8 and returns data unchanged, no copy).
func Decode(data []byte, enc string) ([]byte, error) {
	if len(data) >= len(utf16LEBOM) && data[0] == utf16LEBOM[0] && data[1] == utf16LEBOM[1] {
		return utf16ToBytes(data[len(utf16LEBOM):], binary.LittleEndian), nil
	}
	if len(data) >= len(utf16BEBOM) && data[0] == utf16BEBOM[0] && data[1] == utf16BEBOM[1] {
		return utf16ToBytes(data[len(utf16BEBOM):], binary.BigEndian), nil
	}
	if len(data) >= len(utf8BOM) && data[0] == utf8BOM[0] && data[1] == utf8BOM[1] && data[2] == utf8BOM[2] {
		return data[len(utf8BOM):], nil
	}
	switch strings.ToUpper(enc) {
	case "", EncodingUTF8:
		return data, nil
	case EncodingUTF16LE:
		return utf16ToBytes(data, binary.LittleEndian), nil
	case EncodingUTF16BE:
		return utf16ToBytes(data, binary.BigEndian), nil
	case EncodingCP1252:
		return charmap.Windows1252.NewDecoder().Bytes(data)
	default:
		return nil, errUnsupportedEncoding
	}
}

// NewReader wraps r so that reads yield UTF-8. Only byte-preserving
// encodings are streamable; UTF-16 input must go through Decode.
func NewReader(r io.Reader, enc string) (io.Reader, error) {
	switch strings.ToUpper(enc) {
	case "", EncodingUTF8:
		return r, nil
	case EncodingCP1252:
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, errUnsupportedEncoding
	}
}

// utf16ToBytes converts UTF-16 data in the given byte order to UTF-8.
// A trailing odd byte is dropped.
func utf16ToBytes(data []byte, order binary.ByteOrder) []byte {
	if len(data)%utf16CodeUnitSize == 1 {
		data = data[:len(data)-1]
	}
	if len(data) == 0 {
		return nil
	}
	words := make([]uint16, len(data)/utf16CodeUnitSize)
	for i := 0; i < len(words); i++ {
		words[i] = order.Uint16(data[i*utf16CodeUnitSize:])
	}
	return []byte(string(utf16.Decode(words)))
}
