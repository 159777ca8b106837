package spectrum

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = "# SOFTSUSY output\n" +
	"BLOCK MODSEL  # Select model\n" +
	"     1    1   # sugra\n" +
	"BLOCK MINPAR  # Input parameters\n" +
	"     1   1.25000000e+02   # m0\n" +
	"     3   1.00000000e+01   # tanb\n"

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.slha")
	require.NoError(t, os.WriteFile(path, []byte(sampleText), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeSample(t)

	c, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len()) // banner block "" + MODSEL + MINPAR
	assert.Equal(t, sampleText, c.String())

	value, err := c.Field(MustParseKey("MINPAR;3;1"))
	require.NoError(t, err)
	assert.Equal(t, "1.00000000e+01", value)
}

func TestLoad_NoMmap(t *testing.T) {
	path := writeSample(t)

	c, err := Load(path, &LoadOptions{NoMmap: true})
	require.NoError(t, err)
	assert.Equal(t, sampleText, c.String())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.slha"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoad_UTF16(t *testing.T) {
	var buf []byte
	buf = append(buf, 0xFF, 0xFE) // UTF-16LE BOM
	for _, r := range sampleText {
		buf = append(buf, byte(r), 0)
	}
	path := filepath.Join(t.TempDir(), "utf16.slha")
	require.NoError(t, os.WriteFile(path, buf, 0o644))

	c, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, sampleText, c.String())
}

func TestLoadReader(t *testing.T) {
	c, err := LoadReader(strings.NewReader(sampleText), nil)
	require.NoError(t, err)
	assert.Equal(t, sampleText, c.String())
}

func TestLoadReader_UnsupportedEncoding(t *testing.T) {
	_, err := LoadReader(strings.NewReader(sampleText), &LoadOptions{Encoding: "UTF-16LE"})
	require.Error(t, err)
}

func TestLoadBytes_CP1252(t *testing.T) {
	// 0xB5 is µ in Windows-1252
	data := []byte("BLOCK MASS  # \xB5 parameter\n 25  1.25e+02  # h0\n")
	c, err := LoadBytes(data, &LoadOptions{Encoding: "WINDOWS-1252"})
	require.NoError(t, err)
	assert.Contains(t, c.String(), "µ parameter")
}

func TestSave_RoundTrip(t *testing.T) {
	path := writeSample(t)

	c, err := Load(path, nil)
	require.NoError(t, err)
	require.NoError(t, Save(path, c, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleText, string(data))
}

func TestSave_CreateBackup(t *testing.T) {
	path := writeSample(t)

	c, err := Load(path, nil)
	require.NoError(t, err)
	require.NoError(t, c.SetField(MustParseKey("MINPAR;3;1"), "1.50000000e+01"))
	require.NoError(t, Save(path, c, &SaveOptions{CreateBackup: true}))

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, sampleText, string(backup))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1.50000000e+01")
	assert.NotContains(t, string(data), "1.00000000e+01")
}

func TestSave_NoBackupForNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fresh.slha")

	c, err := LoadBytes([]byte(sampleText), nil)
	require.NoError(t, err)
	require.NoError(t, Save(path, c, &SaveOptions{CreateBackup: true}))

	assert.False(t, fileExists(path+".bak"))
}

func TestGet(t *testing.T) {
	path := writeSample(t)

	value, err := Get(path, "MINPAR;1;1")
	require.NoError(t, err)
	assert.Equal(t, "1.25000000e+02", value)
}

func TestGet_BadKey(t *testing.T) {
	path := writeSample(t)

	_, err := Get(path, "MINPAR;1")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestGet_MissingBlock(t *testing.T) {
	path := writeSample(t)

	_, err := Get(path, "EXTPAR;1;1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSet(t *testing.T) {
	path := writeSample(t)

	require.NoError(t, Set(path, "MINPAR;3;1", "2.50000000e+01", nil))

	value, err := Get(path, "MINPAR;3;1")
	require.NoError(t, err)
	assert.Equal(t, "2.50000000e+01", value)

	// untouched lines keep their exact bytes
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "     1   1.25000000e+02   # m0\n")
}

func TestSet_OutOfRange(t *testing.T) {
	path := writeSample(t)

	err := Set(path, "MINPAR;3;9", "1.0", nil)
	assert.ErrorIs(t, err, ErrOutOfRange)
}
