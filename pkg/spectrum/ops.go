package spectrum

import (
	"fmt"
)

// Get reads a single field value from the spectrum file at path.
// The key has the form "block;line;field", e.g. "MINPAR;3;1".
//
// Example:
//
//	tanb, err := spectrum.Get("softsusy.slha", "MINPAR;3;1")
func Get(path, key string) (string, error) {
	k, err := ParseKey(key)
	if err != nil {
		return "", err
	}
	c, err := Load(path, nil)
	if err != nil {
		return "", err
	}
	return c.Field(k)
}

// Set replaces a single field value in the spectrum file at path and
// saves the result. Lines other than the addressed one keep their exact
// bytes.
//
// Example:
//
//	err := spectrum.Set("softsusy.slha", "MINPAR;3;1", "15.0", nil)
func Set(path, key, value string, opts *SaveOptions) error {
	k, err := ParseKey(key)
	if err != nil {
		return err
	}
	c, err := Load(path, nil)
	if err != nil {
		return err
	}
	if err := c.SetField(k, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return Save(path, c, opts)
}
