package spectrum

import (
	"fmt"

	"github.com/slhakit/slhakit/internal/writer"
)

// Save writes the Collection to path atomically. A nil opts means no
// backup. When CreateBackup is set and a file already exists at path, a
// copy is created at <path>.bak before the save.
//
// Example:
//
//	err := spectrum.Save("softsusy.slha", c, &spectrum.SaveOptions{
//	    CreateBackup: true,
//	})
func Save(path string, c *Collection, opts *SaveOptions) error {
	if opts == nil {
		opts = &SaveOptions{}
	}

	if opts.CreateBackup && fileExists(path) {
		backupPath := path + ".bak"
		if err := copyFile(path, backupPath); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
	}

	w := &writer.FileWriter{Path: path}
	if err := w.WriteSpectrum(c); err != nil {
		return fmt.Errorf("failed to save spectrum file %s: %w", path, err)
	}

	return nil
}
