//go:build linux || freebsd

package writer

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync flushes file data without forcing a metadata update.
// Sufficient before the rename: the rename itself orders the metadata.
func fdatasync(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
