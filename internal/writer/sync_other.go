//go:build !linux && !freebsd

package writer

import "os"

// fdatasync falls back to a full sync where fdatasync is unavailable.
func fdatasync(f *os.File) error {
	return f.Sync()
}
