package spectrum

// LoadOptions controls spectrum file loading behavior.
type LoadOptions struct {
	// Encoding names the input encoding when the file carries no
	// byte-order mark. Supported values: "UTF-8", "UTF-16LE",
	// "UTF-16BE", "WINDOWS-1252". Empty means UTF-8.
	Encoding string

	// NoMmap forces a plain read instead of memory-mapping the file.
	// Mapping is the default on platforms that support it.
	NoMmap bool
}

// SaveOptions controls spectrum file saving behavior.
type SaveOptions struct {
	// CreateBackup creates a .bak file before overwriting an existing
	// spectrum file. The backup is created at <path>.bak.
	CreateBackup bool
}
