/*
Package spectrum provides a high-level, ergonomic API for SLHA spectrum
file operations.

# Quick Start

Read a value from a spectrum file:

	value, err := spectrum.Get("softsusy.slha", "MINPAR;3;1")

# Features

  - One-function read/modify/write helpers
  - Atomic saves with optional backup creation
  - Transparent decoding of UTF-16 and Windows-1252 input
  - Memory-mapped loading on platforms that support it
  - Exact byte-for-byte round trips for untouched lines

# Basic Usage

Load, modify, save:

	c, err := spectrum.Load("softsusy.slha", nil)
	if err != nil {
	    log.Fatal(err)
	}
	key := spectrum.MustParseKey("MINPAR;3;1")
	if err := c.SetField(key, "15.0"); err != nil {
	    log.Fatal(err)
	}
	err = spectrum.Save("softsusy.slha", c, &spectrum.SaveOptions{
	    CreateBackup: true,
	})

Load a file written by a Windows-hosted generator:

	c, err := spectrum.Load("spectrum.slha", &spectrum.LoadOptions{
	    Encoding: "WINDOWS-1252",
	})

One-shot value update:

	err := spectrum.Set("softsusy.slha", "MINPAR;3;1", "15.0", nil)

# Advanced Usage

For fine-grained control over blocks and lines, use the low-level API:

	import "github.com/slhakit/slhakit/slha"

	c, _ := slha.ParseString(text)
	b, _ := c.At("MINPAR")
	l, _ := b.At("3")
	// ... per-line operations

# Safety

  - Saves go through a temp file and rename, never a partial overwrite
  - File data is synced to disk before the rename
  - Optional .bak creation before modifying a file in place
*/
package spectrum
