package main

import (
	"fmt"
	"os"

	"github.com/slhakit/slhakit/pkg/spectrum"
	"github.com/spf13/cobra"
)

var (
	fmtEncoding string
	fmtWrite    bool
	fmtBackup   bool
)

func init() {
	cmd := newFmtCmd()
	cmd.Flags().StringVar(&fmtEncoding, "encoding", "", "Input encoding (UTF-8, UTF-16LE, UTF-16BE, WINDOWS-1252)")
	cmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "Write result back to the file instead of stdout")
	cmd.Flags().BoolVar(&fmtBackup, "backup", true, "Create backup when writing in place")
	rootCmd.AddCommand(cmd)
}

func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt <file>",
		Short: "Reformat a spectrum file to standard column layout",
		Long: `The fmt command aligns every line of a spectrum file to the
standard column layout: block definitions at column zero, data lines indented
one space, subsequent fields aligned to four-column tab stops.

Example:
  slhactl fmt messy.slha
  slhactl fmt messy.slha --write`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(args)
		},
	}
	return cmd
}

func runFmt(args []string) error {
	path := args[0]

	printVerbose("Loading spectrum: %s\n", path)

	c, err := spectrum.Load(path, &spectrum.LoadOptions{Encoding: fmtEncoding})
	if err != nil {
		return fmt.Errorf("failed to load spectrum: %w", err)
	}

	for _, b := range c.Blocks() {
		for _, l := range b.Lines() {
			l.Reformat()
		}
	}

	if !fmtWrite {
		if _, err := c.WriteTo(os.Stdout); err != nil {
			return fmt.Errorf("failed to write spectrum: %w", err)
		}
		return nil
	}

	if err := spectrum.Save(path, c, &spectrum.SaveOptions{CreateBackup: fmtBackup}); err != nil {
		return fmt.Errorf("failed to save spectrum: %w", err)
	}
	printInfo("Reformatted %s\n", path)
	return nil
}
