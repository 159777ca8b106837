package main

import (
	"fmt"
	"os"

	"github.com/slhakit/slhakit/pkg/spectrum"
	"github.com/spf13/cobra"
)

var catEncoding string

func init() {
	cmd := newCatCmd()
	cmd.Flags().StringVar(&catEncoding, "encoding", "", "Input encoding (UTF-8, UTF-16LE, UTF-16BE, WINDOWS-1252)")
	rootCmd.AddCommand(cmd)
}

func newCatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cat <file>",
		Short: "Print a spectrum file as UTF-8",
		Long: `The cat command parses a spectrum file and prints it to stdout as
UTF-8. Blank lines are dropped; every kept line keeps its exact layout. Useful
for normalizing files written by Windows-hosted generators.

Example:
  slhactl cat spectrum.slha
  slhactl cat spectrum.slha --encoding UTF-16LE`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCat(args)
		},
	}
	return cmd
}

func runCat(args []string) error {
	path := args[0]

	printVerbose("Loading spectrum: %s\n", path)

	c, err := spectrum.Load(path, &spectrum.LoadOptions{Encoding: catEncoding})
	if err != nil {
		return fmt.Errorf("failed to load spectrum: %w", err)
	}

	if _, err := c.WriteTo(os.Stdout); err != nil {
		return fmt.Errorf("failed to write spectrum: %w", err)
	}

	return nil
}
