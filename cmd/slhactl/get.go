package main

import (
	"fmt"

	"github.com/slhakit/slhakit/pkg/spectrum"
	"github.com/spf13/cobra"
)

var getEncoding string

func init() {
	cmd := newGetCmd()
	cmd.Flags().StringVar(&getEncoding, "encoding", "", "Input encoding (UTF-8, UTF-16LE, UTF-16BE, WINDOWS-1252)")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <key>",
		Short: "Get a single field value",
		Long: `The get command retrieves one field from a spectrum file. The key
has the form "block;line;field": a case-insensitive block name, comma-separated
leading fields selecting the line ("(any)" matches any field), and a zero-based
field index.

Example:
  slhactl get softsusy.slha "MINPAR;3;1"
  slhactl get softsusy.slha "MASS;25;1" --json
  slhactl get decays.slha "1000022;(any),3,2,11,24;0"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	path := args[0]
	keyStr := args[1]

	printVerbose("Loading spectrum: %s\n", path)

	key, err := spectrum.ParseKey(keyStr)
	if err != nil {
		return fmt.Errorf("failed to parse key: %w", err)
	}

	c, err := spectrum.Load(path, &spectrum.LoadOptions{Encoding: getEncoding})
	if err != nil {
		return fmt.Errorf("failed to load spectrum: %w", err)
	}

	value, err := c.Field(key)
	if err != nil {
		return fmt.Errorf("failed to get value: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":  path,
			"key":   key.String(),
			"value": value,
		})
	}

	fmt.Println(value)
	return nil
}
