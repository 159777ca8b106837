package main

import (
	"fmt"

	"github.com/slhakit/slhakit/pkg/spectrum"
	"github.com/spf13/cobra"
)

var (
	setEncoding string
	setBackup   bool
)

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVar(&setEncoding, "encoding", "", "Input encoding (UTF-8, UTF-16LE, UTF-16BE, WINDOWS-1252)")
	cmd.Flags().BoolVar(&setBackup, "backup", true, "Create backup")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <file> <key> <value>",
		Short: "Set a single field value",
		Long: `The set command replaces one field in a spectrum file and saves the
result. All other lines keep their exact bytes. The file is written atomically
and, by default, backed up to <file>.bak first.

Example:
  slhactl set softsusy.slha "MINPAR;3;1" "15.0"
  slhactl set softsusy.slha "MINPAR;3;1" "15.0" --backup=false`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	path := args[0]
	keyStr := args[1]
	value := args[2]

	printVerbose("Loading spectrum: %s\n", path)

	key, err := spectrum.ParseKey(keyStr)
	if err != nil {
		return fmt.Errorf("failed to parse key: %w", err)
	}

	c, err := spectrum.Load(path, &spectrum.LoadOptions{Encoding: setEncoding})
	if err != nil {
		return fmt.Errorf("failed to load spectrum: %w", err)
	}

	if err := c.SetField(key, value); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	if err := spectrum.Save(path, c, &spectrum.SaveOptions{CreateBackup: setBackup}); err != nil {
		return fmt.Errorf("failed to save spectrum: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    path,
			"key":     key.String(),
			"value":   value,
			"success": true,
		})
	}

	printInfo("Set %s = %s\n", key.String(), value)
	if setBackup {
		printInfo("Backup created: %s.bak\n", path)
	}

	return nil
}
