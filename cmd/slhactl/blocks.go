package main

import (
	"fmt"

	"github.com/slhakit/slhakit/pkg/spectrum"
	"github.com/spf13/cobra"
)

var blocksEncoding string

func init() {
	cmd := newBlocksCmd()
	cmd.Flags().StringVar(&blocksEncoding, "encoding", "", "Input encoding (UTF-8, UTF-16LE, UTF-16BE, WINDOWS-1252)")
	rootCmd.AddCommand(cmd)
}

func newBlocksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blocks <file>",
		Short: "List blocks in a spectrum file",
		Long: `The blocks command lists every block in a spectrum file in file
order, with its line count. Blocks that share a name are listed separately.

Example:
  slhactl blocks softsusy.slha
  slhactl blocks softsusy.slha --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBlocks(args)
		},
	}
	return cmd
}

func runBlocks(args []string) error {
	path := args[0]

	printVerbose("Loading spectrum: %s\n", path)

	c, err := spectrum.Load(path, &spectrum.LoadOptions{Encoding: blocksEncoding})
	if err != nil {
		return fmt.Errorf("failed to load spectrum: %w", err)
	}

	if jsonOut {
		type blockInfo struct {
			Name  string `json:"name"`
			Lines int    `json:"lines"`
		}
		out := make([]blockInfo, 0, c.Len())
		for _, b := range c.Blocks() {
			out = append(out, blockInfo{Name: b.Name(), Lines: b.Len()})
		}
		return printJSON(out)
	}

	for _, b := range c.Blocks() {
		name := b.Name()
		if name == "" {
			name = "(header)"
		}
		printInfo("%-24s %d lines\n", name, b.Len())
	}

	return nil
}
