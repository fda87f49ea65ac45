// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ningluweng/Ocular-Omics/internal/gds"
	"github.com/ningluweng/Ocular-Omics/internal/ris"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <input.txt>",
	Short: "Show the fields parsed from a GDS export",
	Long: `Inspect parses a GDS export and prints the extracted fields without
writing an RIS file. The default output is CSL-YAML, suitable for Pandoc;
--json prints the raw parsed records instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	records := gds.ParseAll(string(data))
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "no entries found")
		return nil
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}
	return ris.FormatCSL(records, os.Stdout)
}

func init() {
	inspectCmd.Flags().Bool("json", false, "output parsed records as JSON")

	rootCmd.AddCommand(inspectCmd)
}
