// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ningluweng/Ocular-Omics/internal/pipeline"
	"github.com/ningluweng/Ocular-Omics/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input.txt> [output.ris]",
	Short: "Convert a GDS plaintext export to an RIS file",
	Long: `Convert reads a GDS search export, splits it into numbered entries,
extracts the citation fields from each, and writes one RIS record per
entry. Missing fields come out empty; no entry is ever skipped.

The output path defaults to output.ris when not given.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := viper.GetString("convert.output")
	if len(args) > 1 {
		output = args[1]
	}

	fmt.Printf("reading from: %s\n", input)
	fmt.Printf("writing to:   %s\n", output)

	cfg := types.ConvertConfig{
		PreviewTitles: viper.GetInt("convert.preview_titles"),
	}

	res, err := pipeline.Run(input, output, cfg, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("converted %d entries to %s\n", res.Entries, output)
	return nil
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
