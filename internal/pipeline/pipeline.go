// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline drives the GDS-to-RIS conversion: read the export,
// split it into entries, parse each entry, render each as RIS, and write
// the combined output.
package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/ningluweng/Ocular-Omics/internal/gds"
	"github.com/ningluweng/Ocular-Omics/internal/ris"
	"github.com/ningluweng/Ocular-Omics/pkg/types"
)

// defaultPreviewTitles is how many entry titles Run echoes when the config
// does not say otherwise.
const defaultPreviewTitles = 3

// previewWidth truncates echoed titles so status lines stay one line.
const previewWidth = 50

// Result holds the outcome of one conversion run.
type Result struct {
	// Entries is the number of records converted.
	Entries int
}

// Run converts the GDS export at inputPath into an RIS file at outputPath.
// Per-entry extraction never fails; the only error sources are the two
// file boundaries. Operator status lines go to w.
func Run(inputPath, outputPath string, cfg types.ConvertConfig, w io.Writer) (Result, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return Result{}, fmt.Errorf("reading %s: %w", inputPath, err)
	}

	records := gds.ParseAll(string(data))
	fmt.Fprintf(w, "found %d entries\n", len(records))

	preview := cfg.PreviewTitles
	if preview <= 0 {
		preview = defaultPreviewTitles
	}
	for i, r := range records {
		if i >= preview {
			break
		}
		fmt.Fprintf(w, "entry %d: %s\n", i+1, truncate(r.Title, previewWidth))
	}

	if err := os.WriteFile(outputPath, []byte(ris.FormatAll(records)), 0o644); err != nil {
		return Result{}, fmt.Errorf("writing %s: %w", outputPath, err)
	}

	return Result{Entries: len(records)}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
