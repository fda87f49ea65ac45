// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gds parses NCBI GEO DataSets plaintext search exports. An export
// is a sequence of numbered entries ("1. Some title\n..."); this package
// splits the export into entries and extracts the catalog fields from each.
package gds

import (
	"regexp"
	"strings"
)

// headerRe matches an entry header: a line starting with one or more
// digits, a period, and whitespace. Numbers need not be sequential or
// unique; any line of this shape starts a new entry.
var headerRe = regexp.MustCompile(`(?m)^\d+\.\s`)

// Split breaks the full export text into per-entry spans, in source order.
// Each entry runs from its header line up to the next header (or end of
// text). Text before the first header is discarded, and spans that are
// empty after trimming are dropped. A text with no headers yields nil.
func Split(text string) []string {
	locs := headerRe.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}

	entries := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		entry := strings.TrimSpace(text[loc[0]:end])
		if entry != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}
