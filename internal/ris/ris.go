// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ris renders parsed GDS records as RIS citation records for
// import into reference managers (EndNote, Zotero, Mendeley).
package ris

import (
	"strings"

	"github.com/ningluweng/Ocular-Omics/pkg/types"
)

// journalName is the constant JO value: every GDS series is cited against
// the Gene Expression Omnibus as its publication venue.
const journalName = "Gene Expression Omnibus"

// submitterMarker prefixes the abstract line, matching the marker GEO uses
// in the source export.
const submitterMarker = "(Submitter supplied) "

// Format renders one record as an RIS block. The block always carries a
// TY, JO, and ER line; every other line is emitted only when its field is
// populated. The returned text ends with a newline after the ER line so
// joining blocks with "\n" yields one blank line between records.
func Format(r types.Record) string {
	var lines []string

	lines = append(lines, tagLine("TY", "JOUR"))

	if r.Title != "" {
		title := r.Title
		if r.Organism != "" {
			title += " [" + r.Organism + "]"
		}
		lines = append(lines, tagLine("TI", title))
	}

	// Accession, series ID, and platform ride in AU lines, verbatim.
	// GDS series have no real author list and reference managers need
	// somewhere importable to carry these identifiers.
	for _, au := range []string{r.Accession, r.SeriesID, r.Platform} {
		if au != "" {
			lines = append(lines, tagLine("AU", au))
		}
	}

	lines = append(lines, tagLine("JO", journalName))

	if r.FTPURL != "" {
		lines = append(lines, tagLine("DO", r.FTPURL))
	}
	if r.Abstract != "" {
		lines = append(lines, tagLine("AB", submitterMarker+r.Abstract))
	}
	if r.SRAURL != "" {
		lines = append(lines, tagLine("UR", r.SRAURL))
	}

	lines = append(lines, tagLine("ER", ""))
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}

// FormatAll renders every record and joins the blocks so that consecutive
// records are separated by exactly one blank line.
func FormatAll(records []types.Record) string {
	blocks := make([]string, len(records))
	for i, r := range records {
		blocks[i] = Format(r)
	}
	return strings.Join(blocks, "\n")
}

// tagLine emits one RIS line: a 2-character tag, two spaces, "- ", value.
// The spacing is fixed; reference managers reject variants.
func tagLine(tag, value string) string {
	return tag + "  - " + value
}
