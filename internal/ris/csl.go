// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ris

import (
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/ningluweng/Ocular-Omics/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names follow the CSL-JSON/CSL-YAML schema so that
// output is consumable by Pandoc and reference managers. GDS series map to
// the "dataset" item type.
type CSLItem struct {
	ID       string `yaml:"id"`
	Type     string `yaml:"type"`
	Title    string `yaml:"title"`
	Abstract string `yaml:"abstract,omitempty"`
	Number   string `yaml:"number,omitempty"`
	Source   string `yaml:"source,omitempty"`
	URL      string `yaml:"URL,omitempty"`
	Note     string `yaml:"note,omitempty"`
}

// FormatCSL writes records as a CSL-YAML list to w.
func FormatCSL(records []types.Record, w io.Writer) error {
	items := make([]CSLItem, len(records))
	for i, r := range records {
		items[i] = toCSLItem(r)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// toCSLItem converts a parsed record to a CSLItem. The accession is the
// preferred identifier, falling back to the numeric series ID.
func toCSLItem(r types.Record) CSLItem {
	id := r.Accession
	if id == "" {
		id = r.SeriesID
	}

	item := CSLItem{
		ID:       id,
		Type:     "dataset",
		Title:    r.Title,
		Abstract: r.Abstract,
		Number:   r.Accession,
		Source:   journalName,
	}

	// Prefer the SRA Run Selector link; the FTP URL lands in the note so
	// neither download path is lost.
	if r.SRAURL != "" {
		item.URL = r.SRAURL
	} else if r.FTPURL != "" {
		item.URL = r.FTPURL
	}
	if r.SRAURL != "" && r.FTPURL != "" {
		item.Note = "Supplementary files: " + r.FTPURL
	}
	if r.Title != "" && r.Organism != "" {
		item.Title = r.Title + " [" + r.Organism + "]"
	}

	return item
}
