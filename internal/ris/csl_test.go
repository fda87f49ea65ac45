// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ris

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ningluweng/Ocular-Omics/pkg/types"
)

func TestToCSLItem(t *testing.T) {
	r := types.Record{
		Title:     "Expression atlas",
		Abstract:  "Profiling across tissues.",
		Organism:  "Mus musculus",
		Accession: "GSE12345",
		SeriesID:  "200012345",
		FTPURL:    "ftp://example.com/suppl",
		SRAURL:    "https://example.com/sra",
	}

	item := toCSLItem(r)

	if item.ID != "GSE12345" {
		t.Errorf("ID = %q, want accession", item.ID)
	}
	if item.Type != "dataset" {
		t.Errorf("Type = %q, want %q", item.Type, "dataset")
	}
	if item.Title != "Expression atlas [Mus musculus]" {
		t.Errorf("Title = %q", item.Title)
	}
	if item.URL != "https://example.com/sra" {
		t.Errorf("URL = %q, want SRA link preferred", item.URL)
	}
	if !strings.Contains(item.Note, "ftp://example.com/suppl") {
		t.Errorf("Note = %q, want FTP URL retained", item.Note)
	}
	if item.Source != "Gene Expression Omnibus" {
		t.Errorf("Source = %q", item.Source)
	}
}

func TestToCSLItemFallbacks(t *testing.T) {
	// No accession: the numeric series ID becomes the item ID.
	item := toCSLItem(types.Record{Title: "T", SeriesID: "101"})
	if item.ID != "101" {
		t.Errorf("ID = %q, want series ID fallback", item.ID)
	}

	// No SRA link: the FTP URL is the item URL and no note is written.
	item = toCSLItem(types.Record{Title: "T", FTPURL: "ftp://example.com/x"})
	if item.URL != "ftp://example.com/x" {
		t.Errorf("URL = %q, want FTP fallback", item.URL)
	}
	if item.Note != "" {
		t.Errorf("Note = %q, want empty", item.Note)
	}
}

func TestFormatCSL(t *testing.T) {
	records := []types.Record{
		{Title: "First", Accession: "GSE1"},
		{Title: "Second", Accession: "GSE2", Organism: "Homo sapiens"},
	}

	var buf bytes.Buffer
	if err := FormatCSL(records, &buf); err != nil {
		t.Fatalf("FormatCSL: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"id: GSE1",
		"id: GSE2",
		"type: dataset",
		"Second [Homo sapiens]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
