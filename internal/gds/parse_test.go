// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gds

import (
	"testing"

	"github.com/ningluweng/Ocular-Omics/pkg/types"
)

// sampleEntry exercises every field at once.
const sampleEntry = "1. Sample Title\n" +
	"Organism: Mus musculus\n" +
	"(Submitter supplied) Some text more...\n" +
	"Accession: GSE12345\n" +
	"ID: 67890\n" +
	"Platforms: GPL1\n" +
	"FTP download: ftp://example.com/path\n" +
	"SRA Run Selector: https://example.com/sra"

func TestParseAllFields(t *testing.T) {
	got := Parse(sampleEntry)

	want := types.Record{
		Title:     "Sample Title",
		Abstract:  "Some text",
		Organism:  "Mus musculus",
		Platform:  "GPL1",
		FTPURL:    "ftp://example.com/path",
		Accession: "GSE12345",
		SeriesID:  "67890",
		SRAURL:    "https://example.com/sra",
	}

	if got != want {
		t.Errorf("Parse = %+v, want %+v", got, want)
	}
}

func TestParseIsTotal(t *testing.T) {
	tests := []struct {
		name  string
		entry string
	}{
		{"empty entry", ""},
		{"no recognizable fields", "random prose\nwith nothing useful"},
		{"header only", "42. Bare title"},
		{"markers without values", "1. T\nOrganism:\nAccession:\nID:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Must not panic; unmatched fields must come out empty.
			got := Parse(tt.entry)
			if got.FTPURL != "" || got.SRAURL != "" || got.Accession != "" {
				t.Errorf("unexpected matches in %+v", got)
			}
		})
	}
}

func TestParseTitle(t *testing.T) {
	tests := []struct {
		name  string
		entry string
		want  string
	}{
		{"strips numbered prefix", "12. A study of things\nbody", "A study of things"},
		{"trims whitespace", "1.   Padded title   \nbody", "Padded title"},
		{"missing prefix yields empty", "no header here\nbody", ""},
		{"first line only", "1. Title\n2. Not the title", "Title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.entry).Title; got != tt.want {
				t.Errorf("Title = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseAbstract(t *testing.T) {
	tests := []struct {
		name  string
		entry string
		want  string
	}{
		{
			name:  "spans lines up to organism marker",
			entry: "1. T\n(Submitter supplied) Line one\ncontinues here.\nOrganism: Homo sapiens",
			want:  "Line one\ncontinues here.",
		},
		{
			name:  "strips trailing more marker",
			entry: "1. T\n(Submitter supplied) Truncated summary more...\nOrganism: Homo sapiens",
			want:  "Truncated summary",
		},
		{
			name:  "more marker mid-text is kept",
			entry: "1. T\n(Submitter supplied) Needs more... context here\nOrganism: Homo sapiens",
			want:  "Needs more... context here",
		},
		{
			name:  "no organism marker takes the marker line",
			entry: "1. T\n(Submitter supplied) Just a summary more...\nAccession: GSE1",
			want:  "Just a summary",
		},
		{
			name:  "missing marker yields empty",
			entry: "1. T\nOrganism: Homo sapiens",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.entry).Abstract; got != tt.want {
				t.Errorf("Abstract = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParsePlatformVariants(t *testing.T) {
	singular := Parse("1. T\nPlatform: GPL570 12 Samples")
	if singular.Platform != "GPL570 12 Samples" {
		t.Errorf("Platform = %q, want %q", singular.Platform, "GPL570 12 Samples")
	}

	plural := Parse("1. T\nPlatforms: GPL96 GPL97 8 Samples")
	if plural.Platform != "GPL96 GPL97 8 Samples" {
		t.Errorf("Platforms = %q, want %q", plural.Platform, "GPL96 GPL97 8 Samples")
	}

	// Comma-separated platforms stay one captured span.
	multi := Parse("1. T\nPlatforms: GPL96, GPL97")
	if multi.Platform != "GPL96, GPL97" {
		t.Errorf("Platform = %q, want single span %q", multi.Platform, "GPL96, GPL97")
	}
}

func TestParseURLFields(t *testing.T) {
	entry := "1. T\n" +
		"FTP download: GEO (CEL, CHP) ftp://ftp.ncbi.nlm.nih.gov/geo/series/GSE1nnn/GSE1000/\n" +
		"SRA Run Selector: https://www.ncbi.nlm.nih.gov/Traces/study/?acc=SRP000001\n"

	got := Parse(entry)
	if got.FTPURL != "ftp://ftp.ncbi.nlm.nih.gov/geo/series/GSE1nnn/GSE1000/" {
		t.Errorf("FTPURL = %q", got.FTPURL)
	}
	if got.SRAURL != "https://www.ncbi.nlm.nih.gov/Traces/study/?acc=SRP000001" {
		t.Errorf("SRAURL = %q", got.SRAURL)
	}

	// An ftp:// token without the download marker does not match.
	if got := Parse("1. T\nsee ftp://elsewhere.example/"); got.FTPURL != "" {
		t.Errorf("FTPURL = %q, want empty without marker", got.FTPURL)
	}
}

func TestParseAccessionAndID(t *testing.T) {
	entry := "1. T\nSeries\t\tAccession: GSE200100\tID: 200200100"

	got := Parse(entry)
	if got.Accession != "GSE200100" {
		t.Errorf("Accession = %q, want GSE200100", got.Accession)
	}
	if got.SeriesID != "200200100" {
		t.Errorf("SeriesID = %q, want 200200100", got.SeriesID)
	}

	// Non-GSE accessions are not series accessions.
	if got := Parse("1. T\nAccession: GPL570"); got.Accession != "" {
		t.Errorf("Accession = %q, want empty for non-GSE", got.Accession)
	}
}

func TestParseAll(t *testing.T) {
	text := "1. First\nAccession: GSE1 ID: 101\n\n2. Second\nAccession: GSE2 ID: 102\n"

	records := ParseAll(text)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	// No cross-contamination between entries.
	if records[0].Accession != "GSE1" || records[0].SeriesID != "101" {
		t.Errorf("first record = %+v", records[0])
	}
	if records[1].Accession != "GSE2" || records[1].SeriesID != "102" {
		t.Errorf("second record = %+v", records[1])
	}

	if got := ParseAll("nothing numbered here"); got != nil {
		t.Errorf("ParseAll on headerless text = %v, want nil", got)
	}
}
