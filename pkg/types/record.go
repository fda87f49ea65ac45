// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Record holds the fields extracted from one GDS series entry. Every field
// is a plain string; a field whose marker is absent from the source entry
// is the empty string. No distinction is kept between "absent" and
// "present but empty".
type Record struct {
	// Title is the remainder of the entry's first line after the
	// "<number>. " prefix.
	Title string `json:"title" yaml:"title"`

	// Abstract is the submitter-supplied summary, with any trailing
	// "more..." continuation marker removed.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Organism is the species line (e.g. "Mus musculus").
	Organism string `json:"organism,omitempty" yaml:"organism,omitempty"`

	// Platform is the platform line, kept as a single span even when the
	// source lists several comma-separated platforms.
	Platform string `json:"platform,omitempty" yaml:"platform,omitempty"`

	// FTPURL is the supplementary-file download URL.
	FTPURL string `json:"ftp_url,omitempty" yaml:"ftp_url,omitempty"`

	// Accession is the series accession (e.g. "GSE12345").
	Accession string `json:"accession,omitempty" yaml:"accession,omitempty"`

	// SeriesID is the numeric GDS series ID.
	SeriesID string `json:"series_id,omitempty" yaml:"series_id,omitempty"`

	// SRAURL is the SRA Run Selector URL, when the series has one.
	SRAURL string `json:"sra_url,omitempty" yaml:"sra_url,omitempty"`
}
