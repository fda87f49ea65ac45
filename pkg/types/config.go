package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "gds2ris/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ConvertConfig holds settings for the convert stage.
type ConvertConfig struct {
	// PreviewTitles is how many entry titles to echo to the operator
	// (default 3).
	PreviewTitles int `json:"preview_titles" yaml:"preview_titles"`
}

// FetchConfig holds settings for the fetch stage, which pulls GDS search
// results from NCBI E-utilities.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// RetMax is the maximum number of series to request (default 100).
	RetMax int `json:"retmax" yaml:"retmax"`

	// APIKey is an optional NCBI API key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// CatalogConfig holds settings for the series catalog.
type CatalogConfig struct {
	// CatalogDir is the directory holding the SQLite database.
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir"`

	// MaxResults is the maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
