// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/ningluweng/Ocular-Omics/pkg/types"
)

// QueryOptions holds parameters for catalog queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string over title and abstract.
	Query string

	// Organism filters by the organism line, exact match.
	Organism string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Organism == ""
}

// Entry is a stored record with its catalog key.
type Entry struct {
	types.Record
	Key string `json:"key" yaml:"key"`
}

// List queries the catalog with optional full-text search and filters.
// Full-text queries are ranked by relevance; structured-only and empty
// queries come back in insertion order.
func (s *Store) List(ctx context.Context, opts QueryOptions) ([]Entry, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT s.accession, s.title, s.abstract, s.organism, s.platform,
				s.series_id, s.ftp_url, s.sra_url
			FROM series_fts
			JOIN series s ON s.rowid = series_fts.rowid
			WHERE series_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT s.accession, s.title, s.abstract, s.organism, s.platform,
				s.series_id, s.ftp_url, s.sra_url
			FROM series s
			WHERE 1=1`)
	}

	if opts.Organism != "" {
		qb.WriteString(` AND s.organism = ?`)
		args = append(args, opts.Organism)
	}

	if useFTS {
		qb.WriteString(` ORDER BY series_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY s.rowid`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	var results []Entry
	for rows.Next() {
		var e Entry
		var accession string
		if err := rows.Scan(
			&accession, &e.Title, &e.Abstract, &e.Organism,
			&e.Platform, &e.SeriesID, &e.FTPURL, &e.SRAURL,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		e.Key = accession
		if len(accession) > 3 && accession[:3] == "GSE" {
			e.Accession = accession
		}
		results = append(results, e)
	}

	return results, rows.Err()
}
