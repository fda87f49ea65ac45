// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/ningluweng/Ocular-Omics/internal/ris"
)

// ExportRIS writes every cataloged series to w as RIS, in insertion order.
func (s *Store) ExportRIS(ctx context.Context, w io.Writer) error {
	entries, err := s.all(ctx)
	if err != nil {
		return err
	}

	for i, e := range entries {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return fmt.Errorf("writing separator: %w", err)
			}
		}
		if _, err := io.WriteString(w, ris.Format(e.Record)); err != nil {
			return fmt.Errorf("writing %s: %w", e.Key, err)
		}
	}
	return nil
}

// ExportYAML writes every cataloged series to w as a YAML list.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer) error {
	entries, err := s.all(ctx)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(entries)
}

// all returns the full catalog in insertion order, without the list limit.
func (s *Store) all(ctx context.Context) ([]Entry, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM series`).Scan(&count); err != nil {
		return nil, fmt.Errorf("counting series: %w", err)
	}
	if count == 0 {
		return nil, nil
	}
	return s.List(ctx, QueryOptions{MaxResults: count})
}
