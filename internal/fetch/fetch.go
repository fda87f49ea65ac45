// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch pulls GDS search results from NCBI E-utilities and saves
// them in the plaintext export form the converter consumes.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/ningluweng/Ocular-Omics/internal/httputil"
	"github.com/ningluweng/Ocular-Omics/pkg/types"
)

// eutilsBase is the E-utilities endpoint root. Declared as a var so tests
// can substitute an httptest server.
var eutilsBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

const defaultRetMax = 100

// Client calls the E-utilities API.
type Client struct {
	HTTP *http.Client
}

// esearchResponse is the retmode=json envelope of esearch.fcgi.
type esearchResponse struct {
	ESearchResult struct {
		Count  string   `json:"count"`
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

// Search runs an esearch against db=gds and returns the matching UIDs.
func (c *Client) Search(ctx context.Context, term string, cfg types.FetchConfig) ([]string, error) {
	if strings.TrimSpace(term) == "" {
		return nil, fmt.Errorf("empty search term")
	}

	q := url.Values{}
	q.Set("db", "gds")
	q.Set("term", term)
	q.Set("retmax", strconv.Itoa(retMax(cfg)))
	q.Set("retmode", "json")

	body, err := c.get(ctx, "esearch.fcgi", q, cfg)
	if err != nil {
		return nil, err
	}

	var parsed esearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parsing esearch response: %w", err)
	}
	return parsed.ESearchResult.IDList, nil
}

// Export runs an efetch for the given UIDs and returns the plaintext GDS
// summary export. The rettype=summary retmode=text form yields the same
// numbered entries the GEO website's "Send to file" produces.
func (c *Client) Export(ctx context.Context, ids []string, cfg types.FetchConfig) (string, error) {
	if len(ids) == 0 {
		return "", fmt.Errorf("no series IDs to fetch")
	}

	q := url.Values{}
	q.Set("db", "gds")
	q.Set("id", strings.Join(ids, ","))
	q.Set("rettype", "summary")
	q.Set("retmode", "text")

	body, err := c.get(ctx, "efetch.fcgi", q, cfg)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// get performs one E-utilities GET with 429 retry.
func (c *Client) get(ctx context.Context, endpoint string, q url.Values, cfg types.FetchConfig) ([]byte, error) {
	if cfg.APIKey != "" {
		q.Set("api_key", cfg.APIKey)
	}

	u := fmt.Sprintf("%s/%s?%s", eutilsBase, endpoint, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, 0)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned HTTP %d", endpoint, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", endpoint, err)
	}
	return body, nil
}

// Fetch searches db=gds for term and writes the plaintext export to
// outPath. It returns the number of series fetched. Status lines go to w.
func Fetch(ctx context.Context, c *Client, term, outPath string, cfg types.FetchConfig, w io.Writer) (int, error) {
	ids, err := c.Search(ctx, term, cfg)
	if err != nil {
		return 0, err
	}
	fmt.Fprintf(w, "found %d series for %q\n", len(ids), term)

	if len(ids) == 0 {
		return 0, nil
	}

	text, err := c.Export(ctx, ids, cfg)
	if err != nil {
		return 0, err
	}

	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		return 0, fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Fprintf(w, "saved %s\n", outPath)

	return len(ids), nil
}

func retMax(cfg types.FetchConfig) int {
	if cfg.RetMax > 0 {
		return cfg.RetMax
	}
	return defaultRetMax
}
