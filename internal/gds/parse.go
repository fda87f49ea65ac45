// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gds

import (
	"regexp"
	"strings"

	"github.com/ningluweng/Ocular-Omics/pkg/types"
)

// Field patterns. Matching is case-sensitive and first-match-wins; every
// pattern searches independently, so a missing marker only leaves that one
// field empty.
var (
	// titleRe strips the "<number>. " prefix from the entry's first line.
	titleRe = regexp.MustCompile(`^\d+\.\s+(.+)$`)

	// abstractRe spans from the submitter marker to the organism marker,
	// crossing newlines. When no organism marker follows, abstractTailRe
	// takes the rest of the marker's line instead.
	abstractRe     = regexp.MustCompile(`(?s)\(Submitter supplied\)\s+(.+?)Organism:`)
	abstractTailRe = regexp.MustCompile(`\(Submitter supplied\)\s+(.+)`)

	// moreSuffixRe matches the "more..." continuation marker GEO appends
	// to truncated summaries.
	moreSuffixRe = regexp.MustCompile(`\s*more\.\.\.\s*$`)

	organismRe  = regexp.MustCompile(`(?m)Organism:\s*(.+)$`)
	platformRe  = regexp.MustCompile(`(?m)Platforms?:\s*(.+)$`)
	ftpRe       = regexp.MustCompile(`FTP download:.*?(ftp://\S+)`)
	accessionRe = regexp.MustCompile(`Accession:\s*(GSE\d+)`)
	seriesIDRe  = regexp.MustCompile(`ID:\s*(\d+)`)
	sraRe       = regexp.MustCompile(`SRA Run Selector:\s*(https?://\S+)`)
)

// Parse extracts the catalog fields from one entry span. It is total:
// malformed or marker-less entries degrade to empty fields, never an error.
func Parse(entry string) types.Record {
	return types.Record{
		Title:     parseTitle(entry),
		Abstract:  parseAbstract(entry),
		Organism:  firstGroup(organismRe, entry),
		Platform:  firstGroup(platformRe, entry),
		FTPURL:    firstGroup(ftpRe, entry),
		Accession: firstGroup(accessionRe, entry),
		SeriesID:  firstGroup(seriesIDRe, entry),
		SRAURL:    firstGroup(sraRe, entry),
	}
}

// ParseAll splits the full export text and parses every entry, in order.
func ParseAll(text string) []types.Record {
	entries := Split(text)
	if len(entries) == 0 {
		return nil
	}
	records := make([]types.Record, len(entries))
	for i, e := range entries {
		records[i] = Parse(e)
	}
	return records
}

// parseTitle matches the numbered-header shape against the first line only.
func parseTitle(entry string) string {
	firstLine := entry
	if i := strings.IndexByte(entry, '\n'); i >= 0 {
		firstLine = entry[:i]
	}
	return firstGroup(titleRe, firstLine)
}

func parseAbstract(entry string) string {
	var abstract string
	if m := abstractRe.FindStringSubmatch(entry); m != nil {
		abstract = m[1]
	} else {
		abstract = firstGroup(abstractTailRe, entry)
	}
	if abstract == "" {
		return ""
	}
	return strings.TrimSpace(moreSuffixRe.ReplaceAllString(abstract, ""))
}

// firstGroup returns the trimmed first capture group of re in text, or ""
// when there is no match.
func firstGroup(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
