// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gds

import (
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "no headers yields nil",
			text: "just some prose\nwith no numbered records\n",
			want: nil,
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "single entry",
			text: "1. Only entry\nOrganism: Homo sapiens\n",
			want: []string{"1. Only entry\nOrganism: Homo sapiens"},
		},
		{
			name: "two entries in order",
			text: "1. First\nbody one\n\n2. Second\nbody two\n",
			want: []string{"1. First\nbody one", "2. Second\nbody two"},
		},
		{
			name: "leading text before first header is dropped",
			text: "Search results for mouse:\n\n1. First\nbody\n",
			want: []string{"1. First\nbody"},
		},
		{
			name: "numbers need not be sequential or unique",
			text: "7. Seven\n\n7. Seven again\n\n3. Three\n",
			want: []string{"7. Seven", "7. Seven again", "3. Three"},
		},
		{
			name: "multi-digit numbers",
			text: "99. Ninety-nine\nbody\n100. One hundred\nbody\n",
			want: []string{"99. Ninety-nine\nbody", "100. One hundred\nbody"},
		},
		{
			name: "number without period is not a header",
			text: "1. Real entry\n2 not a header\n3) also not\n",
			want: []string{"1. Real entry\n2 not a header\n3) also not"},
		},
		{
			name: "header mid-line does not split",
			text: "1. First\nsee also 2. something inline\n",
			want: []string{"1. First\nsee also 2. something inline"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Split returned %d entries, want %d: %q", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("entry %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSplitPreservesOrderAndSpans(t *testing.T) {
	text := "1. Alpha\nbody a\n2. Beta\nbody b\n3. Gamma\nbody c\n"

	entries := Split(text)
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	// Re-concatenating the trimmed spans reconstructs the source minus
	// inter-entry whitespace.
	joined := strings.Join(entries, "\n")
	if joined != strings.TrimSpace(text) {
		t.Errorf("rejoined entries = %q, want %q", joined, strings.TrimSpace(text))
	}
}

func TestSplitDropsWhitespaceOnlySpans(t *testing.T) {
	// A header immediately followed by another header leaves a span that
	// is pure whitespace once the header shape itself is the whole line.
	text := "1. First\n\n   \n2. Second\n"

	entries := Split(text)
	for _, e := range entries {
		if strings.TrimSpace(e) == "" {
			t.Errorf("Split emitted a whitespace-only entry: %q", e)
		}
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
}
