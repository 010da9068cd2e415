// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the arxiv-sift pipeline.
//
// Paper is the normalized record every source adapter produces; Query is the
// user's validated search intent. Neither is mutated once constructed: later
// stages select and reorder records, they never write to them.
package types

import (
	"sort"
	"strings"
	"time"
)

// SourceKind identifies which raw format a Paper was parsed from.
type SourceKind string

const (
	// SourceAPI is the arXiv Atom query API.
	SourceAPI SourceKind = "api"
	// SourcePage is the scraped arxiv.org/list/<archive>/new listing.
	SourcePage SourceKind = "page"
	// SourceDigest is a locally exported arXiv email digest.
	SourceDigest SourceKind = "digest"
)

// ProvidesDates reports whether records from this source carry a
// submission date. The live listing only describes "today".
func (k SourceKind) ProvidesDates() bool {
	return k != SourcePage
}

// Paper is one paper normalized from any source.
type Paper struct {
	// Identifier is the arXiv ID without version suffix (e.g. "2301.07041").
	Identifier string `json:"identifier" yaml:"identifier"`

	// Title is the single-line paper title.
	Title string `json:"title" yaml:"title"`

	// Abstract is the paper abstract; empty when the source omitted it.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Authors lists the paper authors in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Categories is the sorted, deduplicated set of category codes (e.g. "cs.CV").
	Categories []string `json:"categories" yaml:"categories"`

	// SubmittedDate is nil for sources that expose no per-entry date.
	SubmittedDate *time.Time `json:"submitted_date,omitempty" yaml:"submitted_date,omitempty"`

	// SourceOrderRank is the zero-based position assigned by the source.
	SourceOrderRank int `json:"source_order_rank" yaml:"source_order_rank"`

	// URL is the abstract page for the paper.
	URL string `json:"url" yaml:"url"`

	// Source identifies the adapter that produced this record.
	Source SourceKind `json:"source" yaml:"source"`
}

// CategorySetOf returns the sorted unique non-empty codes in codes. The
// result is never nil.
func CategorySetOf(codes []string) []string {
	set := make([]string, 0, len(codes))
	seen := make(map[string]bool, len(codes))
	for _, c := range codes {
		c = strings.TrimSpace(c)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		set = append(set, c)
	}
	sort.Strings(set)
	return set
}

// AbsURL returns the canonical abstract URL for an arXiv identifier.
func AbsURL(id string) string {
	return "https://arxiv.org/abs/" + id
}
