// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs one retrieval: fetch, adapt, filter, score, sort,
// limit, and highlight.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/arxiv-sift/internal/filter"
	"github.com/pdiddy/arxiv-sift/internal/highlight"
	"github.com/pdiddy/arxiv-sift/internal/rank"
	"github.com/pdiddy/arxiv-sift/internal/source"
	"github.com/pdiddy/arxiv-sift/pkg/types"
)

// AuthorSeparator joins author names in highlighted output.
const AuthorSeparator = ", "

// Result is one ranked paper with its display text.
type Result struct {
	Paper types.Paper `json:"paper"`
	// Score is nil when the query has no keywords.
	Score    *float64       `json:"score,omitempty"`
	Title    highlight.Text `json:"title"`
	Abstract highlight.Text `json:"abstract"`
	Authors  highlight.Text `json:"authors"`
}

// Output is the result set of one run plus diagnostics.
type Output struct {
	Results []Result         `json:"results"`
	Source  types.SourceKind `json:"source"`
	// Skipped counts entries the adapter could not turn into records.
	Skipped int `json:"skipped"`
	// Retrieved and Matched count records before and after filtering.
	Retrieved int `json:"retrieved"`
	Matched   int `json:"matched"`
}

// Run performs a single retrieval from src and ranks the records against q.
// Progress and warnings go to w, which may be nil. A retrieval failure is
// returned as is and never reported as an empty result.
func Run(ctx context.Context, src source.Source, q types.Query, w io.Writer) (Output, error) {
	if w == nil {
		w = io.Discard
	}
	kind := src.Adapter.Kind()

	body, err := src.Fetcher.Fetch(ctx, q)
	if err != nil {
		return Output{}, err
	}
	defer body.Close()

	batch, err := src.Adapter.Parse(body, src.Limit)
	if err != nil {
		return Output{}, err
	}
	if batch.Skipped > 0 {
		fmt.Fprintf(w, "warning: skipped %d unparseable %s entries\n", batch.Skipped, kind)
	}

	return Rank(batch, kind, q), nil
}

// Rank applies filtering, scoring, sorting, the result limit, and
// highlighting to an already parsed batch.
func Rank(batch source.Batch, kind types.SourceKind, q types.Query) Output {
	matched := filter.Apply(batch.Papers, q)

	var scores rank.Scores
	if q.HasKeywords() {
		scores = rank.Score(matched, q.KeywordTokens)
	}
	sorted := rank.Sort(matched, scores)
	if q.Limit > 0 && len(sorted) > q.Limit {
		sorted = sorted[:q.Limit]
	}

	keywords := highlight.NewTerms(q.KeywordPhrases)
	out := Output{
		Results:   make([]Result, 0, len(sorted)),
		Source:    kind,
		Skipped:   batch.Skipped,
		Retrieved: len(batch.Papers),
		Matched:   len(matched),
	}
	for _, p := range sorted {
		r := Result{
			Paper:    p,
			Title:    keywords.Mark(p.Title),
			Abstract: keywords.Mark(p.Abstract),
			Authors:  highlight.MarkNames(p.Authors, AuthorSeparator, filter.MatchedAuthors(p, q)),
		}
		if s, ok := scores.Lookup(p.Identifier); ok {
			r.Score = &s
		}
		out.Results = append(out.Results, r)
	}
	return out
}
