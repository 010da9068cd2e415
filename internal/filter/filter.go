// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package filter selects the papers that satisfy a query. Predicates are
// AND'd across dimensions and OR'd across phrases within one dimension; a
// dimension the query leaves empty accepts every paper.
package filter

import (
	"strings"

	"github.com/pdiddy/arxiv-sift/internal/query"
	"github.com/pdiddy/arxiv-sift/pkg/types"
)

// Apply returns the papers that pass every predicate of q, in input order.
// The input slice is not modified.
func Apply(papers []types.Paper, q types.Query) []types.Paper {
	m := newMatcher(q)
	out := make([]types.Paper, 0, len(papers))
	for _, p := range papers {
		if m.match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Match reports whether a single paper passes q.
func Match(p types.Paper, q types.Query) bool {
	return newMatcher(q).match(p)
}

// matcher holds the query pre-tokenized so each paper costs one pass over
// its own text.
type matcher struct {
	phrases    [][]string
	authors    []string
	categories types.CategorySet
	dates      *types.DateRange
}

func newMatcher(q types.Query) matcher {
	m := matcher{categories: q.Categories, dates: q.DateRange}
	for _, ph := range q.KeywordPhrases {
		if toks := query.Tokenize(ph); len(toks) > 0 {
			m.phrases = append(m.phrases, toks)
		}
	}
	for _, a := range q.AuthorPhrases {
		if n := query.NormalizeName(a); n != "" {
			m.authors = append(m.authors, n)
		}
	}
	return m
}

func (m matcher) match(p types.Paper) bool {
	return m.keywords(p) && m.author(p) && m.category(p) && m.date(p)
}

func (m matcher) keywords(p types.Paper) bool {
	if len(m.phrases) == 0 {
		return true
	}
	title := query.Tokenize(p.Title)
	abstract := query.Tokenize(p.Abstract)
	for _, ph := range m.phrases {
		if query.ContainsRun(title, ph) || query.ContainsRun(abstract, ph) {
			return true
		}
	}
	return false
}

func (m matcher) author(p types.Paper) bool {
	if len(m.authors) == 0 {
		return true
	}
	for _, name := range p.Authors {
		name = query.NormalizeName(name)
		for _, phrase := range m.authors {
			if strings.Contains(name, phrase) {
				return true
			}
		}
	}
	return false
}

func (m matcher) category(p types.Paper) bool {
	if m.categories.Any {
		return true
	}
	for _, c := range p.Categories {
		if m.categories.Matches(c) {
			return true
		}
	}
	return false
}

// date passes undated papers only from sources that never carry dates.
func (m matcher) date(p types.Paper) bool {
	if m.dates == nil {
		return true
	}
	if p.SubmittedDate == nil {
		return !p.Source.ProvidesDates()
	}
	return m.dates.Contains(*p.SubmittedDate)
}

// MatchedAuthors returns the author phrases of q that match at least one
// author of p, for highlighting.
func MatchedAuthors(p types.Paper, q types.Query) []string {
	var out []string
	for _, phrase := range q.AuthorPhrases {
		n := query.NormalizeName(phrase)
		if n == "" {
			continue
		}
		for _, name := range p.Authors {
			if strings.Contains(query.NormalizeName(name), n) {
				out = append(out, phrase)
				break
			}
		}
	}
	return out
}
