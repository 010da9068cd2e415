// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query normalizes user keyword, author, category, and date input
// into a validated types.Query, and owns the word-splitting rule shared by
// filtering, scoring, and highlighting.
package query

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pdiddy/arxiv-sift/pkg/types"
)

const dateFmt = "2006-01-02"

// Error reports a malformed query. It is raised before any retrieval.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid query: %s: %s", e.Field, e.Reason)
}

// IsQueryError reports whether err is, or wraps, a query Error.
func IsQueryError(err error) bool {
	var qe *Error
	return errors.As(err, &qe)
}

// Params is the raw query input as given on the command line or loaded
// from a preset file.
type Params struct {
	Keywords   []string `yaml:"keywords,omitempty"`
	Authors    []string `yaml:"authors,omitempty"`
	Categories []string `yaml:"categories,omitempty"`
	From       string   `yaml:"from,omitempty"`
	To         string   `yaml:"to,omitempty"`
	Limit      int      `yaml:"limit,omitempty"`
	All        bool     `yaml:"all,omitempty"`
}

// New validates p and builds a Query. baseline is used as the category
// set when p names no category; pass nil to default to the wildcard.
func New(p Params, baseline []string) (types.Query, error) {
	q := types.Query{
		KeywordPhrases: cleanPhrases(p.Keywords),
		AuthorPhrases:  cleanPhrases(p.Authors),
	}
	q.KeywordTokens = KeywordTokens(q.KeywordPhrases)

	cats := p.Categories
	if len(cats) == 0 {
		cats = baseline
	}
	q.Categories = types.NewCategorySet(cats)

	dr, err := parseRange(p.From, p.To)
	if err != nil {
		return types.Query{}, err
	}
	q.DateRange = dr

	if p.Limit < 0 {
		return types.Query{}, &Error{Field: "limit", Reason: fmt.Sprintf("must not be negative, got %d", p.Limit)}
	}
	if !p.All {
		q.Limit = p.Limit
	}
	return q, nil
}

// RequireCriteria rejects a query that places no constraint on results.
// The API cannot be queried without one.
func RequireCriteria(q types.Query) error {
	if q.IsEmpty() {
		return &Error{Field: "query", Reason: "provide at least one keyword, author, category, or date"}
	}
	return nil
}

// KeywordTokens returns the sorted unique tokens of phrases.
func KeywordTokens(phrases []string) []string {
	seen := make(map[string]bool)
	var tokens []string
	for _, ph := range phrases {
		for _, tok := range Tokenize(ph) {
			if !seen[tok] {
				seen[tok] = true
				tokens = append(tokens, tok)
			}
		}
	}
	sort.Strings(tokens)
	return tokens
}

// cleanPhrases trims phrases and drops those with no word in them.
func cleanPhrases(phrases []string) []string {
	var out []string
	for _, ph := range phrases {
		ph = strings.Join(strings.Fields(ph), " ")
		if len(Tokenize(ph)) == 0 {
			continue
		}
		out = append(out, ph)
	}
	return out
}

func parseRange(from, to string) (*types.DateRange, error) {
	if from == "" && to == "" {
		return nil, nil
	}
	var dr types.DateRange
	if from != "" {
		t, err := time.Parse(dateFmt, from)
		if err != nil {
			return nil, &Error{Field: "from", Reason: fmt.Sprintf("%q is not YYYY-MM-DD", from)}
		}
		dr.Start = &t
	}
	if to != "" {
		t, err := time.Parse(dateFmt, to)
		if err != nil {
			return nil, &Error{Field: "to", Reason: fmt.Sprintf("%q is not YYYY-MM-DD", to)}
		}
		dr.End = &t
	}
	if dr.Start != nil && dr.End != nil && dr.Start.After(*dr.End) {
		return nil, &Error{Field: "date range", Reason: fmt.Sprintf("start %s is after end %s", from, to)}
	}
	return &dr, nil
}
