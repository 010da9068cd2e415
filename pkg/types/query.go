// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strings"
	"time"
)

// Wildcard is the category code that matches every category.
const Wildcard = "*"

// CategorySet is the set of category codes a query accepts. A code ending
// in ".*" accepts every category of that archive (e.g. "cs.*").
type CategorySet struct {
	// Any is true when the set is the wildcard.
	Any bool `json:"any" yaml:"any"`

	// Codes holds the explicit codes as the user spelled them; matching
	// ignores case.
	Codes []string `json:"codes,omitempty" yaml:"codes,omitempty"`
}

// AllCategories returns the wildcard set.
func AllCategories() CategorySet {
	return CategorySet{Any: true}
}

// NewCategorySet builds a set from user codes. An empty list, "*", or
// "all" yields the wildcard.
func NewCategorySet(codes []string) CategorySet {
	var out []string
	for _, c := range codes {
		c = strings.TrimSpace(c)
		switch strings.ToLower(c) {
		case "":
			continue
		case Wildcard, "all":
			return AllCategories()
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return AllCategories()
	}
	return CategorySet{Codes: CategorySetOf(out)}
}

// Matches reports whether code is accepted by the set.
func (s CategorySet) Matches(code string) bool {
	if s.Any {
		return true
	}
	code = strings.ToLower(code)
	for _, c := range s.Codes {
		c = strings.ToLower(c)
		if c == code {
			return true
		}
		if prefix, ok := strings.CutSuffix(c, "*"); ok && strings.HasPrefix(code, prefix) {
			return true
		}
	}
	return false
}

// DateRange is an inclusive, day-granular range. Either end may be nil.
type DateRange struct {
	Start *time.Time `json:"start,omitempty" yaml:"start,omitempty"`
	End   *time.Time `json:"end,omitempty" yaml:"end,omitempty"`
}

// Contains reports whether the calendar day of t lies within the range.
func (r DateRange) Contains(t time.Time) bool {
	day := truncateDay(t)
	if r.Start != nil && day.Before(truncateDay(*r.Start)) {
		return false
	}
	if r.End != nil && day.After(truncateDay(*r.End)) {
		return false
	}
	return true
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Query is the user's normalized search intent. Build it with query.New so
// KeywordTokens always agrees with KeywordPhrases.
type Query struct {
	// KeywordPhrases are the user's keyword phrases, empty ones dropped.
	KeywordPhrases []string `json:"keyword_phrases,omitempty" yaml:"keyword_phrases,omitempty"`

	// KeywordTokens are the sorted unique lower-cased words of KeywordPhrases.
	KeywordTokens []string `json:"keyword_tokens,omitempty" yaml:"keyword_tokens,omitempty"`

	// AuthorPhrases are matched as substrings of normalized author names.
	AuthorPhrases []string `json:"author_phrases,omitempty" yaml:"author_phrases,omitempty"`

	// Categories restricts results to these category codes.
	Categories CategorySet `json:"categories" yaml:"categories"`

	// DateRange restricts results by submission date when non-nil.
	DateRange *DateRange `json:"date_range,omitempty" yaml:"date_range,omitempty"`

	// Limit caps the number of results; zero means unlimited.
	Limit int `json:"limit" yaml:"limit"`
}

// HasKeywords reports whether relevance scoring applies.
func (q Query) HasKeywords() bool {
	return len(q.KeywordTokens) > 0
}

// IsEmpty reports whether the query places no constraint at all on results.
func (q Query) IsEmpty() bool {
	return len(q.KeywordPhrases) == 0 && len(q.AuthorPhrases) == 0 &&
		q.Categories.Any && q.DateRange == nil
}
