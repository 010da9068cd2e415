// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rank scores papers by keyword frequency and orders them.
package rank

import (
	"sort"

	"github.com/pdiddy/arxiv-sift/internal/query"
	"github.com/pdiddy/arxiv-sift/pkg/types"
)

// Field weights. A keyword in the title counts twice as much as one in the
// abstract.
const (
	TitleWeight    = 2.0
	AbstractWeight = 1.0
)

// Scores maps a paper identifier to its relevance score for one run.
type Scores map[string]float64

// Lookup returns the score for id and whether one was computed.
func (s Scores) Lookup(id string) (float64, bool) {
	v, ok := s[id]
	return v, ok
}

// Score computes the relevance of every paper against tokens. It returns an
// empty map when tokens is empty; scoring only applies to keyword queries.
func Score(papers []types.Paper, tokens []string) Scores {
	scores := make(Scores, len(papers))
	if len(tokens) == 0 {
		return scores
	}
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	for _, p := range papers {
		scores[p.Identifier] = PaperScore(p, set)
	}
	return scores
}

// PaperScore is TitleWeight·frequency(title) + AbstractWeight·frequency(abstract).
func PaperScore(p types.Paper, tokens map[string]bool) float64 {
	return TitleWeight*frequency(p.Title, tokens) + AbstractWeight*frequency(p.Abstract, tokens)
}

// frequency is the share of the words of text that are keyword tokens,
// or zero for text with no words.
func frequency(text string, tokens map[string]bool) float64 {
	words := query.Tokenize(text)
	if len(words) == 0 {
		return 0
	}
	hits := 0
	for _, w := range words {
		if tokens[w] {
			hits++
		}
	}
	return float64(hits) / float64(len(words))
}

// Sort returns papers ordered by descending score, ties broken by source
// order. With no scores the source order is kept. The input is not modified.
func Sort(papers []types.Paper, scores Scores) []types.Paper {
	out := make([]types.Paper, len(papers))
	copy(out, papers)
	sort.SliceStable(out, func(i, j int) bool {
		if len(scores) > 0 {
			si, sj := scores[out[i].Identifier], scores[out[j].Identifier]
			if si != sj {
				return si > sj
			}
		}
		return out[i].SourceOrderRank < out[j].SourceOrderRank
	})
	return out
}
