// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package highlight locates whole-word keyword matches in display text.
// It only reports byte spans; styling is left to the renderer, and the
// source text is never rewritten.
package highlight

import (
	"sort"
	"strings"
	"unicode"

	"github.com/pdiddy/arxiv-sift/internal/query"
)

// Span is a half-open byte range [Start, End) of Text.Source.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Text is a display string with the spans to emphasise, in order and
// non-overlapping.
type Text struct {
	Source string `json:"text"`
	Spans  []Span `json:"spans,omitempty"`
}

// Render wraps every span with fn and copies everything else verbatim.
// A nil fn returns Source unchanged.
func (t Text) Render(fn func(string) string) string {
	if fn == nil || len(t.Spans) == 0 {
		return t.Source
	}
	var b strings.Builder
	b.Grow(len(t.Source))
	last := 0
	for _, s := range t.Spans {
		b.WriteString(t.Source[last:s.Start])
		b.WriteString(fn(t.Source[s.Start:s.End]))
		last = s.End
	}
	b.WriteString(t.Source[last:])
	return b.String()
}

// Marked returns the text of every span.
func (t Text) Marked() []string {
	out := make([]string, len(t.Spans))
	for i, s := range t.Spans {
		out[i] = t.Source[s.Start:s.End]
	}
	return out
}

// Terms is a compiled set of keyword phrases.
type Terms struct {
	// phrases holds multi-word phrases, longest first.
	phrases [][]string
	tokens  map[string]bool
}

// NewTerms compiles phrases using the query word-splitting rule.
func NewTerms(phrases []string) Terms {
	t := Terms{tokens: make(map[string]bool)}
	for _, ph := range phrases {
		toks := query.Tokenize(ph)
		for _, tok := range toks {
			t.tokens[tok] = true
		}
		if len(toks) > 1 {
			t.phrases = append(t.phrases, toks)
		}
	}
	sort.SliceStable(t.phrases, func(i, j int) bool {
		return len(t.phrases[i]) > len(t.phrases[j])
	})
	return t
}

// Empty reports whether there is nothing to mark.
func (t Terms) Empty() bool { return len(t.tokens) == 0 }

// Mark finds the spans of text to highlight. A multi-word phrase whose words
// appear in order separated only by whitespace becomes one span; any other
// word equal to a keyword token is marked on its own. Matches inside larger
// words are never marked.
func (t Terms) Mark(text string) Text {
	out := Text{Source: text}
	if t.Empty() {
		return out
	}
	words := query.Words(text)
	for i := 0; i < len(words); {
		if n := t.phraseAt(text, words, i); n > 0 {
			out.Spans = append(out.Spans, Span{Start: words[i].Start, End: words[i+n-1].End})
			i += n
			continue
		}
		if t.tokens[words[i].Lower] {
			out.Spans = append(out.Spans, Span{Start: words[i].Start, End: words[i].End})
		}
		i++
	}
	return out
}

// phraseAt returns the word count of the longest phrase starting at
// words[i], or zero.
func (t Terms) phraseAt(text string, words []query.Word, i int) int {
next:
	for _, ph := range t.phrases {
		if i+len(ph) > len(words) {
			continue
		}
		for j, tok := range ph {
			w := words[i+j]
			if w.Lower != tok {
				continue next
			}
			if j > 0 && !isSpace(text[words[i+j-1].End:w.Start]) {
				continue next
			}
		}
		return len(ph)
	}
	return 0
}

func isSpace(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// MarkNames joins names with sep and marks every whole name containing one
// of phrases, compared case-insensitively with whitespace collapsed.
func MarkNames(names []string, sep string, phrases []string) Text {
	var norm []string
	for _, ph := range phrases {
		if n := query.NormalizeName(ph); n != "" {
			norm = append(norm, n)
		}
	}

	var (
		b   strings.Builder
		out Text
	)
	for i, name := range names {
		if i > 0 {
			b.WriteString(sep)
		}
		start := b.Len()
		b.WriteString(name)
		n := query.NormalizeName(name)
		for _, ph := range norm {
			if strings.Contains(n, ph) {
				out.Spans = append(out.Spans, Span{Start: start, End: b.Len()})
				break
			}
		}
	}
	out.Source = b.String()
	return out
}
