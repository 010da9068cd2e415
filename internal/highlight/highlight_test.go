// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func brackets(s string) string { return "[" + s + "]" }

func TestMarkWholeWordOnly(t *testing.T) {
	terms := NewTerms([]string{"ai"})

	got := terms.Mark("maintain the system")
	assert.Empty(t, got.Spans)

	got = terms.Mark("AI systems")
	assert.Equal(t, []Span{{Start: 0, End: 2}}, got.Spans)
	assert.Equal(t, []string{"AI"}, got.Marked())
}

func TestMarkCases(t *testing.T) {
	tests := []struct {
		name    string
		phrases []string
		text    string
		want    string
	}{
		{"case preserved", []string{"attention"}, "Attention Is All You Need", "[Attention] Is All You Need"},
		{"punctuation bounds", []string{"ai"}, "AI, maintain (AI).", "[AI], maintain ([AI])."},
		{"phrase as one span", []string{"graph neural"}, "Graph  Neural Networks", "[Graph  Neural] Networks"},
		{"phrase broken by punctuation", []string{"graph neural"}, "graph-neural nets", "[graph]-[neural] nets"},
		{"phrase tokens out of order", []string{"graph neural"}, "neural graph", "[neural] [graph]"},
		{"longest phrase wins", []string{"neural networks", "graph neural networks"}, "Graph Neural Networks rock", "[Graph Neural Networks] rock"},
		{"digits are word chars", []string{"gpt"}, "gpt4 and GPT 4", "gpt4 and [GPT] 4"},
		{"unicode letters", []string{"über"}, "Über überall", "[Über] überall"},
		{"no terms", nil, "unchanged text", "unchanged text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewTerms(tt.phrases).Mark(tt.text)
			assert.Equal(t, tt.want, got.Render(brackets))
		})
	}
}

func TestRenderLeavesTextIntact(t *testing.T) {
	text := "Transformers,  attention\tand\nATTENTION!"
	got := NewTerms([]string{"attention"}).Mark(text)

	strip := strings.NewReplacer("[", "", "]", "")
	assert.Equal(t, text, strip.Replace(got.Render(brackets)))
	assert.Equal(t, text, got.Render(nil))
	assert.Len(t, got.Spans, 2)
}

func TestEmpty(t *testing.T) {
	assert.True(t, NewTerms(nil).Empty())
	assert.True(t, NewTerms([]string{" ", "--"}).Empty())
	assert.False(t, NewTerms([]string{"x"}).Empty())
}

func TestMarkNames(t *testing.T) {
	got := MarkNames([]string{"Ashish Vaswani", "Noam Shazeer", "Niki Parmar"}, ", ", []string{"vaswani", " NIKI  parmar"})
	assert.Equal(t, "Ashish Vaswani, Noam Shazeer, Niki Parmar", got.Source)
	assert.Equal(t, "[Ashish Vaswani], Noam Shazeer, [Niki Parmar]", got.Render(brackets))

	got = MarkNames([]string{"Kaiming He"}, ", ", nil)
	assert.Empty(t, got.Spans)
	assert.Equal(t, "Kaiming He", got.Source)
}
