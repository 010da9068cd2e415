// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render prints pipeline output as a styled terminal listing or as
// JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/pdiddy/arxiv-sift/internal/highlight"
	"github.com/pdiddy/arxiv-sift/internal/pipeline"
)

// Header describes the run above the listing.
type Header struct {
	// Mode is a short label such as "Daily listing".
	Mode string
	// Terms are the keyword and author phrases being highlighted.
	Terms []string
}

// Options controls terminal rendering.
type Options struct {
	Theme Theme
	// Color enables styled output even when w is not a terminal. When
	// false, output is plain text.
	Color bool
	// Width wraps abstracts at this many columns; zero disables wrapping.
	Width int
}

// Terminal writes a listing styled with lipgloss.
type Terminal struct {
	w     io.Writer
	width int

	mode     lipgloss.Style
	terms    lipgloss.Style
	title    lipgloss.Style
	author   lipgloss.Style
	subjects lipgloss.Style
	link     lipgloss.Style
	abstract lipgloss.Style
	score    lipgloss.Style
	mark     lipgloss.Style
	rule     lipgloss.Style
	note     lipgloss.Style
}

// NewTerminal builds a renderer for w.
func NewTerminal(w io.Writer, opts Options) *Terminal {
	r := lipgloss.NewRenderer(w)
	switch {
	case !opts.Color:
		r.SetColorProfile(termenv.Ascii)
	case r.ColorProfile() == termenv.Ascii:
		r.SetColorProfile(termenv.ANSI256)
	}
	th := opts.Theme

	return &Terminal{
		w:        w,
		mode:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		terms:    r.NewStyle().Foreground(lipgloss.Color("11")),
		title:    r.NewStyle().Bold(true).Foreground(th.Title),
		author:   r.NewStyle().Foreground(th.Author),
		subjects: r.NewStyle().Italic(true).Foreground(th.Subjects),
		link:     r.NewStyle().Foreground(th.Link),
		abstract: r.NewStyle().Foreground(th.Abstract),
		score:    r.NewStyle().Faint(true),
		mark:     r.NewStyle().Bold(true).Underline(true),
		rule:     r.NewStyle().Faint(true),
		note:     r.NewStyle().Foreground(lipgloss.Color("3")),
		width:    opts.Width,
	}
}

// Render writes the header, one block per result, and the skip count.
func (t *Terminal) Render(h Header, out pipeline.Output) error {
	var b strings.Builder

	if h.Mode != "" {
		b.WriteString(t.mode.Render("Mode: "+h.Mode) + "\n")
	}
	if len(h.Terms) > 0 {
		b.WriteString(t.terms.Render("Highlighting for: "+strings.Join(h.Terms, ", ")) + "\n")
	}

	if len(out.Results) == 0 {
		b.WriteString(t.note.Render("No matching papers found.") + "\n")
	}
	for _, r := range out.Results {
		b.WriteString(t.rule.Render(strings.Repeat("─", 40)) + "\n")
		b.WriteString(t.styled(t.title, r.Title) + "\n")
		if r.Authors.Source != "" {
			b.WriteString(t.styled(t.author, r.Authors) + "\n")
		}
		b.WriteString(t.link.Render(r.Paper.URL) + "\n")
		if len(r.Paper.Categories) > 0 {
			b.WriteString(t.subjects.Render(strings.Join(r.Paper.Categories, ", ")) + "\n")
		}
		if r.Score != nil {
			b.WriteString(t.score.Render(fmt.Sprintf("score: %.3f", *r.Score)) + "\n")
		}
		if r.Abstract.Source != "" {
			abs := t.styled(t.abstract, r.Abstract)
			if t.width > 0 {
				abs = lipgloss.NewStyle().Width(t.width).Render(abs)
			}
			b.WriteString(abs + "\n")
		}
	}

	if out.Skipped > 0 {
		b.WriteString(t.note.Render(fmt.Sprintf("skipped %d unparseable %s entries", out.Skipped, out.Source)) + "\n")
	}

	_, err := io.WriteString(t.w, b.String())
	return err
}

// styled renders text in base, with highlighted spans additionally bold and
// underlined. Unmarked runs are styled separately so the highlight reset
// does not drop the base color.
func (t *Terminal) styled(base lipgloss.Style, text highlight.Text) string {
	if len(text.Spans) == 0 {
		return base.Render(text.Source)
	}
	marked := t.mark.Inherit(base)
	var b strings.Builder
	last := 0
	for _, s := range text.Spans {
		if s.Start > last {
			b.WriteString(base.Render(text.Source[last:s.Start]))
		}
		b.WriteString(marked.Render(text.Source[s.Start:s.End]))
		last = s.End
	}
	if last < len(text.Source) {
		b.WriteString(base.Render(text.Source[last:]))
	}
	return b.String()
}

// JSON writes out as indented JSON.
func JSON(w io.Writer, out pipeline.Output) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	return nil
}
