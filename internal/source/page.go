// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/arxiv-sift/pkg/types"
)

// DefaultPageURL is the daily listing of new computer science submissions.
const DefaultPageURL = "https://arxiv.org/list/cs/new"

// PageLayout names the structural markers of the listing page. It is
// configuration: when arXiv changes its markup only the layout changes.
type PageLayout struct {
	// ListSelector matches the listing container; a page without one is
	// not a listing.
	ListSelector string `json:"list_selector" yaml:"list_selector"`
	// HeaderSelector matches section headers inside the listing.
	HeaderSelector string `json:"header_selector" yaml:"header_selector"`
	// EntrySelector matches the element that opens one paper block.
	EntrySelector string `json:"entry_selector" yaml:"entry_selector"`
	// DetailSelector matches the sibling following an entry that holds
	// the paper metadata.
	DetailSelector string `json:"detail_selector" yaml:"detail_selector"`

	IDSelector       string `json:"id_selector" yaml:"id_selector"`
	TitleSelector    string `json:"title_selector" yaml:"title_selector"`
	AuthorsSelector  string `json:"authors_selector" yaml:"authors_selector"`
	SubjectsSelector string `json:"subjects_selector" yaml:"subjects_selector"`
	AbstractSelector string `json:"abstract_selector" yaml:"abstract_selector"`

	// IncludeSections are header substrings whose entries are collected.
	// When empty every entry is collected.
	IncludeSections []string `json:"include_sections" yaml:"include_sections"`
	// StopSections are header substrings that end parsing.
	StopSections []string `json:"stop_sections" yaml:"stop_sections"`
}

// DefaultPageLayout matches the arxiv.org/list/<archive>/new markup.
var DefaultPageLayout = PageLayout{
	ListSelector:     "dl#articles",
	HeaderSelector:   "dl#articles > h3",
	EntrySelector:    "dl#articles > dt",
	DetailSelector:   "dd",
	IDSelector:       "a[title='Abstract']",
	TitleSelector:    ".list-title",
	AuthorsSelector:  ".list-authors",
	SubjectsSelector: ".list-subjects",
	AbstractSelector: "p.mathjax",
	IncludeSections:  []string{"New submissions", "Cross submissions", "Cross-lists"},
	StopSections:     []string{"Replacement"},
}

// categoryCode matches a parenthesised code in a subjects line, e.g.
// "Machine Learning (cs.LG)" or "High Energy Physics - Theory (hep-th)".
var categoryCode = regexp.MustCompile(`\(([a-z][a-z\-]*(?:\.[A-Za-z\-]+)?)\)`)

// PageAdapter parses the live listing page.
type PageAdapter struct {
	Layout PageLayout
}

// Kind returns types.SourcePage.
func (PageAdapter) Kind() types.SourceKind { return types.SourcePage }

// Parse walks section headers and entry blocks in document order. Blocks
// that do not yield an identifier and a title are skipped and counted.
func (a PageAdapter) Parse(raw io.Reader, limit int) (Batch, error) {
	l := a.Layout
	if l.EntrySelector == "" {
		l = DefaultPageLayout
	}

	doc, err := goquery.NewDocumentFromReader(raw)
	if err != nil {
		return Batch{}, &RetrievalError{Source: a.Kind(), Reason: "parsing listing markup", Err: err}
	}
	if doc.Find(l.ListSelector).Length() == 0 {
		return Batch{}, &RetrievalError{Source: a.Kind(), Reason: "page has no article listing (" + l.ListSelector + ")"}
	}

	b := newBatchBuilder(a.Kind(), limit)
	collecting := len(l.IncludeSections) == 0

	doc.Find(l.HeaderSelector + ", " + l.EntrySelector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if s.Is(l.HeaderSelector) {
			header := s.Text()
			if containsAny(header, l.StopSections) {
				return false
			}
			collecting = len(l.IncludeSections) == 0 || containsAny(header, l.IncludeSections)
			return true
		}
		if !collecting {
			return true
		}
		if b.full() {
			return false
		}

		dd := s.NextFiltered(l.DetailSelector)
		if dd.Length() == 0 {
			b.skip()
			return true
		}
		b.add(paperFromBlock(l, s, dd))
		return true
	})

	return b.batch, nil
}

func paperFromBlock(l PageLayout, dt, dd *goquery.Selection) types.Paper {
	link := dt.Find(l.IDSelector).First()
	id := normalizeID(link.Text())
	if id == "" {
		if href, ok := link.Attr("href"); ok {
			id = normalizeID(href)
		}
	}

	p := types.Paper{
		Identifier: id,
		Title:      stripLabel(dd.Find(l.TitleSelector).First().Text(), "Title:"),
		Abstract:   oneLine(dd.Find(l.AbstractSelector).First().Text()),
	}

	authors := dd.Find(l.AuthorsSelector).First()
	authors.Find("a").Each(func(_ int, a *goquery.Selection) {
		if name := oneLine(a.Text()); name != "" {
			p.Authors = append(p.Authors, name)
		}
	})
	if len(p.Authors) == 0 {
		p.Authors = splitAuthors(stripLabel(authors.Text(), "Authors:"))
	}

	for _, m := range categoryCode.FindAllStringSubmatch(dd.Find(l.SubjectsSelector).First().Text(), -1) {
		p.Categories = append(p.Categories, m[1])
	}
	return p
}

// stripLabel collapses whitespace and removes a leading descriptor such as
// "Title:".
func stripLabel(s, label string) string {
	return strings.TrimSpace(strings.TrimPrefix(oneLine(s), label))
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// PageFetcher downloads the live listing page.
type PageFetcher struct {
	Client *http.Client
	Config types.PageConfig
}

// Fetch performs one GET of the listing URL. The page is not queryable, so
// q is applied afterwards by the filter stage.
func (f *PageFetcher) Fetch(ctx context.Context, _ types.Query) (io.ReadCloser, error) {
	target := f.Config.URL
	if target == "" {
		target = DefaultPageURL
	}
	return httpGet(ctx, f.Client, types.SourcePage, target, f.Config.HTTPConfig)
}
