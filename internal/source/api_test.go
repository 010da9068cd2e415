// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/arxiv-sift/internal/query"
	"github.com/pdiddy/arxiv-sift/pkg/types"
)

// --- APIAdapter ---

func TestAPIAdapterParse(t *testing.T) {
	batch, err := APIAdapter{}.Parse(strings.NewReader(atomFeed), 0)
	require.NoError(t, err)

	require.Len(t, batch.Papers, 3)
	assert.Equal(t, 1, batch.Skipped, "untitled entry is skipped")

	p := batch.Papers[0]
	assert.Equal(t, "1706.03762", p.Identifier)
	assert.Equal(t, "Attention Is All You Need", p.Title)
	assert.Equal(t, "The dominant sequence transduction models are based on complex recurrent or convolutional neural networks.", p.Abstract)
	assert.Equal(t, []string{"Ashish Vaswani", "Noam Shazeer"}, p.Authors)
	assert.Equal(t, []string{"cs.CL", "cs.LG"}, p.Categories)
	assert.Equal(t, "http://arxiv.org/abs/1706.03762v7", p.URL)
	assert.Equal(t, types.SourceAPI, p.Source)
	require.NotNil(t, p.SubmittedDate)
	assert.Equal(t, time.Date(2017, 6, 12, 17, 57, 34, 0, time.UTC), *p.SubmittedDate)

	for i, p := range batch.Papers {
		assert.Equal(t, i, p.SourceOrderRank)
	}
	assert.Equal(t, "https://arxiv.org/abs/1901.00596", batch.Papers[2].URL, "missing link falls back to abs URL")
}

func TestAPIAdapterStopsAtLimit(t *testing.T) {
	batch, err := APIAdapter{}.Parse(strings.NewReader(atomFeed), 2)
	require.NoError(t, err)
	require.Len(t, batch.Papers, 2)
	assert.Equal(t, "1512.03385", batch.Papers[1].Identifier)
}

func TestAPIAdapterErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"api error entry", atomErrorFeed, "incorrect id format for 1234"},
		{"html instead of feed", "<html><body>Service Unavailable</body></html>", "parsing Atom feed"},
		{"empty body", "", "parsing Atom feed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := APIAdapter{}.Parse(strings.NewReader(tt.body), 0)
			require.Error(t, err)
			assert.True(t, IsRetrievalError(err))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

// --- BuildAPIQuery ---

func TestBuildAPIQuery(t *testing.T) {
	tests := []struct {
		name string
		p    query.Params
		want string
	}{
		{
			name: "all clauses",
			p: query.Params{
				Keywords:   []string{"attention", "graph neural"},
				Authors:    []string{"Vaswani"},
				Categories: []string{"cs.CL"},
				From:       "2024-01-01",
				To:         "2024-01-31",
			},
			want: `(cat:cs.CL) AND (ti:attention OR abs:attention) AND (ti:"graph neural" OR abs:"graph neural") AND au:"Vaswani" AND submittedDate:[202401010000 TO 202401312359]`,
		},
		{
			name: "categories are OR'd",
			p:    query.Params{Categories: []string{"cs.LG", "cs.CV"}},
			want: `(cat:cs.CV OR cat:cs.LG)`,
		},
		{
			name: "open-ended date",
			p:    query.Params{From: "2024-03-01"},
			want: `submittedDate:[202403010000 TO *]`,
		},
		{
			name: "wildcard categories add no clause",
			p:    query.Params{Keywords: []string{"rag"}, Categories: []string{"all"}},
			want: `(ti:rag OR abs:rag)`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := query.New(tt.p, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, BuildAPIQuery(q))
		})
	}
}

// --- APIFetcher ---

func TestAPIFetcherRequest(t *testing.T) {
	var got *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/atom+xml")
		io.WriteString(w, atomFeed)
	}))
	defer ts.Close()

	q, err := query.New(query.Params{Keywords: []string{"attention"}, Limit: 5}, nil)
	require.NoError(t, err)

	f := &APIFetcher{Client: ts.Client(), Config: types.APIConfig{
		HTTPConfig: types.HTTPConfig{UserAgent: "arxiv-sift/test"},
		URL:        ts.URL + "/api/query",
	}}
	body, err := f.Fetch(context.Background(), q)
	require.NoError(t, err)
	defer body.Close()

	require.NotNil(t, got)
	assert.Equal(t, "/api/query", got.URL.Path)
	assert.Equal(t, "(ti:attention OR abs:attention)", got.URL.Query().Get("search_query"))
	assert.Equal(t, "relevance", got.URL.Query().Get("sortBy"))
	assert.Equal(t, "5", got.URL.Query().Get("max_results"))
	assert.Equal(t, "arxiv-sift/test", got.Header.Get("User-Agent"))

	batch, err := APIAdapter{}.Parse(body, 0)
	require.NoError(t, err)
	assert.Len(t, batch.Papers, 3)
}

func TestAPIFetcherSortsByDateWithoutKeywords(t *testing.T) {
	var sortBy, maxResults string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sortBy = r.URL.Query().Get("sortBy")
		maxResults = r.URL.Query().Get("max_results")
		io.WriteString(w, atomFeed)
	}))
	defer ts.Close()

	q, err := query.New(query.Params{Authors: []string{"He"}, All: true}, nil)
	require.NoError(t, err)

	f := &APIFetcher{Client: ts.Client(), Config: types.APIConfig{URL: ts.URL}}
	body, err := f.Fetch(context.Background(), q)
	require.NoError(t, err)
	body.Close()

	assert.Equal(t, "submittedDate", sortBy)
	assert.Equal(t, "2000", maxResults)
}

func TestAPIFetcherHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	f := &APIFetcher{Client: ts.Client(), Config: types.APIConfig{URL: ts.URL}}
	_, err := f.Fetch(context.Background(), types.Query{Categories: types.AllCategories()})
	require.Error(t, err)
	assert.True(t, IsRetrievalError(err))
	assert.Contains(t, err.Error(), "HTTP 503")
}

func TestAPIFetcherUnreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	f := &APIFetcher{Client: &http.Client{Timeout: time.Second}, Config: types.APIConfig{URL: url}}
	_, err := f.Fetch(context.Background(), types.Query{Categories: types.AllCategories()})
	require.Error(t, err)
	assert.True(t, IsRetrievalError(err))
}

// --- helpers ---

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"http://arxiv.org/abs/2301.07041v1", "2301.07041"},
		{"arXiv:2401.00001", "2401.00001"},
		{"arXiv:2401.00001 [cs.CV]", "2401.00001"},
		{"/abs/cs/0101001v2", "cs/0101001"},
		{"2401.00001", "2401.00001"},
		{"  ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeID(tt.in), tt.in)
	}
}

func TestSplitAuthors(t *testing.T) {
	assert.Equal(t, []string{"A. Smith", "B. Jones", "C. White"}, splitAuthors("A. Smith, B. Jones and C. White"))
	assert.Equal(t, []string{"A. Smith", "B. Jones", "C. White"}, splitAuthors("A. Smith,\n  B. Jones, and C. White"))
	assert.Equal(t, []string{}, splitAuthors("   "))
}
