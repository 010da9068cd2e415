// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/pdiddy/arxiv-sift/internal/httputil"
	"github.com/pdiddy/arxiv-sift/pkg/types"
)

// DefaultAPIURL is the arXiv query endpoint.
const DefaultAPIURL = "https://export.arxiv.org/api/query"

// AllResultsCap is the max_results requested when the user asks for every
// matching result.
const AllResultsCap = 2000

// apiErrorMarker appears in the <id> of the single entry arXiv returns
// instead of results when it rejects a query.
const apiErrorMarker = "/api/errors"

// APIAdapter parses the Atom feed returned by the arXiv query API.
type APIAdapter struct{}

// Kind returns types.SourceAPI.
func (APIAdapter) Kind() types.SourceKind { return types.SourceAPI }

// Parse decodes an Atom feed. An unparsable feed or an arXiv error entry is
// a RetrievalError; the API signals failures in-band with HTTP 200.
func (a APIAdapter) Parse(raw io.Reader, limit int) (Batch, error) {
	feed, err := gofeed.NewParser().Parse(raw)
	if err != nil {
		return Batch{}, &RetrievalError{Source: a.Kind(), Reason: "parsing Atom feed", Err: err}
	}

	b := newBatchBuilder(a.Kind(), limit)
	for _, item := range feed.Items {
		if item == nil {
			b.skip()
			continue
		}
		if strings.Contains(item.GUID, apiErrorMarker) {
			return Batch{}, &RetrievalError{Source: a.Kind(), Reason: "arXiv API error: " + oneLine(item.Description)}
		}
		if b.full() {
			break
		}
		b.add(paperFromItem(item))
	}
	return b.batch, nil
}

func paperFromItem(item *gofeed.Item) types.Paper {
	p := types.Paper{
		Identifier: normalizeID(item.GUID),
		Title:      item.Title,
		Abstract:   item.Description,
		Categories: item.Categories,
		URL:        item.Link,
	}
	for _, person := range item.Authors {
		if person != nil && strings.TrimSpace(person.Name) != "" {
			p.Authors = append(p.Authors, oneLine(person.Name))
		}
	}
	if item.PublishedParsed != nil {
		t := item.PublishedParsed.UTC()
		p.SubmittedDate = &t
	}
	return p
}

// APIFetcher queries the arXiv API for a Query.
type APIFetcher struct {
	Client *http.Client
	Config types.APIConfig
}

// Fetch builds the search_query from q and performs one GET.
func (f *APIFetcher) Fetch(ctx context.Context, q types.Query) (io.ReadCloser, error) {
	base := f.Config.URL
	if base == "" {
		base = DefaultAPIURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, &RetrievalError{Source: types.SourceAPI, Reason: "invalid API URL", Err: err}
	}

	maxResults := q.Limit
	if maxResults <= 0 {
		maxResults = AllResultsCap
	}
	sortBy := "submittedDate"
	if q.HasKeywords() {
		sortBy = "relevance"
	}

	params := url.Values{}
	params.Set("search_query", BuildAPIQuery(q))
	params.Set("start", "0")
	params.Set("max_results", strconv.Itoa(maxResults))
	params.Set("sortBy", sortBy)
	params.Set("sortOrder", "descending")
	u.RawQuery = params.Encode()

	return httpGet(ctx, f.Client, types.SourceAPI, u.String(), f.Config.HTTPConfig)
}

// BuildAPIQuery constructs the search_query expression: categories are
// OR'd, every other clause is AND'd.
func BuildAPIQuery(q types.Query) string {
	var parts []string

	if !q.Categories.Any && len(q.Categories.Codes) > 0 {
		cats := make([]string, len(q.Categories.Codes))
		for i, c := range q.Categories.Codes {
			cats[i] = "cat:" + c
		}
		parts = append(parts, "("+strings.Join(cats, " OR ")+")")
	}
	for _, kw := range q.KeywordPhrases {
		term := kw
		if strings.Contains(kw, " ") {
			term = strconv.Quote(kw)
		}
		parts = append(parts, fmt.Sprintf("(ti:%s OR abs:%s)", term, term))
	}
	for _, au := range q.AuthorPhrases {
		parts = append(parts, "au:"+strconv.Quote(au))
	}
	if dr := q.DateRange; dr != nil {
		start, end := "*", "*"
		if dr.Start != nil {
			start = dr.Start.Format("20060102") + "0000"
		}
		if dr.End != nil {
			end = dr.End.Format("20060102") + "2359"
		}
		parts = append(parts, fmt.Sprintf("submittedDate:[%s TO %s]", start, end))
	}

	return strings.Join(parts, " AND ")
}

// httpGet performs one bounded GET and returns the body of a 200 response.
func httpGet(ctx context.Context, client *http.Client, kind types.SourceKind, target string, cfg types.HTTPConfig) (io.ReadCloser, error) {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &RetrievalError{Source: kind, Reason: "creating request", Err: err}
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries)
	if err != nil {
		return nil, &RetrievalError{Source: kind, Reason: "request to " + target, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, &RetrievalError{Source: kind, Reason: fmt.Sprintf("%s returned HTTP %d", target, resp.StatusCode)}
	}
	return resp.Body, nil
}
