// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source turns raw retrieval payloads into normalized Paper records.
// Each source kind pairs a Fetcher, which performs the single blocking read,
// with an Adapter, which parses that payload (Strategy pattern).
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/arxiv-sift/pkg/types"
)

// Adapter parses one raw payload into Paper records in the source's native
// order. When limit is positive, parsing stops once limit records have been
// emitted.
type Adapter interface {
	Kind() types.SourceKind
	Parse(raw io.Reader, limit int) (Batch, error)
}

// Fetcher retrieves the raw payload for a query. The caller closes it.
type Fetcher interface {
	Fetch(ctx context.Context, q types.Query) (io.ReadCloser, error)
}

// Source couples a Fetcher with the Adapter that understands its payload.
type Source struct {
	Fetcher Fetcher
	Adapter Adapter
	// Limit caps how many records the adapter parses; zero means all.
	Limit int
}

// Batch is the output of one adapter run.
type Batch struct {
	Papers []types.Paper
	// Skipped counts entries that could not yield a valid record.
	Skipped int
}

// RetrievalError reports a source that could not be reached or returned an
// unusable payload. It is never converted into an empty result.
type RetrievalError struct {
	Source types.SourceKind
	Reason string
	Err    error
}

func (e *RetrievalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("retrieving %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("retrieving %s: %s", e.Source, e.Reason)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// IsRetrievalError reports whether err is, or wraps, a RetrievalError.
func IsRetrievalError(err error) bool {
	var re *RetrievalError
	return errors.As(err, &re)
}

// batchBuilder assigns source order ranks and enforces identifier
// uniqueness and the retrieval cap while an adapter emits records.
type batchBuilder struct {
	kind  types.SourceKind
	limit int
	seen  map[string]bool
	batch Batch
}

func newBatchBuilder(kind types.SourceKind, limit int) *batchBuilder {
	return &batchBuilder{kind: kind, limit: limit, seen: make(map[string]bool)}
}

// add validates p and appends it. Records without an identifier or title,
// and repeated identifiers, are counted as skips.
func (b *batchBuilder) add(p types.Paper) {
	p.Identifier = strings.TrimSpace(p.Identifier)
	p.Title = oneLine(p.Title)
	if p.Identifier == "" || p.Title == "" || b.seen[p.Identifier] {
		b.batch.Skipped++
		return
	}
	b.seen[p.Identifier] = true
	p.Abstract = oneLine(p.Abstract)
	p.Categories = types.CategorySetOf(p.Categories)
	if p.Authors == nil {
		p.Authors = []string{}
	}
	if p.URL == "" {
		p.URL = types.AbsURL(p.Identifier)
	}
	p.Source = b.kind
	p.SourceOrderRank = len(b.batch.Papers)
	b.batch.Papers = append(b.batch.Papers, p)
}

// skip records an entry that was rejected before a record could be built.
func (b *batchBuilder) skip() { b.batch.Skipped++ }

// full reports whether the retrieval cap has been reached.
func (b *batchBuilder) full() bool {
	return b.limit > 0 && len(b.batch.Papers) >= b.limit
}

// oneLine collapses all whitespace runs, including line breaks, to a
// single space.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// splitAuthors splits an author line on commas and a final "and".
func splitAuthors(line string) []string {
	line = oneLine(line)
	if line == "" {
		return []string{}
	}
	line = strings.ReplaceAll(line, ", and ", ", ")
	line = strings.ReplaceAll(line, " and ", ", ")
	var authors []string
	for _, a := range strings.Split(line, ",") {
		if a = strings.TrimSpace(a); a != "" {
			authors = append(authors, a)
		}
	}
	return authors
}

// normalizeID strips an "arXiv:" prefix, an abstract URL, and a version
// suffix from an identifier (e.g. "http://arxiv.org/abs/2301.07041v2"
// becomes "2301.07041").
func normalizeID(raw string) string {
	id := strings.TrimSpace(raw)
	if idx := strings.Index(id, "/abs/"); idx >= 0 {
		id = id[idx+len("/abs/"):]
	}
	id = strings.TrimPrefix(id, "arXiv:")
	if f := strings.Fields(id); len(f) > 0 {
		id = f[0]
	} else {
		return ""
	}
	if vIdx := strings.LastIndex(id, "v"); vIdx > 0 {
		if _, err := strconv.Atoi(id[vIdx+1:]); err == nil {
			id = id[:vIdx]
		}
	}
	return id
}
