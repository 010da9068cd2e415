// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/pdiddy/arxiv-sift/pkg/types"
)

// DigestLayout names the delimiters of exported arXiv email digests.
type DigestLayout struct {
	// Separator is the line the exporter places between concatenated
	// digests.
	Separator string `json:"separator" yaml:"separator"`
	// RuleMinLength is the minimum run of dashes forming an entry rule.
	RuleMinLength int `json:"rule_min_length" yaml:"rule_min_length"`
	// ReplacementsMarker starts the section of replaced papers, which is
	// not parsed.
	ReplacementsMarker string `json:"replacements_marker" yaml:"replacements_marker"`
}

// DefaultDigestLayout matches arXiv's plain-text mailings.
var DefaultDigestLayout = DigestLayout{
	Separator:          "%%%%%% END OF DIGEST %%%%%%",
	RuleMinLength:      20,
	ReplacementsMarker: "%%--%%--%%--%%--",
}

// digestKeys are the header fields of one digest entry. Lines beginning
// with anything else continue the previous field.
var digestKeys = map[string]bool{
	"arXiv": true, "Date": true, "Title": true, "Authors": true,
	"Categories": true, "Comments": true, "Journal-ref": true, "DOI": true,
	"MSC-class": true, "ACM-class": true, "Report-no": true, "License": true,
	"Subjects": true,
}

var (
	headerLine = regexp.MustCompile(`^([A-Za-z][A-Za-z\-]*):\s*(.*)$`)
	absLink    = regexp.MustCompile(`\(\s*(https?://\S+/abs/[^\s,)]+)`)
	sizeSuffix = regexp.MustCompile(`\s*\(\d+\s*kb[^)]*\)\s*$`)
)

var digestDateLayouts = []string{
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 MST",
}

// DigestAdapter parses one or more concatenated plain-text digests.
type DigestAdapter struct {
	Layout DigestLayout
}

// Kind returns types.SourceDigest.
func (DigestAdapter) Kind() types.SourceKind { return types.SourceDigest }

// Parse splits the input on the digest separator and parses every digest
// on its own, so a truncated final entry of one digest never absorbs text
// from the next.
func (a DigestAdapter) Parse(raw io.Reader, limit int) (Batch, error) {
	l := a.layout()
	data, err := io.ReadAll(raw)
	if err != nil {
		return Batch{}, &RetrievalError{Source: a.Kind(), Reason: "reading digest text", Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return Batch{}, &RetrievalError{Source: a.Kind(), Reason: "digest text is empty"}
	}

	b := newBatchBuilder(a.Kind(), limit)
	entries := 0
	for _, digest := range splitDigests(string(data), l.Separator) {
		for _, chunk := range digestEntries(digest, l) {
			if b.full() {
				return b.batch, nil
			}
			entries++
			b.add(parseDigestEntry(chunk))
		}
	}
	if entries == 0 {
		return Batch{}, &RetrievalError{Source: a.Kind(), Reason: "no digest entries found"}
	}
	return b.batch, nil
}

func (a DigestAdapter) layout() DigestLayout {
	l := a.Layout
	if l.Separator == "" {
		l.Separator = DefaultDigestLayout.Separator
	}
	if l.RuleMinLength <= 0 {
		l.RuleMinLength = DefaultDigestLayout.RuleMinLength
	}
	if l.ReplacementsMarker == "" {
		l.ReplacementsMarker = DefaultDigestLayout.ReplacementsMarker
	}
	return l
}

// splitDigests returns the line slices between separator lines.
func splitDigests(text, sep string) [][]string {
	var (
		digests [][]string
		cur     []string
	)
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == sep {
			digests = append(digests, cur)
			cur = nil
			continue
		}
		cur = append(cur, line)
	}
	return append(digests, cur)
}

// digestEntries splits one digest into entry chunks on rule lines. Text
// after the replacements marker and chunks with no entry header (mail
// preamble, footer) are dropped.
func digestEntries(lines []string, l DigestLayout) [][]string {
	var (
		chunks [][]string
		cur    []string
	)
	flush := func() {
		if looksLikeEntry(cur) {
			chunks = append(chunks, cur)
		}
		cur = nil
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, l.ReplacementsMarker) {
			break
		}
		if isRule(trimmed, l.RuleMinLength) {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return chunks
}

func isRule(line string, minLen int) bool {
	return len(line) >= minLen && strings.Trim(line, "-") == ""
}

func looksLikeEntry(lines []string) bool {
	for _, line := range lines {
		if strings.HasPrefix(line, "arXiv:") || strings.HasPrefix(line, "Title:") {
			return true
		}
	}
	return false
}

// parseDigestEntry reads the Key: value header block, then the
// backslash-delimited abstract and the trailing "\\ ( URL , size)" line.
func parseDigestEntry(lines []string) types.Paper {
	fields := make(map[string]string)
	var (
		key      string
		inHeader bool
		sections []string
		body     strings.Builder
		url      string
	)

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, `\\`) {
			if m := absLink.FindStringSubmatch(trimmed); m != nil {
				url = m[1]
			}
			if inHeader || len(fields) > 0 {
				sections = append(sections, body.String())
				body.Reset()
			}
			inHeader = false
			key = ""
			continue
		}
		if len(sections) == 0 {
			inHeader = true
			if m := headerLine.FindStringSubmatch(line); m != nil && digestKeys[m[1]] {
				key = m[1]
				fields[key] = m[2]
				continue
			}
			if trimmed == "" {
				key = ""
				continue
			}
			if key != "" {
				fields[key] += " " + trimmed
			}
			continue
		}
		body.WriteString(line)
		body.WriteByte('\n')
	}
	if len(sections) == 0 {
		// A truncated entry with no closing delimiter: header only.
		sections = append(sections, "")
	}

	p := types.Paper{
		Identifier: normalizeID(fields["arXiv"]),
		Title:      fields["Title"],
		Authors:    splitAuthors(fields["Authors"]),
		Categories: strings.Fields(fields["Categories"]),
		URL:        url,
	}
	// sections[0] is the header; the abstract follows it.
	if len(sections) > 1 {
		p.Abstract = sections[1]
	} else if rest := body.String(); strings.TrimSpace(rest) != "" {
		p.Abstract = rest
	}
	if d, ok := parseDigestDate(fields["Date"]); ok {
		p.SubmittedDate = &d
	}
	return p
}

func parseDigestDate(s string) (time.Time, bool) {
	s = sizeSuffix.ReplaceAllString(oneLine(s), "")
	for _, layout := range digestDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// DigestFetcher reads exported digest files and concatenates them with the
// separator line. A path of "-" reads standard input.
type DigestFetcher struct {
	Paths     []string
	Separator string
	Stdin     io.Reader
}

// Fetch reads every path. Digest files are local, so q is unused.
func (f *DigestFetcher) Fetch(ctx context.Context, _ types.Query) (io.ReadCloser, error) {
	if len(f.Paths) == 0 {
		return nil, &RetrievalError{Source: types.SourceDigest, Reason: "no digest file given"}
	}
	sep := f.Separator
	if sep == "" {
		sep = DefaultDigestLayout.Separator
	}

	var buf bytes.Buffer
	for i, path := range f.Paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := f.read(path)
		if err != nil {
			return nil, &RetrievalError{Source: types.SourceDigest, Reason: fmt.Sprintf("reading %s", path), Err: err}
		}
		if i > 0 {
			fmt.Fprintf(&buf, "\n%s\n", sep)
		}
		buf.Write(data)
	}
	return io.NopCloser(&buf), nil
}

func (f *DigestFetcher) read(path string) ([]byte, error) {
	if path == "-" {
		in := f.Stdin
		if in == nil {
			in = os.Stdin
		}
		return io.ReadAll(in)
	}
	return os.ReadFile(path)
}
