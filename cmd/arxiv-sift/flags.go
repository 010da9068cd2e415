// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-sift/internal/query"
	"github.com/pdiddy/arxiv-sift/pkg/types"
)

// addQueryFlags registers the query flags shared by the retrieval commands.
func addQueryFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringArrayP("keyword", "k", nil, "keyword or phrase to match in title or abstract (repeatable)")
	f.StringArrayP("author", "a", nil, "author name or part of one (repeatable)")
	f.StringSliceP("category", "c", nil, `category codes, e.g. cs.CV,cs.LG, "cs.*", or "all" (default: query.baseline_categories)`)
	f.String("from", "", "submitted on or after this date (YYYY-MM-DD)")
	f.String("to", "", "submitted on or before this date (YYYY-MM-DD)")
	f.Int("max", 0, "maximum number of results (default: query.default_limit)")
	f.Bool("all", false, "return every matching result")
	f.String("query-file", "", "YAML file with saved query parameters; flags override it")

	f.Bool("json", false, "output results as JSON")
	f.Bool("save", false, "record this run in the archive")
	f.Bool("no-color", false, "disable styled output")
}

// flagParams reads the query flags the user set explicitly.
func flagParams(cmd *cobra.Command) query.Params {
	f := cmd.Flags()
	var p query.Params
	p.Keywords, _ = f.GetStringArray("keyword")
	p.Authors, _ = f.GetStringArray("author")
	p.Categories, _ = f.GetStringSlice("category")
	p.From, _ = f.GetString("from")
	p.To, _ = f.GetString("to")
	if f.Changed("max") {
		p.Limit, _ = f.GetInt("max")
	}
	p.All, _ = f.GetBool("all")
	return p
}

// resolveQuery merges the query file with the flags, applies configured
// defaults, and validates the result. Notes about defaults go to w.
func resolveQuery(cmd *cobra.Command, cfg types.QueryConfig, w io.Writer) (types.Query, error) {
	params := flagParams(cmd)

	if path, _ := cmd.Flags().GetString("query-file"); path != "" {
		preset, err := query.LoadPreset(path)
		if err != nil {
			return types.Query{}, err
		}
		params = preset.Merge(params)
	}

	if params.Limit == 0 && !params.All {
		params.Limit = cfg.DefaultLimit
		if params.Limit <= 0 {
			params.Limit = defaultLimit
		}
	}

	baseline := cfg.BaselineCategories
	if len(baseline) == 0 {
		baseline = baselineCategories
	}
	if len(params.Categories) == 0 {
		fmt.Fprintf(w, "No category specified. Using baseline: %s\n", strings.Join(baseline, ", "))
	}

	return query.New(params, baseline)
}

// highlightTerms lists the phrases shown in the output header.
func highlightTerms(q types.Query) []string {
	terms := make([]string, 0, len(q.KeywordPhrases)+len(q.AuthorPhrases))
	terms = append(terms, q.KeywordPhrases...)
	return append(terms, q.AuthorPhrases...)
}
