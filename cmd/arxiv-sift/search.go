// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-sift/internal/query"
	"github.com/pdiddy/arxiv-sift/internal/source"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the arXiv API",
	Long: `Query the arXiv API (api.url) with the given criteria, then filter, rank,
and highlight the returned records locally. Categories are OR'd; keywords,
authors, and the date range are AND'd.`,
	Example: `  arxiv-sift search -k transformer -k "graph neural" -c cs.LG --from 2024-01-01
  arxiv-sift search -a Vaswani -c all --all --json`,
	Args: cobra.NoArgs,
	RunE: runSearch,
}

func init() {
	addQueryFlags(searchCmd)
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(viper.GetViper())

	q, err := resolveQuery(cmd, cfg.Query, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if err := query.RequireCriteria(q); err != nil {
		return err
	}

	return execute(cmd, cfg, runPlan{
		name:  "search",
		label: "API search",
		source: source.Source{
			Fetcher: &source.APIFetcher{Client: httpClient(cfg.API.HTTPConfig), Config: cfg.API},
			Adapter: source.APIAdapter{},
			Limit:   q.Limit,
		},
		query: q,
	})
}
