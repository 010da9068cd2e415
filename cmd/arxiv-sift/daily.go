// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-sift/internal/source"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Filter today's arXiv listing page",
	Long: `Fetch the live "new submissions" listing (page.url, default
arxiv.org/list/cs/new), keep new submissions and cross-lists, and filter and
rank them locally. The listing carries no submission dates.`,
	Example: `  arxiv-sift daily -k "diffusion model" -c cs.CV
  arxiv-sift daily -a Hinton --all --no-color`,
	Args: cobra.NoArgs,
	RunE: runDaily,
}

func init() {
	addQueryFlags(dailyCmd)
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(cmd *cobra.Command, args []string) error {
	v := viper.GetViper()
	cfg := loadConfig(v)

	q, err := resolveQuery(cmd, cfg.Query, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if q.DateRange != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: the listing page carries no submission dates; --from/--to do not exclude its entries")
	}

	return execute(cmd, cfg, runPlan{
		name:  "daily",
		label: "Daily listing",
		source: source.Source{
			Fetcher: &source.PageFetcher{Client: httpClient(cfg.Page.HTTPConfig), Config: cfg.Page},
			Adapter: source.PageAdapter{Layout: pageLayout(v)},
		},
		query: q,
	})
}
