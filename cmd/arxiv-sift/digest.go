// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-sift/internal/source"
)

var digestCmd = &cobra.Command{
	Use:   "digest FILE...",
	Short: "Filter exported arXiv email digests",
	Long: `Parse one or more plain-text arXiv email digests and filter and rank their
entries. Pass "-" to read a digest from standard input. Several digests in a
single file are split on digest.separator.`,
	Example: `  arxiv-sift digest mail/cs-2024-01-05.txt -k retrieval
  pbpaste | arxiv-sift digest - -c cs.IR`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDigest,
}

func init() {
	addQueryFlags(digestCmd)
	rootCmd.AddCommand(digestCmd)
}

func runDigest(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(viper.GetViper())

	q, err := resolveQuery(cmd, cfg.Query, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	return execute(cmd, cfg, runPlan{
		name:  "digest",
		label: "Email digest",
		source: source.Source{
			Fetcher: &source.DigestFetcher{
				Paths:     args,
				Separator: cfg.Digest.Separator,
				Stdin:     cmd.InOrStdin(),
			},
			Adapter: source.DigestAdapter{Layout: digestLayout(cfg.Digest)},
		},
		query: q,
	})
}
