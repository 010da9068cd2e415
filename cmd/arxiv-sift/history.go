// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-sift/internal/archive"
)

var historyCmd = &cobra.Command{
	Use:   "history [RUN_ID]",
	Short: "List or export archived runs",
	Long: `History reads runs recorded with --save from the archive (archive.path,
default <user config dir>/arxiv-sift/runs.db). Without an argument it lists
the most recent runs. With a run ID it exports that run, including every
result, as YAML or JSON.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := loadConfig(viper.GetViper())

	path, err := archivePath(cfg.Archive)
	if err != nil {
		return err
	}
	store, err := archive.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 1 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run ID %q", args[0])
		}
		format, _ := cmd.Flags().GetString("format")
		return store.Export(ctx, id, format, cmd.OutOrStdout())
	}

	n, _ := cmd.Flags().GetInt("limit")
	runs, err := store.List(ctx, n)
	if err != nil {
		return err
	}
	return formatHistory(cmd.OutOrStdout(), runs)
}

func formatHistory(w io.Writer, runs []archive.Run) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No saved runs.")
		return err
	}

	fmt.Fprintf(w, "%-5s  %-16s  %-7s  %-7s  %-40s  %s\n",
		"ID", "Created", "Mode", "Results", "Terms", "Categories")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, r := range runs {
		terms := strings.Join(append(append([]string{}, r.Query.KeywordPhrases...), r.Query.AuthorPhrases...), ", ")
		terms = ansi.Truncate(terms, 40, "...")
		cats := "all"
		if !r.Query.Categories.Any {
			cats = strings.Join(r.Query.Categories.Codes, ",")
		}
		fmt.Fprintf(w, "%-5d  %-16s  %-7s  %-7d  %-40s  %s\n",
			r.ID, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Mode, r.Count, terms, cats)
	}

	_, err := fmt.Fprintf(w, "\n%d runs\n", len(runs))
	return err
}

func addHistoryFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", archive.FormatYAML, "export format for a single run: yaml or json")
	cmd.Flags().IntP("limit", "n", 20, "number of runs to list (0 = all)")
}

func init() {
	addHistoryFlags(historyCmd)
	rootCmd.AddCommand(historyCmd)
}
