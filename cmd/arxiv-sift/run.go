// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-sift/internal/archive"
	"github.com/pdiddy/arxiv-sift/internal/pipeline"
	"github.com/pdiddy/arxiv-sift/internal/render"
	"github.com/pdiddy/arxiv-sift/internal/source"
	"github.com/pdiddy/arxiv-sift/pkg/types"
)

// runPlan describes one retrieval command invocation.
type runPlan struct {
	// name is the command name recorded in the archive.
	name string
	// label is the mode line shown above the listing.
	label  string
	source source.Source
	query  types.Query
}

// execute runs the pipeline for plan and writes the results to the
// command's output. Warnings go to the command's error stream.
func execute(cmd *cobra.Command, cfg types.Config, plan runPlan) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	out, err := pipeline.Run(ctx, plan.source, plan.query, stderr)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		if err := render.JSON(stdout, out); err != nil {
			return err
		}
	} else {
		theme, err := render.LookupTheme(cfg.Display.Theme)
		if err != nil {
			fmt.Fprintf(stderr, "warning: %v; using %s\n", err, render.DefaultTheme)
			theme = render.Themes[render.DefaultTheme]
		}
		noColor, _ := cmd.Flags().GetBool("no-color")
		term := render.NewTerminal(stdout, render.Options{
			Theme: theme,
			Color: !noColor && colorCapable(stdout),
			Width: cfg.Display.Width,
		})
		header := render.Header{Mode: plan.label, Terms: highlightTerms(plan.query)}
		if err := term.Render(header, out); err != nil {
			return fmt.Errorf("writing results: %w", err)
		}
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		id, path, err := saveRun(ctx, cfg, archive.NewRun(plan.name, plan.query, out))
		if err != nil {
			return err
		}
		fmt.Fprintf(stderr, "Saved run %d to %s\n", id, path)
	}
	return nil
}

func saveRun(ctx context.Context, cfg types.Config, run archive.Run) (int64, string, error) {
	path, err := archivePath(cfg.Archive)
	if err != nil {
		return 0, "", err
	}
	store, err := archive.Open(path)
	if err != nil {
		return 0, "", err
	}
	defer store.Close()

	id, err := store.Save(ctx, run)
	if err != nil {
		return 0, "", err
	}
	return id, path, nil
}

// colorCapable reports whether w is a terminal that supports color and the
// environment does not disable it (NO_COLOR, CLICOLOR=0).
func colorCapable(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return termenv.NewOutput(f).EnvColorProfile() != termenv.Ascii
}
