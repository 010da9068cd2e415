// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the arxiv-sift CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-sift/internal/query"
	"github.com/pdiddy/arxiv-sift/internal/source"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the arxiv-sift CLI.
var rootCmd = &cobra.Command{
	Use:   "arxiv-sift",
	Short: "Fetch, filter, and rank arXiv papers from the terminal",
	Long: `arxiv-sift retrieves arXiv listings from one of three sources, normalizes
them, and filters and ranks them against keyword, author, category, and date
criteria. Matching terms are highlighted in the output.

  daily    today's listing page (arxiv.org/list/<archive>/new)
  search   the arXiv query API
  digest   exported arXiv email digests

Runs can be archived with --save and reviewed with history.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./arxiv-sift.yaml or ~/.config/arxiv-sift/arxiv-sift.yaml)")
	rootCmd.Version = version
}

func initConfig() {
	// A missing .env is normal.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("arxiv-sift")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "arxiv-sift"))
		}
	}

	setDefaults(viper.GetViper())
	viper.SetEnvPrefix("ARXIV_SIFT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "warning: reading config %s: %v\n", cfgFile, err)
	}
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case query.IsQueryError(err):
		return ExitQueryError
	case source.IsRetrievalError(err):
		return ExitRetrievalError
	default:
		return ExitError
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "interrupted")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
	}
	stop()
	os.Exit(exitCode(err))
}
