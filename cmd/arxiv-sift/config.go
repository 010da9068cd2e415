// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/arxiv-sift/internal/archive"
	"github.com/pdiddy/arxiv-sift/internal/render"
	"github.com/pdiddy/arxiv-sift/internal/source"
	"github.com/pdiddy/arxiv-sift/pkg/types"
)

const (
	defaultTimeout    = 60 * time.Second
	defaultMaxRetries = 2
	defaultLimit      = 10
)

// baselineCategories are used when no category is given on the command
// line, in a query file, or in the config.
var baselineCategories = []string{"cs.CV", "cs.LG", "cs.CL", "cs.AI", "cs.IR"}

// setDefaults registers the default for every config key.
func setDefaults(v *viper.Viper) {
	v.SetDefault("http.timeout", defaultTimeout)
	v.SetDefault("http.user_agent", "arxiv-sift/"+version)
	v.SetDefault("http.max_retries", defaultMaxRetries)

	v.SetDefault("api.url", source.DefaultAPIURL)
	v.SetDefault("page.url", source.DefaultPageURL)

	l := source.DefaultPageLayout
	v.SetDefault("page.list_selector", l.ListSelector)
	v.SetDefault("page.header_selector", l.HeaderSelector)
	v.SetDefault("page.entry_selector", l.EntrySelector)
	v.SetDefault("page.detail_selector", l.DetailSelector)
	v.SetDefault("page.id_selector", l.IDSelector)
	v.SetDefault("page.title_selector", l.TitleSelector)
	v.SetDefault("page.authors_selector", l.AuthorsSelector)
	v.SetDefault("page.subjects_selector", l.SubjectsSelector)
	v.SetDefault("page.abstract_selector", l.AbstractSelector)
	v.SetDefault("page.include_sections", l.IncludeSections)
	v.SetDefault("page.stop_sections", l.StopSections)

	d := source.DefaultDigestLayout
	v.SetDefault("digest.separator", d.Separator)
	v.SetDefault("digest.rule_min_length", d.RuleMinLength)
	v.SetDefault("digest.replacements_marker", d.ReplacementsMarker)

	v.SetDefault("query.baseline_categories", baselineCategories)
	v.SetDefault("query.default_limit", defaultLimit)

	v.SetDefault("archive.path", "")
	v.SetDefault("display.theme", render.DefaultTheme)
	v.SetDefault("display.width", 0)
}

// loadConfig reads the typed configuration from v.
func loadConfig(v *viper.Viper) types.Config {
	httpCfg := types.HTTPConfig{
		Timeout:    v.GetDuration("http.timeout"),
		UserAgent:  v.GetString("http.user_agent"),
		MaxRetries: v.GetInt("http.max_retries"),
	}
	if httpCfg.Timeout <= 0 {
		httpCfg.Timeout = defaultTimeout
	}

	return types.Config{
		API:  types.APIConfig{HTTPConfig: httpCfg, URL: v.GetString("api.url")},
		Page: types.PageConfig{HTTPConfig: httpCfg, URL: v.GetString("page.url")},
		Digest: types.DigestConfig{
			Separator:          v.GetString("digest.separator"),
			RuleMinLength:      v.GetInt("digest.rule_min_length"),
			ReplacementsMarker: v.GetString("digest.replacements_marker"),
		},
		Query: types.QueryConfig{
			BaselineCategories: v.GetStringSlice("query.baseline_categories"),
			DefaultLimit:       v.GetInt("query.default_limit"),
		},
		Archive: types.ArchiveConfig{Path: v.GetString("archive.path")},
		Display: types.DisplayConfig{
			Theme: v.GetString("display.theme"),
			Width: v.GetInt("display.width"),
		},
	}
}

// pageLayout reads the listing page selectors from v.
func pageLayout(v *viper.Viper) source.PageLayout {
	return source.PageLayout{
		ListSelector:     v.GetString("page.list_selector"),
		HeaderSelector:   v.GetString("page.header_selector"),
		EntrySelector:    v.GetString("page.entry_selector"),
		DetailSelector:   v.GetString("page.detail_selector"),
		IDSelector:       v.GetString("page.id_selector"),
		TitleSelector:    v.GetString("page.title_selector"),
		AuthorsSelector:  v.GetString("page.authors_selector"),
		SubjectsSelector: v.GetString("page.subjects_selector"),
		AbstractSelector: v.GetString("page.abstract_selector"),
		IncludeSections:  v.GetStringSlice("page.include_sections"),
		StopSections:     v.GetStringSlice("page.stop_sections"),
	}
}

func digestLayout(cfg types.DigestConfig) source.DigestLayout {
	return source.DigestLayout{
		Separator:          cfg.Separator,
		RuleMinLength:      cfg.RuleMinLength,
		ReplacementsMarker: cfg.ReplacementsMarker,
	}
}

func httpClient(cfg types.HTTPConfig) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

// archivePath resolves the archive location, defaulting under the user's
// config directory.
func archivePath(cfg types.ArchiveConfig) (string, error) {
	if cfg.Path != "" {
		return cfg.Path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating archive: set archive.path: %w", err)
	}
	return filepath.Join(dir, archive.DefaultPath), nil
}
