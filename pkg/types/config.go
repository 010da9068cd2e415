package types

import "time"

// HTTPConfig holds shared HTTP settings used by the network fetchers.
type HTTPConfig struct {
	// Timeout bounds a single retrieval request.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "arxiv-sift/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// MaxRetries is the number of retries on HTTP 429. Zero disables retrying.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// APIConfig holds settings for the arXiv query API source.
type APIConfig struct {
	HTTPConfig `yaml:",inline"`

	// URL is the query endpoint (default https://export.arxiv.org/api/query).
	URL string `json:"url" yaml:"url"`
}

// PageConfig holds settings for the live listing source.
type PageConfig struct {
	HTTPConfig `yaml:",inline"`

	// URL is the listing page (default https://arxiv.org/list/cs/new).
	URL string `json:"url" yaml:"url"`
}

// DigestConfig holds settings for the email digest source.
type DigestConfig struct {
	// Separator is the line placed between concatenated digests.
	Separator string `json:"separator" yaml:"separator"`

	// RuleMinLength is the minimum run of dashes that separates entries.
	RuleMinLength int `json:"rule_min_length" yaml:"rule_min_length"`

	// ReplacementsMarker is the line prefix after which a digest lists
	// replaced (old) papers only.
	ReplacementsMarker string `json:"replacements_marker" yaml:"replacements_marker"`
}

// QueryConfig holds defaults injected into query construction.
type QueryConfig struct {
	// BaselineCategories are used when the user names no category.
	BaselineCategories []string `json:"baseline_categories" yaml:"baseline_categories"`

	// DefaultLimit is the result cap when neither --max nor --all is given.
	DefaultLimit int `json:"default_limit" yaml:"default_limit"`
}

// ArchiveConfig holds settings for the optional run archive.
type ArchiveConfig struct {
	// Path is the SQLite database file.
	Path string `json:"path" yaml:"path"`
}

// DisplayConfig holds terminal rendering settings.
type DisplayConfig struct {
	// Theme names a built-in color scheme (vibrant, solarized, classic,
	// nordic).
	Theme string `json:"theme" yaml:"theme"`

	// Width wraps abstracts at this many columns; zero disables wrapping.
	Width int `json:"width" yaml:"width"`
}

// Config groups every setting read from the config file and environment.
type Config struct {
	API     APIConfig     `json:"api" yaml:"api"`
	Page    PageConfig    `json:"page" yaml:"page"`
	Digest  DigestConfig  `json:"digest" yaml:"digest"`
	Query   QueryConfig   `json:"query" yaml:"query"`
	Archive ArchiveConfig `json:"archive" yaml:"archive"`
	Display DisplayConfig `json:"display" yaml:"display"`
}
