package types

import "time"

// HTTPConfig holds shared HTTP settings for outbound requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout (default 20s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "newswire/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the search pipeline.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Language is the default article language filter (default "ru").
	Language string `json:"language" yaml:"language"`

	// Days is the default recency window in days (default 7).
	Days int `json:"days" yaml:"days"`

	// Limit is the default result count, clamped to [1,5] (default 5).
	Limit int `json:"limit" yaml:"limit"`
}

// HistoryConfig holds settings for the local search history log.
type HistoryConfig struct {
	// Dir is the directory holding history.db (default ~/.newswire).
	Dir string `json:"dir" yaml:"dir"`

	// Disabled turns off history recording entirely.
	Disabled bool `json:"disabled" yaml:"disabled"`
}
