// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the newswire pipeline.
package types

// Article is one news item as returned by NewsAPI. All fields are optional;
// the provider omits them freely.
type Article struct {
	// Title is the headline as returned by the source.
	Title string `json:"title" yaml:"title"`

	// Description is the article summary or lede.
	Description string `json:"description" yaml:"description"`

	// URL links to the full article.
	URL string `json:"url" yaml:"url"`

	// PublishedAt is the publication time in UTC, ISO-8601 with a "Z"
	// suffix (e.g. "2025-08-20T09:15:00Z"). Kept as a string: JSON output
	// reproduces it verbatim and only text rendering localizes it.
	PublishedAt string `json:"publishedAt" yaml:"published_at"`
}

// SearchRequest holds the validated parameters for one search invocation.
// Built once by the query package and never mutated afterwards.
type SearchRequest struct {
	// Query is the search keyword or phrase. Always non-empty.
	Query string `json:"query" yaml:"query"`

	// Language filters results by article language (e.g. "ru", "en").
	Language string `json:"language" yaml:"language"`

	// From is the oldest acceptable publication date, "2006-01-02" format,
	// computed from the current UTC date minus the recency window.
	From string `json:"from" yaml:"from"`

	// PageSize caps the number of returned articles. Clamped to [1,5]:
	// the provider's free tier limits page size, and the ceiling is
	// enforced locally rather than trusted to the server.
	PageSize int `json:"page_size" yaml:"page_size"`
}
