// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/newswire/pkg/types"
)

// ResultFile is the on-disk representation of a search and its results.
// The user can export a search to a file and consume it later without
// re-querying the provider.
type ResultFile struct {
	Query   types.SearchRequest `yaml:"query"`
	Results []types.Article     `yaml:"results"`
	Summary ResultSummary       `yaml:"summary"`
}

// ResultSummary stores result statistics and a timestamp.
type ResultSummary struct {
	Total     int       `yaml:"total"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteResultFile saves the request and its results to a YAML file.
func WriteResultFile(path string, sr types.SearchRequest, articles []types.Article) error {
	rf := ResultFile{
		Query:   sr,
		Results: articles,
		Summary: ResultSummary{
			Total:     len(articles),
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile loads a previously exported result file from disk.
func ReadResultFile(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &rf, nil
}
