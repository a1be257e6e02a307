// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"path/filepath"
	"testing"

	"github.com/pdiddy/newswire/pkg/types"
)

func TestResultFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "search.yaml")

	sr := types.SearchRequest{
		Query:    "климат",
		Language: "ru",
		From:     "2025-08-23",
		PageSize: 5,
	}
	articles := []types.Article{
		{Title: "Заголовок", Description: "Описание", URL: "https://example.com/a", PublishedAt: "2025-08-25T08:00:00Z"},
		{Title: "Second", URL: "https://example.com/b"},
	}

	if err := WriteResultFile(path, sr, articles); err != nil {
		t.Fatalf("WriteResultFile: %v", err)
	}

	rf, err := ReadResultFile(path)
	if err != nil {
		t.Fatalf("ReadResultFile: %v", err)
	}

	if rf.Query != sr {
		t.Errorf("Query = %+v, want %+v", rf.Query, sr)
	}
	if len(rf.Results) != 2 {
		t.Fatalf("len(Results) = %d, want 2", len(rf.Results))
	}
	if rf.Results[0] != articles[0] {
		t.Errorf("Results[0] = %+v, want %+v", rf.Results[0], articles[0])
	}
	if rf.Summary.Total != 2 {
		t.Errorf("Summary.Total = %d, want 2", rf.Summary.Total)
	}
	if rf.Summary.Timestamp.IsZero() {
		t.Error("Summary.Timestamp is zero")
	}
}

func TestReadResultFileErrors(t *testing.T) {
	if _, err := ReadResultFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
