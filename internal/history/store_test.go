// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/newswire/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sr := types.SearchRequest{Query: "финансы", Language: "ru", From: "2025-08-23", PageSize: 5}
	require.NoError(t, s.Record(ctx, sr, 7, 3))
	require.NoError(t, s.Record(ctx, types.SearchRequest{Query: "climate", Language: "en", PageSize: 2}, 30, 0))

	entries, err := s.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "climate", entries[0].Query)
	assert.Equal(t, "en", entries[0].Language)
	assert.Equal(t, 30, entries[0].Days)
	assert.Equal(t, 0, entries[0].Results)

	assert.Equal(t, "финансы", entries[1].Query)
	assert.Equal(t, 5, entries[1].PageSize)
	assert.Equal(t, 3, entries[1].Results)
	assert.False(t, entries[1].SearchedAt.IsZero())
}

func TestListLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Record(ctx, types.SearchRequest{Query: "q", Language: "ru", PageSize: 5}, 7, i))
	}

	entries, err := s.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	// Non-positive limit falls back to the default.
	entries, err = s.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestListEmptyStore(t *testing.T) {
	s := openTestStore(t)

	entries, err := s.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOpenCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	s, err := Open(dir)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Record(context.Background(), types.SearchRequest{Query: "q", Language: "ru", PageSize: 1}, 1, 0))
}

func TestOpenIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	s1, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s1.Record(context.Background(), types.SearchRequest{Query: "q", Language: "ru", PageSize: 1}, 7, 1))
	require.NoError(t, s1.Close())

	// Reopening must keep existing rows and not recreate the schema.
	s2, err := Open(dir)
	require.NoError(t, err)
	defer s2.Close()

	entries, err := s2.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
