// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/newswire/pkg/types"
)

func TestDoSuccessPassesResponseThrough(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)

	resp, err := Do(context.Background(), ts.Client(), req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDoNon2xxIsNotATransportError(t *testing.T) {
	// Status handling belongs to the caller; Do only classifies failures
	// where no response was obtained at all.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)

	resp, err := Do(context.Background(), ts.Client(), req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestDoTimeoutClassifiedAsTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()

	client := &http.Client{Timeout: 50 * time.Millisecond}
	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)

	_, err = Do(context.Background(), client, req)
	require.Error(t, err)

	var terr *types.Error
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, types.ErrTimeout, terr.Kind)
}

func TestDoContextDeadlineClassifiedAsTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)

	_, err = Do(ctx, ts.Client(), req)
	require.Error(t, err)

	var terr *types.Error
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, types.ErrTimeout, terr.Kind)
}

func TestDoConnectionRefusedClassifiedAsUnreachable(t *testing.T) {
	// A server that is immediately closed leaves a port nothing listens on.
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	addr := ts.URL
	ts.Close()

	req, err := http.NewRequest(http.MethodGet, addr, nil)
	require.NoError(t, err)

	_, err = Do(context.Background(), &http.Client{}, req)
	require.Error(t, err)

	var terr *types.Error
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, types.ErrUnreachable, terr.Kind)
}

func TestNewClientDefaultTimeout(t *testing.T) {
	c := NewClient(types.HTTPConfig{})
	assert.Equal(t, defaultTimeout, c.Timeout)

	c = NewClient(types.HTTPConfig{Timeout: 3 * time.Second})
	assert.Equal(t, 3*time.Second, c.Timeout)
}
