// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by outbound clients.
package httputil

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/pdiddy/newswire/pkg/types"
)

// defaultTimeout is the fixed ceiling on the single outbound call.
const defaultTimeout = 20 * time.Second

// NewClient returns an http.Client configured from cfg. A zero timeout
// falls back to 20 seconds, matching the pipeline's fixed ceiling.
func NewClient(cfg types.HTTPConfig) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// Do executes the request once and maps transport failures onto the
// tagged error kinds. Timeouts (client deadline or context) become
// ErrTimeout; every other transport failure becomes ErrUnreachable.
// The tool is single-shot and interactive, so there are no retries:
// any failure here is terminal for the invocation.
func Do(ctx context.Context, client *http.Client, req *http.Request) (*http.Response, error) {
	resp, err := client.Do(req.Clone(ctx))
	if err != nil {
		return nil, classify(err)
	}
	return resp, nil
}

// classify turns a client.Do error into a tagged transport error.
func classify(err error) *types.Error {
	if isTimeout(err) {
		return types.NewError(types.ErrTimeout, "request to NewsAPI timed out")
	}
	return types.NewError(types.ErrUnreachable, "network error: could not reach NewsAPI")
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}
