// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package newsapi queries the NewsAPI "everything" endpoint and maps the
// provider's status contract onto the pipeline's tagged errors.
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/newswire/internal/httputil"
	"github.com/pdiddy/newswire/pkg/types"
)

// apiBase is the NewsAPI search-across-all-articles endpoint. Declared
// as a var so tests can substitute an httptest server.
var apiBase = "https://newsapi.org/v2/everything"

// statusOK is the success marker in a NewsAPI response body.
const statusOK = "ok"

// Client issues search requests against NewsAPI.
type Client struct {
	HTTPClient *http.Client
	APIKey     string
	UserAgent  string
}

// Search performs one GET against the everything endpoint and returns
// the article list in provider order (sorted by publish time, newest
// first, via the sortBy directive). The list may be empty; an empty
// result is not an error. Exactly one network call is made: failures
// are terminal and come back as *types.Error.
func (c *Client) Search(ctx context.Context, sr types.SearchRequest) ([]types.Article, error) {
	if sr.Query == "" {
		return nil, fmt.Errorf("empty NewsAPI query")
	}

	params := url.Values{
		"q":        {sr.Query},
		"language": {sr.Language},
		"sortBy":   {"publishedAt"},
		"from":     {sr.From},
		"pageSize": {fmt.Sprintf("%d", sr.PageSize)},
		"apiKey":   {c.APIKey},
	}

	reqURL := apiBase + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := httputil.Do(ctx, c.HTTPClient, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apiError(resp)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, types.NewError(types.ErrAPI, "parsing NewsAPI response: %v", err)
	}

	if body.Status != statusOK {
		msg := body.Message
		if msg == "" {
			msg = "unknown NewsAPI error"
		}
		return nil, types.NewError(types.ErrAPI, "NewsAPI answered with status %q: %s", body.Status, msg)
	}

	return body.Articles, nil
}

// apiError extracts the provider-supplied message from a non-2xx
// response body, falling back to a status-derived message when the
// body cannot be parsed.
func apiError(resp *http.Response) *types.Error {
	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		return types.NewError(types.ErrAPI, "HTTP error: %s", body.Message)
	}
	return types.NewError(types.ErrAPI, "NewsAPI returned HTTP %d", resp.StatusCode)
}

// NewsAPI JSON structures.
type searchResponse struct {
	Status       string          `json:"status"`
	TotalResults int             `json:"totalResults"`
	Message      string          `json:"message"`
	Articles     []types.Article `json:"articles"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
