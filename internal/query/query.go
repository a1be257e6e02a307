// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query turns raw CLI input into a validated SearchRequest.
package query

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdiddy/newswire/pkg/types"
)

const (
	// MinLimit and MaxLimit bound the result count. The provider tier
	// caps page size at 5; out-of-range values are corrected silently.
	MinLimit = 1
	MaxLimit = 5

	dateFmt = "2006-01-02"
)

// Prompt is the interactive keyword prompt.
const Prompt = "Search topic: "

// Resolve returns the search keyword. A non-blank flag value wins;
// otherwise one line is read from in after writing the prompt to out.
// The result is trimmed and may be empty (the caller treats an empty
// keyword as a no-op, not an error). A failed read is an input error.
func Resolve(flagValue string, in io.Reader, out io.Writer) (string, error) {
	if q := strings.TrimSpace(flagValue); q != "" {
		return q, nil
	}

	fmt.Fprint(out, Prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", types.NewError(types.ErrInput, "could not read input")
	}
	return strings.TrimSpace(line), nil
}

// ClampLimit corrects n into [MinLimit, MaxLimit].
func ClampLimit(n int) int {
	if n < MinLimit {
		return MinLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

// FromDate returns the oldest acceptable publication date: now in UTC
// minus days, truncated to a calendar date. Computing in UTC avoids
// off-by-one windows from local timezone shifts.
func FromDate(now time.Time, days int) string {
	if days < 0 {
		days = 0
	}
	return now.UTC().AddDate(0, 0, -days).Format(dateFmt)
}

// Build assembles an immutable SearchRequest from a resolved keyword
// and the effective configuration. keyword must be non-empty.
func Build(keyword string, cfg types.SearchConfig, now time.Time) types.SearchRequest {
	language := cfg.Language
	if language == "" {
		language = "ru"
	}
	return types.SearchRequest{
		Query:    keyword,
		Language: language,
		From:     FromDate(now, cfg.Days),
		PageSize: ClampLimit(cfg.Limit),
	}
}
