// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render formats article lists for terminal or machine consumption.
// Text mode localizes timestamps and wraps long lines; JSON mode dumps the
// raw article list untouched so scripts see exactly what the provider sent.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mitchellh/go-wordwrap"

	"github.com/pdiddy/newswire/pkg/types"
)

// wrapWidth keeps title and description lines readable in a terminal.
const wrapWidth = 100

// humanTimeFmt is the localized timestamp layout (e.g. "20.08.2025 12:15").
const humanTimeFmt = "02.01.2006 15:04"

const (
	noTitle       = "(no title)"
	noDescription = "(no description)"
)

// NothingFound is printed when the provider returns zero articles.
// An empty result is a success, not an error.
const NothingFound = "Nothing found for this topic in the selected window."

// Progress writes the pre-fetch status line echoing the effective
// request parameters. Callers must suppress it in JSON mode so stdout
// stays machine-parseable.
func Progress(w io.Writer, sr types.SearchRequest, days int) {
	fmt.Fprintf(w, "\nSearching news for %q (up to %d, language: %s, last %d days)\n\n",
		sr.Query, sr.PageSize, sr.Language, days)
}

// FormatText writes numbered article blocks to w, starting at 1 in the
// order received, followed by a confirmation line.
func FormatText(w io.Writer, articles []types.Article) {
	for i, a := range articles {
		fmt.Fprintf(w, "%d. %s\n", i+1, formatArticle(a, time.Local))
	}
	fmt.Fprintln(w, "Done.")
}

// FormatJSON writes the raw article list as indented JSON. HTML escaping
// is off so non-ASCII and URL characters survive verbatim.
func FormatJSON(w io.Writer, articles []types.Article) error {
	if articles == nil {
		articles = []types.Article{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(articles)
}

// formatArticle renders one article as a multi-line block: marked
// wrapped title, wrapped description, link, localized publish time.
func formatArticle(a types.Article, loc *time.Location) string {
	title := a.Title
	if title == "" {
		title = noTitle
	}
	desc := a.Description
	if desc == "" {
		desc = noDescription
	}

	return fmt.Sprintf("— %s\n%s\nLink: %s\nPublished: %s\n",
		wrap(title),
		wrap(desc),
		a.URL,
		humanTime(a.PublishedAt, loc),
	)
}

// wrap wraps s at wrapWidth. wordwrap keeps unbroken tokens intact, and
// long URLs in news titles routinely exceed the width, so lines that
// are still too long get hard-broken at the width.
func wrap(s string) string {
	var lines []string
	for _, line := range strings.Split(wordwrap.WrapString(s, wrapWidth), "\n") {
		runes := []rune(line)
		for len(runes) > wrapWidth {
			lines = append(lines, string(runes[:wrapWidth]))
			runes = runes[wrapWidth:]
		}
		lines = append(lines, string(runes))
	}
	return strings.Join(lines, "\n")
}

// humanTime converts the provider's UTC ISO-8601 timestamp into the
// local timezone. A malformed timestamp must not abort rendering, so
// the original string comes back unmodified when parsing fails.
func humanTime(iso string, loc *time.Location) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.In(loc).Format(humanTimeFmt)
}
