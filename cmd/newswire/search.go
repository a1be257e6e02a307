package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/newswire/internal/history"
	"github.com/pdiddy/newswire/internal/httputil"
	"github.com/pdiddy/newswire/internal/newsapi"
	"github.com/pdiddy/newswire/internal/query"
	"github.com/pdiddy/newswire/internal/render"
	"github.com/pdiddy/newswire/internal/secrets"
	"github.com/pdiddy/newswire/pkg/types"
)

// runSearch executes the pipeline: load the credential, resolve the
// keyword, fetch once, present. Any failure is terminal; an empty
// keyword and an empty result list are successes.
func runSearch(cmd *cobra.Command, args []string) error {
	apiKey, err := secrets.APIKey()
	if err != nil {
		return err
	}

	keyword, err := query.Resolve(viper.GetString("query"), cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if keyword == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "Empty query, nothing to search. Try topics like: технологии, финансы, климат.")
		return nil
	}

	cfg := types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("timeout"),
			UserAgent: "newswire/" + version,
		},
		Language: viper.GetString("language"),
		Days:     viper.GetInt("days"),
		Limit:    viper.GetInt("limit"),
	}
	sr := query.Build(keyword, cfg, time.Now())

	asJSON := viper.GetBool("json")
	emitProgress(cmd.OutOrStdout(), sr, cfg.Days, asJSON)

	client := &newsapi.Client{
		HTTPClient: httputil.NewClient(cfg.HTTPConfig),
		APIKey:     apiKey,
		UserAgent:  cfg.UserAgent,
	}
	articles, err := client.Search(cmd.Context(), sr)
	if err != nil {
		return err
	}

	recordSearch(cmd, sr, cfg.Days, len(articles))

	if out := viper.GetString("out"); out != "" {
		if err := render.WriteResultFile(out, sr, articles); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not write result file: %v\n", err)
		}
	}

	if len(articles) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), render.NothingFound)
		return nil
	}

	if asJSON {
		return render.FormatJSON(cmd.OutOrStdout(), articles)
	}
	render.FormatText(cmd.OutOrStdout(), articles)
	return nil
}

// emitProgress writes the pre-fetch progress line unless JSON mode is
// on: in JSON mode stdout carries only the JSON document.
func emitProgress(w io.Writer, sr types.SearchRequest, days int, asJSON bool) {
	if asJSON {
		return
	}
	render.Progress(w, sr, days)
}

// recordSearch appends the search to the local history log. Best-effort:
// history failures warn on stderr and never fail the search.
func recordSearch(cmd *cobra.Command, sr types.SearchRequest, days, results int) {
	hcfg := historyConfig()
	if hcfg.Disabled {
		return
	}

	s, err := history.Open(hcfg.Dir)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: history unavailable: %v\n", err)
		return
	}
	defer s.Close()

	if err := s.Record(cmd.Context(), sr, days, results); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not record search: %v\n", err)
	}
}
