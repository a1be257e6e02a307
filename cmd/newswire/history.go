package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/newswire/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent searches from the local history log",
	Long: `History lists searches previously recorded by newswire: when they ran,
what was searched, and how many articles came back. The log lives in
~/.newswire/history.db (override with history_dir in the config file).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		asJSON, _ := cmd.Flags().GetBool("json")

		s, err := history.Open(historyConfig().Dir)
		if err != nil {
			return err
		}
		defer s.Close()

		entries, err := s.List(cmd.Context(), limit)
		if err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(entries)
		}

		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No searches recorded yet.")
			return nil
		}

		for _, e := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %q (language: %s, last %d days) — %d articles\n",
				e.SearchedAt.Local().Format("02.01.2006 15:04"),
				e.Query, e.Language, e.Days, e.Results)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of entries to list")
	historyCmd.Flags().Bool("json", false, "output entries as JSON")

	rootCmd.AddCommand(historyCmd)
}
