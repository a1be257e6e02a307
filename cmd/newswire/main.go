// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the newswire CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/newswire/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd runs the search pipeline itself: the tool is single-purpose,
// so the keyword search lives on the root command and only auxiliary
// operations (history, version) are subcommands.
var rootCmd = &cobra.Command{
	Use:   "newswire",
	Short: "Search news by keyword through NewsAPI",
	Long: `newswire queries the NewsAPI "everything" endpoint for articles matching
a keyword, filtered by language and recency, and prints up to 5 results
as readable text blocks or raw JSON.

The API key is read from the API_NEWS variable in .env or the environment.
Each invocation issues exactly one search request and exits.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSearch,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./newswire.yaml or ~/.config/newswire/config.yaml)")

	f := rootCmd.Flags()
	f.SetNormalizeFunc(normalizeFlags)
	f.String("query", "", "search keyword or topic (prompts interactively when absent)")
	f.Int("limit", 5, "how many articles to show (1-5)")
	f.String("lang", "ru", "article language (ru, en, ...)")
	f.Int("days", 7, "search articles no older than this many days")
	f.Bool("json", false, "print the raw article list as JSON")
	f.String("out", "", "also export the results to a YAML file")
	f.Bool("no-history", false, "do not record this search in the local history")

	viper.BindPFlag("query", f.Lookup("query"))
	viper.BindPFlag("limit", f.Lookup("limit"))
	viper.BindPFlag("language", f.Lookup("lang"))
	viper.BindPFlag("days", f.Lookup("days"))
	viper.BindPFlag("json", f.Lookup("json"))
	viper.BindPFlag("out", f.Lookup("out"))
	viper.BindPFlag("no-history", f.Lookup("no-history"))
}

// normalizeFlags maps the short spellings onto the canonical flag names,
// so --q works as --query and --n as --limit.
func normalizeFlags(f *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "q":
		name = "query"
	case "n":
		name = "limit"
	}
	return pflag.NormalizedName(name)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("newswire")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "newswire"))
		}
	}

	viper.SetDefault("timeout", 20*time.Second)

	viper.SetEnvPrefix("NEWSWIRE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// historyConfig returns the effective history settings. The directory
// and the disable switch come from the config file or environment; the
// --no-history flag is bound to the same key.
func historyConfig() types.HistoryConfig {
	cfg := types.HistoryConfig{
		Dir:      viper.GetString("history_dir"),
		Disabled: viper.GetBool("no-history"),
	}
	if cfg.Dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			cfg.Dir = ".newswire"
		} else {
			cfg.Dir = filepath.Join(home, ".newswire")
		}
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
