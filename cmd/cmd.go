// Package cmd defines the command-line interface for workscope.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huangsam/workscope/internal/contract"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("period", "p", "week", "Analysis window: day, week, month, all, custom")
	rootCmd.PersistentFlags().String("start", "", "Custom range start (YYYY-MM-DD or RFC3339), requires --period custom")
	rootCmd.PersistentFlags().String("end", "", "Custom range end (YYYY-MM-DD or RFC3339), requires --period custom")
	rootCmd.PersistentFlags().StringP("formats", "f", "text", "Comma-separated output formats: text, json, csv, html, parquet")
	rootCmd.PersistentFlags().String("output-dir", "", "Directory for generated report artifacts")
	rootCmd.PersistentFlags().String("output-file", "", "Explicit artifact path (single format only)")
	rootCmd.PersistentFlags().String("ref", "", "Git reference to analyze instead of HEAD")
	rootCmd.PersistentFlags().Bool("all-branches", false, "Mine history across all branches")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a JSON methodology catalog replacing the built-in one")
	rootCmd.PersistentFlags().String("baseline", "", "Path to a previous JSON report to diff against")
	rootCmd.PersistentFlags().Int("commit-limit", contract.DefaultCommitLimit, "Maximum commits listed in rendered reports")
	rootCmd.PersistentFlags().Bool("include-vcs", false, "Scan VCS metadata directories like .git")
	rootCmd.PersistentFlags().Bool("include-compressed", false, "Measure compressed files instead of skipping them")
	rootCmd.PersistentFlags().Bool("include-archives", false, "Scan archive and backup directories")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Bypass the git activity cache")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
