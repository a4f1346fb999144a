// Package app contains the Cobra command tree for insighthub.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/insighthub/insighthub/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "insighthub",
	Short: "SEO analysis, competitor benchmarking, and keyword research",
	Long: `insighthub audits a website's SEO, benchmarks it against competitors,
researches keywords, and aggregates everything into a scored, prioritized
action plan.

Run a full analysis with 'insighthub analyze <url>'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("insighthub", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  analyze   Run the full SEO analysis pipeline on a URL")
		fmt.Println("  keywords  Research search keywords")
		fmt.Println("  tips      Generate optimization tips for a URL")
		fmt.Println("  serve     Expose the analysis pipeline as an HTTP API")
		return nil
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		output.AutoDetect()
		if flagNoColor {
			output.SetNoColor(true)
		}
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/insighthub/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
