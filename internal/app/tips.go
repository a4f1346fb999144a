package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/insighthub/insighthub/internal/config"
	"github.com/insighthub/insighthub/internal/crawl"
	"github.com/insighthub/insighthub/internal/output"
	"github.com/insighthub/insighthub/internal/tips"
)

var tipsJSON bool

var tipsCmd = &cobra.Command{
	Use:   "tips <url>",
	Short: "Generate optimization tips for a URL",
	Long: `Fetch the page and generate free-text SEO tips. With a Groq API key
configured the tips are AI-generated and merged with the rule-based
baseline; without one, rule-based tips are used alone.`,
	Args: cobra.ExactArgs(1),
	RunE: runTips,
}

func init() {
	tipsCmd.Flags().BoolVar(&tipsJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(tipsCmd)
}

func runTips(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	crawler := crawl.NewCrawler(crawl.WithTimeout(cfg.Crawl.Timeout))
	page := crawler.Fetch(cmd.Context(), args[0])

	list := tips.Generate(cmd.Context(), tipSource(cfg), page)

	if tipsJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			URL  string   `json:"url"`
			Tips []string `json:"tips"`
		}{page.URL, list})
	}

	fmt.Println(output.Section("Optimization Tips: " + page.URL))
	fmt.Println()

	if page.Failed() {
		fmt.Printf(" %s %s\n\n", output.StyleError.Render("fetch failed:"), page.Error)
	}

	for i, tip := range list {
		fmt.Printf(" %2d. %s\n", i+1, tip)
	}
	fmt.Println()
	return nil
}
