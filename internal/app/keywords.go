package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/insighthub/insighthub/internal/config"
	"github.com/insighthub/insighthub/internal/keyword"
	"github.com/insighthub/insighthub/internal/output"
)

var keywordsJSON bool

var keywordsCmd = &cobra.Command{
	Use:   "keywords <keyword>...",
	Short: "Research search keywords",
	Long: `Fetch search volume, difficulty, CPC, and related terms for one or
more keywords. Without a configured provider key, deterministic simulated
data is used.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runKeywords,
}

func init() {
	keywordsCmd.Flags().BoolVar(&keywordsJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	client := keyword.NewClient(cfg.KeywordAPIKey, keyword.WithTimeout(cfg.Keywords.Timeout))
	metrics := client.Research(cmd.Context(), args)
	summary := keyword.Summarize(metrics)

	if keywordsJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Keywords    []keyword.Metric `json:"keywords"`
			Summary     keyword.Summary  `json:"summary"`
			Suggestions []string         `json:"suggestions"`
		}{metrics, summary, keyword.Suggestions(args)})
	}

	fmt.Println(output.Section("Keyword Research"))
	fmt.Println()

	tbl := output.NewTable("Keyword", "Volume", "Difficulty", "CPC").AlignRight(1, 2, 3)
	for _, m := range metrics {
		volume := "unknown"
		if m.VolumeKnown {
			volume = strconv.Itoa(m.SearchVolume)
		}
		tbl.AddRow(m.Keyword, volume, strconv.Itoa(m.Difficulty), fmt.Sprintf("$%.2f", m.CPC))
	}
	fmt.Println(tbl.Render())

	fmt.Printf(" Avg volume: %.0f  |  Avg difficulty: %.0f/100  |  High opportunity: %d\n\n",
		summary.AvgSearchVolume, summary.AvgDifficulty, summary.HighOpportunity)

	for _, m := range metrics {
		if len(m.Related) == 0 {
			continue
		}
		fmt.Printf(" %s: %s\n",
			output.StyleBold.Render(m.Keyword),
			output.StyleMuted.Render(strings.Join(m.Related, ", ")))
	}

	if suggestions := keyword.Suggestions(args); len(suggestions) > 0 {
		fmt.Println()
		fmt.Printf(" Suggestions: %s\n", strings.Join(suggestions, ", "))
	}

	return nil
}
