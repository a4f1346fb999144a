package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/insighthub/insighthub/internal/config"
	"github.com/insighthub/insighthub/internal/insight"
	"github.com/insighthub/insighthub/internal/output"
	"github.com/insighthub/insighthub/internal/pipeline"
	"github.com/insighthub/insighthub/internal/report"
)

var (
	analyzeCompetitors []string
	analyzeKeywords    []string
	analyzeExport      string
	analyzeJSON        bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <url>",
	Short: "Run the full SEO analysis pipeline on a URL",
	Long: `Fetch the page, benchmark it against competitors, research keywords,
and aggregate everything into a scored, prioritized action plan.

Competitor and keyword research are optional; without them the analysis
covers the site alone.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringSliceVar(&analyzeCompetitors, "competitors", nil, "Competitor URLs to benchmark against")
	analyzeCmd.Flags().StringSliceVar(&analyzeKeywords, "keywords", nil, "Keywords to research")
	analyzeCmd.Flags().StringVar(&analyzeExport, "export", "", "Write a markdown report to this path")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	pipe, closeCache, err := buildPipeline(cfg)
	if err != nil {
		return err
	}
	defer closeCache()

	competitors := analyzeCompetitors
	if cfg.Crawl.MaxCompetitors > 0 && len(competitors) > cfg.Crawl.MaxCompetitors {
		competitors = competitors[:cfg.Crawl.MaxCompetitors]
	}

	result, err := pipe.Run(cmd.Context(), pipeline.Request{
		URL:         args[0],
		Competitors: competitors,
		Keywords:    analyzeKeywords,
	})
	if err != nil {
		return fmt.Errorf("running analysis: %w", err)
	}

	rep := report.Assemble(args[0], result)

	if analyzeExport != "" {
		md := report.RenderMarkdown(rep, report.DefaultOptions())
		if err := os.WriteFile(analyzeExport, []byte(md), 0o644); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Fprintln(os.Stderr, "report written to", analyzeExport)
	}

	if analyzeJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	renderAnalysis(args[0], result)
	return nil
}

func renderAnalysis(url string, res pipeline.Result) {
	analysis := res.Analysis

	fmt.Println(output.Section("SEO Analysis: " + url))
	fmt.Println()

	if res.Site.Failed() {
		fmt.Printf(" %s %s\n\n", output.StyleError.Render("fetch failed:"), res.Site.Error)
	}

	fmt.Printf(" Overall score  %s\n\n", output.ScoreBar(analysis.OverallScore, 20))

	speed := insight.AssessSpeed(res.Site)
	content := insight.AssessContent(res.Site)
	fmt.Printf(" Load time      %.2fs (grade %s)\n",
		speed.LoadTime, output.GradeStyle(speed.Grade).Render(speed.Grade))
	fmt.Printf(" Content        %d/100 (%s, %d words)\n\n",
		content.QualityScore, output.GradeStyle(content.Grade).Render(content.Grade), content.WordCount)

	renderHorizon("Immediate Actions", analysis.ActionPlan.Immediate)
	renderHorizon("Short-Term Actions", analysis.ActionPlan.ShortTerm)
	renderHorizon("Long-Term Actions", analysis.ActionPlan.LongTerm)

	if len(res.Tips) > 0 {
		fmt.Println(output.Section("Optimization Tips"))
		fmt.Println()
		for i, tip := range res.Tips {
			fmt.Printf(" %2d. %s\n", i+1, tip)
		}
		fmt.Println()
	}
}

func renderHorizon(title string, insights []insight.Insight) {
	if len(insights) == 0 {
		return
	}
	fmt.Println(output.Section(title))
	fmt.Println()
	for i, ins := range insights {
		label := strings.ToUpper(string(ins.Priority))
		styled := output.PriorityStyle(string(ins.Priority)).Render("[" + label + "]")
		fmt.Printf(" #%d %s %s\n", i+1, styled, output.StyleBold.Render(ins.Issue))
		fmt.Printf("    Impact: %.1f  |  Effort: %s  |  Category: %s\n", ins.ImpactScore, ins.Effort, ins.Category)
		fmt.Printf("    %s\n", ins.Recommendation)
		fmt.Println()
	}
}
