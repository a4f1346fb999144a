// Package report assembles and renders analysis reports.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/insighthub/insighthub/internal/insight"
	"github.com/insighthub/insighthub/internal/pipeline"
)

// Report is a complete analysis run plus identifying metadata.
type Report struct {
	ID          string          `json:"id"`
	URL         string          `json:"url"`
	GeneratedAt time.Time       `json:"generated_at"`
	Result      pipeline.Result `json:"result"`
}

// Options selects which sections a rendered report includes. The zero
// value renders nothing useful; use DefaultOptions.
type Options struct {
	ExecutiveSummary bool
	ActionPlan       bool
	DetailedInsights bool
	TechnicalData    bool
	Tips             bool
}

// DefaultOptions enables every section.
func DefaultOptions() Options {
	return Options{
		ExecutiveSummary: true,
		ActionPlan:       true,
		DetailedInsights: true,
		TechnicalData:    true,
		Tips:             true,
	}
}

// Assemble builds a Report with a fresh run ID.
func Assemble(url string, result pipeline.Result) Report {
	return Report{
		ID:          uuid.NewString(),
		URL:         url,
		GeneratedAt: time.Now().UTC(),
		Result:      result,
	}
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// RenderMarkdown renders the report sections selected by opts.
func RenderMarkdown(r Report, opts Options) string {
	var sb strings.Builder
	res := r.Result
	analysis := res.Analysis

	sb.WriteString(fmt.Sprintf("# SEO Analysis Report: %s\n\n", r.URL))
	sb.WriteString(fmt.Sprintf("Report ID: %s  \n", r.ID))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04 MST")))

	if opts.ExecutiveSummary {
		sb.WriteString("## Executive Summary\n\n")
		sb.WriteString(fmt.Sprintf("**Overall SEO Score: %.1f/100**\n\n", analysis.OverallScore))
		total := len(analysis.SiteInsights) + len(analysis.CompetitiveInsights) + len(analysis.KeywordInsights)
		sb.WriteString(fmt.Sprintf("%d insights identified (%d site, %d competitive, %d keyword).\n\n",
			total, len(analysis.SiteInsights), len(analysis.CompetitiveInsights), len(analysis.KeywordInsights)))
		if len(analysis.PriorityRecommendations) > 0 {
			sb.WriteString("Top priorities:\n\n")
			for _, rec := range analysis.PriorityRecommendations {
				sb.WriteString(fmt.Sprintf("- %s\n", rec))
			}
			sb.WriteString("\n")
		}
	}

	if opts.ActionPlan {
		sb.WriteString("## Action Plan\n\n")
		writeHorizon(&sb, "Immediate Actions", analysis.ActionPlan.Immediate)
		writeHorizon(&sb, "Short-Term Actions", analysis.ActionPlan.ShortTerm)
		writeHorizon(&sb, "Long-Term Actions", analysis.ActionPlan.LongTerm)
	}

	if opts.DetailedInsights {
		sb.WriteString("## Detailed Insights\n\n")
		writeInsightSection(&sb, "Site Analysis", analysis.SiteInsights)
		writeInsightSection(&sb, "Competitive Analysis", analysis.CompetitiveInsights)
		writeInsightSection(&sb, "Keyword Analysis", analysis.KeywordInsights)
	}

	if opts.Tips && len(res.Tips) > 0 {
		sb.WriteString("## Optimization Tips\n\n")
		for i, tip := range res.Tips {
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, tip))
		}
		sb.WriteString("\n")
	}

	if opts.TechnicalData {
		sb.WriteString("## Technical Data\n\n")
		site := res.Site
		sb.WriteString("| Metric | Value |\n|---|---|\n")
		sb.WriteString(fmt.Sprintf("| Status code | %d |\n", site.StatusCode))
		sb.WriteString(fmt.Sprintf("| Load time | %.2fs |\n", site.LoadTime))
		sb.WriteString(fmt.Sprintf("| Word count | %d |\n", site.WordCount))
		sb.WriteString(fmt.Sprintf("| Title | %s |\n", orDash(site.Title)))
		sb.WriteString(fmt.Sprintf("| Meta description | %s |\n", orDash(site.MetaDescription)))
		sb.WriteString(fmt.Sprintf("| H1 count | %d |\n", site.Headings["h1"]))
		sb.WriteString(fmt.Sprintf("| Images | %d |\n", site.ImageCount))
		sb.WriteString(fmt.Sprintf("| Internal links | %d |\n", site.InternalLinks))
		sb.WriteString(fmt.Sprintf("| External links | %d |\n", site.ExternalLinks))
		sb.WriteString(fmt.Sprintf("| Mobile friendly | %v |\n", site.MobileFriendly))
		sb.WriteString(fmt.Sprintf("| HTTPS | %v |\n", site.HasSSL))
		sb.WriteString(fmt.Sprintf("| Canonical | %v |\n", site.HasCanonical))
		sb.WriteString(fmt.Sprintf("| Open Graph | %v |\n", site.HasOGTags))
		sb.WriteString(fmt.Sprintf("| Schema markup | %v |\n", site.HasSchema))
		sb.WriteString(fmt.Sprintf("| Gzip | %v |\n", site.HasGzip))
		sb.WriteString("\n")

		if res.KeywordSummary.TotalKeywords > 0 {
			ks := res.KeywordSummary
			sb.WriteString("### Keyword Summary\n\n")
			sb.WriteString(fmt.Sprintf("- Keywords researched: %d\n", ks.TotalKeywords))
			sb.WriteString(fmt.Sprintf("- Average search volume: %.0f\n", ks.AvgSearchVolume))
			sb.WriteString(fmt.Sprintf("- Average difficulty: %.0f/100\n", ks.AvgDifficulty))
			sb.WriteString(fmt.Sprintf("- Average CPC: $%.2f\n", ks.AvgCPC))
			sb.WriteString(fmt.Sprintf("- High-opportunity keywords: %d\n", ks.HighOpportunity))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func writeHorizon(sb *strings.Builder, title string, insights []insight.Insight) {
	sb.WriteString(fmt.Sprintf("### %s\n\n", title))
	if len(insights) == 0 {
		sb.WriteString("None.\n\n")
		return
	}
	for _, ins := range insights {
		sb.WriteString(fmt.Sprintf("- **[%s]** %s (impact %.1f, effort %s)\n",
			ins.Category, ins.Recommendation, ins.ImpactScore, ins.Effort))
	}
	sb.WriteString("\n")
}

func writeInsightSection(sb *strings.Builder, title string, insights []insight.Insight) {
	sb.WriteString(fmt.Sprintf("### %s\n\n", title))
	if len(insights) == 0 {
		sb.WriteString("No issues found.\n\n")
		return
	}
	for _, ins := range insights {
		sb.WriteString(fmt.Sprintf("**%s** (%s priority)\n\n", ins.Category, ins.Priority))
		sb.WriteString(fmt.Sprintf("Issue: %s\n\n", ins.Issue))
		sb.WriteString(fmt.Sprintf("Recommendation: %s\n\n", ins.Recommendation))
		sb.WriteString(fmt.Sprintf("Impact %.1f, effort %s, confidence %.0f%%\n\n",
			ins.ImpactScore, ins.Effort, ins.Confidence*100))
	}
}

func orDash(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
