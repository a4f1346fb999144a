package insight

import (
	"fmt"
	"strings"

	"github.com/insighthub/insighthub/internal/crawl"
	"github.com/insighthub/insighthub/internal/keyword"
)

// SiteInsights runs the four independent on-site checks against one page.
func SiteInsights(page crawl.PageMetrics) []Insight {
	var insights []Insight

	speed := AssessSpeed(page)
	content := AssessContent(page)

	if speed.NeedsOptimization {
		priority := PriorityMedium
		impact := 6.5
		if speed.Severity == "high" {
			priority = PriorityHigh
			impact = 8.5
		}
		insights = append(insights, Insight{
			Category: "Technical SEO",
			Priority: priority,
			Issue: fmt.Sprintf("Page load time is %.2f seconds (%s grade)",
				speed.LoadTime, speed.Grade),
			Recommendation: "Optimize images, enable gzip compression, use CDN, " +
				"minimize HTTP requests, and leverage browser caching",
			ImpactScore: impact,
			Effort:      EffortMedium,
			Confidence:  0.95,
		})
	}

	if content.QualityScore < 60 {
		priority := PriorityMedium
		if content.QualityScore < 40 {
			priority = PriorityHigh
		}
		insights = append(insights, Insight{
			Category: "Content Quality",
			Priority: priority,
			Issue:    fmt.Sprintf("Content quality score is %d/100", content.QualityScore),
			Recommendation: "Improve content depth, add more comprehensive information, " +
				"optimize headings structure, and ensure proper keyword usage",
			ImpactScore: 7.8,
			Effort:      EffortHigh,
			Confidence:  0.90,
		})
	}

	if !content.HasMeta {
		insights = append(insights, Insight{
			Category: "On-Page SEO",
			Priority: PriorityMedium,
			Issue:    "Missing meta description",
			Recommendation: "Add compelling meta descriptions (150-160 characters) " +
				"that include target keywords and encourage clicks",
			ImpactScore: 6.5,
			Effort:      EffortLow,
			Confidence:  0.98,
		})
	}

	if !content.HasTitle {
		insights = append(insights, Insight{
			Category: "On-Page SEO",
			Priority: PriorityHigh,
			Issue:    "Missing or inadequate title tag",
			Recommendation: "Create unique, descriptive title tags (50-60 characters) " +
				"with primary keywords near the beginning",
			ImpactScore: 9.0,
			Effort:      EffortLow,
			Confidence:  0.99,
		})
	}

	return insights
}

// CompetitiveInsights compares the site against the competitor averages.
// No competitors means no insights.
func CompetitiveInsights(site crawl.PageMetrics, competitors []crawl.PageMetrics) []Insight {
	if len(competitors) == 0 {
		return nil
	}

	var insights []Insight

	var totalLoad float64
	var totalWords int
	for _, c := range competitors {
		totalLoad += c.LoadTime
		totalWords += c.WordCount
	}
	avgLoad := totalLoad / float64(len(competitors))
	avgWords := float64(totalWords) / float64(len(competitors))

	if site.LoadTime > avgLoad*1.2 {
		insights = append(insights, Insight{
			Category: "Competitive Analysis",
			Priority: PriorityHigh,
			Issue: fmt.Sprintf("Your site loads %.1fs slower than competitor average",
				site.LoadTime-avgLoad),
			Recommendation: fmt.Sprintf(
				"Prioritize performance optimization to match competitor speed (target: %.1fs)",
				avgLoad),
			ImpactScore: 8.0,
			Effort:      EffortMedium,
			Confidence:  0.92,
		})
	}

	if float64(site.WordCount) < avgWords*0.7 {
		insights = append(insights, Insight{
			Category: "Content Strategy",
			Priority: PriorityMedium,
			Issue: fmt.Sprintf("Your content is %.0f words shorter than competitor average",
				avgWords-float64(site.WordCount)),
			Recommendation: fmt.Sprintf(
				"Expand content depth to match competitors (target: %.0f+ words)", avgWords),
			ImpactScore: 7.2,
			Effort:      EffortHigh,
			Confidence:  0.88,
		})
	}

	return insights
}

// KeywordInsights partitions keywords by search volume and surfaces the
// high-volume and long-tail opportunities. Keywords with unknown volume are
// skipped.
func KeywordInsights(metrics []keyword.Metric) []Insight {
	var insights []Insight

	var high, medium []keyword.Metric
	for _, m := range metrics {
		if !m.VolumeKnown {
			continue
		}
		switch {
		case m.SearchVolume > 1000:
			high = append(high, m)
		case m.SearchVolume >= 100:
			medium = append(medium, m)
		}
	}

	if len(high) > 0 {
		top := high
		if len(top) > 3 {
			top = top[:3]
		}
		names := make([]string, len(top))
		for i, m := range top {
			names[i] = m.Keyword
		}
		insights = append(insights, Insight{
			Category: "Keyword Strategy",
			Priority: PriorityHigh,
			Issue:    fmt.Sprintf("Found %d high-volume keyword opportunities", len(high)),
			Recommendation: fmt.Sprintf(
				"Target these high-impact keywords: %s. Optimize title tags, headings, and content.",
				strings.Join(names, ", ")),
			ImpactScore: 8.5,
			Effort:      EffortMedium,
			Confidence:  0.85,
		})
	}

	if len(medium) > 0 {
		insights = append(insights, Insight{
			Category: "Long-tail Strategy",
			Priority: PriorityMedium,
			Issue: fmt.Sprintf("Identified %d medium-volume long-tail opportunities",
				len(medium)),
			Recommendation: "Create dedicated content pieces targeting these long-tail " +
				"keywords for easier ranking",
			ImpactScore: 6.8,
			Effort:      EffortHigh,
			Confidence:  0.80,
		})
	}

	return insights
}
