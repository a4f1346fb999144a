package llm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/insighthub/insighthub/internal/crawl"
)

// AuditSystemPrompt frames the model as an SEO consultant producing a fixed
// number of actionable recommendations.
const AuditSystemPrompt = `You are an expert SEO consultant with 10+ years of experience.
Analyze the provided website data and give specific, actionable SEO recommendations.
Focus on high-impact improvements that can be implemented quickly.
Provide exactly 8-12 specific recommendations.`

// BuildAuditPrompt renders the page measurements into the user prompt for
// the SEO audit.
func BuildAuditPrompt(page crawl.PageMetrics) string {
	var sb strings.Builder

	sb.WriteString("Analyze this website's SEO performance and provide specific recommendations:\n\n")

	sb.WriteString("WEBSITE DATA:\n")
	sb.WriteString(fmt.Sprintf("- URL: %s\n", orMissing(page.URL, "N/A")))
	sb.WriteString(fmt.Sprintf("- Title: %s\n", orMissing(page.Title, "Missing")))
	sb.WriteString(fmt.Sprintf("- Meta Description: %s\n", orMissing(page.MetaDescription, "Missing")))
	sb.WriteString(fmt.Sprintf("- Page Load Time: %.2f seconds\n", page.LoadTime))
	sb.WriteString(fmt.Sprintf("- Word Count: %d words\n", page.WordCount))
	sb.WriteString(fmt.Sprintf("- Mobile Friendly: %v\n", page.MobileFriendly))
	sb.WriteString(fmt.Sprintf("- HTTPS: %v\n", page.HasSSL))
	sb.WriteString(fmt.Sprintf("- Image Count: %d\n", page.ImageCount))
	sb.WriteString(fmt.Sprintf("- Internal Links: %d\n", page.InternalLinks))
	sb.WriteString(fmt.Sprintf("- External Links: %d\n", page.ExternalLinks))
	sb.WriteString("\n")

	sb.WriteString("TECHNICAL DATA:\n")
	sb.WriteString(fmt.Sprintf("- Has Canonical URL: %v\n", page.HasCanonical))
	sb.WriteString(fmt.Sprintf("- Has Open Graph: %v\n", page.HasOGTags))
	sb.WriteString(fmt.Sprintf("- Has Schema Markup: %v\n", page.HasSchema))
	sb.WriteString(fmt.Sprintf("- Gzip Enabled: %v\n", page.HasGzip))
	sb.WriteString("\n")

	sb.WriteString("HEADING STRUCTURE:\n")
	sb.WriteString(formatHeadings(page.Headings))
	sb.WriteString("\n\n")

	sb.WriteString("REQUIREMENTS:\n")
	sb.WriteString("1. Identify the top 3 critical issues affecting SEO performance\n")
	sb.WriteString("2. Provide specific, actionable recommendations for each issue\n")
	sb.WriteString("3. Include technical SEO improvements where applicable\n")
	sb.WriteString("4. Suggest content optimization strategies\n")
	sb.WriteString("5. Recommend on-page SEO enhancements\n")
	sb.WriteString("6. Address mobile and performance concerns\n")
	sb.WriteString("7. Include competitive positioning advice\n")
	sb.WriteString("8. Provide implementation priority (High/Medium/Low)\n\n")
	sb.WriteString("Format each recommendation as a clear, actionable tip starting with an action verb.\n")

	return sb.String()
}

func formatHeadings(headings map[string]int) string {
	if len(headings) == 0 {
		return "No heading structure detected"
	}
	levels := make([]string, 0, len(headings))
	for level := range headings {
		levels = append(levels, level)
	}
	sort.Strings(levels)

	lines := make([]string, 0, len(levels))
	for _, level := range levels {
		lines = append(lines, fmt.Sprintf("  - %s: %d headings", strings.ToUpper(level), headings[level]))
	}
	return strings.Join(lines, "\n")
}

func orMissing(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
