// Package tips produces the free-text SEO tip list: rule-based tips from
// page measurements, optionally merged with AI-generated tips.
package tips

import (
	"context"
	"fmt"
	"strings"

	"github.com/insighthub/insighthub/internal/crawl"
	"github.com/insighthub/insighthub/internal/llm"
)

// MaxTips caps every tip list.
const MaxTips = 12

const minTipLength = 30

// Bullet tokens stripped from the front of model output lines. At most one
// is removed per line.
var bulletPrefixes = []string{". ", ") ", "- ", "* ", "• "}

// Source produces free-text suggestions. The zero-config variant is
// Unavailable; the real one is *llm.Client.
type Source interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Unavailable is the Source used when no model is configured. Every call
// fails, which Generate treats as "use rule-based tips only".
type Unavailable struct{}

// Complete always reports that no model is configured.
func (Unavailable) Complete(context.Context, string, string) (string, error) {
	return "", fmt.Errorf("no language model configured")
}

// Parse extracts tips from raw model output: one candidate per line,
// leading bullet or numbering token stripped, short lines dropped. Input
// order is preserved.
func Parse(text string) []string {
	var tips []string
	for _, line := range strings.Split(text, "\n") {
		clean := strings.TrimSpace(line)
		for _, prefix := range bulletPrefixes {
			if strings.HasPrefix(clean, prefix) {
				clean = clean[len(prefix):]
				break
			}
		}
		if len(clean) >= minTipLength {
			tips = append(tips, clean)
		}
	}
	return tips
}

// Dedupe removes near-duplicate tips. Two tips collide when their first 50
// characters match case-insensitively; the first occurrence wins.
func Dedupe(tips []string) []string {
	var unique []string
	seen := make(map[string]bool)
	for _, tip := range tips {
		key := strings.ToLower(tip)
		if r := []rune(key); len(r) > 50 {
			key = string(r[:50])
		}
		if !seen[key] {
			seen[key] = true
			unique = append(unique, tip)
		}
	}
	return unique
}

// RuleBased derives tips from the page measurements alone. Always
// available, capped at MaxTips.
func RuleBased(page crawl.PageMetrics) []string {
	var tips []string

	if page.Title == "" {
		tips = append(tips, "Add a proper title tag with target keywords (50-60 characters)")
	} else if len(page.Title) > 60 {
		tips = append(tips, "Shorten title tag to under 60 characters for better display in search results")
	}

	if page.MetaDescription == "" {
		tips = append(tips, "Add a compelling meta description (150-160 characters) to improve click-through rates")
	} else if len(page.MetaDescription) > 160 {
		tips = append(tips, "Shorten meta description to under 160 characters for better search results display")
	}

	if !page.MobileFriendly {
		tips = append(tips, "Optimize website for mobile devices (Google uses mobile-first indexing)")
	}

	if !page.HasSSL {
		tips = append(tips, "Install SSL certificate to enable HTTPS (ranking factor and improves security)")
	}

	if page.LoadTime > 3 {
		tips = append(tips, fmt.Sprintf("Improve page load time (current: %.1fs, target: under 3s)", page.LoadTime))
	}

	if page.WordCount < 300 {
		tips = append(tips, "Increase content length (aim for at least 300 words for better ranking potential)")
	} else if page.WordCount > 1500 {
		tips = append(tips, "Consider breaking up long content into multiple pages or adding better content structure")
	}

	h1 := page.Headings["h1"]
	if h1 == 0 {
		tips = append(tips, "Add a single H1 tag with primary keywords")
	} else if h1 > 1 {
		tips = append(tips, "Reduce to only one H1 tag per page for better SEO structure")
	}

	if page.ImageCount > 0 {
		tips = append(tips, "Add alt text to all images for accessibility and SEO benefits")
	}

	if page.InternalLinks < 5 {
		tips = append(tips, "Add more internal links to important pages to improve site structure and link equity flow")
	}

	if len(tips) > MaxTips {
		tips = tips[:MaxTips]
	}
	return tips
}

// Generate merges AI tips with the rule-based baseline: AI tips first,
// deduped, capped at MaxTips. Any source failure silently degrades to
// rule-based tips only.
func Generate(ctx context.Context, src Source, page crawl.PageMetrics) []string {
	ruleTips := RuleBased(page)

	text, err := src.Complete(ctx, llm.AuditSystemPrompt, llm.BuildAuditPrompt(page))
	if err != nil {
		return ruleTips
	}

	merged := Dedupe(append(Parse(text), ruleTips...))
	if len(merged) > MaxTips {
		merged = merged[:MaxTips]
	}
	return merged
}
