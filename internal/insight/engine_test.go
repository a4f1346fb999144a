package insight

import (
	"testing"

	"github.com/insighthub/insighthub/internal/crawl"
	"github.com/insighthub/insighthub/internal/keyword"
)

func TestAnalyze_AssemblesAllSources(t *testing.T) {
	site := crawl.PageMetrics{LoadTime: 6.0, WordCount: 100}
	competitors := []crawl.PageMetrics{{LoadTime: 2.0, WordCount: 1000}}
	keywords := []keyword.Metric{{Keyword: "seo tools", SearchVolume: 5000, VolumeKnown: true}}

	result := Analyze(site, competitors, keywords)

	if len(result.SiteInsights) != 4 {
		t.Errorf("SiteInsights = %d, want 4", len(result.SiteInsights))
	}
	if len(result.CompetitiveInsights) != 2 {
		t.Errorf("CompetitiveInsights = %d, want 2", len(result.CompetitiveInsights))
	}
	if len(result.KeywordInsights) != 1 {
		t.Errorf("KeywordInsights = %d, want 1", len(result.KeywordInsights))
	}

	// High-priority insights fill the immediate bucket (capped at 4), and
	// the priority recommendations mirror it.
	if len(result.ActionPlan.Immediate) != 4 {
		t.Errorf("Immediate = %d, want 4", len(result.ActionPlan.Immediate))
	}
	if len(result.PriorityRecommendations) != len(result.ActionPlan.Immediate) {
		t.Errorf("PriorityRecommendations = %d, want %d",
			len(result.PriorityRecommendations), len(result.ActionPlan.Immediate))
	}
	for i, rec := range result.PriorityRecommendations {
		if rec != result.ActionPlan.Immediate[i].Recommendation {
			t.Errorf("recommendation %d does not match immediate bucket", i)
		}
	}

	if result.OverallScore < 0 || result.OverallScore > 100 {
		t.Errorf("OverallScore = %v, out of range", result.OverallScore)
	}
}

func TestAnalyze_HealthyEverything(t *testing.T) {
	site := crawl.PageMetrics{
		LoadTime:        1.0,
		WordCount:       1200,
		Title:           "Title",
		MetaDescription: "Desc",
		Headings:        map[string]int{"h1": 1},
	}

	result := Analyze(site, nil, nil)

	if result.OverallScore != 100 {
		t.Errorf("OverallScore = %v, want 100", result.OverallScore)
	}
	if len(result.PriorityRecommendations) != 0 {
		t.Errorf("expected no recommendations, got %v", result.PriorityRecommendations)
	}
}

func TestAnalyze_ErrorRecordStillProducesResult(t *testing.T) {
	// A failed fetch leaves zero values everywhere; analysis still runs.
	site := crawl.ErrorMetrics("https://example.com", "request failed")

	result := Analyze(site, nil, nil)

	// Missing meta and title fire; the zeroed headings map still earns the
	// content bonus, so quality lands at 20 and the content rule is High.
	if len(result.SiteInsights) != 3 {
		t.Fatalf("SiteInsights = %d, want 3", len(result.SiteInsights))
	}
	if result.SiteInsights[0].Category != "Content Quality" || result.SiteInsights[0].Priority != PriorityHigh {
		t.Errorf("unexpected first insight: %+v", result.SiteInsights[0])
	}
}
