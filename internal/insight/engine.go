package insight

import (
	"github.com/insighthub/insighthub/internal/crawl"
	"github.com/insighthub/insighthub/internal/keyword"
)

// Analyze runs every generator over the collected measurements and
// assembles the complete result: per-source insight lists, the bucketed
// action plan, the overall score, and the flattened immediate
// recommendations. It is pure and never fails; degraded inputs simply
// produce fewer insights.
func Analyze(site crawl.PageMetrics, competitors []crawl.PageMetrics, keywords []keyword.Metric) AnalysisResult {
	siteInsights := SiteInsights(site)
	competitive := CompetitiveInsights(site, competitors)
	keywordInsights := KeywordInsights(keywords)

	all := make([]Insight, 0, len(siteInsights)+len(competitive)+len(keywordInsights))
	all = append(all, siteInsights...)
	all = append(all, competitive...)
	all = append(all, keywordInsights...)

	plan := BuildActionPlan(all)

	recs := make([]string, 0, len(plan.Immediate))
	for _, ins := range plan.Immediate {
		recs = append(recs, ins.Recommendation)
	}

	return AnalysisResult{
		SiteInsights:            siteInsights,
		CompetitiveInsights:     competitive,
		KeywordInsights:         keywordInsights,
		ActionPlan:              plan,
		OverallScore:            Score(all),
		PriorityRecommendations: recs,
	}
}
