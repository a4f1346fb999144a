// Package insight turns raw page, competitor, and keyword measurements into
// a ranked, scored SEO action plan.
package insight

// Priority classifies how urgent an insight is. Only the three values below
// are valid; ranking panics on anything else.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Effort estimates the work required to act on an insight.
type Effort string

const (
	EffortLow    Effort = "Low"
	EffortMedium Effort = "Medium"
	EffortHigh   Effort = "High"
)

// Action plan horizons.
const (
	HorizonImmediate = "immediate"
	HorizonShortTerm = "short_term"
	HorizonLongTerm  = "long_term"
)

// Insight is one actionable SEO recommendation with its scoring metadata.
type Insight struct {
	Category       string   `json:"category"`
	Priority       Priority `json:"priority"`
	Issue          string   `json:"issue"`
	Recommendation string   `json:"recommendation"`
	ImpactScore    float64  `json:"impact_score"`
	Effort         Effort   `json:"effort"`
	Confidence     float64  `json:"confidence"`
}

// ActionPlan buckets ranked insights by execution horizon. The buckets are
// capped at 4, 4, and 3 entries respectively.
type ActionPlan struct {
	Immediate []Insight `json:"immediate"`
	ShortTerm []Insight `json:"short_term"`
	LongTerm  []Insight `json:"long_term"`
}

// AnalysisResult is the full outcome of one analysis run.
type AnalysisResult struct {
	SiteInsights            []Insight  `json:"site_insights"`
	CompetitiveInsights     []Insight  `json:"competitive_insights"`
	KeywordInsights         []Insight  `json:"keyword_insights"`
	ActionPlan              ActionPlan `json:"action_plan"`
	OverallScore            float64    `json:"overall_score"`
	PriorityRecommendations []string   `json:"priority_recommendations"`
}

// SpeedAssessment summarizes page load performance.
type SpeedAssessment struct {
	LoadTime          float64 `json:"load_time"`
	Grade             string  `json:"grade"`
	NeedsOptimization bool    `json:"needs_optimization"`
	Severity          string  `json:"severity"`
}

// ContentAssessment summarizes on-page content quality as a 0-100 score.
type ContentAssessment struct {
	WordCount    int    `json:"word_count"`
	QualityScore int    `json:"quality_score"`
	Grade        string `json:"grade"`
	HasMeta      bool   `json:"has_meta"`
	HasTitle     bool   `json:"has_title"`
	HasHeadings  bool   `json:"has_headings"`
}
