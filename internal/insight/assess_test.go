package insight

import (
	"testing"

	"github.com/insighthub/insighthub/internal/crawl"
)

func TestAssessSpeed_Grades(t *testing.T) {
	tests := []struct {
		loadTime     float64
		wantGrade    string
		wantNeedsOpt bool
		wantSeverity string
	}{
		{0.5, "A", false, "low"},
		{1.99, "A", false, "low"},
		{2.0, "B", false, "low"},
		{2.5, "B", false, "low"},
		{3.5, "C", true, "medium"},
		{4.99, "C", true, "medium"},
		{5.0, "F", true, "medium"},
		{6.0, "F", true, "high"},
	}

	for _, tc := range tests {
		got := AssessSpeed(crawl.PageMetrics{LoadTime: tc.loadTime})
		if got.Grade != tc.wantGrade {
			t.Errorf("AssessSpeed(%.2f).Grade = %q, want %q", tc.loadTime, got.Grade, tc.wantGrade)
		}
		if got.NeedsOptimization != tc.wantNeedsOpt {
			t.Errorf("AssessSpeed(%.2f).NeedsOptimization = %v, want %v", tc.loadTime, got.NeedsOptimization, tc.wantNeedsOpt)
		}
		if got.Severity != tc.wantSeverity {
			t.Errorf("AssessSpeed(%.2f).Severity = %q, want %q", tc.loadTime, got.Severity, tc.wantSeverity)
		}
	}
}

func TestAssessSpeed_ZeroValue(t *testing.T) {
	got := AssessSpeed(crawl.PageMetrics{})
	if got.Grade != "A" || got.NeedsOptimization || got.Severity != "low" {
		t.Errorf("zero-value page should grade A/low, got %+v", got)
	}
}

func TestAssessContent_WordTiers(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{0, 0},
		{200, 0},
		{201, 10},
		{500, 10},
		{501, 25},
		{800, 25},
		{801, 40},
	}

	for _, tc := range tests {
		got := AssessContent(crawl.PageMetrics{WordCount: tc.words})
		if got.QualityScore != tc.want {
			t.Errorf("AssessContent(words=%d).QualityScore = %d, want %d", tc.words, got.QualityScore, tc.want)
		}
	}
}

func TestAssessContent_Bonuses(t *testing.T) {
	page := crawl.PageMetrics{
		WordCount:       900,
		Title:           "Welcome",
		MetaDescription: "A description",
		Headings:        map[string]int{"h1": 1},
	}
	got := AssessContent(page)
	if got.QualityScore != 100 {
		t.Errorf("QualityScore = %d, want 100", got.QualityScore)
	}
	if got.Grade != "Excellent" {
		t.Errorf("Grade = %q, want Excellent", got.Grade)
	}
}

func TestAssessContent_HeadingsBonusCountsZeroedMap(t *testing.T) {
	// A map with all-zero counts still counts as heading data present.
	page := crawl.PageMetrics{Headings: map[string]int{"h1": 0, "h2": 0}}
	got := AssessContent(page)
	if !got.HasHeadings {
		t.Error("expected HasHeadings for non-empty map")
	}
	if got.QualityScore != 20 {
		t.Errorf("QualityScore = %d, want 20", got.QualityScore)
	}
}

func TestAssessContent_Grades(t *testing.T) {
	tests := []struct {
		page  crawl.PageMetrics
		grade string
	}{
		{crawl.PageMetrics{WordCount: 900, Title: "t", MetaDescription: "m"}, "Excellent"}, // 80
		{crawl.PageMetrics{WordCount: 900, Title: "t"}, "Good"},                            // 60
		{crawl.PageMetrics{WordCount: 600, Title: "t"}, "Fair"},                            // 45
		{crawl.PageMetrics{WordCount: 250}, "Poor"},                                        // 10
	}

	for _, tc := range tests {
		got := AssessContent(tc.page)
		if got.Grade != tc.grade {
			t.Errorf("AssessContent(%+v).Grade = %q (score %d), want %q", tc.page, got.Grade, got.QualityScore, tc.grade)
		}
	}
}
