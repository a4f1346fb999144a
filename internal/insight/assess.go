package insight

import "github.com/insighthub/insighthub/internal/crawl"

// AssessSpeed grades page load time. Thresholds: A under 2s, B under 3s,
// C under 5s, otherwise F. Anything over 3s needs optimization.
func AssessSpeed(page crawl.PageMetrics) SpeedAssessment {
	lt := page.LoadTime

	grade := "F"
	switch {
	case lt < 2:
		grade = "A"
	case lt < 3:
		grade = "B"
	case lt < 5:
		grade = "C"
	}

	severity := "low"
	switch {
	case lt > 5:
		severity = "high"
	case lt > 3:
		severity = "medium"
	}

	return SpeedAssessment{
		LoadTime:          lt,
		Grade:             grade,
		NeedsOptimization: lt > 3,
		Severity:          severity,
	}
}

// AssessContent scores content quality 0-100 from word count and the
// presence of the basic on-page elements.
func AssessContent(page crawl.PageMetrics) ContentAssessment {
	score := 0
	switch {
	case page.WordCount > 800:
		score += 40
	case page.WordCount > 500:
		score += 25
	case page.WordCount > 200:
		score += 10
	}

	hasMeta := page.MetaDescription != ""
	hasTitle := page.Title != ""
	hasHeadings := len(page.Headings) > 0

	if hasMeta {
		score += 20
	}
	if hasTitle {
		score += 20
	}
	if hasHeadings {
		score += 20
	}

	grade := "Poor"
	switch {
	case score >= 80:
		grade = "Excellent"
	case score >= 60:
		grade = "Good"
	case score >= 40:
		grade = "Fair"
	}

	return ContentAssessment{
		WordCount:    page.WordCount,
		QualityScore: score,
		Grade:        grade,
		HasMeta:      hasMeta,
		HasTitle:     hasTitle,
		HasHeadings:  hasHeadings,
	}
}
