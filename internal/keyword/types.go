// Package keyword researches search keywords: volume, difficulty, CPC, and
// related terms, with a deterministic simulated fallback when no provider
// is configured.
package keyword

// Metric holds the research data for a single keyword. VolumeKnown is false
// when the provider could not determine a search volume; SearchVolume is
// zero in that case and must not be compared against thresholds.
type Metric struct {
	Keyword      string   `json:"keyword"`
	SearchVolume int      `json:"search_volume"`
	VolumeKnown  bool     `json:"volume_known"`
	Difficulty   int      `json:"difficulty"` // 1-100, higher is harder
	CPC          float64  `json:"cpc"`
	Related      []string `json:"related_keywords"`
}

// Summary aggregates a batch of keyword metrics.
type Summary struct {
	TotalKeywords       int     `json:"total_keywords"`
	AvgSearchVolume     float64 `json:"avg_search_volume"`
	MaxSearchVolume     int     `json:"max_search_volume"`
	MinSearchVolume     int     `json:"min_search_volume"`
	AvgDifficulty       float64 `json:"avg_difficulty"`
	AvgCPC              float64 `json:"avg_cpc"`
	HighOpportunity     int     `json:"high_opportunity_count"` // difficulty < 40
	CompetitiveKeywords int     `json:"competitive_keywords"`   // difficulty > 70
}

// Summarize computes batch statistics from keyword metrics. Keywords with
// unknown volume are excluded from the volume figures but still counted.
func Summarize(metrics []Metric) Summary {
	s := Summary{TotalKeywords: len(metrics)}
	if len(metrics) == 0 {
		return s
	}

	var volSum, volCount int
	var diffSum, cpcSum float64
	for _, m := range metrics {
		if m.VolumeKnown {
			volSum += m.SearchVolume
			volCount++
			if m.SearchVolume > s.MaxSearchVolume {
				s.MaxSearchVolume = m.SearchVolume
			}
			if s.MinSearchVolume == 0 || m.SearchVolume < s.MinSearchVolume {
				s.MinSearchVolume = m.SearchVolume
			}
		}
		diffSum += float64(m.Difficulty)
		cpcSum += m.CPC
		if m.Difficulty < 40 {
			s.HighOpportunity++
		}
		if m.Difficulty > 70 {
			s.CompetitiveKeywords++
		}
	}

	if volCount > 0 {
		s.AvgSearchVolume = float64(volSum) / float64(volCount)
	}
	s.AvgDifficulty = diffSum / float64(len(metrics))
	s.AvgCPC = cpcSum / float64(len(metrics))
	return s
}
