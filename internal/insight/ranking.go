package insight

import (
	"fmt"
	"sort"
)

// Bucket capacities for the action plan.
const (
	maxImmediate = 4
	maxShortTerm = 4
	maxLongTerm  = 3
)

func rank(p Priority) int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	panic(fmt.Sprintf("insight: invalid priority %q", p))
}

// Rank returns a new slice sorted best-first: priority, then impact, then
// confidence, then recommendation length (longer wins). The input is not
// modified, and equal insights keep their relative order.
func Rank(insights []Insight) []Insight {
	ranked := make([]Insight, len(insights))
	copy(ranked, insights)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if ra, rb := rank(a.Priority), rank(b.Priority); ra != rb {
			return ra > rb
		}
		if a.ImpactScore != b.ImpactScore {
			return a.ImpactScore > b.ImpactScore
		}
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		return len(a.Recommendation) > len(b.Recommendation)
	})

	return ranked
}

// BuildActionPlan ranks the insights and buckets them by priority:
// High goes immediate, Medium short-term, Low long-term, each bucket
// capped. An insight lands in at most one bucket.
func BuildActionPlan(insights []Insight) ActionPlan {
	var plan ActionPlan
	for _, ins := range Rank(insights) {
		switch ins.Priority {
		case PriorityHigh:
			if len(plan.Immediate) < maxImmediate {
				plan.Immediate = append(plan.Immediate, ins)
			}
		case PriorityMedium:
			if len(plan.ShortTerm) < maxShortTerm {
				plan.ShortTerm = append(plan.ShortTerm, ins)
			}
		case PriorityLow:
			if len(plan.LongTerm) < maxLongTerm {
				plan.LongTerm = append(plan.LongTerm, ins)
			}
		}
	}
	return plan
}

// Score computes the overall SEO health score. Each insight subtracts a
// penalty sized by how far its impact falls short of its priority ceiling;
// the result is clamped to [0, 100]. No insights means a perfect 100.
func Score(insights []Insight) float64 {
	score := 100.0
	for _, ins := range insights {
		switch ins.Priority {
		case PriorityHigh:
			score -= 10 - ins.ImpactScore
		case PriorityMedium:
			score -= (8 - ins.ImpactScore) * 0.7
		case PriorityLow:
			score -= (6 - ins.ImpactScore) * 0.4
		default:
			panic(fmt.Sprintf("insight: invalid priority %q", ins.Priority))
		}
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
