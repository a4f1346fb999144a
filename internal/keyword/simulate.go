package keyword

import (
	"hash/fnv"
	"math"
	"strings"
)

// hashOf gives a stable pseudo-random value for a keyword under a named
// dimension, so simulated metrics are reproducible across runs.
func hashOf(kw, dimension string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(strings.ToLower(kw)))
	h.Write([]byte{0})
	h.Write([]byte(dimension))
	return h.Sum64()
}

// Simulate produces deterministic keyword metrics derived from the keyword
// text. Shorter keywords get higher volumes; phrases of three or more words
// get eased difficulty, mirroring real long-tail behavior.
func Simulate(kw string) Metric {
	words := len(strings.Fields(kw))

	base := 2000
	switch words {
	case 1:
		base = 10000
	case 2:
		base = 5000
	}
	variation := int(hashOf(kw, "volume")%uint64(base)) - base/2
	volume := base + variation
	if volume < 100 {
		volume = 100
	}

	difficulty := 20 + int(hashOf(kw, "difficulty")%71) // 20-90
	if words > 2 {
		difficulty -= 20
		if difficulty < 10 {
			difficulty = 10
		}
	}

	// CPC in the 0.25-4.50 range, two decimal places.
	cpc := 0.25 + float64(hashOf(kw, "cpc")%426)/100.0
	cpc = math.Round(cpc*100) / 100

	return Metric{
		Keyword:      kw,
		SearchVolume: volume,
		VolumeKnown:  true,
		Difficulty:   difficulty,
		CPC:          cpc,
		Related:      RelatedKeywords(kw),
	}
}
