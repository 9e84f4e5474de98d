// Package adaptive classifies concepts as weak or strong from recorded
// performance and assembles question mixes biased toward weak concepts.
package adaptive

import (
	"sort"

	"github.com/studialabs/studia/internal/concept"
)

// Performance is one concept's recorded performance.
type Performance struct {
	MasteryLevel int `json:"masteryLevel"`
	Attempts     int `json:"attempts"`
}

// PerformanceMap maps concept id to recorded performance. Concepts absent
// from the map read as zero performance.
type PerformanceMap map[string]Performance

const (
	weakThreshold   = 70
	strongThreshold = 80
)

// WeakAreas returns the concepts needing focus: mastery below 70 or never
// attempted, sorted ascending by mastery. A concept with no record is
// always weak, so new material lands at the front of the mix.
func WeakAreas(concepts []*concept.Concept, perf PerformanceMap) []*concept.Concept {
	var weak []*concept.Concept
	for _, c := range concepts {
		p := perf[c.ID]
		if p.MasteryLevel < weakThreshold || p.Attempts == 0 {
			weak = append(weak, c)
		}
	}
	sort.SliceStable(weak, func(i, j int) bool {
		return perf[weak[i].ID].MasteryLevel < perf[weak[j].ID].MasteryLevel
	})
	return weak
}

// StrongAreas returns the concepts with mastery of 80 or above, sorted
// descending by mastery. Unattempted concepts are never strong.
func StrongAreas(concepts []*concept.Concept, perf PerformanceMap) []*concept.Concept {
	var strong []*concept.Concept
	for _, c := range concepts {
		if perf[c.ID].MasteryLevel >= strongThreshold {
			strong = append(strong, c)
		}
	}
	sort.SliceStable(strong, func(i, j int) bool {
		return perf[strong[i].ID].MasteryLevel > perf[strong[j].ID].MasteryLevel
	})
	return strong
}

// AdjustDifficulty picks the generation difficulty for a concept from its
// recorded mastery, ignoring the concept's static difficulty. Boundaries
// resolve upward: 40 is Intermediate, 70 is Advanced.
func AdjustDifficulty(c *concept.Concept, perf PerformanceMap) concept.Difficulty {
	mastery := perf[c.ID].MasteryLevel
	switch {
	case mastery < 40:
		return concept.Beginner
	case mastery < 70:
		return concept.Intermediate
	default:
		return concept.Advanced
	}
}
