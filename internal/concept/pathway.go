package concept

import (
	"sort"
	"strings"
)

// PathwayEntry is one position in a learning pathway.
type PathwayEntry struct {
	Concept Concept `json:"concept"`

	// Order is the 1-based position after the dependency sort.
	Order int `json:"order"`

	// IsUnlocked is true only for the first entry initially. Unlocking
	// later entries is driven by assessment results.
	IsUnlocked bool `json:"isUnlocked"`

	// Dependencies are ids of other concepts in the same pathway whose
	// name or sub-concepts match one of this concept's prerequisite
	// strings. Informational only; never used for traversal.
	Dependencies []string `json:"dependencies"`
}

// Pathway is an ordered, dependency-annotated sequence of concepts.
// It is derived state: rebuilt whenever the concept list changes.
type Pathway struct {
	Entries            []PathwayEntry `json:"entries"`
	TotalEstimatedTime string         `json:"totalEstimatedTime"`
}

// BuildPathway orders concepts into a pathway: primary key difficulty rank
// ascending, tie-break prerequisite count ascending, original order
// preserved among full ties. Only the first concept starts unlocked.
func BuildPathway(concepts []Concept) *Pathway {
	sorted := make([]Concept, len(concepts))
	copy(sorted, concepts)

	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := sorted[i].Difficulty.Rank(), sorted[j].Difficulty.Rank()
		if ri != rj {
			return ri < rj
		}
		return len(sorted[i].Prerequisites) < len(sorted[j].Prerequisites)
	})

	entries := make([]PathwayEntry, len(sorted))
	totalMinutes := 0
	for i, c := range sorted {
		entries[i] = PathwayEntry{
			Concept:      c,
			Order:        i + 1,
			IsUnlocked:   i == 0,
			Dependencies: resolveDependencies(c, sorted),
		}
		totalMinutes += ParseTimeToMinutes(c.EstimatedTime)
	}

	total := "0 min"
	if len(entries) > 0 {
		total = FormatMinutesToTime(totalMinutes)
	}

	return &Pathway{Entries: entries, TotalEstimatedTime: total}
}

// resolveDependencies fuzzy-links a concept's prerequisite strings to other
// concepts: a dependency exists when any prerequisite is a case-insensitive
// substring of the other concept's name or one of its sub-concepts.
// Zero or multiple matches per prerequisite are both valid outcomes, and no
// cycle detection is needed since dependencies are informational.
func resolveDependencies(c Concept, all []Concept) []string {
	var deps []string
	for _, o := range all {
		if o.ID == c.ID {
			continue
		}
		if matchesPrerequisite(c.Prerequisites, o) {
			deps = append(deps, o.ID)
		}
	}
	return deps
}

func matchesPrerequisite(prereqs []string, o Concept) bool {
	for _, p := range prereqs {
		needle := strings.ToLower(strings.TrimSpace(p))
		if needle == "" {
			continue
		}
		if strings.Contains(strings.ToLower(o.Name), needle) {
			return true
		}
		for _, sub := range o.SubConcepts {
			if strings.Contains(strings.ToLower(sub), needle) {
				return true
			}
		}
	}
	return false
}
