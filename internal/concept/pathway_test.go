package concept

import (
	"testing"
)

func testConcept(id, name string, diff Difficulty, prereqs ...string) Concept {
	return Concept{
		ID:            id,
		Name:          name,
		Difficulty:    diff,
		Prerequisites: prereqs,
		EstimatedTime: "15 min",
	}
}

func TestBuildPathway_OrdersByDifficultyThenPrereqCount(t *testing.T) {
	concepts := []Concept{
		testConcept("c1", "Advanced topic", Advanced, "a", "b"),
		testConcept("c2", "Basics", Beginner),
		testConcept("c3", "Middle heavy", Intermediate, "x", "y"),
		testConcept("c4", "Middle light", Intermediate, "x"),
	}

	p := BuildPathway(concepts)

	wantIDs := []string{"c2", "c4", "c3", "c1"}
	for i, want := range wantIDs {
		if got := p.Entries[i].Concept.ID; got != want {
			t.Errorf("entry %d = %s, want %s", i, got, want)
		}
	}

	// Ranks must be non-decreasing along the pathway.
	for i := 1; i < len(p.Entries); i++ {
		prev := p.Entries[i-1].Concept.Difficulty.Rank()
		cur := p.Entries[i].Concept.Difficulty.Rank()
		if cur < prev {
			t.Errorf("rank decreases at entry %d: %d -> %d", i, prev, cur)
		}
	}
}

func TestBuildPathway_StableAmongTies(t *testing.T) {
	concepts := []Concept{
		testConcept("first", "First", Beginner),
		testConcept("second", "Second", Beginner),
		testConcept("third", "Third", Beginner),
	}

	p := BuildPathway(concepts)

	for i, want := range []string{"first", "second", "third"} {
		if got := p.Entries[i].Concept.ID; got != want {
			t.Errorf("entry %d = %s, want %s", i, got, want)
		}
	}
}

func TestBuildPathway_UnknownDifficultyRanksIntermediate(t *testing.T) {
	concepts := []Concept{
		testConcept("adv", "Adv", Advanced),
		testConcept("odd", "Odd", Difficulty("Expert")),
		testConcept("beg", "Beg", Beginner),
	}

	p := BuildPathway(concepts)

	for i, want := range []string{"beg", "odd", "adv"} {
		if got := p.Entries[i].Concept.ID; got != want {
			t.Errorf("entry %d = %s, want %s", i, got, want)
		}
	}
}

func TestBuildPathway_OnlyFirstUnlocked(t *testing.T) {
	concepts := []Concept{
		testConcept("c1", "One", Beginner),
		testConcept("c2", "Two", Intermediate),
		testConcept("c3", "Three", Advanced),
	}

	p := BuildPathway(concepts)

	for i, e := range p.Entries {
		want := i == 0
		if e.IsUnlocked != want {
			t.Errorf("entry %d unlocked = %v, want %v", i, e.IsUnlocked, want)
		}
		if e.Order != i+1 {
			t.Errorf("entry %d order = %d, want %d", i, e.Order, i+1)
		}
	}
}

func TestBuildPathway_ResolvesDependencies(t *testing.T) {
	concepts := []Concept{
		testConcept("vars", "Variables", Beginner),
		{
			ID:            "funcs",
			Name:          "Functions",
			Difficulty:    Intermediate,
			Prerequisites: []string{"variables"},
			EstimatedTime: "20 min",
		},
		{
			ID:            "closures",
			Name:          "Closures",
			Difficulty:    Advanced,
			Prerequisites: []string{"scope"},
			EstimatedTime: "20 min",
		},
		{
			ID:            "scoping",
			Name:          "Names and binding",
			SubConcepts:   []string{"Lexical scope"},
			Difficulty:    Intermediate,
			EstimatedTime: "10 min",
		},
	}

	p := BuildPathway(concepts)

	deps := map[string][]string{}
	for _, e := range p.Entries {
		deps[e.Concept.ID] = e.Dependencies
	}

	if len(deps["funcs"]) != 1 || deps["funcs"][0] != "vars" {
		t.Errorf("funcs deps = %v, want [vars]", deps["funcs"])
	}
	// "scope" matches the Lexical scope sub-concept.
	if len(deps["closures"]) != 1 || deps["closures"][0] != "scoping" {
		t.Errorf("closures deps = %v, want [scoping]", deps["closures"])
	}
	if len(deps["vars"]) != 0 {
		t.Errorf("vars deps = %v, want none", deps["vars"])
	}
}

func TestBuildPathway_DependencyNeverSelf(t *testing.T) {
	concepts := []Concept{
		{
			ID:            "rec",
			Name:          "Recursion",
			Difficulty:    Advanced,
			Prerequisites: []string{"recursion"},
			EstimatedTime: "30 min",
		},
	}

	p := BuildPathway(concepts)

	if len(p.Entries[0].Dependencies) != 0 {
		t.Errorf("self-dependency resolved: %v", p.Entries[0].Dependencies)
	}
}

func TestBuildPathway_TotalTime(t *testing.T) {
	concepts := []Concept{
		testConcept("c1", "One", Beginner),                    // 15 min
		{ID: "c2", Name: "Two", EstimatedTime: "1 hour"},      // 60 min
		{ID: "c3", Name: "Three", EstimatedTime: "not a time"}, // default 15
	}

	p := BuildPathway(concepts)

	if p.TotalEstimatedTime != "1h 30min" {
		t.Errorf("total = %q, want 1h 30min", p.TotalEstimatedTime)
	}
}

func TestBuildPathway_Empty(t *testing.T) {
	p := BuildPathway(nil)

	if len(p.Entries) != 0 {
		t.Fatalf("entries = %d", len(p.Entries))
	}
	if p.TotalEstimatedTime != "0 min" {
		t.Errorf("total = %q, want 0 min", p.TotalEstimatedTime)
	}
}

func TestBuildPathway_DoesNotMutateInput(t *testing.T) {
	concepts := []Concept{
		testConcept("adv", "Adv", Advanced),
		testConcept("beg", "Beg", Beginner),
	}

	BuildPathway(concepts)

	if concepts[0].ID != "adv" || concepts[1].ID != "beg" {
		t.Errorf("input reordered: %s, %s", concepts[0].ID, concepts[1].ID)
	}
}

func TestDistribution(t *testing.T) {
	concepts := []Concept{
		testConcept("a", "A", Beginner),
		testConcept("b", "B", Beginner),
		testConcept("c", "C", Advanced),
		testConcept("d", "D", Difficulty("Expert")),
	}

	dist := Distribution(concepts)

	if len(dist) != 3 {
		t.Fatalf("bucket count = %d, want 3", len(dist))
	}
	if dist[Beginner] != 2 || dist[Intermediate] != 0 || dist[Advanced] != 1 {
		t.Errorf("distribution = %v", dist)
	}
}
