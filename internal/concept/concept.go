// Package concept holds the learning-concept model and the pathway logic:
// difficulty-ordered, prerequisite-annotated sequences of concepts derived
// from a content analysis.
package concept

// Difficulty is a concept difficulty label.
type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// Rank maps a difficulty label to its sort rank. Unknown labels rank with
// Intermediate so malformed analyzer output lands in the middle of the
// pathway instead of at either end.
func (d Difficulty) Rank() int {
	switch d {
	case Beginner:
		return 1
	case Intermediate:
		return 2
	case Advanced:
		return 3
	default:
		return 2
	}
}

// Known reports whether the label is one of the three canonical values.
func (d Difficulty) Known() bool {
	return d == Beginner || d == Intermediate || d == Advanced
}

// Concept is a discrete unit of learnable material extracted from a
// document. Performance fields accumulate over the session; concepts are
// never deleted once extracted.
type Concept struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Difficulty     Difficulty `json:"difficulty"`
	Prerequisites  []string   `json:"prerequisites"`
	SubConcepts    []string   `json:"subConcepts"`
	Examples       []string   `json:"examples"`
	Misconceptions []string   `json:"misconceptions"`
	KeyPrinciples  []string   `json:"keyPrinciples"`
	EstimatedTime  string     `json:"estimatedTime"`
	BloomsLevel    string     `json:"bloomsLevel,omitempty"`
	MasteryLevel   int        `json:"masteryLevel"`
	Attempts       int        `json:"attempts"`
	CorrectAnswers int        `json:"correctAnswers"`
}

// Distribution counts concepts per canonical difficulty bucket.
// All three keys are always present; concepts with a non-canonical label
// are dropped from the tally rather than counted as unknown.
func Distribution(concepts []Concept) map[Difficulty]int {
	dist := map[Difficulty]int{
		Beginner:     0,
		Intermediate: 0,
		Advanced:     0,
	}
	for _, c := range concepts {
		if c.Difficulty.Known() {
			dist[c.Difficulty]++
		}
	}
	return dist
}
