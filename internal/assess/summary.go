package assess

import (
	"github.com/studialabs/studia/internal/adaptive"
	"github.com/studialabs/studia/internal/concept"
)

// ConceptResult is one concept's outcome within a summary.
type ConceptResult struct {
	ConceptID   string `json:"conceptId"`
	ConceptName string `json:"conceptName"`
	Attempts    int    `json:"attempts"`
	Correct     int    `json:"correct"`
	Mastery     int    `json:"mastery"`
}

// Summary is the terminal view of a submitted session.
type Summary struct {
	TotalQuestions int             `json:"totalQuestions"`
	Answered       int             `json:"answered"`
	Correct        int             `json:"correct"`
	ScorePercent   int             `json:"scorePercent"`
	ElapsedSeconds int             `json:"elapsedSeconds"`
	Concepts       []ConceptResult `json:"concepts"`
	WeakConcepts   []string        `json:"weakConcepts"`
	StrongConcepts []string        `json:"strongConcepts"`
}

// BuildSummary computes the summary from the session's current state.
// Weak and strong breakdowns reuse the adaptive classification, so the
// summary agrees with what the next mix would target.
func (s *Session) BuildSummary() *Summary {
	sum := &Summary{
		TotalQuestions: len(s.Questions),
		ElapsedSeconds: s.ElapsedSeconds,
	}

	for _, q := range s.Questions {
		if q.Answered() {
			sum.Answered++
		}
		if q.IsCorrect {
			sum.Correct++
		}
	}
	if sum.Answered > 0 {
		sum.ScorePercent = 100 * sum.Correct / sum.Answered
	}

	for _, c := range s.Concepts {
		tally := s.stats[c.ID]
		if tally == nil {
			continue
		}
		sum.Concepts = append(sum.Concepts, ConceptResult{
			ConceptID:   c.ID,
			ConceptName: c.Name,
			Attempts:    tally.attempts,
			Correct:     tally.correct,
			Mastery:     s.perf[c.ID].MasteryLevel,
		})
	}

	for _, c := range adaptive.WeakAreas(s.Concepts, s.perf) {
		sum.WeakConcepts = append(sum.WeakConcepts, c.Name)
	}
	for _, c := range adaptive.StrongAreas(s.Concepts, s.perf) {
		sum.StrongConcepts = append(sum.StrongConcepts, c.Name)
	}

	return sum
}

// ConceptByID returns the session concept with the given id, or nil.
func (s *Session) ConceptByID(id string) *concept.Concept {
	for _, c := range s.Concepts {
		if c.ID == id {
			return c
		}
	}
	return nil
}
