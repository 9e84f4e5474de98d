// Package evaluate grades answers: structured question types locally,
// free-form answers through the AI provider.
package evaluate

import (
	"strings"

	"github.com/studialabs/studia/internal/question"
)

// Evaluation is the outcome of grading one answer.
type Evaluation struct {
	IsCorrect           bool     `json:"isCorrect"`
	Score               int      `json:"score"`
	Feedback            string   `json:"feedback"`
	Explanation         string   `json:"explanation"`
	AreasForImprovement []string `json:"areasForImprovement,omitempty"`
	Hints               []string `json:"hints,omitempty"`
	NextSteps           string   `json:"nextSteps,omitempty"`
}

// GradeLocally grades choice-style questions without an AI call. The
// second return is false when the question type needs the evaluator.
func GradeLocally(q *question.Question, answer string) (*Evaluation, bool) {
	switch q.Type {
	case question.MultipleChoice:
		return gradeExact(q, answer, matchesChoice(q, answer)), true
	case question.TrueFalse:
		correct := strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(q.CorrectAnswer))
		return gradeExact(q, answer, correct), true
	default:
		return nil, false
	}
}

func matchesChoice(q *question.Question, answer string) bool {
	a := strings.TrimSpace(answer)
	if strings.EqualFold(a, strings.TrimSpace(q.CorrectAnswer)) {
		return true
	}
	// The correct answer may be stored as an option id while the user
	// answered with the option text, or the other way around.
	for _, o := range q.Options {
		if strings.EqualFold(o.ID, q.CorrectAnswer) && strings.EqualFold(a, strings.TrimSpace(o.Text)) {
			return true
		}
	}
	return false
}

func gradeExact(q *question.Question, answer string, correct bool) *Evaluation {
	e := &Evaluation{
		IsCorrect:   correct,
		Explanation: q.Explanation,
	}
	if correct {
		e.Score = 100
		e.Feedback = "Correct."
	} else {
		e.Score = 0
		e.Feedback = "Not quite. The correct answer is " + displayAnswer(q) + "."
	}
	return e
}

// displayAnswer resolves an option id to its text for feedback, falling
// back to the raw correct answer.
func displayAnswer(q *question.Question) string {
	for _, o := range q.Options {
		if strings.EqualFold(o.ID, q.CorrectAnswer) {
			return o.Text
		}
	}
	return q.CorrectAnswer
}
