package evaluate

import (
	"context"
	"strings"

	"github.com/studialabs/studia/internal/question"
)

// Grader grades one answer. *Evaluator satisfies it; Offline is the
// no-provider fallback.
type Grader interface {
	Evaluate(ctx context.Context, q *question.Question, answer string) (*Evaluation, error)
}

// Offline grades every question locally. Free-form answers are compared
// case-insensitively against the correct answer and sample answers, so
// grading is stricter than the AI evaluator but never needs a network.
type Offline struct{}

// Evaluate implements Grader.
func (Offline) Evaluate(_ context.Context, q *question.Question, answer string) (*Evaluation, error) {
	if ev, ok := GradeLocally(q, answer); ok {
		return ev, nil
	}

	a := strings.ToLower(strings.TrimSpace(answer))
	correct := a == strings.ToLower(strings.TrimSpace(q.CorrectAnswer))
	for _, s := range q.SampleAnswers {
		if a == strings.ToLower(strings.TrimSpace(s)) {
			correct = true
		}
	}
	return gradeExact(q, answer, correct), nil
}
