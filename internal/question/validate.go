package question

import (
	"fmt"
	"strings"
)

// validateQuestion checks structural integrity beyond what the JSON schema
// enforces: type-specific answer shape and option consistency.
func validateQuestion(q *Question) error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("question %s: empty prompt", q.ID)
	}
	if !q.Type.Known() {
		return fmt.Errorf("question %s: unknown type %q", q.ID, q.Type)
	}
	if strings.TrimSpace(q.CorrectAnswer) == "" {
		return fmt.Errorf("question %s: empty correct answer", q.ID)
	}

	switch q.Type {
	case MultipleChoice:
		if len(q.Options) < 2 {
			return fmt.Errorf("question %s: multiple-choice needs at least 2 options, got %d", q.ID, len(q.Options))
		}
		if !answerMatchesOption(q) {
			return fmt.Errorf("question %s: correct answer %q matches no option", q.ID, q.CorrectAnswer)
		}
	case TrueFalse:
		a := strings.ToLower(strings.TrimSpace(q.CorrectAnswer))
		if a != "true" && a != "false" {
			return fmt.Errorf("question %s: true-false answer must be true or false, got %q", q.ID, q.CorrectAnswer)
		}
	}

	return nil
}

func answerMatchesOption(q *Question) bool {
	for _, o := range q.Options {
		if strings.EqualFold(o.ID, q.CorrectAnswer) || strings.EqualFold(o.Text, q.CorrectAnswer) {
			return true
		}
	}
	return false
}
