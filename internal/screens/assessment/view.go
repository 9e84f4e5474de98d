package assessment

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/studialabs/studia/internal/assess"
	"github.com/studialabs/studia/internal/question"
	"github.com/studialabs/studia/internal/ui/components"
	"github.com/studialabs/studia/internal/ui/theme"
)

func (s *AssessmentScreen) View(width, height int) string {
	if s.session.Status == assess.StatusPaused {
		return renderPaused(width)
	}

	q := s.session.Current()
	if q == nil {
		return theme.Hint.Width(width).Align(lipgloss.Center).Render("No questions.")
	}

	var b strings.Builder

	idx := s.session.CurrentIndex
	total := len(s.session.Questions)
	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d/%d", idx+1, total),
		float64(idx+1)/float64(total),
		false,
		width-8,
	)
	b.WriteString("  " + progress.View() + "\n\n")

	b.WriteString(s.renderQuestion(q, width))

	if s.session.ValidationFlagged {
		b.WriteString("\n")
		b.WriteString(theme.Warning.Render("  Answer this question before moving on."))
		b.WriteString("\n")
	}
	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render("  " + s.errMsg))
		b.WriteString("\n")
	}
	if s.grading {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("  Checking your answer..."))
		b.WriteString("\n")
	}
	if s.feedback != nil {
		b.WriteString(s.renderFeedback(width))
	}

	return b.String()
}

func (s *AssessmentScreen) renderQuestion(q *question.Question, width int) string {
	var b strings.Builder

	meta := fmt.Sprintf("%s · %s", q.Type, q.Difficulty)
	b.WriteString(theme.Hint.Render("  " + meta))
	b.WriteString("\n\n")

	if q.Context != "" {
		ctx := theme.Card.Width(width - 8).Render(q.Context)
		b.WriteString("  " + strings.ReplaceAll(ctx, "\n", "\n  "))
		b.WriteString("\n\n")
	}

	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width - 4).
		Render(q.Question)
	b.WriteString("  " + strings.ReplaceAll(prompt, "\n", "\n  "))
	b.WriteString("\n\n")

	switch q.Type {
	case question.MultipleChoice, question.TrueFalse:
		b.WriteString("  " + strings.ReplaceAll(s.choice.View(), "\n", "\n  "))
	default:
		b.WriteString("  " + s.input.View())
		b.WriteString("\n")
	}

	return b.String()
}

func (s *AssessmentScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	if s.feedback.IsCorrect {
		b.WriteString(theme.Correct.Render(fmt.Sprintf("  ✓ %s (%d/100)", s.feedback.Feedback, s.feedback.Score)))
	} else {
		b.WriteString(theme.Incorrect.Render(fmt.Sprintf("  ✗ %s (%d/100)", s.feedback.Feedback, s.feedback.Score)))
	}
	b.WriteString("\n")

	if s.feedback.Explanation != "" {
		expl := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(width - 4).
			Render(s.feedback.Explanation)
		b.WriteString("  " + strings.ReplaceAll(expl, "\n", "\n  "))
		b.WriteString("\n")
	}

	for _, hint := range s.feedback.Hints {
		b.WriteString(theme.Hint.Render("  hint: " + hint))
		b.WriteString("\n")
	}
	if s.feedback.NextSteps != "" {
		b.WriteString(theme.Hint.Render("  next: " + s.feedback.NextSteps))
		b.WriteString("\n")
	}

	return b.String()
}

func renderPaused(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n" + theme.Title.Render("Paused") + "\n\n" +
			theme.Hint.Render("The clock is stopped. Press P to resume."))
}
