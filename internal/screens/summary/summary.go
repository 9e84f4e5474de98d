package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studialabs/studia/internal/assess"
	"github.com/studialabs/studia/internal/screen"
	"github.com/studialabs/studia/internal/ui/components"
	"github.com/studialabs/studia/internal/ui/layout"
	"github.com/studialabs/studia/internal/ui/theme"
)

// SummaryScreen is the terminal view of a submitted assessment.
type SummaryScreen struct {
	summary *assess.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen.
func New(sum *assess.Summary) *SummaryScreen {
	return &SummaryScreen{summary: sum}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Session Complete"))
	b.WriteString("\n\n")

	elapsed := fmt.Sprintf("%02d:%02d", sum.ElapsedSeconds/60, sum.ElapsedSeconds%60)
	headline := fmt.Sprintf("%d of %d correct · %d%% · %s",
		sum.Correct, sum.Answered, sum.ScorePercent, elapsed)
	b.WriteString(theme.Subtitle.Width(width).Render(headline))
	b.WriteString("\n\n")

	score := components.NewProgressBar("Score", float64(sum.ScorePercent)/100, true, width-12)
	b.WriteString("    " + score.View() + "\n\n")

	if len(sum.Concepts) > 0 {
		b.WriteString(theme.Body.Render("  By concept:"))
		b.WriteString("\n")
		for _, cr := range sum.Concepts {
			line := fmt.Sprintf("    %s — %d/%d correct, mastery %d%%",
				cr.ConceptName, cr.Correct, cr.Attempts, cr.Mastery)
			switch {
			case cr.Mastery >= 80:
				b.WriteString(theme.Correct.Render(line))
			case cr.Mastery < 40:
				b.WriteString(theme.Incorrect.Render(line))
			default:
				b.WriteString(theme.Body.Render(line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(sum.StrongConcepts) > 0 {
		b.WriteString(theme.Correct.Render("  Strong: "))
		b.WriteString(theme.Body.Render(strings.Join(sum.StrongConcepts, ", ")))
		b.WriteString("\n")
	}
	if len(sum.WeakConcepts) > 0 {
		b.WriteString(theme.Warning.Render("  Focus next: "))
		b.WriteString(theme.Body.Render(strings.Join(sum.WeakConcepts, ", ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
		Render("Weak concepts get extra questions in your next adaptive mix."))

	return b.String()
}
