package components

import (
	"charm.land/lipgloss/v2"

	"github.com/studialabs/studia/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner is a frame-counted loading indicator. The owning screen drives
// it by calling Advance from its tick handler.
type Spinner struct {
	Label string
	frame int
}

// NewSpinner creates a spinner with the given label.
func NewSpinner(label string) Spinner {
	return Spinner{Label: label}
}

// Advance moves to the next frame.
func (s *Spinner) Advance() {
	s.frame = (s.frame + 1) % len(spinnerFrames)
}

// View renders the spinner and label.
func (s Spinner) View() string {
	return lipgloss.NewStyle().Foreground(theme.Primary).Render(spinnerFrames[s.frame]) +
		" " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.Label)
}
