package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studialabs/studia/internal/ui/theme"
)

// Choice is one selectable entry in a ChoiceList.
type Choice struct {
	ID   string
	Text string
}

// ChoiceList is a keyboard-driven selector for multiple-choice and
// true/false questions.
type ChoiceList struct {
	Choices  []Choice
	Selected int

	// Revealed shows correctness coloring after grading.
	Revealed    bool
	CorrectID   string
	ChosenIndex int
}

// NewChoiceList creates a choice list with the cursor on the first entry.
func NewChoiceList(choices []Choice) ChoiceList {
	return ChoiceList{
		Choices:     choices,
		ChosenIndex: -1,
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Enter records the choice; the caller
// reads it with Chosen and later calls Reveal with the correct id.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.Revealed {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Choices)-1 {
			c.Selected++
		}
	case "enter":
		c.ChosenIndex = c.Selected
	}

	return c, nil
}

// Chosen returns the choice recorded by Enter, or nil.
func (c ChoiceList) Chosen() *Choice {
	if c.ChosenIndex < 0 || c.ChosenIndex >= len(c.Choices) {
		return nil
	}
	return &c.Choices[c.ChosenIndex]
}

// Reveal switches the list into graded display mode.
func (c *ChoiceList) Reveal(correctID string) {
	c.Revealed = true
	c.CorrectID = correctID
}

// Select moves the cursor to the choice with the given id, if present.
// Used when restoring a previously answered question.
func (c *ChoiceList) Select(id string) {
	for i, ch := range c.Choices {
		if ch.ID == id {
			c.Selected = i
			c.ChosenIndex = i
			return
		}
	}
}

// View renders the choice list.
func (c ChoiceList) View() string {
	var s string
	for i, ch := range c.Choices {
		prefix := "  "
		if i == c.Selected && !c.Revealed {
			prefix = "▸ "
		}
		marker := " "
		if i == c.ChosenIndex {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, ch.ID, ch.Text)

		switch {
		case c.Revealed && ch.ID == c.CorrectID:
			s += theme.Correct.Render(line) + "\n"
		case c.Revealed && i == c.ChosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case c.Revealed:
			s += theme.Locked.Render(line) + "\n"
		case i == c.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
