package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/studialabs/studia/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for screens that show live
// status in the header's right slot (session clock, autosave state).
type StatusProvider interface {
	HeaderStatus() string
}

// Closer is an optional interface for screens with teardown work when
// the user backs out of them (recording an abandoned session, flushing
// state). The returned command runs alongside the pop.
type Closer interface {
	OnClose() tea.Cmd
}
