package assessment

import (
	"time"

	"github.com/studialabs/studia/internal/evaluate"
)

// timerTickMsg advances the session clock once per second.
type timerTickMsg time.Time

// autosaveTickMsg fires on the autosave interval.
type autosaveTickMsg time.Time

// savedMsg reports the outcome of an autosave write.
type savedMsg struct {
	Err error
}

// saveFlashDoneMsg clears the "saved" indicator after its flash period.
type saveFlashDoneMsg struct{}

// evalDoneMsg carries a graded answer back to the UI loop.
type evalDoneMsg struct {
	Answer     string
	Evaluation *evaluate.Evaluation
	Err        error
}
