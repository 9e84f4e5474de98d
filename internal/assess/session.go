// Package assess drives an assessment session: question navigation,
// timing, pause, autosave status, and performance accumulation.
package assess

import (
	"github.com/studialabs/studia/internal/adaptive"
	"github.com/studialabs/studia/internal/concept"
	"github.com/studialabs/studia/internal/evaluate"
	"github.com/studialabs/studia/internal/question"
)

// Status is the run state of a session.
type Status string

const (
	StatusActive Status = "active"
	StatusPaused Status = "paused"
)

// SaveStatus tracks the autosave indicator, independent of Status.
type SaveStatus string

const (
	SaveIdle   SaveStatus = "idle"
	SaveSaving SaveStatus = "saving"
	SaveSaved  SaveStatus = "saved"
)

// Session is one assessment run over a fixed question set. It is mutated
// only from the UI event loop, so it carries no locking.
type Session struct {
	ID        string
	Questions []question.Question
	Concepts  []*concept.Concept

	CurrentIndex   int
	Status         Status
	SaveStatus     SaveStatus
	ElapsedSeconds int
	Submitted      bool

	// ValidationFlagged is set when Next or Submit is rejected because
	// the current question has no recorded answer. Cleared by any
	// successful navigation or by answering.
	ValidationFlagged bool

	perf adaptive.PerformanceMap
	// per-concept tallies backing the mastery computation
	stats map[string]*conceptTally
}

type conceptTally struct {
	attempts int
	correct  int
}

// NewSession starts an active session at the first question. concepts may
// be nil; when present, answering writes mastery back onto them. perf may
// be nil for a fresh map; passing the caller's map makes scoring write
// through, so the next adaptive mix sees this session's results.
func NewSession(id string, questions []question.Question, concepts []*concept.Concept, perf adaptive.PerformanceMap) *Session {
	if perf == nil {
		perf = adaptive.PerformanceMap{}
	}
	return &Session{
		ID:         id,
		Questions:  questions,
		Concepts:   concepts,
		Status:     StatusActive,
		SaveStatus: SaveIdle,
		perf:       perf,
		stats:      map[string]*conceptTally{},
	}
}

// Current returns the question at the cursor, or nil when the set is empty.
func (s *Session) Current() *question.Question {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.CurrentIndex]
}

// Tick advances the session clock by one second. Time accrues to the
// session and to the current question only while active; a paused session
// ignores ticks entirely.
func (s *Session) Tick() {
	if s.Status != StatusActive || s.Submitted {
		return
	}
	s.ElapsedSeconds++
	if q := s.Current(); q != nil {
		q.TimeSpent++
	}
}

// TogglePause flips between active and paused. Submitted sessions stay
// as they are.
func (s *Session) TogglePause() {
	if s.Submitted {
		return
	}
	if s.Status == StatusActive {
		s.Status = StatusPaused
	} else {
		s.Status = StatusActive
	}
}

// Answer records the graded answer on the current question and folds it
// into the per-concept performance tallies. Re-answering replaces the
// recorded answer and counts as another attempt.
func (s *Session) Answer(answer string, ev *evaluate.Evaluation) {
	q := s.Current()
	if q == nil || s.Submitted {
		return
	}

	q.UserAnswer = answer
	q.IsCorrect = ev.IsCorrect
	q.Attempts++
	if ev.IsCorrect {
		q.CorrectAttempts++
	}
	s.ValidationFlagged = false

	tally := s.stats[q.ConceptID]
	if tally == nil {
		tally = &conceptTally{}
		s.stats[q.ConceptID] = tally
	}
	tally.attempts++
	if ev.IsCorrect {
		tally.correct++
	}

	mastery := 100 * tally.correct / tally.attempts
	s.perf[q.ConceptID] = adaptive.Performance{
		MasteryLevel: mastery,
		Attempts:     tally.attempts,
	}

	for _, c := range s.Concepts {
		if c.ID == q.ConceptID {
			c.MasteryLevel = mastery
			c.Attempts = tally.attempts
			c.CorrectAnswers = tally.correct
		}
	}
}

// Next advances the cursor. Rejected, with the validation flag set, when
// the current question has no recorded answer or the cursor is at the end.
func (s *Session) Next() bool {
	q := s.Current()
	if q == nil || !q.Answered() {
		s.ValidationFlagged = true
		return false
	}
	if s.CurrentIndex >= len(s.Questions)-1 {
		return false
	}
	s.CurrentIndex++
	s.ValidationFlagged = false
	return true
}

// Prev moves the cursor back. Always succeeds when not at the first
// question; no answer is required to go back.
func (s *Session) Prev() bool {
	if s.CurrentIndex <= 0 {
		return false
	}
	s.CurrentIndex--
	s.ValidationFlagged = false
	return true
}

// Submit ends the session. Rejected under the same unanswered-current
// rule as Next; once submitted the session is terminal.
func (s *Session) Submit() bool {
	q := s.Current()
	if q == nil || !q.Answered() {
		s.ValidationFlagged = true
		return false
	}
	s.Submitted = true
	return true
}

// Performance returns the per-concept performance accumulated so far.
func (s *Session) Performance() adaptive.PerformanceMap {
	return s.perf
}

// MarkSaving and MarkSaved drive the autosave indicator from the owning
// screen's save task.
func (s *Session) MarkSaving() { s.SaveStatus = SaveSaving }
func (s *Session) MarkSaved()  { s.SaveStatus = SaveSaved }

// ClearSaveStatus returns the indicator to idle after the saved flash.
func (s *Session) ClearSaveStatus() { s.SaveStatus = SaveIdle }
