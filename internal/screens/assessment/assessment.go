package assessment

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google/uuid"

	"github.com/studialabs/studia/internal/adaptive"
	"github.com/studialabs/studia/internal/assess"
	"github.com/studialabs/studia/internal/concept"
	"github.com/studialabs/studia/internal/evaluate"
	"github.com/studialabs/studia/internal/question"
	"github.com/studialabs/studia/internal/router"
	"github.com/studialabs/studia/internal/screen"
	"github.com/studialabs/studia/internal/screens/summary"
	"github.com/studialabs/studia/internal/store"
	"github.com/studialabs/studia/internal/ui/components"
	"github.com/studialabs/studia/internal/ui/layout"
)

const (
	autosaveInterval = 30 * time.Second
	saveFlash        = 2 * time.Second
)

// Params bundle the assessment screen's dependencies.
type Params struct {
	Questions []question.Question
	Concepts  []*concept.Concept
	// Perf, when non-nil, is the caller's performance map; session
	// scoring writes through to it so the pathway's adaptive mix and
	// unlock state follow this session's results.
	Perf      adaptive.PerformanceMap
	Document  string
	Grader    evaluate.Grader
	EventRepo store.EventRepo
	SnapRepo  store.SnapshotRepo
}

// AssessmentScreen drives one assessment session.
type AssessmentScreen struct {
	params  Params
	session *assess.Session

	choice   components.ChoiceList
	input    components.TextInput
	grading  bool
	feedback *evaluate.Evaluation
	errMsg   string
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)
var _ screen.StatusProvider = (*AssessmentScreen)(nil)
var _ screen.Closer = (*AssessmentScreen)(nil)

// New creates an assessment screen over a prepared question set.
func New(params Params) *AssessmentScreen {
	s := &AssessmentScreen{
		params:  params,
		session: assess.NewSession(uuid.New().String(), params.Questions, params.Concepts, params.Perf),
		input:   components.NewTextInput("Type your answer...", 200),
	}
	s.syncQuestion()
	return s
}

func (s *AssessmentScreen) Init() tea.Cmd {
	return tea.Batch(
		s.recordSessionEvent("started"),
		s.timerTick(),
		s.autosaveTick(),
		s.input.Init(),
	)
}

func (s *AssessmentScreen) Title() string {
	return "Assessment"
}

// OnClose records the session as abandoned when the user backs out
// before submitting. A submitted session already recorded "completed".
func (s *AssessmentScreen) OnClose() tea.Cmd {
	if s.session.Submitted {
		return nil
	}
	return s.recordSessionEvent("abandoned")
}

// HeaderStatus shows the session clock, pause state, and save indicator.
func (s *AssessmentScreen) HeaderStatus() string {
	elapsed := s.session.ElapsedSeconds
	status := fmt.Sprintf("%02d:%02d", elapsed/60, elapsed%60)
	if s.session.Status == assess.StatusPaused {
		status += " ⏸"
	}
	switch s.session.SaveStatus {
	case assess.SaveSaving:
		status += " · saving"
	case assess.SaveSaved:
		status += " · saved"
	}
	return status
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	if s.session.Status == assess.StatusPaused {
		return []layout.KeyHint{
			{Key: "P", Description: "Resume"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
	if s.feedback != nil {
		return []layout.KeyHint{
			{Key: "→", Description: "Next"},
			{Key: "←", Description: "Previous"},
			{Key: "Ctrl+S", Description: "Finish"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answer"},
		{Key: "←/→", Description: "Navigate"},
		{Key: "P", Description: "Pause"},
		{Key: "Ctrl+S", Description: "Finish"},
	}
}

// syncQuestion rebuilds the per-question input state for the current
// cursor position, restoring any recorded answer.
func (s *AssessmentScreen) syncQuestion() {
	s.feedback = nil
	s.grading = false

	q := s.session.Current()
	if q == nil {
		return
	}

	switch q.Type {
	case question.MultipleChoice:
		choices := make([]components.Choice, len(q.Options))
		for i, o := range q.Options {
			choices[i] = components.Choice{ID: o.ID, Text: o.Text}
		}
		s.choice = components.NewChoiceList(choices)
	case question.TrueFalse:
		s.choice = components.NewChoiceList([]components.Choice{
			{ID: "true", Text: "True"},
			{ID: "false", Text: "False"},
		})
	default:
		s.input.Reset()
	}

	if q.Answered() {
		switch q.Type {
		case question.MultipleChoice, question.TrueFalse:
			s.choice.Select(q.UserAnswer)
			s.choice.Reveal(q.CorrectAnswer)
		default:
			s.input.SetValue(q.UserAnswer)
			s.input.Submit(q.IsCorrect)
		}
	}
}

func (s *AssessmentScreen) timerTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (s *AssessmentScreen) autosaveTick() tea.Cmd {
	return tea.Tick(autosaveInterval, func(t time.Time) tea.Msg {
		return autosaveTickMsg(t)
	})
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if s.session.Submitted {
			return s, nil
		}
		s.session.Tick()
		return s, s.timerTick()

	case autosaveTickMsg:
		if s.session.Submitted {
			return s, nil
		}
		s.session.MarkSaving()
		return s, tea.Batch(s.saveSnapshot(), s.autosaveTick())

	case savedMsg:
		// Fire-and-forget: a failed autosave leaves the indicator idle
		// and the session running.
		if msg.Err != nil {
			s.session.ClearSaveStatus()
			return s, nil
		}
		s.session.MarkSaved()
		return s, tea.Tick(saveFlash, func(time.Time) tea.Msg {
			return saveFlashDoneMsg{}
		})

	case saveFlashDoneMsg:
		s.session.ClearSaveStatus()
		return s, nil

	case evalDoneMsg:
		return s.handleEvalDone(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.isTextQuestion() && !s.grading && s.feedback == nil && s.session.Status == assess.StatusActive {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *AssessmentScreen) isTextQuestion() bool {
	q := s.session.Current()
	if q == nil {
		return false
	}
	return q.Type == question.ShortAnswer || q.Type == question.FillBlank
}

func (s *AssessmentScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.grading {
		return s, nil
	}

	if s.session.Status == assess.StatusPaused {
		if msg.String() == "p" {
			s.session.TogglePause()
		}
		return s, nil
	}

	switch msg.String() {
	case "right":
		if s.session.Next() {
			s.syncQuestion()
		}
		return s, nil
	case "left":
		if s.session.Prev() {
			s.syncQuestion()
		}
		return s, nil
	case "ctrl+s":
		return s.handleSubmit()
	case "enter":
		return s.handleAnswer()
	case "p":
		if !s.isTextQuestion() || s.feedback != nil {
			s.session.TogglePause()
			return s, nil
		}
	}

	if s.feedback != nil {
		return s, nil
	}

	// Remaining keys drive the active answer widget.
	if s.isTextQuestion() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	return s, cmd
}

func (s *AssessmentScreen) handleAnswer() (screen.Screen, tea.Cmd) {
	q := s.session.Current()
	if q == nil || s.feedback != nil {
		return s, nil
	}

	var answer string
	if s.isTextQuestion() {
		answer = s.input.Value()
	} else {
		s.choice.ChosenIndex = s.choice.Selected
		if chosen := s.choice.Chosen(); chosen != nil {
			answer = chosen.ID
		}
	}
	if answer == "" {
		return s, nil
	}

	s.grading = true
	grader := s.params.Grader
	qCopy := *q

	return s, func() tea.Msg {
		ev, err := grader.Evaluate(context.Background(), &qCopy, answer)
		return evalDoneMsg{Answer: answer, Evaluation: ev, Err: err}
	}
}

func (s *AssessmentScreen) handleEvalDone(msg evalDoneMsg) (screen.Screen, tea.Cmd) {
	s.grading = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.errMsg = ""
	s.feedback = msg.Evaluation
	s.session.Answer(msg.Answer, msg.Evaluation)

	q := s.session.Current()
	switch q.Type {
	case question.MultipleChoice, question.TrueFalse:
		s.choice.Reveal(q.CorrectAnswer)
	default:
		s.input.Submit(msg.Evaluation.IsCorrect)
	}

	return s, s.recordAnswer(q, msg)
}

func (s *AssessmentScreen) handleSubmit() (screen.Screen, tea.Cmd) {
	if !s.session.Submit() {
		return s, nil
	}

	sum := s.session.BuildSummary()
	cmds := []tea.Cmd{
		s.recordSessionEvent("completed"),
		s.saveSnapshot(),
		func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(sum)}
		},
	}
	return s, tea.Batch(cmds...)
}

// recordAnswer appends the answer event; storage failures are logged by
// the store and never interrupt the session.
func (s *AssessmentScreen) recordAnswer(q *question.Question, msg evalDoneMsg) tea.Cmd {
	if s.params.EventRepo == nil {
		return nil
	}
	data := store.AnswerEventData{
		SessionID:     s.session.ID,
		ConceptID:     q.ConceptID,
		QuestionID:    q.ID,
		QuestionType:  string(q.Type),
		Difficulty:    q.Difficulty,
		UserAnswer:    msg.Answer,
		CorrectAnswer: q.CorrectAnswer,
		Correct:       msg.Evaluation.IsCorrect,
		Score:         msg.Evaluation.Score,
		TimeMs:        q.TimeSpent * 1000,
		HintsUsed:     q.HintsUsed,
	}
	repo := s.params.EventRepo
	return func() tea.Msg {
		_ = repo.AppendAnswer(context.Background(), data)
		return nil
	}
}

func (s *AssessmentScreen) recordSessionEvent(action string) tea.Cmd {
	if s.params.EventRepo == nil {
		return nil
	}
	sum := s.session.BuildSummary()
	data := store.SessionEventData{
		SessionID:      s.session.ID,
		Action:         action,
		Document:       s.params.Document,
		TotalQuestions: sum.TotalQuestions,
		CorrectAnswers: sum.Correct,
		DurationSecs:   s.session.ElapsedSeconds,
	}
	repo := s.params.EventRepo
	return func() tea.Msg {
		_ = repo.AppendSession(context.Background(), data)
		return nil
	}
}

// saveSnapshot persists the performance map for the document.
func (s *AssessmentScreen) saveSnapshot() tea.Cmd {
	if s.params.SnapRepo == nil {
		return nil
	}

	perf := make(map[string]store.PerformanceRecord)
	for _, c := range s.params.Concepts {
		if c.Attempts == 0 {
			continue
		}
		perf[c.ID] = store.PerformanceRecord{
			MasteryLevel:   c.MasteryLevel,
			Attempts:       c.Attempts,
			CorrectAnswers: c.CorrectAnswers,
		}
	}

	snap := &store.Snapshot{
		Data: store.SnapshotData{
			Version:     store.CurrentSnapshotVersion,
			Document:    s.params.Document,
			Performance: perf,
		},
	}
	repo := s.params.SnapRepo

	return func() tea.Msg {
		err := repo.Save(context.Background(), snap)
		if err == nil {
			_ = repo.Prune(context.Background(), 20)
		}
		return savedMsg{Err: err}
	}
}
