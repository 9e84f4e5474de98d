package assess

import (
	"testing"

	"github.com/studialabs/studia/internal/adaptive"
	"github.com/studialabs/studia/internal/concept"
	"github.com/studialabs/studia/internal/evaluate"
	"github.com/studialabs/studia/internal/question"
)

func testQuestions(conceptID string, n int) []question.Question {
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = question.Question{
			ID:            string(rune('a' + i)),
			Type:          question.ShortAnswer,
			Question:      "Q",
			CorrectAnswer: "A",
			ConceptID:     conceptID,
			Number:        i + 1,
		}
	}
	return qs
}

func correct() *evaluate.Evaluation   { return &evaluate.Evaluation{IsCorrect: true, Score: 100} }
func incorrect() *evaluate.Evaluation { return &evaluate.Evaluation{IsCorrect: false, Score: 0} }

func TestTick_OnlyWhileActive(t *testing.T) {
	s := NewSession("s1", testQuestions("c1", 2), nil, nil)

	s.Tick()
	s.Tick()
	if s.ElapsedSeconds != 2 {
		t.Errorf("elapsed = %d, want 2", s.ElapsedSeconds)
	}
	if s.Questions[0].TimeSpent != 2 {
		t.Errorf("question time = %d, want 2", s.Questions[0].TimeSpent)
	}

	s.TogglePause()
	s.Tick()
	s.Tick()
	if s.ElapsedSeconds != 2 {
		t.Errorf("elapsed advanced while paused: %d", s.ElapsedSeconds)
	}

	s.TogglePause()
	s.Tick()
	if s.ElapsedSeconds != 3 {
		t.Errorf("elapsed = %d after resume, want 3", s.ElapsedSeconds)
	}
}

func TestTick_AccruesToCurrentQuestion(t *testing.T) {
	s := NewSession("s1", testQuestions("c1", 2), nil, nil)

	s.Tick()
	s.Answer("x", correct())
	s.Next()
	s.Tick()
	s.Tick()

	if s.Questions[0].TimeSpent != 1 {
		t.Errorf("q0 time = %d, want 1", s.Questions[0].TimeSpent)
	}
	if s.Questions[1].TimeSpent != 2 {
		t.Errorf("q1 time = %d, want 2", s.Questions[1].TimeSpent)
	}
}

func TestNext_RequiresAnswer(t *testing.T) {
	s := NewSession("s1", testQuestions("c1", 3), nil, nil)

	if s.Next() {
		t.Error("Next succeeded on unanswered question")
	}
	if !s.ValidationFlagged {
		t.Error("rejection should set the validation flag")
	}
	if s.CurrentIndex != 0 {
		t.Errorf("index moved to %d", s.CurrentIndex)
	}

	s.Answer("x", correct())
	if s.ValidationFlagged {
		t.Error("answering should clear the validation flag")
	}
	if !s.Next() {
		t.Error("Next failed after answering")
	}
	if s.CurrentIndex != 1 {
		t.Errorf("index = %d, want 1", s.CurrentIndex)
	}
}

func TestNext_StopsAtLastQuestion(t *testing.T) {
	s := NewSession("s1", testQuestions("c1", 1), nil, nil)
	s.Answer("x", correct())

	if s.Next() {
		t.Error("Next succeeded past the last question")
	}
	if s.CurrentIndex != 0 {
		t.Errorf("index = %d", s.CurrentIndex)
	}
}

func TestPrev_AlwaysAllowedAboveZero(t *testing.T) {
	s := NewSession("s1", testQuestions("c1", 3), nil, nil)

	if s.Prev() {
		t.Error("Prev succeeded at index 0")
	}

	s.Answer("x", correct())
	s.Next()
	// No answer recorded on question 1; going back must still work.
	if !s.Prev() {
		t.Error("Prev failed with unanswered current question")
	}
	if s.CurrentIndex != 0 {
		t.Errorf("index = %d, want 0", s.CurrentIndex)
	}
}

func TestSubmit(t *testing.T) {
	s := NewSession("s1", testQuestions("c1", 2), nil, nil)

	if s.Submit() {
		t.Error("Submit succeeded on unanswered question")
	}
	if !s.ValidationFlagged {
		t.Error("rejected submit should set the validation flag")
	}

	s.Answer("x", correct())
	s.Next()
	s.Answer("y", incorrect())
	if !s.Submit() {
		t.Error("Submit failed with all questions answered")
	}
	if !s.Submitted {
		t.Error("session not marked submitted")
	}

	// Terminal: the clock stops and pause is inert.
	s.Tick()
	if s.ElapsedSeconds != 0 {
		t.Errorf("clock advanced after submit: %d", s.ElapsedSeconds)
	}
	s.TogglePause()
	if s.Status != StatusActive {
		t.Errorf("status changed after submit: %s", s.Status)
	}
}

func TestAnswer_UpdatesPerformanceAndConcepts(t *testing.T) {
	c := &concept.Concept{ID: "c1", Name: "Concept"}
	qs := testQuestions("c1", 4)
	s := NewSession("s1", qs, []*concept.Concept{c}, nil)

	s.Answer("x", correct())
	s.Next()
	s.Answer("x", correct())
	s.Next()
	s.Answer("x", incorrect())
	s.Next()
	s.Answer("x", correct())

	p := s.Performance()["c1"]
	if p.Attempts != 4 {
		t.Errorf("attempts = %d, want 4", p.Attempts)
	}
	if p.MasteryLevel != 75 {
		t.Errorf("mastery = %d, want 75", p.MasteryLevel)
	}

	// Mastery is written back onto the concept itself.
	if c.MasteryLevel != 75 || c.Attempts != 4 || c.CorrectAnswers != 3 {
		t.Errorf("concept = %+v", c)
	}
}

func TestAnswer_WritesThroughSharedPerfMap(t *testing.T) {
	c := &concept.Concept{ID: "c1", Name: "Concept"}
	shared := adaptive.PerformanceMap{}
	s := NewSession("s1", testQuestions("c1", 1), []*concept.Concept{c}, shared)

	s.Answer("x", correct())

	// The caller's map sees the result without going through the
	// session, so a later adaptive mix reads fresh performance.
	got := shared["c1"]
	if got.MasteryLevel != 100 || got.Attempts != 1 {
		t.Errorf("shared perf = %+v", got)
	}
	if len(adaptive.WeakAreas([]*concept.Concept{c}, shared)) != 0 {
		t.Error("mastered concept still classified weak through the shared map")
	}
}

func TestSaveStatus(t *testing.T) {
	s := NewSession("s1", testQuestions("c1", 1), nil, nil)

	if s.SaveStatus != SaveIdle {
		t.Errorf("initial save status = %s", s.SaveStatus)
	}
	s.MarkSaving()
	if s.SaveStatus != SaveSaving {
		t.Errorf("save status = %s", s.SaveStatus)
	}
	s.MarkSaved()
	if s.SaveStatus != SaveSaved {
		t.Errorf("save status = %s", s.SaveStatus)
	}
	s.ClearSaveStatus()
	if s.SaveStatus != SaveIdle {
		t.Errorf("save status = %s", s.SaveStatus)
	}
}

func TestBuildSummary(t *testing.T) {
	strongC := &concept.Concept{ID: "strong", Name: "Strong"}
	weakC := &concept.Concept{ID: "weak", Name: "Weak"}

	qs := append(testQuestions("strong", 2), testQuestions("weak", 2)...)
	s := NewSession("s1", qs, []*concept.Concept{strongC, weakC}, nil)

	s.Answer("x", correct())
	s.Next()
	s.Answer("x", correct())
	s.Next()
	s.Answer("x", incorrect())
	s.Next()
	s.Answer("x", incorrect())
	s.Tick()
	s.Submit()

	sum := s.BuildSummary()

	if sum.TotalQuestions != 4 || sum.Answered != 4 || sum.Correct != 2 {
		t.Errorf("summary = %+v", sum)
	}
	if sum.ScorePercent != 50 {
		t.Errorf("score = %d, want 50", sum.ScorePercent)
	}
	if sum.ElapsedSeconds != 1 {
		t.Errorf("elapsed = %d", sum.ElapsedSeconds)
	}

	if len(sum.Concepts) != 2 {
		t.Fatalf("concept results = %d", len(sum.Concepts))
	}
	if len(sum.StrongConcepts) != 1 || sum.StrongConcepts[0] != "Strong" {
		t.Errorf("strong = %v", sum.StrongConcepts)
	}
	if len(sum.WeakConcepts) != 1 || sum.WeakConcepts[0] != "Weak" {
		t.Errorf("weak = %v", sum.WeakConcepts)
	}
}
