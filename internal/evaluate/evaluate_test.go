package evaluate

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/studialabs/studia/internal/llm"
	"github.com/studialabs/studia/internal/question"
)

func mcQuestion() *question.Question {
	return &question.Question{
		ID:       "c1_q1",
		Type:     question.MultipleChoice,
		Question: "Where do the light reactions occur?",
		Options: []question.Option{
			{ID: "a", Text: "Thylakoid membrane"},
			{ID: "b", Text: "Stroma"},
			{ID: "c", Text: "Cytoplasm"},
			{ID: "d", Text: "Nucleus"},
		},
		CorrectAnswer: "a",
		Explanation:   "The light reactions run in the thylakoid membrane.",
	}
}

func TestGradeLocally_MultipleChoice(t *testing.T) {
	tests := []struct {
		answer  string
		correct bool
	}{
		{"a", true},
		{"A", true},
		{" a ", true},
		{"Thylakoid membrane", true}, // option text accepted for an id answer
		{"thylakoid membrane", true},
		{"b", false},
		{"Stroma", false},
		{"", false},
	}

	for _, tt := range tests {
		ev, ok := GradeLocally(mcQuestion(), tt.answer)
		if !ok {
			t.Fatalf("GradeLocally(%q) not handled", tt.answer)
		}
		if ev.IsCorrect != tt.correct {
			t.Errorf("GradeLocally(%q).IsCorrect = %v, want %v", tt.answer, ev.IsCorrect, tt.correct)
		}
		wantScore := 0
		if tt.correct {
			wantScore = 100
		}
		if ev.Score != wantScore {
			t.Errorf("GradeLocally(%q).Score = %d, want %d", tt.answer, ev.Score, wantScore)
		}
	}
}

func TestGradeLocally_WrongAnswerNamesOptionText(t *testing.T) {
	ev, _ := GradeLocally(mcQuestion(), "d")
	if !strings.Contains(ev.Feedback, "Thylakoid membrane") {
		t.Errorf("feedback = %q, should name the correct option text", ev.Feedback)
	}
}

func TestGradeLocally_TrueFalse(t *testing.T) {
	q := &question.Question{
		Type:          question.TrueFalse,
		Question:      "Q?",
		CorrectAnswer: "true",
	}

	for _, answer := range []string{"true", "TRUE", " True "} {
		if ev, _ := GradeLocally(q, answer); !ev.IsCorrect {
			t.Errorf("GradeLocally(%q) should be correct", answer)
		}
	}
	if ev, _ := GradeLocally(q, "false"); ev.IsCorrect {
		t.Error("false graded correct")
	}
}

func TestGradeLocally_FreeFormNotHandled(t *testing.T) {
	for _, typ := range []question.Type{question.ShortAnswer, question.FillBlank} {
		q := &question.Question{Type: typ, CorrectAnswer: "x"}
		if _, ok := GradeLocally(q, "x"); ok {
			t.Errorf("%s should defer to the evaluator", typ)
		}
	}
}

func TestEvaluate_ShortAnswerUsesProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"isCorrect": true,
		"score": 90,
		"feedback": "Right idea.",
		"explanation": "Retrieval practice improves retention.",
		"hints": []
	}`)})
	e := New(mock, DefaultConfig())

	q := &question.Question{
		Type:          question.ShortAnswer,
		Question:      "What is the testing effect?",
		CorrectAnswer: "testing effect",
		SampleAnswers: []string{"retrieval practice effect"},
	}
	ev, err := e.Evaluate(context.Background(), q, "recalling things helps you remember them")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ev.IsCorrect || ev.Score != 90 {
		t.Errorf("evaluation = %+v", ev)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("call count = %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "answer-evaluation" {
		t.Fatalf("schema = %+v", req.Schema)
	}
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "testing effect") || !strings.Contains(msg, "recalling things") {
		t.Errorf("prompt missing question or answer: %q", msg)
	}
}

func TestEvaluate_ChoiceSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	e := New(mock, DefaultConfig())

	ev, err := e.Evaluate(context.Background(), mcQuestion(), "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ev.IsCorrect {
		t.Error("local grading failed")
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times for a choice question", mock.CallCount())
	}
}

func TestEvaluate_ClampsScore(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"isCorrect": true, "score": 150, "feedback": "f", "explanation": "e"
	}`)})
	e := New(mock, DefaultConfig())

	q := &question.Question{Type: question.ShortAnswer, Question: "Q?", CorrectAnswer: "A"}
	ev, err := e.Evaluate(context.Background(), q, "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ev.Score != 100 {
		t.Errorf("score = %d, want clamped 100", ev.Score)
	}
}

func TestEvaluate_CoarseErrorOnFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	e := New(mock, DefaultConfig())

	q := &question.Question{Type: question.ShortAnswer, Question: "Q?", CorrectAnswer: "A"}
	_, err := e.Evaluate(context.Background(), q, "B")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "failed to evaluate answer") {
		t.Errorf("error = %v", err)
	}
}

func TestOffline_FreeForm(t *testing.T) {
	q := &question.Question{
		Type:          question.ShortAnswer,
		Question:      "Q?",
		CorrectAnswer: "testing effect",
		SampleAnswers: []string{"the testing effect"},
	}

	tests := []struct {
		answer  string
		correct bool
	}{
		{"testing effect", true},
		{"Testing Effect", true},
		{" the testing effect ", true},
		{"spacing effect", false},
	}

	for _, tt := range tests {
		ev, err := evaluate(t, q, tt.answer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.IsCorrect != tt.correct {
			t.Errorf("Offline(%q) = %v, want %v", tt.answer, ev.IsCorrect, tt.correct)
		}
	}
}

func evaluate(t *testing.T, q *question.Question, answer string) (*Evaluation, error) {
	t.Helper()
	return Offline{}.Evaluate(context.Background(), q, answer)
}
