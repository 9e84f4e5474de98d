package question

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/studialabs/studia/internal/concept"
	"github.com/studialabs/studia/internal/llm"
)

func testConcept() concept.Concept {
	return concept.Concept{
		ID:            "photosynthesis",
		Name:          "Photosynthesis",
		Description:   "How plants convert light into chemical energy.",
		Difficulty:    concept.Intermediate,
		KeyPrinciples: []string{"Light reactions produce ATP and NADPH"},
		EstimatedTime: "30 min",
	}
}

func validQuestionsJSON() json.RawMessage {
	return json.RawMessage(`{
		"questions": [
			{
				"id": "photo_1",
				"type": "multiple-choice",
				"difficulty": "Intermediate",
				"question": "Where do the light reactions occur?",
				"options": [
					{"id": "a", "text": "Thylakoid membrane"},
					{"id": "b", "text": "Stroma"},
					{"id": "c", "text": "Cytoplasm"},
					{"id": "d", "text": "Nucleus"}
				],
				"correctAnswer": "a",
				"explanation": "The light reactions run in the thylakoid membrane."
			},
			{
				"type": "true-false",
				"difficulty": "Beginner",
				"question": "The Calvin cycle requires light directly.",
				"correctAnswer": "false"
			}
		]
	}`)
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionsJSON()})
	g := NewGenerator(mock, DefaultConfig())

	got, err := g.Generate(context.Background(), testConcept(), GenerateOptions{QuestionCount: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("question count = %d", len(got))
	}

	if got[0].ID != "photo_1" {
		t.Errorf("id = %q", got[0].ID)
	}
	// Missing id is backfilled as {conceptID}_q{n}, 1-based.
	if got[1].ID != "photosynthesis_q2" {
		t.Errorf("backfilled id = %q, want photosynthesis_q2", got[1].ID)
	}
	for i, q := range got {
		if q.ConceptID != "photosynthesis" {
			t.Errorf("question %d conceptId = %q", i, q.ConceptID)
		}
		if q.Number != i+1 {
			t.Errorf("question %d number = %d", i, q.Number)
		}
	}
}

func TestGenerate_SendsOptionsInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionsJSON()})
	g := NewGenerator(mock, DefaultConfig())

	opts := GenerateOptions{
		QuestionCount:       3,
		QuestionTypes:       []Type{TrueFalse},
		DifficultyLevel:     concept.Advanced,
		IncludeExplanations: true,
	}
	if _, err := g.Generate(context.Background(), testConcept(), opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "question-generation" {
		t.Fatalf("schema = %+v", req.Schema)
	}
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "Generate 3 questions") {
		t.Error("prompt missing question count")
	}
	if !strings.Contains(msg, "true-false") {
		t.Error("prompt missing allowed types")
	}
	// The requested level overrides the concept's static difficulty.
	if !strings.Contains(msg, "Difficulty: Advanced") {
		t.Error("prompt missing difficulty override")
	}
}

func TestGenerate_DefaultsDifficultyToConcept(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuestionsJSON()})
	g := NewGenerator(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), testConcept(), GenerateOptions{QuestionCount: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "Difficulty: Intermediate") {
		t.Error("prompt should carry the concept's own difficulty")
	}
}

func TestGenerate_CoarseErrorOnFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	g := NewGenerator(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), testConcept(), GenerateOptions{QuestionCount: 2})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "failed to generate questions") {
		t.Errorf("error = %v", err)
	}
}

func TestGenerate_RejectsStructurallyInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			"true-false with bad answer",
			`{"questions":[{"type":"true-false","difficulty":"Beginner","question":"Q?","correctAnswer":"maybe"}]}`,
		},
		{
			"multiple-choice answer matches no option",
			`{"questions":[{"type":"multiple-choice","difficulty":"Beginner","question":"Q?",
				"options":[{"id":"a","text":"A"},{"id":"b","text":"B"}],"correctAnswer":"z"}]}`,
		},
		{
			"unknown type",
			`{"questions":[{"type":"essay","difficulty":"Beginner","question":"Q?","correctAnswer":"A"}]}`,
		},
		{
			"empty set",
			`{"questions":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.body)})
			g := NewGenerator(mock, DefaultConfig())
			if _, err := g.Generate(context.Background(), testConcept(), GenerateOptions{QuestionCount: 1}); err == nil {
				t.Error("expected error")
			}
		})
	}
}
