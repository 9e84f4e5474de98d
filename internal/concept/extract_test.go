package concept

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/studialabs/studia/internal/analyze"
	"github.com/studialabs/studia/internal/llm"
)

func testAnalysis() *analyze.ContentAnalysis {
	return &analyze.ContentAnalysis{
		Subject:            "Computer Science",
		Topic:              "Sorting algorithms",
		Difficulty:         "Intermediate",
		KeyConcepts:        []string{"Comparison sorts", "Complexity"},
		LearningObjectives: []string{"Compare sorting algorithms by complexity"},
		Prerequisites:      []string{"Big-O notation"},
		EstimatedTime:      "1 hour",
		Summary:            "Covers the main comparison-based sorting algorithms.",
	}
}

func TestExtract(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"concepts": [
			{
				"id": "bubble_sort",
				"name": "Bubble sort",
				"description": "Repeatedly swaps adjacent out-of-order elements.",
				"difficulty": "Beginner",
				"prerequisites": ["arrays"],
				"subConcepts": ["Swapping"],
				"examples": ["Sorting [3,1,2]"],
				"misconceptions": ["It is ever the right choice at scale"],
				"keyPrinciples": ["Largest element bubbles to the end each pass"],
				"estimatedTime": "20 min",
				"bloomsLevel": "Understand"
			},
			{
				"name": "Quicksort",
				"description": "Partition around a pivot and recurse.",
				"difficulty": "Intermediate",
				"estimatedTime": "30 min"
			}
		]
	}`)})

	e := NewExtractor(mock, DefaultExtractConfig())
	got, err := e.Extract(context.Background(), testAnalysis())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("concept count = %d", len(got))
	}
	if got[0].ID != "bubble_sort" {
		t.Errorf("id = %q, want bubble_sort", got[0].ID)
	}
	if got[0].Difficulty != Beginner {
		t.Errorf("difficulty = %q", got[0].Difficulty)
	}

	// Missing id is backfilled from the 1-based position.
	if got[1].ID != "concept_2" {
		t.Errorf("backfilled id = %q, want concept_2", got[1].ID)
	}
	// Omitted list fields decode to empty slices, never nil.
	if got[1].Prerequisites == nil || got[1].Examples == nil {
		t.Error("omitted list fields should be empty slices")
	}
}

func TestExtract_SendsSchemaAndAnalysis(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"concepts": [
			{"name": "N", "description": "D", "difficulty": "Beginner", "estimatedTime": "5 min"}
		]
	}`)})

	e := NewExtractor(mock, DefaultExtractConfig())
	if _, err := e.Extract(context.Background(), testAnalysis()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("call count = %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "concept-extraction" {
		t.Fatalf("schema = %+v", req.Schema)
	}
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "Sorting algorithms") {
		t.Error("message missing topic")
	}
	if !strings.Contains(msg, "Big-O notation") {
		t.Error("message missing prerequisites")
	}
}

func TestExtract_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})

	e := NewExtractor(mock, DefaultExtractConfig())
	_, err := e.Extract(context.Background(), testAnalysis())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "failed to extract concepts") {
		t.Errorf("error = %v", err)
	}
}

func TestExtract_EmptyConceptList(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"concepts": []}`)})

	e := NewExtractor(mock, DefaultExtractConfig())
	if _, err := e.Extract(context.Background(), testAnalysis()); err == nil {
		t.Fatal("expected error for empty concept list")
	}
}
