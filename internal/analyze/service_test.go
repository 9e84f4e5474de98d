package analyze

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/studialabs/studia/internal/llm"
)

func validAnalysisJSON() json.RawMessage {
	return json.RawMessage(`{
		"subject": "Biology",
		"topic": "Photosynthesis",
		"difficulty": "Intermediate",
		"keyConcepts": ["Light reactions", "Calvin cycle"],
		"learningObjectives": ["Explain how plants convert light into chemical energy"],
		"estimatedTime": "45 min",
		"summary": "The document explains how plants convert light into chemical energy."
	}`)
}

func TestAnalyze(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validAnalysisJSON()})
	a := New(mock, DefaultConfig())

	got, err := a.Analyze(context.Background(), "Photosynthesis is the process by which...")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Subject != "Biology" {
		t.Errorf("subject = %q", got.Subject)
	}
	if got.Difficulty != "Intermediate" {
		t.Errorf("difficulty = %q", got.Difficulty)
	}
	if len(got.KeyConcepts) != 2 {
		t.Errorf("key concepts = %v", got.KeyConcepts)
	}
	// Optional field defaults to an empty slice, never nil.
	if got.Prerequisites == nil {
		t.Error("prerequisites should default to empty slice")
	}
}

func TestAnalyze_SendsSchemaAndDocument(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validAnalysisJSON()})
	a := New(mock, DefaultConfig())

	_, err := a.Analyze(context.Background(), "mitochondria are the powerhouse of the cell")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("call count = %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "content-analysis" {
		t.Error("expected content-analysis schema on request")
	}
	if !strings.Contains(req.Messages[0].Content, "mitochondria") {
		t.Error("document text missing from prompt")
	}
	if mock.Purposes[0] != "content-analysis" {
		t.Errorf("request purpose = %q", mock.Purposes[0])
	}
}

func TestAnalyze_TruncatesLongDocuments(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validAnalysisJSON()})
	cfg := DefaultConfig()
	cfg.MaxInputChars = 100
	a := New(mock, cfg)

	_, err := a.Analyze(context.Background(), strings.Repeat("x", 10_000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mock.Calls[0].Messages[0].Content) > 300 {
		t.Errorf("prompt not truncated: %d chars", len(mock.Calls[0].Messages[0].Content))
	}
}

func TestTruncate_NeverSplitsARune(t *testing.T) {
	// Each "é" is two bytes, so a cap of 3 lands mid-rune and must back
	// up to the previous rune start.
	s := strings.Repeat("é", 3)

	got := truncate(s, 3)
	if got != "é" {
		t.Errorf("truncate = %q, want one intact rune", got)
	}
	if !utf8.ValidString(got) {
		t.Error("truncated text is not valid UTF-8")
	}

	if truncate(s, len(s)) != s {
		t.Error("text within the cap must pass through unchanged")
	}
	if truncate(s, 0) != s {
		t.Error("zero cap means no truncation")
	}
}

func TestAnalyze_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	a := New(mock, DefaultConfig())

	_, err := a.Analyze(context.Background(), "text")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "failed to analyze content") {
		t.Errorf("error = %v, want coarse operation error", err)
	}
}
