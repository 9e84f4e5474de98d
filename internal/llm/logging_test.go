package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/studialabs/studia/internal/store"
)

// captureRepo records appended LLM request events; the other EventRepo
// methods are unused by the logging decorator.
type captureRepo struct {
	store.EventRepo
	events []store.LLMRequestEventData
}

func (r *captureRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return nil
}

func TestLogging_RecordsProviderModelAndPurpose(t *testing.T) {
	inner := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 10, OutputTokens: 5},
	})
	repo := &captureRepo{}
	p := WithLogging(inner, "anthropic", repo)

	ctx := WithPurpose(context.Background(), "question-gen")
	if _, err := p.Generate(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("event count = %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Provider != "anthropic" {
		t.Errorf("provider = %q, want the configured backend name", ev.Provider)
	}
	if ev.Model != "mock" {
		t.Errorf("model = %q", ev.Model)
	}
	if ev.Purpose != "question-gen" {
		t.Errorf("purpose = %q", ev.Purpose)
	}
	if !ev.Success || ev.InputTokens != 10 || ev.OutputTokens != 5 {
		t.Errorf("event = %+v", ev)
	}
}

func TestLogging_RecordsFailures(t *testing.T) {
	inner := NewMockProvider() // empty queue fails every call
	repo := &captureRepo{}
	p := WithLogging(inner, "openai", repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected provider error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("event count = %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success || ev.ErrorMessage == "" {
		t.Errorf("failure not recorded: %+v", ev)
	}
	if ev.Provider != "openai" {
		t.Errorf("provider = %q", ev.Provider)
	}
}
