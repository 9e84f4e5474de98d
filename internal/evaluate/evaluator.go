package evaluate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/studialabs/studia/internal/llm"
	"github.com/studialabs/studia/internal/question"
)

const systemPrompt = `You are a patient tutor grading one quiz answer.

Rules:
- Judge understanding, not phrasing: accept answers that convey the expected meaning in different words.
- score gives partial credit on a 0-100 scale; isCorrect is true when the core idea is right.
- feedback speaks directly to the learner in one or two sentences.
- hints guide a retry without revealing the answer outright.
- Be encouraging about what was right before addressing what was wrong.`

// Config controls the answer-evaluation call.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns recommended evaluation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.2,
	}
}

// Evaluator grades answers, locally when possible and through the AI
// provider otherwise.
type Evaluator struct {
	provider llm.Provider
	config   Config
}

// New creates an Evaluator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Evaluator {
	return &Evaluator{provider: provider, config: cfg}
}

// Evaluate grades the answer to q. Choice-style questions short-circuit
// to local grading; free-form answers go to the provider.
func (e *Evaluator) Evaluate(ctx context.Context, q *question.Question, answer string) (*Evaluation, error) {
	if ev, ok := GradeLocally(q, answer); ok {
		return ev, nil
	}

	ctx = llm.WithPurpose(ctx, "answer-eval")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEvalMessage(q, answer)},
		},
		Schema:      EvaluationSchema,
		MaxTokens:   e.config.MaxTokens,
		Temperature: e.config.Temperature,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate answer: %w", err)
	}

	var ev Evaluation
	if err := json.Unmarshal(resp.Content, &ev); err != nil {
		return nil, fmt.Errorf("failed to evaluate answer: %w", err)
	}
	if ev.Score < 0 {
		ev.Score = 0
	}
	if ev.Score > 100 {
		ev.Score = 100
	}
	return &ev, nil
}

func buildEvalMessage(q *question.Question, answer string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question (%s): %s\n", q.Type, q.Question)
	if q.Context != "" {
		fmt.Fprintf(&b, "Context: %s\n", q.Context)
	}
	fmt.Fprintf(&b, "Expected answer: %s\n", q.CorrectAnswer)
	if len(q.SampleAnswers) > 0 {
		fmt.Fprintf(&b, "Acceptable phrasings: %s\n", strings.Join(q.SampleAnswers, "; "))
	}
	fmt.Fprintf(&b, "\nLearner's answer: %s\n", answer)
	return b.String()
}
