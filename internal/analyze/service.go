package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/studialabs/studia/internal/llm"
)

const systemPrompt = `You are an expert learning designer analyzing study material.

Rules:
- Read the document and identify its subject, topic, and overall difficulty.
- List the main concepts a learner must understand, in the order they build on each other.
- State concrete learning objectives ("explain", "compute", "compare"), not vague goals.
- List prerequisites only when the document clearly assumes prior knowledge.
- Estimate total study time for an average learner, e.g. "30 min" or "2 hours".
- Keep the summary to two to four sentences in plain language.`

// Analyzer performs the content-analysis AI call.
type Analyzer struct {
	provider llm.Provider
	config   Config
}

// New creates an Analyzer with the given provider and config.
func New(provider llm.Provider, cfg Config) *Analyzer {
	return &Analyzer{provider: provider, config: cfg}
}

// Analyze sends the document text to the model and returns the structured
// analysis. Any failure — network, truncation, schema violation — collapses
// into one coarse operation error; the cause stays in the event log.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*ContentAnalysis, error) {
	ctx = llm.WithPurpose(ctx, "content-analysis")

	text = truncate(text, a.config.MaxInputChars)

	var b strings.Builder
	b.WriteString("Analyze the following study document.\n\n---\n")
	b.WriteString(text)
	b.WriteString("\n---\n")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		Schema:      AnalysisSchema,
		MaxTokens:   a.config.MaxTokens,
		Temperature: a.config.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze content: %w", err)
	}

	var analysis ContentAnalysis
	if err := json.Unmarshal(resp.Content, &analysis); err != nil {
		return nil, fmt.Errorf("failed to analyze content: %w", err)
	}

	if analysis.Prerequisites == nil {
		analysis.Prerequisites = []string{}
	}

	return &analysis, nil
}

// truncate caps text at max bytes without splitting a multi-byte rune:
// the cut backs up to the nearest rune start so the provider never sees
// a broken trailing sequence.
func truncate(text string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
