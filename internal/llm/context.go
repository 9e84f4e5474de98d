package llm

import "context"

type contextKey string

const purposeKey contextKey = "studia_llm_purpose"

// WithPurpose attaches a purpose label ("content-analysis", "concept-extract",
// "question-gen", "answer-eval") to the context. The logging decorator and
// the mock read it back; it is how `studia stats` can break usage down.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose label, "unknown" when none was attached.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
