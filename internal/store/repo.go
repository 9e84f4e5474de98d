package store

import (
	"context"
	"time"
)

// LLMRequestEventData captures a single LLM API call for the event log.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// AnswerEventData captures one answered question within an assessment.
type AnswerEventData struct {
	SessionID     string
	ConceptID     string
	QuestionID    string
	QuestionType  string
	Difficulty    string
	UserAnswer    string
	CorrectAnswer string
	Correct       bool
	Score         int
	TimeMs        int
	HintsUsed     int
}

// SessionEventData captures an assessment session lifecycle event.
// Action is one of "started", "completed", "abandoned".
type SessionEventData struct {
	SessionID      string
	Action         string
	Document       string
	TotalQuestions int
	CorrectAnswers int
	DurationSecs   int
}

// LLMTotals aggregates LLM usage across the event log, for `studia stats`.
type LLMTotals struct {
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// AnswerTotals aggregates answer history, for `studia stats`.
type AnswerTotals struct {
	Answers  int
	Correct  int
	Sessions int
}

// EventRepo provides append and aggregate access to domain events.
// Events share a global monotonic sequence so cross-type ordering holds.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendAnswer records an answered question.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendSession records a session lifecycle event.
	AppendSession(ctx context.Context, data SessionEventData) error

	// ConceptAccuracy returns the historical fraction of correct answers
	// for a concept, 0 when the concept has never been answered.
	ConceptAccuracy(ctx context.Context, conceptID string) (float64, error)

	// LLMTotals aggregates LLM usage over the whole log.
	LLMTotals(ctx context.Context) (LLMTotals, error)

	// AnswerTotals aggregates answer history over the whole log.
	AnswerTotals(ctx context.Context) (AnswerTotals, error)

	// LLMUsageByModel aggregates token usage per model, for cost
	// estimation in `studia stats`.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// ModelUsage is aggregated LLM usage for one model.
type ModelUsage struct {
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// PerformanceRecord is the persisted per-concept performance entry.
type PerformanceRecord struct {
	MasteryLevel   int `json:"masteryLevel"`
	Attempts       int `json:"attempts"`
	CorrectAnswers int `json:"correctAnswers"`
}

// SnapshotData captures session-scoped learner state at a point in time:
// which document was loaded and the per-concept performance map.
type SnapshotData struct {
	Version     int                          `json:"version"`
	Document    string                       `json:"document,omitempty"`
	Performance map[string]PerformanceRecord `json:"performance,omitempty"`
}

// Snapshot is a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
