// Package question generates typed quiz questions for a concept and holds
// the question model shared by the adaptive mix and the assessment session.
package question

import "github.com/studialabs/studia/internal/concept"

// Type is a question format.
type Type string

const (
	MultipleChoice Type = "multiple-choice"
	TrueFalse      Type = "true-false"
	ShortAnswer    Type = "short-answer"
	FillBlank      Type = "fill-blank"
)

// Known reports whether the type is one of the four canonical values.
func (t Type) Known() bool {
	switch t {
	case MultipleChoice, TrueFalse, ShortAnswer, FillBlank:
		return true
	}
	return false
}

// DefaultTypes is the generation mix used when the caller does not pick.
var DefaultTypes = []Type{MultipleChoice, TrueFalse, ShortAnswer}

// Option is one selectable answer for a multiple-choice question.
type Option struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Explanation string `json:"explanation,omitempty"`
}

// Question is a single quiz question scoped to one assessment session.
// Interaction fields (UserAnswer, IsCorrect, TimeSpent, HintsUsed) are
// mutated as the user works through the assessment.
type Question struct {
	ID                string   `json:"id"`
	Type              Type     `json:"type"`
	Difficulty        string   `json:"difficulty"`
	Question          string   `json:"question"`
	Context           string   `json:"context,omitempty"`
	Options           []Option `json:"options,omitempty"`
	CorrectAnswer     string   `json:"correctAnswer"`
	SampleAnswers     []string `json:"sampleAnswers,omitempty"`
	Explanation       string   `json:"explanation,omitempty"`
	LearningObjective string   `json:"learningObjective,omitempty"`
	BloomsLevel       string   `json:"bloomsLevel,omitempty"`
	EstimatedTime     string   `json:"estimatedTime,omitempty"`
	ConceptID         string   `json:"conceptId"`
	Number            int      `json:"number"`

	Attempts        int    `json:"attempts"`
	CorrectAttempts int    `json:"correctAttempts"`
	UserAnswer      string `json:"userAnswer"`
	IsCorrect       bool   `json:"isCorrect"`
	TimeSpent       int    `json:"timeSpent"`
	HintsUsed       int    `json:"hintsUsed"`
}

// Answered reports whether the user has recorded an answer.
func (q *Question) Answered() bool {
	return q.UserAnswer != ""
}

// GenerateOptions controls a single generation call for one concept.
type GenerateOptions struct {
	// QuestionCount is how many questions to request.
	QuestionCount int

	// QuestionTypes restricts the formats; empty means DefaultTypes.
	QuestionTypes []Type

	// DifficultyLevel overrides the concept's own difficulty when set.
	DifficultyLevel concept.Difficulty

	// IncludeExplanations asks for a worked explanation per question.
	IncludeExplanations bool
}
