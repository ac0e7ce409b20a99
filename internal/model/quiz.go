// internal/model/quiz.go
package model

import "github.com/google/uuid"

// QuizQuestion is one multiple-choice question. Options always holds four
// distinct meanings, one of which is at CorrectIndex.
type QuizQuestion struct {
	WordID       uuid.UUID `json:"word_id"`
	Text         string    `json:"text"`
	Options      []string  `json:"options"`
	CorrectIndex int       `json:"correct_index"`
}

// QuizSessionResponse is a full learning session laid out as one question
// sequence: every batch word appears once per cycle.
type QuizSessionResponse struct {
	Questions []QuizQuestion `json:"questions"`
	BatchSize int            `json:"batch_size"`
	Cycles    int            `json:"cycles"`
}

// LearningBatchResponse is the day's selected batch.
type LearningBatchResponse struct {
	Words     []Word `json:"words"`
	BatchSize int    `json:"batch_size"`
}

// CompleteLearningRequest finishes a learning session for the given words.
type CompleteLearningRequest struct {
	WordIDs []uuid.UUID `json:"word_ids" validate:"required,min=1,dive,required"`
}
