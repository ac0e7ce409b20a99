// internal/model/state.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// MasteredStage is the terminal stage. A word that passes stage 6 is
// mastered and leaves the review schedule.
const MasteredStage = 6

// WordState is a user's spaced-repetition record for one word. A user has
// at most one of WordState and RemediationEntry per word, never both.
type WordState struct {
	UserID         string     `gorm:"primaryKey" json:"user_id"`
	WordID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"word_id"`
	Stage          int        `gorm:"not null;default:0" json:"stage"`
	IsMastered     bool       `gorm:"not null;default:false" json:"is_mastered"`
	LastReviewedAt time.Time  `gorm:"not null" json:"last_reviewed_at"`
	NextReviewAt   *time.Time `gorm:"index" json:"next_review_at"` // nil once mastered
	CreatedAt      time.Time  `json:"-"`
	UpdatedAt      time.Time  `json:"-"`

	Word *Word `gorm:"foreignKey:WordID;references:WordID" json:"-"`
}

func (WordState) TableName() string {
	return "word_states"
}

// RemediationEntry marks a word the user answered wrong. It competes for
// the front of the next learning batch by priority score.
type RemediationEntry struct {
	UserID        string    `gorm:"primaryKey" json:"user_id"`
	WordID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"word_id"`
	PriorityScore int       `gorm:"not null;default:1" json:"priority_score"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`

	Word *Word `gorm:"foreignKey:WordID;references:WordID" json:"-"`
}

func (RemediationEntry) TableName() string {
	return "remediation_entries"
}

// SubmitAnswerRequest reports one review answer.
type SubmitAnswerRequest struct {
	WordID    uuid.UUID `json:"word_id" validate:"required"`
	IsCorrect *bool     `json:"is_correct" validate:"required"`
}

// ReviewWordResponse is one due word in a review list.
type ReviewWordResponse struct {
	WordID  uuid.UUID `json:"word_id"`
	Text    string    `json:"text"`
	Meaning string    `json:"meaning"`
	Stage   int       `json:"stage"`
}
