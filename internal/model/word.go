// internal/model/word.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Word is one entry of the fixed vocabulary catalog.
type Word struct {
	WordID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"word_id"`
	Text      string    `gorm:"not null" json:"text"`    // the word itself
	Meaning   string    `gorm:"not null" json:"meaning"` // native-language meaning
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Word) TableName() string {
	return "words"
}

// WordListResponse is one page of the catalog.
type WordListResponse struct {
	Words []Word `json:"words"`
	Total int64  `json:"total"`
}

// ImportWordsRequest seeds new catalog entries.
type ImportWordsRequest struct {
	Words []ImportWordItem `json:"words" validate:"required,min=1,dive"`
}

type ImportWordItem struct {
	Text    string `json:"text" validate:"required,min=1,max=100"`
	Meaning string `json:"meaning" validate:"required,min=1,max=200"`
}
