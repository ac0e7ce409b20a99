// internal/model/profile.go
package model

import "time"

// UserProfile holds per-user settings and the daily study flags the
// midnight sweep resets.
type UserProfile struct {
	UserID                    string     `gorm:"primaryKey" json:"user_id"`
	Nickname                  string     `gorm:"not null" json:"nickname"`
	Email                     string     `json:"email,omitempty"`
	PushToken                 string     `json:"-"`
	DailyWordGoal             int        `gorm:"not null;default:10" json:"daily_word_goal"`
	HasStudiedToday           bool       `gorm:"not null;default:false" json:"has_studied_today"`
	IsTodayLearningComplete   bool       `gorm:"not null;default:false" json:"is_today_learning_complete"`
	IsPostLearningReviewReady bool       `gorm:"not null;default:false" json:"is_post_learning_review_ready"`
	LastStudiedAt             *time.Time `json:"last_studied_at"`
	CreatedAt                 time.Time  `json:"-"`
	UpdatedAt                 time.Time  `json:"-"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// RegisterProfileRequest creates or replaces the caller's profile.
type RegisterProfileRequest struct {
	Nickname      string `json:"nickname" validate:"required,min=1,max=30"`
	Email         string `json:"email" validate:"omitempty,email"`
	DailyWordGoal int    `json:"daily_word_goal" validate:"required,min=1,max=50"`
}

// PatchProfileRequest updates individual profile fields.
type PatchProfileRequest struct {
	Nickname      *string `json:"nickname,omitempty" validate:"omitempty,min=1,max=30"`
	DailyWordGoal *int    `json:"daily_word_goal,omitempty" validate:"omitempty,min=1,max=50"`
	PushToken     *string `json:"push_token,omitempty"`
}
