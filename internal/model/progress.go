// internal/model/progress.go
package model

import "time"

// ProgressSummary is the denormalized per-user progress snapshot the
// aggregator recomputes after every state change.
type ProgressSummary struct {
	UserID                    string     `gorm:"primaryKey" json:"user_id"`
	Stage0                    int        `gorm:"not null;default:0" json:"stage_0"`
	Stage1                    int        `gorm:"not null;default:0" json:"stage_1"`
	Stage2                    int        `gorm:"not null;default:0" json:"stage_2"`
	Stage3                    int        `gorm:"not null;default:0" json:"stage_3"`
	Stage4                    int        `gorm:"not null;default:0" json:"stage_4"`
	Stage5                    int        `gorm:"not null;default:0" json:"stage_5"`
	Stage6                    int        `gorm:"not null;default:0" json:"stage_6"`
	ProgressRate              float64    `gorm:"not null;default:0" json:"progress_rate"`
	DiligenceScore            int        `gorm:"not null;default:100" json:"diligence_score"`
	EstimatedCompletionDate   *time.Time `json:"estimated_completion_date"`
	TodayReviewCount          int        `gorm:"not null;default:0" json:"today_review_count"`
	DailyWordGoal             int        `gorm:"not null;default:10" json:"daily_word_goal"`
	HasStudiedToday           bool       `gorm:"not null;default:false" json:"has_studied_today"`
	IsTodayLearningComplete   bool       `gorm:"not null;default:false" json:"is_today_learning_complete"`
	IsPostLearningReviewReady bool       `gorm:"not null;default:false" json:"is_post_learning_review_ready"`
	UpdatedAt                 time.Time  `json:"updated_at"`
}

func (ProgressSummary) TableName() string {
	return "progress_summaries"
}

// StageCounts returns the histogram as a slice indexed by stage.
func (s *ProgressSummary) StageCounts() [7]int {
	return [7]int{s.Stage0, s.Stage1, s.Stage2, s.Stage3, s.Stage4, s.Stage5, s.Stage6}
}

// SetStageCounts writes the histogram columns from a slice indexed by stage.
func (s *ProgressSummary) SetStageCounts(counts [7]int) {
	s.Stage0, s.Stage1, s.Stage2, s.Stage3 = counts[0], counts[1], counts[2], counts[3]
	s.Stage4, s.Stage5, s.Stage6 = counts[4], counts[5], counts[6]
}

// StudyRecord marks one calendar day on which the user studied. Rows are
// the input to the monthly diligence score.
type StudyRecord struct {
	UserID    string    `gorm:"primaryKey" json:"user_id"`
	YearMonth string    `gorm:"primaryKey;size:7" json:"year_month"` // "2006-01"
	Day       int       `gorm:"primaryKey" json:"day"`
	CreatedAt time.Time `json:"-"`
}

func (StudyRecord) TableName() string {
	return "study_records"
}
