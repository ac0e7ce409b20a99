//go:generate mockery --name StudyRecordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"time"

	"wordvault/internal/middleware"
	"wordvault/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StudyRecordRepository stores the per-day study markers used by the
// diligence score.
type StudyRecordRepository interface {
	// Record marks the calendar day of t as studied. Recording the same
	// day twice is a no-op.
	Record(ctx context.Context, tx *gorm.DB, userID string, t time.Time) error
	// ListDays returns the studied days of one month in ascending order.
	ListDays(ctx context.Context, db *gorm.DB, userID, yearMonth string) ([]int, error)
}

type gormStudyRecordRepository struct{}

func NewGormStudyRecordRepository() StudyRecordRepository {
	return &gormStudyRecordRepository{}
}

func (r *gormStudyRecordRepository) Record(ctx context.Context, tx *gorm.DB, userID string, t time.Time) error {
	logger := middleware.GetLogger(ctx)
	record := model.StudyRecord{
		UserID:    userID,
		YearMonth: t.Format("2006-01"),
		Day:       t.Day(),
	}
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&record)
	if result.Error != nil {
		logger.Error("Error recording study day in DB", "error", result.Error, "user_id", userID)
		return fmt.Errorf("gormStudyRecordRepository.Record: %w", result.Error)
	}
	return nil
}

func (r *gormStudyRecordRepository) ListDays(ctx context.Context, db *gorm.DB, userID, yearMonth string) ([]int, error) {
	logger := middleware.GetLogger(ctx)
	var days []int
	result := db.WithContext(ctx).Model(&model.StudyRecord{}).
		Where("user_id = ? AND year_month = ?", userID, yearMonth).
		Order("day ASC").
		Pluck("day", &days)
	if result.Error != nil {
		logger.Error("Error listing study days in DB", "error", result.Error, "user_id", userID, "year_month", yearMonth)
		return nil, fmt.Errorf("gormStudyRecordRepository.ListDays: %w", result.Error)
	}
	return days, nil
}
