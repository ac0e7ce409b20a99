//go:generate mockery --name SummaryRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"wordvault/internal/middleware"
	"wordvault/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SummaryRepository stores the denormalized progress snapshots.
type SummaryRepository interface {
	Find(ctx context.Context, db *gorm.DB, userID string) (*model.ProgressSummary, error)
	Save(ctx context.Context, tx *gorm.DB, summary *model.ProgressSummary) error
}

type gormSummaryRepository struct{}

func NewGormSummaryRepository() SummaryRepository {
	return &gormSummaryRepository{}
}

func (r *gormSummaryRepository) Find(ctx context.Context, db *gorm.DB, userID string) (*model.ProgressSummary, error) {
	logger := middleware.GetLogger(ctx)
	var summary model.ProgressSummary
	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&summary)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding progress summary in DB", "error", result.Error, "user_id", userID)
		return nil, fmt.Errorf("gormSummaryRepository.Find: %w", result.Error)
	}
	return &summary, nil
}

func (r *gormSummaryRepository) Save(ctx context.Context, tx *gorm.DB, summary *model.ProgressSummary) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(summary)
	if result.Error != nil {
		logger.Error("Error saving progress summary in DB", "error", result.Error, "user_id", summary.UserID)
		return fmt.Errorf("gormSummaryRepository.Save: %w", result.Error)
	}
	return nil
}
