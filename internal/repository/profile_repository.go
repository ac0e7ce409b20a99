//go:generate mockery --name ProfileRepository --output ./mocks --outpkg mocks --case=underscore
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

// ProfileRepository stores user settings and daily study flags.
type ProfileRepository interface {
	Find(ctx context.Context, db *gorm.DB, userID string) (*model.UserProfile, error)
	Save(ctx context.Context, tx *gorm.DB, profile *model.UserProfile) error
	Update(ctx context.Context, tx *gorm.DB, userID string, updates map[string]interface{}) error
	ListUserIDs(ctx context.Context, db *gorm.DB) ([]string, error)
	// ListWithPushToken returns profiles that can receive reminders.
	ListWithPushToken(ctx context.Context, db *gorm.DB) ([]*model.UserProfile, error)
	// ResetDailyFlags clears every user's per-day study flags.
	ResetDailyFlags(ctx context.Context, tx *gorm.DB) error
}

type gormProfileRepository struct{}

func NewGormProfileRepository() ProfileRepository {
	return &gormProfileRepository{}
}

func (r *gormProfileRepository) Find(ctx context.Context, db *gorm.DB, userID string) (*model.UserProfile, error) {
	logger := middleware.GetLogger(ctx)
	var profile model.UserProfile
	result := db.WithContext(ctx).Where("user_id = ?", userID).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding user profile in DB", "error", result.Error, "user_id", userID)
		return nil, fmt.Errorf("gormProfileRepository.Find: %w", result.Error)
	}
	return &profile, nil
}

func (r *gormProfileRepository) Save(ctx context.Context, tx *gorm.DB, profile *model.UserProfile) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(profile)
	if result.Error != nil {
		logger.Error("Error saving user profile in DB", "error", result.Error, "user_id", profile.UserID)
		return fmt.Errorf("gormProfileRepository.Save: %w", result.Error)
	}
	return nil
}

func (r *gormProfileRepository) Update(ctx context.Context, tx *gorm.DB, userID string, updates map[string]interface{}) error {
	logger := middleware.GetLogger(ctx)
	if len(updates) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).Model(&model.UserProfile{}).Where("user_id = ?", userID).Updates(updates)
	if result.Error != nil {
		logger.Error("Error updating user profile in DB", "error", result.Error, "user_id", userID)
		return fmt.Errorf("gormProfileRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormProfileRepository) ListUserIDs(ctx context.Context, db *gorm.DB) ([]string, error) {
	logger := middleware.GetLogger(ctx)
	var ids []string
	result := db.WithContext(ctx).Model(&model.UserProfile{}).Pluck("user_id", &ids)
	if result.Error != nil {
		logger.Error("Error listing user ids in DB", "error", result.Error)
		return nil, fmt.Errorf("gormProfileRepository.ListUserIDs: %w", result.Error)
	}
	return ids, nil
}

func (r *gormProfileRepository) ListWithPushToken(ctx context.Context, db *gorm.DB) ([]*model.UserProfile, error) {
	logger := middleware.GetLogger(ctx)
	var profiles []*model.UserProfile
	result := db.WithContext(ctx).Where("push_token <> ''").Find(&profiles)
	if result.Error != nil {
		logger.Error("Error listing profiles with push token in DB", "error", result.Error)
		return nil, fmt.Errorf("gormProfileRepository.ListWithPushToken: %w", result.Error)
	}
	return profiles, nil
}

func (r *gormProfileRepository) ResetDailyFlags(ctx context.Context, tx *gorm.DB) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Model(&model.UserProfile{}).
		Where("has_studied_today = ? OR is_today_learning_complete = ? OR is_post_learning_review_ready = ?", true, true, true).
		Updates(map[string]interface{}{
			"has_studied_today":             false,
			"is_today_learning_complete":    false,
			"is_post_learning_review_ready": false,
		})
	if result.Error != nil {
		logger.Error("Error resetting daily profile flags in DB", "error", result.Error)
		return fmt.Errorf("gormProfileRepository.ResetDailyFlags: %w", result.Error)
	}
	return nil
}
