//go:generate mockery --name WordStateRepository --output ./mocks --outpkg mocks --case=underscore
//go:generate mockery --name RemediationRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wordvault/internal/middleware"
	"wordvault/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WordStateRepository stores per-user spaced-repetition records.
type WordStateRepository interface {
	Find(ctx context.Context, db *gorm.DB, userID string, wordID uuid.UUID) (*model.WordState, error)
	Save(ctx context.Context, tx *gorm.DB, state *model.WordState) error
	Delete(ctx context.Context, tx *gorm.DB, userID string, wordID uuid.UUID) error
	// ListWordIDs returns every word id the user has a state for,
	// mastered or not.
	ListWordIDs(ctx context.Context, db *gorm.DB, userID string) ([]uuid.UUID, error)
	// FindStageZero returns stage-0 states with their words. Stage-0
	// words are reviewable immediately, so there is no time filter.
	FindStageZero(ctx context.Context, db *gorm.DB, userID string) ([]*model.WordState, error)
	// FindDue returns unmastered states of stage 1 and above whose
	// next_review_at has passed, oldest due first, with their words.
	FindDue(ctx context.Context, db *gorm.DB, userID string, now time.Time) ([]*model.WordState, error)
	CountDue(ctx context.Context, db *gorm.DB, userID string, now time.Time) (int64, error)
	// CountByStage returns per-stage counts of all states. Mastered
	// words sit at the final stage.
	CountByStage(ctx context.Context, db *gorm.DB, userID string) ([7]int, error)
}

type gormWordStateRepository struct{}

func NewGormWordStateRepository() WordStateRepository {
	return &gormWordStateRepository{}
}

func (r *gormWordStateRepository) Find(ctx context.Context, db *gorm.DB, userID string, wordID uuid.UUID) (*model.WordState, error) {
	logger := middleware.GetLogger(ctx)
	var state model.WordState
	result := db.WithContext(ctx).Where("user_id = ? AND word_id = ?", userID, wordID).First(&state)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding word state in DB", "error", result.Error, "user_id", userID, "word_id", wordID.String())
		return nil, fmt.Errorf("gormWordStateRepository.Find: %w", result.Error)
	}
	return &state, nil
}

func (r *gormWordStateRepository) Save(ctx context.Context, tx *gorm.DB, state *model.WordState) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "word_id"}},
		UpdateAll: true,
	}).Create(state)
	if result.Error != nil {
		logger.Error("Error saving word state in DB", "error", result.Error, "user_id", state.UserID, "word_id", state.WordID.String())
		return fmt.Errorf("gormWordStateRepository.Save: %w", result.Error)
	}
	return nil
}

func (r *gormWordStateRepository) Delete(ctx context.Context, tx *gorm.DB, userID string, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("user_id = ? AND word_id = ?", userID, wordID).Delete(&model.WordState{})
	if result.Error != nil {
		logger.Error("Error deleting word state in DB", "error", result.Error, "user_id", userID, "word_id", wordID.String())
		return fmt.Errorf("gormWordStateRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormWordStateRepository) ListWordIDs(ctx context.Context, db *gorm.DB, userID string) ([]uuid.UUID, error) {
	logger := middleware.GetLogger(ctx)
	var ids []uuid.UUID
	result := db.WithContext(ctx).Model(&model.WordState{}).Where("user_id = ?", userID).Pluck("word_id", &ids)
	if result.Error != nil {
		logger.Error("Error listing word state ids in DB", "error", result.Error, "user_id", userID)
		return nil, fmt.Errorf("gormWordStateRepository.ListWordIDs: %w", result.Error)
	}
	return ids, nil
}

func (r *gormWordStateRepository) FindStageZero(ctx context.Context, db *gorm.DB, userID string) ([]*model.WordState, error) {
	logger := middleware.GetLogger(ctx)
	var states []*model.WordState
	result := db.WithContext(ctx).
		Preload("Word").
		Where("user_id = ? AND stage = 0 AND is_mastered = ?", userID, false).
		Order("last_reviewed_at ASC").
		Find(&states)
	if result.Error != nil {
		logger.Error("Error finding stage-0 states in DB", "error", result.Error, "user_id", userID)
		return nil, fmt.Errorf("gormWordStateRepository.FindStageZero: %w", result.Error)
	}
	return states, nil
}

func (r *gormWordStateRepository) FindDue(ctx context.Context, db *gorm.DB, userID string, now time.Time) ([]*model.WordState, error) {
	logger := middleware.GetLogger(ctx)
	var states []*model.WordState
	result := db.WithContext(ctx).
		Preload("Word").
		Where("user_id = ? AND stage >= 1 AND is_mastered = ? AND next_review_at IS NOT NULL AND next_review_at <= ?", userID, false, now).
		Order("next_review_at ASC").
		Find(&states)
	if result.Error != nil {
		logger.Error("Error finding due states in DB", "error", result.Error, "user_id", userID)
		return nil, fmt.Errorf("gormWordStateRepository.FindDue: %w", result.Error)
	}
	return states, nil
}

func (r *gormWordStateRepository) CountDue(ctx context.Context, db *gorm.DB, userID string, now time.Time) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.WordState{}).
		Where("user_id = ? AND stage >= 1 AND is_mastered = ? AND next_review_at IS NOT NULL AND next_review_at <= ?", userID, false, now).
		Count(&count)
	if result.Error != nil {
		logger.Error("Error counting due states in DB", "error", result.Error, "user_id", userID)
		return 0, fmt.Errorf("gormWordStateRepository.CountDue: %w", result.Error)
	}
	return count, nil
}

func (r *gormWordStateRepository) CountByStage(ctx context.Context, db *gorm.DB, userID string) ([7]int, error) {
	logger := middleware.GetLogger(ctx)
	var rows []struct {
		Stage int
		N     int
	}
	result := db.WithContext(ctx).Model(&model.WordState{}).
		Select("stage, COUNT(*) AS n").
		Where("user_id = ?", userID).
		Group("stage").
		Scan(&rows)
	if result.Error != nil {
		logger.Error("Error counting states by stage in DB", "error", result.Error, "user_id", userID)
		return [7]int{}, fmt.Errorf("gormWordStateRepository.CountByStage: %w", result.Error)
	}
	var counts [7]int
	for _, row := range rows {
		if row.Stage >= 0 && row.Stage <= model.MasteredStage {
			counts[row.Stage] += row.N
		}
	}
	return counts, nil
}

// RemediationRepository stores the wrong-answer priority queue.
type RemediationRepository interface {
	Find(ctx context.Context, db *gorm.DB, userID string, wordID uuid.UUID) (*model.RemediationEntry, error)
	// Bump creates the entry with score 1 or increments an existing one.
	Bump(ctx context.Context, tx *gorm.DB, userID string, wordID uuid.UUID) error
	Delete(ctx context.Context, tx *gorm.DB, userID string, wordID uuid.UUID) error
	// FindTop returns up to limit entries, highest priority first, with
	// their words.
	FindTop(ctx context.Context, db *gorm.DB, userID string, limit int) ([]*model.RemediationEntry, error)
}

type gormRemediationRepository struct{}

func NewGormRemediationRepository() RemediationRepository {
	return &gormRemediationRepository{}
}

func (r *gormRemediationRepository) Find(ctx context.Context, db *gorm.DB, userID string, wordID uuid.UUID) (*model.RemediationEntry, error) {
	logger := middleware.GetLogger(ctx)
	var entry model.RemediationEntry
	result := db.WithContext(ctx).Where("user_id = ? AND word_id = ?", userID, wordID).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding remediation entry in DB", "error", result.Error, "user_id", userID, "word_id", wordID.String())
		return nil, fmt.Errorf("gormRemediationRepository.Find: %w", result.Error)
	}
	return &entry, nil
}

func (r *gormRemediationRepository) Bump(ctx context.Context, tx *gorm.DB, userID string, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	entry := model.RemediationEntry{UserID: userID, WordID: wordID, PriorityScore: 1}
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "word_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"priority_score": gorm.Expr("remediation_entries.priority_score + 1"),
			"updated_at":     time.Now(),
		}),
	}).Create(&entry)
	if result.Error != nil {
		logger.Error("Error bumping remediation entry in DB", "error", result.Error, "user_id", userID, "word_id", wordID.String())
		return fmt.Errorf("gormRemediationRepository.Bump: %w", result.Error)
	}
	return nil
}

func (r *gormRemediationRepository) Delete(ctx context.Context, tx *gorm.DB, userID string, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("user_id = ? AND word_id = ?", userID, wordID).Delete(&model.RemediationEntry{})
	if result.Error != nil {
		logger.Error("Error deleting remediation entry in DB", "error", result.Error, "user_id", userID, "word_id", wordID.String())
		return fmt.Errorf("gormRemediationRepository.Delete: %w", result.Error)
	}
	return nil
}

func (r *gormRemediationRepository) FindTop(ctx context.Context, db *gorm.DB, userID string, limit int) ([]*model.RemediationEntry, error) {
	logger := middleware.GetLogger(ctx)
	if limit <= 0 {
		return nil, nil
	}
	var entries []*model.RemediationEntry
	result := db.WithContext(ctx).
		Preload("Word").
		Where("user_id = ?", userID).
		Order("priority_score DESC, updated_at ASC").
		Limit(limit).
		Find(&entries)
	if result.Error != nil {
		logger.Error("Error finding top remediation entries in DB", "error", result.Error, "user_id", userID)
		return nil, fmt.Errorf("gormRemediationRepository.FindTop: %w", result.Error)
	}
	return entries, nil
}
