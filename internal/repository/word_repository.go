//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"wordvault/internal/middleware"
	"wordvault/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WordRepository reads the fixed vocabulary catalog.
type WordRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.Word, error)
	FindByIDs(ctx context.Context, db *gorm.DB, wordIDs []uuid.UUID) ([]*model.Word, error)
	CountAll(ctx context.Context, db *gorm.DB) (int64, error)
	// List returns a page of the catalog ordered by text.
	List(ctx context.Context, db *gorm.DB, offset, limit int) ([]*model.Word, error)
	// FindRandomExcluding returns up to limit catalog words whose ids are
	// not in excludeIDs, in random order.
	FindRandomExcluding(ctx context.Context, db *gorm.DB, excludeIDs []uuid.UUID, limit int) ([]*model.Word, error)
	// FindRandomMeanings returns up to limit meanings, skipping the given
	// word ids and meaning strings. Callers dedupe. Used for quiz
	// distractors.
	FindRandomMeanings(ctx context.Context, db *gorm.DB, excludeWordIDs []uuid.UUID, excludeMeanings []string, limit int) ([]string, error)
	CreateInBatches(ctx context.Context, tx *gorm.DB, words []*model.Word) error
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

func (r *gormWordRepository) FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var word model.Word
	result := db.WithContext(ctx).Where("word_id = ?", wordID).First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding word by ID in DB", "error", result.Error, "word_id", wordID.String())
		return nil, fmt.Errorf("gormWordRepository.FindByID: %w", result.Error)
	}
	return &word, nil
}

func (r *gormWordRepository) FindByIDs(ctx context.Context, db *gorm.DB, wordIDs []uuid.UUID) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	if len(wordIDs) == 0 {
		return nil, nil
	}
	var words []*model.Word
	result := db.WithContext(ctx).Where("word_id IN ?", wordIDs).Find(&words)
	if result.Error != nil {
		logger.Error("Error finding words by IDs in DB", "error", result.Error)
		return nil, fmt.Errorf("gormWordRepository.FindByIDs: %w", result.Error)
	}
	return words, nil
}

func (r *gormWordRepository) CountAll(ctx context.Context, db *gorm.DB) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Word{}).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting words in DB", "error", result.Error)
		return 0, fmt.Errorf("gormWordRepository.CountAll: %w", result.Error)
	}
	return count, nil
}

func (r *gormWordRepository) List(ctx context.Context, db *gorm.DB, offset, limit int) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word
	result := db.WithContext(ctx).Order("text ASC").Offset(offset).Limit(limit).Find(&words)
	if result.Error != nil {
		logger.Error("Error listing words in DB", "error", result.Error)
		return nil, fmt.Errorf("gormWordRepository.List: %w", result.Error)
	}
	return words, nil
}

func (r *gormWordRepository) FindRandomExcluding(ctx context.Context, db *gorm.DB, excludeIDs []uuid.UUID, limit int) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	if limit <= 0 {
		return nil, nil
	}
	var words []*model.Word
	query := db.WithContext(ctx).Model(&model.Word{})
	if len(excludeIDs) > 0 {
		query = query.Where("word_id NOT IN ?", excludeIDs)
	}
	// RANDOM() is understood by both postgres and sqlite.
	result := query.Order("RANDOM()").Limit(limit).Find(&words)
	if result.Error != nil {
		logger.Error("Error finding random words in DB", "error", result.Error)
		return nil, fmt.Errorf("gormWordRepository.FindRandomExcluding: %w", result.Error)
	}
	return words, nil
}

func (r *gormWordRepository) FindRandomMeanings(ctx context.Context, db *gorm.DB, excludeWordIDs []uuid.UUID, excludeMeanings []string, limit int) ([]string, error) {
	logger := middleware.GetLogger(ctx)
	if limit <= 0 {
		return nil, nil
	}
	var meanings []string
	query := db.WithContext(ctx).Model(&model.Word{})
	if len(excludeWordIDs) > 0 {
		query = query.Where("word_id NOT IN ?", excludeWordIDs)
	}
	if len(excludeMeanings) > 0 {
		query = query.Where("meaning NOT IN ?", excludeMeanings)
	}
	result := query.Order("RANDOM()").Limit(limit).Pluck("meaning", &meanings)
	if result.Error != nil {
		logger.Error("Error finding random meanings in DB", "error", result.Error)
		return nil, fmt.Errorf("gormWordRepository.FindRandomMeanings: %w", result.Error)
	}
	return meanings, nil
}

func (r *gormWordRepository) CreateInBatches(ctx context.Context, tx *gorm.DB, words []*model.Word) error {
	logger := middleware.GetLogger(ctx)
	if len(words) == 0 {
		return nil
	}
	result := tx.WithContext(ctx).CreateInBatches(words, 100)
	if result.Error != nil {
		logger.Error("Error creating words in DB", "error", result.Error)
		return fmt.Errorf("gormWordRepository.CreateInBatches: %w", result.Error)
	}
	return nil
}
