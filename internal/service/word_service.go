package service

import (
	"context"

	"wordvault/internal/middleware"
	"wordvault/internal/model"
	"wordvault/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WordService reads and seeds the vocabulary catalog.
type WordService interface {
	List(ctx context.Context, offset, limit int) (*model.WordListResponse, error)
	// Import creates catalog entries in one transaction and returns how
	// many were written.
	Import(ctx context.Context, items []model.ImportWordItem) (int, error)
}

type wordService struct {
	db       *gorm.DB
	wordRepo repository.WordRepository
}

func NewWordService(db *gorm.DB, wordRepo repository.WordRepository) WordService {
	return &wordService{db: db, wordRepo: wordRepo}
}

func (s *wordService) List(ctx context.Context, offset, limit int) (*model.WordListResponse, error) {
	logger := middleware.GetLogger(ctx)

	words, err := s.wordRepo.List(ctx, s.db, offset, limit)
	if err != nil {
		logger.Error("Failed to list catalog words", "error", err)
		return nil, model.StoreError("Failed to list words.", err)
	}
	total, err := s.wordRepo.CountAll(ctx, s.db)
	if err != nil {
		logger.Error("Failed to count catalog words", "error", err)
		return nil, model.StoreError("Failed to list words.", err)
	}

	resp := &model.WordListResponse{Words: make([]model.Word, 0, len(words)), Total: total}
	for _, w := range words {
		resp.Words = append(resp.Words, *w)
	}
	return resp, nil
}

func (s *wordService) Import(ctx context.Context, items []model.ImportWordItem) (int, error) {
	logger := middleware.GetLogger(ctx)

	if len(items) == 0 {
		return 0, model.NewAppError("INVALID_REQUEST", "No words to import.", "words", model.ErrInvalidInput)
	}

	words := make([]*model.Word, len(items))
	for i, item := range items {
		words[i] = &model.Word{
			WordID:  uuid.New(),
			Text:    item.Text,
			Meaning: item.Meaning,
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.wordRepo.CreateInBatches(ctx, tx, words)
	})
	if err != nil {
		logger.Error("Failed to import catalog words", "error", err)
		return 0, model.StoreError("Failed to import words.", err)
	}

	logger.Info("Catalog words imported", "count", len(words))
	return len(words), nil
}
