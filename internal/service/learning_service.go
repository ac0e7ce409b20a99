package service

import (
	"context"
	"errors"
	"time"

	"wordvault/internal/config"
	"wordvault/internal/events"
	"wordvault/internal/middleware"
	"wordvault/internal/model"
	"wordvault/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LearningService selects the daily batch and commits finished sessions.
type LearningService interface {
	// SelectTodayBatch picks up to the user's daily goal: remediation
	// words by priority first, then unseen catalog words at random.
	SelectTodayBatch(ctx context.Context, userID string) (*model.LearningBatchResponse, error)
	// CompleteLearning records a finished session: each word gets a
	// stage-0 state and leaves the remediation queue.
	CompleteLearning(ctx context.Context, userID string, wordIDs []uuid.UUID) error
}

type learningService struct {
	db        *gorm.DB
	wordRepo  repository.WordRepository
	stateRepo repository.WordStateRepository
	remRepo   repository.RemediationRepository
	profRepo  repository.ProfileRepository
	recRepo   repository.StudyRecordRepository
	bus       *events.Bus
	cfg       *config.Config
}

func NewLearningService(
	db *gorm.DB,
	wordRepo repository.WordRepository,
	stateRepo repository.WordStateRepository,
	remRepo repository.RemediationRepository,
	profRepo repository.ProfileRepository,
	recRepo repository.StudyRecordRepository,
	bus *events.Bus,
	cfg *config.Config,
) LearningService {
	return &learningService{
		db:        db,
		wordRepo:  wordRepo,
		stateRepo: stateRepo,
		remRepo:   remRepo,
		profRepo:  profRepo,
		recRepo:   recRepo,
		bus:       bus,
		cfg:       cfg,
	}
}

func (s *learningService) SelectTodayBatch(ctx context.Context, userID string) (*model.LearningBatchResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	goal := config.DefaultDailyWordGoal
	profile, err := s.profRepo.Find(ctx, s.db, userID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to load profile for batch selection", "error", err)
		return nil, model.StoreError("Failed to load the user profile.", err)
	}
	if profile != nil && profile.DailyWordGoal > 0 {
		goal = profile.DailyWordGoal
	}

	entries, err := s.remRepo.FindTop(ctx, s.db, userID, goal)
	if err != nil {
		logger.Error("Failed to load remediation entries", "error", err)
		return nil, model.StoreError("Failed to load remediation words.", err)
	}

	words := make([]model.Word, 0, goal)
	picked := make(map[uuid.UUID]bool, goal)
	for _, entry := range entries {
		if entry.Word == nil {
			logger.Warn("Remediation entry with nil Word, skipping", "word_id", entry.WordID)
			continue
		}
		if picked[entry.WordID] {
			continue
		}
		picked[entry.WordID] = true
		words = append(words, *entry.Word)
	}

	if remaining := goal - len(words); remaining > 0 {
		stateIDs, err := s.stateRepo.ListWordIDs(ctx, s.db, userID)
		if err != nil {
			logger.Error("Failed to list word state ids", "error", err)
			return nil, model.StoreError("Failed to select new words.", err)
		}
		exclude := make([]uuid.UUID, 0, len(stateIDs)+len(picked))
		exclude = append(exclude, stateIDs...)
		for id := range picked {
			exclude = append(exclude, id)
		}

		fresh, err := s.wordRepo.FindRandomExcluding(ctx, s.db, exclude, remaining)
		if err != nil {
			logger.Error("Failed to pick random catalog words", "error", err)
			return nil, model.StoreError("Failed to select new words.", err)
		}
		for _, w := range fresh {
			if picked[w.WordID] {
				continue
			}
			picked[w.WordID] = true
			words = append(words, *w)
		}
	}

	if len(words) > goal {
		words = words[:goal]
	}

	logger.Info("Selected today's batch", "batch_size", len(words), "goal", goal, "remediation", len(entries))
	return &model.LearningBatchResponse{Words: words, BatchSize: len(words)}, nil
}

func (s *learningService) CompleteLearning(ctx context.Context, userID string, wordIDs []uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if len(wordIDs) == 0 {
		return model.NewAppError("INVALID_REQUEST", "No words to complete.", "word_ids", model.ErrInvalidInput)
	}

	now := time.Now()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, wordID := range wordIDs {
			if _, err := s.wordRepo.FindByID(ctx, tx, wordID); err != nil {
				if errors.Is(err, model.ErrNotFound) {
					return model.NewAppError("WORD_NOT_FOUND", "A word in the batch does not exist.", "word_ids", model.ErrNotFound)
				}
				return model.StoreError("Failed to verify the batch.", err)
			}

			// Leaving the remediation queue: the new stage-0 state takes
			// over.
			if err := s.remRepo.Delete(ctx, tx, userID, wordID); err != nil && !errors.Is(err, model.ErrNotFound) {
				return model.StoreError("Failed to clear the remediation entry.", err)
			}

			_, err := s.stateRepo.Find(ctx, tx, userID, wordID)
			if err == nil {
				// Already scheduled. Completing a session never resets a
				// word's progress.
				continue
			}
			if !errors.Is(err, model.ErrNotFound) {
				return model.StoreError("Failed to load the word state.", err)
			}

			next := now
			state := &model.WordState{
				UserID:         userID,
				WordID:         wordID,
				Stage:          0,
				LastReviewedAt: now,
				NextReviewAt:   &next,
			}
			if err := s.stateRepo.Save(ctx, tx, state); err != nil {
				return model.StoreError("Failed to create the word state.", err)
			}
		}

		updates := map[string]interface{}{
			"has_studied_today":             true,
			"is_today_learning_complete":    true,
			"is_post_learning_review_ready": true,
			"last_studied_at":               now,
		}
		if err := s.profRepo.Update(ctx, tx, userID, updates); err != nil && !errors.Is(err, model.ErrNotFound) {
			return model.StoreError("Failed to update the profile.", err)
		}

		if err := s.recRepo.Record(ctx, tx, userID, now); err != nil {
			return model.StoreError("Failed to record the study day.", err)
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to complete learning session", "error", err)
		return err
	}

	s.bus.Publish(ctx, events.Event{Topic: events.TopicStateChanged, UserID: userID})
	logger.Info("Learning session completed", "words", len(wordIDs))
	return nil
}
