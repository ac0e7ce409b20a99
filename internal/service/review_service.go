package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"wordvault/internal/config"
	"wordvault/internal/events"
	"wordvault/internal/middleware"
	"wordvault/internal/model"
	"wordvault/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewService applies answer results to the spaced-repetition state and
// serves the due-word queries.
type ReviewService interface {
	// SubmitAnswer advances the word on a correct answer and demotes it
	// to the remediation queue on a wrong one.
	SubmitAnswer(ctx context.Context, userID string, wordID uuid.UUID, isCorrect bool) error
	// GetImmediateReviewWords returns stage-0 words, which are always
	// reviewable.
	GetImmediateReviewWords(ctx context.Context, userID string) ([]*model.ReviewWordResponse, error)
	// GetCumulativeReviewWords returns stage-1-and-up words whose wait
	// has elapsed, oldest due first.
	GetCumulativeReviewWords(ctx context.Context, userID string) ([]*model.ReviewWordResponse, error)
	GetCumulativeReviewCount(ctx context.Context, userID string) (int64, error)
}

type reviewService struct {
	db        *gorm.DB
	stateRepo repository.WordStateRepository
	remRepo   repository.RemediationRepository
	groupRepo repository.GroupRepository
	recRepo   repository.StudyRecordRepository
	bus       *events.Bus
	cfg       *config.Config
}

func NewReviewService(
	db *gorm.DB,
	stateRepo repository.WordStateRepository,
	remRepo repository.RemediationRepository,
	groupRepo repository.GroupRepository,
	recRepo repository.StudyRecordRepository,
	bus *events.Bus,
	cfg *config.Config,
) ReviewService {
	return &reviewService{
		db:        db,
		stateRepo: stateRepo,
		remRepo:   remRepo,
		groupRepo: groupRepo,
		recRepo:   recRepo,
		bus:       bus,
		cfg:       cfg,
	}
}

func (s *reviewService) SubmitAnswer(ctx context.Context, userID string, wordID uuid.UUID, isCorrect bool) error {
	logger := middleware.GetLogger(ctx).With("user_id", userID, "word_id", wordID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if isCorrect {
			return s.applyCorrect(ctx, tx, userID, wordID, logger)
		}
		return s.applyIncorrect(ctx, tx, userID, wordID, logger)
	})
	if err != nil {
		return err
	}

	s.bus.Publish(ctx, events.Event{Topic: events.TopicStateChanged, UserID: userID})
	return nil
}

// applyCorrect advances the stage. Reaching the final stage masters the
// word and removes it from the schedule. A word with no state is not in
// spaced repetition; it re-enters at stage 0 through a learning session,
// never straight from the remediation queue.
func (s *reviewService) applyCorrect(ctx context.Context, tx *gorm.DB, userID string, wordID uuid.UUID, logger *slog.Logger) error {
	now := time.Now()

	state, err := s.stateRepo.Find(ctx, tx, userID, wordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("No word state for correct answer, rejecting")
			return model.NewAppError("WORD_STATE_NOT_FOUND", "The word is not in spaced repetition.", "word_id", model.ErrNotFound)
		}
		logger.Error("Error finding word state in transaction", "error", err)
		return model.StoreError("Failed to load the word state.", err)
	}

	if state.IsMastered {
		logger.Info("Word already mastered, answer ignored")
		return nil
	}
	newStage := state.Stage + 1

	if newStage >= model.MasteredStage {
		state.Stage = model.MasteredStage
		state.IsMastered = true
		state.NextReviewAt = nil
	} else {
		state.Stage = newStage
		next := now.Add(time.Duration(config.ReviewIntervals[newStage-1]) * s.cfg.IntervalUnit())
		state.NextReviewAt = &next
	}
	state.LastReviewedAt = now

	if err := s.stateRepo.Save(ctx, tx, state); err != nil {
		logger.Error("Error saving word state", "error", err)
		return model.StoreError("Failed to save the word state.", err)
	}

	// A word with a state never sits in the remediation queue too.
	if err := s.remRepo.Delete(ctx, tx, userID, wordID); err != nil && !errors.Is(err, model.ErrNotFound) {
		logger.Error("Error clearing remediation entry", "error", err)
		return model.StoreError("Failed to clear the remediation entry.", err)
	}

	if err := s.recRepo.Record(ctx, tx, userID, now); err != nil {
		logger.Error("Error recording study day", "error", err)
		return model.StoreError("Failed to record the study day.", err)
	}

	logger.Info("Correct answer applied", "stage", state.Stage, "mastered", state.IsMastered)
	return nil
}

// applyIncorrect drops the word back to the remediation queue: the state
// row is deleted and the entry's priority grows by one.
func (s *reviewService) applyIncorrect(ctx context.Context, tx *gorm.DB, userID string, wordID uuid.UUID, logger *slog.Logger) error {
	now := time.Now()

	if err := s.stateRepo.Delete(ctx, tx, userID, wordID); err != nil && !errors.Is(err, model.ErrNotFound) {
		logger.Error("Error deleting word state", "error", err)
		return model.StoreError("Failed to reset the word state.", err)
	}

	if err := s.remRepo.Bump(ctx, tx, userID, wordID); err != nil {
		logger.Error("Error bumping remediation entry", "error", err)
		return model.StoreError("Failed to queue the word for remediation.", err)
	}

	if err := s.groupRepo.UpdateMemberSnapshots(ctx, tx, userID, map[string]interface{}{
		"today_wrong_count": gorm.Expr("today_wrong_count + 1"),
	}); err != nil {
		logger.Error("Error bumping group wrong count", "error", err)
		return model.StoreError("Failed to update group snapshots.", err)
	}

	if err := s.recRepo.Record(ctx, tx, userID, now); err != nil {
		logger.Error("Error recording study day", "error", err)
		return model.StoreError("Failed to record the study day.", err)
	}

	logger.Info("Incorrect answer applied, word queued for remediation")
	return nil
}

func (s *reviewService) GetImmediateReviewWords(ctx context.Context, userID string) ([]*model.ReviewWordResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	states, err := s.stateRepo.FindStageZero(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to find stage-0 words", "error", err)
		return nil, model.StoreError("Failed to load review words.", err)
	}
	return toReviewResponses(states, logger), nil
}

func (s *reviewService) GetCumulativeReviewWords(ctx context.Context, userID string) ([]*model.ReviewWordResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	states, err := s.stateRepo.FindDue(ctx, s.db, userID, time.Now())
	if err != nil {
		logger.Error("Failed to find due words", "error", err)
		return nil, model.StoreError("Failed to load review words.", err)
	}
	return toReviewResponses(states, logger), nil
}

func (s *reviewService) GetCumulativeReviewCount(ctx context.Context, userID string) (int64, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	count, err := s.stateRepo.CountDue(ctx, s.db, userID, time.Now())
	if err != nil {
		logger.Error("Failed to count due words", "error", err)
		return 0, model.StoreError("Failed to count review words.", err)
	}
	return count, nil
}

func toReviewResponses(states []*model.WordState, logger *slog.Logger) []*model.ReviewWordResponse {
	responses := make([]*model.ReviewWordResponse, 0, len(states))
	for _, st := range states {
		if st.Word == nil {
			logger.Warn("Found state with nil Word, skipping", "word_id", st.WordID)
			continue
		}
		responses = append(responses, &model.ReviewWordResponse{
			WordID:  st.WordID,
			Text:    st.Word.Text,
			Meaning: st.Word.Meaning,
			Stage:   st.Stage,
		})
	}
	return responses
}
