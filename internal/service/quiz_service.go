package service

import (
	"context"

	"wordvault/internal/middleware"
	"wordvault/internal/model"
	"wordvault/internal/repository"
	"wordvault/internal/study"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizService builds multiple-choice questions for a word batch.
type QuizService interface {
	BuildQuestions(ctx context.Context, userID string, wordIDs []uuid.UUID) ([]model.QuizQuestion, error)
	// BuildSessionQuestions lays the batch questions out as a full
	// learning session: every word once per pass, shuffled within each
	// pass, never the same word twice in a row across a pass boundary.
	BuildSessionQuestions(ctx context.Context, userID string, wordIDs []uuid.UUID) (*model.QuizSessionResponse, error)
}

type quizService struct {
	db       *gorm.DB
	wordRepo repository.WordRepository
	builder  *study.QuizBuilder
}

func NewQuizService(db *gorm.DB, wordRepo repository.WordRepository, builder *study.QuizBuilder) QuizService {
	if builder == nil {
		builder = study.NewQuizBuilder(nil)
	}
	return &quizService{db: db, wordRepo: wordRepo, builder: builder}
}

func (s *quizService) BuildQuestions(ctx context.Context, userID string, wordIDs []uuid.UUID) ([]model.QuizQuestion, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	_, questions, err := s.buildBatch(ctx, wordIDs)
	if err != nil {
		logger.Error("Failed to build quiz questions", "error", err)
		return nil, err
	}
	logger.Info("Built quiz questions", "count", len(questions))
	return questions, nil
}

func (s *quizService) BuildSessionQuestions(ctx context.Context, userID string, wordIDs []uuid.UUID) (*model.QuizSessionResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	batch, questions, err := s.buildBatch(ctx, wordIDs)
	if err != nil {
		logger.Error("Failed to build quiz session", "error", err)
		return nil, err
	}

	byWord := make(map[uuid.UUID]model.QuizQuestion, len(questions))
	for _, q := range questions {
		byWord[q.WordID] = q
	}

	sess, err := study.NewSession(batch, nil)
	if err != nil {
		return nil, model.NewAppError("INVALID_REQUEST", "No words to quiz.", "word_ids", err)
	}
	sequence := make([]model.QuizQuestion, 0, len(batch)*study.Cycles)
	for {
		sequence = append(sequence, byWord[sess.Current().WordID])
		if !sess.Advance() {
			break
		}
	}

	logger.Info("Built quiz session", "batch_size", len(batch), "presentations", len(sequence))
	return &model.QuizSessionResponse{
		Questions: sequence,
		BatchSize: len(batch),
		Cycles:    study.Cycles,
	}, nil
}

func (s *quizService) buildBatch(ctx context.Context, wordIDs []uuid.UUID) ([]model.Word, []model.QuizQuestion, error) {
	if len(wordIDs) == 0 {
		return nil, nil, model.NewAppError("INVALID_REQUEST", "No words to quiz.", "word_ids", model.ErrInvalidInput)
	}

	words, err := s.wordRepo.FindByIDs(ctx, s.db, wordIDs)
	if err != nil {
		return nil, nil, model.StoreError("Failed to load quiz words.", err)
	}
	if len(words) != len(wordIDs) {
		return nil, nil, model.NewAppError("WORD_NOT_FOUND", "A word in the batch does not exist.", "word_ids", model.ErrNotFound)
	}

	batch := make([]model.Word, len(words))
	batchMeanings := make([]string, len(words))
	for i, w := range words {
		batch[i] = *w
		batchMeanings[i] = w.Meaning
	}

	// Small batches need catalog meanings to fill out the options.
	var extras []string
	if len(batch) < study.OptionCount {
		extras, err = s.wordRepo.FindRandomMeanings(ctx, s.db, wordIDs, batchMeanings, study.OptionCount*len(batch))
		if err != nil {
			return nil, nil, model.StoreError("Failed to build quiz options.", err)
		}
	}

	return batch, s.builder.Build(batch, dedupe(extras)), nil
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := values[:0]
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
