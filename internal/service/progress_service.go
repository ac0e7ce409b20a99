package service

import (
	"context"
	"errors"
	"math"
	"time"

	"wordvault/internal/config"
	"wordvault/internal/events"
	"wordvault/internal/middleware"
	"wordvault/internal/model"
	"wordvault/internal/repository"

	"gorm.io/gorm"
)

// MemberSyncer pushes a user's fresh summary into their group snapshots.
// GroupService implements it.
type MemberSyncer interface {
	SyncMemberSnapshots(ctx context.Context, userID string, summary *model.ProgressSummary) error
}

// ProgressService maintains the denormalized per-user progress summary.
type ProgressService interface {
	Get(ctx context.Context, userID string) (*model.ProgressSummary, error)
	// Recompute rebuilds the summary from the word states and study
	// records, persists it, and fans it out to the user's groups.
	Recompute(ctx context.Context, userID string) (*model.ProgressSummary, error)
	RecomputeAll(ctx context.Context) error
	// SubscribeTo recomputes on every state-change event. The returned
	// handle must be closed on shutdown.
	SubscribeTo(bus *events.Bus) *events.Subscription
}

type progressService struct {
	db        *gorm.DB
	stateRepo repository.WordStateRepository
	profRepo  repository.ProfileRepository
	sumRepo   repository.SummaryRepository
	recRepo   repository.StudyRecordRepository
	syncer    MemberSyncer
	cfg       *config.Config
}

func NewProgressService(
	db *gorm.DB,
	stateRepo repository.WordStateRepository,
	profRepo repository.ProfileRepository,
	sumRepo repository.SummaryRepository,
	recRepo repository.StudyRecordRepository,
	syncer MemberSyncer,
	cfg *config.Config,
) ProgressService {
	return &progressService{
		db:        db,
		stateRepo: stateRepo,
		profRepo:  profRepo,
		sumRepo:   sumRepo,
		recRepo:   recRepo,
		syncer:    syncer,
		cfg:       cfg,
	}
}

func (s *progressService) Get(ctx context.Context, userID string) (*model.ProgressSummary, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	summary, err := s.sumRepo.Find(ctx, s.db, userID)
	if err == nil {
		return summary, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to load progress summary", "error", err)
		return nil, model.StoreError("Failed to load the progress summary.", err)
	}

	// First read for this user: build it on the spot.
	return s.Recompute(ctx, userID)
}

func (s *progressService) Recompute(ctx context.Context, userID string) (*model.ProgressSummary, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)
	now := time.Now()

	counts, err := s.stateRepo.CountByStage(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to count states by stage", "error", err)
		return nil, model.StoreError("Failed to aggregate progress.", err)
	}

	dueCount, err := s.stateRepo.CountDue(ctx, s.db, userID, now)
	if err != nil {
		logger.Error("Failed to count due words", "error", err)
		return nil, model.StoreError("Failed to aggregate progress.", err)
	}

	profile, err := s.profRepo.Find(ctx, s.db, userID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to load profile", "error", err)
		return nil, model.StoreError("Failed to aggregate progress.", err)
	}

	days, err := s.recRepo.ListDays(ctx, s.db, userID, now.Format("2006-01"))
	if err != nil {
		logger.Error("Failed to list study days", "error", err)
		return nil, model.StoreError("Failed to aggregate progress.", err)
	}

	totalWords := s.cfg.App.TotalWords
	goal := config.DefaultDailyWordGoal
	if profile != nil && profile.DailyWordGoal > 0 {
		goal = profile.DailyWordGoal
	}

	// The histogram shows the spaced-repetition pipeline: stages 1..6
	// directly (mastered words stay counted at the final stage), and
	// everything not yet in rotation in the waiting bucket, so the bars
	// always sum to the catalog size.
	inPipeline := 0
	for stage := 1; stage <= model.MasteredStage; stage++ {
		inPipeline += counts[stage]
	}
	hist := counts
	hist[0] = totalWords - inPipeline
	if hist[0] < 0 {
		hist[0] = 0
	}

	summary := &model.ProgressSummary{
		UserID:           userID,
		DiligenceScore:   diligenceScore(days, now),
		TodayReviewCount: int(dueCount),
		DailyWordGoal:    goal,
		UpdatedAt:        now,
	}
	summary.SetStageCounts(hist)
	if totalWords > 0 {
		summary.ProgressRate = math.Round(float64(inPipeline)/float64(totalWords)*1000) / 10
	}
	date := now.AddDate(0, 0, estimatedCompletionDays(counts, totalWords, goal))
	summary.EstimatedCompletionDate = &date
	if profile != nil {
		summary.HasStudiedToday = profile.HasStudiedToday
		summary.IsTodayLearningComplete = profile.IsTodayLearningComplete
		summary.IsPostLearningReviewReady = profile.IsPostLearningReviewReady
	}

	if err := s.sumRepo.Save(ctx, s.db, summary); err != nil {
		logger.Error("Failed to persist progress summary", "error", err)
		return nil, model.StoreError("Failed to save the progress summary.", err)
	}

	// Group snapshots lag behind rather than fail the whole recompute.
	if s.syncer != nil {
		if err := s.syncer.SyncMemberSnapshots(ctx, userID, summary); err != nil {
			logger.Error("Group snapshot fan-out failed", "error", err)
		}
	}

	logger.Debug("Progress summary recomputed", "progress_rate", summary.ProgressRate, "due", summary.TodayReviewCount)
	return summary, nil
}

func (s *progressService) RecomputeAll(ctx context.Context) error {
	logger := middleware.GetLogger(ctx)

	userIDs, err := s.profRepo.ListUserIDs(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list users for recompute", "error", err)
		return err
	}

	var failed int
	for _, userID := range userIDs {
		if _, err := s.Recompute(ctx, userID); err != nil {
			failed++
			logger.Error("Recompute failed for user", "user_id", userID, "error", err)
		}
	}
	logger.Info("Recomputed progress for all users", "total", len(userIDs), "failed", failed)
	if failed > 0 {
		return model.ErrInternalServer
	}
	return nil
}

func (s *progressService) SubscribeTo(bus *events.Bus) *events.Subscription {
	return bus.Subscribe(events.TopicStateChanged, func(ctx context.Context, ev events.Event) {
		if ev.UserID == "" {
			return
		}
		if _, err := s.Recompute(ctx, ev.UserID); err != nil {
			middleware.GetLogger(ctx).Error("Event-driven recompute failed", "user_id", ev.UserID, "error", err)
		}
	})
}

// diligenceScore rates the current month: 100 minus a penalty for every
// missed day between the first study day and yesterday.
func diligenceScore(studiedDays []int, now time.Time) int {
	if len(studiedDays) == 0 {
		return 100
	}
	first := studiedDays[0]
	passed := (now.Day() - 1) - first + 1
	if passed <= 0 {
		return 100
	}

	studiedBeforeToday := 0
	for _, d := range studiedDays {
		if d < now.Day() {
			studiedBeforeToday++
		}
	}

	missed := passed - studiedBeforeToday
	if missed < 0 {
		missed = 0
	}
	score := 100 - missed*config.DiligencePenaltyPerDay
	if score < 0 {
		score = 0
	}
	return score
}

// estimatedCompletionDays projects the days until every catalog word is
// mastered: the days to introduce unseen words at the daily goal, or the
// longest per-stage march through the remaining intervals stretched by the
// assumed miss rate, whichever is larger.
func estimatedCompletionDays(counts [7]int, totalWords, goal int) int {
	studied := 0
	for _, c := range counts {
		studied += c
	}
	unseen := totalWords - studied
	if unseen < 0 {
		unseen = 0
	}

	days := 0
	if goal > 0 {
		days = int(math.Ceil(float64(unseen) / float64(goal)))
	}

	for stage := 0; stage < model.MasteredStage; stage++ {
		if counts[stage] == 0 {
			continue
		}
		tail := 0
		for i := stage; i < len(config.ReviewIntervals); i++ {
			tail += config.ReviewIntervals[i]
		}
		adjusted := int(math.Ceil(float64(tail) * (1 + (1 - config.DefaultAverageAccuracy))))
		if adjusted > days {
			days = adjusted
		}
	}
	return days
}
