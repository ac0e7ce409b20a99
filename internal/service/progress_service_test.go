package service

import (
	"context"
	"testing"
	"time"

	"wordvault/internal/model"
	"wordvault/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingSyncer struct {
	calls []string
	last  *model.ProgressSummary
}

func (r *recordingSyncer) SyncMemberSnapshots(_ context.Context, userID string, summary *model.ProgressSummary) error {
	r.calls = append(r.calls, userID)
	r.last = summary
	return nil
}

func newProgressService(t *testing.T, db *gorm.DB, syncer MemberSyncer) ProgressService {
	t.Helper()
	return NewProgressService(
		db,
		repository.NewGormWordStateRepository(),
		repository.NewGormProfileRepository(),
		repository.NewGormSummaryRepository(),
		repository.NewGormStudyRecordRepository(),
		syncer,
		testConfig(),
	)
}

func seedState(t *testing.T, db *gorm.DB, userID string, word model.Word, stage int, next *time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&model.WordState{
		UserID: userID, WordID: word.WordID, Stage: stage,
		LastReviewedAt: time.Now(), NextReviewAt: next,
	}).Error)
}

func Test_progressService_Recompute_FreshUser(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newProgressService(t, db, nil)
	userID := "user-1"
	seedProfile(t, db, userID, 10)

	summary, err := svc.Recompute(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, 200, summary.Stage0, "an untouched catalog sits entirely in the waiting bucket")
	assert.Equal(t, 0.0, summary.ProgressRate)
	assert.Equal(t, 100, summary.DiligenceScore)
	assert.Equal(t, 0, summary.TodayReviewCount)
	assert.Equal(t, 10, summary.DailyWordGoal)
	require.NotNil(t, summary.EstimatedCompletionDate)
	// 200 unseen words at 10 a day.
	assert.WithinDuration(t, time.Now().AddDate(0, 0, 20), *summary.EstimatedCompletionDate, time.Minute)
}

func Test_progressService_Recompute_HistogramSumsToCatalog(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newProgressService(t, db, nil)
	words := seedWords(t, db, 12)
	userID := "user-1"
	seedProfile(t, db, userID, 10)

	future := time.Now().Add(24 * time.Hour)
	seedState(t, db, userID, words[0], 1, &future)
	seedState(t, db, userID, words[1], 1, &future)
	seedState(t, db, userID, words[2], 3, &future)
	seedState(t, db, userID, words[3], 5, &future)
	require.NoError(t, db.Create(&model.WordState{
		UserID: userID, WordID: words[4].WordID, Stage: model.MasteredStage,
		IsMastered: true, LastReviewedAt: time.Now(),
	}).Error)

	summary, err := svc.Recompute(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Stage1)
	assert.Equal(t, 1, summary.Stage3)
	assert.Equal(t, 1, summary.Stage5)
	assert.Equal(t, 1, summary.Stage6, "mastered words stay counted at the final stage")

	sum := 0
	for _, c := range summary.StageCounts() {
		sum += c
	}
	assert.Equal(t, 200, sum, "histogram always accounts for the whole catalog")

	// 5 of 200 in the pipeline, to one decimal place.
	assert.Equal(t, 2.5, summary.ProgressRate)
}

func Test_progressService_Recompute_TodayReviewCountIsTimeGated(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newProgressService(t, db, nil)
	words := seedWords(t, db, 4)
	userID := "user-1"
	seedProfile(t, db, userID, 10)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(24 * time.Hour)
	seedState(t, db, userID, words[0], 2, &past)
	seedState(t, db, userID, words[1], 4, &past)
	seedState(t, db, userID, words[2], 1, &future)
	// Stage 0 never counts toward today's reviews, due or not.
	seedState(t, db, userID, words[3], 0, &past)

	summary, err := svc.Recompute(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TodayReviewCount)
}

func Test_progressService_Recompute_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newProgressService(t, db, nil)
	words := seedWords(t, db, 5)
	userID := "user-1"
	seedProfile(t, db, userID, 10)

	future := time.Now().Add(24 * time.Hour)
	seedState(t, db, userID, words[0], 2, &future)
	seedState(t, db, userID, words[1], 5, &future)

	first, err := svc.Recompute(ctx, userID)
	require.NoError(t, err)
	second, err := svc.Recompute(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, first.StageCounts(), second.StageCounts())
	assert.Equal(t, first.ProgressRate, second.ProgressRate)
	assert.Equal(t, first.DiligenceScore, second.DiligenceScore)
	assert.Equal(t, first.TodayReviewCount, second.TodayReviewCount)

	var rows int64
	require.NoError(t, db.Model(&model.ProgressSummary{}).Where("user_id = ?", userID).Count(&rows).Error)
	assert.EqualValues(t, 1, rows, "recompute upserts a single row per user")
}

func Test_progressService_Get_BuildsOnFirstRead(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newProgressService(t, db, nil)
	userID := "user-1"
	seedProfile(t, db, userID, 10)

	summary, err := svc.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, summary.UserID)

	var rows int64
	require.NoError(t, db.Model(&model.ProgressSummary{}).Where("user_id = ?", userID).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}

func Test_progressService_Recompute_FansOutToGroups(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	syncer := &recordingSyncer{}
	svc := newProgressService(t, db, syncer)
	userID := "user-1"
	seedProfile(t, db, userID, 10)

	_, err := svc.Recompute(ctx, userID)
	require.NoError(t, err)

	require.Equal(t, []string{userID}, syncer.calls)
	require.NotNil(t, syncer.last)
	assert.Equal(t, userID, syncer.last.UserID)
}

func Test_progressService_RecomputeAll(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newProgressService(t, db, nil)
	seedProfile(t, db, "user-1", 10)
	seedProfile(t, db, "user-2", 5)

	require.NoError(t, svc.RecomputeAll(ctx))

	var rows int64
	require.NoError(t, db.Model(&model.ProgressSummary{}).Count(&rows).Error)
	assert.EqualValues(t, 2, rows)
}

func Test_progressService_SubscribeTo_RecomputesOnEvent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	bus := testBus(t)
	svc := newProgressService(t, db, nil)
	words := seedWords(t, db, 2)
	userID := "user-1"
	seedProfile(t, db, userID, 10)

	seedState(t, db, userID, words[0], 0, nil)

	sub := svc.SubscribeTo(bus)
	defer sub.Close()

	reviewSvc := NewReviewService(
		db,
		repository.NewGormWordStateRepository(),
		repository.NewGormRemediationRepository(),
		repository.NewGormGroupRepository(),
		repository.NewGormStudyRecordRepository(),
		bus,
		testConfig(),
	)
	require.NoError(t, reviewSvc.SubmitAnswer(ctx, userID, words[0].WordID, true))

	// Handlers run on their own goroutines.
	require.Eventually(t, func() bool {
		var summary model.ProgressSummary
		if err := db.First(&summary, "user_id = ?", userID).Error; err != nil {
			return false
		}
		return summary.Stage1 == 1
	}, 2*time.Second, 20*time.Millisecond)
}

func Test_diligenceScore(t *testing.T) {
	// Mid-month reference point, day 15.
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		days []int
		want int
	}{
		{"no study days yet", nil, 100},
		{"started today", []int{15}, 100},
		{"perfect streak", []int{10, 11, 12, 13, 14}, 100},
		{"one missed day", []int{10, 11, 13, 14}, 97},
		{"long gap", []int{1, 14}, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, diligenceScore(tt.days, now))
		})
	}
}

func Test_estimatedCompletionDays(t *testing.T) {
	tests := []struct {
		name   string
		counts [7]int
		total  int
		goal   int
		want   int
	}{
		// 200 unseen at 10 a day.
		{"fresh user", [7]int{}, 200, 10, 20},
		// Everything mastered: nothing left to do.
		{"all mastered", [7]int{0, 0, 0, 0, 0, 0, 200}, 200, 10, 0},
		// Stage-1 words face 3+7+14+21+28 = 73 days, stretched by the
		// 20% miss allowance to 88; that beats the 15 intro days.
		{"pipeline dominates", [7]int{0, 50, 0, 0, 0, 0, 0}, 200, 10, 88},
		// Stage-5 tail is only 28 -> 34 days; 19 intro days lose.
		{"late stage", [7]int{0, 0, 0, 0, 0, 10, 0}, 200, 10, 34},
		// Stages race each other, they do not add up.
		{"max not sum", [7]int{0, 10, 0, 0, 0, 10, 180}, 200, 10, 88},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, estimatedCompletionDays(tt.counts, tt.total, tt.goal))
		})
	}
}
