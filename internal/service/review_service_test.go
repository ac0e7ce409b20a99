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

func newReviewService(t *testing.T, db *gorm.DB) ReviewService {
	t.Helper()
	return NewReviewService(
		db,
		repository.NewGormWordStateRepository(),
		repository.NewGormRemediationRepository(),
		repository.NewGormGroupRepository(),
		repository.NewGormStudyRecordRepository(),
		testBus(t),
		testConfig(),
	)
}

func Test_reviewService_SubmitAnswer_CorrectAdvancesStage(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newReviewService(t, db)
	words := seedWords(t, db, 1)
	userID := "user-1"

	now := time.Now()
	next := now
	require.NoError(t, db.Create(&model.WordState{
		UserID: userID, WordID: words[0].WordID, Stage: 2,
		LastReviewedAt: now, NextReviewAt: &next,
	}).Error)

	require.NoError(t, svc.SubmitAnswer(ctx, userID, words[0].WordID, true))

	var state model.WordState
	require.NoError(t, db.Where("user_id = ? AND word_id = ?", userID, words[0].WordID).First(&state).Error)
	assert.Equal(t, 3, state.Stage)
	assert.False(t, state.IsMastered)
	require.NotNil(t, state.NextReviewAt)
	// Stage 3 waits 7 days.
	expected := time.Now().Add(7 * 24 * time.Hour)
	assert.WithinDuration(t, expected, *state.NextReviewAt, time.Minute)
}

func Test_reviewService_SubmitAnswer_FinalStageCorrectMasters(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newReviewService(t, db)
	words := seedWords(t, db, 1)
	userID := "user-1"

	now := time.Now()
	next := now
	require.NoError(t, db.Create(&model.WordState{
		UserID: userID, WordID: words[0].WordID, Stage: 5,
		LastReviewedAt: now, NextReviewAt: &next,
	}).Error)

	require.NoError(t, svc.SubmitAnswer(ctx, userID, words[0].WordID, true))

	var state model.WordState
	require.NoError(t, db.Where("user_id = ?", userID).First(&state).Error)
	assert.Equal(t, model.MasteredStage, state.Stage)
	assert.True(t, state.IsMastered)
	assert.Nil(t, state.NextReviewAt, "a mastered word leaves the schedule")
}

func Test_reviewService_SubmitAnswer_CorrectWithoutStateIsRejected(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newReviewService(t, db)
	words := seedWords(t, db, 1)
	userID := "user-1"

	// The word waits in the remediation queue. It re-enters spaced
	// repetition at stage 0 through a learning session, never here.
	require.NoError(t, db.Create(&model.RemediationEntry{
		UserID: userID, WordID: words[0].WordID, PriorityScore: 3,
	}).Error)

	err := svc.SubmitAnswer(ctx, userID, words[0].WordID, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNotFound)

	var stateCount int64
	require.NoError(t, db.Model(&model.WordState{}).Where("user_id = ?", userID).Count(&stateCount).Error)
	assert.EqualValues(t, 0, stateCount, "no state is minted")

	var entry model.RemediationEntry
	require.NoError(t, db.Where("user_id = ?", userID).First(&entry).Error)
	assert.Equal(t, 3, entry.PriorityScore, "the queue entry is untouched")
}

func Test_reviewService_SubmitAnswer_IncorrectDemotesToRemediation(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newReviewService(t, db)
	words := seedWords(t, db, 1)
	userID := "user-1"

	now := time.Now()
	next := now
	require.NoError(t, db.Create(&model.WordState{
		UserID: userID, WordID: words[0].WordID, Stage: 4,
		LastReviewedAt: now, NextReviewAt: &next,
	}).Error)

	require.NoError(t, svc.SubmitAnswer(ctx, userID, words[0].WordID, false))

	var stateCount int64
	require.NoError(t, db.Model(&model.WordState{}).Where("user_id = ?", userID).Count(&stateCount).Error)
	assert.EqualValues(t, 0, stateCount, "the state row is gone")

	var entry model.RemediationEntry
	require.NoError(t, db.Where("user_id = ?", userID).First(&entry).Error)
	assert.Equal(t, 1, entry.PriorityScore)

	// A second miss raises the priority.
	require.NoError(t, svc.SubmitAnswer(ctx, userID, words[0].WordID, false))
	require.NoError(t, db.Where("user_id = ?", userID).First(&entry).Error)
	assert.Equal(t, 2, entry.PriorityScore)
}

func Test_reviewService_SubmitAnswer_MasteredWordIgnored(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newReviewService(t, db)
	words := seedWords(t, db, 1)
	userID := "user-1"

	require.NoError(t, db.Create(&model.WordState{
		UserID: userID, WordID: words[0].WordID, Stage: model.MasteredStage,
		IsMastered: true, LastReviewedAt: time.Now(),
	}).Error)

	require.NoError(t, svc.SubmitAnswer(ctx, userID, words[0].WordID, true))

	var state model.WordState
	require.NoError(t, db.Where("user_id = ?", userID).First(&state).Error)
	assert.True(t, state.IsMastered)
	assert.Equal(t, model.MasteredStage, state.Stage)
}

func Test_reviewService_DueQueries(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newReviewService(t, db)
	words := seedWords(t, db, 4)
	userID := "user-1"

	now := time.Now()
	farFuture := now.Add(48 * time.Hour)
	past := now.Add(-time.Hour)
	longPast := now.Add(-3 * time.Hour)

	// Stage 0 with a future timestamp: still immediately reviewable.
	require.NoError(t, db.Create(&model.WordState{
		UserID: userID, WordID: words[0].WordID, Stage: 0,
		LastReviewedAt: now, NextReviewAt: &farFuture,
	}).Error)
	// Stage 2, due.
	require.NoError(t, db.Create(&model.WordState{
		UserID: userID, WordID: words[1].WordID, Stage: 2,
		LastReviewedAt: now, NextReviewAt: &past,
	}).Error)
	// Stage 1, due earlier; must sort first.
	require.NoError(t, db.Create(&model.WordState{
		UserID: userID, WordID: words[2].WordID, Stage: 1,
		LastReviewedAt: now, NextReviewAt: &longPast,
	}).Error)
	// Stage 3, not due yet.
	require.NoError(t, db.Create(&model.WordState{
		UserID: userID, WordID: words[3].WordID, Stage: 3,
		LastReviewedAt: now, NextReviewAt: &farFuture,
	}).Error)

	immediate, err := svc.GetImmediateReviewWords(ctx, userID)
	require.NoError(t, err)
	require.Len(t, immediate, 1)
	assert.Equal(t, words[0].WordID, immediate[0].WordID)

	cumulative, err := svc.GetCumulativeReviewWords(ctx, userID)
	require.NoError(t, err)
	require.Len(t, cumulative, 2)
	assert.Equal(t, words[2].WordID, cumulative[0].WordID, "oldest due first")
	assert.Equal(t, words[1].WordID, cumulative[1].WordID)

	count, err := svc.GetCumulativeReviewCount(ctx, userID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func Test_reviewService_SubmitAnswer_RecordsStudyDay(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newReviewService(t, db)
	words := seedWords(t, db, 1)
	userID := "user-1"

	require.NoError(t, svc.SubmitAnswer(ctx, userID, words[0].WordID, false))
	// Same day twice is a no-op, not an error.
	require.NoError(t, svc.SubmitAnswer(ctx, userID, words[0].WordID, false))

	var records []model.StudyRecord
	require.NoError(t, db.Where("user_id = ?", userID).Find(&records).Error)
	require.Len(t, records, 1)
	assert.Equal(t, time.Now().Day(), records[0].Day)
}
