package service

import (
	"context"
	"testing"

	"wordvault/internal/model"
	"wordvault/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newWordService(t *testing.T, db *gorm.DB) WordService {
	t.Helper()
	return NewWordService(db, repository.NewGormWordRepository())
}

func Test_wordService_Import(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newWordService(t, db)

	count, err := svc.Import(ctx, []model.ImportWordItem{
		{Text: "ephemeral", Meaning: "lasting a very short time"},
		{Text: "ubiquitous", Meaning: "found everywhere"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var stored int64
	require.NoError(t, db.Model(&model.Word{}).Count(&stored).Error)
	assert.EqualValues(t, 2, stored)
}

func Test_wordService_Import_Empty(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newWordService(t, db)

	_, err := svc.Import(ctx, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func Test_wordService_List_Pages(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newWordService(t, db)
	seedWords(t, db, 7)

	first, err := svc.List(ctx, 0, 5)
	require.NoError(t, err)
	assert.Len(t, first.Words, 5)
	assert.EqualValues(t, 7, first.Total)

	second, err := svc.List(ctx, 5, 5)
	require.NoError(t, err)
	assert.Len(t, second.Words, 2)

	// seedWords names sort lexicographically.
	assert.Equal(t, "word-000", first.Words[0].Text)
	assert.Equal(t, "word-005", second.Words[0].Text)
}
