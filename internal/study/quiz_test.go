package study

import (
	"math/rand"
	"testing"

	"wordvault/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchOf(meanings ...string) []model.Word {
	words := make([]model.Word, len(meanings))
	for i, m := range meanings {
		words[i] = model.Word{WordID: uuid.New(), Text: "word", Meaning: m}
	}
	return words
}

func assertWellFormed(t *testing.T, q model.QuizQuestion, correct string) {
	t.Helper()
	require.Len(t, q.Options, OptionCount)
	assert.Equal(t, correct, q.Options[q.CorrectIndex])

	seen := make(map[string]bool)
	for _, opt := range q.Options {
		assert.False(t, seen[opt], "duplicate option %q", opt)
		seen[opt] = true
	}
}

func TestQuizBuilder_DistractorsFromBatch(t *testing.T) {
	batch := batchOf("apple", "banana", "cherry", "date", "elder")
	builder := NewQuizBuilder(rand.New(rand.NewSource(1)))

	questions := builder.Build(batch, nil)
	require.Len(t, questions, len(batch))

	meaningByID := make(map[uuid.UUID]string)
	for _, w := range batch {
		meaningByID[w.WordID] = w.Meaning
	}

	batchMeanings := map[string]bool{}
	for _, w := range batch {
		batchMeanings[w.Meaning] = true
	}

	for _, q := range questions {
		assertWellFormed(t, q, meaningByID[q.WordID])
		for _, opt := range q.Options {
			assert.True(t, batchMeanings[opt], "option %q should come from the batch", opt)
		}
	}
}

func TestQuizBuilder_FallsBackToExtraPool(t *testing.T) {
	batch := batchOf("solo")
	extras := []string{"alpha", "beta", "gamma"}
	builder := NewQuizBuilder(rand.New(rand.NewSource(2)))

	questions := builder.Build(batch, extras)
	require.Len(t, questions, 1)
	assertWellFormed(t, questions[0], "solo")

	pool := map[string]bool{"solo": true, "alpha": true, "beta": true, "gamma": true}
	for _, opt := range questions[0].Options {
		assert.True(t, pool[opt])
	}
}

func TestQuizBuilder_SyntheticFillersWhenPoolIsDry(t *testing.T) {
	batch := batchOf("only")
	builder := NewQuizBuilder(rand.New(rand.NewSource(3)))

	questions := builder.Build(batch, nil)
	require.Len(t, questions, 1)
	assertWellFormed(t, questions[0], "only")
}

func TestQuizBuilder_SkipsDuplicateMeanings(t *testing.T) {
	// Two batch words share a meaning; it must appear at most once.
	batch := batchOf("same", "same", "other")
	builder := NewQuizBuilder(rand.New(rand.NewSource(4)))

	questions := builder.Build(batch, []string{"extra1", "extra2", "same"})
	require.Len(t, questions, 3)
	for _, q := range questions {
		count := 0
		for _, opt := range q.Options {
			if opt == "same" {
				count++
			}
		}
		assert.LessOrEqual(t, count, 1)
	}
}
