package study

import (
	"math/rand"
	"testing"

	"wordvault/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeWords(n int) []model.Word {
	words := make([]model.Word, n)
	for i := range words {
		words[i] = model.Word{WordID: uuid.New(), Text: "w", Meaning: "m"}
	}
	return words
}

func TestNewSession_EmptyBatch(t *testing.T) {
	_, err := NewSession(nil, nil)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestSession_PresentsEveryWordEachCycle(t *testing.T) {
	words := makeWords(5)
	s, err := NewSession(words, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	seen := make(map[uuid.UUID]int)
	for {
		seen[s.Current().WordID]++
		if !s.Advance() {
			break
		}
	}

	assert.True(t, s.Complete())
	assert.Len(t, seen, len(words))
	for id, count := range seen {
		assert.Equalf(t, Cycles, count, "word %s shown %d times", id, count)
	}
}

func TestSession_NoImmediateRepeatAcrossCycles(t *testing.T) {
	words := makeWords(4)

	// Many seeds so a bad boundary shuffle cannot hide.
	for seed := int64(0); seed < 50; seed++ {
		s, err := NewSession(words, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		prev := s.Current().WordID
		for s.Advance() {
			cur := s.Current().WordID
			assert.NotEqual(t, prev, cur, "seed %d repeated a word back to back", seed)
			prev = cur
		}
	}
}

func TestSession_ProgressAndCycle(t *testing.T) {
	words := makeWords(2)
	s, err := NewSession(words, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	done, total := s.Progress()
	assert.Equal(t, 0, done)
	assert.Equal(t, 6, total)
	assert.Equal(t, 1, s.Cycle())

	steps := 0
	for s.Advance() {
		steps++
	}
	assert.Equal(t, 5, steps)

	done, total = s.Progress()
	assert.Equal(t, total, done)
	assert.Equal(t, Cycles, s.Cycle())
	assert.False(t, s.Advance(), "a complete session stays complete")
}

func TestSession_SingleWordBatch(t *testing.T) {
	words := makeWords(1)
	s, err := NewSession(words, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	count := 0
	for {
		count++
		if !s.Advance() {
			break
		}
	}
	assert.Equal(t, Cycles, count)
}
