// Package study holds the pure in-memory pieces of a learning session:
// the cycle walker over a daily batch and the quiz option builder.
package study

import (
	"math/rand"

	"wordvault/internal/model"
)

// Cycles is how many passes a session makes over its batch.
const Cycles = 3

// Session walks a fixed word batch Cycles times. Within a cycle the order
// is shuffled; across a cycle boundary the same word never shows twice in
// a row.
type Session struct {
	words []model.Word
	order []int
	cycle int // 0-based
	index int
	rng   *rand.Rand
}

// NewSession starts a session over words. The batch must not be empty.
func NewSession(words []model.Word, rng *rand.Rand) (*Session, error) {
	if len(words) == 0 {
		return nil, model.ErrInvalidInput
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	s := &Session{
		words: words,
		order: make([]int, len(words)),
		rng:   rng,
	}
	for i := range s.order {
		s.order[i] = i
	}
	s.rng.Shuffle(len(s.order), func(i, j int) {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	})
	return s, nil
}

// Current returns the word the session is showing now.
func (s *Session) Current() model.Word {
	return s.words[s.order[s.index]]
}

// Advance moves to the next word. Finishing a cycle reshuffles the order
// for the next one. It returns false once the final cycle is done.
func (s *Session) Advance() bool {
	if s.Complete() {
		return false
	}
	s.index++
	if s.index < len(s.order) {
		return true
	}

	s.cycle++
	if s.cycle >= Cycles {
		return false
	}

	last := s.order[len(s.order)-1]
	s.index = 0
	s.rng.Shuffle(len(s.order), func(i, j int) {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	})
	// Keep the cycle boundary from repeating a word back to back.
	if len(s.order) > 1 && s.order[0] == last {
		k := 1 + s.rng.Intn(len(s.order)-1)
		s.order[0], s.order[k] = s.order[k], s.order[0]
	}
	return true
}

// Cycle is the 1-based cycle currently in progress. After completion it
// stays at Cycles.
func (s *Session) Cycle() int {
	if s.cycle >= Cycles {
		return Cycles
	}
	return s.cycle + 1
}

// Progress returns how many presentations are done out of the session
// total.
func (s *Session) Progress() (done, total int) {
	total = len(s.words) * Cycles
	if s.Complete() {
		return total, total
	}
	return s.cycle*len(s.words) + s.index, total
}

// Complete reports whether every cycle has finished.
func (s *Session) Complete() bool {
	return s.cycle >= Cycles
}

// WordIDs returns the batch ids in their original order.
func (s *Session) WordIDs() []string {
	ids := make([]string, len(s.words))
	for i, w := range s.words {
		ids[i] = w.WordID.String()
	}
	return ids
}
