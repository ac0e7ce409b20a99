package study

import (
	"fmt"
	"math/rand"

	"wordvault/internal/model"
)

// OptionCount is the number of options per question.
const OptionCount = 4

// QuizBuilder assembles multiple-choice questions for a word batch.
// Distractors come from the other batch meanings first, then from the
// extra meaning pool, and as a last resort from synthetic fillers, so a
// question always has OptionCount distinct options.
type QuizBuilder struct {
	rng *rand.Rand
}

func NewQuizBuilder(rng *rand.Rand) *QuizBuilder {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &QuizBuilder{rng: rng}
}

// Build makes one question per batch word. extraMeanings is the fallback
// distractor pool, typically random catalog meanings excluding the batch.
func (b *QuizBuilder) Build(batch []model.Word, extraMeanings []string) []model.QuizQuestion {
	questions := make([]model.QuizQuestion, 0, len(batch))
	for _, word := range batch {
		questions = append(questions, b.buildOne(word, batch, extraMeanings))
	}
	b.rng.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
	return questions
}

func (b *QuizBuilder) buildOne(word model.Word, batch []model.Word, extraMeanings []string) model.QuizQuestion {
	used := map[string]bool{word.Meaning: true}
	distractors := make([]string, 0, OptionCount-1)

	appendCandidates := func(pool []string) {
		for _, m := range pool {
			if len(distractors) >= OptionCount-1 {
				return
			}
			if m == "" || used[m] {
				continue
			}
			used[m] = true
			distractors = append(distractors, m)
		}
	}

	batchMeanings := make([]string, 0, len(batch))
	for _, other := range batch {
		if other.WordID != word.WordID {
			batchMeanings = append(batchMeanings, other.Meaning)
		}
	}
	b.rng.Shuffle(len(batchMeanings), func(i, j int) {
		batchMeanings[i], batchMeanings[j] = batchMeanings[j], batchMeanings[i]
	})

	appendCandidates(batchMeanings)
	appendCandidates(extraMeanings)

	for i := 1; len(distractors) < OptionCount-1; i++ {
		filler := fmt.Sprintf("(none of these %d)", i)
		if !used[filler] {
			used[filler] = true
			distractors = append(distractors, filler)
		}
	}

	options := make([]string, 0, OptionCount)
	options = append(options, word.Meaning)
	options = append(options, distractors...)
	b.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correctIndex := 0
	for i, opt := range options {
		if opt == word.Meaning {
			correctIndex = i
			break
		}
	}

	return model.QuizQuestion{
		WordID:       word.WordID,
		Text:         word.Text,
		Options:      options,
		CorrectIndex: correctIndex,
	}
}
