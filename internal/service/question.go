package service

import (
	"fmt"
	"math/rand"

	"github.com/sivanwunder-commits/flashcards/internal/models"
)

const optionCount = 4

// QuestionBuilder assembles multiple-choice questions from cards. The
// randomness source is injected so tests can seed it; question IDs combine
// the card ID with a per-builder sequence number.
type QuestionBuilder struct {
	rnd *rand.Rand
	seq int
}

func NewQuestionBuilder(rnd *rand.Rand) *QuestionBuilder {
	return &QuestionBuilder{rnd: rnd}
}

// Build produces one shuffled four-option question for the card. It never
// fails: sparse pools are padded with synthesized fillers rather than
// blocking quiz generation.
func (b *QuestionBuilder) Build(card models.Card, pool []models.Card) models.QuizQuestion {
	options := make([]string, 0, optionCount)
	seen := make(map[string]bool, optionCount)

	options = append(options, card.Answer)
	seen[card.Answer] = true

	for _, d := range GenerateDistractors(card, pool) {
		if !seen[d] {
			seen[d] = true
			options = append(options, d)
		}
	}

	// Top up with fillers if dedup left us short. Bounded: each suffix
	// length is unique, so this terminates within a few iterations.
	for suffix := "*"; len(options) < optionCount; suffix += "*" {
		filler := card.Answer + suffix
		if !seen[filler] {
			seen[filler] = true
			options = append(options, filler)
		}
	}

	b.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correctIndex := 0
	for i, opt := range options {
		if opt == card.Answer {
			correctIndex = i
			break
		}
	}

	b.seq++
	return models.QuizQuestion{
		ID:           fmt.Sprintf("%s-q%d", card.ID, b.seq),
		CardID:       card.ID,
		Prompt:       fmt.Sprintf("%s (%s)", card.Phrase, card.Verb),
		Options:      options,
		Answer:       card.Answer,
		CorrectIndex: correctIndex,
	}
}
