package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionBuilder_Build(t *testing.T) {
	t.Parallel()

	pool := mixedPool()
	builder := NewQuestionBuilder(rand.New(rand.NewSource(1)))

	for _, card := range pool {
		question := builder.Build(card, pool)

		require.Len(t, question.Options, 4, "card %s", card.ID)

		seen := map[string]bool{}
		for _, opt := range question.Options {
			assert.False(t, seen[opt], "duplicate option %q for card %s", opt, card.ID)
			seen[opt] = true
		}

		assert.True(t, seen[card.Answer], "options must include the correct answer for card %s", card.ID)
		require.GreaterOrEqual(t, question.CorrectIndex, 0)
		require.Less(t, question.CorrectIndex, 4)
		assert.Equal(t, card.Answer, question.Options[question.CorrectIndex])
		assert.Equal(t, card.ID, question.CardID)
		assert.Contains(t, question.Prompt, card.Verb)
	}
}

func TestQuestionBuilder_SeededShuffleIsDeterministic(t *testing.T) {
	t.Parallel()

	pool := mixedPool()
	card := pool[0]

	first := NewQuestionBuilder(rand.New(rand.NewSource(42))).Build(card, pool)
	second := NewQuestionBuilder(rand.New(rand.NewSource(42))).Build(card, pool)

	assert.Equal(t, first.Options, second.Options)
	assert.Equal(t, first.CorrectIndex, second.CorrectIndex)
	assert.Equal(t, first.ID, second.ID)
}

func TestQuestionBuilder_SparsePoolPadsWithFillers(t *testing.T) {
	t.Parallel()

	pool := mixedPool()[:1]
	builder := NewQuestionBuilder(rand.New(rand.NewSource(7)))

	question := builder.Build(pool[0], pool)

	require.Len(t, question.Options, 4)
	assert.Equal(t, pool[0].Answer, question.Options[question.CorrectIndex])

	seen := map[string]bool{}
	for _, opt := range question.Options {
		assert.False(t, seen[opt])
		seen[opt] = true
	}
}

func TestQuestionBuilder_IDsAreUniquePerInvocation(t *testing.T) {
	t.Parallel()

	pool := mixedPool()
	builder := NewQuestionBuilder(rand.New(rand.NewSource(3)))

	first := builder.Build(pool[0], pool)
	second := builder.Build(pool[0], pool)

	assert.Equal(t, "hablar-pres-q1", first.ID)
	assert.Equal(t, "hablar-pres-q2", second.ID)
	assert.NotEqual(t, first.ID, second.ID)
}
