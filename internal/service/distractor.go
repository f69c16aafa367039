package service

import (
	"strings"

	"github.com/sivanwunder-commits/flashcards/internal/models"
)

const distractorCount = 3

// misspellings maps a correct answer to the wrong spellings learners
// actually produce. Keyed by the exact answer string.
var misspellings = map[string][]string{
	"hablo":    {"ablo", "hablou"},
	"hablé":    {"hable", "ablé"},
	"habló":    {"hablo", "habloh"},
	"como":     {"comoh", "komo"},
	"comí":     {"comi", "comío"},
	"comieron": {"comienron", "comiron"},
	"es":       {"ez", "és"},
	"está":     {"esta", "estáa"},
	"estoy":    {"estoi", "stoy"},
	"fui":      {"fuí", "fue"},
	"hice":     {"hize", "ise"},
	"tengo":    {"tengoh", "teno"},
	"vivía":    {"vivia", "bivía"},
	"haré":     {"hare", "aré"},
	"pude":     {"podé", "pudé"},
}

var diacriticReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U", "Ü", "U", "Ñ", "N",
)

// GenerateDistractors returns exactly three unique wrong answers for a card,
// preferring the most plausible sources first:
//
//  1. other conjugations of the same verb,
//  2. known or synthesized misspellings of the correct answer,
//  3. answers from other cards in the same tense,
//  4. answers from any remaining cards,
//  5. synthesized fillers, which can always be produced.
//
// Pure over the given pool: selection is scan-order deterministic.
func GenerateDistractors(card models.Card, pool []models.Card) []string {
	distractors := make([]string, 0, distractorCount)
	taken := map[string]bool{card.Answer: true}

	add := func(candidate string) bool {
		if candidate == "" || taken[candidate] {
			return false
		}
		taken[candidate] = true
		distractors = append(distractors, candidate)
		return len(distractors) == distractorCount
	}

	// Same verb, different conjugations.
	for _, other := range pool {
		if other.ID == card.ID || other.Verb != card.Verb {
			continue
		}
		if add(other.Answer) {
			return distractors
		}
	}

	// Misspelling variants of the correct answer.
	for _, variant := range misspellingVariants(card.Answer) {
		if add(variant) {
			return distractors
		}
	}

	// Same tense, different verb.
	for _, other := range pool {
		if other.ID == card.ID || other.Verb == card.Verb || other.Tense != card.Tense {
			continue
		}
		if add(other.Answer) {
			return distractors
		}
	}

	// Anything else left in the pool.
	for _, other := range pool {
		if other.ID == card.ID {
			continue
		}
		if add(other.Answer) {
			return distractors
		}
	}

	// Pool exhausted: synthesize guaranteed-unique fillers.
	for suffix := "*"; len(distractors) < distractorCount; suffix += "*" {
		add(card.Answer + suffix)
	}

	return distractors
}

// misspellingVariants prefers the curated table and falls back to mechanical
// variants: the answer with diacritics stripped, and the answer with a
// doubled final letter.
func misspellingVariants(answer string) []string {
	if known, ok := misspellings[answer]; ok {
		return known
	}

	var variants []string
	if stripped := diacriticReplacer.Replace(answer); stripped != answer {
		variants = append(variants, stripped)
	}
	if answer != "" {
		runes := []rune(answer)
		variants = append(variants, answer+string(runes[len(runes)-1]))
	}
	return variants
}
