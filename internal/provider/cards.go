package provider

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sivanwunder-commits/flashcards/internal/models"
	"github.com/sivanwunder-commits/flashcards/pkg/validator"
	"go.uber.org/zap"
)

// ErrEmptyDeck is returned when a deck file yields zero valid cards.
var ErrEmptyDeck = errors.New("deck contains no valid cards")

// DeckProvider loads card decks from JSON files. Invalid entries are dropped
// with a warning so a single bad card never blocks the whole deck.
type DeckProvider struct {
	log *zap.Logger
}

func NewDeckProvider(log *zap.Logger) *DeckProvider {
	return &DeckProvider{log: log}
}

// Load reads the deck at path and returns its valid cards. Entries that fail
// validation or reuse an already-seen ID are skipped. Returns ErrEmptyDeck
// if nothing valid remains.
func (p *DeckProvider) Load(path string) ([]models.Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck %s: %w", path, err)
	}

	return p.Parse(data)
}

// Parse decodes and filters a raw JSON deck.
func (p *DeckProvider) Parse(data []byte) ([]models.Card, error) {
	var raw []models.Card
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode deck: %w", err)
	}

	cards := make([]models.Card, 0, len(raw))
	seen := make(map[string]bool, len(raw))

	for i, card := range raw {
		if err := validator.ValidateStruct(card); err != nil {
			p.log.Warn("dropping invalid card",
				zap.Int("index", i),
				zap.String("id", card.ID),
				zap.Error(err),
			)
			continue
		}
		if seen[card.ID] {
			p.log.Warn("dropping card with duplicate id", zap.String("id", card.ID))
			continue
		}
		seen[card.ID] = true
		cards = append(cards, card)
	}

	if len(cards) == 0 {
		return nil, ErrEmptyDeck
	}

	return cards, nil
}
