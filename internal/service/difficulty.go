package service

import (
	"math"

	"github.com/sivanwunder-commits/flashcards/internal/config"
	"github.com/sivanwunder-commits/flashcards/internal/models"
)

// Per-tense base difficulty, normalized to roughly [1.0, 2.0].
var tenseDifficulty = map[models.Tense]float64{
	models.TensePresent:              1.0,
	models.TensePreterite:            1.2,
	models.TenseImperfect:            1.3,
	models.TenseFuture:               1.2,
	models.TenseConditional:          1.4,
	models.TensePresentPerfect:       1.5,
	models.TensePastPerfect:          1.6,
	models.TensePresentSubjunctive:   1.7,
	models.TenseImperfectSubjunctive: 1.9,
}

var verbTypeDifficulty = map[models.VerbType]float64{
	models.VerbTypeRegular:   1.0,
	models.VerbTypeIrregular: 1.8,
}

// verbFrequency scores well-known verbs as easy. Verbs absent from the table
// are treated as rare, i.e. hardest.
var verbFrequency = map[string]float64{
	"ser":    1.0,
	"estar":  1.0,
	"tener":  1.1,
	"hacer":  1.1,
	"ir":     1.1,
	"poder":  1.2,
	"decir":  1.2,
	"hablar": 1.2,
	"comer":  1.2,
	"vivir":  1.2,
	"querer": 1.3,
	"saber":  1.3,
	"llegar": 1.4,
	"pasar":  1.4,
	"deber":  1.5,
	"poner":  1.5,
	"seguir": 1.6,
	"creer":  1.6,
}

const maxFrequencyScore = 2.0

// tolerance band around a tier's multiplier when filtering cards.
const (
	filterLow  = 0.7
	filterHigh = 1.3
)

// DifficultySettings controls the adaptive model. Built from config via
// NewDifficultySettings; tests construct it directly.
type DifficultySettings struct {
	Enabled         bool
	AdjustmentSpeed float64
	MinQuestions    int
	WindowSize      int
}

func NewDifficultySettings(cfg config.QuizConfig) DifficultySettings {
	return DifficultySettings{
		Enabled:         cfg.EnableAdaptiveDifficulty,
		AdjustmentSpeed: cfg.AdjustmentSpeed,
		MinQuestions:    cfg.MinQuestionsForAdjust,
		WindowSize:      cfg.PerformanceWindow,
	}
}

// DifficultyModel tracks the user's skill tier from a bounded window of
// recent answers. The tier is carried as a float position so that small
// adjustment speeds accumulate across answers instead of rounding away;
// the exposed level is the rounded, clamped position.
type DifficultyModel struct {
	settings DifficultySettings
	position float64
	window   []models.QuizAnswer
}

func NewDifficultyModel(settings DifficultySettings) *DifficultyModel {
	if settings.WindowSize <= 0 {
		settings.WindowSize = 10
	}
	if settings.MinQuestions <= 0 {
		settings.MinQuestions = 5
	}
	if settings.AdjustmentSpeed <= 0 || settings.AdjustmentSpeed > 1 {
		settings.AdjustmentSpeed = 0.3
	}
	return &DifficultyModel{
		settings: settings,
		window:   make([]models.QuizAnswer, 0, settings.WindowSize),
	}
}

// CardScore maps a card to a scalar difficulty: a weighted sum of its tense,
// verb type and verb frequency.
func CardScore(card models.Card) float64 {
	tense, ok := tenseDifficulty[card.Tense]
	if !ok {
		tense = maxFrequencyScore
	}
	verbType, ok := verbTypeDifficulty[card.VerbType]
	if !ok {
		verbType = maxFrequencyScore
	}
	freq, ok := verbFrequency[card.Verb]
	if !ok {
		freq = maxFrequencyScore
	}
	return 0.4*tense + 0.3*verbType + 0.3*freq
}

// Level is the current tier.
func (m *DifficultyModel) Level() models.DifficultyLevel {
	return models.ClampLevel(int(math.Round(m.position)))
}

// FilterCards keeps cards whose score falls inside the current tier's band.
// A starved filter falls back to the full pool so a session can always
// start; a disabled model never filters.
func (m *DifficultyModel) FilterCards(cards []models.Card) []models.Card {
	if !m.settings.Enabled {
		return cards
	}

	mult := m.Level().Multiplier()
	filtered := make([]models.Card, 0, len(cards))
	for _, card := range cards {
		score := CardScore(card)
		if score >= filterLow*mult && score <= filterHigh*mult {
			filtered = append(filtered, card)
		}
	}

	if len(filtered) == 0 {
		return cards
	}
	return filtered
}

// Record appends an answer to the performance window and, once the window
// holds enough answers, nudges the tier. Each adjustment moves the position
// by at most AdjustmentSpeed, so a single outlier answer cannot jump a tier.
func (m *DifficultyModel) Record(answer models.QuizAnswer) {
	m.window = append(m.window, answer)
	if len(m.window) > m.settings.WindowSize {
		m.window = m.window[1:]
	}

	if !m.settings.Enabled {
		return
	}
	if len(m.window) < m.settings.MinQuestions {
		return
	}

	accuracy := m.recentAccuracy()
	streak := m.streak()

	var delta float64
	switch {
	case accuracy >= 0.8 && streak >= 3:
		delta = 1
	case accuracy <= 0.4 && streak <= -2:
		delta = -1
	}
	if delta == 0 {
		return
	}

	m.position += delta * m.settings.AdjustmentSpeed
	if m.position < float64(models.Beginner) {
		m.position = float64(models.Beginner)
	}
	if m.position > float64(models.Expert) {
		m.position = float64(models.Expert)
	}
}

// Reset clears the window and drops back to the beginner tier.
func (m *DifficultyModel) Reset() {
	m.position = 0
	m.window = m.window[:0]
}

func (m *DifficultyModel) recentAccuracy() float64 {
	if len(m.window) == 0 {
		return 0
	}
	var correct int
	for _, a := range m.window {
		if a.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(m.window))
}

// streak is signed: a positive count of trailing correct answers, or a
// negative count of trailing incorrect ones.
func (m *DifficultyModel) streak() int {
	if len(m.window) == 0 {
		return 0
	}

	last := m.window[len(m.window)-1].Correct
	count := 0
	for i := len(m.window) - 1; i >= 0; i-- {
		if m.window[i].Correct != last {
			break
		}
		count++
	}

	if last {
		return count
	}
	return -count
}
