package service

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sivanwunder-commits/flashcards/internal/models"
)

// ErrEmptyPool is returned by Start when there are no cards to quiz on.
var ErrEmptyPool = errors.New("card pool is empty")

// Engine drives one user's quiz lifecycle: NoSession -> Active -> Completed,
// then back to NoSession via Reset. It owns the user's difficulty model, so
// the tier survives across sessions until an explicit reset.
//
// The engine is not safe for concurrent use; the quiz service serializes
// access per user.
type Engine struct {
	userID     int64
	difficulty *DifficultyModel
	builder    *QuestionBuilder
	rnd        *rand.Rand
	session    *models.QuizSession
}

func NewEngine(userID int64, settings DifficultySettings, rnd *rand.Rand) *Engine {
	return &Engine{
		userID:     userID,
		difficulty: NewDifficultyModel(settings),
		builder:    NewQuestionBuilder(rnd),
		rnd:        rnd,
	}
}

// Start generates a new session of up to questionCount questions. The pool
// is first narrowed by the difficulty model; a session holds fewer questions
// than requested when the pool runs out of unused cards.
func (e *Engine) Start(pool []models.Card, questionCount int) (*models.QuizSession, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	if questionCount <= 0 {
		return nil, errors.New("question count must be positive")
	}

	eligible := e.difficulty.FilterCards(pool)

	count := questionCount
	if count > len(eligible) {
		count = len(eligible)
	}

	unused := make([]models.Card, len(eligible))
	copy(unused, eligible)

	questions := make([]models.QuizQuestion, 0, count)
	for i := 0; i < count; i++ {
		pick := e.rnd.Intn(len(unused))
		card := unused[pick]
		unused[pick] = unused[len(unused)-1]
		unused = unused[:len(unused)-1]

		questions = append(questions, e.builder.Build(card, pool))
	}

	e.session = &models.QuizSession{
		ID:        uuid.NewString(),
		UserID:    e.userID,
		Questions: questions,
		Answers:   make([]models.QuizAnswer, 0, len(questions)),
		StartedAt: time.Now(),
	}

	return e.session, nil
}

// CurrentQuestion returns the question awaiting an answer, or nil when the
// session is absent or already complete. Idempotent between answers.
func (e *Engine) CurrentQuestion() *models.QuizQuestion {
	if e.session == nil || e.session.Completed {
		return nil
	}
	idx := len(e.session.Answers)
	if idx >= len(e.session.Questions) {
		return nil
	}
	return &e.session.Questions[idx]
}

// RecordAnswer checks the selection against the current question, appends
// the answer and feeds it to the difficulty model. Stale or out-of-sequence
// submissions (wrong question ID, no active session) are dropped, reported
// by the second return value.
func (e *Engine) RecordAnswer(questionID string, selectedIndex int, timeSpentMs int64) (models.QuizAnswer, bool) {
	question := e.CurrentQuestion()
	if question == nil || question.ID != questionID {
		return models.QuizAnswer{}, false
	}

	var selected string
	if selectedIndex >= 0 && selectedIndex < len(question.Options) {
		selected = question.Options[selectedIndex]
	}

	answer := models.QuizAnswer{
		QuestionID:    questionID,
		Selected:      selected,
		SelectedIndex: selectedIndex,
		Correct:       selectedIndex == question.CorrectIndex,
		TimeSpentMs:   timeSpentMs,
	}

	e.session.Answers = append(e.session.Answers, answer)
	e.difficulty.Record(answer)

	return answer, true
}

// IsComplete reports whether every question has an answer.
func (e *Engine) IsComplete() bool {
	return e.session != nil && len(e.session.Answers) >= len(e.session.Questions)
}

// Complete seals the session and derives its result. Returns nil when there
// is no session, the session still has open questions, or it was already
// completed.
func (e *Engine) Complete() *models.QuizResult {
	if e.session == nil || e.session.Completed || !e.IsComplete() {
		return nil
	}

	e.session.EndedAt = time.Now()
	e.session.Completed = true

	var score int
	var timeSpent int64
	for _, a := range e.session.Answers {
		if a.Correct {
			score++
		}
		timeSpent += a.TimeSpentMs
	}

	total := len(e.session.Questions)
	var accuracy float64
	if total > 0 {
		accuracy = float64(score) / float64(total) * 100
	}

	answers := make([]models.QuizAnswer, len(e.session.Answers))
	copy(answers, e.session.Answers)

	return &models.QuizResult{
		SessionID:   e.session.ID,
		UserID:      e.userID,
		Score:       score,
		Total:       total,
		Accuracy:    accuracy,
		TimeSpentMs: timeSpent,
		Answers:     answers,
		TakenAt:     e.session.EndedAt,
	}
}

// Reset discards the session and difficulty history. Safe from any state.
func (e *Engine) Reset() {
	e.session = nil
	e.difficulty.Reset()
}

// Progress is the live telemetry snapshot. The second return value is false
// when no session exists.
func (e *Engine) Progress() (models.SessionProgress, bool) {
	if e.session == nil {
		return models.SessionProgress{}, false
	}

	var correct int
	for _, a := range e.session.Answers {
		if a.Correct {
			correct++
		}
	}

	elapsed := time.Since(e.session.StartedAt).Milliseconds()
	if e.session.Completed {
		elapsed = e.session.EndedAt.Sub(e.session.StartedAt).Milliseconds()
	}

	return models.SessionProgress{
		QuestionIndex:  len(e.session.Answers),
		TotalQuestions: len(e.session.Questions),
		CorrectCount:   correct,
		IncorrectCount: len(e.session.Answers) - correct,
		ElapsedMs:      elapsed,
		Difficulty:     e.difficulty.Level().String(),
	}, true
}

// Level exposes the current difficulty tier.
func (e *Engine) Level() models.DifficultyLevel {
	return e.difficulty.Level()
}
