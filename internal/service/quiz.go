package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/sivanwunder-commits/flashcards/internal/config"
	"github.com/sivanwunder-commits/flashcards/internal/models"
	"github.com/sivanwunder-commits/flashcards/internal/storage/cache"
	"go.uber.org/zap"
)

// QuizS exposes the quiz engine to the transport layer. It keeps one Engine
// per user and persists completed sessions through the repository.
type QuizS struct {
	repo    ResultRI
	cards   []models.Card
	cfg     config.QuizConfig
	engines *cache.Registry[*Engine]
	newRand func() *rand.Rand
	mu      sync.Mutex
	log     *zap.Logger
}

func NewQuizService(repo ResultRI, cards []models.Card, cfg config.QuizConfig, log *zap.Logger) *QuizS {
	return &QuizS{
		repo:    repo,
		cards:   cards,
		cfg:     cfg,
		engines: cache.NewRegistry[*Engine](),
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		log: log,
	}
}

func (q *QuizS) engineFor(userID int64) *Engine {
	return q.engines.GetOrCreate(userID, func() *Engine {
		return NewEngine(userID, NewDifficultySettings(q.cfg), q.newRand())
	})
}

// StartSession begins a fresh session for the user, replacing any session
// still in flight. A non-positive questionCount means the configured
// default.
func (q *QuizS) StartSession(userID int64, questionCount int) (*models.QuizSession, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if questionCount <= 0 {
		questionCount = q.cfg.DefaultQuestionCount
	}

	engine := q.engineFor(userID)
	session, err := engine.Start(q.cards, questionCount)
	if err != nil {
		q.log.Warn("failed to start session", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	q.log.Info("session started",
		zap.Int64("user_id", userID),
		zap.String("session_id", session.ID),
		zap.Int("questions", len(session.Questions)),
		zap.String("difficulty", engine.Level().String()),
	)

	return session, nil
}

// CurrentQuestion returns the question awaiting an answer, nil when none.
func (q *QuizS) CurrentQuestion(userID int64) *models.QuizQuestion {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.engineFor(userID).CurrentQuestion()
}

// SubmitAnswer records one answer. The recorded flag is false when the
// submission did not match an open question, which callers treat as a no-op.
func (q *QuizS) SubmitAnswer(userID int64, questionID string, selectedIndex int, timeSpentMs int64) (models.QuizAnswer, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	answer, recorded := q.engineFor(userID).RecordAnswer(questionID, selectedIndex, timeSpentMs)
	if !recorded {
		q.log.Debug("dropped stale answer",
			zap.Int64("user_id", userID),
			zap.String("question_id", questionID),
		)
	}
	return answer, recorded
}

// CompleteSession seals the session and stores its result. A session that is
// not finished yields (nil, nil). A storage failure is returned together
// with the in-memory result, never swallowed.
func (q *QuizS) CompleteSession(ctx context.Context, userID int64) (*models.QuizResult, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	result := q.engineFor(userID).Complete()
	if result == nil {
		return nil, nil
	}

	if err := q.repo.AddResult(ctx, *result); err != nil {
		q.log.Error("failed to persist result",
			zap.Int64("user_id", userID),
			zap.String("session_id", result.SessionID),
			zap.Error(err),
		)
		return result, fmt.Errorf("failed to persist result: %w", err)
	}

	q.log.Info("session completed",
		zap.Int64("user_id", userID),
		zap.String("session_id", result.SessionID),
		zap.Int("score", result.Score),
		zap.Float64("accuracy", result.Accuracy),
	)

	return result, nil
}

// ResetSession abandons the user's session and difficulty history without
// persisting anything.
func (q *QuizS) ResetSession(userID int64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if engine, exists := q.engines.Get(userID); exists {
		engine.Reset()
	}
}

// Progress is the live telemetry snapshot of the user's session.
func (q *QuizS) Progress(userID int64) (models.SessionProgress, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.engineFor(userID).Progress()
}

// Stats returns the user's stored aggregate results.
func (q *QuizS) Stats(ctx context.Context, userID int64) (models.QuizStats, error) {
	stats, err := q.repo.Stats(ctx, userID)
	if err != nil {
		q.log.Warn("failed to get quiz stats", zap.Int64("user_id", userID), zap.Error(err))
		return models.QuizStats{}, err
	}
	return stats, nil
}

// History returns the user's most recent stored results.
func (q *QuizS) History(ctx context.Context, userID int64, limit int) ([]models.QuizResult, error) {
	if limit <= 0 {
		limit = 10
	}
	results, err := q.repo.RecentResults(ctx, userID, limit)
	if err != nil {
		q.log.Warn("failed to get quiz history", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return results, nil
}
