package repository

import (
	"context"
	"fmt"

	"github.com/sivanwunder-commits/flashcards/internal/models"
)

type ResultsR struct {
	db QueryI
}

func NewResultsRepository(db QueryI) *ResultsR {
	return &ResultsR{
		db: db,
	}
}

// AddResult stores a completed session's result together with its answers.
func (r *ResultsR) AddResult(ctx context.Context, result models.QuizResult) error {
	query := `
        INSERT INTO quiz_results (session_id, user_id, score, total, accuracy, time_spent_ms, taken_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `

	_, err := r.db.ExecContext(ctx, query,
		result.SessionID, result.UserID, result.Score, result.Total,
		result.Accuracy, result.TimeSpentMs, result.TakenAt)
	if err != nil {
		return fmt.Errorf("failed to insert result %s: %w", result.SessionID, err)
	}

	answerQuery := `
        INSERT INTO quiz_answers (session_id, question_id, selected, is_correct, time_spent_ms)
        VALUES ($1, $2, $3, $4, $5)
    `

	for _, answer := range result.Answers {
		_, err := r.db.ExecContext(ctx, answerQuery,
			result.SessionID, answer.QuestionID, answer.Selected, answer.Correct, answer.TimeSpentMs)
		if err != nil {
			return fmt.Errorf("failed to insert answer %s: %w", answer.QuestionID, err)
		}
	}

	return nil
}

// Stats aggregates all stored results for a user.
func (r *ResultsR) Stats(ctx context.Context, userID int64) (models.QuizStats, error) {
	query := `SELECT
		COUNT(*) AS session_count,
		COALESCE(SUM(total), 0) AS question_count,
		COALESCE(SUM(score), 0) AS correct_count
	FROM quiz_results
	WHERE user_id = $1`

	var stats models.QuizStats
	err := r.db.GetContext(ctx, &stats, query, userID)
	if err != nil {
		return models.QuizStats{}, err
	}

	if stats.QuestionCount > 0 {
		stats.Accuracy = float64(stats.CorrectCount) / float64(stats.QuestionCount) * 100
	}

	return stats, nil
}

// RecentResults returns the user's most recent results, newest first.
func (r *ResultsR) RecentResults(ctx context.Context, userID int64, limit int) ([]models.QuizResult, error) {
	query := `
		SELECT session_id, user_id, score, total, accuracy, time_spent_ms, taken_at
		FROM quiz_results
		WHERE user_id = $1
		ORDER BY taken_at DESC
		LIMIT $2
	`

	results := make([]models.QuizResult, 0, limit)
	err := r.db.SelectContext(ctx, &results, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get results for user %d: %w", userID, err)
	}

	return results, nil
}
