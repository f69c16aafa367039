package models

import "time"

// QuizQuestion is one rendered multiple-choice question. It is derived from a
// card when a session starts and lives only as long as the session.
type QuizQuestion struct {
	ID           string   `json:"id"`
	CardID       string   `json:"card_id"`
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	Answer       string   `json:"-"`
	CorrectIndex int      `json:"-"`
}

// QuizAnswer records the user's response to one question. Append-only within
// a session.
type QuizAnswer struct {
	QuestionID    string `json:"question_id"`
	Selected      string `json:"selected"`
	SelectedIndex int    `json:"selected_index"`
	Correct       bool   `json:"correct"`
	TimeSpentMs   int64  `json:"time_spent_ms"`
}

// QuizSession is the aggregate for one quiz attempt: the generated questions
// plus the answers recorded so far. The answer list never grows past the
// question list.
type QuizSession struct {
	ID        string
	UserID    int64
	Questions []QuizQuestion
	Answers   []QuizAnswer
	StartedAt time.Time
	EndedAt   time.Time
	Completed bool
}

// QuizResult is the immutable snapshot produced when a session completes.
type QuizResult struct {
	SessionID   string       `json:"session_id" db:"session_id"`
	UserID      int64        `json:"user_id" db:"user_id"`
	Score       int          `json:"score" db:"score"`
	Total       int          `json:"total" db:"total"`
	Accuracy    float64      `json:"accuracy" db:"accuracy"`
	TimeSpentMs int64        `json:"time_spent_ms" db:"time_spent_ms"`
	Answers     []QuizAnswer `json:"answers" db:"-"`
	TakenAt     time.Time    `json:"taken_at" db:"taken_at"`
}

// SessionProgress is the live telemetry snapshot of an active session.
type SessionProgress struct {
	QuestionIndex  int    `json:"question_index"`
	TotalQuestions int    `json:"total_questions"`
	CorrectCount   int    `json:"correct_count"`
	IncorrectCount int    `json:"incorrect_count"`
	ElapsedMs      int64  `json:"elapsed_ms"`
	Difficulty     string `json:"difficulty"`
}

// QuizStats aggregates a user's stored results.
type QuizStats struct {
	SessionCount  int     `json:"session_count" db:"session_count"`
	QuestionCount int     `json:"question_count" db:"question_count"`
	CorrectCount  int     `json:"correct_count" db:"correct_count"`
	Accuracy      float64 `json:"accuracy" db:"-"`
}
