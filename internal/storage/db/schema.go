package db

const schema = `
CREATE TABLE IF NOT EXISTS quiz_results (
    id BIGSERIAL PRIMARY KEY,
    session_id TEXT NOT NULL UNIQUE,
    user_id BIGINT NOT NULL,
    score INTEGER NOT NULL,
    total INTEGER NOT NULL,
    accuracy DOUBLE PRECISION NOT NULL,
    time_spent_ms BIGINT NOT NULL,
    taken_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_quiz_results_user ON quiz_results (user_id, taken_at DESC);

CREATE TABLE IF NOT EXISTS quiz_answers (
    id BIGSERIAL PRIMARY KEY,
    session_id TEXT NOT NULL REFERENCES quiz_results(session_id) ON DELETE CASCADE,
    question_id TEXT NOT NULL,
    selected TEXT NOT NULL,
    is_correct BOOLEAN NOT NULL,
    time_spent_ms BIGINT NOT NULL
);
`
