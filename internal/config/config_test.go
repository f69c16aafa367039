package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseConfig = `env: development

http:
  port: "8080"
  read_timeout: 5s
  write_timeout: 5s

deck:
  path: data/decks/spanish.json

db:
  conn:
    host: localhost
    port: "5432"
    user: quiz
    password: quiz
    name: quiz
    ssl: disable
  cfg:
    max_open_conns: 10
    max_idle_conns: 5
    conn_max_life_time: 1h
    conn_max_idle_time: 10m
`

// writeConfig drops a configs/default.yml into a temp dir and chdirs there so
// Init picks it up. Tests here cannot run in parallel because of the chdir.
func writeConfig(t *testing.T, content string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "default.yml"), []byte(content), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(wd))
	})
}

func TestInit(t *testing.T) {
	t.Run("valid config with explicit quiz section", func(t *testing.T) {
		writeConfig(t, baseConfig+`
quiz:
  enable_adaptive_difficulty: false
  adjustment_speed: 0.5
  min_questions_for_adjustment: 3
  performance_window: 8
  default_question_count: 15
`)

		cfg, err := Init()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.HTTP.Port)
		assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
		assert.Equal(t, "data/decks/spanish.json", cfg.Deck.Path)
		assert.Equal(t, "development", cfg.Env)

		assert.False(t, cfg.Quiz.EnableAdaptiveDifficulty)
		assert.InDelta(t, 0.5, cfg.Quiz.AdjustmentSpeed, 0.001)
		assert.Equal(t, 3, cfg.Quiz.MinQuestionsForAdjust)
		assert.Equal(t, 8, cfg.Quiz.PerformanceWindow)
		assert.Equal(t, 15, cfg.Quiz.DefaultQuestionCount)
	})

	t.Run("absent quiz section falls back to defaults", func(t *testing.T) {
		writeConfig(t, baseConfig)

		cfg, err := Init()
		require.NoError(t, err)

		assert.Equal(t, DefaultQuiz(), cfg.Quiz)
	})

	t.Run("malformed quiz section falls back to defaults", func(t *testing.T) {
		writeConfig(t, baseConfig+`
quiz:
  adjustment_speed: 7.5
  min_questions_for_adjustment: 0
`)

		cfg, err := Init()
		require.NoError(t, err)

		assert.Equal(t, DefaultQuiz(), cfg.Quiz)
	})

	t.Run("missing required field fails validation", func(t *testing.T) {
		writeConfig(t, `env: development

http:
  port: ""
  read_timeout: 5s
  write_timeout: 5s

deck:
  path: data/decks/spanish.json

db:
  conn:
    host: localhost
    port: "5432"
    user: quiz
    password: quiz
    name: quiz
    ssl: disable
  cfg:
    max_open_conns: 10
    max_idle_conns: 5
`)

		_, err := Init()
		assert.Error(t, err)
	})

	t.Run("missing config file", func(t *testing.T) {
		dir := t.TempDir()
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		t.Cleanup(func() {
			require.NoError(t, os.Chdir(wd))
		})

		_, err = Init()
		assert.Error(t, err)
	})

	t.Run("env override wins", func(t *testing.T) {
		writeConfig(t, baseConfig)
		t.Setenv("HTTP_PORT", "9090")

		cfg, err := Init()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.HTTP.Port)
	})
}
