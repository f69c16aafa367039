package config

import (
	"fmt"
	"os"
	"time"

	"github.com/sivanwunder-commits/flashcards/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	HTTP HTTPConfig `mapstructure:"http" validate:"required"`
	Deck DeckConfig `mapstructure:"deck" validate:"required"`
	Quiz QuizConfig `mapstructure:"quiz"`
	DB   DBConfig   `mapstructure:"db" validate:"required"`
	Env  string     `mapstructure:"env" validate:"oneof=development production staging"`
}

type HTTPConfig struct {
	Port         string        `mapstructure:"port" validate:"required"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" validate:"min=1"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"min=1"`
}

type DeckConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// QuizConfig holds the adaptive-difficulty settings. Every field has a viper
// default, so a missing or partial quiz section resolves to sane values
// instead of failing startup.
type QuizConfig struct {
	EnableAdaptiveDifficulty bool    `mapstructure:"enable_adaptive_difficulty"`
	AdjustmentSpeed          float64 `mapstructure:"adjustment_speed" validate:"gt=0,lte=1"`
	MinQuestionsForAdjust    int     `mapstructure:"min_questions_for_adjustment" validate:"min=1"`
	PerformanceWindow        int     `mapstructure:"performance_window" validate:"min=1"`
	DefaultQuestionCount     int     `mapstructure:"default_question_count" validate:"min=1"`
}

type DBConfig struct {
	Conn DBConn `mapstructure:"conn"`
	Cfg  DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name" validate:"required"`
	SSL      string `mapstructure:"ssl" validate:"oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

// DefaultQuiz is the beginner-safe fallback used when the quiz section is
// absent or malformed.
func DefaultQuiz() QuizConfig {
	return QuizConfig{
		EnableAdaptiveDifficulty: true,
		AdjustmentSpeed:          0.3,
		MinQuestionsForAdjust:    5,
		PerformanceWindow:        10,
		DefaultQuestionCount:     10,
	}
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	setQuizDefaults(v)

	if err := v.BindEnv("http.port", "HTTP_PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind HTTP_PORT: %w", err)
	}
	if err := v.BindEnv("deck.path", "DECK_PATH"); err != nil {
		return nil, fmt.Errorf("failed to bind DECK_PATH: %w", err)
	}
	if err := v.BindEnv("db.conn.host", "DB_HOST"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_HOST: %w", err)
	}
	if err := v.BindEnv("db.conn.port", "DB_PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PORT: %w", err)
	}
	if err := v.BindEnv("db.conn.user", "DB_USER"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_USER: %w", err)
	}
	if err := v.BindEnv("db.conn.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD: %w", err)
	}
	if err := v.BindEnv("db.conn.name", "DB_NAME"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_NAME: %w", err)
	}
	if err := v.BindEnv("db.conn.ssl", "DB_SSL"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_SSL: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// A broken quiz section must never block startup. Fall back to the
	// defaults and let the rest of the config validate normally.
	if err := validator.ValidateStruct(cfg.Quiz); err != nil {
		cfg.Quiz = DefaultQuiz()
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setQuizDefaults(v *viper.Viper) {
	def := DefaultQuiz()
	v.SetDefault("quiz.enable_adaptive_difficulty", def.EnableAdaptiveDifficulty)
	v.SetDefault("quiz.adjustment_speed", def.AdjustmentSpeed)
	v.SetDefault("quiz.min_questions_for_adjustment", def.MinQuestionsForAdjust)
	v.SetDefault("quiz.performance_window", def.PerformanceWindow)
	v.SetDefault("quiz.default_question_count", def.DefaultQuestionCount)
}
