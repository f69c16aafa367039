package service

import (
	"context"

	"github.com/sivanwunder-commits/flashcards/internal/config"
	"github.com/sivanwunder-commits/flashcards/internal/models"
	"go.uber.org/zap"
)

type ResultRI interface {
	AddResult(ctx context.Context, result models.QuizResult) error
	Stats(ctx context.Context, userID int64) (models.QuizStats, error)
	RecentResults(ctx context.Context, userID int64, limit int) ([]models.QuizResult, error)
}

type Service struct {
	*QuizS
}

func InitServices(repo ResultRI, cards []models.Card, cfg config.QuizConfig, log *zap.Logger) *Service {
	return &Service{
		QuizS: NewQuizService(repo, cards, cfg, log),
	}
}
