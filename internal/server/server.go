package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sivanwunder-commits/flashcards/internal/config"
	"github.com/sivanwunder-commits/flashcards/internal/models"
	"go.uber.org/zap"
)

// QuizSI is the slice of the quiz service the transport needs.
type QuizSI interface {
	StartSession(userID int64, questionCount int) (*models.QuizSession, error)
	CurrentQuestion(userID int64) *models.QuizQuestion
	SubmitAnswer(userID int64, questionID string, selectedIndex int, timeSpentMs int64) (models.QuizAnswer, bool)
	CompleteSession(ctx context.Context, userID int64) (*models.QuizResult, error)
	ResetSession(userID int64)
	Progress(userID int64) (models.SessionProgress, bool)
	Stats(ctx context.Context, userID int64) (models.QuizStats, error)
	History(ctx context.Context, userID int64, limit int) ([]models.QuizResult, error)
}

type Server struct {
	http    *http.Server
	service QuizSI
	log     *zap.Logger
}

func NewServer(cfg config.HTTPConfig, service QuizSI, log *zap.Logger) *Server {
	s := &Server{
		service: service,
		log:     log,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", s.handleStartSession)
			r.Get("/question", s.handleCurrentQuestion)
			r.Post("/answers", s.handleSubmitAnswer)
			r.Post("/complete", s.handleCompleteSession)
			r.Post("/reset", s.handleResetSession)
			r.Get("/progress", s.handleProgress)
		})
		r.Get("/stats", s.handleStats)
		r.Get("/history", s.handleHistory)
	})

	s.http = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s
}

func (s *Server) Run() error {
	s.log.Info("http server listening", zap.String("addr", s.http.Addr))
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}
