package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sivanwunder-commits/flashcards/internal/config"
	"github.com/sivanwunder-commits/flashcards/internal/provider"
	"github.com/sivanwunder-commits/flashcards/internal/repository"
	"github.com/sivanwunder-commits/flashcards/internal/server"
	"github.com/sivanwunder-commits/flashcards/internal/service"
	"github.com/sivanwunder-commits/flashcards/internal/storage/db"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	database, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}

	repos := repository.NewRepository(database)

	decks := provider.NewDeckProvider(logger)
	cards, err := decks.Load(cfg.Deck.Path)
	if err != nil {
		logger.Fatal("failed to load deck", zap.String("path", cfg.Deck.Path), zap.Error(err))
	}
	logger.Info("deck loaded", zap.String("path", cfg.Deck.Path), zap.Int("cards", len(cards)))

	services := service.InitServices(repos, cards, cfg.Quiz, logger)

	srv := server.NewServer(cfg.HTTP, services.QuizS, logger)

	go func() {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("failed to shut down http server", zap.Error(err))
	}
}
