package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sivanwunder-commits/flashcards/internal/service"
	"go.uber.org/zap"
)

type startSessionRequest struct {
	UserID        int64 `json:"user_id"`
	QuestionCount int   `json:"question_count"`
}

type startSessionResponse struct {
	SessionID      string `json:"session_id"`
	TotalQuestions int    `json:"total_questions"`
}

type submitAnswerRequest struct {
	UserID        int64  `json:"user_id"`
	QuestionID    string `json:"question_id"`
	SelectedIndex int    `json:"selected_index"`
	TimeSpentMs   int64  `json:"time_spent_ms"`
}

type submitAnswerResponse struct {
	Recorded bool `json:"recorded"`
	Correct  bool `json:"correct"`
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == 0 {
		s.respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	session, err := s.service.StartSession(req.UserID, req.QuestionCount)
	if err != nil {
		if errors.Is(err, service.ErrEmptyPool) {
			s.respondError(w, http.StatusServiceUnavailable, "no cards available")
			return
		}
		s.log.Error("failed to start session", zap.Int64("user_id", req.UserID), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to start session")
		return
	}

	s.respondJSON(w, http.StatusCreated, startSessionResponse{
		SessionID:      session.ID,
		TotalQuestions: len(session.Questions),
	})
}

func (s *Server) handleCurrentQuestion(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.userIDFromQuery(w, r)
	if !ok {
		return
	}

	question := s.service.CurrentQuestion(userID)
	if question == nil {
		s.respondError(w, http.StatusNotFound, "no open question")
		return
	}

	s.respondJSON(w, http.StatusOK, question)
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req submitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID == 0 || req.QuestionID == "" {
		s.respondError(w, http.StatusBadRequest, "user_id and question_id are required")
		return
	}

	answer, recorded := s.service.SubmitAnswer(req.UserID, req.QuestionID, req.SelectedIndex, req.TimeSpentMs)

	s.respondJSON(w, http.StatusOK, submitAnswerResponse{
		Recorded: recorded,
		Correct:  answer.Correct,
	})
}

func (s *Server) handleCompleteSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.userIDFromQuery(w, r)
	if !ok {
		return
	}

	result, err := s.service.CompleteSession(r.Context(), userID)
	if err != nil {
		s.log.Error("failed to complete session", zap.Int64("user_id", userID), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to store result")
		return
	}
	if result == nil {
		s.respondError(w, http.StatusConflict, "session is not complete")
		return
	}

	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleResetSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.userIDFromQuery(w, r)
	if !ok {
		return
	}

	s.service.ResetSession(userID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.userIDFromQuery(w, r)
	if !ok {
		return
	}

	progress, exists := s.service.Progress(userID)
	if !exists {
		s.respondError(w, http.StatusNotFound, "no active session")
		return
	}

	s.respondJSON(w, http.StatusOK, progress)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.userIDFromQuery(w, r)
	if !ok {
		return
	}

	stats, err := s.service.Stats(r.Context(), userID)
	if err != nil {
		s.log.Error("failed to get stats", zap.Int64("user_id", userID), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to get stats")
		return
	}

	s.respondJSON(w, http.StatusOK, stats)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.userIDFromQuery(w, r)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	results, err := s.service.History(r.Context(), userID, limit)
	if err != nil {
		s.log.Error("failed to get history", zap.Int64("user_id", userID), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "failed to get history")
		return
	}

	s.respondJSON(w, http.StatusOK, results)
}

func (s *Server) userIDFromQuery(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil || userID == 0 {
		s.respondError(w, http.StatusBadRequest, "user_id is required")
		return 0, false
	}
	return userID, true
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Warn("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, map[string]string{"error": msg})
}
