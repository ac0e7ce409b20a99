// internal/handlers/learning_handler.go
package handlers

import (
	"net/http"

	"wordvault/internal/middleware"
	"wordvault/internal/model"
	"wordvault/internal/service"
	"wordvault/internal/webutil"
)

type LearningHandler struct {
	learning service.LearningService
	quiz     service.QuizService
}

func NewLearningHandler(learning service.LearningService, quiz service.QuizService) *LearningHandler {
	return &LearningHandler{learning: learning, quiz: quiz}
}

func (h *LearningHandler) GetTodayBatch(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	batch, err := h.learning.SelectTodayBatch(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, batch)
}

func (h *LearningHandler) Complete(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CompleteLearningRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.learning.CompleteLearning(r.Context(), userID, req.WordIDs); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *LearningHandler) BuildQuiz(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CompleteLearningRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	questions, err := h.quiz.BuildQuestions(r.Context(), userID, req.WordIDs)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, questions)
}

// BuildSessionQuiz returns the batch questions ordered as a full session,
// each word repeated once per cycle.
func (h *LearningHandler) BuildSessionQuiz(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	var req model.CompleteLearningRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	session, err := h.quiz.BuildSessionQuestions(r.Context(), userID, req.WordIDs)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, session)
}
