// internal/handlers/word_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"wordvault/internal/middleware"
	"wordvault/internal/model"
	"wordvault/internal/service"
	"wordvault/internal/webutil"
)

const (
	defaultWordPageSize = 50
	maxWordPageSize     = 200
)

type WordHandler struct {
	words service.WordService
}

func NewWordHandler(words service.WordService) *WordHandler {
	return &WordHandler{words: words}
}

func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	offset := queryInt(r, "offset", 0)
	limit := queryInt(r, "limit", defaultWordPageSize)
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > maxWordPageSize {
		limit = defaultWordPageSize
	}

	page, err := h.words.List(r.Context(), offset, limit)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, page)
}

func (h *WordHandler) Import(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.ImportWordsRequest
	if err := webutil.DecodeAndValidate(r, &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	count, err := h.words.Import(r.Context(), req.Words)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusCreated, map[string]int{"imported": count})
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
