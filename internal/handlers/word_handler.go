// internal/handlers/word_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_eng_drill/internal/service"
	"go_5_eng_drill/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type WordHandler struct {
	service service.WordService
	logger  *slog.Logger
}

func NewWordHandler(s service.WordService, logger *slog.Logger) *WordHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WordHandler{
		service: s,
		logger:  logger,
	}
}

// GetWords は単語カタログの一覧を返すハンドラ。levelクエリで絞り込める。
func (h *WordHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWords"))

	words, err := h.service.ListWords(r.Context(), r.URL.Query().Get("level"))
	if err != nil {
		logger.Error("Error listing words in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, words, logger)
}

// GetWord は単語カタログの1件詳細を返すハンドラ
func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWord"))

	wordID := chi.URLParam(r, "word_id")
	logger = logger.With(slog.String("word_id", wordID))

	word, err := h.service.GetWord(r.Context(), wordID)
	if err != nil {
		logger.Error("Error getting word in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}
