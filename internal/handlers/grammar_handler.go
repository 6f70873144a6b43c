// internal/handlers/grammar_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_eng_drill/internal/service"
	"go_5_eng_drill/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type GrammarHandler struct {
	service service.GrammarService
	logger  *slog.Logger
}

func NewGrammarHandler(s service.GrammarService, logger *slog.Logger) *GrammarHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GrammarHandler{
		service: s,
		logger:  logger,
	}
}

// GetTopics は文法トピックカタログの一覧を返すハンドラ。levelクエリで絞り込める。
func (h *GrammarHandler) GetTopics(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTopics"))

	topics, err := h.service.ListTopics(r.Context(), r.URL.Query().Get("level"))
	if err != nil {
		logger.Error("Error listing grammar topics in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, topics, logger)
}

// GetTopic は文法トピックの1件詳細を返すハンドラ
func (h *GrammarHandler) GetTopic(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetTopic"))

	topicID := chi.URLParam(r, "topic_id")
	logger = logger.With(slog.String("topic_id", topicID))

	topic, err := h.service.GetTopic(r.Context(), topicID)
	if err != nil {
		logger.Error("Error getting grammar topic in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, topic, logger)
}
