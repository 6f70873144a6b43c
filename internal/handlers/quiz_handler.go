// internal/handlers/quiz_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_eng_drill/internal/model"
	"go_5_eng_drill/internal/service"
	"go_5_eng_drill/internal/webutil"
)

type QuizHandler struct {
	service service.QuizService
	logger  *slog.Logger
}

func NewQuizHandler(s service.QuizService, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizHandler{
		service: s,
		logger:  logger,
	}
}

// PostSession は出題セッションを合成して返すハンドラ
func (h *QuizHandler) PostSession(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostSession"))

	var req model.SessionRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	questions, err := h.service.ComposeSession(r.Context(), &req)
	if err != nil {
		logger.Error("Error composing session in service", slog.Any("error", err), slog.Any("request", req))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Session composed successfully", slog.String("kind", req.Kind), slog.Int("count", len(questions)))
	webutil.RespondWithJSON(w, http.StatusOK, model.SessionResponse{Questions: questions}, logger)
}
