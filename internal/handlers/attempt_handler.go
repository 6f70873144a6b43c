// internal/handlers/attempt_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_eng_drill/internal/model"
	"go_5_eng_drill/internal/service"
	"go_5_eng_drill/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type AttemptHandler struct {
	service service.AttemptService
	logger  *slog.Logger
}

func NewAttemptHandler(s service.AttemptService, logger *slog.Logger) *AttemptHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AttemptHandler{
		service: s,
		logger:  logger,
	}
}

// PostAttempt は回答1件を記録するハンドラ。復習状態の前進も同時に行われる。
func (h *AttemptHandler) PostAttempt(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostAttempt"))

	var req model.RecordAttemptRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}
	logger = logger.With(slog.String("device_id", req.DeviceID))

	if err := h.service.RecordAttempt(r.Context(), &req); err != nil {
		logger.Error("Error recording attempt in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Attempt recorded successfully", slog.String("source_id", req.Attempt.SourceID))
	webutil.RespondWithJSON(w, http.StatusCreated, map[string]bool{"ok": true}, logger)
}

// GetWrongAttempts は間違いノートの一覧を返すハンドラ
func (h *AttemptHandler) GetWrongAttempts(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWrongAttempts"))

	deviceID := r.URL.Query().Get("device_id")
	if deviceID == "" {
		appErr := model.NewAppError("DEVICE_ID_REQUIRED", "device_idクエリパラメータは必須です。", "device_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("device_id", deviceID))

	var kind model.Kind
	if k := r.URL.Query().Get("kind"); k != "" {
		parsed, err := model.ParseKind(k)
		if err != nil {
			webutil.HandleError(w, logger, err)
			return
		}
		kind = parsed
	}
	level := r.URL.Query().Get("level")

	responses, err := h.service.ListWrongAttempts(r.Context(), deviceID, kind, level)
	if err != nil {
		logger.Error("Error listing wrong attempts in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, responses, logger)
}

// GetWrongAttempt は間違いノートの1件詳細を返すハンドラ
func (h *AttemptHandler) GetWrongAttempt(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetWrongAttempt"))

	attemptIDStr := chi.URLParam(r, "attempt_id")
	attemptID, err := uuid.Parse(attemptIDStr)
	if err != nil {
		logger.Warn("Invalid attempt ID format", slog.String("attempt_id", attemptIDStr))
		appErr := model.NewAppError("INVALID_ATTEMPT_ID", "attempt_idの形式が正しくありません。", "attempt_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("attempt_id", attemptID.String()))

	resp, err := h.service.GetWrongAttempt(r.Context(), attemptID)
	if err != nil {
		logger.Error("Error getting wrong attempt in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
