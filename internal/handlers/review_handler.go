// internal/handlers/review_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_eng_drill/internal/model"
	"go_5_eng_drill/internal/service"
	"go_5_eng_drill/internal/webutil"
)

type ReviewHandler struct {
	service service.ReviewService
	logger  *slog.Logger
}

func NewReviewHandler(s service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{
		service: s,
		logger:  logger,
	}
}

// GetDueReviews は期限到来の復習対象一覧を返すハンドラ
func (h *ReviewHandler) GetDueReviews(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetDueReviews"))

	deviceID := r.URL.Query().Get("device_id")
	if deviceID == "" {
		appErr := model.NewAppError("DEVICE_ID_REQUIRED", "device_idクエリパラメータは必須です。", "device_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("device_id", deviceID))

	kind, err := model.ParseKind(r.URL.Query().Get("kind"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	level := r.URL.Query().Get("level")

	states, err := h.service.GetDueStates(r.Context(), deviceID, kind, level)
	if err != nil {
		logger.Error("Error getting due reviews in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, states, logger)
}

// PostMastery は習得フラグを切り替えるハンドラ
func (h *ReviewHandler) PostMastery(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostMastery"))

	var req model.ToggleMasteryRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}
	logger = logger.With(slog.String("device_id", req.DeviceID), slog.String("source_id", req.SourceID))

	state, err := h.service.ToggleMastery(r.Context(), &req)
	if err != nil {
		logger.Error("Error toggling mastery in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Mastery toggled successfully", slog.Bool("is_mastered", state.IsMastered))
	webutil.RespondWithJSON(w, http.StatusOK, model.ToggleMasteryResponse{OK: true, ReviewState: state}, logger)
}
