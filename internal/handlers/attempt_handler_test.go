// internal/handlers/attempt_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go_5_eng_drill/internal/handlers"
	"go_5_eng_drill/internal/model"
	"go_5_eng_drill/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAttemptRouter(t *testing.T) (*chi.Mux, *mocks.AttemptService) {
	t.Helper()
	mockService := mocks.NewAttemptService(t)
	handler := handlers.NewAttemptHandler(mockService, nil)
	router := chi.NewRouter()
	router.Post("/api/v1/attempts", handler.PostAttempt)
	router.Get("/api/v1/wrong", handler.GetWrongAttempts)
	router.Get("/api/v1/wrong/{attempt_id}", handler.GetWrongAttempt)
	return router, mockService
}

func validRecordAttemptBody() map[string]interface{} {
	return map[string]interface{}{
		"device_id": "dev-1",
		"attempt": map[string]interface{}{
			"kind":        "vocab",
			"question_id": "vocab-w-apple-mcq",
			"source_id":   "w-apple",
			"type":        "mcq",
			"level":       "A1",
			"prompt":      "Choose the correct Korean meaning for the English word: apple",
			"choices":     []string{"사과", "바나나", "포도", "수박"},
			"answer":      "사과",
			"chosen":      "바나나",
			"is_correct":  false,
		},
	}
}

func TestAttemptHandler_PostAttempt(t *testing.T) {
	t.Run("Success - 回答を記録して201を返す", func(t *testing.T) {
		router, mockService := newAttemptRouter(t)
		mockService.On("RecordAttempt", mock.Anything, mock.AnythingOfType("*model.RecordAttemptRequest")).
			Run(func(args mock.Arguments) {
				req := args.Get(1).(*model.RecordAttemptRequest)
				assert.Equal(t, "dev-1", req.DeviceID)
				require.NotNil(t, req.Attempt.IsCorrect)
				assert.False(t, *req.Attempt.IsCorrect)
			}).Return(nil).Once()

		body, _ := json.Marshal(validRecordAttemptBody())
		req := httptest.NewRequest(http.MethodPost, "/api/v1/attempts", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"ok": true}`, rec.Body.String())
	})

	t.Run("Failure - is_correctがない", func(t *testing.T) {
		router, _ := newAttemptRouter(t)
		payload := validRecordAttemptBody()
		delete(payload["attempt"].(map[string]interface{}), "is_correct")

		body, _ := json.Marshal(payload)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/attempts", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	})

	t.Run("Failure - attempt本体がない", func(t *testing.T) {
		router, _ := newAttemptRouter(t)
		body, _ := json.Marshal(map[string]interface{}{"device_id": "dev-1"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/attempts", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAttemptHandler_GetWrongAttempts(t *testing.T) {
	t.Run("Success - 間違いノートの一覧を返す", func(t *testing.T) {
		router, mockService := newAttemptRouter(t)
		responses := []*model.WrongAttemptResponse{
			{
				AttemptID: uuid.New(), Kind: model.KindVocab, QuestionID: "vocab-w-apple-mcq",
				SourceID: "w-apple", QuestionType: model.QuestionTypeMCQ, Level: "A1",
				Prompt: "p", Answer: "사과", Chosen: "바나나", CreatedAt: time.Now(),
			},
		}
		mockService.On("ListWrongAttempts", mock.Anything, "dev-1", model.KindVocab, "A1").
			Return(responses, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/wrong?device_id=dev-1&kind=vocab&level=A1", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []*model.WrongAttemptResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "w-apple", got[0].SourceID)
	})

	t.Run("Failure - device_idがない", func(t *testing.T) {
		router, _ := newAttemptRouter(t)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/wrong", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "DEVICE_ID_REQUIRED", resp.Error.Code)
	})

	t.Run("Failure - 不正なkind", func(t *testing.T) {
		router, _ := newAttemptRouter(t)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/wrong?device_id=dev-1&kind=math", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAttemptHandler_GetWrongAttempt(t *testing.T) {
	attemptID := uuid.New()

	t.Run("Success - 1件詳細を返す", func(t *testing.T) {
		router, mockService := newAttemptRouter(t)
		mockService.On("GetWrongAttempt", mock.Anything, attemptID).
			Return(&model.WrongAttemptResponse{AttemptID: attemptID, Kind: model.KindVocab, SourceID: "w-apple"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/wrong/"+attemptID.String(), nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Failure - UUIDでないID", func(t *testing.T) {
		router, _ := newAttemptRouter(t)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/wrong/not-a-uuid", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp model.APIErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "INVALID_ATTEMPT_ID", resp.Error.Code)
	})

	t.Run("Failure - 存在しないattempt", func(t *testing.T) {
		router, mockService := newAttemptRouter(t)
		appErr := model.NewAppError("ATTEMPT_NOT_FOUND", "指定された回答が見つかりません。", "attempt_id", model.ErrNotFound)
		mockService.On("GetWrongAttempt", mock.Anything, attemptID).Return(nil, appErr).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/wrong/"+attemptID.String(), nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
