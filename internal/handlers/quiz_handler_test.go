// internal/handlers/quiz_handler_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go_5_eng_drill/internal/handlers"
	"go_5_eng_drill/internal/model"
	"go_5_eng_drill/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSessionRouter(t *testing.T) (*chi.Mux, *mocks.QuizService) {
	t.Helper()
	mockService := mocks.NewQuizService(t)
	handler := handlers.NewQuizHandler(mockService, nil)
	router := chi.NewRouter()
	router.Post("/api/v1/session", handler.PostSession)
	return router, mockService
}

func TestQuizHandler_PostSession(t *testing.T) {
	validReq := model.SessionRequest{Kind: "vocab", Level: "A1", DeviceID: "dev-1"}
	questions := []*model.Question{
		{
			ID: "vocab-w-apple-mcq", Kind: model.KindVocab, Type: model.QuestionTypeMCQ,
			Level: "A1", Prompt: "Choose the correct Korean meaning for the English word: apple",
			Choices: []string{"사과", "바나나", "포도", "수박"}, Answer: "사과",
			Source: model.QuestionSource{ID: "w-apple", Label: "apple"},
		},
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(m *mocks.QuizService)
		expectedStatus int
		checkBody      func(t *testing.T, body []byte)
	}{
		{
			name: "Success - セッションが返る",
			body: validReq,
			setupMock: func(m *mocks.QuizService) {
				m.On("ComposeSession", mock.Anything, &validReq).Return(questions, nil).Once()
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp model.SessionResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				require.Len(t, resp.Questions, 1)
				assert.Equal(t, "vocab-w-apple-mcq", resp.Questions[0].ID)
			},
		},
		{
			name:           "Failure - kindがない",
			body:           map[string]string{"level": "A1"},
			setupMock:      func(m *mocks.QuizService) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body []byte) {
				var resp model.APIErrorResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
			},
		},
		{
			name:           "Failure - 不正なJSON",
			body:           "not json",
			setupMock:      func(m *mocks.QuizService) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body []byte) {
				var resp model.APIErrorResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "INVALID_REQUEST_BODY", resp.Error.Code)
			},
		},
		{
			name: "Failure - reviewWrongでdevice_idがないとサービスが400を返す",
			body: model.SessionRequest{Kind: "vocab", Mode: "reviewWrong"},
			setupMock: func(m *mocks.QuizService) {
				appErr := model.NewAppError("DEVICE_ID_REQUIRED", "reviewWrongモードにはdevice_idが必要です。", "device_id", model.ErrInvalidInput)
				m.On("ComposeSession", mock.Anything, mock.AnythingOfType("*model.SessionRequest")).
					Return(nil, appErr).Once()
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body []byte) {
				var resp model.APIErrorResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, "DEVICE_ID_REQUIRED", resp.Error.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockService := newSessionRouter(t)
			tt.setupMock(mockService)

			var buf bytes.Buffer
			if s, ok := tt.body.(string); ok {
				buf.WriteString(s)
			} else {
				require.NoError(t, json.NewEncoder(&buf).Encode(tt.body))
			}
			req := httptest.NewRequest(http.MethodPost, "/api/v1/session", &buf)
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.checkBody(t, rec.Body.Bytes())
		})
	}
}
