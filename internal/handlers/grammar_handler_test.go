// internal/handlers/grammar_handler_test.go
package handlers_test

import (
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

func newGrammarRouter(t *testing.T) (*chi.Mux, *mocks.GrammarService) {
	t.Helper()
	mockService := mocks.NewGrammarService(t)
	handler := handlers.NewGrammarHandler(mockService, nil)
	router := chi.NewRouter()
	router.Get("/api/v1/grammar", handler.GetTopics)
	router.Get("/api/v1/grammar/{topic_id}", handler.GetTopic)
	return router, mockService
}

func TestGrammarHandler_GetTopics(t *testing.T) {
	router, mockService := newGrammarRouter(t)
	topics := []*model.GrammarTopic{
		{TopicID: "g-01", Title: "be動詞の一致", Level: "A1", Examples: model.StringList{"She is a student."}},
		{TopicID: "g-02", Title: "現在形の三単現", Level: "A1", Examples: model.StringList{"He plays soccer."}},
	}
	mockService.On("ListTopics", mock.Anything, "A1").Return(topics, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/grammar?level=A1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []*model.GrammarTopic
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestGrammarHandler_GetTopic(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mockService := newGrammarRouter(t)
		mockService.On("GetTopic", mock.Anything, "g-01").
			Return(&model.GrammarTopic{TopicID: "g-01", Title: "be動詞の一致", Level: "A1"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/grammar/g-01", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		router, mockService := newGrammarRouter(t)
		appErr := model.NewAppError("TOPIC_NOT_FOUND", "指定された文法トピックが見つかりません。", "topic_id", model.ErrNotFound)
		mockService.On("GetTopic", mock.Anything, "ghost").Return(nil, appErr).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/grammar/ghost", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
