// internal/handlers/word_handler_test.go
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

func newWordRouter(t *testing.T) (*chi.Mux, *mocks.WordService) {
	t.Helper()
	mockService := mocks.NewWordService(t)
	handler := handlers.NewWordHandler(mockService, nil)
	router := chi.NewRouter()
	router.Get("/api/v1/words", handler.GetWords)
	router.Get("/api/v1/words/{word_id}", handler.GetWord)
	return router, mockService
}

func TestWordHandler_GetWords(t *testing.T) {
	router, mockService := newWordRouter(t)
	words := []*model.Word{
		{WordID: "w-apple", Word: "apple", MeaningKo: "사과", Level: "A1"},
		{WordID: "w-book", Word: "book", MeaningKo: "책", Level: "A1"},
	}
	mockService.On("ListWords", mock.Anything, "A1").Return(words, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/words?level=A1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []*model.Word
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestWordHandler_GetWord(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mockService := newWordRouter(t)
		mockService.On("GetWord", mock.Anything, "w-apple").
			Return(&model.Word{WordID: "w-apple", Word: "apple", MeaningKo: "사과", Level: "A1"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/words/w-apple", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		router, mockService := newWordRouter(t)
		appErr := model.NewAppError("WORD_NOT_FOUND", "指定された単語が見つかりません。", "word_id", model.ErrNotFound)
		mockService.On("GetWord", mock.Anything, "ghost").Return(nil, appErr).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/words/ghost", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
