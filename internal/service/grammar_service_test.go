// internal/service/grammar_service_test.go
package service

import (
	"context"
	"testing"

	"go_5_eng_drill/internal/model"
	"go_5_eng_drill/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_grammarService_GetTopic(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: IDで1件取得する", func(t *testing.T) {
		grammarRepo := new(mocks.GrammarRepository)
		svc := NewGrammarService(nil, grammarRepo)
		grammarRepo.On("FindByID", mock.Anything, mock.Anything, "g001").
			Return(&model.GrammarTopic{TopicID: "g001", Title: "Be動詞の現在形", Level: "A1"}, nil).Once()

		topic, err := svc.GetTopic(ctx, "g001")

		require.NoError(t, err)
		assert.Equal(t, "Be動詞の現在形", topic.Title)
	})

	t.Run("異常系: 存在しないID", func(t *testing.T) {
		grammarRepo := new(mocks.GrammarRepository)
		svc := NewGrammarService(nil, grammarRepo)
		grammarRepo.On("FindByID", mock.Anything, mock.Anything, "ghost").
			Return(nil, model.ErrNotFound).Once()

		_, err := svc.GetTopic(ctx, "ghost")

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "TOPIC_NOT_FOUND", appErr.Detail.Code)
	})
}
