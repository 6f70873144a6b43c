// internal/service/review_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go_5_eng_drill/internal/config"
	"go_5_eng_drill/internal/model"
	"go_5_eng_drill/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDBReview(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to connect database for review service testing")
	return db
}

func newReviewServiceForTest(t *testing.T) (ReviewService, *mocks.ReviewStateRepository, *mocks.WordRepository, *mocks.GrammarRepository) {
	t.Helper()
	stateRepo := new(mocks.ReviewStateRepository)
	wordRepo := new(mocks.WordRepository)
	grammarRepo := new(mocks.GrammarRepository)
	cfg := &config.Config{Quiz: config.QuizConfig{DueLimit: 50}}
	svc := NewReviewService(setupTestDBReview(t), stateRepo, wordRepo, grammarRepo, cfg)
	return svc, stateRepo, wordRepo, grammarRepo
}

func Test_reviewService_GetDueStates(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 期限到来の状態を返す", func(t *testing.T) {
		svc, stateRepo, _, _ := newReviewServiceForTest(t)
		states := []*model.ReviewState{
			{StateID: uuid.New(), DeviceID: "dev-1", Kind: model.KindVocab, SourceID: "w001", Level: "A1"},
			{StateID: uuid.New(), DeviceID: "dev-1", Kind: model.KindVocab, SourceID: "w002", Level: "A1"},
		}
		stateRepo.On("FindDue", mock.Anything, mock.Anything, "dev-1", model.KindVocab, "A1", mock.AnythingOfType("time.Time"), 50).
			Return(states, nil).Once()

		got, err := svc.GetDueStates(ctx, "dev-1", model.KindVocab, "A1")

		require.NoError(t, err)
		assert.Len(t, got, 2)
		stateRepo.AssertExpectations(t)
	})

	t.Run("異常系: リポジトリエラー", func(t *testing.T) {
		svc, stateRepo, _, _ := newReviewServiceForTest(t)
		stateRepo.On("FindDue", mock.Anything, mock.Anything, "dev-1", model.KindGrammar, "", mock.AnythingOfType("time.Time"), 50).
			Return(nil, errors.New("db down")).Once()

		_, err := svc.GetDueStates(ctx, "dev-1", model.KindGrammar, "")

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INTERNAL_SERVER_ERROR", appErr.Detail.Code)
	})
}

func Test_reviewService_ToggleMastery(t *testing.T) {
	ctx := context.Background()

	t.Run("正常系: 状態がなければカタログのレベルでデフォルト作成する", func(t *testing.T) {
		svc, stateRepo, wordRepo, _ := newReviewServiceForTest(t)
		created := &model.ReviewState{
			StateID: uuid.New(), DeviceID: "dev-1", Kind: model.KindVocab, SourceID: "w001",
			Level: "A2", IntervalDays: 0, EaseFactor: 2.5, Streak: 0, IsMastered: true,
		}

		// resolveLevel用の1回目は見つからず、upsert後の再取得で作成行が返る
		stateRepo.On("FindByKey", mock.Anything, mock.Anything, "dev-1", model.KindVocab, "w001").
			Return(nil, model.ErrNotFound).Once()
		wordRepo.On("FindByID", mock.Anything, mock.Anything, "w001").
			Return(&model.Word{WordID: "w001", Word: "apple", Level: "A2"}, nil).Once()
		stateRepo.On("UpsertMastery", mock.Anything, mock.Anything, mock.AnythingOfType("*model.ReviewState")).
			Run(func(args mock.Arguments) {
				st := args.Get(2).(*model.ReviewState)
				assert.Equal(t, "A2", st.Level, "レベルはカタログから引く")
				assert.Equal(t, 0, st.IntervalDays, "スケジュールはデフォルトのまま")
				assert.InDelta(t, 2.5, st.EaseFactor, 1e-9)
				assert.Equal(t, 0, st.Streak)
				assert.True(t, st.IsMastered)
				assert.WithinDuration(t, time.Now(), st.NextReviewAt, 5*time.Second)
			}).Return(nil).Once()
		stateRepo.On("FindByKey", mock.Anything, mock.Anything, "dev-1", model.KindVocab, "w001").
			Return(created, nil).Once()

		got, err := svc.ToggleMastery(ctx, &model.ToggleMasteryRequest{
			DeviceID: "dev-1", Kind: "vocab", SourceID: "w001", IsMastered: boolPtr(true),
		})

		require.NoError(t, err)
		assert.True(t, got.IsMastered)
		assert.Equal(t, "A2", got.Level)
		stateRepo.AssertExpectations(t)
		wordRepo.AssertExpectations(t)
	})

	t.Run("正常系: 既存の状態はスケジュールを保ったままフラグだけ変わる", func(t *testing.T) {
		svc, stateRepo, wordRepo, _ := newReviewServiceForTest(t)
		existing := &model.ReviewState{
			StateID: uuid.New(), DeviceID: "dev-1", Kind: model.KindGrammar, SourceID: "g001",
			Level: "B1", IntervalDays: 8, EaseFactor: 2.7, Streak: 3, IsMastered: false,
		}
		updated := *existing
		updated.IsMastered = true

		stateRepo.On("FindByKey", mock.Anything, mock.Anything, "dev-1", model.KindGrammar, "g001").
			Return(existing, nil).Once()
		stateRepo.On("UpsertMastery", mock.Anything, mock.Anything, mock.AnythingOfType("*model.ReviewState")).
			Return(nil).Once()
		stateRepo.On("FindByKey", mock.Anything, mock.Anything, "dev-1", model.KindGrammar, "g001").
			Return(&updated, nil).Once()

		got, err := svc.ToggleMastery(ctx, &model.ToggleMasteryRequest{
			DeviceID: "dev-1", Kind: "grammar", SourceID: "g001", IsMastered: boolPtr(true),
		})

		require.NoError(t, err)
		assert.True(t, got.IsMastered)
		assert.Equal(t, 8, got.IntervalDays, "upsertは既存のスケジュールを壊さない")
		assert.Equal(t, 3, got.Streak)
		stateRepo.AssertExpectations(t)
		wordRepo.AssertNotCalled(t, "FindByID")
	})

	t.Run("異常系: カタログに存在しない出題元", func(t *testing.T) {
		svc, stateRepo, _, grammarRepo := newReviewServiceForTest(t)
		stateRepo.On("FindByKey", mock.Anything, mock.Anything, "dev-1", model.KindGrammar, "ghost").
			Return(nil, model.ErrNotFound).Once()
		grammarRepo.On("FindByID", mock.Anything, mock.Anything, "ghost").
			Return(nil, model.ErrNotFound).Once()

		_, err := svc.ToggleMastery(ctx, &model.ToggleMasteryRequest{
			DeviceID: "dev-1", Kind: "grammar", SourceID: "ghost", IsMastered: boolPtr(true),
		})

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "SOURCE_NOT_FOUND", appErr.Detail.Code)
	})

	t.Run("異常系: 不正なkind", func(t *testing.T) {
		svc, _, _, _ := newReviewServiceForTest(t)

		_, err := svc.ToggleMastery(ctx, &model.ToggleMasteryRequest{
			DeviceID: "dev-1", Kind: "math", SourceID: "w001", IsMastered: boolPtr(false),
		})

		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "INVALID_KIND", appErr.Detail.Code)
	})
}
