// internal/service/review_service.go
package service

import (
	"context"
	"errors"
	"time"

	"go_5_eng_drill/internal/config"
	"go_5_eng_drill/internal/middleware"
	"go_5_eng_drill/internal/model"
	"go_5_eng_drill/internal/repository"
	"go_5_eng_drill/internal/spaced"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewService は復習スケジュールの照会と習得フラグの切り替えを提供します。
type ReviewService interface {
	GetDueStates(ctx context.Context, deviceID string, kind model.Kind, level string) ([]*model.ReviewState, error)
	ToggleMastery(ctx context.Context, req *model.ToggleMasteryRequest) (*model.ReviewState, error)
}

type reviewService struct {
	db          *gorm.DB
	stateRepo   repository.ReviewStateRepository
	wordRepo    repository.WordRepository
	grammarRepo repository.GrammarRepository
	cfg         *config.Config
}

func NewReviewService(
	db *gorm.DB,
	stateRepo repository.ReviewStateRepository,
	wordRepo repository.WordRepository,
	grammarRepo repository.GrammarRepository,
	cfg *config.Config,
) ReviewService {
	return &reviewService{
		db:          db,
		stateRepo:   stateRepo,
		wordRepo:    wordRepo,
		grammarRepo: grammarRepo,
		cfg:         cfg,
	}
}

// GetDueStates は期限到来かつ未習得の復習状態を期限の古い順に返します (上限あり)。
func (s *reviewService) GetDueStates(ctx context.Context, deviceID string, kind model.Kind, level string) ([]*model.ReviewState, error) {
	logger := middleware.GetLogger(ctx).With("device_id", deviceID, "kind", kind)

	states, err := s.stateRepo.FindDue(ctx, s.db, deviceID, kind, level, time.Now(), s.cfg.Quiz.DueLimit)
	if err != nil {
		logger.Error("Failed to find due review states", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習対象の取得に失敗しました。", "", model.ErrInternalServer)
	}

	logger.Info("Successfully retrieved due review states", "count", len(states))
	return states, nil
}

// ToggleMastery は習得フラグだけを切り替えます。行がなければカタログ項目の
// レベルを引いてデフォルト状態で作成します。interval/ease/streakには触れません。
func (s *reviewService) ToggleMastery(ctx context.Context, req *model.ToggleMasteryRequest) (*model.ReviewState, error) {
	logger := middleware.GetLogger(ctx).With("device_id", req.DeviceID, "source_id", req.SourceID)

	kind, err := model.ParseKind(req.Kind)
	if err != nil {
		return nil, err
	}

	var result *model.ReviewState
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		level, err := s.resolveLevel(ctx, tx, req.DeviceID, kind, req.SourceID)
		if err != nil {
			return err
		}

		now := time.Now()
		base := spaced.Default(now)
		state := &model.ReviewState{
			StateID:      uuid.New(),
			DeviceID:     req.DeviceID,
			Kind:         kind,
			SourceID:     req.SourceID,
			Level:        level,
			IntervalDays: base.IntervalDays,
			EaseFactor:   base.EaseFactor,
			Streak:       base.Streak,
			NextReviewAt: base.NextReviewAt,
			IsMastered:   *req.IsMastered,
		}
		if err := s.stateRepo.UpsertMastery(ctx, tx, state); err != nil {
			logger.Error("Error upserting mastery", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "習得フラグの更新に失敗しました。", "", model.ErrInternalServer)
		}

		// upsert後の現在行を返す (既存行の場合はis_mastered以外が保たれている)
		current, err := s.stateRepo.FindByKey(ctx, tx, req.DeviceID, kind, req.SourceID)
		if err != nil {
			logger.Error("Error reloading review state after upsert", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "復習状態の再取得に失敗しました。", "", model.ErrInternalServer)
		}
		result = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Mastery toggled", "is_mastered", result.IsMastered)
	return result, nil
}

// resolveLevel は既存の復習状態のレベルを優先し、なければカタログ項目から引きます。
// カタログに存在しない出題元への操作は not found です。
func (s *reviewService) resolveLevel(ctx context.Context, tx *gorm.DB, deviceID string, kind model.Kind, sourceID string) (string, error) {
	existing, err := s.stateRepo.FindByKey(ctx, tx, deviceID, kind, sourceID)
	if err == nil {
		return existing.Level, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "復習状態の確認中にエラーが発生しました。", "", model.ErrInternalServer)
	}

	if kind == model.KindVocab {
		word, err := s.wordRepo.FindByID(ctx, tx, sourceID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return "", model.NewAppError("SOURCE_NOT_FOUND", "指定された単語が見つかりません。", "source_id", model.ErrNotFound)
			}
			return "", model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", model.ErrInternalServer)
		}
		return word.Level, nil
	}

	topic, err := s.grammarRepo.FindByID(ctx, tx, sourceID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", model.NewAppError("SOURCE_NOT_FOUND", "指定された文法トピックが見つかりません。", "source_id", model.ErrNotFound)
		}
		return "", model.NewAppError("INTERNAL_SERVER_ERROR", "文法トピックの取得に失敗しました。", "", model.ErrInternalServer)
	}
	return topic.Level, nil
}
