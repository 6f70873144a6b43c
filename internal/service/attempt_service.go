// internal/service/attempt_service.go
package service

import (
	"context"
	"errors"
	"time"

	"go_5_eng_drill/internal/middleware"
	"go_5_eng_drill/internal/model"
	"go_5_eng_drill/internal/repository"
	"go_5_eng_drill/internal/spaced"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttemptService は回答の記録と間違いノートの参照を提供します。
type AttemptService interface {
	RecordAttempt(ctx context.Context, req *model.RecordAttemptRequest) error
	// ListWrongAttempts は不正解履歴を新しい順に返します。kindは空なら両種別。
	// 出題元が現在習得済みのものは除外されます。
	ListWrongAttempts(ctx context.Context, deviceID string, kind model.Kind, level string) ([]*model.WrongAttemptResponse, error)
	GetWrongAttempt(ctx context.Context, attemptID uuid.UUID) (*model.WrongAttemptResponse, error)
}

type attemptService struct {
	db          *gorm.DB
	attemptRepo repository.AttemptRepository
	stateRepo   repository.ReviewStateRepository
}

func NewAttemptService(db *gorm.DB, attemptRepo repository.AttemptRepository, stateRepo repository.ReviewStateRepository) AttemptService {
	return &attemptService{
		db:          db,
		attemptRepo: attemptRepo,
		stateRepo:   stateRepo,
	}
}

// RecordAttempt は回答を追記し、同一トランザクション内で対応する復習状態を
// 前進させます。復習状態がなければデフォルトから作成するため、初回回答でも
// 失敗しません。
func (s *attemptService) RecordAttempt(ctx context.Context, req *model.RecordAttemptRequest) error {
	logger := middleware.GetLogger(ctx).With("device_id", req.DeviceID)

	kind, err := model.ParseKind(req.Attempt.Kind)
	if err != nil {
		return err
	}

	payload := req.Attempt
	isCorrect := *payload.IsCorrect
	now := time.Now()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attempt := &model.Attempt{
			AttemptID:    uuid.New(),
			DeviceID:     req.DeviceID,
			Kind:         kind,
			QuestionID:   payload.QuestionID,
			SourceID:     payload.SourceID,
			QuestionType: model.QuestionType(payload.Type),
			Level:        payload.Level,
			Prompt:       payload.Prompt,
			Choices:      model.StringList(payload.Choices),
			Answer:       payload.Answer,
			Chosen:       payload.Chosen,
			IsCorrect:    isCorrect,
			Explanation:  payload.Explanation,
		}
		if err := s.attemptRepo.Create(ctx, tx, attempt); err != nil {
			logger.Error("Error creating attempt in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "回答の記録に失敗しました。", "", model.ErrInternalServer)
		}

		existing, err := s.stateRepo.FindByKey(ctx, tx, req.DeviceID, kind, payload.SourceID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding review state in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "復習状態の確認中にエラーが発生しました。", "", model.ErrInternalServer)
		}
		isFound := !errors.Is(err, model.ErrNotFound)

		prev := spaced.Default(now)
		if isFound {
			prev = spaced.State{
				IntervalDays: existing.IntervalDays,
				EaseFactor:   existing.EaseFactor,
				Streak:       existing.Streak,
				NextReviewAt: existing.NextReviewAt,
				IsMastered:   existing.IsMastered,
			}
		}
		next := spaced.Advance(prev, isCorrect, now)

		if !isFound {
			logger.Info("Review state not found, creating new state", "source_id", payload.SourceID, "is_correct", isCorrect)
			state := &model.ReviewState{
				StateID:      uuid.New(),
				DeviceID:     req.DeviceID,
				Kind:         kind,
				SourceID:     payload.SourceID,
				Level:        payload.Level, // 作成時点の出題元のレベル
				IntervalDays: next.IntervalDays,
				EaseFactor:   next.EaseFactor,
				Streak:       next.Streak,
				NextReviewAt: next.NextReviewAt,
				IsMastered:   next.IsMastered,
			}
			if createErr := s.stateRepo.Create(ctx, tx, state); createErr != nil {
				logger.Error("Error creating review state", "error", createErr)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "復習状態の作成に失敗しました。", "", model.ErrInternalServer)
			}
			return nil
		}

		existing.IntervalDays = next.IntervalDays
		existing.EaseFactor = next.EaseFactor
		existing.Streak = next.Streak
		existing.NextReviewAt = next.NextReviewAt
		if updateErr := s.stateRepo.Update(ctx, tx, existing); updateErr != nil {
			logger.Error("Error updating review state", "error", updateErr)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "復習状態の更新に失敗しました。", "", model.ErrInternalServer)
		}
		return nil
	})
}

func (s *attemptService) ListWrongAttempts(ctx context.Context, deviceID string, kind model.Kind, level string) ([]*model.WrongAttemptResponse, error) {
	logger := middleware.GetLogger(ctx).With("device_id", deviceID)

	attempts, err := s.attemptRepo.FindWrongByDevice(ctx, s.db, deviceID, kind, level)
	if err != nil {
		logger.Error("Failed to find wrong attempts", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "間違いノートの取得に失敗しました。", "", model.ErrInternalServer)
	}

	// 種別ごとに出題元の現在の復習状態を引く
	stateByKey := make(map[model.Kind]map[string]*model.ReviewState)
	for _, k := range []model.Kind{model.KindVocab, model.KindGrammar} {
		var sourceIDs []string
		seen := make(map[string]struct{})
		for _, a := range attempts {
			if a.Kind != k {
				continue
			}
			if _, ok := seen[a.SourceID]; ok {
				continue
			}
			seen[a.SourceID] = struct{}{}
			sourceIDs = append(sourceIDs, a.SourceID)
		}
		states, err := s.stateRepo.FindBySourceIDs(ctx, s.db, deviceID, k, sourceIDs)
		if err != nil {
			logger.Error("Failed to find review states for wrong attempts", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習状態の取得に失敗しました。", "", model.ErrInternalServer)
		}
		m := make(map[string]*model.ReviewState, len(states))
		for _, st := range states {
			m[st.SourceID] = st
		}
		stateByKey[k] = m
	}

	responses := make([]*model.WrongAttemptResponse, 0, len(attempts))
	for _, a := range attempts {
		state := stateByKey[a.Kind][a.SourceID]
		if state != nil && state.IsMastered {
			// 習得済みの出題元は間違いノートから外す
			continue
		}
		responses = append(responses, wrongAttemptResponse(a, state))
	}

	logger.Info("Successfully retrieved wrong attempts", "count", len(responses))
	return responses, nil
}

func (s *attemptService) GetWrongAttempt(ctx context.Context, attemptID uuid.UUID) (*model.WrongAttemptResponse, error) {
	logger := middleware.GetLogger(ctx).With("attempt_id", attemptID.String())

	attempt, err := s.attemptRepo.FindByID(ctx, s.db, attemptID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("ATTEMPT_NOT_FOUND", "指定された回答が見つかりません。", "attempt_id", model.ErrNotFound)
		}
		logger.Error("Failed to find attempt", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "回答の取得に失敗しました。", "", model.ErrInternalServer)
	}

	state, err := s.stateRepo.FindByKey(ctx, s.db, attempt.DeviceID, attempt.Kind, attempt.SourceID)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		logger.Error("Failed to find review state for attempt", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習状態の取得に失敗しました。", "", model.ErrInternalServer)
	}

	return wrongAttemptResponse(attempt, state), nil
}

func wrongAttemptResponse(a *model.Attempt, state *model.ReviewState) *model.WrongAttemptResponse {
	resp := &model.WrongAttemptResponse{
		AttemptID:    a.AttemptID,
		Kind:         a.Kind,
		QuestionID:   a.QuestionID,
		SourceID:     a.SourceID,
		QuestionType: a.QuestionType,
		Level:        a.Level,
		Prompt:       a.Prompt,
		Choices:      a.Choices,
		Answer:       a.Answer,
		Chosen:       a.Chosen,
		Explanation:  a.Explanation,
		CreatedAt:    a.CreatedAt,
	}
	if state != nil {
		resp.ReviewState = &model.ReviewStateBrief{
			IsMastered:   state.IsMastered,
			NextReviewAt: state.NextReviewAt,
		}
	}
	return resp
}
