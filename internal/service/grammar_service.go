// internal/service/grammar_service.go
package service

import (
	"context"
	"errors"

	"go_5_eng_drill/internal/middleware"
	"go_5_eng_drill/internal/model"
	"go_5_eng_drill/internal/repository"

	"gorm.io/gorm"
)

// GrammarService は文法トピックカタログの読み取り専用サービスです。
type GrammarService interface {
	ListTopics(ctx context.Context, level string) ([]*model.GrammarTopic, error)
	GetTopic(ctx context.Context, topicID string) (*model.GrammarTopic, error)
}

type grammarService struct {
	db          *gorm.DB
	grammarRepo repository.GrammarRepository
}

func NewGrammarService(db *gorm.DB, grammarRepo repository.GrammarRepository) GrammarService {
	return &grammarService{
		db:          db,
		grammarRepo: grammarRepo,
	}
}

func (s *grammarService) ListTopics(ctx context.Context, level string) ([]*model.GrammarTopic, error) {
	logger := middleware.GetLogger(ctx)

	topics, err := s.grammarRepo.FindAll(ctx, s.db, level)
	if err != nil {
		logger.Error("Failed to list grammar topics from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "文法トピック一覧の取得に失敗しました。", "", model.ErrInternalServer)
	}
	return topics, nil
}

func (s *grammarService) GetTopic(ctx context.Context, topicID string) (*model.GrammarTopic, error) {
	logger := middleware.GetLogger(ctx).With("topic_id", topicID)

	topic, err := s.grammarRepo.FindByID(ctx, s.db, topicID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("TOPIC_NOT_FOUND", "指定された文法トピックが見つかりません。", "topic_id", model.ErrNotFound)
		}
		logger.Error("Failed to get grammar topic from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "文法トピックの取得に失敗しました。", "", model.ErrInternalServer)
	}
	return topic, nil
}
