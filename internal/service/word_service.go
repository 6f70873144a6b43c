// internal/service/word_service.go
package service

import (
	"context"
	"errors"

	"go_5_eng_drill/internal/middleware"
	"go_5_eng_drill/internal/model"
	"go_5_eng_drill/internal/repository"

	"gorm.io/gorm"
)

// WordService は単語カタログの読み取り専用サービスです。
type WordService interface {
	ListWords(ctx context.Context, level string) ([]*model.Word, error)
	GetWord(ctx context.Context, wordID string) (*model.Word, error)
}

type wordService struct {
	db       *gorm.DB
	wordRepo repository.WordRepository
}

func NewWordService(db *gorm.DB, wordRepo repository.WordRepository) WordService {
	return &wordService{
		db:       db,
		wordRepo: wordRepo,
	}
}

func (s *wordService) ListWords(ctx context.Context, level string) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)

	words, err := s.wordRepo.FindAll(ctx, s.db, level)
	if err != nil {
		logger.Error("Failed to list words from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語一覧の取得に失敗しました。", "", model.ErrInternalServer)
	}
	return words, nil
}

func (s *wordService) GetWord(ctx context.Context, wordID string) (*model.Word, error) {
	logger := middleware.GetLogger(ctx).With("word_id", wordID)

	word, err := s.wordRepo.FindByID(ctx, s.db, wordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("WORD_NOT_FOUND", "指定された単語が見つかりません。", "word_id", model.ErrNotFound)
		}
		logger.Error("Failed to get word from repository", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", model.ErrInternalServer)
	}
	return word, nil
}
