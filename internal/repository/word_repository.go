//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_eng_drill/internal/middleware"
	"go_5_eng_drill/internal/model"

	"gorm.io/gorm"
)

// WordRepository は単語カタログの読み取り専用リポジトリです。
// カタログはシードでのみ書き込まれるため、更新系は持ちません。
type WordRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, wordID string) (*model.Word, error)
	FindAll(ctx context.Context, db *gorm.DB, level string) ([]*model.Word, error)
	FindByIDs(ctx context.Context, db *gorm.DB, wordIDs []string) ([]*model.Word, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

func (r *gormWordRepository) FindByID(ctx context.Context, db *gorm.DB, wordID string) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var word model.Word
	result := db.WithContext(ctx).Where("word_id = ?", wordID).First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding word by ID in DB",
			"error", result.Error,
			"word_id", wordID,
		)
		return nil, fmt.Errorf("gormWordRepository.FindByID: %w", result.Error)
	}
	return &word, nil
}

func (r *gormWordRepository) FindAll(ctx context.Context, db *gorm.DB, level string) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word
	query := db.WithContext(ctx)
	if level != "" {
		query = query.Where("level = ?", level)
	}
	result := query.Order("level ASC, word ASC").Find(&words)
	if result.Error != nil {
		logger.Error("Error finding words in DB",
			"error", result.Error,
			"level", level,
		)
		return nil, fmt.Errorf("gormWordRepository.FindAll: %w", result.Error)
	}
	return words, nil
}

func (r *gormWordRepository) FindByIDs(ctx context.Context, db *gorm.DB, wordIDs []string) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	if len(wordIDs) == 0 {
		return []*model.Word{}, nil
	}
	var words []*model.Word
	result := db.WithContext(ctx).Where("word_id IN ?", wordIDs).Find(&words)
	if result.Error != nil {
		logger.Error("Error finding words by IDs in DB", "error", result.Error)
		return nil, fmt.Errorf("gormWordRepository.FindByIDs: %w", result.Error)
	}
	return words, nil
}

func (r *gormWordRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.Word{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormWordRepository.Count: %w", result.Error)
	}
	return count, nil
}
