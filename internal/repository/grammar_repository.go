//go:generate mockery --name GrammarRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_eng_drill/internal/middleware"
	"go_5_eng_drill/internal/model"

	"gorm.io/gorm"
)

// GrammarRepository は文法トピックカタログの読み取り専用リポジトリです。
type GrammarRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, topicID string) (*model.GrammarTopic, error)
	FindAll(ctx context.Context, db *gorm.DB, level string) ([]*model.GrammarTopic, error)
	FindByIDs(ctx context.Context, db *gorm.DB, topicIDs []string) ([]*model.GrammarTopic, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}

type gormGrammarRepository struct{}

func NewGormGrammarRepository() GrammarRepository {
	return &gormGrammarRepository{}
}

func (r *gormGrammarRepository) FindByID(ctx context.Context, db *gorm.DB, topicID string) (*model.GrammarTopic, error) {
	logger := middleware.GetLogger(ctx)
	var topic model.GrammarTopic
	result := db.WithContext(ctx).Where("topic_id = ?", topicID).First(&topic)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding grammar topic by ID in DB",
			"error", result.Error,
			"topic_id", topicID,
		)
		return nil, fmt.Errorf("gormGrammarRepository.FindByID: %w", result.Error)
	}
	return &topic, nil
}

func (r *gormGrammarRepository) FindAll(ctx context.Context, db *gorm.DB, level string) ([]*model.GrammarTopic, error) {
	logger := middleware.GetLogger(ctx)
	var topics []*model.GrammarTopic
	query := db.WithContext(ctx)
	if level != "" {
		query = query.Where("level = ?", level)
	}
	result := query.Order("level ASC, title ASC").Find(&topics)
	if result.Error != nil {
		logger.Error("Error finding grammar topics in DB",
			"error", result.Error,
			"level", level,
		)
		return nil, fmt.Errorf("gormGrammarRepository.FindAll: %w", result.Error)
	}
	return topics, nil
}

func (r *gormGrammarRepository) FindByIDs(ctx context.Context, db *gorm.DB, topicIDs []string) ([]*model.GrammarTopic, error) {
	logger := middleware.GetLogger(ctx)
	if len(topicIDs) == 0 {
		return []*model.GrammarTopic{}, nil
	}
	var topics []*model.GrammarTopic
	result := db.WithContext(ctx).Where("topic_id IN ?", topicIDs).Find(&topics)
	if result.Error != nil {
		logger.Error("Error finding grammar topics by IDs in DB", "error", result.Error)
		return nil, fmt.Errorf("gormGrammarRepository.FindByIDs: %w", result.Error)
	}
	return topics, nil
}

func (r *gormGrammarRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	result := db.WithContext(ctx).Model(&model.GrammarTopic{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormGrammarRepository.Count: %w", result.Error)
	}
	return count, nil
}
