//go:generate mockery --name ReviewStateRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_5_eng_drill/internal/middleware"
	"go_5_eng_drill/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewStateRepository は (device_id, kind, source_id) で一意な復習状態リポジトリです。
type ReviewStateRepository interface {
	FindByKey(ctx context.Context, db *gorm.DB, deviceID string, kind model.Kind, sourceID string) (*model.ReviewState, error)
	FindBySourceIDs(ctx context.Context, db *gorm.DB, deviceID string, kind model.Kind, sourceIDs []string) ([]*model.ReviewState, error)
	FindMasteredSourceIDs(ctx context.Context, db *gorm.DB, deviceID string, kind model.Kind, level string) ([]string, error)
	// FindDue は期限到来 (next_review_at <= now) かつ未習得の状態を期限の古い順に返します。
	FindDue(ctx context.Context, db *gorm.DB, deviceID string, kind model.Kind, level string, now time.Time, limit int) ([]*model.ReviewState, error)
	Create(ctx context.Context, tx *gorm.DB, state *model.ReviewState) error
	Update(ctx context.Context, tx *gorm.DB, state *model.ReviewState) error
	// UpsertMastery は行がなければ state をそのまま挿入し、あれば is_mastered だけを更新します。
	// 一意インデックスへの ON CONFLICT で、同一デバイスの同時送信でも行が重複しません。
	UpsertMastery(ctx context.Context, tx *gorm.DB, state *model.ReviewState) error
}

type gormReviewStateRepository struct{}

func NewGormReviewStateRepository() ReviewStateRepository {
	return &gormReviewStateRepository{}
}

func (r *gormReviewStateRepository) FindByKey(ctx context.Context, db *gorm.DB, deviceID string, kind model.Kind, sourceID string) (*model.ReviewState, error) {
	logger := middleware.GetLogger(ctx)
	var state model.ReviewState
	result := db.WithContext(ctx).
		Where("device_id = ? AND kind = ? AND source_id = ?", deviceID, kind, sourceID).
		First(&state)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding review state in DB",
			"error", result.Error,
			"device_id", deviceID,
			"source_id", sourceID,
		)
		return nil, fmt.Errorf("gormReviewStateRepository.FindByKey: %w", result.Error)
	}
	return &state, nil
}

func (r *gormReviewStateRepository) FindBySourceIDs(ctx context.Context, db *gorm.DB, deviceID string, kind model.Kind, sourceIDs []string) ([]*model.ReviewState, error) {
	logger := middleware.GetLogger(ctx)
	if len(sourceIDs) == 0 {
		return []*model.ReviewState{}, nil
	}
	var states []*model.ReviewState
	result := db.WithContext(ctx).
		Where("device_id = ? AND kind = ? AND source_id IN ?", deviceID, kind, sourceIDs).
		Find(&states)
	if result.Error != nil {
		logger.Error("Error finding review states by source IDs in DB",
			"error", result.Error,
			"device_id", deviceID,
		)
		return nil, fmt.Errorf("gormReviewStateRepository.FindBySourceIDs: %w", result.Error)
	}
	return states, nil
}

func (r *gormReviewStateRepository) FindMasteredSourceIDs(ctx context.Context, db *gorm.DB, deviceID string, kind model.Kind, level string) ([]string, error) {
	logger := middleware.GetLogger(ctx)
	var sourceIDs []string
	query := db.WithContext(ctx).Model(&model.ReviewState{}).
		Where("device_id = ? AND kind = ? AND is_mastered = ?", deviceID, kind, true)
	if level != "" {
		query = query.Where("level = ?", level)
	}
	result := query.Pluck("source_id", &sourceIDs)
	if result.Error != nil {
		logger.Error("Error finding mastered source IDs in DB",
			"error", result.Error,
			"device_id", deviceID,
		)
		return nil, fmt.Errorf("gormReviewStateRepository.FindMasteredSourceIDs: %w", result.Error)
	}
	return sourceIDs, nil
}

func (r *gormReviewStateRepository) FindDue(ctx context.Context, db *gorm.DB, deviceID string, kind model.Kind, level string, now time.Time, limit int) ([]*model.ReviewState, error) {
	logger := middleware.GetLogger(ctx)
	var states []*model.ReviewState
	query := db.WithContext(ctx).
		Where("device_id = ? AND kind = ? AND is_mastered = ? AND next_review_at <= ?", deviceID, kind, false, now)
	if level != "" {
		query = query.Where("level = ?", level)
	}
	result := query.Order("next_review_at ASC").Limit(limit).Find(&states)
	if result.Error != nil {
		logger.Error("Error finding due review states in DB",
			"error", result.Error,
			"device_id", deviceID,
		)
		return nil, fmt.Errorf("gormReviewStateRepository.FindDue: %w", result.Error)
	}
	return states, nil
}

func (r *gormReviewStateRepository) Create(ctx context.Context, tx *gorm.DB, state *model.ReviewState) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(state)
	if result.Error != nil {
		logger.Error("Error creating review state in DB",
			"error", result.Error,
			"device_id", state.DeviceID,
			"source_id", state.SourceID,
		)
		return fmt.Errorf("gormReviewStateRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormReviewStateRepository) Update(ctx context.Context, tx *gorm.DB, state *model.ReviewState) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Save(state)
	if result.Error != nil {
		logger.Error("Error updating review state in DB",
			"error", result.Error,
			"device_id", state.DeviceID,
			"source_id", state.SourceID,
		)
		return fmt.Errorf("gormReviewStateRepository.Update: %w", result.Error)
	}
	return nil
}

func (r *gormReviewStateRepository) UpsertMastery(ctx context.Context, tx *gorm.DB, state *model.ReviewState) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "device_id"},
			{Name: "kind"},
			{Name: "source_id"},
		},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"is_mastered": state.IsMastered,
			"updated_at":  time.Now(),
		}),
	}).Create(state)
	if result.Error != nil {
		logger.Error("Error upserting mastery in DB",
			"error", result.Error,
			"device_id", state.DeviceID,
			"source_id", state.SourceID,
		)
		return fmt.Errorf("gormReviewStateRepository.UpsertMastery: %w", result.Error)
	}
	return nil
}
