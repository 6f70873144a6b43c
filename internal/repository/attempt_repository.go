//go:generate mockery --name AttemptRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_5_eng_drill/internal/middleware"
	"go_5_eng_drill/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttemptRepository は回答履歴の追記専用リポジトリです。
// Attemptは作成後に更新・削除されないため、Create と参照系のみを提供します。
type AttemptRepository interface {
	Create(ctx context.Context, tx *gorm.DB, attempt *model.Attempt) error
	FindByID(ctx context.Context, db *gorm.DB, attemptID uuid.UUID) (*model.Attempt, error)
	// FindWrongByDevice は不正解の回答を新しい順に返します。kind/levelは空なら絞り込みなし。
	FindWrongByDevice(ctx context.Context, db *gorm.DB, deviceID string, kind model.Kind, level string) ([]*model.Attempt, error)
}

type gormAttemptRepository struct{}

func NewGormAttemptRepository() AttemptRepository {
	return &gormAttemptRepository{}
}

func (r *gormAttemptRepository) Create(ctx context.Context, tx *gorm.DB, attempt *model.Attempt) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(attempt)
	if result.Error != nil {
		logger.Error("Error creating attempt in DB",
			"error", result.Error,
			"device_id", attempt.DeviceID,
			"source_id", attempt.SourceID,
		)
		return fmt.Errorf("gormAttemptRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormAttemptRepository) FindByID(ctx context.Context, db *gorm.DB, attemptID uuid.UUID) (*model.Attempt, error) {
	logger := middleware.GetLogger(ctx)
	var attempt model.Attempt
	result := db.WithContext(ctx).Where("attempt_id = ?", attemptID).First(&attempt)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding attempt by ID in DB",
			"error", result.Error,
			"attempt_id", attemptID.String(),
		)
		return nil, fmt.Errorf("gormAttemptRepository.FindByID: %w", result.Error)
	}
	return &attempt, nil
}

func (r *gormAttemptRepository) FindWrongByDevice(ctx context.Context, db *gorm.DB, deviceID string, kind model.Kind, level string) ([]*model.Attempt, error) {
	logger := middleware.GetLogger(ctx)
	var attempts []*model.Attempt
	query := db.WithContext(ctx).Where("device_id = ? AND is_correct = ?", deviceID, false)
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if level != "" {
		query = query.Where("level = ?", level)
	}
	result := query.Order("created_at DESC").Find(&attempts)
	if result.Error != nil {
		logger.Error("Error finding wrong attempts in DB",
			"error", result.Error,
			"device_id", deviceID,
		)
		return nil, fmt.Errorf("gormAttemptRepository.FindWrongByDevice: %w", result.Error)
	}
	return attempts, nil
}
