// internal/model/review_state.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ReviewState は (device_id, kind, source_id) ごとに1行の復習スケジュール状態です。
// 初回の回答または習得トグルで遅延作成され、以後は回答のたびに更新されます。
type ReviewState struct {
	StateID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DeviceID     string    `gorm:"not null;index:idx_device_kind_source,unique" json:"device_id"`
	Kind         Kind      `gorm:"not null;index:idx_device_kind_source,unique" json:"kind"`
	SourceID     string    `gorm:"not null;index:idx_device_kind_source,unique" json:"source_id"`
	Level        string    `gorm:"not null;index" json:"level"` // 作成時点のカタログ項目のレベルを非正規化
	IntervalDays int       `gorm:"not null;default:0" json:"interval_days"`
	EaseFactor   float64   `gorm:"not null;default:2.5" json:"ease_factor"`
	Streak       int       `gorm:"not null;default:0" json:"streak"`
	NextReviewAt time.Time `gorm:"not null;index" json:"next_review_at"`
	IsMastered   bool      `gorm:"not null;default:false" json:"is_mastered"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (ReviewState) TableName() string {
	return "review_states"
}

// ReviewStateBrief は問題や間違いノートに併記するレビュー状態の要約DTO
type ReviewStateBrief struct {
	IsMastered   bool      `json:"is_mastered"`
	NextReviewAt time.Time `json:"next_review_at"`
}

// ToggleMasteryRequest は習得フラグ切り替えリクエストのDTO
type ToggleMasteryRequest struct {
	DeviceID   string `json:"device_id" validate:"required"`
	Kind       string `json:"kind" validate:"required,oneof=vocab grammar"`
	SourceID   string `json:"source_id" validate:"required"`
	IsMastered *bool  `json:"is_mastered" validate:"required"`
}

// ToggleMasteryResponse は習得フラグ切り替えのレスポンスDTO
type ToggleMasteryResponse struct {
	OK          bool         `json:"ok"`
	ReviewState *ReviewState `json:"review_state"`
}
