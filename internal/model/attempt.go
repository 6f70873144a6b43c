// internal/model/attempt.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Attempt は回答1件の追記専用レコードです。作成後に更新・削除されることはありません。
type Attempt struct {
	AttemptID    uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	DeviceID     string       `gorm:"not null;index" json:"device_id"`
	Kind         Kind         `gorm:"not null;index" json:"kind"`
	QuestionID   string       `gorm:"not null" json:"question_id"`
	SourceID     string       `gorm:"not null;index" json:"source_id"` // 出題元のカタログID
	QuestionType QuestionType `gorm:"not null" json:"type"`
	Level        string       `gorm:"not null" json:"level"`
	Prompt       string       `gorm:"not null" json:"prompt"`
	Choices      StringList   `gorm:"type:text" json:"choices"` // blank形式では空
	Answer       string       `gorm:"not null" json:"answer"`
	Chosen       string       `gorm:"not null" json:"chosen"`
	IsCorrect    bool         `gorm:"not null" json:"is_correct"`
	Explanation  string       `gorm:"not null" json:"explanation"`
	CreatedAt    time.Time    `gorm:"index" json:"created_at"`
}

func (Attempt) TableName() string {
	return "attempts"
}

// AttemptPayload は回答送信リクエストに含まれる回答本体のDTO
type AttemptPayload struct {
	Kind        string   `json:"kind" validate:"required,oneof=vocab grammar"`
	QuestionID  string   `json:"question_id" validate:"required"`
	SourceID    string   `json:"source_id" validate:"required"`
	Type        string   `json:"type" validate:"required,oneof=mcq blank"`
	Level       string   `json:"level" validate:"required"`
	Prompt      string   `json:"prompt" validate:"required"`
	Choices     []string `json:"choices,omitempty"`
	Answer      string   `json:"answer" validate:"required"`
	Chosen      string   `json:"chosen"`
	IsCorrect   *bool    `json:"is_correct" validate:"required"`
	Explanation string   `json:"explanation"`
}

// RecordAttemptRequest は回答送信リクエストのDTO
type RecordAttemptRequest struct {
	DeviceID string          `json:"device_id" validate:"required"`
	Attempt  *AttemptPayload `json:"attempt" validate:"required"`
}

// WrongAttemptResponse は間違いノート1件のレスポンスDTO。
// 出題元の現在のレビュー状態があれば併記します。
type WrongAttemptResponse struct {
	AttemptID    uuid.UUID         `json:"id"`
	Kind         Kind              `json:"kind"`
	QuestionID   string            `json:"question_id"`
	SourceID     string            `json:"source_id"`
	QuestionType QuestionType      `json:"type"`
	Level        string            `json:"level"`
	Prompt       string            `json:"prompt"`
	Choices      []string          `json:"choices"`
	Answer       string            `json:"answer"`
	Chosen       string            `json:"chosen"`
	Explanation  string            `json:"explanation"`
	CreatedAt    time.Time         `json:"created_at"`
	ReviewState  *ReviewStateBrief `json:"review_state,omitempty"`
}
