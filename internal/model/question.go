// internal/model/question.go
package model

// QuestionSource は出題元カタログ項目への参照 (ID + 表示用ラベル) です。
// 所有関係ではなく、クライアントが詳細を引くための逆参照に過ぎません。
type QuestionSource struct {
	ID    string `json:"id"`
	Label string `json:"label"` // 単語そのもの、または文法トピックのタイトル
}

// Question は合成された出題1問のDTO
type Question struct {
	ID          string            `json:"id"` // <kind>-<sourceId>-<type> で決定的に生成
	Kind        Kind              `json:"kind"`
	Type        QuestionType      `json:"type"`
	Level       string            `json:"level"`
	Prompt      string            `json:"prompt"`
	Choices     []string          `json:"choices,omitempty"` // mcqのみ
	Answer      string            `json:"answer"`
	Explanation string            `json:"explanation"`
	Source      QuestionSource    `json:"source"`
	ReviewState *ReviewStateBrief `json:"review_state,omitempty"`
}

// SessionRequest は出題セッション生成リクエストのDTO。
// device_id は任意ですが、mode=reviewWrong では必須です (ハンドラで検証)。
type SessionRequest struct {
	Kind     string `json:"kind" validate:"required,oneof=vocab grammar"`
	Level    string `json:"level,omitempty"`
	Mode     string `json:"mode,omitempty" validate:"omitempty,oneof=mixed reviewWrong"`
	DeviceID string `json:"device_id,omitempty"`
}

// SessionResponse は出題セッションのレスポンスDTO
type SessionResponse struct {
	Questions []*Question `json:"questions"`
}
