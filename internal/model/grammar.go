// internal/model/grammar.go
package model

import "time"

// GrammarTopic は文法トピックカタログの1エントリを表します。
// Word と同様にシード投入後は不変です。
type GrammarTopic struct {
	TopicID        string     `gorm:"primaryKey" json:"id"`
	Title          string     `gorm:"not null" json:"title"`
	Level          string     `gorm:"not null;index" json:"level"` // A1..B2, MIX
	RuleSummary    string     `gorm:"not null" json:"rule_summary"`
	Examples       StringList `gorm:"type:text" json:"examples"`        // 正しい例文
	CommonMistakes StringList `gorm:"type:text" json:"common_mistakes"` // よくある誤り
	CreatedAt      time.Time  `json:"created_at"`
}

func (GrammarTopic) TableName() string {
	return "grammar_topics"
}
