// internal/model/word.go
package model

import "time"

// Word は英単語カタログの1エントリを表します。
// シード投入後は不変で、スケジューラとセッション構成からは読み取り専用です。
type Word struct {
	WordID       string     `gorm:"primaryKey" json:"id"`
	Word         string     `gorm:"not null" json:"word"`                 // 英単語
	PartOfSpeech string     `gorm:"not null" json:"part_of_speech"`       // 品詞 (n/v/adj...)
	MeaningKo    string     `gorm:"not null" json:"meaning_ko"`           // 韓国語の意味
	Level        string     `gorm:"not null;index" json:"level"`          // A1..B2
	Example      string     `gorm:"not null" json:"example"`              // 例文
	Tags         StringList `gorm:"type:text" json:"tags"`                // 分類タグ
	CreatedAt    time.Time  `json:"created_at"`
}

func (Word) TableName() string {
	return "words"
}
