// internal/seed/seed.go
package seed

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"

	"go_5_eng_drill/internal/model"
	"go_5_eng_drill/internal/repository"

	"gorm.io/gorm"
)

// 初期カタログはバイナリに埋め込む。単体で起動してもすぐ出題できるようにするため。
//
//go:embed data/words.json data/grammar_topics.json
var dataFS embed.FS

type wordSeed struct {
	ID        string   `json:"id"`
	Word      string   `json:"word"`
	POS       string   `json:"pos"`
	MeaningKo string   `json:"meaning_ko"`
	Level     string   `json:"level"`
	Example   string   `json:"example"`
	Tags      []string `json:"tags"`
}

type grammarSeed struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Level          string   `json:"level"`
	RuleSummary    string   `json:"rule_summary"`
	Examples       []string `json:"examples"`
	CommonMistakes []string `json:"common_mistakes"`
}

// Run はカタログが空の場合にだけ埋め込みデータを投入します。
// 既にデータがあるDBには何もしないため、再起動のたびに安全に呼べます。
func Run(ctx context.Context, db *gorm.DB, wordRepo repository.WordRepository, grammarRepo repository.GrammarRepository, logger *slog.Logger) error {
	words, topics, err := loadSeedData()
	if err != nil {
		return err
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		wordCount, err := wordRepo.Count(ctx, tx)
		if err != nil {
			return fmt.Errorf("seed.Run: counting words: %w", err)
		}
		if wordCount == 0 {
			if err := tx.CreateInBatches(words, 50).Error; err != nil {
				return fmt.Errorf("seed.Run: inserting words: %w", err)
			}
			logger.Info("Seeded word catalog", "count", len(words))
		}

		topicCount, err := grammarRepo.Count(ctx, tx)
		if err != nil {
			return fmt.Errorf("seed.Run: counting grammar topics: %w", err)
		}
		if topicCount == 0 {
			if err := tx.CreateInBatches(topics, 50).Error; err != nil {
				return fmt.Errorf("seed.Run: inserting grammar topics: %w", err)
			}
			logger.Info("Seeded grammar topic catalog", "count", len(topics))
		}
		return nil
	})
}

func loadSeedData() ([]*model.Word, []*model.GrammarTopic, error) {
	wordBytes, err := dataFS.ReadFile("data/words.json")
	if err != nil {
		return nil, nil, fmt.Errorf("seed.loadSeedData: reading words.json: %w", err)
	}
	var wordSeeds []wordSeed
	if err := json.Unmarshal(wordBytes, &wordSeeds); err != nil {
		return nil, nil, fmt.Errorf("seed.loadSeedData: parsing words.json: %w", err)
	}

	topicBytes, err := dataFS.ReadFile("data/grammar_topics.json")
	if err != nil {
		return nil, nil, fmt.Errorf("seed.loadSeedData: reading grammar_topics.json: %w", err)
	}
	var topicSeeds []grammarSeed
	if err := json.Unmarshal(topicBytes, &topicSeeds); err != nil {
		return nil, nil, fmt.Errorf("seed.loadSeedData: parsing grammar_topics.json: %w", err)
	}

	words := make([]*model.Word, 0, len(wordSeeds))
	for _, s := range wordSeeds {
		words = append(words, &model.Word{
			WordID:       s.ID,
			Word:         s.Word,
			PartOfSpeech: s.POS,
			MeaningKo:    s.MeaningKo,
			Level:        s.Level,
			Example:      s.Example,
			Tags:         model.StringList(s.Tags),
		})
	}

	topics := make([]*model.GrammarTopic, 0, len(topicSeeds))
	for _, s := range topicSeeds {
		topics = append(topics, &model.GrammarTopic{
			TopicID:        s.ID,
			Title:          s.Title,
			Level:          s.Level,
			RuleSummary:    s.RuleSummary,
			Examples:       model.StringList(s.Examples),
			CommonMistakes: model.StringList(s.CommonMistakes),
		})
	}
	return words, topics, nil
}
