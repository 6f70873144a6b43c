// internal/testgen/generator.go
package testgen

import (
	"fmt"

	"go_5_eng_drill/internal/model"
)

const (
	mcqDistractorCount = 3
	mcqChoiceLimit     = 4
)

// Generator はカタログ項目から出題を合成します。
// 誤答生成と空欄トークン選択はヒューリスティック関数として差し替え可能です。
type Generator struct {
	Corrupt   CorruptFunc
	PickBlank PickBlankTokenFunc
}

// NewGenerator は既定のヒューリスティックを備えたジェネレータを返します。
func NewGenerator() *Generator {
	return &Generator{
		Corrupt:   MakeSimpleWrongVariant,
		PickBlank: PickBlankToken,
	}
}

// QuestionID は kind+sourceId+type から決定的に問題IDを生成します。
func QuestionID(kind model.Kind, sourceID string, qt model.QuestionType) string {
	return fmt.Sprintf("%s-%s-%s", kind, sourceID, qt)
}

// VocabMCQ は単語の意味を問う4択問題を合成します。
// 誤答は同レベルの他の単語の意味から3つ抽出し、同レベルが3語未満なら
// 全単語にフォールバックします。選択肢は重複排除のうえ最大4件です。
func (g *Generator) VocabMCQ(word *model.Word, catalog []*model.Word) *model.Question {
	sameLevel := make([]*model.Word, 0, len(catalog))
	others := make([]*model.Word, 0, len(catalog))
	for _, w := range catalog {
		if w.WordID == word.WordID {
			continue
		}
		others = append(others, w)
		if w.Level == word.Level {
			sameLevel = append(sameLevel, w)
		}
	}

	pool := sameLevel
	if len(pool) < mcqDistractorCount {
		pool = others
	}
	distractors := make([]string, 0, mcqDistractorCount)
	for _, w := range RandomSample(pool, mcqDistractorCount) {
		distractors = append(distractors, w.MeaningKo)
	}

	choices := UniqueChoices(Shuffle(append([]string{word.MeaningKo}, distractors...)), mcqChoiceLimit)

	return &model.Question{
		ID:          QuestionID(model.KindVocab, word.WordID, model.QuestionTypeMCQ),
		Kind:        model.KindVocab,
		Type:        model.QuestionTypeMCQ,
		Level:       word.Level,
		Prompt:      fmt.Sprintf("Choose the correct Korean meaning for the English word: %s", word.Word),
		Choices:     choices,
		Answer:      word.MeaningKo,
		Explanation: fmt.Sprintf("'%s' means '%s'.", word.Word, word.MeaningKo),
		Source: model.QuestionSource{
			ID:    word.WordID,
			Label: word.Word,
		},
	}
}

// VocabBlank は例文中の単語を空欄にした穴埋め問題を合成します。
// 例文中に単語が (単語境界・大文字小文字無視で) 見つからない場合は
// 空欄だけのプロンプトに退化させます。
func (g *Generator) VocabBlank(word *model.Word) *model.Question {
	var prompt string
	re := wholeWordRe(word.Word)
	if re.MatchString(word.Example) {
		blanked := replaceFirst(re, word.Example, BlankMarker)
		prompt = fmt.Sprintf("Fill in the blank: %s (word meaning: %s)", blanked, word.MeaningKo)
	} else {
		prompt = fmt.Sprintf("Fill in the blank: %s (word meaning: %s)", BlankMarker, word.MeaningKo)
	}

	return &model.Question{
		ID:          QuestionID(model.KindVocab, word.WordID, model.QuestionTypeBlank),
		Kind:        model.KindVocab,
		Type:        model.QuestionTypeBlank,
		Level:       word.Level,
		Prompt:      prompt,
		Answer:      word.Word,
		Explanation: fmt.Sprintf("'%s' means '%s'.", word.Word, word.MeaningKo),
		Source: model.QuestionSource{
			ID:    word.WordID,
			Label: word.Word,
		},
	}
}

// GrammarMCQ はトピックの最初の例文を正解とする4択問題を合成します。
// 誤答は他トピックの「よくある誤り」から抽出し、3件に満たない分は
// 他トピックの例文を Corrupt で崩して補います。
func (g *Generator) GrammarMCQ(topic *model.GrammarTopic, catalog []*model.GrammarTopic) *model.Question {
	correct := ""
	if len(topic.Examples) > 0 {
		correct = topic.Examples[0]
	}

	var mistakesPool, examplePool []string
	for _, t := range catalog {
		if t.TopicID == topic.TopicID {
			continue
		}
		mistakesPool = append(mistakesPool, t.CommonMistakes...)
		examplePool = append(examplePool, t.Examples...)
	}

	distractors := RandomSample(mistakesPool, mcqDistractorCount)
	if len(distractors) < mcqDistractorCount {
		needed := mcqDistractorCount - len(distractors)
		for _, s := range RandomSample(examplePool, needed) {
			distractors = append(distractors, g.Corrupt(s))
		}
	}

	choices := UniqueChoices(Shuffle(append([]string{correct}, distractors...)), mcqChoiceLimit)

	return &model.Question{
		ID:          QuestionID(model.KindGrammar, topic.TopicID, model.QuestionTypeMCQ),
		Kind:        model.KindGrammar,
		Type:        model.QuestionTypeMCQ,
		Level:       topic.Level,
		Prompt:      fmt.Sprintf("Which sentence is correct according to: %s?", topic.Title),
		Choices:     choices,
		Answer:      correct,
		Explanation: fmt.Sprintf("%s: %s", topic.Title, topic.RuleSummary),
		Source: model.QuestionSource{
			ID:    topic.TopicID,
			Label: topic.Title,
		},
	}
}

// GrammarBlank はトピックの最初の例文からトークンを1つ空欄にした問題を合成します。
func (g *Generator) GrammarBlank(topic *model.GrammarTopic) *model.Question {
	sentence := ""
	if len(topic.Examples) > 0 {
		sentence = topic.Examples[0]
	}
	token := g.PickBlank(sentence)
	blanked := BlankSentence(sentence, token)

	return &model.Question{
		ID:          QuestionID(model.KindGrammar, topic.TopicID, model.QuestionTypeBlank),
		Kind:        model.KindGrammar,
		Type:        model.QuestionTypeBlank,
		Level:       topic.Level,
		Prompt:      fmt.Sprintf("Fill in the blank based on the rule: %s\nSentence: %s", topic.RuleSummary, blanked),
		Answer:      token,
		Explanation: fmt.Sprintf("%s: %s", topic.Title, topic.RuleSummary),
		Source: model.QuestionSource{
			ID:    topic.TopicID,
			Label: topic.Title,
		},
	}
}
