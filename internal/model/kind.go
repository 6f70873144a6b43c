// internal/model/kind.go
package model

// Kind は学習コンテンツの種別を表す閉じた列挙型です。
// 外部入力は ParseKind で必ず検証してから内部に渡します。
type Kind string

const (
	KindVocab   Kind = "vocab"
	KindGrammar Kind = "grammar"
)

// ParseKind は文字列を Kind に変換します。vocab/grammar 以外は不正入力です。
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindVocab, KindGrammar:
		return Kind(s), nil
	default:
		return "", NewAppError("INVALID_KIND", "kindはvocabまたはgrammarを指定してください。", "kind", ErrInvalidInput)
	}
}

// Mode は出題セッションの構成モードです。
type Mode string

const (
	ModeMixed       Mode = "mixed"
	ModeReviewWrong Mode = "reviewWrong"
)

// ParseMode は文字列を Mode に変換します。未指定は mixed 扱いです。
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeMixed, "":
		return ModeMixed, nil
	case ModeReviewWrong:
		return ModeReviewWrong, nil
	default:
		return "", NewAppError("INVALID_MODE", "modeはmixedまたはreviewWrongを指定してください。", "mode", ErrInvalidInput)
	}
}

// QuestionType は出題形式 (選択式/穴埋め) です。
type QuestionType string

const (
	QuestionTypeMCQ   QuestionType = "mcq"
	QuestionTypeBlank QuestionType = "blank"
)
