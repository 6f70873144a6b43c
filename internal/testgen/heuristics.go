// internal/testgen/heuristics.go
package testgen

import (
	"regexp"
	"strings"
)

// BlankMarker は穴埋め問題の空欄表示です。
const BlankMarker = "___"

// CorruptFunc は正しい例文から「それらしく誤った」文を作るヒューリスティックです。
// ルールを差し替えられるよう、ジェネレータには関数として注入します。
type CorruptFunc func(sentence string) string

// PickBlankTokenFunc は例文から空欄にするトークンを選ぶヒューリスティックです。
type PickBlankTokenFunc func(sentence string) string

var beVerbs = []string{"am", "is", "are"}

var (
	nonAlphaRe  = regexp.MustCompile(`[^a-zA-Z\s']`)
	trailingSRe = regexp.MustCompile(`(?i)s\b`)
)

// wholeWordRe はトークンの単語境界一致 (大文字小文字無視) の正規表現を返します。
func wholeWordRe(token string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(token) + `\b`)
}

// replaceFirst は最初のマッチ1箇所だけを置換します。
func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}

// PickBlankToken は既定の空欄トークン選択ルールです。優先順位:
// be動詞 (am/is/are) → リテラル "will" → 2番目の英字トークン → 先頭トークン → 空文字。
// 単純なパターン一致なので、想定外の文では不自然な空欄になり得ます。それは許容します。
func PickBlankToken(sentence string) string {
	for _, be := range beVerbs {
		if wholeWordRe(be).MatchString(sentence) {
			return be
		}
	}
	if strings.Contains(strings.ToLower(sentence), " will ") {
		return "will"
	}

	cleaned := nonAlphaRe.ReplaceAllString(sentence, "")
	tokens := strings.Fields(cleaned)
	if len(tokens) >= 2 {
		return strings.ToLower(tokens[1])
	}
	if len(tokens) == 1 {
		return strings.ToLower(tokens[0])
	}
	return ""
}

// BlankSentence はトークンの最初の単語境界一致を空欄に置き換えます。
func BlankSentence(sentence, token string) string {
	if token == "" {
		return sentence
	}
	return replaceFirst(wholeWordRe(token), sentence, BlankMarker)
}

// MakeSimpleWrongVariant は既定の誤答文生成ルールです。
// is↔are、am→is、will→wills を1箇所だけ入れ替え、どれも無ければ
// 2番目の単語を複数形化/単数形化します。
func MakeSimpleWrongVariant(sentence string) string {
	if re := wholeWordRe("is"); re.MatchString(sentence) {
		return replaceFirst(re, sentence, "are")
	}
	if re := wholeWordRe("are"); re.MatchString(sentence) {
		return replaceFirst(re, sentence, "is")
	}
	if re := wholeWordRe("am"); re.MatchString(sentence) {
		return replaceFirst(re, sentence, "is")
	}
	if re := wholeWordRe("will"); re.MatchString(sentence) {
		return replaceFirst(re, sentence, "wills")
	}

	words := strings.Split(sentence, " ")
	if len(words) > 1 {
		target := words[1]
		if trailingSRe.MatchString(target) {
			words[1] = replaceFirst(trailingSRe, target, "")
		} else {
			words[1] = target + "s"
		}
	}
	return strings.Join(words, " ")
}
