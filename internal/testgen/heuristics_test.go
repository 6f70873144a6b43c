// internal/testgen/heuristics_test.go
package testgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickBlankToken(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		want     string
	}{
		{name: "be動詞が最優先", sentence: "She is a student.", want: "is"},
		{name: "amも拾う", sentence: "I am at home.", want: "am"},
		{name: "大文字でも一致", sentence: "Are you ready?", want: "are"},
		{name: "be動詞がなければwill", sentence: "They will travel tomorrow.", want: "will"},
		{name: "どちらもなければ2番目のトークン", sentence: "I like music.", want: "like"},
		{name: "記号は除去してからトークン化", sentence: "Yes, really good!", want: "really"},
		{name: "1語だけなら先頭トークン", sentence: "Run!", want: "run"},
		{name: "空文は空文字", sentence: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PickBlankToken(tt.sentence))
		})
	}
}

func TestBlankSentence(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		token    string
		want     string
	}{
		{name: "単語境界で最初の一致のみ置換", sentence: "He is what he is.", token: "is", want: "He ___ what he is."},
		{name: "大文字小文字を無視", sentence: "Is this yours?", token: "is", want: "___ this yours?"},
		{name: "部分一致は置換しない", sentence: "This island is big.", token: "is", want: "This island ___ big."},
		{name: "空トークンはそのまま", sentence: "No change.", token: "", want: "No change."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BlankSentence(tt.sentence, tt.token))
		})
	}
}

func TestMakeSimpleWrongVariant(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		want     string
	}{
		{name: "is→are", sentence: "She is a student.", want: "She are a student."},
		{name: "are→is", sentence: "They are happy.", want: "They is happy."},
		{name: "am→is", sentence: "I am tired.", want: "I is tired."},
		{name: "will→wills", sentence: "He will come soon.", want: "He wills come soon."},
		{name: "2番目の単語を複数形化", sentence: "I like music.", want: "I likes music."},
		{name: "末尾sの単語は単数形化", sentence: "She likes apples.", want: "She like apples."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MakeSimpleWrongVariant(tt.sentence)

			assert.Equal(t, tt.want, got)
			assert.NotEqual(t, tt.sentence, got, "必ずどこかが崩れていること")
		})
	}
}
