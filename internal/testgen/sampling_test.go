// internal/testgen/sampling_test.go
package testgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShuffle_PreservesInputAndMultiset(t *testing.T) {
	input := []int{1, 2, 3, 4, 5, 6, 7, 8}
	original := append([]int(nil), input...)

	got := Shuffle(input)

	assert.Equal(t, original, input, "入力スライスは破壊しない")
	assert.ElementsMatch(t, original, got)
	assert.Len(t, got, len(original))
}

func TestShuffle_Empty(t *testing.T) {
	assert.Empty(t, Shuffle([]string{}))
}

func TestRandomSample(t *testing.T) {
	xs := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		name    string
		n       int
		wantLen int
	}{
		{name: "n=0は空", n: 0, wantLen: 0},
		{name: "負のnも空", n: -1, wantLen: 0},
		{name: "部分抽出", n: 3, wantLen: 3},
		{name: "n=全長は全体の順列", n: 5, wantLen: 5},
		{name: "nが全長超過でも全体どまり", n: 10, wantLen: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RandomSample(xs, tt.n)

			require.Len(t, got, tt.wantLen)
			// 同一インデックスの二重抽出がないこと
			seen := make(map[string]int)
			for _, v := range got {
				seen[v]++
				assert.Contains(t, xs, v)
			}
			for v, c := range seen {
				assert.Equal(t, 1, c, "%q が重複抽出されている", v)
			}
			if tt.wantLen == len(xs) {
				assert.ElementsMatch(t, xs, got)
			}
		})
	}
}

func TestUniqueChoices(t *testing.T) {
	tests := []struct {
		name    string
		choices []string
		limit   int
		want    []string
	}{
		{
			name:    "重複は最初の出現を残す",
			choices: []string{"사과", "물", "사과", "책"},
			limit:   4,
			want:    []string{"사과", "물", "책"},
		},
		{
			name:    "limitで打ち切り",
			choices: []string{"a", "b", "c", "d", "e"},
			limit:   4,
			want:    []string{"a", "b", "c", "d"},
		},
		{
			name:    "limit 0 は無制限",
			choices: []string{"a", "b", "a", "c"},
			limit:   0,
			want:    []string{"a", "b", "c"},
		},
		{
			name:    "空入力",
			choices: []string{},
			limit:   4,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UniqueChoices(tt.choices, tt.limit)

			assert.Equal(t, tt.want, got)
			if tt.limit > 0 {
				assert.LessOrEqual(t, len(got), tt.limit)
			}
		})
	}
}
