// internal/testgen/sampling.go
package testgen

import "math/rand/v2"

// Shuffle は入力を変更せず、一様ランダムな並び替えコピーを返します。
func Shuffle[T any](xs []T) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// RandomSample は重複なしでn件を一様ランダムに抽出します。
// n が全長以上の場合は全体のシャッフルコピーを返します。
func RandomSample[T any](xs []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	shuffled := Shuffle(xs)
	if n >= len(shuffled) {
		return shuffled
	}
	return shuffled[:n]
}

// UniqueChoices は文字列の完全一致で重複を除きます。最初の出現を優先し、
// limit (0以下なら無制限) に達した時点で打ち切ります。
func UniqueChoices(choices []string, limit int) []string {
	seen := make(map[string]struct{}, len(choices))
	result := make([]string, 0, len(choices))
	for _, c := range choices {
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			result = append(result, c)
		}
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result
}
