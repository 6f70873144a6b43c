// internal/spaced/spaced.go
package spaced

import (
	"math"
	"time"
)

// 簡易スケジューラの調整値。学習科学的な厳密さよりも挙動の単純さを優先しています。
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
	MaxEaseFactor     = 3.0
	EaseBonus         = 0.1 // 正解時の加算
	EasePenalty       = 0.2 // 不正解時の減算
)

// State は1項目分の復習スケジュール状態のスナップショットです。
// 永続化層の ReviewState から切り離した純粋な値で、Advance は新しい値を返します。
type State struct {
	IntervalDays int
	EaseFactor   float64
	Streak       int
	NextReviewAt time.Time
	IsMastered   bool
}

// Default は「いま復習対象になる」初期状態を返します。
func Default(now time.Time) State {
	return State{
		IntervalDays: 0,
		EaseFactor:   DefaultEaseFactor,
		Streak:       0,
		NextReviewAt: now,
		IsMastered:   false,
	}
}

// Advance は1回の回答結果を状態に適用します。
//   - 正解: streak+1、ease+0.1 (上限3.0)、間隔は 0→1日 / 1→3日 / それ以降は round(間隔×ease)
//   - 不正解: streakリセット、ease-0.2 (下限1.3)、間隔1日に戻す
//
// IsMastered は回答では変化しません (明示的なトグル専用)。
func Advance(s State, isCorrect bool, now time.Time) State {
	if isCorrect {
		next := State{
			Streak:     s.Streak + 1,
			EaseFactor: math.Min(MaxEaseFactor, s.EaseFactor+EaseBonus),
			IsMastered: s.IsMastered,
		}
		switch s.IntervalDays {
		case 0:
			next.IntervalDays = 1
		case 1:
			next.IntervalDays = 3
		default:
			// 間隔の伸長には更新前の ease を使う
			next.IntervalDays = int(math.Round(float64(s.IntervalDays) * s.EaseFactor))
		}
		next.NextReviewAt = now.AddDate(0, 0, next.IntervalDays)
		return next
	}

	return State{
		IntervalDays: 1,
		EaseFactor:   math.Max(MinEaseFactor, s.EaseFactor-EasePenalty),
		Streak:       0,
		NextReviewAt: now.AddDate(0, 0, 1),
		IsMastered:   s.IsMastered,
	}
}
