// Package forgetting schedules topic reviews along an Ebbinghaus-style
// forgetting curve. Each tracked item carries a memory strength S (days);
// modeled retention decays as 100*e^(-t/S) and the next review is placed
// where retention would fall to the target.
package forgetting

import (
	"math"
	"time"
)

const (
	// MinStrength and MaxStrength bound memory strength in days.
	MinStrength = 1.0
	MaxStrength = 90.0

	// maxInitialStrength caps the seeded strength of a new item.
	maxInitialStrength = 7.0

	// TargetRetention is the retention percentage a review is scheduled at.
	TargetRetention = 75.0
)

// Result grades one review.
type Result string

const (
	ResultEasy   Result = "easy"
	ResultGood   Result = "good"
	ResultHard   Result = "hard"
	ResultForgot Result = "forgot"
)

// strengthMultipliers adjusts memory strength after a graded review.
var strengthMultipliers = map[Result]float64{
	ResultEasy:   2.5,
	ResultGood:   2.0,
	ResultHard:   1.5,
	ResultForgot: 0.5,
}

// ValidResult reports whether r is one of the four review grades.
func ValidResult(r Result) bool {
	_, ok := strengthMultipliers[r]
	return ok
}

// Retention returns the modeled recall probability (0-100) after daysSince
// days at memory strength S.
func Retention(daysSince, strength float64) float64 {
	if strength <= 0 {
		return 0
	}
	if daysSince < 0 {
		daysSince = 0
	}
	return clamp(100*math.Exp(-daysSince/strength), 0, 100)
}

// RetentionAt returns the modeled retention of an item reviewed (or first
// studied) at ref, evaluated at now.
func RetentionAt(ref, now time.Time, strength float64) float64 {
	days := now.Sub(ref).Hours() / 24
	return Retention(days, strength)
}

// InitialStrength seeds memory strength from the caller-supplied initial
// confidence (1-10) and difficulty (1-5).
func InitialStrength(confidence, difficulty int) float64 {
	s := 3 * (float64(confidence) / 10) * (float64(6-difficulty) / 5)
	return clamp(s, MinStrength, maxInitialStrength)
}

// NextStrength applies the result multiplier, keeping S within bounds.
func NextStrength(strength float64, result Result) float64 {
	mult, ok := strengthMultipliers[result]
	if !ok {
		return clamp(strength, MinStrength, MaxStrength)
	}
	return clamp(strength*mult, MinStrength, MaxStrength)
}

// IntervalDays solves the forgetting curve for the days until retention
// decays to the target, rounded up to whole days. Always at least 1 day.
func IntervalDays(strength float64) int {
	days := -strength * math.Log(TargetRetention/100)
	n := int(math.Ceil(days))
	if n < 1 {
		n = 1
	}
	return n
}

// NextReviewDate places the next review IntervalDays after now.
func NextReviewDate(strength float64, now time.Time) time.Time {
	return now.AddDate(0, 0, IntervalDays(strength))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
