package forgetting

import (
	"math"
	"testing"
	"time"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestRetention_FreshIsFull(t *testing.T) {
	for _, s := range []float64{1, 1.92, 7, 90} {
		if got := Retention(0, s); !almostEqual(got, 100) {
			t.Errorf("Retention(0, %f) = %f, want 100", s, got)
		}
	}
}

func TestRetention_Monotonic(t *testing.T) {
	const strength = 5.0
	prev := Retention(0, strength)
	for _, days := range []float64{0.5, 1, 2, 5, 10, 30, 90} {
		r := Retention(days, strength)
		if r >= prev {
			t.Errorf("Retention(%f) = %f, want < %f", days, r, prev)
		}
		prev = r
	}
}

func TestRetention_Bounds(t *testing.T) {
	if got := Retention(10000, 1); got < 0 || got > 100 {
		t.Errorf("Retention far out = %f, want within [0,100]", got)
	}
	if got := Retention(-3, 5); !almostEqual(got, 100) {
		t.Errorf("Retention with negative elapsed = %f, want 100", got)
	}
	if got := Retention(1, 0); got != 0 {
		t.Errorf("Retention with zero strength = %f, want 0", got)
	}
}

func TestInitialStrength_Scenario(t *testing.T) {
	// confidence=8, difficulty=2: 3 * 0.8 * 0.8 = 1.92
	got := InitialStrength(8, 2)
	if !almostEqual(got, 1.92) {
		t.Errorf("InitialStrength(8, 2) = %f, want 1.92", got)
	}
}

func TestInitialStrength_Clamped(t *testing.T) {
	// confidence=1, difficulty=5: 3 * 0.1 * 0.2 = 0.06, floored at 1.
	if got := InitialStrength(1, 5); !almostEqual(got, 1.0) {
		t.Errorf("InitialStrength(1, 5) = %f, want 1.0", got)
	}
	// confidence=10, difficulty=1: 3 * 1.0 * 1.0 = 3.0, under the 7-day cap.
	if got := InitialStrength(10, 1); !almostEqual(got, 3.0) {
		t.Errorf("InitialStrength(10, 1) = %f, want 3.0", got)
	}
}

func TestIntervalDays_Scenario(t *testing.T) {
	// S=1.92: -1.92 * ln(0.75) = 0.552, rounds up to 1 day.
	if got := IntervalDays(1.92); got != 1 {
		t.Errorf("IntervalDays(1.92) = %d, want 1", got)
	}
	// S=90: -90 * ln(0.75) = 25.89, rounds up to 26.
	if got := IntervalDays(90); got != 26 {
		t.Errorf("IntervalDays(90) = %d, want 26", got)
	}
}

func TestNextStrength_Multipliers(t *testing.T) {
	tests := []struct {
		result Result
		from   float64
		want   float64
	}{
		{ResultEasy, 4, 10},
		{ResultGood, 4, 8},
		{ResultHard, 4, 6},
		{ResultForgot, 4, 2},
	}
	for _, tt := range tests {
		if got := NextStrength(tt.from, tt.result); !almostEqual(got, tt.want) {
			t.Errorf("NextStrength(%f, %s) = %f, want %f", tt.from, tt.result, got, tt.want)
		}
	}
}

func TestNextStrength_Bounds(t *testing.T) {
	if got := NextStrength(1, ResultForgot); !almostEqual(got, MinStrength) {
		t.Errorf("NextStrength floor = %f, want %f", got, MinStrength)
	}
	if got := NextStrength(60, ResultEasy); !almostEqual(got, MaxStrength) {
		t.Errorf("NextStrength cap = %f, want %f", got, MaxStrength)
	}

	// Any sequence of results keeps S within [1, 90].
	s := 2.0
	results := []Result{ResultEasy, ResultEasy, ResultEasy, ResultEasy, ResultForgot,
		ResultForgot, ResultForgot, ResultForgot, ResultForgot, ResultHard, ResultEasy,
		ResultEasy, ResultEasy, ResultEasy, ResultEasy, ResultGood}
	for _, r := range results {
		s = NextStrength(s, r)
		if s < MinStrength || s > MaxStrength {
			t.Fatalf("strength %f escaped [%f, %f] after %s", s, MinStrength, MaxStrength, r)
		}
	}
}

func TestNextReviewDate(t *testing.T) {
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	got := NextReviewDate(1.92, now)
	if want := now.AddDate(0, 0, 1); !got.Equal(want) {
		t.Errorf("NextReviewDate = %v, want %v", got, want)
	}
}

func TestValidResult(t *testing.T) {
	for _, r := range []Result{ResultEasy, ResultGood, ResultHard, ResultForgot} {
		if !ValidResult(r) {
			t.Errorf("ValidResult(%s) = false, want true", r)
		}
	}
	if ValidResult("perfect") {
		t.Error("ValidResult(perfect) = true, want false")
	}
}
