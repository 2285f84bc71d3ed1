// Package trend classifies time-ordered metric series as improving,
// declining or stable, and detects anomalies and weekly patterns.
package trend

import (
	"time"
)

// DefaultWindow is the default moving-average window size in days.
const DefaultWindow = 7

// stableBandPercent is the half-width of the stable classification band:
// absolute changes below this percentage are considered noise.
const stableBandPercent = 5.0

// Direction is the classified direction of a metric series.
type Direction string

const (
	Improving Direction = "improving"
	Declining Direction = "declining"
	Stable    Direction = "stable"
	// Insufficient marks a result produced from a degenerate series
	// (zero baseline). Its confidence is always 0.
	Insufficient Direction = "insufficient_data"
)

// Sample is one daily observation of a metric.
type Sample struct {
	Date  time.Time
	Value float64
}

// Result describes the detected trend of a metric series.
type Result struct {
	Metric        string    `json:"metric"`
	Trend         Direction `json:"trend"`
	MomentumPct   float64   `json:"momentum_pct_per_day"`
	RecentAvg     float64   `json:"recent_avg"`
	PreviousAvg   float64   `json:"previous_avg"`
	ChangePercent float64   `json:"change_percent"`
	Confidence    float64   `json:"confidence"`
}

// Analyze smooths the series with a simple moving average of size window and
// compares the most recent window of smoothed values against the window
// before it. Returns nil when fewer than 2*window samples exist.
//
// A zero recent or previous mean cannot be classified (the percentage change
// is undefined); those series produce an Insufficient result with zero
// confidence rather than an error.
func Analyze(samples []Sample, metric string, window int) *Result {
	if window <= 0 {
		window = DefaultWindow
	}
	if len(samples) < 2*window {
		return nil
	}

	smoothed := movingAverage(values(samples), window)
	if len(smoothed) < window+1 {
		return nil
	}

	recentVals := smoothed[len(smoothed)-window:]
	prevStart := len(smoothed) - 2*window
	if prevStart < 0 {
		prevStart = 0
	}
	prevVals := smoothed[prevStart : len(smoothed)-window]
	if len(prevVals) == 0 {
		return nil
	}

	recent := mean(recentVals)
	previous := mean(prevVals)

	if previous == 0 || recent == 0 {
		return &Result{Metric: metric, Trend: Insufficient}
	}

	direction, changePercent, momentum := compare(recent, previous, window)
	confidence := clamp(100-stdDev(recentVals)/recent*100, 0, 100)

	return &Result{
		Metric:        metric,
		Trend:         direction,
		MomentumPct:   momentum,
		RecentAvg:     recent,
		PreviousAvg:   previous,
		ChangePercent: changePercent,
		Confidence:    confidence,
	}
}

// compare classifies the relation between the two window means. A change of
// strictly less than 5% in either direction is stable; at or beyond the band
// the sign of the change decides. Momentum spreads the change over the
// window, giving percent-per-day.
func compare(recent, previous float64, window int) (Direction, float64, float64) {
	change := recent - previous
	changePercent := change / previous * 100
	momentum := changePercent / float64(window)

	direction := Stable
	if abs(changePercent) >= stableBandPercent {
		if change > 0 {
			direction = Improving
		} else {
			direction = Declining
		}
	}
	return direction, changePercent, momentum
}

func values(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Value
	}
	return out
}
