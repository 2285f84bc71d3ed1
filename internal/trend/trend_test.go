package trend

import (
	"math"
	"testing"
	"time"
)

const epsilon = 0.01

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// daily builds a sample series starting at a fixed date, one value per day.
func daily(vals ...float64) []Sample {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	samples := make([]Sample, len(vals))
	for i, v := range vals {
		samples[i] = Sample{Date: start.AddDate(0, 0, i), Value: v}
	}
	return samples
}

// flat returns n copies of v as a daily series.
func flat(n int, v float64) []Sample {
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = v
	}
	return daily(vals...)
}

func TestAnalyze_InsufficientSamples(t *testing.T) {
	if got := Analyze(flat(13, 5), "focus", 7); got != nil {
		t.Errorf("Analyze with 13 samples = %+v, want nil", got)
	}
}

func TestAnalyze_Declining(t *testing.T) {
	// 7 days at 10.0 then 7 days at 8.5: recent window avg below previous.
	samples := append(flat(7, 10.0), flat(7, 8.5)...)
	// Extend so smoothing has two full windows: 7 more days at 8.5.
	samples = append(samples, flat(7, 8.5)...)

	res := Analyze(samples, "focus", 7)
	if res == nil {
		t.Fatal("Analyze returned nil")
	}
	if res.Trend != Declining {
		t.Errorf("Trend = %s, want declining", res.Trend)
	}
	if res.ChangePercent >= 0 {
		t.Errorf("ChangePercent = %f, want negative", res.ChangePercent)
	}
}

func TestCompare_MomentumScenario(t *testing.T) {
	// Recent window 8.5 vs previous 10.0 over a 7-day window.
	direction, changePercent, momentum := compare(8.5, 10.0, 7)

	if direction != Declining {
		t.Errorf("direction = %s, want declining", direction)
	}
	if !almostEqual(changePercent, -15.0) {
		t.Errorf("changePercent = %f, want -15", changePercent)
	}
	if !almostEqual(momentum, -2.142857) {
		t.Errorf("momentum = %f, want ~-2.14", momentum)
	}
}

func TestCompare_StableBoundary(t *testing.T) {
	// The stable band is |change| < 5: exactly 5% is already a trend.
	direction, changePercent, _ := compare(10.5, 10.0, 7)
	if !almostEqual(changePercent, 5.0) {
		t.Fatalf("changePercent = %f, want 5.0 (test setup)", changePercent)
	}
	if direction != Improving {
		t.Errorf("direction at exactly +5%% = %s, want improving", direction)
	}

	if direction, _, _ := compare(10.49, 10.0, 7); direction != Stable {
		t.Errorf("direction at +4.9%% = %s, want stable", direction)
	}
	if direction, _, _ := compare(9.5, 10.0, 7); direction != Declining {
		t.Errorf("direction at -5%% = %s, want declining", direction)
	}
}

func TestAnalyze_StableWithinBand(t *testing.T) {
	samples := append(flat(14, 10.0), flat(7, 10.2)...)
	res := Analyze(samples, "score", 7)
	if res == nil {
		t.Fatal("Analyze returned nil")
	}
	if res.Trend != Stable {
		t.Errorf("Trend = %s, want stable", res.Trend)
	}
}

func TestAnalyze_ZeroBaseline(t *testing.T) {
	samples := append(flat(14, 0), flat(7, 4)...)
	res := Analyze(samples, "study_time", 7)
	if res == nil {
		t.Fatal("Analyze returned nil")
	}
	if res.Trend != Insufficient {
		t.Errorf("Trend = %s, want insufficient_data", res.Trend)
	}
	if res.Confidence != 0 {
		t.Errorf("Confidence = %f, want 0", res.Confidence)
	}
}

func TestAnalyze_ConfidenceFullForFlatRecent(t *testing.T) {
	samples := append(flat(14, 8.0), flat(7, 9.0)...)
	res := Analyze(samples, "focus", 7)
	if res == nil {
		t.Fatal("Analyze returned nil")
	}
	// Recent smoothed window is not perfectly flat (the average ramps up),
	// but confidence should still be high.
	if res.Confidence < 90 {
		t.Errorf("Confidence = %f, want >= 90", res.Confidence)
	}
}

func TestMovingAverage(t *testing.T) {
	got := movingAverage([]float64{1, 2, 3, 4, 5}, 3)
	want := []float64{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("movingAverage[%d] = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestDetectAnomalies_TooFewSamples(t *testing.T) {
	if got := DetectAnomalies(flat(13, 5), 2); got != nil {
		t.Errorf("DetectAnomalies with 13 samples = %v, want nil", got)
	}
}

func TestDetectAnomalies_FlagsSpike(t *testing.T) {
	vals := make([]float64, 20)
	for i := range vals {
		vals[i] = 10
	}
	vals[15] = 40 // single large spike after warmup

	anomalies := DetectAnomalies(daily(vals...), 2)
	if len(anomalies) == 0 {
		t.Fatal("expected at least one anomaly")
	}
	found := false
	for _, a := range anomalies {
		if a.Actual == 40 {
			found = true
			if a.Severity != SeverityHigh {
				t.Errorf("spike severity = %s, want high", a.Severity)
			}
		}
	}
	if !found {
		t.Error("spike at index 15 not flagged")
	}
}

func TestDetectAnomalies_SkipsWarmup(t *testing.T) {
	vals := make([]float64, 20)
	for i := range vals {
		vals[i] = 10
	}
	vals[3] = 40 // spike inside the warmup window

	for _, a := range DetectAnomalies(daily(vals...), 2) {
		if a.Actual == 40 {
			t.Error("warmup spike should not be flagged")
		}
	}
}

func TestDetectAnomalies_FlatSeries(t *testing.T) {
	if got := DetectAnomalies(flat(20, 7), 2); got != nil {
		t.Errorf("flat series anomalies = %v, want nil", got)
	}
}

func TestDetectWeeklyPattern_FewWeekdays(t *testing.T) {
	// Samples on only 3 distinct weekdays.
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a Monday
	var samples []Sample
	for week := 0; week < 3; week++ {
		for d := 0; d < 3; d++ {
			samples = append(samples, Sample{Date: start.AddDate(0, 0, week*7+d), Value: 10})
		}
	}
	if got := DetectWeeklyPattern(samples); got != nil {
		t.Errorf("DetectWeeklyPattern = %+v, want nil", got)
	}
}

func TestDetectWeeklyPattern_DetectsWeekendDip(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a Monday
	var samples []Sample
	for week := 0; week < 4; week++ {
		for d := 0; d < 7; d++ {
			date := start.AddDate(0, 0, week*7+d)
			v := 10.0
			if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
				v = 2.0
			}
			samples = append(samples, Sample{Date: date, Value: v})
		}
	}

	pattern := DetectWeeklyPattern(samples)
	if pattern == nil || !pattern.Detected {
		t.Fatalf("pattern = %+v, want detected", pattern)
	}

	days := make(map[time.Weekday]bool)
	for _, b := range pattern.Biases {
		days[b.Day] = true
	}
	if !days[time.Saturday] || !days[time.Sunday] {
		t.Errorf("biased days = %v, want Saturday and Sunday included", days)
	}
}
