package burnout

import (
	"math"
	"testing"
	"time"

	"github.com/rlopes/studypulse/internal/store"
)

var testNow = time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func focusPtr(v int) *int { return &v }

// sessionAt builds a session n days before testNow.
func sessionAt(daysAgo int, durationMin int, focus *int) store.Session {
	return store.Session{
		StartedAt:   testNow.AddDate(0, 0, -daysAgo),
		DurationMin: durationMin,
		Focus:       focus,
	}
}

func TestAssess_NoData(t *testing.T) {
	a := Assess(nil, nil, testNow)
	if a.TotalScore != 0 {
		t.Errorf("TotalScore = %f, want 0", a.TotalScore)
	}
	if a.Severity != SeverityNone {
		t.Errorf("Severity = %s, want none", a.Severity)
	}
	if a.NeedsIntervention {
		t.Error("NeedsIntervention = true, want false")
	}
	if len(a.Indicators) != 5 {
		t.Errorf("len(Indicators) = %d, want 5", len(a.Indicators))
	}
	for _, ind := range a.Indicators {
		if ind.Detected || ind.Score != 0 {
			t.Errorf("indicator %s = %+v, want undetected zero", ind.Category, ind)
		}
	}
}

func TestAssess_TotalIsSumOfIndicators(t *testing.T) {
	var sessions []store.Session
	// Baseline focus 9 at days 31-60, recent focus 5: heavy decline.
	for d := 35; d <= 55; d += 5 {
		sessions = append(sessions, sessionAt(d, 60, focusPtr(9)))
	}
	for d := 1; d <= 13; d += 3 {
		sessions = append(sessions, sessionAt(d, 60, focusPtr(5)))
	}

	a := Assess(sessions, nil, testNow)
	sum := 0.0
	for _, ind := range a.Indicators {
		sum += ind.Score
	}
	if !almostEqual(a.TotalScore, clamp(sum, 0, 100)) {
		t.Errorf("TotalScore = %f, want sum of indicators %f", a.TotalScore, sum)
	}
}

func TestFocusDecline_Detected(t *testing.T) {
	var sessions []store.Session
	for d := 35; d <= 55; d += 5 {
		sessions = append(sessions, sessionAt(d, 60, focusPtr(8)))
	}
	for d := 1; d <= 13; d += 3 {
		sessions = append(sessions, sessionAt(d, 60, focusPtr(6)))
	}

	ind := focusDecline(sessions, testNow)
	if !ind.Detected {
		t.Fatal("decline of 25% not detected")
	}
	// decline 25% * 1.2 = 30, capped at 25.
	if !almostEqual(ind.Score, 25) {
		t.Errorf("Score = %f, want 25 (capped)", ind.Score)
	}
}

func TestFocusDecline_SmallDeclineNotDetected(t *testing.T) {
	var sessions []store.Session
	for d := 35; d <= 55; d += 5 {
		sessions = append(sessions, sessionAt(d, 60, focusPtr(8)))
	}
	for d := 1; d <= 13; d += 3 {
		sessions = append(sessions, sessionAt(d, 60, focusPtr(7)))
	}

	ind := focusDecline(sessions, testNow)
	if ind.Detected || ind.Score != 0 {
		t.Errorf("12.5%% decline = %+v, want undetected", ind)
	}
}

func TestEffortMismatch_Detected(t *testing.T) {
	var sessions []store.Session
	// Prior 14 days: ~7h. Recent 14 days: ~14h (+100%).
	for d := 15; d <= 27; d += 2 {
		sessions = append(sessions, sessionAt(d, 60, nil))
	}
	for d := 1; d <= 13; d += 1 {
		sessions = append(sessions, sessionAt(d, 65, nil))
	}

	assessments := []store.Assessment{
		{TakenAt: testNow.AddDate(0, 0, -20), ScorePercent: 80},
		{TakenAt: testNow.AddDate(0, 0, -5), ScorePercent: 70},
	}

	ind := effortMismatch(sessions, assessments, testNow)
	if !ind.Detected {
		t.Fatalf("mismatch not detected: %+v", ind)
	}
	// perfChange = -12.5, hoursChange = +100.7 -> 12.5 + 50.4 = 62.9, capped 30.
	if !almostEqual(ind.Score, 30) {
		t.Errorf("Score = %f, want 30 (capped)", ind.Score)
	}
}

func TestEffortMismatch_RequiresBothSignals(t *testing.T) {
	var sessions []store.Session
	for d := 15; d <= 27; d += 2 {
		sessions = append(sessions, sessionAt(d, 60, nil))
	}
	for d := 1; d <= 13; d++ {
		sessions = append(sessions, sessionAt(d, 65, nil))
	}
	// Performance improves: no mismatch even though hours jumped.
	assessments := []store.Assessment{
		{TakenAt: testNow.AddDate(0, 0, -20), ScorePercent: 70},
		{TakenAt: testNow.AddDate(0, 0, -5), ScorePercent: 85},
	}

	ind := effortMismatch(sessions, assessments, testNow)
	if ind.Detected {
		t.Errorf("improving performance flagged: %+v", ind)
	}
}

func TestAvoidance_Scenario(t *testing.T) {
	var sessions []store.Session
	// Prior week: 8 sessions. This week: 4 sessions -> 50% drop.
	for i := 0; i < 8; i++ {
		sessions = append(sessions, sessionAt(8+i%6, 30, nil))
	}
	for i := 0; i < 4; i++ {
		sessions = append(sessions, sessionAt(1+i, 30, nil))
	}

	ind := avoidance(sessions, testNow)
	if !ind.Detected {
		t.Fatalf("50%% drop not detected: %+v", ind)
	}
	if !almostEqual(ind.Score, 20) {
		t.Errorf("Score = %f, want 20 (50/2 capped at 20)", ind.Score)
	}

	// Only avoidance fires: total 20 stays below the mild cutoff.
	a := Assess(sessions, nil, testNow)
	if !almostEqual(a.TotalScore, 20) {
		t.Errorf("TotalScore = %f, want 20", a.TotalScore)
	}
	if a.Severity != SeverityNone {
		t.Errorf("Severity = %s, want none", a.Severity)
	}
	if a.NeedsIntervention {
		t.Error("NeedsIntervention = true, want false")
	}
}

func TestEmotional_Detected(t *testing.T) {
	sessions := []store.Session{
		{StartedAt: testNow.AddDate(0, 0, -2), DurationMin: 30, Notes: "felt completely exhausted today"},
		{StartedAt: testNow.AddDate(0, 0, -4), DurationMin: 30, Notes: "so stressed about the exam"},
		{StartedAt: testNow.AddDate(0, 0, -6), DurationMin: 30, Notes: "went fine"},
		{StartedAt: testNow.AddDate(0, 0, -8), DurationMin: 30, Notes: "good pace"},
	}

	ind := emotional(sessions, testNow)
	if !ind.Detected {
		t.Fatalf("50%% negative notes not detected: %+v", ind)
	}
	if !almostEqual(ind.Score, 15) {
		t.Errorf("Score = %f, want 15 (50/2 capped at 15)", ind.Score)
	}
}

func TestEmotional_IgnoresEmptyNotes(t *testing.T) {
	sessions := []store.Session{
		{StartedAt: testNow.AddDate(0, 0, -2), DurationMin: 30},
		{StartedAt: testNow.AddDate(0, 0, -3), DurationMin: 30, Notes: "   "},
	}
	ind := emotional(sessions, testNow)
	if ind.Detected || ind.Score != 0 {
		t.Errorf("no notes = %+v, want undetected zero", ind)
	}
}

func TestExtremes_AllBehaviors(t *testing.T) {
	var sessions []store.Session
	// Marathon session.
	sessions = append(sessions, sessionAt(2, 200, nil))
	// Three late-night sessions.
	for i := 0; i < 3; i++ {
		sessions = append(sessions, store.Session{
			StartedAt:   time.Date(2026, 4, 12-i, 23, 30, 0, 0, time.UTC),
			DurationMin: 45,
		})
	}
	// Push the last 7 days above 50 hours.
	for d := 1; d <= 6; d++ {
		sessions = append(sessions, sessionAt(d, 540, nil))
	}

	ind := extremes(sessions, testNow)
	if !ind.Detected {
		t.Fatalf("extremes not detected: %+v", ind)
	}
	// Three categories * 3 points, under the 10-point cap.
	if !almostEqual(ind.Score, 9) {
		t.Errorf("Score = %f, want 9", ind.Score)
	}
}

func TestExtremes_LateNightNeedsThree(t *testing.T) {
	sessions := []store.Session{
		{StartedAt: time.Date(2026, 4, 13, 23, 30, 0, 0, time.UTC), DurationMin: 45},
		{StartedAt: time.Date(2026, 4, 12, 1, 0, 0, 0, time.UTC), DurationMin: 45},
	}
	ind := extremes(sessions, testNow)
	if ind.Detected {
		t.Errorf("two late-night sessions flagged: %+v", ind)
	}
}

func TestSeverityCutoffs(t *testing.T) {
	tests := []struct {
		total float64
		want  Severity
	}{
		{0, SeverityNone},
		{40.9, SeverityNone},
		{41, SeverityMild},
		{60.9, SeverityMild},
		{61, SeverityModerate},
		{75.9, SeverityModerate},
		{76, SeverityHigh},
		{85.9, SeverityHigh},
		{86, SeverityCritical},
		{100, SeverityCritical},
	}
	for _, tt := range tests {
		if got := severityFor(tt.total); got != tt.want {
			t.Errorf("severityFor(%f) = %s, want %s", tt.total, got, tt.want)
		}
	}
}

func TestAdvice_Deduplicated(t *testing.T) {
	indicators := []Indicator{
		{Category: CategoryAvoidance, Detected: true},
		{Category: CategoryAvoidance, Detected: true},
	}
	advice := adviceFor(SeverityMild, indicators)
	seen := make(map[string]bool)
	for _, a := range advice {
		if seen[a] {
			t.Errorf("duplicate advice: %q", a)
		}
		seen[a] = true
	}
}
