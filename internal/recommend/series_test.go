package recommend

import (
	"testing"
	"time"

	"github.com/rlopes/studypulse/internal/store"
)

func day(offset int) time.Time {
	return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestDailyStudyMinutes_ZeroFillsRestDays(t *testing.T) {
	sessions := []store.Session{
		{StartedAt: day(0), DurationMin: 30},
		{StartedAt: day(0).Add(8 * time.Hour), DurationMin: 15},
		{StartedAt: day(3), DurationMin: 60},
	}

	samples := DailyStudyMinutes(sessions)
	if len(samples) != 4 {
		t.Fatalf("got %d samples, want 4 including rest days", len(samples))
	}
	want := []float64{45, 0, 0, 60}
	for i, w := range want {
		if samples[i].Value != w {
			t.Errorf("day %d = %f, want %f", i, samples[i].Value, w)
		}
	}
}

func TestDailyStudyMinutes_Empty(t *testing.T) {
	if samples := DailyStudyMinutes(nil); samples != nil {
		t.Errorf("got %v, want nil", samples)
	}
}

func TestDailyFocus_SkipsUnratedSessionsAndDays(t *testing.T) {
	sessions := []store.Session{
		{StartedAt: day(0), DurationMin: 30, Focus: intPtr(6)},
		{StartedAt: day(0), DurationMin: 30, Focus: intPtr(8)},
		{StartedAt: day(1), DurationMin: 30}, // unrated, day contributes nothing
		{StartedAt: day(2), DurationMin: 30, Focus: intPtr(4)},
	}

	samples := DailyFocus(sessions)
	if len(samples) != 2 {
		t.Fatalf("got %d samples, want 2", len(samples))
	}
	if samples[0].Value != 7 {
		t.Errorf("first day focus = %f, want 7 (mean of 6 and 8)", samples[0].Value)
	}
	if samples[1].Value != 4 {
		t.Errorf("second day focus = %f, want 4", samples[1].Value)
	}
}

func TestDailyScores_AveragesPerDay(t *testing.T) {
	assessments := []store.Assessment{
		{TakenAt: day(0), ScorePercent: 70},
		{TakenAt: day(0), ScorePercent: 90},
		{TakenAt: day(5), ScorePercent: 85},
	}

	samples := DailyScores(assessments)
	if len(samples) != 2 {
		t.Fatalf("got %d samples, want 2; score series must not zero-fill", len(samples))
	}
	if samples[0].Value != 80 {
		t.Errorf("first sample = %f, want 80", samples[0].Value)
	}
	if !samples[1].Date.After(samples[0].Date) {
		t.Error("samples out of order")
	}
}
