package learnstyle

import (
	"math"
	"testing"
	"time"

	"github.com/rlopes/studypulse/internal/store"
)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func focusPtr(v int) *int { return &v }

var base = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

// methodSession builds a session with the given method, duration and focus.
func methodSession(daysAgo int, method string, durationMin, focus int) store.Session {
	return store.Session{
		StartedAt:   base.AddDate(0, 0, -daysAgo),
		DurationMin: durationMin,
		Focus:       focusPtr(focus),
		SubjectID:   1,
		Method:      method,
	}
}

func TestBuildProfile_Empty(t *testing.T) {
	p := BuildProfile(nil, nil)
	if p.DominantStyle != StyleMultimodal {
		t.Errorf("DominantStyle = %s, want multimodal (no data)", p.DominantStyle)
	}
	if p.ConcentrationPattern != PatternSteady {
		t.Errorf("ConcentrationPattern = %s, want steady", p.ConcentrationPattern)
	}
	if p.BestTimeOfDay != TimeMorning {
		t.Errorf("BestTimeOfDay = %s, want morning", p.BestTimeOfDay)
	}
	if p.Confidence != 0 {
		t.Errorf("Confidence = %f, want 0", p.Confidence)
	}
}

func TestBuildProfile_ScoresSumTo100(t *testing.T) {
	sessions := []store.Session{
		methodSession(1, "flashcards", 30, 8),
		methodSession(2, "reading", 60, 6),
		methodSession(3, "practice_problems", 45, 9),
		methodSession(4, "flashcards", 30, 7),
	}

	p := BuildProfile(sessions, nil)
	var total float64
	for _, s := range AllStyles {
		total += p.StyleScores[s]
	}
	if !almostEqual(total, 100) {
		t.Errorf("style scores sum = %f, want 100", total)
	}
}

func TestBuildProfile_DominantVisual(t *testing.T) {
	var sessions []store.Session
	for d := 1; d <= 8; d++ {
		sessions = append(sessions, methodSession(d, "flashcards", 45, 9))
	}
	sessions = append(sessions, methodSession(9, "reading", 30, 4))

	p := BuildProfile(sessions, nil)
	if p.DominantStyle != StyleVisual {
		t.Errorf("DominantStyle = %s, want visual (scores %v)", p.DominantStyle, p.StyleScores)
	}
	if p.StyleScores[StyleVisual] <= p.StyleScores[StyleReadingWriting] {
		t.Errorf("visual %f <= reading %f", p.StyleScores[StyleVisual], p.StyleScores[StyleReadingWriting])
	}
}

func TestBuildProfile_Multimodal(t *testing.T) {
	sessions := []store.Session{
		methodSession(1, "flashcards", 45, 8),
		methodSession(2, "lectures", 45, 8),
		methodSession(3, "practice_problems", 45, 8),
		methodSession(4, "reading", 45, 8),
	}

	p := BuildProfile(sessions, nil)
	if p.DominantStyle != StyleMultimodal {
		t.Errorf("DominantStyle = %s, want multimodal (scores %v)", p.DominantStyle, p.StyleScores)
	}
}

func TestBuildProfile_PerformanceBonus(t *testing.T) {
	sessions := []store.Session{
		methodSession(10, "flashcards", 45, 7),
		methodSession(10, "reading", 45, 7),
	}
	// Only the flashcards session has a linked assessment (same subject,
	// within 7 days after): both sessions share subject 1, so link via date.
	sessions[1].SubjectID = 2
	assessments := []store.Assessment{
		{SubjectID: 1, TakenAt: base.AddDate(0, 0, -8), ScorePercent: 95},
	}

	p := BuildProfile(sessions, assessments)
	if p.StyleScores[StyleVisual] <= p.StyleScores[StyleReadingWriting] {
		t.Errorf("bonus did not lift visual: visual %f, reading %f",
			p.StyleScores[StyleVisual], p.StyleScores[StyleReadingWriting])
	}
}

func TestBuildProfile_UnmappedMethodReported(t *testing.T) {
	sessions := []store.Session{
		methodSession(1, "flashcards", 30, 8),
		methodSession(2, "osmosis_by_proximity", 30, 8),
	}

	p := BuildProfile(sessions, nil)
	if len(p.UnclassifiedMethods) != 1 || p.UnclassifiedMethods[0] != "osmosis_by_proximity" {
		t.Errorf("UnclassifiedMethods = %v, want [osmosis_by_proximity]", p.UnclassifiedMethods)
	}
	// The unmapped method contributes nothing to any bucket.
	if !almostEqual(p.StyleScores[StyleVisual], 100) {
		t.Errorf("visual = %f, want 100", p.StyleScores[StyleVisual])
	}
}

func TestConcentrationPattern_PicksBestFocusBucket(t *testing.T) {
	var sessions []store.Session
	// Short sessions with great focus, long sessions with poor focus.
	for d := 1; d <= 5; d++ {
		sessions = append(sessions, methodSession(d, "reading", 25, 9))
	}
	for d := 6; d <= 10; d++ {
		sessions = append(sessions, methodSession(d, "reading", 120, 4))
	}

	pattern, optimal := concentrationPattern(sessions)
	if pattern != PatternSprint {
		t.Errorf("pattern = %s, want sprint", pattern)
	}
	if optimal != 25 {
		t.Errorf("optimal = %d, want 25", optimal)
	}
}

func TestConcentrationPattern_DefaultBelowFloor(t *testing.T) {
	sessions := []store.Session{
		methodSession(1, "reading", 25, 9),
		methodSession(2, "reading", 25, 9),
	}
	pattern, optimal := concentrationPattern(sessions)
	if pattern != PatternSteady || optimal != 45 {
		t.Errorf("pattern = %s/%d, want steady/45 (too few sessions)", pattern, optimal)
	}
}

func TestBestTimeOfDay_PicksEvening(t *testing.T) {
	var sessions []store.Session
	for d := 1; d <= 5; d++ {
		s := methodSession(d, "reading", 45, 9)
		s.StartedAt = time.Date(2026, 3, d, 19, 0, 0, 0, time.UTC)
		sessions = append(sessions, s)
	}
	for d := 1; d <= 5; d++ {
		s := methodSession(d, "reading", 45, 5)
		s.StartedAt = time.Date(2026, 3, 10+d, 8, 0, 0, 0, time.UTC)
		sessions = append(sessions, s)
	}

	if got := bestTimeOfDay(sessions); got != TimeEvening {
		t.Errorf("bestTimeOfDay = %s, want evening", got)
	}
}

func TestTimeOfDayBuckets(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{5, TimeMorning},
		{11, TimeMorning},
		{12, TimeAfternoon},
		{16, TimeAfternoon},
		{17, TimeEvening},
		{21, TimeEvening},
		{22, TimeNight},
		{2, TimeNight},
	}
	for _, tt := range tests {
		if got := timeOfDay(tt.hour); got != tt.want {
			t.Errorf("timeOfDay(%d) = %s, want %s", tt.hour, got, tt.want)
		}
	}
}

func TestConfidence(t *testing.T) {
	if got := confidence(10); !almostEqual(got, 50) {
		t.Errorf("confidence(10) = %f, want 50", got)
	}
	if got := confidence(40); !almostEqual(got, 100) {
		t.Errorf("confidence(40) = %f, want 100", got)
	}
}
