// Package burnout scores five independent burnout risk indicators from
// session and assessment aggregates and combines them into a
// severity-classified assessment.
package burnout

import (
	"fmt"
	"strings"
	"time"

	"github.com/rlopes/studypulse/internal/store"
)

// Indicator categories.
const (
	CategoryFocusDecline   = "focus_decline"
	CategoryEffortMismatch = "effort_mismatch"
	CategoryAvoidance      = "avoidance"
	CategoryEmotional      = "emotional"
	CategoryExtremes       = "extreme_behavior"
)

// Indicator is one scored burnout risk factor. Missing or insufficient input
// yields a zero score with Detected=false, never an error.
type Indicator struct {
	Category    string  `json:"category"`
	Score       float64 `json:"score"`
	MaxScore    float64 `json:"max_score"`
	Detected    bool    `json:"detected"`
	Description string  `json:"description"`
}

// negativeKeywords flags emotional strain in free-text session notes.
var negativeKeywords = []string{
	"stressed", "overwhelmed", "exhausted", "drained", "frustrated",
	"anxious", "burnt out", "burned out", "can't focus", "cant focus",
	"hate", "give up", "giving up", "hopeless", "dread",
}

// focusDecline compares average focus over the last 14 days against the
// baseline 31-60 days ago. A decline over 15% is detected; the score scales
// the decline by 1.2 up to 25 points.
func focusDecline(sessions []store.Session, now time.Time) Indicator {
	ind := Indicator{Category: CategoryFocusDecline, MaxScore: 25}

	recent := focusAverage(sessions, now.AddDate(0, 0, -14), now)
	baseline := focusAverage(sessions, now.AddDate(0, 0, -60), now.AddDate(0, 0, -31))
	if recent < 0 || baseline <= 0 {
		ind.Description = "not enough focus data to compare"
		return ind
	}

	declinePct := (baseline - recent) / baseline * 100
	ind.Description = fmt.Sprintf("average focus %.1f vs baseline %.1f (%.0f%% change)", recent, baseline, -declinePct)
	if declinePct > 15 {
		ind.Detected = true
		ind.Score = clamp(declinePct*1.2, 0, ind.MaxScore)
	}
	return ind
}

// effortMismatch detects rising study hours paired with falling assessment
// performance, comparing the last 14 days against the 14 before.
func effortMismatch(sessions []store.Session, assessments []store.Assessment, now time.Time) Indicator {
	ind := Indicator{Category: CategoryEffortMismatch, MaxScore: 30}

	mid := now.AddDate(0, 0, -14)
	start := now.AddDate(0, 0, -28)

	recentHours := totalHours(sessions, mid, now)
	priorHours := totalHours(sessions, start, mid)
	recentPerf := scoreAverage(assessments, mid, now)
	priorPerf := scoreAverage(assessments, start, mid)

	if priorHours == 0 || recentPerf < 0 || priorPerf <= 0 {
		ind.Description = "not enough effort/performance data to compare"
		return ind
	}

	hoursChange := (recentHours - priorHours) / priorHours * 100
	perfChange := (recentPerf - priorPerf) / priorPerf * 100

	ind.Description = fmt.Sprintf("study hours %+.0f%%, performance %+.1f%%", hoursChange, perfChange)
	if hoursChange > 20 && perfChange < -5 {
		ind.Detected = true
		ind.Score = clamp(abs(perfChange)+hoursChange/2, 0, ind.MaxScore)
	}
	return ind
}

// avoidance detects a sharp drop in session count, comparing the last 7 days
// against the 7 before.
func avoidance(sessions []store.Session, now time.Time) Indicator {
	ind := Indicator{Category: CategoryAvoidance, MaxScore: 20}

	recent := countBetween(sessions, now.AddDate(0, 0, -7), now)
	prior := countBetween(sessions, now.AddDate(0, 0, -14), now.AddDate(0, 0, -7))
	if prior == 0 {
		ind.Description = "no prior-week sessions to compare"
		return ind
	}

	dropPct := float64(prior-recent) / float64(prior) * 100
	ind.Description = fmt.Sprintf("%d sessions this week vs %d last week", recent, prior)
	if dropPct > 40 {
		ind.Detected = true
		ind.Score = clamp(dropPct/2, 0, ind.MaxScore)
	}
	return ind
}

// emotional scans recent session notes for negative-sentiment keywords. More
// than 30% flagged notes is detected.
func emotional(sessions []store.Session, now time.Time) Indicator {
	ind := Indicator{Category: CategoryEmotional, MaxScore: 15}

	var noted, negative int
	cutoff := now.AddDate(0, 0, -14)
	for _, s := range sessions {
		if s.StartedAt.Before(cutoff) || s.StartedAt.After(now) {
			continue
		}
		if strings.TrimSpace(s.Notes) == "" {
			continue
		}
		noted++
		if containsNegative(s.Notes) {
			negative++
		}
	}
	if noted == 0 {
		ind.Description = "no recent session notes"
		return ind
	}

	fraction := float64(negative) / float64(noted) * 100
	ind.Description = fmt.Sprintf("%d of %d recent notes show strain", negative, noted)
	if fraction > 30 {
		ind.Detected = true
		ind.Score = clamp(fraction/2, 0, ind.MaxScore)
	}
	return ind
}

// extremes awards 3 points per triggered behavior: marathon sessions over
// 180 minutes, more than two late-night sessions, or a weekly pace above 50
// hours. Capped at 10.
func extremes(sessions []store.Session, now time.Time) Indicator {
	ind := Indicator{Category: CategoryExtremes, MaxScore: 10}

	cutoff := now.AddDate(0, 0, -14)
	var marathons, lateNights int
	for _, s := range sessions {
		if s.StartedAt.Before(cutoff) || s.StartedAt.After(now) {
			continue
		}
		if s.DurationMin > 180 {
			marathons++
		}
		if isLateNight(s.StartedAt) {
			lateNights++
		}
	}
	weeklyHours := totalHours(sessions, now.AddDate(0, 0, -7), now)

	var behaviors []string
	if marathons > 0 {
		behaviors = append(behaviors, fmt.Sprintf("%d marathon sessions", marathons))
	}
	if lateNights > 2 {
		behaviors = append(behaviors, fmt.Sprintf("%d late-night sessions", lateNights))
	}
	if weeklyHours > 50 {
		behaviors = append(behaviors, fmt.Sprintf("%.0fh pace this week", weeklyHours))
	}

	if len(behaviors) == 0 {
		ind.Description = "no extreme study behaviors"
		return ind
	}

	ind.Detected = true
	ind.Score = clamp(float64(3*len(behaviors)), 0, ind.MaxScore)
	ind.Description = strings.Join(behaviors, ", ")
	return ind
}

// isLateNight reports whether t falls in the 23:00-04:00 band.
func isLateNight(t time.Time) bool {
	h := t.Hour()
	return h >= 23 || h < 4
}

func containsNegative(notes string) bool {
	lower := strings.ToLower(notes)
	for _, kw := range negativeKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// focusAverage returns the mean focus score of sessions in [from, to), or -1
// when no session in the window has a recorded focus score.
func focusAverage(sessions []store.Session, from, to time.Time) float64 {
	var sum float64
	var n int
	for _, s := range sessions {
		if s.StartedAt.Before(from) || !s.StartedAt.Before(to) {
			continue
		}
		if s.Focus == nil {
			continue
		}
		sum += s.FocusOrDefault(0)
		n++
	}
	if n == 0 {
		return -1
	}
	return sum / float64(n)
}

// scoreAverage returns the mean assessment score in [from, to), or -1 when
// the window is empty.
func scoreAverage(assessments []store.Assessment, from, to time.Time) float64 {
	var sum float64
	var n int
	for _, a := range assessments {
		if a.TakenAt.Before(from) || !a.TakenAt.Before(to) {
			continue
		}
		sum += a.ScorePercent
		n++
	}
	if n == 0 {
		return -1
	}
	return sum / float64(n)
}

func totalHours(sessions []store.Session, from, to time.Time) float64 {
	var minutes int
	for _, s := range sessions {
		if s.StartedAt.Before(from) || !s.StartedAt.Before(to) {
			continue
		}
		minutes += s.DurationMin
	}
	return float64(minutes) / 60
}

func countBetween(sessions []store.Session, from, to time.Time) int {
	n := 0
	for _, s := range sessions {
		if s.StartedAt.Before(from) || !s.StartedAt.Before(to) {
			continue
		}
		n++
	}
	return n
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

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
