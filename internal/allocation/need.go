// Package allocation scores each subject's need for attention and
// distributes a weekly hour budget proportionally, weighted by deadline
// urgency.
package allocation

import (
	"time"

	"github.com/rlopes/studypulse/internal/store"
)

// SubjectStats carries the per-subject aggregates the need score is
// computed from.
type SubjectStats struct {
	Subject store.Subject

	// LastStudied is the most recent session start, nil if never studied.
	LastStudied *time.Time

	// CurrentWeeklyHours is study time over the trailing 7 days.
	CurrentWeeklyHours float64

	// RecentAvgScore is the mean assessment score over the trailing 30
	// days, -1 when no assessments exist.
	RecentAvgScore float64

	// DueSoon is the count of active review items due within 3 days.
	DueSoon int
}

// NeedScore computes the 0-100 attention need for a subject. Factors are
// additive and can push the raw score negative before clamping.
func NeedScore(st SubjectStats, now time.Time) float64 {
	score := recencyPoints(st.LastStudied, now) +
		performancePoints(st.RecentAvgScore, st.Subject.TargetScore) +
		difficultyPoints(st.Subject.Difficulty) +
		deadlinePoints(st.Subject.ExamAt, now) +
		forgettingPoints(st.DueSoon)
	return clamp(score, 0, 100)
}

// recencyPoints rewards neglect: the longer since the last session, the more
// attention the subject needs. Never-studied subjects get a flat 15.
func recencyPoints(lastStudied *time.Time, now time.Time) float64 {
	if lastStudied == nil {
		return 15
	}
	days := now.Sub(*lastStudied).Hours() / 24
	switch {
	case days <= 3:
		return 0
	case days <= 7:
		return 6
	case days <= 14:
		return 12
	default:
		return 20
	}
}

// performancePoints scores the gap between recent results and the target.
// Exceeding the target by more than 5 points subtracts 10.
func performancePoints(recentAvg, target float64) float64 {
	if recentAvg < 0 {
		return 0
	}
	gap := target - recentAvg
	switch {
	case gap >= 20:
		return 30
	case gap >= 10:
		return 20
	case gap > 0:
		return 10
	case gap < -5:
		return -10
	default:
		return 0
	}
}

func difficultyPoints(difficulty string) float64 {
	switch difficulty {
	case "very_hard":
		return 15
	case "hard":
		return 10
	case "easy":
		return -5
	default:
		return 0
	}
}

// deadlinePoints scores exam proximity in the same buckets the urgency
// factor uses.
func deadlinePoints(examAt *time.Time, now time.Time) float64 {
	days, ok := daysToExam(examAt, now)
	if !ok {
		return 0
	}
	switch {
	case days <= 7:
		return 25
	case days <= 14:
		return 18
	case days <= 30:
		return 10
	default:
		return 0
	}
}

func forgettingPoints(dueSoon int) float64 {
	switch {
	case dueSoon > 5:
		return 10
	case dueSoon >= 1:
		return 5
	default:
		return 0
	}
}

// UrgencyFactor weights a subject's share of the budget by exam proximity.
func UrgencyFactor(examAt *time.Time, now time.Time) float64 {
	days, ok := daysToExam(examAt, now)
	if !ok {
		return 1.0
	}
	switch {
	case days <= 7:
		return 2.0
	case days <= 14:
		return 1.5
	case days <= 30:
		return 1.2
	default:
		return 1.0
	}
}

// daysToExam returns whole days until the exam, false if none is set or it
// has already passed.
func daysToExam(examAt *time.Time, now time.Time) (float64, bool) {
	if examAt == nil {
		return 0, false
	}
	days := examAt.Sub(now).Hours() / 24
	if days < 0 {
		return 0, false
	}
	return days, true
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
