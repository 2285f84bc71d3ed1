package learnstyle

import (
	"time"

	"github.com/rlopes/studypulse/internal/store"
)

// Duration buckets for the concentration pattern, in minutes.
const (
	sprintMaxMin = 30
	steadyMaxMin = 60
)

// optimalSessionMin is the representative session length per pattern.
var optimalSessionMin = map[string]int{
	PatternSprint:   25,
	PatternSteady:   45,
	PatternMarathon: 90,
}

// concentrationPattern buckets sessions by duration and picks the bucket
// with the highest average focus. Fewer than 5 sessions with a focus score
// fall back to steady/45.
func concentrationPattern(sessions []store.Session) (string, int) {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	qualifying := 0
	for _, s := range sessions {
		if s.Focus == nil {
			continue
		}
		qualifying++
		bucket := PatternMarathon
		switch {
		case s.DurationMin <= sprintMaxMin:
			bucket = PatternSprint
		case s.DurationMin <= steadyMaxMin:
			bucket = PatternSteady
		}
		sums[bucket] += s.FocusOrDefault(0)
		counts[bucket]++
	}
	if qualifying < minPatternSessions {
		return PatternSteady, optimalSessionMin[PatternSteady]
	}

	best := PatternSteady
	bestAvg := -1.0
	// Fixed iteration order keeps ties deterministic.
	for _, bucket := range []string{PatternSprint, PatternSteady, PatternMarathon} {
		if counts[bucket] == 0 {
			continue
		}
		avg := sums[bucket] / float64(counts[bucket])
		if avg > bestAvg {
			best = bucket
			bestAvg = avg
		}
	}
	return best, optimalSessionMin[best]
}

// bestTimeOfDay buckets sessions by start hour and picks the bucket with
// the highest average focus, defaulting to morning with fewer than 5
// qualifying sessions.
func bestTimeOfDay(sessions []store.Session) string {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	qualifying := 0
	for _, s := range sessions {
		if s.Focus == nil {
			continue
		}
		qualifying++
		bucket := timeOfDay(s.StartedAt.Hour())
		sums[bucket] += s.FocusOrDefault(0)
		counts[bucket]++
	}
	if qualifying < minPatternSessions {
		return TimeMorning
	}

	best := TimeMorning
	bestAvg := -1.0
	for _, bucket := range []string{TimeMorning, TimeAfternoon, TimeEvening, TimeNight} {
		if counts[bucket] == 0 {
			continue
		}
		avg := sums[bucket] / float64(counts[bucket])
		if avg > bestAvg {
			best = bucket
			bestAvg = avg
		}
	}
	return best
}

// TimeOfDayBucket returns the bucket for a moment in time.
func TimeOfDayBucket(t time.Time) string {
	return timeOfDay(t.Hour())
}

// timeOfDay maps an hour to its bucket: morning 5-11, afternoon 12-16,
// evening 17-21, night 22-4.
func timeOfDay(hour int) string {
	switch {
	case hour >= 5 && hour <= 11:
		return TimeMorning
	case hour >= 12 && hour <= 16:
		return TimeAfternoon
	case hour >= 17 && hour <= 21:
		return TimeEvening
	default:
		return TimeNight
	}
}
