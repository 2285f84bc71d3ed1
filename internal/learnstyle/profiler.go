package learnstyle

import (
	"sort"

	"github.com/rlopes/studypulse/internal/store"
)

const (
	// Method score weights: frequency 40%, focus 30%, duration 30%.
	frequencyWeight = 40.0
	focusWeight     = 30.0
	durationWeight  = 30.0

	// durationCapMin caps the duration component: longer sessions than
	// this earn no extra credit.
	durationCapMin = 90.0

	// performanceBonusMax scales the method score by up to +20% for
	// methods linked to good assessment results.
	performanceBonusMax = 0.20

	// linkWindowDays pairs a session with assessments of the same subject
	// taken within this many days after it.
	linkWindowDays = 7

	// multimodalMinBuckets and multimodalFloor: with at least 3 buckets
	// above 20 points no single style dominates.
	multimodalMinBuckets = 3
	multimodalFloor      = 20.0

	// minPatternSessions is the qualifying-session floor below which the
	// pattern fields fall back to their defaults.
	minPatternSessions = 5

	// confidenceFullAt is the session count at which profile confidence
	// reaches 100.
	confidenceFullAt = 20
)

// Concentration patterns.
const (
	PatternSprint   = "sprint"
	PatternSteady   = "steady"
	PatternMarathon = "marathon"
)

// Times of day.
const (
	TimeMorning   = "morning"
	TimeAfternoon = "afternoon"
	TimeEvening   = "evening"
	TimeNight     = "night"
)

// Profile is the learner's method-preference summary. StyleScores sum to
// 100 whenever any method could be scored.
type Profile struct {
	StyleScores          map[Style]float64 `json:"style_scores"`
	DominantStyle        Style             `json:"dominant_style"`
	OptimalSessionMin    int               `json:"optimal_session_min"`
	BestTimeOfDay        string            `json:"best_time_of_day"`
	ConcentrationPattern string            `json:"concentration_pattern"`
	Confidence           float64           `json:"confidence"`
	SessionCount         int               `json:"session_count"`
	UnclassifiedMethods  []string          `json:"unclassified_methods,omitempty"`
}

// methodAgg accumulates per-method usage while scoring.
type methodAgg struct {
	count       int
	focusSum    float64
	focusN      int
	durationSum int
	linkedSum   float64
	linkedN     int
}

// BuildProfile scores the four style buckets from session history and
// linked assessment performance. Sessions without a recorded method
// contribute to the pattern fields but not to style scores.
func BuildProfile(sessions []store.Session, assessments []store.Assessment) *Profile {
	p := &Profile{
		StyleScores:          make(map[Style]float64, len(AllStyles)),
		DominantStyle:        StyleMultimodal,
		OptimalSessionMin:    45,
		BestTimeOfDay:        TimeMorning,
		ConcentrationPattern: PatternSteady,
		SessionCount:         len(sessions),
	}
	for _, s := range AllStyles {
		p.StyleScores[s] = 0
	}

	methods := make(map[string]*methodAgg)
	unclassified := make(map[string]bool)
	for _, s := range sessions {
		if s.Method == "" {
			continue
		}
		if _, ok := StyleFor(s.Method); !ok {
			unclassified[s.Method] = true
			continue
		}
		agg := methods[s.Method]
		if agg == nil {
			agg = &methodAgg{}
			methods[s.Method] = agg
		}
		agg.count++
		agg.durationSum += s.DurationMin
		if s.Focus != nil {
			agg.focusSum += s.FocusOrDefault(0)
			agg.focusN++
		}
		if score, ok := linkedPerformance(s, assessments); ok {
			agg.linkedSum += score
			agg.linkedN++
		}
	}

	var classified int
	for _, agg := range methods {
		classified += agg.count
	}

	if classified > 0 {
		for method, agg := range methods {
			style, _ := StyleFor(method)
			p.StyleScores[style] += methodScore(agg, classified)
		}
		normalize(p.StyleScores)
		p.DominantStyle = dominantStyle(p.StyleScores)
	}

	p.ConcentrationPattern, p.OptimalSessionMin = concentrationPattern(sessions)
	p.BestTimeOfDay = bestTimeOfDay(sessions)
	p.Confidence = confidence(len(sessions))

	for m := range unclassified {
		p.UnclassifiedMethods = append(p.UnclassifiedMethods, m)
	}
	sort.Strings(p.UnclassifiedMethods)

	return p
}

// methodScore combines frequency, focus and duration components, then
// applies the linked-performance bonus.
func methodScore(agg *methodAgg, totalClassified int) float64 {
	frequency := float64(agg.count) / float64(totalClassified) * frequencyWeight

	focus := 0.0
	if agg.focusN > 0 {
		focus = agg.focusSum / float64(agg.focusN) / 10 * focusWeight
	}

	avgDuration := float64(agg.durationSum) / float64(agg.count)
	durationRatio := avgDuration / durationCapMin
	if durationRatio > 1 {
		durationRatio = 1
	}
	duration := durationRatio * durationWeight

	score := frequency + focus + duration
	if agg.linkedN > 0 {
		avgLinked := agg.linkedSum / float64(agg.linkedN)
		score *= 1 + performanceBonusMax*(avgLinked/100)
	}
	return score
}

// linkedPerformance finds the average score of assessments in the same
// subject taken within 7 days after the session.
func linkedPerformance(s store.Session, assessments []store.Assessment) (float64, bool) {
	if s.SubjectID == 0 {
		return 0, false
	}
	var sum float64
	var n int
	cutoff := s.StartedAt.AddDate(0, 0, linkWindowDays)
	for _, a := range assessments {
		if a.SubjectID != s.SubjectID {
			continue
		}
		if a.TakenAt.Before(s.StartedAt) || a.TakenAt.After(cutoff) {
			continue
		}
		sum += a.ScorePercent
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// normalize rescales the bucket totals to sum to 100.
func normalize(scores map[Style]float64) {
	var total float64
	for _, v := range scores {
		total += v
	}
	if total == 0 {
		return
	}
	for k, v := range scores {
		scores[k] = v / total * 100
	}
}

// dominantStyle picks the highest bucket, or multimodal when at least 3
// buckets exceed 20 points.
func dominantStyle(scores map[Style]float64) Style {
	above := 0
	best := AllStyles[0]
	for _, s := range AllStyles {
		if scores[s] > multimodalFloor {
			above++
		}
		if scores[s] > scores[best] {
			best = s
		}
	}
	if above >= multimodalMinBuckets {
		return StyleMultimodal
	}
	return best
}

func confidence(sessionCount int) float64 {
	c := float64(sessionCount) / confidenceFullAt * 100
	if c > 100 {
		return 100
	}
	return c
}
