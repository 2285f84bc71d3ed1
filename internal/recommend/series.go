package recommend

import (
	"sort"
	"time"

	"github.com/rlopes/studypulse/internal/store"
	"github.com/rlopes/studypulse/internal/trend"
)

// Trend metric names accepted by the synthesizer and the CLI.
const (
	MetricStudyTime   = "study_time"
	MetricFocus       = "focus"
	MetricPerformance = "performance"
)

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DailyStudyMinutes aggregates sessions into one sample per calendar day,
// with days that had no sessions filled in as zero. Rest days carry real
// signal for trend detection, unlike gaps in focus or score data.
func DailyStudyMinutes(sessions []store.Session) []trend.Sample {
	if len(sessions) == 0 {
		return nil
	}
	totals := make(map[time.Time]float64)
	for _, s := range sessions {
		totals[dayOf(s.StartedAt)] += float64(s.DurationMin)
	}
	first, last := dayOf(sessions[0].StartedAt), dayOf(sessions[0].StartedAt)
	for day := range totals {
		if day.Before(first) {
			first = day
		}
		if day.After(last) {
			last = day
		}
	}

	var samples []trend.Sample
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		samples = append(samples, trend.Sample{Date: day, Value: totals[day]})
	}
	return samples
}

// DailyFocus averages session focus per calendar day. Sessions without a
// focus rating and days without any rated session are skipped entirely.
func DailyFocus(sessions []store.Session) []trend.Sample {
	sums := make(map[time.Time]float64)
	counts := make(map[time.Time]int)
	for _, s := range sessions {
		if s.Focus == nil {
			continue
		}
		day := dayOf(s.StartedAt)
		sums[day] += float64(*s.Focus)
		counts[day]++
	}
	return averagedSamples(sums, counts)
}

// DailyScores averages assessment scores per calendar day.
func DailyScores(assessments []store.Assessment) []trend.Sample {
	sums := make(map[time.Time]float64)
	counts := make(map[time.Time]int)
	for _, a := range assessments {
		day := dayOf(a.TakenAt)
		sums[day] += a.ScorePercent
		counts[day]++
	}
	return averagedSamples(sums, counts)
}

func averagedSamples(sums map[time.Time]float64, counts map[time.Time]int) []trend.Sample {
	if len(sums) == 0 {
		return nil
	}
	samples := make([]trend.Sample, 0, len(sums))
	for day, sum := range sums {
		samples = append(samples, trend.Sample{Date: day, Value: sum / float64(counts[day])})
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].Date.Before(samples[j].Date) })
	return samples
}
