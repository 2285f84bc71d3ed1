package recommend

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/rlopes/studypulse/internal/burnout"
)

// rank deduplicates by (type, title) keeping the first occurrence, then
// orders by priority. Ties keep their discovery order so repeated runs over
// unchanged data produce the same list.
func rank(recs []Recommendation, now time.Time) []Recommendation {
	type key struct{ typ, title string }
	recs = lo.UniqBy(recs, func(r Recommendation) key {
		return key{r.Type, r.Title}
	})

	sort.SliceStable(recs, func(i, j int) bool {
		return rankOf(recs[i].Priority) < rankOf(recs[j].Priority)
	})

	for i := range recs {
		recs[i].ID = uuid.NewString()
		recs[i].CreatedAt = now
	}
	return recs
}

func rankOf(p Priority) int {
	r, ok := priorityRank[p]
	if !ok {
		return len(priorityRank)
	}
	return r
}

// summarize derives the health rollup from the ranked list and the burnout
// severity that fed it.
func summarize(recs []Recommendation, signals Signals) Summary {
	urgent := 0
	high := 0
	optimizations := 0
	for _, r := range recs {
		switch r.Priority {
		case PriorityUrgent:
			urgent++
		case PriorityHigh:
			high++
		default:
			optimizations++
		}
	}

	return Summary{
		CriticalIssues:            urgent,
		OptimizationOpportunities: optimizations,
		OverallHealth:             healthFor(urgent, high, signals),
	}
}

func healthFor(urgent, high int, signals Signals) string {
	burnoutCritical := signals.Burnout != nil && signals.Burnout.Severity == burnout.SeverityCritical
	burnoutHigh := signals.Burnout != nil && signals.Burnout.Severity == burnout.SeverityHigh
	switch {
	case burnoutCritical || urgent >= 3:
		return HealthCritical
	case urgent >= 1 || burnoutHigh:
		return HealthNeedsAttention
	case high >= 2:
		return HealthFair
	case high == 1:
		return HealthGood
	default:
		return HealthExcellent
	}
}
