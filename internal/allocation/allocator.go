package allocation

import (
	"sort"
	"time"
)

// Priority tiers with inclusive need-score cutoffs 75/55/35.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

// Allocation is one subject's share of the weekly plan.
type Allocation struct {
	SubjectID        int     `json:"subject_id"`
	SubjectName      string  `json:"subject_name"`
	NeedScore        float64 `json:"need_score"`
	UrgencyFactor    float64 `json:"urgency_factor"`
	RecommendedHours float64 `json:"recommended_hours"`
	CurrentHours     float64 `json:"current_hours"`
	Gap              float64 `json:"gap"`
	Priority         string  `json:"priority"`
}

// Plan is the weekly allocation across all subjects plus a day-by-day
// schedule of study blocks.
type Plan struct {
	AvailableWeeklyHours float64      `json:"available_weekly_hours"`
	Allocations          []Allocation `json:"allocations"`
	Schedule             []DayPlan    `json:"schedule"`
	GeneratedAt          time.Time    `json:"generated_at"`
}

// Allocate scores every subject and splits availableWeeklyHours between them
// in proportion to need x urgency. When total weighted need is zero no hours
// are allocated. Allocations are ordered highest need first (ties by name).
func Allocate(stats []SubjectStats, availableWeeklyHours float64, now time.Time) *Plan {
	plan := &Plan{
		AvailableWeeklyHours: availableWeeklyHours,
		GeneratedAt:          now,
	}

	var weightedTotal float64
	for _, st := range stats {
		need := NeedScore(st, now)
		urgency := UrgencyFactor(st.Subject.ExamAt, now)
		weightedTotal += need * urgency
		plan.Allocations = append(plan.Allocations, Allocation{
			SubjectID:     st.Subject.ID,
			SubjectName:   st.Subject.Name,
			NeedScore:     need,
			UrgencyFactor: urgency,
			CurrentHours:  st.CurrentWeeklyHours,
			Priority:      priorityFor(need),
		})
	}

	for i := range plan.Allocations {
		a := &plan.Allocations[i]
		if weightedTotal > 0 {
			a.RecommendedHours = availableWeeklyHours * (a.NeedScore * a.UrgencyFactor) / weightedTotal
		}
		a.Gap = a.RecommendedHours - a.CurrentHours
	}

	sort.SliceStable(plan.Allocations, func(i, j int) bool {
		if plan.Allocations[i].NeedScore != plan.Allocations[j].NeedScore {
			return plan.Allocations[i].NeedScore > plan.Allocations[j].NeedScore
		}
		return plan.Allocations[i].SubjectName < plan.Allocations[j].SubjectName
	})

	plan.Schedule = buildWeekSchedule(plan.Allocations)
	return plan
}

func priorityFor(need float64) string {
	switch {
	case need >= 75:
		return PriorityCritical
	case need >= 55:
		return PriorityHigh
	case need >= 35:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
