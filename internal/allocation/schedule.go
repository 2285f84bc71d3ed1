package allocation

import "time"

const (
	// maxBlockHours is the longest single study block in the generated
	// schedule.
	maxBlockHours = 1.5

	// hoursEpsilon absorbs float error when slicing hours into blocks.
	hoursEpsilon = 1e-9
)

// Scheduling windows. Critical-priority subjects are placed in the morning
// window; everything else is flexible.
const (
	WindowMorning  = "morning"
	WindowFlexible = "flexible"
)

// Block is one scheduled study block.
type Block struct {
	SubjectID   int     `json:"subject_id"`
	SubjectName string  `json:"subject_name"`
	Hours       float64 `json:"hours"`
	Window      string  `json:"window"`
}

// DayPlan is the blocks assigned to one weekday.
type DayPlan struct {
	Day    time.Weekday `json:"day"`
	Blocks []Block      `json:"blocks"`
}

// buildWeekSchedule slices each allocation's recommended hours into blocks
// of at most 1.5 hours and deals them round-robin across the 7 weekdays,
// visiting subjects in allocation order (highest need first). The day cursor
// carries across subjects so high-need subjects land earlier in the week.
// The last block of a subject may be shorter; scheduled block totals equal
// the recommended hours exactly.
func buildWeekSchedule(allocations []Allocation) []DayPlan {
	week := make([]DayPlan, 7)
	for i := range week {
		// Week starts on Monday.
		week[i].Day = time.Weekday((int(time.Monday) + i) % 7)
	}

	day := 0
	for _, a := range allocations {
		window := WindowFlexible
		if a.Priority == PriorityCritical {
			window = WindowMorning
		}

		remaining := a.RecommendedHours
		for remaining > hoursEpsilon {
			hours := remaining
			if hours > maxBlockHours {
				hours = maxBlockHours
			}
			week[day%7].Blocks = append(week[day%7].Blocks, Block{
				SubjectID:   a.SubjectID,
				SubjectName: a.SubjectName,
				Hours:       hours,
				Window:      window,
			})
			remaining -= hours
			day++
		}
	}
	return week
}
