package trend

import "time"

const (
	// weeklyDeviationPercent is how far a weekday's average must deviate
	// from the overall mean to count toward a weekly pattern.
	weeklyDeviationPercent = 15.0

	// minWeekdays is the minimum number of distinct weekdays that must be
	// represented before a weekly pattern can be detected.
	minWeekdays = 5
)

// DayBias is one weekday's deviation from the overall mean.
type DayBias struct {
	Day              time.Weekday `json:"day"`
	Average          float64      `json:"average"`
	DeviationPercent float64      `json:"deviation_percent"`
}

// WeeklyPattern summarizes weekday-linked variation in a metric series.
type WeeklyPattern struct {
	Detected    bool      `json:"detected"`
	OverallMean float64   `json:"overall_mean"`
	Biases      []DayBias `json:"biases"`
}

// DetectWeeklyPattern groups samples by weekday and flags days whose average
// deviates more than 15% from the overall mean. Requires samples spanning at
// least 5 distinct weekdays; returns nil otherwise, or when the overall mean
// is zero.
func DetectWeeklyPattern(samples []Sample) *WeeklyPattern {
	sums := make(map[time.Weekday]float64)
	counts := make(map[time.Weekday]int)
	for _, s := range samples {
		day := s.Date.Weekday()
		sums[day] += s.Value
		counts[day]++
	}
	if len(counts) < minWeekdays {
		return nil
	}

	overall := mean(values(samples))
	if overall == 0 {
		return nil
	}

	pattern := &WeeklyPattern{OverallMean: overall}
	// Iterate Sunday..Saturday for a deterministic bias order.
	for day := time.Sunday; day <= time.Saturday; day++ {
		n, ok := counts[day]
		if !ok {
			continue
		}
		avg := sums[day] / float64(n)
		devPct := (avg - overall) / overall * 100
		if abs(devPct) > weeklyDeviationPercent {
			pattern.Detected = true
			pattern.Biases = append(pattern.Biases, DayBias{
				Day:              day,
				Average:          avg,
				DeviationPercent: devPct,
			})
		}
	}

	return pattern
}
