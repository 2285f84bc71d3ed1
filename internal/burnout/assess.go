package burnout

import (
	"time"

	"github.com/rlopes/studypulse/internal/store"
	"github.com/samber/lo"
)

// Severity tiers with inclusive lower cutoffs 86/76/61/41.
type Severity string

const (
	SeverityNone     Severity = "none"
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// interventionThreshold is the total score at which intervention is flagged.
const interventionThreshold = 60

// Assessment aggregates the five indicators into a 0-100 risk score.
type Assessment struct {
	TotalScore        float64     `json:"total_score"`
	Severity          Severity    `json:"severity"`
	NeedsIntervention bool        `json:"needs_intervention"`
	Indicators        []Indicator `json:"indicators"`
	Recommendations   []string    `json:"recommendations"`
	AssessedAt        time.Time   `json:"assessed_at"`
}

// Assess scores all five indicators over the given session and assessment
// windows. Indicators with insufficient data score zero; the assessment
// itself never fails.
func Assess(sessions []store.Session, assessments []store.Assessment, now time.Time) *Assessment {
	indicators := []Indicator{
		focusDecline(sessions, now),
		effortMismatch(sessions, assessments, now),
		avoidance(sessions, now),
		emotional(sessions, now),
		extremes(sessions, now),
	}

	total := 0.0
	for _, ind := range indicators {
		total += ind.Score
	}
	total = clamp(total, 0, 100)

	severity := severityFor(total)
	return &Assessment{
		TotalScore:        total,
		Severity:          severity,
		NeedsIntervention: total >= interventionThreshold,
		Indicators:        indicators,
		Recommendations:   adviceFor(severity, indicators),
		AssessedAt:        now,
	}
}

func severityFor(total float64) Severity {
	switch {
	case total >= 86:
		return SeverityCritical
	case total >= 76:
		return SeverityHigh
	case total >= 61:
		return SeverityModerate
	case total >= 41:
		return SeverityMild
	default:
		return SeverityNone
	}
}

// severityAdvice is the base guidance per severity tier.
var severityAdvice = map[Severity][]string{
	SeverityCritical: {
		"Stop studying for at least 2 full days and recover",
		"Talk to someone you trust about how studying is going",
	},
	SeverityHigh: {
		"Cut planned study hours in half for the next week",
		"Schedule one full rest day this week",
	},
	SeverityModerate: {
		"Add a 10-minute break to every study hour",
		"Swap one evening session for something you enjoy",
	},
	SeverityMild: {
		"Watch your workload; keep sessions under 90 minutes",
	},
}

// indicatorAdvice is appended for each detected indicator.
var indicatorAdvice = map[string]string{
	CategoryFocusDecline:   "Shorten sessions and study your hardest subject first, while focus is freshest",
	CategoryEffortMismatch: "More hours are not converting into results; change study method before adding time",
	CategoryAvoidance:      "Restart with one small, easy session to rebuild momentum",
	CategoryEmotional:      "Your notes show strain; plan rest before your next long session",
	CategoryExtremes:       "Avoid late-night and marathon sessions; both erode retention",
}

// adviceFor combines tier guidance and per-indicator guidance, deduplicated
// preserving first occurrence.
func adviceFor(severity Severity, indicators []Indicator) []string {
	var out []string
	out = append(out, severityAdvice[severity]...)
	for _, ind := range indicators {
		if !ind.Detected {
			continue
		}
		if advice, ok := indicatorAdvice[ind.Category]; ok {
			out = append(out, advice)
		}
	}
	return lo.Uniq(out)
}
