package recommend

import (
	"fmt"
	"time"

	"github.com/rlopes/studypulse/internal/allocation"
	"github.com/rlopes/studypulse/internal/burnout"
	"github.com/rlopes/studypulse/internal/forgetting"
	"github.com/rlopes/studypulse/internal/learnstyle"
	"github.com/rlopes/studypulse/internal/store"
	"github.com/rlopes/studypulse/internal/trend"
)

// maxListedTopics caps how many item topics a single recommendation names.
const maxListedTopics = 5

func burnoutRecommendations(a *burnout.Assessment) []Recommendation {
	if a == nil || a.Severity == burnout.SeverityNone {
		return nil
	}

	priority := PriorityMedium
	switch a.Severity {
	case burnout.SeverityCritical, burnout.SeverityHigh:
		priority = PriorityUrgent
	case burnout.SeverityModerate:
		priority = PriorityHigh
	}

	var evidence []string
	for _, ind := range a.Indicators {
		if ind.Detected {
			evidence = append(evidence, fmt.Sprintf("%s: %s", ind.Category, ind.Description))
		}
	}

	return []Recommendation{{
		Type:     TypeBurnout,
		Priority: priority,
		Title:    fmt.Sprintf("Burnout risk is %s", a.Severity),
		Description: fmt.Sprintf(
			"Your burnout risk score is %.0f/100. Recovery matters more than any single study session right now.",
			a.TotalScore),
		Rationale:   "Sustained overload degrades retention across every subject, so it outranks subject-level fixes.",
		ActionItems: a.Recommendations,
		Confidence:  80,
		Evidence:    evidence,
		Tags:        []string{"wellbeing"},
	}}
}

func reviewRecommendations(due []store.ReviewItem, atRisk []forgetting.ItemRisk) []Recommendation {
	var out []Recommendation

	if len(due) > 0 {
		priority := PriorityMedium
		if len(due) >= 5 {
			priority = PriorityHigh
		}
		out = append(out, Recommendation{
			Type:     TypeReview,
			Priority: priority,
			Title:    fmt.Sprintf("%d topics are due for review", len(due)),
			Description: fmt.Sprintf(
				"Reviewing now, before retention drops below %.0f%%, keeps intervals growing instead of resetting.",
				forgetting.TargetRetention),
			Rationale:   "Overdue reviews decay fastest; a short session today saves a relearn later.",
			ActionItems: topicActions(due),
			Confidence:  90,
			Tags:        []string{"spaced-repetition"},
		})
	}

	if len(atRisk) > 0 {
		var actions, evidence []string
		for i, r := range atRisk {
			if i >= maxListedTopics {
				actions = append(actions, fmt.Sprintf("...and %d more", len(atRisk)-maxListedTopics))
				break
			}
			actions = append(actions, fmt.Sprintf("Relearn %q", r.Item.Topic))
			evidence = append(evidence, fmt.Sprintf("%s at %.0f%% estimated retention", r.Item.Topic, r.Retention))
		}
		out = append(out, Recommendation{
			Type:     TypeRetention,
			Priority: PriorityHigh,
			Title:    fmt.Sprintf("%d topics are close to forgotten", len(atRisk)),
			Description: "These topics have decayed past the review target and need active relearning, " +
				"not just a quick pass.",
			Rationale:   "Below roughly 60% retention a topic behaves like new material again.",
			ActionItems: actions,
			Confidence:  75,
			Evidence:    evidence,
			Tags:        []string{"spaced-repetition"},
		})
	}
	return out
}

func topicActions(items []store.ReviewItem) []string {
	var actions []string
	for i, item := range items {
		if i >= maxListedTopics {
			actions = append(actions, fmt.Sprintf("...and %d more", len(items)-maxListedTopics))
			break
		}
		actions = append(actions, fmt.Sprintf("Review %q", item.Topic))
	}
	return actions
}

// trendMetricLabels maps metric keys to readable phrases.
var trendMetricLabels = map[string]string{
	MetricStudyTime:   "daily study time",
	MetricFocus:       "focus",
	MetricPerformance: "assessment scores",
}

func trendRecommendations(results []*trend.Result) []Recommendation {
	var out []Recommendation
	for _, r := range results {
		if r == nil {
			continue
		}
		label, ok := trendMetricLabels[r.Metric]
		if !ok {
			label = r.Metric
		}
		switch r.Trend {
		case trend.Declining:
			priority := PriorityMedium
			if r.Metric == MetricPerformance {
				priority = PriorityHigh
			}
			out = append(out, Recommendation{
				Type:     TypeTrend,
				Priority: priority,
				Title:    fmt.Sprintf("Your %s is declining", label),
				Description: fmt.Sprintf(
					"Recent average %.1f, down %.1f%% from the period before (%.2f%%/day).",
					r.RecentAvg, -r.ChangePercent, r.MomentumPct),
				Rationale:   "Catching a decline inside a week is far cheaper than recovering from a month of drift.",
				ActionItems: decliningActions(r.Metric),
				Confidence:  r.Confidence,
				Tags:        []string{"trend", r.Metric},
			})
		case trend.Improving:
			if r.Metric != MetricPerformance {
				continue
			}
			out = append(out, Recommendation{
				Type:     TypeTrend,
				Priority: PriorityLow,
				Title:    "Your scores are trending up",
				Description: fmt.Sprintf(
					"Assessment scores are up %.1f%% over the last window. Whatever you changed recently is working.",
					r.ChangePercent),
				Rationale:   "Naming what works makes it repeatable.",
				ActionItems: []string{"Note which methods you used most this week and keep them"},
				Confidence:  r.Confidence,
				Tags:        []string{"trend", r.Metric},
			})
		}
	}
	return out
}

func decliningActions(metric string) []string {
	switch metric {
	case MetricStudyTime:
		return []string{
			"Block one fixed study slot per day, even a short one",
			"Start with your easiest subject to lower the barrier to sitting down",
		}
	case MetricFocus:
		return []string{
			"Shorten sessions and take a real break between them",
			"Move your hardest subject to the time of day your focus peaks",
		}
	case MetricPerformance:
		return []string{
			"Revisit the fundamentals of your weakest recent assessment",
			"Switch from passive review to practice problems for a week",
		}
	default:
		return nil
	}
}

// allocationGapHours is the weekly shortfall at which a subject earns its
// own recommendation.
const allocationGapHours = 2.0

func allocationRecommendations(plan *allocation.Plan) []Recommendation {
	if plan == nil {
		return nil
	}
	var out []Recommendation
	for _, a := range plan.Allocations {
		if a.Priority == allocation.PriorityCritical {
			out = append(out, Recommendation{
				Type:     TypeAllocation,
				Priority: PriorityUrgent,
				Title:    fmt.Sprintf("%s needs immediate attention", a.SubjectName),
				Description: fmt.Sprintf(
					"Need score %.0f/100. Plan allocates %.1fh this week versus your current %.1fh.",
					a.NeedScore, a.RecommendedHours, a.CurrentHours),
				Rationale:   "A critical need score means several pressure signals stack on one subject at once.",
				ActionItems: []string{fmt.Sprintf("Schedule %.1fh for %s this week, front-loaded early in the week", a.RecommendedHours, a.SubjectName)},
				Confidence:  85,
				Tags:        []string{"allocation"},
			})
			continue
		}
		if a.Gap >= allocationGapHours {
			out = append(out, Recommendation{
				Type:     TypeAllocation,
				Priority: PriorityMedium,
				Title:    fmt.Sprintf("Give %s more time this week", a.SubjectName),
				Description: fmt.Sprintf(
					"You spend %.1fh/week on %s but its need score of %.0f suggests %.1fh.",
					a.CurrentHours, a.SubjectName, a.NeedScore, a.RecommendedHours),
				Rationale:   "Hours tend to drift toward comfortable subjects rather than needy ones.",
				ActionItems: []string{fmt.Sprintf("Add %.1fh of %s, taken from your lowest-need subject", a.Gap, a.SubjectName)},
				Confidence:  70,
				Tags:        []string{"allocation"},
			})
		}
	}
	return out
}

// styleSuggestions maps each dominant style to concrete format advice.
var styleSuggestions = map[learnstyle.Style][]string{
	learnstyle.StyleVisual: {
		"Convert dense notes into diagrams or mind maps",
		"Prefer charts and annotated figures over prose summaries",
	},
	learnstyle.StyleAuditory: {
		"Explain topics out loud or record yourself summarizing them",
		"Swap some reading time for lectures or podcasts",
	},
	learnstyle.StyleKinesthetic: {
		"Lead with practice problems before reading theory",
		"Use labs, simulations, or hands-on projects where the subject allows",
	},
	learnstyle.StyleReadingWriting: {
		"Rewrite key concepts in your own words after each session",
		"Summarize each chapter before moving on",
	},
}

func profileRecommendations(p *learnstyle.Profile, now time.Time) []Recommendation {
	if p == nil {
		return nil
	}
	var out []Recommendation

	if p.DominantStyle != learnstyle.StyleMultimodal && p.Confidence >= 50 {
		out = append(out, Recommendation{
			Type:     TypeLearningStyle,
			Priority: PriorityLow,
			Title:    fmt.Sprintf("Lean into %s study methods", p.DominantStyle),
			Description: fmt.Sprintf(
				"Across %d sessions, %s methods earned %.0f/100 of your weighted style score.",
				p.SessionCount, p.DominantStyle, p.StyleScores[p.DominantStyle]),
			Rationale:   "Methods that match how you already work cost less willpower per hour.",
			ActionItems: styleSuggestions[p.DominantStyle],
			Confidence:  p.Confidence,
			Tags:        []string{"learning-style"},
		})
	}

	if timeOfDayFor(now) != p.BestTimeOfDay && p.Confidence >= 50 {
		out = append(out, Recommendation{
			Type:     TypeSchedule,
			Priority: PriorityLow,
			Title:    fmt.Sprintf("Your best sessions happen in the %s", p.BestTimeOfDay),
			Description: fmt.Sprintf(
				"Focus peaks in %s sessions, and your sweet spot is around %d minutes per sitting.",
				p.BestTimeOfDay, p.OptimalSessionMin),
			Rationale:   "Moving hard material into your peak window is free performance.",
			ActionItems: []string{
				fmt.Sprintf("Schedule your hardest subject in the %s", p.BestTimeOfDay),
				fmt.Sprintf("Plan sessions of roughly %d minutes", p.OptimalSessionMin),
			},
			Confidence: p.Confidence,
			Tags:       []string{"schedule"},
		})
	}
	return out
}

// goalAttentionWindow is how close a due date must be for an open goal to
// surface in recommendations.
const goalAttentionWindow = 14 * 24 * time.Hour

func goalRecommendations(goals []store.Goal, now time.Time) []Recommendation {
	var out []Recommendation
	for _, g := range goals {
		if g.DueAt == nil || g.DueAt.Sub(now) > goalAttentionWindow || g.DueAt.Before(now) {
			continue
		}
		if g.TargetValue <= 0 || g.CurrentValue >= g.TargetValue {
			continue
		}
		days := int(g.DueAt.Sub(now).Hours()/24) + 1
		remaining := g.TargetValue - g.CurrentValue
		priority := PriorityMedium
		if days <= 7 {
			priority = PriorityHigh
		}
		out = append(out, Recommendation{
			Type:     TypeGoal,
			Priority: priority,
			Title:    fmt.Sprintf("Goal %q is due in %d days", g.Title, days),
			Description: fmt.Sprintf(
				"You are at %.0f of %.0f with %d days left.",
				g.CurrentValue, g.TargetValue, days),
			Rationale:   "Spreading the remaining work across the days left avoids a last-minute cram.",
			ActionItems: []string{fmt.Sprintf("Close %.1f per day until the due date", remaining/float64(days))},
			Confidence:  95,
			Tags:        []string{"goal"},
		})
	}
	return out
}

func timeOfDayFor(t time.Time) string {
	return learnstyle.TimeOfDayBucket(t)
}
