// Package recommend synthesizes the outputs of the analysis components
// into a single deduplicated, priority-ranked list of recommendations.
package recommend

import (
	"time"

	"github.com/rlopes/studypulse/internal/allocation"
	"github.com/rlopes/studypulse/internal/burnout"
	"github.com/rlopes/studypulse/internal/forgetting"
	"github.com/rlopes/studypulse/internal/learnstyle"
	"github.com/rlopes/studypulse/internal/store"
	"github.com/rlopes/studypulse/internal/trend"
)

// Priority orders recommendations. Urgent sorts first.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// priorityRank is the sort order; unknown priorities sink to the bottom.
var priorityRank = map[Priority]int{
	PriorityUrgent: 0,
	PriorityHigh:   1,
	PriorityMedium: 2,
	PriorityLow:    3,
}

// Recommendation types, one per signal source.
const (
	TypeBurnout       = "burnout"
	TypeReview        = "review"
	TypeRetention     = "retention"
	TypeTrend         = "trend"
	TypeAllocation    = "allocation"
	TypeLearningStyle = "learning_style"
	TypeGoal          = "goal"
	TypeSchedule      = "schedule"
)

// Recommendation is one synthesized, immutable suggestion.
type Recommendation struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Priority    Priority `json:"priority"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Rationale   string   `json:"rationale"`
	ActionItems []string `json:"action_items"`
	Confidence  float64  `json:"confidence"`
	Evidence    []string `json:"evidence"`
	Tags        []string `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

// Signals is the raw analysis output the bundle was derived from. Fields
// are nil when the corresponding analysis was gated out or failed.
type Signals struct {
	Burnout    *burnout.Assessment  `json:"burnout,omitempty"`
	Trends     []*trend.Result      `json:"trends,omitempty"`
	Allocation *allocation.Plan     `json:"allocation,omitempty"`
	Profile    *learnstyle.Profile  `json:"profile,omitempty"`
	Due        []store.ReviewItem   `json:"due,omitempty"`
	AtRisk     []forgetting.ItemRisk `json:"at_risk,omitempty"`
	OpenGoals  []store.Goal         `json:"open_goals,omitempty"`
}

// Summary condenses the bundle for display.
type Summary struct {
	CriticalIssues            int    `json:"critical_issues"`
	OptimizationOpportunities int    `json:"optimization_opportunities"`
	OverallHealth             string `json:"overall_health"`
}

// Overall health grades.
const (
	HealthExcellent      = "excellent"
	HealthGood           = "good"
	HealthFair           = "fair"
	HealthNeedsAttention = "needs_attention"
	HealthCritical       = "critical"
)

// Bundle is the synthesizer's final output: the ranked recommendation list
// plus the raw signals it was derived from.
type Bundle struct {
	Recommendations []Recommendation `json:"recommendations"`
	Summary         Summary          `json:"summary"`
	Signals         Signals          `json:"signals"`
	GeneratedAt     time.Time        `json:"generated_at"`
}
