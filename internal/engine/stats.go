package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rlopes/studypulse/internal/forgetting"
)

// Stats is the all-time overview shown by the stats command.
type Stats struct {
	Sessions        int     `json:"sessions"`
	TotalHours      float64 `json:"total_hours"`
	Assessments     int     `json:"assessments"`
	AvgScore        float64 `json:"avg_score"`
	ActiveSubjects  int     `json:"active_subjects"`
	ActiveReviews   int     `json:"active_reviews"`
	MasteredReviews int     `json:"mastered_reviews"`
}

// Stats aggregates lifetime counts across the store.
func (e *Engine) Stats(ctx context.Context) (*Stats, error) {
	var st Stats

	sessions, err := e.st.Sessions().ListSince(ctx, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	st.Sessions = len(sessions)
	for _, s := range sessions {
		st.TotalHours += float64(s.DurationMin) / 60
	}

	assessments, err := e.st.Assessments().ListSince(ctx, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("load assessments: %w", err)
	}
	st.Assessments = len(assessments)
	if len(assessments) > 0 {
		total := 0.0
		for _, a := range assessments {
			total += a.ScorePercent
		}
		st.AvgScore = total / float64(len(assessments))
	}

	subjects, err := e.st.Subjects().List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("load subjects: %w", err)
	}
	st.ActiveSubjects = len(subjects)

	active, err := e.st.Reviews().List(ctx, 0, forgetting.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	st.ActiveReviews = len(active)

	mastered, err := e.st.Reviews().List(ctx, 0, forgetting.StatusMastered)
	if err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	st.MasteredReviews = len(mastered)

	return &st, nil
}
