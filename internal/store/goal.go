package store

import (
	"context"
	"fmt"

	"github.com/rlopes/studypulse/ent"
	"github.com/rlopes/studypulse/ent/goal"
)

// goalRepo implements GoalRepo using the ent client.
type goalRepo struct {
	client *ent.Client
}

func (r *goalRepo) Create(ctx context.Context, g Goal) (int, error) {
	builder := r.client.Goal.Create().
		SetTitle(g.Title).
		SetSubjectID(g.SubjectID).
		SetTargetValue(g.TargetValue).
		SetCurrentValue(g.CurrentValue).
		SetStatus(g.Status)

	if g.DueAt != nil {
		builder = builder.SetDueAt(*g.DueAt)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save goal: %w", err)
	}
	return row.ID, nil
}

func (r *goalRepo) ListOpen(ctx context.Context) ([]Goal, error) {
	rows, err := r.client.Goal.Query().
		Where(goal.StatusNEQ("done")).
		Order(ent.Asc(goal.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query open goals: %w", err)
	}

	out := make([]Goal, 0, len(rows))
	for _, row := range rows {
		out = append(out, Goal{
			ID:           row.ID,
			Title:        row.Title,
			SubjectID:    row.SubjectID,
			TargetValue:  row.TargetValue,
			CurrentValue: row.CurrentValue,
			DueAt:        row.DueAt,
			Status:       row.Status,
		})
	}
	return out, nil
}
