package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rlopes/studypulse/ent"
	"github.com/rlopes/studypulse/ent/assessment"
)

// assessmentRepo implements AssessmentRepo using the ent client.
type assessmentRepo struct {
	client *ent.Client
}

func (r *assessmentRepo) Append(ctx context.Context, a Assessment) (int, error) {
	row, err := r.client.Assessment.Create().
		SetSubjectID(a.SubjectID).
		SetTakenAt(a.TakenAt).
		SetScorePercent(a.ScorePercent).
		SetTitle(a.Title).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save assessment: %w", err)
	}
	return row.ID, nil
}

func (r *assessmentRepo) ListSince(ctx context.Context, since time.Time) ([]Assessment, error) {
	rows, err := r.client.Assessment.Query().
		Where(assessment.TakenAtGTE(since)).
		Order(ent.Asc(assessment.FieldTakenAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query assessments: %w", err)
	}
	return assessmentsFromEnt(rows), nil
}

func (r *assessmentRepo) ListBySubject(ctx context.Context, subjectID int, since time.Time) ([]Assessment, error) {
	rows, err := r.client.Assessment.Query().
		Where(
			assessment.SubjectID(subjectID),
			assessment.TakenAtGTE(since),
		).
		Order(ent.Asc(assessment.FieldTakenAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query subject assessments: %w", err)
	}
	return assessmentsFromEnt(rows), nil
}

func assessmentsFromEnt(rows []*ent.Assessment) []Assessment {
	out := make([]Assessment, 0, len(rows))
	for _, row := range rows {
		out = append(out, Assessment{
			ID:        row.ID,
			SubjectID: row.SubjectID,
			TakenAt:   row.TakenAt,
			// Tolerate bad persisted data rather than failing reads.
			ScorePercent: clampFloat(row.ScorePercent, 0, 100),
			Title:        row.Title,
		})
	}
	return out
}
