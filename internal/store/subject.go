package store

import (
	"context"
	"fmt"

	"github.com/rlopes/studypulse/ent"
	"github.com/rlopes/studypulse/ent/subject"
)

// subjectRepo implements SubjectRepo using the ent client.
type subjectRepo struct {
	client *ent.Client
}

func (r *subjectRepo) Create(ctx context.Context, s Subject) (int, error) {
	builder := r.client.Subject.Create().
		SetName(s.Name).
		SetDifficulty(s.Difficulty).
		SetPriority(s.Priority).
		SetTargetScore(s.TargetScore)

	if s.ExamAt != nil {
		builder = builder.SetExamAt(*s.ExamAt)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save subject: %w", err)
	}
	return row.ID, nil
}

func (r *subjectRepo) Get(ctx context.Context, id int) (*Subject, error) {
	row, err := r.client.Subject.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get subject: %w", err)
	}
	s := subjectFromEnt(row)
	return &s, nil
}

func (r *subjectRepo) GetByName(ctx context.Context, name string) (*Subject, error) {
	row, err := r.client.Subject.Query().
		Where(subject.Name(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get subject by name: %w", err)
	}
	s := subjectFromEnt(row)
	return &s, nil
}

func (r *subjectRepo) List(ctx context.Context, includeArchived bool) ([]Subject, error) {
	q := r.client.Subject.Query()
	if !includeArchived {
		q = q.Where(subject.Archived(false))
	}
	rows, err := q.Order(ent.Asc(subject.FieldName)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query subjects: %w", err)
	}

	out := make([]Subject, 0, len(rows))
	for _, row := range rows {
		out = append(out, subjectFromEnt(row))
	}
	return out, nil
}

func subjectFromEnt(row *ent.Subject) Subject {
	return Subject{
		ID:          row.ID,
		Name:        row.Name,
		Difficulty:  row.Difficulty,
		Priority:    row.Priority,
		ExamAt:      row.ExamAt,
		TargetScore: row.TargetScore,
		Archived:    row.Archived,
	}
}
