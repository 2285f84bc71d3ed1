package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rlopes/studypulse/ent"
	"github.com/rlopes/studypulse/ent/studysession"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Append(ctx context.Context, s Session) (int, error) {
	builder := r.client.StudySession.Create().
		SetStartedAt(s.StartedAt).
		SetDurationMin(s.DurationMin).
		SetSubjectID(s.SubjectID).
		SetMethod(s.Method).
		SetNotes(s.Notes)

	if s.Focus != nil {
		builder = builder.SetFocus(*s.Focus)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save session: %w", err)
	}
	return row.ID, nil
}

func (r *sessionRepo) ListSince(ctx context.Context, since time.Time) ([]Session, error) {
	rows, err := r.client.StudySession.Query().
		Where(studysession.StartedAtGTE(since)).
		Order(ent.Asc(studysession.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	return sessionsFromEnt(rows), nil
}

func (r *sessionRepo) ListBySubject(ctx context.Context, subjectID int, since time.Time) ([]Session, error) {
	rows, err := r.client.StudySession.Query().
		Where(
			studysession.SubjectID(subjectID),
			studysession.StartedAtGTE(since),
		).
		Order(ent.Asc(studysession.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query subject sessions: %w", err)
	}
	return sessionsFromEnt(rows), nil
}

func (r *sessionRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.StudySession.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}

func sessionsFromEnt(rows []*ent.StudySession) []Session {
	out := make([]Session, 0, len(rows))
	for _, row := range rows {
		out = append(out, Session{
			ID:          row.ID,
			StartedAt:   row.StartedAt,
			DurationMin: row.DurationMin,
			Focus:       row.Focus,
			SubjectID:   row.SubjectID,
			Method:      row.Method,
			Notes:       row.Notes,
		})
	}
	return out
}
