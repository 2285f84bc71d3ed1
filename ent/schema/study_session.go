package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudySession records a single logged study session.
type StudySession struct {
	ent.Schema
}

func (StudySession) Fields() []ent.Field {
	return []ent.Field{
		field.Time("started_at").
			Default(time.Now).
			Immutable().
			Comment("When the session began"),
		field.Int("duration_min").
			NonNegative().
			Comment("Session length in minutes"),
		field.Int("focus").
			Optional().
			Nillable().
			Comment("Self-reported focus score 0-10, absent if not recorded"),
		field.Int("subject_id").
			Optional().
			Comment("Subject studied, 0 if unattributed"),
		field.String("method").
			Optional().
			Comment("Study method used (flashcards, reading, ...)"),
		field.Text("notes").
			Optional().
			Comment("Free-text notes"),
	}
}

func (StudySession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("started_at"),
		index.Fields("subject_id"),
	}
}
