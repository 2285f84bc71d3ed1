package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Goal is a learner-defined target with a deadline.
type Goal struct {
	ent.Schema
}

func (Goal) Fields() []ent.Field {
	return []ent.Field{
		field.String("title").
			NotEmpty(),
		field.Int("subject_id").
			Optional().
			Comment("Subject the goal applies to, 0 for cross-subject goals"),
		field.Float("target_value"),
		field.Float("current_value").
			Default(0),
		field.Time("due_at").
			Optional().
			Nillable(),
		field.String("status").
			Default("on_track").
			Comment("on_track, at_risk, behind or done"),
	}
}

func (Goal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("subject_id"),
	}
}
