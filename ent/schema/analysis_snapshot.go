package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalysisSnapshot stores a point-in-time copy of a derived analysis result
// (burnout assessment, trend report, allocation plan, learning profile,
// recommendation bundle). Snapshots are informational only; every analysis
// is recomputed from raw records.
type AnalysisSnapshot struct {
	ent.Schema
}

func (AnalysisSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").
			NotEmpty().
			Comment("burnout, trend, allocation, profile or recommendations"),
		field.Time("taken_at").
			Default(time.Now).
			Immutable(),
		field.JSON("data", map[string]any{}).
			Comment("Serialized analysis result"),
	}
}

func (AnalysisSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind", "taken_at"),
	}
}
