package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewItem is one spaced-repetition topic tracked by the forgetting-curve
// scheduler. Items are never hard-deleted; retiring an item sets its status
// to paused or mastered.
type ReviewItem struct {
	ent.Schema
}

// ReviewEventData is the serialized form of one logged review, stored as an
// append-only JSON list on the item.
type ReviewEventData struct {
	Date         time.Time `json:"date"`
	Confidence   int       `json:"confidence"`
	TimeSpentMin int       `json:"time_spent_min"`
	Result       string    `json:"result"`
}

func (ReviewItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").
			NotEmpty(),
		field.Int("subject_id"),
		field.Float("strength").
			Comment("Memory strength S in days, clamped to [1, 90]"),
		field.Int("initial_confidence").
			Comment("Caller-supplied confidence 1-10 at creation"),
		field.Int("difficulty").
			Comment("Caller-supplied difficulty 1-5 at creation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("last_reviewed_at").
			Optional().
			Nillable(),
		field.Time("next_review_at"),
		field.Int("review_count").
			Default(0),
		field.String("status").
			Default("active").
			Comment("active, mastered or paused"),
		field.JSON("history", []ReviewEventData{}).
			Optional().
			Comment("Append-only review log"),
	}
}

func (ReviewItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id"),
		index.Fields("status"),
		index.Fields("next_review_at"),
	}
}
