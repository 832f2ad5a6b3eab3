package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Submission is the immutable record of one completed lesson session.
type Submission struct {
	ent.Schema
}

func (Submission) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Comment("UUID assigned at submit time"),
		field.String("lesson_id"),
		field.String("user_id"),
		field.JSON("answers", map[string]string{}).
			Comment("Item ID to learner answer"),
		field.Int("score"),
		field.Int("total_questions"),
		field.Float("percentage"),
		field.Time("submitted_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Submission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("lesson_id"),
		index.Fields("submitted_at"),
	}
}
