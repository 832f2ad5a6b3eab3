package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lesson stores a generated lesson. The full validated document lives in
// the data column; title, source file and creation time are lifted into
// their own columns for listing without decoding every row.
type Lesson struct {
	ent.Schema
}

func (Lesson) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			Comment("UUID assigned at generation time"),
		field.String("title"),
		field.String("pdf_file_name").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.JSON("data", json.RawMessage{}).
			Comment("Full lesson document as JSON"),
	}
}

func (Lesson) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
