package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalSchema(name string) *Schema {
	return &Schema{
		Name:        name,
		Description: "test schema",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"score":    map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
				"feedback": map[string]any{"type": "string"},
			},
			"required":             []any{"score", "feedback"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse(t *testing.T) {
	schema := evalSchema("validate_ok")

	err := validateResponse(schema, json.RawMessage(`{"score": 3, "feedback": "Bien."}`))
	require.NoError(t, err)

	// Compiled schema is cached after first use.
	_, cached := schemaCache.Load("validate_ok")
	assert.True(t, cached)
}

func TestValidateResponseRejections(t *testing.T) {
	schema := evalSchema("validate_bad")

	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "nope"},
		{"missing field", `{"score": 3}`},
		{"wrong type", `{"score": "three", "feedback": "x"}`},
		{"out of range", `{"score": 9, "feedback": "x"}`},
		{"extra field", `{"score": 3, "feedback": "x", "bonus": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(schema, json.RawMessage(tt.raw))
			require.Error(t, err)

			var invalid *ErrInvalidResponse
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, json.RawMessage(tt.raw), invalid.Content)
		})
	}
}

func TestValidateResponseNoSchema(t *testing.T) {
	require.NoError(t, validateResponse(nil, json.RawMessage("anything, even non-JSON")))
}
