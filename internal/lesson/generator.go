package lesson

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/alombard/lessonforge/internal/llm"
)

// Generator turns an uploaded document into a validated Lesson via a
// single generative call. Stateless and safe for concurrent use.
type Generator struct {
	provider llm.Provider
	cfg      Config
	now      func() time.Time
}

// NewGenerator creates a lesson generator.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg, now: time.Now}
}

// Generate makes exactly one outbound call to the generative service with
// the fixed instruction prompt and the raw document payload, then cleans,
// parses, and validates the output. On success the lesson is augmented
// with a fresh id, the server-assigned creation time, the original file
// name, and stable item ids. No retry happens here; the caller decides whether to
// re-invoke. No partial lesson ever escapes: the first failure aborts.
//
// Failures are typed: *ErrServiceFailure for transport or timeout,
// *ErrInvalidJSON for unparseable output, *FieldViolation for output
// that parses but breaks the lesson schema.
func (g *Generator) Generate(ctx context.Context, doc []byte, mimeType, fileName string) (*Lesson, error) {
	ctx = llm.WithPurpose(ctx, "lesson")
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: generationPrompt},
		},
		Attachment: &llm.Attachment{
			MIMEType: mimeType,
			Data:     doc,
		},
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &ErrServiceFailure{Err: err}
	}

	cleaned := StripFences(string(resp.Content))

	// The raw text was already recorded by the provider event log, so a
	// parse failure here is diagnosable without echoing model output to
	// the caller.
	var payload map[string]any
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, &ErrInvalidJSON{Err: err}
	}

	validated, err := Validate(payload)
	if err != nil {
		return nil, err
	}

	validated.ID = uuid.NewString()
	validated.CreatedAt = g.now().UTC()
	validated.PDFFileName = fileName
	validated.AssignItemIDs()

	return validated, nil
}

// IsRetryable reports whether a generation error is safe to retry
// manually. Service failures are; malformed or schema-violating output
// means the caller should regenerate deliberately, not blindly.
func IsRetryable(err error) bool {
	var sf *ErrServiceFailure
	return errors.As(err, &sf)
}
