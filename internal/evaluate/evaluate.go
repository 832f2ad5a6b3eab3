// Package evaluate grades learner output with an LLM: free-text lesson
// summaries and read-aloud pronunciation attempts. Evaluation failures
// are typed so callers can offer a retry without touching session state.
package evaluate

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alombard/lessonforge/internal/lesson"
	"github.com/alombard/lessonforge/internal/llm"
)

// Config holds evaluation call settings.
type Config struct {
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// DefaultConfig returns settings suitable for short grading calls.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.3,
		Timeout:     15 * time.Second,
	}
}

// Evaluator grades summaries and pronunciation attempts.
type Evaluator struct {
	provider llm.Provider
	cfg      Config
}

// NewEvaluator returns an Evaluator backed by the given provider.
func NewEvaluator(provider llm.Provider, cfg Config) *Evaluator {
	if cfg.MaxTokens == 0 {
		cfg = DefaultConfig()
	}
	return &Evaluator{provider: provider, cfg: cfg}
}

var summarySchema = llm.Schema{
	Name:        "summary_evaluation",
	Description: "Graded evaluation of a student's summary",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":    "integer",
				"minimum": 1,
				"maximum": 5,
			},
			"feedback": map[string]any{"type": "string"},
			"corrections": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"original":    map[string]any{"type": "string"},
						"corrected":   map[string]any{"type": "string"},
						"explanation": map[string]any{"type": "string"},
					},
					"required":             []any{"original", "corrected", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"score", "feedback", "corrections"},
		"additionalProperties": false,
	},
}

// Summary grades a learner's summary of the original lesson text.
// The returned evaluation carries a 1-5 score; use Passed to check the
// progression threshold.
func (e *Evaluator) Summary(ctx context.Context, userSummary, originalText string) (*SummaryEvaluation, error) {
	ctx = llm.WithPurpose(ctx, "summary-eval")
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	resp, err := e.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: fmt.Sprintf(summaryPrompt, originalText, userSummary),
		}},
		Schema:      &summarySchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return nil, &ErrServiceFailure{Err: err}
	}

	raw := lesson.StripFences(string(resp.Content))
	var eval SummaryEvaluation
	if err := json.Unmarshal([]byte(raw), &eval); err != nil {
		return nil, &ErrInvalidJSON{Err: err}
	}
	if eval.Score < 1 || eval.Score > 5 {
		return nil, &ErrInvalidJSON{Err: fmt.Errorf("score %d outside range 1-5", eval.Score)}
	}
	return &eval, nil
}

// Pronunciation returns conversational feedback comparing a speech
// transcript against the target sentence the learner was reading.
func (e *Evaluator) Pronunciation(ctx context.Context, transcript, target string) (string, error) {
	ctx = llm.WithPurpose(ctx, "pronunciation")
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	resp, err := e.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{{
			Role:    llm.RoleUser,
			Content: fmt.Sprintf(pronunciationPrompt, target, transcript),
		}},
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return "", &ErrServiceFailure{Err: err}
	}
	return string(resp.Content), nil
}
