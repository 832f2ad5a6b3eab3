package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for generative-text interaction.
// Consumers call Generate with a Request and receive the model's output,
// optionally constrained to a JSON schema.
type Provider interface {
	// Generate sends a single prompt to the model and returns its response.
	// When the request carries a Schema, the provider uses its native
	// structured-output mechanism and the response Content is the validated
	// JSON. Exactly one outbound call is made per invocation.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	System string

	// Messages is the conversation. Lessonforge only does single-turn
	// generation, so this is normally one user message.
	Messages []Message

	// Attachment is an optional opaque document payload (a textbook page
	// PDF) sent alongside the messages. Providers that cannot accept
	// binary documents return an *ErrAttachmentUnsupported.
	Attachment *Attachment

	// Schema is the JSON Schema the response must conform to.
	// When set, the provider requests structured output and validates the
	// result. When nil, Content is the raw text of the response.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message is a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Attachment is a binary document handed opaquely to the model.
// The bytes are never inspected by this package.
type Attachment struct {
	MIMEType string
	Data     []byte
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "summary-evaluation".
	Name string

	// Description tells the model what this schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output. With a Schema this is validated
	// JSON; without, the raw response text.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// resolveModel maps a friendly model name to a provider model ID.
// Unknown names pass through so direct model IDs keep working.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
