package lesson

import "time"

// Config holds lesson generation settings.
type Config struct {
	// MaxTokens bounds the generated lesson size. Lessons carry full
	// paragraphs plus four exercises, so this is generous.
	MaxTokens int

	// Temperature controls generation randomness.
	Temperature float64

	// Timeout caps a single document-based generation call, including
	// retries. Timeouts surface as *ErrServiceFailure.
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for lesson generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.4,
		Timeout:     60 * time.Second,
	}
}
