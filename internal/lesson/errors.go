package lesson

import "fmt"

// ErrInvalidJSON indicates the model's output could not be parsed as JSON
// after fence stripping. The raw text is logged through the provider event
// log for diagnosis and deliberately not carried here: it must never be
// surfaced to the caller verbatim.
type ErrInvalidJSON struct {
	Err error
}

func (e *ErrInvalidJSON) Error() string {
	return fmt.Sprintf("lesson output is not valid JSON: %v", e.Err)
}

func (e *ErrInvalidJSON) Unwrap() error { return e.Err }

// FieldViolation indicates parsed lesson JSON failed schema validation.
// Field is the JSON path of the first offending field, e.g.
// "comprehensionQuestions[2].correctAnswer".
type FieldViolation struct {
	Field   string
	Message string
}

func (e *FieldViolation) Error() string {
	return fmt.Sprintf("lesson schema violation at %s: %s", e.Field, e.Message)
}

// ErrServiceFailure indicates the generative service call failed or timed
// out before producing output. Safe to retry manually; no partial lesson
// is ever committed.
type ErrServiceFailure struct {
	Err error
}

func (e *ErrServiceFailure) Error() string {
	return fmt.Sprintf("lesson generation service failure: %v", e.Err)
}

func (e *ErrServiceFailure) Unwrap() error { return e.Err }
