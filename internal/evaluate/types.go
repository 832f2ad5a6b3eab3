package evaluate

import "fmt"

// MinPassingScore is the summary evaluation score at which the Summary
// stage counts as complete. A business rule layered on top of the raw
// 1-5 model output.
const MinPassingScore = 3

// SummaryEvaluation is the structured result of evaluating a learner's
// free-text summary.
type SummaryEvaluation struct {
	Score       int          `json:"score"` // 1-5
	Feedback    string       `json:"feedback"`
	Corrections []Correction `json:"corrections"`
}

// Correction is one suggested fix in the learner's text.
type Correction struct {
	Original    string `json:"original"`
	Corrected   string `json:"corrected"`
	Explanation string `json:"explanation"`
}

// Passed reports whether the evaluation clears the progression threshold.
func (e *SummaryEvaluation) Passed() bool {
	return e.Score >= MinPassingScore
}

// ErrServiceFailure indicates the evaluation call failed or timed out.
// Safe to retry manually; session state never advances on failure.
type ErrServiceFailure struct {
	Err error
}

func (e *ErrServiceFailure) Error() string {
	return fmt.Sprintf("evaluation service failure: %v", e.Err)
}

func (e *ErrServiceFailure) Unwrap() error { return e.Err }

// ErrInvalidJSON indicates the model returned output that could not be
// parsed as the expected evaluation shape. The caller surfaces a retry
// option; the session must not crash or advance.
type ErrInvalidJSON struct {
	Err error
}

func (e *ErrInvalidJSON) Error() string {
	return fmt.Sprintf("evaluation output is not valid JSON: %v", e.Err)
}

func (e *ErrInvalidJSON) Unwrap() error { return e.Err }
