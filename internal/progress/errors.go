package progress

import "fmt"

// ErrOutOfOrder indicates an operation was attempted before the stages it
// depends on were completed.
type ErrOutOfOrder struct {
	Op       string // the rejected operation
	Required Stage  // the stage that must be completed first
}

func (e *ErrOutOfOrder) Error() string {
	return fmt.Sprintf("%s requires the %s stage to be completed first", e.Op, e.Required)
}

// ErrAlreadySubmitted indicates a second submit on an attempt that was
// already frozen.
type ErrAlreadySubmitted struct {
	LessonID string
}

func (e *ErrAlreadySubmitted) Error() string {
	return fmt.Sprintf("attempt at lesson %s was already submitted", e.LessonID)
}

// ErrUnknownQuestion indicates an answer was recorded for an identifier
// that matches no question or exercise of the lesson.
type ErrUnknownQuestion struct {
	QuestionID string
}

func (e *ErrUnknownQuestion) Error() string {
	return fmt.Sprintf("unknown question id %q", e.QuestionID)
}
