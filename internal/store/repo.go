package store

import (
	"context"
	"errors"

	"github.com/alombard/lessonforge/internal/lesson"
	"github.com/alombard/lessonforge/internal/llm"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// QueryOpts configures event queries with filtering and pagination.
// Defined in internal/llm alongside the logging decorator that emits
// events; aliased here so store remains the repository entry point.
type QueryOpts = llm.QueryOpts

// LessonRepo persists generated lessons.
type LessonRepo interface {
	// Create stores a validated lesson.
	Create(ctx context.Context, l *lesson.Lesson) error

	// Get returns the lesson with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*lesson.Lesson, error)

	// List returns all lessons, newest first.
	List(ctx context.Context) ([]*lesson.Lesson, error)
}

// SubmissionRepo persists completed session results.
type SubmissionRepo interface {
	// Create stores a submission.
	Create(ctx context.Context, sub *lesson.Submission) error

	// ListByUser returns a user's submissions, newest first.
	ListByUser(ctx context.Context, userID string) ([]*lesson.Submission, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData = llm.LLMRequestEventData

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord = llm.LLMRequestEventRecord

// EventRepo provides append and query access to domain events.
type EventRepo = llm.EventRepo
