// Package progress owns the per-attempt session state machine: a learner
// moves through Reading → Comprehension → Exercises → Summary, answers
// are collected along the way, and submission freezes the attempt into a
// scored Submission.
//
// A Progress value belongs to exactly one learner's in-flight attempt and
// is passed explicitly by the caller; nothing here is shared or ambient.
// It is ephemeral by design: navigating away discards it, reloading
// starts a fresh one.
package progress

import (
	"time"

	"github.com/google/uuid"

	"github.com/alombard/lessonforge/internal/lesson"
)

// Progress tracks one learner's in-flight attempt at a lesson.
// Not safe for concurrent use; each learner holds their own.
type Progress struct {
	lesson    *lesson.Lesson
	current   Stage
	completed map[Stage]bool
	answers   map[string]string
	submitted bool
	now       func() time.Time
}

// New starts a fresh attempt at the given lesson, positioned at Reading.
func New(l *lesson.Lesson) *Progress {
	return &Progress{
		lesson:    l,
		current:   StageReading,
		completed: make(map[Stage]bool),
		answers:   make(map[string]string),
		now:       time.Now,
	}
}

// Current returns the stage the learner is on.
func (p *Progress) Current() Stage { return p.current }

// Completed reports whether the stage has been completed. Completion is
// monotonic: once true it never becomes false.
func (p *Progress) Completed(s Stage) bool { return p.completed[s] }

// Complete marks a stage as completed. Idempotent: completing an
// already-completed stage is a no-op, not an error.
func (p *Progress) Complete(s Stage) {
	p.completed[s] = true
}

// CompleteSummary marks the Summary stage complete only when the
// AI-evaluated score clears the passing threshold. Returns whether the
// stage is now complete. A failing score never un-completes the stage.
func (p *Progress) CompleteSummary(evalScore, minPassing int) bool {
	if evalScore >= minPassing {
		p.completed[StageSummary] = true
	}
	return p.completed[StageSummary]
}

// Advance moves to the next stage in the fixed order. Advancing from
// Summary is a no-op; the caller must submit instead.
func (p *Progress) Advance() {
	p.current = p.current.Next()
}

// RecordAnswer upserts the learner's answer for a question or exercise,
// identified by its stable id or its display text. Amending an answer is
// allowed any time before submission.
func (p *Progress) RecordAnswer(questionID, value string) error {
	if p.submitted {
		return &ErrAlreadySubmitted{LessonID: p.lesson.ID}
	}
	if !p.knownQuestion(questionID) {
		return &ErrUnknownQuestion{QuestionID: questionID}
	}
	p.answers[questionID] = value
	return nil
}

// Answers returns a copy of the collected answers.
func (p *Progress) Answers() map[string]string {
	out := make(map[string]string, len(p.answers))
	for k, v := range p.answers {
		out[k] = v
	}
	return out
}

// Score grades the answers collected so far.
func (p *Progress) Score() Score {
	return ScoreAnswers(p.lesson, p.answers)
}

// Submit freezes the attempt and emits the Submission for persistence.
// Valid only once Exercises and Summary are both completed; Summary
// completion is driven by the summary evaluation score (see
// CompleteSummary). A second submit is rejected.
func (p *Progress) Submit(userID string) (*lesson.Submission, error) {
	if p.submitted {
		return nil, &ErrAlreadySubmitted{LessonID: p.lesson.ID}
	}
	if !p.completed[StageExercises] {
		return nil, &ErrOutOfOrder{Op: "submit", Required: StageExercises}
	}
	if !p.completed[StageSummary] {
		return nil, &ErrOutOfOrder{Op: "submit", Required: StageSummary}
	}

	p.submitted = true
	score := p.Score()

	return &lesson.Submission{
		ID:             uuid.NewString(),
		LessonID:       p.lesson.ID,
		UserID:         userID,
		Answers:        p.Answers(),
		Score:          score.Score,
		TotalQuestions: score.TotalQuestions,
		Percentage:     score.Percentage,
		SubmittedAt:    p.now().UTC(),
	}, nil
}

// Submitted reports whether the attempt has been frozen.
func (p *Progress) Submitted() bool { return p.submitted }

func (p *Progress) knownQuestion(id string) bool {
	for _, item := range p.lesson.Items() {
		if item.ID == id || item.Prompt == id {
			return true
		}
	}
	return false
}
