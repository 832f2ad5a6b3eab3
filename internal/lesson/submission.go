package lesson

import "time"

// Submission is the frozen, scored record of one learner's completed
// attempt at a lesson. Created once at submit time, never mutated.
type Submission struct {
	ID             string            `json:"id,omitempty"`
	LessonID       string            `json:"lessonId"`
	UserID         string            `json:"userId"`
	Answers        map[string]string `json:"answers"`
	Score          int               `json:"score"`
	TotalQuestions int               `json:"totalQuestions"`
	Percentage     float64           `json:"percentage"`
	SubmittedAt    time.Time         `json:"submittedAt"`
}
