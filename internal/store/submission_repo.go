package store

import (
	"context"
	"fmt"

	"github.com/alombard/lessonforge/ent"
	entsubmission "github.com/alombard/lessonforge/ent/submission"
	"github.com/alombard/lessonforge/internal/lesson"
)

type submissionRepo struct {
	client *ent.Client
}

func (r *submissionRepo) Create(ctx context.Context, sub *lesson.Submission) error {
	_, err := r.client.Submission.Create().
		SetID(sub.ID).
		SetLessonID(sub.LessonID).
		SetUserID(sub.UserID).
		SetAnswers(sub.Answers).
		SetScore(sub.Score).
		SetTotalQuestions(sub.TotalQuestions).
		SetPercentage(sub.Percentage).
		SetSubmittedAt(sub.SubmittedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save submission: %w", err)
	}
	return nil
}

func (r *submissionRepo) ListByUser(ctx context.Context, userID string) ([]*lesson.Submission, error) {
	rows, err := r.client.Submission.Query().
		Where(entsubmission.UserID(userID)).
		Order(ent.Desc(entsubmission.FieldSubmittedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	subs := make([]*lesson.Submission, 0, len(rows))
	for _, row := range rows {
		subs = append(subs, &lesson.Submission{
			ID:             row.ID,
			LessonID:       row.LessonID,
			UserID:         row.UserID,
			Answers:        row.Answers,
			Score:          row.Score,
			TotalQuestions: row.TotalQuestions,
			Percentage:     row.Percentage,
			SubmittedAt:    row.SubmittedAt,
		})
	}
	return subs, nil
}
