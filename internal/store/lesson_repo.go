package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alombard/lessonforge/ent"
	entlesson "github.com/alombard/lessonforge/ent/lesson"
	"github.com/alombard/lessonforge/internal/lesson"
)

// lessonRepo implements LessonRepo. The full lesson document is stored
// as JSON; title, source file and creation time get their own columns
// so listing doesn't decode every document.
type lessonRepo struct {
	client *ent.Client
}

func (r *lessonRepo) Create(ctx context.Context, l *lesson.Lesson) error {
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("marshal lesson: %w", err)
	}

	_, err = r.client.Lesson.Create().
		SetID(l.ID).
		SetTitle(l.Title).
		SetPdfFileName(l.PDFFileName).
		SetCreatedAt(l.CreatedAt).
		SetData(data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save lesson: %w", err)
	}
	return nil
}

func (r *lessonRepo) Get(ctx context.Context, id string) (*lesson.Lesson, error) {
	row, err := r.client.Lesson.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get lesson: %w", err)
	}
	return decodeLesson(row)
}

func (r *lessonRepo) List(ctx context.Context) ([]*lesson.Lesson, error) {
	rows, err := r.client.Lesson.Query().
		Order(ent.Desc(entlesson.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}

	lessons := make([]*lesson.Lesson, 0, len(rows))
	for _, row := range rows {
		l, err := decodeLesson(row)
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, nil
}

func decodeLesson(row *ent.Lesson) (*lesson.Lesson, error) {
	var l lesson.Lesson
	if err := json.Unmarshal(row.Data, &l); err != nil {
		return nil, fmt.Errorf("decode lesson %s: %w", row.ID, err)
	}
	return &l, nil
}
