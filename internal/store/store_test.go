package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alombard/lessonforge/internal/lesson"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func testLesson(id string, created time.Time) *lesson.Lesson {
	l := &lesson.Lesson{
		ID:      id,
		Title:   "La vie à Paris",
		Content: []string{"Marie habite à Paris."},
		ComprehensionQuestions: []lesson.ComprehensionQuestion{
			{
				Question:      "Où habite Marie ?",
				Answers:       []string{"Paris", "Lyon", "Nice", "Lille"},
				CorrectAnswer: "Paris",
			},
		},
		Exercises: lesson.ExerciseList{
			&lesson.SpellingExercise{Instruction: "Écrivez 'house'.", CorrectAnswer: "maison"},
		},
		Summary:     "Marie habite à Paris.",
		PDFFileName: "page42.pdf",
		CreatedAt:   created,
	}
	l.AssignItemIDs()
	return l
}

func TestLessonRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.LessonRepo()
	ctx := context.Background()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if err := repo.Create(ctx, testLesson("lesson-1", created)); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, "lesson-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "La vie à Paris" {
		t.Errorf("title = %q", got.Title)
	}
	if len(got.Exercises) != 1 || got.Exercises[0].Kind() != lesson.KindSpelling {
		t.Errorf("exercises decoded badly: %+v", got.Exercises)
	}
	if got.ComprehensionQuestions[0].ID != "q1" {
		t.Errorf("question id = %q, want q1", got.ComprehensionQuestions[0].ID)
	}

	if _, err := repo.Get(ctx, "absent"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLessonListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.LessonRepo()
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, id := range []string{"old", "mid", "new"} {
		if err := repo.Create(ctx, testLesson(id, base.Add(time.Duration(i)*time.Hour))); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	lessons, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(lessons) != 3 {
		t.Fatalf("got %d lessons, want 3", len(lessons))
	}
	if lessons[0].ID != "new" || lessons[2].ID != "old" {
		t.Errorf("order = %s, %s, %s; want newest first", lessons[0].ID, lessons[1].ID, lessons[2].ID)
	}
}

func TestSubmissionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SubmissionRepo()
	ctx := context.Background()

	sub := &lesson.Submission{
		ID:             "sub-1",
		LessonID:       "lesson-1",
		UserID:         "user-1",
		Answers:        map[string]string{"q1": "Paris", "x1": "maison"},
		Score:          2,
		TotalQuestions: 2,
		Percentage:     100,
		SubmittedAt:    time.Date(2026, 3, 1, 13, 0, 0, 0, time.UTC),
	}
	if err := repo.Create(ctx, sub); err != nil {
		t.Fatalf("create: %v", err)
	}

	subs, err := repo.ListByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("got %d submissions, want 1", len(subs))
	}
	if subs[0].Score != 2 || subs[0].Answers["q1"] != "Paris" {
		t.Errorf("round trip mangled submission: %+v", subs[0])
	}

	other, err := repo.ListByUser(ctx, "someone-else")
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected no submissions for other user, got %d", len(other))
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      "lesson",
			InputTokens:  100,
			OutputTokens: 50,
			LatencyMs:    12,
			Success:      true,
			RequestBody:  "[user]\nprompt",
			ResponseBody: `{"title":"..."}`,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	// Newest first; sequence strictly increasing across appends.
	if events[0].Sequence <= events[2].Sequence {
		t.Errorf("expected descending sequence, got %d .. %d", events[0].Sequence, events[2].Sequence)
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("got %d events, want 1", len(limited))
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ResponseBody != `{"title":"..."}` {
		t.Errorf("get returned %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}
