package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alombard/lessonforge/internal/evaluate"
	"github.com/alombard/lessonforge/internal/lesson"
	"github.com/alombard/lessonforge/internal/llm"
	"github.com/alombard/lessonforge/internal/store"
)

type fakeLessonRepo struct {
	lessons map[string]*lesson.Lesson
}

func newFakeLessonRepo() *fakeLessonRepo {
	return &fakeLessonRepo{lessons: make(map[string]*lesson.Lesson)}
}

func (r *fakeLessonRepo) Create(_ context.Context, l *lesson.Lesson) error {
	r.lessons[l.ID] = l
	return nil
}

func (r *fakeLessonRepo) Get(_ context.Context, id string) (*lesson.Lesson, error) {
	l, ok := r.lessons[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return l, nil
}

func (r *fakeLessonRepo) List(_ context.Context) ([]*lesson.Lesson, error) {
	out := make([]*lesson.Lesson, 0, len(r.lessons))
	for _, l := range r.lessons {
		out = append(out, l)
	}
	return out, nil
}

type fakeSubmissionRepo struct {
	subs []*lesson.Submission
}

func (r *fakeSubmissionRepo) Create(_ context.Context, sub *lesson.Submission) error {
	r.subs = append(r.subs, sub)
	return nil
}

func (r *fakeSubmissionRepo) ListByUser(_ context.Context, userID string) ([]*lesson.Submission, error) {
	var out []*lesson.Submission
	for _, s := range r.subs {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func storedLesson() *lesson.Lesson {
	l := &lesson.Lesson{
		ID:      "lesson-1",
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
			&lesson.SpellingExercise{
				Instruction:   "Écrivez le mot pour 'house'.",
				CorrectAnswer: "maison",
			},
		},
		Summary: "Marie habite à Paris.",
	}
	l.AssignItemIDs()
	return l
}

func newTestServer(provider llm.Provider) (*Server, *fakeLessonRepo, *fakeSubmissionRepo) {
	lessons := newFakeLessonRepo()
	subs := &fakeSubmissionRepo{}
	srv := &Server{
		Lessons:     lessons,
		Submissions: subs,
		Generator:   lesson.NewGenerator(provider, lesson.DefaultConfig()),
		Evaluator:   evaluate.NewEvaluator(provider, evaluate.DefaultConfig()),
	}
	return srv, lessons, subs
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCreateSubmission(t *testing.T) {
	srv, lessons, subs := newTestServer(llm.NewMockProvider())
	lessons.lessons["lesson-1"] = storedLesson()
	h := srv.Router()

	rec := doJSON(t, h, http.MethodPost, "/api/submissions", map[string]any{
		"lessonId": "lesson-1",
		"userId":   "user-1",
		"answers": map[string]string{
			"q1": "Paris",
			"x1": "maison",
		},
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var resp submissionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Score != 2 || resp.TotalQuestions != 2 || resp.Percentage != 100 {
		t.Errorf("got %+v, want 2/2 at 100%%", resp)
	}
	if resp.SubmissionID == "" {
		t.Error("expected submission id")
	}
	if len(subs.subs) != 1 {
		t.Errorf("stored submissions = %d, want 1", len(subs.subs))
	}
}

func TestCreateSubmissionMissingFields(t *testing.T) {
	srv, _, _ := newTestServer(llm.NewMockProvider())
	h := srv.Router()

	rec := doJSON(t, h, http.MethodPost, "/api/submissions", map[string]any{
		"lessonId": "lesson-1",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCreateSubmissionUnknownLesson(t *testing.T) {
	srv, _, _ := newTestServer(llm.NewMockProvider())
	h := srv.Router()

	rec := doJSON(t, h, http.MethodPost, "/api/submissions", map[string]any{
		"lessonId": "nope",
		"userId":   "user-1",
		"answers":  map[string]string{},
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGetLesson(t *testing.T) {
	srv, lessons, _ := newTestServer(llm.NewMockProvider())
	lessons.lessons["lesson-1"] = storedLesson()
	h := srv.Router()

	rec := doJSON(t, h, http.MethodGet, "/api/lessons/lesson-1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var got lesson.Lesson
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Title != "La vie à Paris" {
		t.Errorf("title = %q", got.Title)
	}
	if len(got.Exercises) != 1 || got.Exercises[0].Kind() != lesson.KindSpelling {
		t.Errorf("exercises decoded badly: %+v", got.Exercises)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/lessons/unknown", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGetProgress(t *testing.T) {
	srv, _, subs := newTestServer(llm.NewMockProvider())
	subs.subs = []*lesson.Submission{
		{ID: "s1", LessonID: "lesson-1", UserID: "user-1", Score: 2, TotalQuestions: 2, Percentage: 100},
		{ID: "s2", LessonID: "lesson-1", UserID: "user-2", Score: 1, TotalQuestions: 2, Percentage: 50},
	}
	h := srv.Router()

	rec := doJSON(t, h, http.MethodGet, "/api/progress/user-1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var got []lesson.Submission
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].ID != "s1" {
		t.Errorf("got %+v, want only user-1's submission", got)
	}
}

func TestCreateLessonUpload(t *testing.T) {
	doc := map[string]any{
		"title":      "Test",
		"content":    []string{"Une phrase."},
		"vocabulary": []map[string]string{{"word": "mot", "translation": "word"}},
		"comprehensionQuestions": []map[string]any{
			{
				"question":      "Question ?",
				"answers":       []string{"a", "b", "c", "d"},
				"correctAnswer": "a",
			},
		},
		"exercises": []map[string]any{
			{"type": "grammar", "instruction": "g", "options": []string{"x", "y"}, "correctAnswer": "x"},
			{"type": "spelling", "instruction": "s", "correctAnswer": "mot"},
			{"type": "sentenceOrdering", "instruction": "o", "words": []string{"Une", "phrase"}, "correctAnswer": "Une phrase"},
			{"type": "vocabulary", "instruction": "v", "options": []string{"mot", "nom"}, "correctAnswer": "mot"},
		},
		"summary": "Résumé.",
	}
	payload, _ := json.Marshal(doc)

	srv, lessons, _ := newTestServer(llm.NewMockProvider(llm.MockResponse{Content: payload}))
	h := srv.Router()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "page.pdf")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	fw.Write([]byte("%PDF-1.4 fake"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/lessons", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var got lesson.Lesson
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID == "" {
		t.Error("expected lesson id")
	}
	if got.PDFFileName != "page.pdf" {
		t.Errorf("pdf file name = %q", got.PDFFileName)
	}
	if _, ok := lessons.lessons[got.ID]; !ok {
		t.Error("lesson not persisted")
	}
}

func TestCreateLessonUnprocessableOutput(t *testing.T) {
	srv, _, _ := newTestServer(llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("not json at all")},
	))
	h := srv.Router()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("file", "page.pdf")
	fw.Write([]byte("%PDF"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/lessons", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", rec.Code)
	}
}

func TestEvaluateSummaryEndpoint(t *testing.T) {
	srv, _, _ := newTestServer(llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 2, "feedback": "Continuez !", "corrections": []}`),
	}))
	h := srv.Router()

	rec := doJSON(t, h, http.MethodPost, "/api/evaluate/summary", map[string]string{
		"summary":      "Marie habite Paris.",
		"originalText": "Marie habite à Paris et aime sa maison.",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}

	var got struct {
		Score  int  `json:"score"`
		Passed bool `json:"passed"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Score != 2 || got.Passed {
		t.Errorf("got %+v, want score 2 not passed", got)
	}
}

func TestEvaluateSummaryMissingFields(t *testing.T) {
	srv, _, _ := newTestServer(llm.NewMockProvider())
	h := srv.Router()

	rec := doJSON(t, h, http.MethodPost, "/api/evaluate/summary", map[string]string{
		"summary": "seul",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestEvaluatePronunciationEndpoint(t *testing.T) {
	srv, _, _ := newTestServer(llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Bien joué, attention à 'maison'."),
	}))
	h := srv.Router()

	rec := doJSON(t, h, http.MethodPost, "/api/evaluate/pronunciation", map[string]string{
		"transcript": "la mason est grande",
		"target":     "la maison est grande",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), "feedback") {
		t.Errorf("body = %s", rec.Body)
	}
}
