package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/alombard/lessonforge/internal/lesson"
	"github.com/alombard/lessonforge/internal/progress"
)

const maxUploadBytes = 20 << 20 // 20 MiB

// handleCreateLesson accepts a multipart PDF upload, generates a lesson
// from it and persists the result.
func (s *Server) handleCreateLesson(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "expected multipart form with a file field")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read upload: "+err.Error())
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/pdf"
	}

	l, err := s.Generator.Generate(r.Context(), data, mimeType, header.Filename)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if err := s.Lessons.Create(r.Context(), l); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, l)
}

func (s *Server) handleListLessons(w http.ResponseWriter, r *http.Request) {
	lessons, err := s.Lessons.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, lessons)
}

func (s *Server) handleGetLesson(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "lessonID")
	l, err := s.Lessons.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

type submissionRequest struct {
	LessonID string            `json:"lessonId"`
	UserID   string            `json:"userId"`
	Answers  map[string]string `json:"answers"`
}

type submissionResponse struct {
	SubmissionID   string  `json:"submissionId"`
	Score          int     `json:"score"`
	TotalQuestions int     `json:"totalQuestions"`
	Percentage     float64 `json:"percentage"`
}

// handleCreateSubmission scores a full answer set against the lesson key
// and records the result. Scoring is deterministic; the model is never
// consulted here.
func (s *Server) handleCreateSubmission(w http.ResponseWriter, r *http.Request) {
	var req submissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if req.LessonID == "" || req.UserID == "" {
		writeError(w, http.StatusBadRequest, "lessonId and userId required")
		return
	}
	if req.Answers == nil {
		req.Answers = map[string]string{}
	}

	l, err := s.Lessons.Get(r.Context(), req.LessonID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	result := progress.ScoreAnswers(l, req.Answers)
	sub := &lesson.Submission{
		ID:             uuid.NewString(),
		LessonID:       req.LessonID,
		UserID:         req.UserID,
		Answers:        req.Answers,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Percentage:     result.Percentage,
		SubmittedAt:    time.Now().UTC(),
	}
	if err := s.Submissions.Create(r.Context(), sub); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, submissionResponse{
		SubmissionID:   sub.ID,
		Score:          sub.Score,
		TotalQuestions: sub.TotalQuestions,
		Percentage:     sub.Percentage,
	})
}

func (s *Server) handleGetProgress(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	subs, err := s.Submissions.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

type summaryEvalRequest struct {
	Summary      string `json:"summary"`
	OriginalText string `json:"originalText"`
}

func (s *Server) handleEvaluateSummary(w http.ResponseWriter, r *http.Request) {
	var req summaryEvalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if req.Summary == "" || req.OriginalText == "" {
		writeError(w, http.StatusBadRequest, "summary and originalText required")
		return
	}

	eval, err := s.Evaluator.Summary(r.Context(), req.Summary, req.OriginalText)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"score":       eval.Score,
		"feedback":    eval.Feedback,
		"corrections": eval.Corrections,
		"passed":      eval.Passed(),
	})
}

type pronunciationRequest struct {
	Transcript string `json:"transcript"`
	Target     string `json:"target"`
}

func (s *Server) handleEvaluatePronunciation(w http.ResponseWriter, r *http.Request) {
	var req pronunciationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if req.Transcript == "" || req.Target == "" {
		writeError(w, http.StatusBadRequest, "transcript and target required")
		return
	}

	feedback, err := s.Evaluator.Pronunciation(r.Context(), req.Transcript, req.Target)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"feedback": feedback})
}
