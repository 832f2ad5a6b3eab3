// Package api exposes the lesson engine over HTTP for browser clients.
// Handlers are thin: decode, call the domain layer, map errors to
// status codes.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/alombard/lessonforge/internal/evaluate"
	"github.com/alombard/lessonforge/internal/lesson"
	"github.com/alombard/lessonforge/internal/store"
)

// Server bundles the dependencies the HTTP handlers need.
type Server struct {
	Lessons     store.LessonRepo
	Submissions store.SubmissionRepo
	Generator   *lesson.Generator
	Evaluator   *evaluate.Evaluator
}

// Router builds the chi router with all API routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	// Generation calls can run up to the 60s generation timeout.
	r.Use(middleware.Timeout(90 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:3000"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/lessons", s.handleCreateLesson)
		r.Get("/lessons", s.handleListLessons)
		r.Get("/lessons/{lessonID}", s.handleGetLesson)
		r.Post("/submissions", s.handleCreateSubmission)
		r.Get("/progress/{userID}", s.handleGetProgress)
		r.Post("/evaluate/summary", s.handleEvaluateSummary)
		r.Post("/evaluate/pronunciation", s.handleEvaluatePronunciation)
	})

	return r
}
