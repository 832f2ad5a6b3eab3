package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alombard/lessonforge/internal/evaluate"
	"github.com/alombard/lessonforge/internal/lesson"
	"github.com/alombard/lessonforge/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeDomainError maps domain errors to HTTP status codes.
// Model output problems are 422 so clients can offer a retry;
// upstream provider failures are 502; storage problems are 500.
func writeDomainError(w http.ResponseWriter, err error) {
	var (
		invalidJSON *lesson.ErrInvalidJSON
		violation   *lesson.FieldViolation
		genFailure  *lesson.ErrServiceFailure
		evalJSON    *evaluate.ErrInvalidJSON
		evalFailure *evaluate.ErrServiceFailure
	)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.As(err, &invalidJSON), errors.As(err, &violation), errors.As(err, &evalJSON):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &genFailure), errors.As(err, &evalFailure):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
