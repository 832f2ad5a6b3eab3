package lesson

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alombard/lessonforge/internal/llm"
)

func validLessonJSON(t *testing.T) []byte {
	t.Helper()
	data, err := json.Marshal(validDoc())
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return data
}

func newTestGenerator(mock *llm.MockProvider) *Generator {
	g := NewGenerator(mock, DefaultConfig())
	g.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return g
}

func TestGenerateSuccess(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLessonJSON(t)})
	g := newTestGenerator(mock)

	l, err := g.Generate(context.Background(), []byte("%PDF-1.4"), "application/pdf", "page42.pdf")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if l.ID == "" {
		t.Error("expected generated lesson id")
	}
	if l.PDFFileName != "page42.pdf" {
		t.Errorf("pdf file name = %q", l.PDFFileName)
	}
	if l.CreatedAt.IsZero() {
		t.Error("expected created at to be set")
	}
	if l.ComprehensionQuestions[0].ID != "q1" {
		t.Errorf("question id = %q, want q1", l.ComprehensionQuestions[0].ID)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Attachment == nil {
		t.Fatal("expected document attachment on request")
	}
	if req.Attachment.MIMEType != "application/pdf" {
		t.Errorf("attachment mime = %q", req.Attachment.MIMEType)
	}
}

func TestGenerateStripsFences(t *testing.T) {
	fenced := "```json\n" + string(validLessonJSON(t)) + "\n```"
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fenced)})
	g := newTestGenerator(mock)

	if _, err := g.Generate(context.Background(), []byte("%PDF"), "application/pdf", "p.pdf"); err != nil {
		t.Fatalf("generate: %v", err)
	}
}

func TestGenerateInvalidJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("I cannot help with that.")})
	g := newTestGenerator(mock)

	_, err := g.Generate(context.Background(), []byte("%PDF"), "application/pdf", "p.pdf")
	var invalid *ErrInvalidJSON
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *ErrInvalidJSON, got %T: %v", err, err)
	}
	if IsRetryable(err) {
		t.Error("invalid JSON must not be auto-retryable")
	}
}

func TestGenerateSchemaViolation(t *testing.T) {
	doc := validDoc()
	q := doc["comprehensionQuestions"].([]any)[0].(map[string]any)
	q["answers"] = []any{"Paris", "Lyon"}
	data, _ := json.Marshal(doc)

	mock := llm.NewMockProvider(llm.MockResponse{Content: data})
	g := newTestGenerator(mock)

	_, err := g.Generate(context.Background(), []byte("%PDF"), "application/pdf", "p.pdf")
	var fv *FieldViolation
	if !errors.As(err, &fv) {
		t.Fatalf("expected *FieldViolation, got %T: %v", err, err)
	}
	if fv.Field != "comprehensionQuestions[0].answers" {
		t.Errorf("field = %q", fv.Field)
	}
}

func TestGenerateProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	g := newTestGenerator(mock)

	_, err := g.Generate(context.Background(), []byte("%PDF"), "application/pdf", "p.pdf")
	var sf *ErrServiceFailure
	if !errors.As(err, &sf) {
		t.Fatalf("expected *ErrServiceFailure, got %T: %v", err, err)
	}
	if !IsRetryable(err) {
		t.Error("service failure should be retryable")
	}
}
