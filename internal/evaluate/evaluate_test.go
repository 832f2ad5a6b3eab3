package evaluate

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/alombard/lessonforge/internal/llm"
)

const evalJSON = `{
	"score": 4,
	"feedback": "Très bon résumé !",
	"corrections": [
		{"original": "elle habit", "corrected": "elle habite", "explanation": "Il manque le e final."}
	]
}`

func TestSummarySuccess(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(evalJSON)})
	e := NewEvaluator(mock, DefaultConfig())

	eval, err := e.Summary(context.Background(), "Marie habite à Paris.", "Marie habite à Paris et aime sa maison.")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}

	if eval.Score != 4 {
		t.Errorf("score = %d, want 4", eval.Score)
	}
	if !eval.Passed() {
		t.Error("score 4 should pass")
	}
	if len(eval.Corrections) != 1 {
		t.Fatalf("corrections = %d, want 1", len(eval.Corrections))
	}
	if eval.Corrections[0].Corrected != "elle habite" {
		t.Errorf("corrected = %q", eval.Corrections[0].Corrected)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "summary_evaluation" {
		t.Error("expected summary evaluation schema on request")
	}
	if !strings.Contains(req.Messages[0].Content, "Marie habite à Paris.") {
		t.Error("prompt should embed the student summary")
	}
}

func TestSummaryStripsFences(t *testing.T) {
	fenced := "```json\n" + evalJSON + "\n```"
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(fenced)})
	e := NewEvaluator(mock, DefaultConfig())

	if _, err := e.Summary(context.Background(), "résumé", "texte"); err != nil {
		t.Fatalf("summary: %v", err)
	}
}

func TestSummaryPassingThreshold(t *testing.T) {
	tests := []struct {
		score int
		pass  bool
	}{
		{1, false},
		{2, false},
		{3, true},
		{4, true},
		{5, true},
	}
	for _, tt := range tests {
		e := &SummaryEvaluation{Score: tt.score}
		if e.Passed() != tt.pass {
			t.Errorf("score %d: passed = %v, want %v", tt.score, e.Passed(), tt.pass)
		}
	}
}

func TestSummaryInvalidJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("Je ne peux pas.")})
	e := NewEvaluator(mock, DefaultConfig())

	_, err := e.Summary(context.Background(), "résumé", "texte")
	var invalid *ErrInvalidJSON
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *ErrInvalidJSON, got %T: %v", err, err)
	}
}

func TestSummaryScoreOutOfRange(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 9, "feedback": "!", "corrections": []}`),
	})
	e := NewEvaluator(mock, DefaultConfig())

	_, err := e.Summary(context.Background(), "résumé", "texte")
	var invalid *ErrInvalidJSON
	if !errors.As(err, &invalid) {
		t.Fatalf("expected *ErrInvalidJSON, got %T: %v", err, err)
	}
}

func TestSummaryProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	e := NewEvaluator(mock, DefaultConfig())

	_, err := e.Summary(context.Background(), "résumé", "texte")
	var sf *ErrServiceFailure
	if !errors.As(err, &sf) {
		t.Fatalf("expected *ErrServiceFailure, got %T: %v", err, err)
	}
}

func TestPronunciation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("Attention au mot 'maison', la finale est nasale."),
	})
	e := NewEvaluator(mock, DefaultConfig())

	feedback, err := e.Pronunciation(context.Background(), "la mason est grande", "la maison est grande")
	if err != nil {
		t.Fatalf("pronunciation: %v", err)
	}
	if feedback == "" {
		t.Error("expected non-empty feedback")
	}

	req := mock.Calls[0]
	if !strings.Contains(req.Messages[0].Content, "la maison est grande") {
		t.Error("prompt should embed the target sentence")
	}
	if req.Schema != nil {
		t.Error("pronunciation feedback is free text, no schema expected")
	}
}
