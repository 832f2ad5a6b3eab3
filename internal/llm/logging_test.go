package llm

import (
	"context"
	"encoding/json"
	"testing"
)

type recordingEventRepo struct {
	events []LLMRequestEventData
}

func (r *recordingEventRepo) AppendLLMRequest(_ context.Context, data LLMRequestEventData) error {
	r.events = append(r.events, data)
	return nil
}

func (r *recordingEventRepo) QueryLLMEvents(_ context.Context, _ QueryOpts) ([]LLMRequestEventRecord, error) {
	return nil, nil
}

func (r *recordingEventRepo) GetLLMEvent(_ context.Context, _ int) (*LLMRequestEventRecord, error) {
	return nil, nil
}

func TestLoggingProviderRecordsSuccess(t *testing.T) {
	repo := &recordingEventRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"title":"x"}`),
		Usage:   Usage{InputTokens: 120, OutputTokens: 40},
	})
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "lesson")
	_, err := p.Generate(ctx, Request{
		Messages: []Message{{Role: RoleUser, Content: "prompt"}},
		Attachment: &Attachment{
			MIMEType: "application/pdf",
			Data:     make([]byte, 2048),
		},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	e := repo.events[0]
	if e.Purpose != "lesson" {
		t.Errorf("purpose = %q", e.Purpose)
	}
	if !e.Success {
		t.Error("expected success event")
	}
	if e.InputTokens != 120 || e.OutputTokens != 40 {
		t.Errorf("tokens = %d/%d", e.InputTokens, e.OutputTokens)
	}
	if e.ResponseBody != `{"title":"x"}` {
		t.Errorf("response body = %q", e.ResponseBody)
	}
	// Attachment bytes are elided, only size and type recorded.
	if len(e.RequestBody) > 500 {
		t.Errorf("request body should not embed attachment bytes, got %d chars", len(e.RequestBody))
	}
}

func TestLoggingProviderRecordsFailure(t *testing.T) {
	repo := &recordingEventRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})
	p := WithLogging(mock, repo)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	e := repo.events[0]
	if e.Success {
		t.Error("expected failure event")
	}
	if e.ErrorMessage == "" {
		t.Error("expected error message")
	}
	if e.Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown fallback", e.Purpose)
	}
}
