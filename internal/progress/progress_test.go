package progress

import (
	"errors"
	"testing"

	"github.com/alombard/lessonforge/internal/lesson"
)

// twoItemLesson has one comprehension question ("Paris") and one spelling
// exercise ("maison"), with stable ids q1 and x1.
func twoItemLesson() *lesson.Lesson {
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

func TestStageOrder(t *testing.T) {
	p := New(twoItemLesson())

	want := []Stage{StageReading, StageComprehension, StageExercises, StageSummary}
	for _, stage := range want {
		if p.Current() != stage {
			t.Fatalf("current = %v, want %v", p.Current(), stage)
		}
		p.Complete(stage)
		p.Advance()
	}

	// Advancing past Summary stays at Summary.
	if p.Current() != StageSummary {
		t.Errorf("current after final advance = %v, want summary", p.Current())
	}
	p.Advance()
	if p.Current() != StageSummary {
		t.Errorf("advance at summary must be a no-op, got %v", p.Current())
	}
}

func TestCompleteIdempotent(t *testing.T) {
	p := New(twoItemLesson())
	p.Complete(StageReading)
	p.Complete(StageReading)
	if !p.Completed(StageReading) {
		t.Error("reading should be completed")
	}
}

func TestCompleteSummaryThreshold(t *testing.T) {
	p := New(twoItemLesson())

	if p.CompleteSummary(2, 3) {
		t.Error("score 2 must not complete the summary stage")
	}
	if p.Completed(StageSummary) {
		t.Error("summary must stay incomplete after failing score")
	}

	if !p.CompleteSummary(3, 3) {
		t.Error("score 3 must complete the summary stage")
	}

	// A later failing score never un-completes the stage.
	if !p.CompleteSummary(1, 3) {
		t.Error("completion is monotonic")
	}
}

func TestSubmitBeforeExercises(t *testing.T) {
	p := New(twoItemLesson())

	_, err := p.Submit("user-1")
	var ooo *ErrOutOfOrder
	if !errors.As(err, &ooo) {
		t.Fatalf("expected *ErrOutOfOrder, got %T: %v", err, err)
	}
	if ooo.Required != StageExercises {
		t.Errorf("required = %v, want exercises", ooo.Required)
	}
}

func TestSubmitRequiresSummary(t *testing.T) {
	p := New(twoItemLesson())
	p.Complete(StageExercises)

	_, err := p.Submit("user-1")
	var ooo *ErrOutOfOrder
	if !errors.As(err, &ooo) {
		t.Fatalf("expected *ErrOutOfOrder, got %T: %v", err, err)
	}
	if ooo.Required != StageSummary {
		t.Errorf("required = %v, want summary", ooo.Required)
	}
}

func TestSubmitAllCorrect(t *testing.T) {
	p := New(twoItemLesson())
	p.Complete(StageExercises)
	p.CompleteSummary(4, 3)

	if err := p.RecordAnswer("q1", "Paris"); err != nil {
		t.Fatalf("record q1: %v", err)
	}
	if err := p.RecordAnswer("x1", "maison"); err != nil {
		t.Fatalf("record x1: %v", err)
	}

	sub, err := p.Submit("user-1")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if sub.Score != 2 || sub.TotalQuestions != 2 {
		t.Errorf("score = %d/%d, want 2/2", sub.Score, sub.TotalQuestions)
	}
	if sub.Percentage != 100 {
		t.Errorf("percentage = %v, want 100", sub.Percentage)
	}
	if sub.LessonID != "lesson-1" || sub.UserID != "user-1" {
		t.Errorf("submission identity = %s/%s", sub.LessonID, sub.UserID)
	}
	if sub.ID == "" {
		t.Error("expected generated submission id")
	}
	if !p.Submitted() {
		t.Error("attempt should be frozen after submit")
	}
}

func TestDoubleSubmit(t *testing.T) {
	p := New(twoItemLesson())
	p.Complete(StageExercises)
	p.CompleteSummary(5, 3)

	if _, err := p.Submit("user-1"); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	_, err := p.Submit("user-1")
	var dup *ErrAlreadySubmitted
	if !errors.As(err, &dup) {
		t.Fatalf("expected *ErrAlreadySubmitted, got %T: %v", err, err)
	}
}

func TestRecordAnswerAfterSubmit(t *testing.T) {
	p := New(twoItemLesson())
	p.Complete(StageExercises)
	p.CompleteSummary(3, 3)
	if _, err := p.Submit("user-1"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	err := p.RecordAnswer("q1", "Lyon")
	var dup *ErrAlreadySubmitted
	if !errors.As(err, &dup) {
		t.Fatalf("expected *ErrAlreadySubmitted, got %T: %v", err, err)
	}
}

func TestRecordAnswerUnknownQuestion(t *testing.T) {
	p := New(twoItemLesson())

	err := p.RecordAnswer("q99", "Paris")
	var unknown *ErrUnknownQuestion
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *ErrUnknownQuestion, got %T: %v", err, err)
	}
	if unknown.QuestionID != "q99" {
		t.Errorf("question id = %q", unknown.QuestionID)
	}
}

func TestRecordAnswerByDisplayText(t *testing.T) {
	p := New(twoItemLesson())

	if err := p.RecordAnswer("Où habite Marie ?", "Paris"); err != nil {
		t.Fatalf("record by display text: %v", err)
	}

	score := p.Score()
	if score.Score != 1 {
		t.Errorf("score = %d, want 1", score.Score)
	}
}

func TestAmendAnswer(t *testing.T) {
	p := New(twoItemLesson())

	if err := p.RecordAnswer("q1", "Lyon"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := p.RecordAnswer("q1", "Paris"); err != nil {
		t.Fatalf("amend: %v", err)
	}

	if got := p.Answers()["q1"]; got != "Paris" {
		t.Errorf("answer = %q, want Paris", got)
	}
}
