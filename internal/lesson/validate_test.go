package lesson

import (
	"errors"
	"strings"
	"testing"
)

// validDoc returns a minimal document that passes validation.
// Tests mutate the copy to probe individual rules.
func validDoc() map[string]any {
	return map[string]any{
		"title":   "La vie à Paris",
		"content": []any{"Marie habite à Paris.", "Elle aime sa maison."},
		"vocabulary": []any{
			map[string]any{
				"word":            "maison",
				"translation":     "house",
				"pronunciation":   "meh-zon",
				"exampleSentence": "Elle aime sa maison.",
			},
		},
		"comprehensionQuestions": []any{
			map[string]any{
				"question":      "Où habite Marie ?",
				"answers":       []any{"Paris", "Lyon", "Nice", "Lille"},
				"correctAnswer": "Paris",
			},
		},
		"exercises": []any{
			map[string]any{
				"type":          "grammar",
				"instruction":   "Choisissez la bonne forme : elle ___ à Paris.",
				"explanation":   "Troisième personne du singulier.",
				"options":       []any{"habite", "habites", "habitons"},
				"correctAnswer": "habite",
			},
			map[string]any{
				"type":          "spelling",
				"instruction":   "Écrivez le mot pour 'house'.",
				"correctAnswer": "maison",
			},
			map[string]any{
				"type":          "sentenceOrdering",
				"instruction":   "Remettez les mots dans l'ordre.",
				"words":         []any{"habite", "Marie", "Paris", "à"},
				"correctAnswer": "Marie habite à Paris",
			},
			map[string]any{
				"type":          "vocabulary",
				"instruction":   "Quel mot signifie 'house' ?",
				"options":       []any{"maison", "voiture", "jardin"},
				"correctAnswer": "maison",
			},
		},
		"summary": "Marie habite à Paris et aime sa maison.",
	}
}

func TestValidateAccepts(t *testing.T) {
	l, err := Validate(validDoc())
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if l.Title != "La vie à Paris" {
		t.Errorf("title = %q", l.Title)
	}
	if len(l.Content) != 2 {
		t.Errorf("content length = %d, want 2", len(l.Content))
	}
	if len(l.ComprehensionQuestions) != 1 {
		t.Errorf("questions = %d, want 1", len(l.ComprehensionQuestions))
	}
	if len(l.Exercises) != 4 {
		t.Errorf("exercises = %d, want 4", len(l.Exercises))
	}
}

// Running validation twice over the same document must give the same
// outcome; the validator never mutates its input.
func TestValidateIdempotent(t *testing.T) {
	doc := validDoc()
	if _, err := Validate(doc); err != nil {
		t.Fatalf("first validate: %v", err)
	}
	if _, err := Validate(doc); err != nil {
		t.Fatalf("second validate: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(doc map[string]any)
		wantField string
	}{
		{
			name:      "missing title",
			mutate:    func(doc map[string]any) { delete(doc, "title") },
			wantField: "title",
		},
		{
			name:      "title wrong type",
			mutate:    func(doc map[string]any) { doc["title"] = 42.0 },
			wantField: "title",
		},
		{
			name:      "empty content",
			mutate:    func(doc map[string]any) { doc["content"] = []any{} },
			wantField: "content",
		},
		{
			name: "three answers",
			mutate: func(doc map[string]any) {
				q := doc["comprehensionQuestions"].([]any)[0].(map[string]any)
				q["answers"] = []any{"Paris", "Lyon", "Nice"}
			},
			wantField: "comprehensionQuestions[0].answers",
		},
		{
			name: "correct answer not among answers",
			mutate: func(doc map[string]any) {
				q := doc["comprehensionQuestions"].([]any)[0].(map[string]any)
				q["correctAnswer"] = "Марсель"
			},
			wantField: "comprehensionQuestions[0].correctAnswer",
		},
		{
			name: "missing exercise type",
			mutate: func(doc map[string]any) {
				ex := doc["exercises"].([]any)[1].(map[string]any)
				delete(ex, "type")
			},
			wantField: "exercises[1].type",
		},
		{
			name: "unknown exercise type",
			mutate: func(doc map[string]any) {
				ex := doc["exercises"].([]any)[0].(map[string]any)
				ex["type"] = "listening"
			},
			wantField: "exercises[0].type",
		},
		{
			name: "missing exercise kind",
			mutate: func(doc map[string]any) {
				// Drop the vocabulary exercise entirely.
				doc["exercises"] = doc["exercises"].([]any)[:3]
			},
			wantField: "exercises",
		},
		{
			name: "exercise correct answer not among options",
			mutate: func(doc map[string]any) {
				ex := doc["exercises"].([]any)[0].(map[string]any)
				ex["correctAnswer"] = "habitez"
			},
			wantField: "exercises[0].correctAnswer",
		},
		{
			name: "sentence ordering without words",
			mutate: func(doc map[string]any) {
				ex := doc["exercises"].([]any)[2].(map[string]any)
				ex["words"] = []any{}
			},
			wantField: "exercises[2].words",
		},
		{
			name: "vocabulary missing translation",
			mutate: func(doc map[string]any) {
				w := doc["vocabulary"].([]any)[0].(map[string]any)
				delete(w, "translation")
			},
			wantField: "vocabulary[0].translation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDoc()
			tt.mutate(doc)

			_, err := Validate(doc)
			if err == nil {
				t.Fatal("expected validation error")
			}

			var fv *FieldViolation
			if !errors.As(err, &fv) {
				t.Fatalf("expected *FieldViolation, got %T: %v", err, err)
			}
			if fv.Field != tt.wantField {
				t.Errorf("field = %q, want %q", fv.Field, tt.wantField)
			}
		})
	}
}

// A lesson that validates may still have a sentence ordering exercise
// whose words do not re-join into the correct answer; scoring tolerates
// it, but well-formed generated content keeps the relation.
func TestSentenceOrderingWordsRejoin(t *testing.T) {
	l, err := Validate(validDoc())
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	for _, ex := range l.Exercises {
		so, ok := ex.(*SentenceOrderingExercise)
		if !ok {
			continue
		}
		for _, w := range so.Words {
			if !strings.Contains(so.CorrectAnswer, w) {
				t.Errorf("word %q not part of correct answer %q", w, so.CorrectAnswer)
			}
		}
	}
}
