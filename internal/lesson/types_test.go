package lesson

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestExerciseListRoundTrip(t *testing.T) {
	list := ExerciseList{
		&GrammarExercise{
			Instruction:   "Choisissez la bonne forme.",
			Options:       []string{"habite", "habites"},
			CorrectAnswer: "habite",
		},
		&SentenceOrderingExercise{
			Instruction:   "Remettez les mots dans l'ordre.",
			Words:         []string{"Marie", "habite", "à", "Paris"},
			CorrectAnswer: "Marie habite à Paris",
		},
	}

	data, err := json.Marshal(list)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"type":"grammar"`) {
		t.Errorf("missing grammar discriminant in %s", data)
	}
	if !strings.Contains(string(data), `"type":"sentenceOrdering"`) {
		t.Errorf("missing sentenceOrdering discriminant in %s", data)
	}

	var got ExerciseList
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d exercises, want 2", len(got))
	}
	if got[0].Kind() != KindGrammar {
		t.Errorf("got[0].Kind() = %q", got[0].Kind())
	}
	so, ok := got[1].(*SentenceOrderingExercise)
	if !ok {
		t.Fatalf("got[1] is %T, want *SentenceOrderingExercise", got[1])
	}
	if len(so.Words) != 4 {
		t.Errorf("words = %v", so.Words)
	}
}

func TestExerciseListRejectsUnknownKind(t *testing.T) {
	data := `[{"type":"listening","instruction":"Écoutez.","correctAnswer":"x"}]`

	var got ExerciseList
	err := json.Unmarshal([]byte(data), &got)
	if err == nil {
		t.Fatal("expected error for unknown exercise type")
	}
	if !strings.Contains(err.Error(), "listening") {
		t.Errorf("error %q does not name the unknown type", err)
	}
}

func TestAssignItemIDs(t *testing.T) {
	l, err := Validate(validDoc())
	if err != nil {
		t.Fatalf("validate: %v", err)
	}

	l.AssignItemIDs()
	l.AssignItemIDs() // idempotent

	if got := l.ComprehensionQuestions[0].ID; got != "q1" {
		t.Errorf("question id = %q, want q1", got)
	}
	for i, ex := range l.Exercises {
		want := "x" + string(rune('1'+i))
		if ex.ItemID() != want {
			t.Errorf("exercise %d id = %q, want %q", i, ex.ItemID(), want)
		}
	}
}

func TestItemsOrder(t *testing.T) {
	l, err := Validate(validDoc())
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	l.AssignItemIDs()

	items := l.Items()
	if len(items) != 5 {
		t.Fatalf("items = %d, want 5", len(items))
	}
	// Questions first, then exercises, both in document order.
	if items[0].ID != "q1" || items[1].ID != "x1" || items[4].ID != "x4" {
		t.Errorf("unexpected item order: %v", items)
	}
	if items[0].Answer != "Paris" {
		t.Errorf("items[0].Answer = %q, want Paris", items[0].Answer)
	}
}
