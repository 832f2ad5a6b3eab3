package lesson

import (
	"encoding/json"
	"fmt"
	"time"
)

// Lesson is a generated, validated content unit driving one learner
// attempt. Immutable once created; ordering of content, vocabulary,
// questions, and exercises is significant and preserved as generated.
type Lesson struct {
	ID                     string                  `json:"id,omitempty"`
	Title                  string                  `json:"title"`
	Content                []string                `json:"content"`
	Vocabulary             []VocabularyItem        `json:"vocabulary"`
	ComprehensionQuestions []ComprehensionQuestion `json:"comprehensionQuestions"`
	Exercises              ExerciseList            `json:"exercises"`
	Summary                string                  `json:"summary"`
	PDFFileName            string                  `json:"pdfFileName"`
	CreatedAt              time.Time               `json:"createdAt"`
}

// VocabularyItem is a single word entry with its translation and an
// example of use.
type VocabularyItem struct {
	Word            string `json:"word"`
	Translation     string `json:"translation"`
	Pronunciation   string `json:"pronunciation"`
	ExampleSentence string `json:"exampleSentence"`
}

// ComprehensionQuestion is a four-option multiple-choice question about
// the reading passage. CorrectAnswer is always one of Answers, exactly.
type ComprehensionQuestion struct {
	ID            string   `json:"id,omitempty"`
	Question      string   `json:"question"`
	Answers       []string `json:"answers"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// Kind discriminates the exercise variants.
type Kind string

const (
	KindGrammar          Kind = "grammar"
	KindSpelling         Kind = "spelling"
	KindSentenceOrdering Kind = "sentenceOrdering"
	KindVocabulary       Kind = "vocabulary"
)

// Kinds lists the four exercise kinds every lesson must cover.
var Kinds = []Kind{KindGrammar, KindSpelling, KindSentenceOrdering, KindVocabulary}

// Exercise is the closed sum over the four exercise variants. Each
// variant carries exactly the fields valid for its kind; scoring only
// needs the prompt and the correct answer.
type Exercise interface {
	// Kind returns the variant discriminant.
	Kind() Kind
	// ItemID returns the stable, generator-assigned identifier, or ""
	// before ids are assigned.
	ItemID() string
	// Prompt returns the instruction text shown to the learner. It
	// doubles as the legacy answer-map key.
	Prompt() string
	// Answer returns the correct answer for exact-match scoring.
	Answer() string

	setItemID(id string)
}

// GrammarExercise is a multiple-choice grammar drill.
type GrammarExercise struct {
	ID            string   `json:"id,omitempty"`
	Instruction   string   `json:"instruction"`
	Explanation   string   `json:"explanation"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

func (e *GrammarExercise) Kind() Kind          { return KindGrammar }
func (e *GrammarExercise) ItemID() string      { return e.ID }
func (e *GrammarExercise) Prompt() string      { return e.Instruction }
func (e *GrammarExercise) Answer() string      { return e.CorrectAnswer }
func (e *GrammarExercise) setItemID(id string) { e.ID = id }

// SpellingExercise asks the learner to produce a target spelling.
// There are no options; the submitted text is compared verbatim.
type SpellingExercise struct {
	ID            string `json:"id,omitempty"`
	Instruction   string `json:"instruction"`
	Explanation   string `json:"explanation"`
	CorrectAnswer string `json:"correctAnswer"`
}

func (e *SpellingExercise) Kind() Kind          { return KindSpelling }
func (e *SpellingExercise) ItemID() string      { return e.ID }
func (e *SpellingExercise) Prompt() string      { return e.Instruction }
func (e *SpellingExercise) Answer() string      { return e.CorrectAnswer }
func (e *SpellingExercise) setItemID(id string) { e.ID = id }

// SentenceOrderingExercise presents shuffled words; the learner's
// ordering, rejoined as a single string, is compared verbatim against
// CorrectAnswer.
type SentenceOrderingExercise struct {
	ID            string   `json:"id,omitempty"`
	Instruction   string   `json:"instruction"`
	Explanation   string   `json:"explanation"`
	Words         []string `json:"words"`
	CorrectAnswer string   `json:"correctAnswer"`
}

func (e *SentenceOrderingExercise) Kind() Kind          { return KindSentenceOrdering }
func (e *SentenceOrderingExercise) ItemID() string      { return e.ID }
func (e *SentenceOrderingExercise) Prompt() string      { return e.Instruction }
func (e *SentenceOrderingExercise) Answer() string      { return e.CorrectAnswer }
func (e *SentenceOrderingExercise) setItemID(id string) { e.ID = id }

// VocabularyExercise is a multiple-choice word-usage drill.
type VocabularyExercise struct {
	ID            string   `json:"id,omitempty"`
	Instruction   string   `json:"instruction"`
	Explanation   string   `json:"explanation"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

func (e *VocabularyExercise) Kind() Kind          { return KindVocabulary }
func (e *VocabularyExercise) ItemID() string      { return e.ID }
func (e *VocabularyExercise) Prompt() string      { return e.Instruction }
func (e *VocabularyExercise) Answer() string      { return e.CorrectAnswer }
func (e *VocabularyExercise) setItemID(id string) { e.ID = id }

// ExerciseList is an ordered sequence of exercises with a polymorphic
// JSON codec dispatching on the "type" discriminant.
type ExerciseList []Exercise

func (l ExerciseList) MarshalJSON() ([]byte, error) {
	out := make([]json.RawMessage, len(l))
	for i, ex := range l {
		b, err := marshalExercise(ex)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return json.Marshal(out)
}

func (l *ExerciseList) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}

	out := make(ExerciseList, 0, len(raws))
	for i, raw := range raws {
		ex, err := unmarshalExercise(raw)
		if err != nil {
			return fmt.Errorf("exercises[%d]: %w", i, err)
		}
		out = append(out, ex)
	}
	*l = out
	return nil
}

// marshalExercise emits the exercise with its "type" discriminant.
func marshalExercise(ex Exercise) ([]byte, error) {
	body, err := json.Marshal(ex)
	if err != nil {
		return nil, err
	}

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	fields["type"] = string(ex.Kind())
	return json.Marshal(fields)
}

// unmarshalExercise decodes one exercise by its "type" discriminant.
// Unknown kinds are rejected.
func unmarshalExercise(raw json.RawMessage) (Exercise, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, err
	}

	var ex Exercise
	switch Kind(head.Type) {
	case KindGrammar:
		ex = &GrammarExercise{}
	case KindSpelling:
		ex = &SpellingExercise{}
	case KindSentenceOrdering:
		ex = &SentenceOrderingExercise{}
	case KindVocabulary:
		ex = &VocabularyExercise{}
	default:
		return nil, fmt.Errorf("unknown exercise type %q", head.Type)
	}

	if err := json.Unmarshal(raw, ex); err != nil {
		return nil, err
	}
	return ex, nil
}

// Items returns every scorable item of the lesson in display order:
// comprehension questions first, then exercises.
func (l *Lesson) Items() []Item {
	items := make([]Item, 0, len(l.ComprehensionQuestions)+len(l.Exercises))
	for i := range l.ComprehensionQuestions {
		q := &l.ComprehensionQuestions[i]
		items = append(items, Item{ID: q.ID, Prompt: q.Question, Answer: q.CorrectAnswer})
	}
	for _, ex := range l.Exercises {
		items = append(items, Item{ID: ex.ItemID(), Prompt: ex.Prompt(), Answer: ex.Answer()})
	}
	return items
}

// Item is the uniform scoring view of a question or exercise.
type Item struct {
	ID     string // generator-assigned stable id ("q1", "x2", ...)
	Prompt string // display text; legacy answer-map key
	Answer string // correct answer, compared by exact string equality
}

// AssignItemIDs gives every question and exercise a stable ordinal id.
// Ids are decoupled from display text so two items with identical wording
// cannot collide in the answer map. Idempotent.
func (l *Lesson) AssignItemIDs() {
	for i := range l.ComprehensionQuestions {
		l.ComprehensionQuestions[i].ID = fmt.Sprintf("q%d", i+1)
	}
	for i, ex := range l.Exercises {
		ex.setItemID(fmt.Sprintf("x%d", i+1))
	}
}
