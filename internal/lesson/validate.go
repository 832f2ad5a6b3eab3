package lesson

import (
	"fmt"
	"slices"
)

// Validate checks a parsed lesson document against the required shape and
// returns the fully-typed Lesson. Rules run in a fixed order and the first
// violation wins:
//
//  1. top-level fields present with correct container types
//  2. each comprehension question has exactly 4 answers and its
//     correctAnswer is one of them
//  3. exercises cover all four kinds; unknown kinds are rejected
//  4. option-bearing exercises have correctAnswer among their options
//
// The sentenceOrdering words/correctAnswer re-join relation is advisory:
// the generation prompt demands it and the test suite checks it on
// generated content, but scoring tolerates any exact-match answer, so the
// validator does not hard-reject it.
func Validate(doc map[string]any) (*Lesson, error) {
	out := &Lesson{}

	// Rule 1: top-level shape.
	title, v := requireString(doc, "title")
	if v != nil {
		return nil, v
	}
	out.Title = title

	content, v := requireStringSlice(doc, "content")
	if v != nil {
		return nil, v
	}
	if len(content) == 0 {
		return nil, &FieldViolation{Field: "content", Message: "must not be empty"}
	}
	out.Content = content

	vocabRaw, v := requireSlice(doc, "vocabulary")
	if v != nil {
		return nil, v
	}
	questionsRaw, v := requireSlice(doc, "comprehensionQuestions")
	if v != nil {
		return nil, v
	}
	exercisesRaw, v := requireSlice(doc, "exercises")
	if v != nil {
		return nil, v
	}
	summary, v := requireString(doc, "summary")
	if v != nil {
		return nil, v
	}
	out.Summary = summary

	vocab, v := validateVocabulary(vocabRaw)
	if v != nil {
		return nil, v
	}
	out.Vocabulary = vocab

	// Rule 2: comprehension questions.
	questions, v := validateQuestions(questionsRaw)
	if v != nil {
		return nil, v
	}
	out.ComprehensionQuestions = questions

	// Rule 3: exercise kinds, known and collectively complete.
	kinds := make(map[Kind]bool)
	for i, raw := range exercisesRaw {
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, &FieldViolation{Field: field("exercises", i), Message: "must be an object"}
		}
		typ, ok := obj["type"].(string)
		if !ok || typ == "" {
			return nil, &FieldViolation{Field: field("exercises", i) + ".type", Message: "missing exercise type"}
		}
		switch Kind(typ) {
		case KindGrammar, KindSpelling, KindSentenceOrdering, KindVocabulary:
			kinds[Kind(typ)] = true
		default:
			return nil, &FieldViolation{Field: field("exercises", i) + ".type", Message: fmt.Sprintf("unknown exercise type %q", typ)}
		}
	}
	for _, k := range Kinds {
		if !kinds[k] {
			return nil, &FieldViolation{Field: "exercises", Message: fmt.Sprintf("missing exercise kind %q", k)}
		}
	}

	// Rule 4: per-exercise fields and option membership.
	exercises := make(ExerciseList, 0, len(exercisesRaw))
	for i, raw := range exercisesRaw {
		ex, v := validateExercise(raw.(map[string]any), i)
		if v != nil {
			return nil, v
		}
		exercises = append(exercises, ex)
	}
	out.Exercises = exercises

	return out, nil
}

func validateVocabulary(items []any) ([]VocabularyItem, *FieldViolation) {
	out := make([]VocabularyItem, 0, len(items))
	for i, raw := range items {
		path := field("vocabulary", i)
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, &FieldViolation{Field: path, Message: "must be an object"}
		}

		var item VocabularyItem
		var v *FieldViolation
		if item.Word, v = requireString(obj, "word"); v != nil {
			return nil, prefix(path, v)
		}
		if item.Translation, v = requireString(obj, "translation"); v != nil {
			return nil, prefix(path, v)
		}
		// Pronunciation and example sentence must be strings when present
		// but may be empty.
		if item.Pronunciation, v = optionalString(obj, "pronunciation"); v != nil {
			return nil, prefix(path, v)
		}
		if item.ExampleSentence, v = optionalString(obj, "exampleSentence"); v != nil {
			return nil, prefix(path, v)
		}
		out = append(out, item)
	}
	return out, nil
}

func validateQuestions(items []any) ([]ComprehensionQuestion, *FieldViolation) {
	out := make([]ComprehensionQuestion, 0, len(items))
	for i, raw := range items {
		path := field("comprehensionQuestions", i)
		obj, ok := raw.(map[string]any)
		if !ok {
			return nil, &FieldViolation{Field: path, Message: "must be an object"}
		}

		var q ComprehensionQuestion
		var v *FieldViolation
		if q.Question, v = requireString(obj, "question"); v != nil {
			return nil, prefix(path, v)
		}

		answers, v := requireStringSlice(obj, "answers")
		if v != nil {
			return nil, prefix(path, v)
		}
		if len(answers) != 4 {
			return nil, &FieldViolation{
				Field:   path + ".answers",
				Message: fmt.Sprintf("must have exactly 4 answers, got %d", len(answers)),
			}
		}
		q.Answers = answers

		if q.CorrectAnswer, v = requireString(obj, "correctAnswer"); v != nil {
			return nil, prefix(path, v)
		}
		if !slices.Contains(answers, q.CorrectAnswer) {
			return nil, &FieldViolation{
				Field:   path + ".correctAnswer",
				Message: "must be one of answers",
			}
		}
		out = append(out, q)
	}
	return out, nil
}

func validateExercise(obj map[string]any, i int) (Exercise, *FieldViolation) {
	path := field("exercises", i)

	instruction, v := requireString(obj, "instruction")
	if v != nil {
		return nil, prefix(path, v)
	}
	explanation, v := optionalString(obj, "explanation")
	if v != nil {
		return nil, prefix(path, v)
	}
	answer, v := requireString(obj, "correctAnswer")
	if v != nil {
		return nil, prefix(path, v)
	}

	kind := Kind(obj["type"].(string))
	switch kind {
	case KindGrammar, KindVocabulary:
		options, v := requireStringSlice(obj, "options")
		if v != nil {
			return nil, prefix(path, v)
		}
		if len(options) == 0 {
			return nil, &FieldViolation{Field: path + ".options", Message: "must not be empty"}
		}
		if !slices.Contains(options, answer) {
			return nil, &FieldViolation{Field: path + ".correctAnswer", Message: "must be one of options"}
		}
		if kind == KindGrammar {
			return &GrammarExercise{
				Instruction:   instruction,
				Explanation:   explanation,
				Options:       options,
				CorrectAnswer: answer,
			}, nil
		}
		return &VocabularyExercise{
			Instruction:   instruction,
			Explanation:   explanation,
			Options:       options,
			CorrectAnswer: answer,
		}, nil

	case KindSentenceOrdering:
		words, v := requireStringSlice(obj, "words")
		if v != nil {
			return nil, prefix(path, v)
		}
		if len(words) == 0 {
			return nil, &FieldViolation{Field: path + ".words", Message: "must not be empty"}
		}
		return &SentenceOrderingExercise{
			Instruction:   instruction,
			Explanation:   explanation,
			Words:         words,
			CorrectAnswer: answer,
		}, nil

	default: // spelling; unknown kinds were rejected in rule 3
		return &SpellingExercise{
			Instruction:   instruction,
			Explanation:   explanation,
			CorrectAnswer: answer,
		}, nil
	}
}

func requireString(obj map[string]any, key string) (string, *FieldViolation) {
	raw, ok := obj[key]
	if !ok {
		return "", &FieldViolation{Field: key, Message: "missing required field"}
	}
	s, ok := raw.(string)
	if !ok {
		return "", &FieldViolation{Field: key, Message: "must be a string"}
	}
	if s == "" {
		return "", &FieldViolation{Field: key, Message: "must not be empty"}
	}
	return s, nil
}

func optionalString(obj map[string]any, key string) (string, *FieldViolation) {
	raw, ok := obj[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", &FieldViolation{Field: key, Message: "must be a string"}
	}
	return s, nil
}

func requireSlice(obj map[string]any, key string) ([]any, *FieldViolation) {
	raw, ok := obj[key]
	if !ok {
		return nil, &FieldViolation{Field: key, Message: "missing required field"}
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, &FieldViolation{Field: key, Message: "must be an array"}
	}
	return items, nil
}

func requireStringSlice(obj map[string]any, key string) ([]string, *FieldViolation) {
	items, v := requireSlice(obj, key)
	if v != nil {
		return nil, v
	}
	out := make([]string, 0, len(items))
	for i, raw := range items {
		s, ok := raw.(string)
		if !ok {
			return nil, &FieldViolation{Field: field(key, i), Message: "must be a string"}
		}
		out = append(out, s)
	}
	return out, nil
}

func field(name string, i int) string {
	return fmt.Sprintf("%s[%d]", name, i)
}

// prefix rebases a nested violation onto its parent path.
func prefix(path string, v *FieldViolation) *FieldViolation {
	return &FieldViolation{Field: path + "." + v.Field, Message: v.Message}
}
