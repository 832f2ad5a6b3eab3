package progress

import "github.com/alombard/lessonforge/internal/lesson"

// Score is the deterministic result of grading an answer map against a
// lesson. Total counts every comprehension question and exercise whether
// or not it was answered; there is no partial credit.
type Score struct {
	Score          int
	TotalQuestions int
	Percentage     float64
}

// ScoreAnswers grades answers against every closed-form item of the
// lesson by exact string equality. An answer may be keyed either by the
// item's stable id or by its display text (question text / exercise
// instruction), which is how the original submission wire format keys
// answers. Deterministic and independent of the order answers were
// recorded: only the final mapping matters.
func ScoreAnswers(l *lesson.Lesson, answers map[string]string) Score {
	items := l.Items()

	correct := 0
	for _, item := range items {
		got, ok := lookupAnswer(answers, item)
		if ok && got == item.Answer {
			correct++
		}
	}

	s := Score{Score: correct, TotalQuestions: len(items)}
	if s.TotalQuestions > 0 {
		s.Percentage = float64(s.Score) / float64(s.TotalQuestions) * 100
	}
	return s
}

// lookupAnswer resolves an item's submitted answer, preferring the stable
// id over the legacy display-text key.
func lookupAnswer(answers map[string]string, item lesson.Item) (string, bool) {
	if item.ID != "" {
		if got, ok := answers[item.ID]; ok {
			return got, true
		}
	}
	got, ok := answers[item.Prompt]
	return got, ok
}
