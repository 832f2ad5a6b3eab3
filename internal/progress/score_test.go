package progress

import "testing"

func TestScoreAnswersAllCorrect(t *testing.T) {
	l := twoItemLesson()

	got := ScoreAnswers(l, map[string]string{
		"q1": "Paris",
		"x1": "maison",
	})

	if got.Score != 2 || got.TotalQuestions != 2 || got.Percentage != 100 {
		t.Errorf("got %+v, want 2/2 at 100%%", got)
	}
}

func TestScoreAnswersEmpty(t *testing.T) {
	l := twoItemLesson()

	got := ScoreAnswers(l, map[string]string{})
	if got.Score != 0 || got.TotalQuestions != 2 || got.Percentage != 0 {
		t.Errorf("got %+v, want 0/2 at 0%%", got)
	}
}

func TestScoreAnswersExactMatch(t *testing.T) {
	l := twoItemLesson()

	// Case and whitespace differences are wrong answers.
	got := ScoreAnswers(l, map[string]string{
		"q1": "paris",
		"x1": " maison",
	})
	if got.Score != 0 {
		t.Errorf("score = %d, want 0 for inexact matches", got.Score)
	}
}

func TestScoreAnswersLegacyTextKeys(t *testing.T) {
	l := twoItemLesson()

	got := ScoreAnswers(l, map[string]string{
		"Où habite Marie ?":            "Paris",
		"Écrivez le mot pour 'house'.": "maison",
	})
	if got.Score != 2 {
		t.Errorf("score = %d, want 2 via display-text keys", got.Score)
	}
}

func TestScoreAnswersIdPreferredOverText(t *testing.T) {
	l := twoItemLesson()

	// When both keys are present the stable id wins.
	got := ScoreAnswers(l, map[string]string{
		"q1":                "Lyon",
		"Où habite Marie ?": "Paris",
	})
	if got.Score != 0 {
		t.Errorf("score = %d, want 0 (id key takes precedence)", got.Score)
	}
}

func TestScoreAnswersIgnoresUnknownKeys(t *testing.T) {
	l := twoItemLesson()

	got := ScoreAnswers(l, map[string]string{
		"q1":      "Paris",
		"bogus":   "whatever",
		"another": "Paris",
	})
	if got.Score != 1 || got.TotalQuestions != 2 {
		t.Errorf("got %+v, want 1/2", got)
	}
}

func TestScoreAnswersEmptyLesson(t *testing.T) {
	l := twoItemLesson()
	l.ComprehensionQuestions = nil
	l.Exercises = nil

	got := ScoreAnswers(l, map[string]string{"q1": "Paris"})
	if got.TotalQuestions != 0 || got.Percentage != 0 {
		t.Errorf("got %+v, want zero totals", got)
	}
}
