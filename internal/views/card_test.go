package views

import (
	"testing"

	"wikiquiz/internal/attempt"
	"wikiquiz/internal/models"
)

func cardQuestion() models.Question {
	return models.Question{
		Question:    "Capital of France?",
		Options:     []string{"Lyon", "Paris", "Nice", "Lille"},
		Answer:      "Paris",
		Difficulty:  "Easy",
		Explanation: "Paris has been the capital since 987.",
	}
}

func classes(c Card) []string {
	out := make([]string, len(c.Options))
	for i, o := range c.Options {
		out[i] = o.Class
	}
	return out
}

func icons(c Card) []string {
	out := make([]string, len(c.Options))
	for i, o := range c.Options {
		out[i] = o.Icon
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestBuildCardHeader(t *testing.T) {
	c := BuildCard(cardQuestion(), 2, attempt.ModeTake, "", false, false)

	if c.Number != "Q3" {
		t.Errorf("Number = %q, want Q3", c.Number)
	}
	if c.ModeClass != "take-mode" {
		t.Errorf("ModeClass = %q", c.ModeClass)
	}
	letters := []string{c.Options[0].Letter, c.Options[1].Letter, c.Options[2].Letter, c.Options[3].Letter}
	if !equal(letters, []string{"A", "B", "C", "D"}) {
		t.Errorf("letters = %v", letters)
	}
}

func TestBuildCardTakeUnanswered(t *testing.T) {
	c := BuildCard(cardQuestion(), 0, attempt.ModeTake, "", false, false)

	if c.ShowDifficulty {
		t.Error("difficulty shown before answers are revealed")
	}
	if c.ShowAnswer {
		t.Error("answer shown before submission")
	}
	if !equal(classes(c), []string{"option", "option", "option", "option"}) {
		t.Errorf("classes = %v", classes(c))
	}
	for _, o := range c.Options {
		if !o.Selectable {
			t.Fatalf("option %s not selectable in take mode", o.Letter)
		}
	}
}

func TestBuildCardTakeSelected(t *testing.T) {
	c := BuildCard(cardQuestion(), 0, attempt.ModeTake, "Nice", false, false)

	want := []string{"option", "option", "option selected", "option"}
	if !equal(classes(c), want) {
		t.Errorf("classes = %v, want %v", classes(c), want)
	}
	if !equal(icons(c), []string{"", "", "", ""}) {
		t.Errorf("icons before reveal = %v", icons(c))
	}
}

func TestBuildCardRevealWrongSelection(t *testing.T) {
	c := BuildCard(cardQuestion(), 0, attempt.ModeTake, "Nice", true, true)

	wantClasses := []string{"option", "option correct-answer", "option selected incorrect", "option"}
	if !equal(classes(c), wantClasses) {
		t.Errorf("classes = %v, want %v", classes(c), wantClasses)
	}
	wantIcons := []string{IconNone, IconCorrect, IconIncorrect, IconNone}
	if !equal(icons(c), wantIcons) {
		t.Errorf("icons = %v, want %v", icons(c), wantIcons)
	}
	if !c.ShowAnswer || c.Explanation == "" {
		t.Error("answer section missing after reveal")
	}
	if !c.ShowDifficulty || c.DifficultyClass != "difficulty-easy" {
		t.Errorf("difficulty: show=%v class=%q", c.ShowDifficulty, c.DifficultyClass)
	}
	for _, o := range c.Options {
		if o.Selectable {
			t.Fatal("disabled card has selectable option")
		}
	}
}

func TestBuildCardRevealRightSelection(t *testing.T) {
	c := BuildCard(cardQuestion(), 0, attempt.ModeTake, "Paris", true, true)

	want := []string{"option", "option selected correct correct-answer", "option", "option"}
	if !equal(classes(c), want) {
		t.Errorf("classes = %v, want %v", classes(c), want)
	}
}

func TestBuildCardViewMode(t *testing.T) {
	c := BuildCard(cardQuestion(), 0, attempt.ModeView, "", true, false)

	if c.ModeClass != "view-mode" {
		t.Errorf("ModeClass = %q", c.ModeClass)
	}
	if !c.ShowDifficulty {
		t.Error("view mode hides difficulty")
	}
	if !equal(classes(c), []string{"option", "option", "option", "option"}) {
		t.Errorf("view mode classes = %v", classes(c))
	}
	if !equal(icons(c), []string{"", "", "", ""}) {
		t.Errorf("view mode icons = %v", icons(c))
	}
	for _, o := range c.Options {
		if o.Selectable {
			t.Fatal("view mode option is selectable")
		}
	}
}

func TestBuildCardNoDifficulty(t *testing.T) {
	q := cardQuestion()
	q.Difficulty = ""
	c := BuildCard(q, 0, attempt.ModeView, "", true, false)
	if c.ShowDifficulty {
		t.Error("empty difficulty rendered")
	}
}
