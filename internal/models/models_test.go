package models

import (
	"encoding/json"
	"testing"
)

func sampleQuestions() []Question {
	return []Question{
		{Question: "Q1", Options: []string{"a", "b", "c", "d"}, Answer: "a"},
		{Question: "Q2", Options: []string{"a", "b", "c", "d"}, Answer: "c"},
		{Question: "Q3", Options: []string{"x", "y"}, Answer: "y"},
	}
}

func TestAnswerMapComplete(t *testing.T) {
	tests := []struct {
		name    string
		answers AnswerMap
		n       int
		want    bool
	}{
		{"empty", AnswerMap{}, 3, false},
		{"partial", AnswerMap{0: "a", 2: "y"}, 3, false},
		{"all", AnswerMap{0: "a", 1: "b", 2: "y"}, 3, true},
		{"out of range key", AnswerMap{0: "a", 1: "b", 5: "y"}, 3, false},
		{"zero questions", AnswerMap{}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.answers.Complete(tt.n); got != tt.want {
				t.Errorf("Complete(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestAnswerMapScore(t *testing.T) {
	qs := sampleQuestions()

	tests := []struct {
		answers AnswerMap
		want    int
	}{
		{AnswerMap{}, 0},
		{AnswerMap{0: "a", 1: "c", 2: "y"}, 3},
		{AnswerMap{0: "b", 1: "c", 2: "x"}, 1},
		{AnswerMap{0: "a"}, 1},
	}

	for _, tt := range tests {
		if got := tt.answers.Score(qs); got != tt.want {
			t.Errorf("Score(%v) = %d, want %d", tt.answers, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		score, total, want int
	}{
		{0, 5, 0},
		{5, 5, 100},
		{1, 3, 33},
		{2, 3, 67},
		{0, 0, 0},
	}

	for _, tt := range tests {
		if got := Percent(tt.score, tt.total); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.score, tt.total, got, tt.want)
		}
	}
}

func TestHistoryEntryDecode(t *testing.T) {
	raw := `{
		"id": 7,
		"url": "https://en.wikipedia.org/wiki/Go_(programming_language)",
		"title": "Go (programming language)",
		"summary": "Go is a language.",
		"sections": ["History", "Design"],
		"quiz": [{"question": "Who?", "options": ["a","b"], "answer": "a", "difficulty": "Easy"}],
		"related_topics": ["Rob Pike"],
		"key_entities": {"people": ["Rob Pike"], "organizations": ["Google"], "locations": []}
	}`

	var entry HistoryEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if entry.ID != 7 || entry.Title != "Go (programming language)" {
		t.Fatalf("unexpected entry header: %+v", entry)
	}
	if entry.Len() != 1 || entry.Questions[0].Difficulty != "Easy" {
		t.Fatalf("unexpected questions: %+v", entry.Questions)
	}
	if entry.KeyEntities == nil || entry.KeyEntities.Organizations[0] != "Google" {
		t.Fatalf("unexpected key entities: %+v", entry.KeyEntities)
	}
}

func TestQuestionHasOption(t *testing.T) {
	q := sampleQuestions()[0]
	if !q.HasOption("b") {
		t.Error("expected option b to be present")
	}
	if q.HasOption("z") {
		t.Error("expected option z to be absent")
	}
}
