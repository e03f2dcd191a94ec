package models

import "math"

// Quiz represents a quiz generated from a Wikipedia article
type Quiz struct {
	Title         string     `json:"title"`
	Questions     []Question `json:"quiz"`
	RelatedTopics []string   `json:"related_topics"`
}

// Question represents a single multiple-choice question in a quiz.
// Answer is expected to equal one of Options.
type Question struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Difficulty  string   `json:"difficulty,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
}

// KeyEntities holds the people, organizations and locations the backend extracted from the article
type KeyEntities struct {
	People        []string `json:"people"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
}

// HistoryEntry is a quiz persisted by the backend.
// Everything beyond ID and the embedded Quiz is optional.
type HistoryEntry struct {
	ID int `json:"id"`
	Quiz
	URL         string       `json:"url,omitempty"`
	Summary     string       `json:"summary,omitempty"`
	Sections    []string     `json:"sections,omitempty"`
	KeyEntities *KeyEntities `json:"key_entities,omitempty"`
}

// PreviewResponse is the body of a successful preview lookup
type PreviewResponse struct {
	Title string `json:"title"`
}

// Len returns the number of questions
func (q Quiz) Len() int {
	return len(q.Questions)
}

// HasOption reports whether option is one of the question's options
func (q Question) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}

// AnswerMap maps a question index to the option the user selected
type AnswerMap map[int]string

// Complete reports whether there is exactly one answer per question index in [0, n)
func (a AnswerMap) Complete(n int) bool {
	if len(a) != n {
		return false
	}
	for i := 0; i < n; i++ {
		if _, ok := a[i]; !ok {
			return false
		}
	}
	return true
}

// Score counts the indexes where the selected option equals the question's answer
func (a AnswerMap) Score(questions []Question) int {
	score := 0
	for i, q := range questions {
		if sel, ok := a[i]; ok && sel == q.Answer {
			score++
		}
	}
	return score
}

// Percent returns score/total rounded to the nearest whole percent
func Percent(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}
