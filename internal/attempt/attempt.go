// Package attempt holds the quiz-taking state machines: a single attempt
// (answers, submission, score), the generator panel and the history modal.
package attempt

import (
	"errors"

	"github.com/google/uuid"

	"wikiquiz/internal/models"
)

var (
	ErrIncomplete    = errors.New("not every question has an answer")
	ErrSubmitted     = errors.New("attempt already submitted")
	ErrQuestionRange = errors.New("question index out of range")
	ErrUnknownOption = errors.New("option is not one of the question's options")
	ErrStaleAttempt  = errors.New("attempt id does not match the current attempt")
	ErrNoQuiz        = errors.New("no quiz loaded")
	ErrViewOnly      = errors.New("quiz is open in view mode")
)

// Attempt is one pass through a quiz. A fresh ID is issued on every reset so
// that form posts rendered for an earlier attempt can be told apart.
type Attempt struct {
	ID        uuid.UUID
	Answers   models.AnswerMap
	Submitted bool
	Score     int
}

// NewAttempt returns an empty, unsubmitted attempt
func NewAttempt() Attempt {
	return Attempt{
		ID:      uuid.New(),
		Answers: models.AnswerMap{},
	}
}

// Reset clears answers and submission and issues a new attempt ID
func (a *Attempt) Reset() {
	*a = NewAttempt()
}

// Answered returns how many questions have a selection
func (a *Attempt) Answered() int {
	return len(a.Answers)
}

// Selected returns the option chosen for question i, if any
func (a *Attempt) Selected(i int) (string, bool) {
	opt, ok := a.Answers[i]
	return opt, ok
}

// Select records option as the answer to question i.
// Once submitted the answers are frozen.
func (a *Attempt) Select(questions []models.Question, i int, option string) error {
	if a.Submitted {
		return ErrSubmitted
	}
	if i < 0 || i >= len(questions) {
		return ErrQuestionRange
	}
	if !questions[i].HasOption(option) {
		return ErrUnknownOption
	}
	if a.Answers == nil {
		a.Answers = models.AnswerMap{}
	}
	a.Answers[i] = option
	return nil
}

// Submit scores the attempt. It is rejected without any state change unless
// every question has exactly one answer.
func (a *Attempt) Submit(questions []models.Question) error {
	if a.Submitted {
		return ErrSubmitted
	}
	if !a.Answers.Complete(len(questions)) {
		return ErrIncomplete
	}
	a.Score = a.Answers.Score(questions)
	a.Submitted = true
	return nil
}

// Percent returns the score as a rounded percentage of total
func (a *Attempt) Percent(total int) int {
	return models.Percent(a.Score, total)
}

// CheckID rejects posts that were rendered for a different attempt
func (a *Attempt) CheckID(id uuid.UUID) error {
	if id != a.ID {
		return ErrStaleAttempt
	}
	return nil
}
