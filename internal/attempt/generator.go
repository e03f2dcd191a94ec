package attempt

import (
	"context"
	"errors"

	"wikiquiz/internal/models"
	"wikiquiz/internal/quizapi"
)

// Inline messages shown by the generator panel
const (
	MsgInvalidPreviewURL = "Please enter a valid Wikipedia URL"
	MsgPreviewFailed     = "Unable to fetch article preview"
	MsgMissingURL        = "Please enter a Wikipedia URL"
	MsgInvalidArticleURL = "Please enter a valid Wikipedia article URL"
	MsgGenerateFailed    = "Unable to generate quiz. Please try again."
	MsgIncomplete        = "Please answer all questions before submitting"
)

// Phase is the generator panel's position in its state machine
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhasePreviewing Phase = "previewing"
	PhaseGenerated  Phase = "generated"
	PhaseAnswering  Phase = "answering"
	PhaseSubmitted  Phase = "submitted"
)

// Backend is the part of the quiz service the generator panel calls
type Backend interface {
	Preview(ctx context.Context, articleURL string) (string, error)
	Generate(ctx context.Context, articleURL string) (*models.Quiz, error)
}

// Generator is the state of the "generate" tab for one browser session
type Generator struct {
	URL          string
	PreviewTitle string
	Quiz         *models.Quiz
	Attempt      Attempt
	Error        string
}

// NewGenerator returns an idle panel
func NewGenerator() *Generator {
	return &Generator{Attempt: NewAttempt()}
}

// Phase derives the panel's current state
func (g *Generator) Phase() Phase {
	switch {
	case g.Quiz != nil && g.Attempt.Submitted:
		return PhaseSubmitted
	case g.Quiz != nil && g.Attempt.Answered() > 0:
		return PhaseAnswering
	case g.Quiz != nil:
		return PhaseGenerated
	case g.URL != "":
		return PhasePreviewing
	default:
		return PhaseIdle
	}
}

// EnterURL stores the typed URL and looks up its article title. A URL that
// fails the prefix check never reaches the backend. The returned error is the
// backend failure, if any, for logging; the user sees g.Error.
func (g *Generator) EnterURL(ctx context.Context, b Backend, raw string) error {
	g.URL = raw
	g.PreviewTitle = ""
	g.Error = ""

	if raw == "" {
		return nil
	}
	if !quizapi.IsArticleURL(raw) {
		g.Error = MsgInvalidPreviewURL
		return nil
	}

	title, err := b.Preview(ctx, raw)
	if err != nil {
		g.Error = MsgPreviewFailed
		return err
	}
	g.PreviewTitle = title
	return nil
}

// Generate requests a quiz for the current URL and starts a fresh attempt on success
func (g *Generator) Generate(ctx context.Context, b Backend) error {
	if g.URL == "" {
		g.Error = MsgMissingURL
		return nil
	}
	if !quizapi.IsArticleURL(g.URL) {
		g.Error = MsgInvalidArticleURL
		return nil
	}

	g.Error = ""
	quiz, err := b.Generate(ctx, g.URL)
	if err != nil {
		g.Error = MsgGenerateFailed
		return err
	}
	g.Quiz = quiz
	g.Attempt.Reset()
	return nil
}

// Select records an answer. Selecting clears any inline error.
func (g *Generator) Select(i int, option string) error {
	if g.Quiz == nil {
		return ErrNoQuiz
	}
	if err := g.Attempt.Select(g.Quiz.Questions, i, option); err != nil {
		return err
	}
	g.Error = ""
	return nil
}

// Submit scores the attempt, or sets the incomplete message and leaves state untouched
func (g *Generator) Submit() error {
	if g.Quiz == nil {
		return ErrNoQuiz
	}
	err := g.Attempt.Submit(g.Quiz.Questions)
	if errors.Is(err, ErrIncomplete) {
		g.Error = MsgIncomplete
		return err
	}
	if err != nil {
		return err
	}
	g.Error = ""
	return nil
}

// NewQuiz drops the quiz and its answers. The URL and preview are kept.
func (g *Generator) NewQuiz() {
	g.Quiz = nil
	g.Attempt.Reset()
	g.Error = ""
}
