package attempt

import (
	"errors"

	"wikiquiz/internal/models"
)

// Mode selects how the history modal shows its quiz
type Mode string

const (
	ModeView Mode = "view"
	ModeTake Mode = "take"
)

// ParseMode maps a form value to a Mode
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeView:
		return ModeView, true
	case ModeTake:
		return ModeTake, true
	}
	return "", false
}

// Modal is a historical quiz reopened from the history table. Its attempt is
// independent of the generator panel.
type Modal struct {
	Entry   models.HistoryEntry
	Mode    Mode
	Attempt Attempt
	Error   string
}

// OpenModal shows entry in the given mode with a fresh attempt
func OpenModal(entry models.HistoryEntry, mode Mode) *Modal {
	return &Modal{
		Entry:   entry,
		Mode:    mode,
		Attempt: NewAttempt(),
	}
}

// State is "view", "take" or "submitted"
func (m *Modal) State() string {
	if m.Mode == ModeTake && m.Attempt.Submitted {
		return "submitted"
	}
	return string(m.Mode)
}

// SetMode switches the modal. Entering take mode always discards prior answers.
func (m *Modal) SetMode(mode Mode) {
	m.Mode = mode
	m.Error = ""
	if mode == ModeTake {
		m.Attempt.Reset()
	}
}

// Select records an answer while taking the quiz
func (m *Modal) Select(i int, option string) error {
	if m.Mode != ModeTake {
		return ErrViewOnly
	}
	if err := m.Attempt.Select(m.Entry.Questions, i, option); err != nil {
		return err
	}
	m.Error = ""
	return nil
}

// Submit scores the modal attempt
func (m *Modal) Submit() error {
	if m.Mode != ModeTake {
		return ErrViewOnly
	}
	err := m.Attempt.Submit(m.Entry.Questions)
	if errors.Is(err, ErrIncomplete) {
		m.Error = MsgIncomplete
		return err
	}
	if err != nil {
		return err
	}
	m.Error = ""
	return nil
}

// Retake clears the attempt and returns to take mode
func (m *Modal) Retake() {
	m.SetMode(ModeTake)
}

// ShowAnswers reports whether cards reveal the answer and explanation
func (m *Modal) ShowAnswers() bool {
	return m.Mode == ModeView || m.Attempt.Submitted
}
