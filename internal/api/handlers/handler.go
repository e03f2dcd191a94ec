package handlers

import (
	"context"
	"encoding/gob"
	"net/http"
	"strconv"

	"wikiquiz/internal/attempt"
	"wikiquiz/internal/logger"
	"wikiquiz/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Session keys - keep these consistent
const (
	GeneratorSessionKey = "generator"
	ModalSessionKey     = "modal"
)

// LoggerContextKey is where the request-scoped logger lives in the gin context
const LoggerContextKey = "logger"

// Inline messages owned by the history tab
const (
	MsgHistoryFailed   = "Unable to load quiz history"
	MsgHistoryNotFound = "Quiz not found in history"
)

// QuizBackend is everything the handlers need from the quiz service
type QuizBackend interface {
	attempt.Backend
	History(ctx context.Context) ([]models.HistoryEntry, error)
}

// Handler contains the page handlers' dependencies
type Handler struct {
	Backend QuizBackend
	Log     *logger.Logger
}

// NewHandler creates a new Handler
func NewHandler(backend QuizBackend, log *logger.Logger) *Handler {
	return &Handler{
		Backend: backend,
		Log:     log,
	}
}

// RegisterSessionTypes tells gob about the concrete types stored in sessions.
// Must run before the first session is saved.
func RegisterSessionTypes() {
	gob.Register(attempt.Generator{})
	gob.Register(attempt.Modal{})
}

// HandleHealth reports liveness
func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// logger returns the request-scoped logger set by the request middleware, or the handler's own
func (h *Handler) logger(c *gin.Context) *logger.Logger {
	if v, ok := c.Get(LoggerContextKey); ok {
		if l, ok := v.(*logger.Logger); ok {
			return l
		}
	}
	return h.Log
}

func loadGenerator(session sessions.Session) *attempt.Generator {
	if g, ok := session.Get(GeneratorSessionKey).(attempt.Generator); ok {
		return &g
	}
	return attempt.NewGenerator()
}

func loadModal(session sessions.Session) *attempt.Modal {
	if m, ok := session.Get(ModalSessionKey).(attempt.Modal); ok {
		return &m
	}
	return nil
}

// saveAndRedirect stores value under key and sends the browser back to location
func (h *Handler) saveAndRedirect(c *gin.Context, session sessions.Session, key string, value interface{}, location string) {
	session.Set(key, value)
	if err := session.Save(); err != nil {
		h.logger(c).Error("failed to save session", "key", key, "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}
	c.Redirect(http.StatusSeeOther, location)
}

// answerForm is the body posted by an option button
type answerForm struct {
	AttemptID uuid.UUID
	Question  int
	Option    int
}

// parseAnswerForm reads attempt, question and option from the posted form
func parseAnswerForm(c *gin.Context) (answerForm, bool) {
	var form answerForm
	id, err := uuid.Parse(c.PostForm("attempt"))
	if err != nil {
		return form, false
	}
	q, err := strconv.Atoi(c.PostForm("question"))
	if err != nil {
		return form, false
	}
	o, err := strconv.Atoi(c.PostForm("option"))
	if err != nil {
		return form, false
	}
	form.AttemptID, form.Question, form.Option = id, q, o
	return form, true
}

// parseAttemptID reads the attempt id posted with a submit button
func parseAttemptID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.PostForm("attempt"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// optionAt maps a posted option index to the option text. ok is false when
// either index is out of range.
func optionAt(questions []models.Question, question, option int) (string, bool) {
	if question < 0 || question >= len(questions) {
		return "", false
	}
	opts := questions[question].Options
	if option < 0 || option >= len(opts) {
		return "", false
	}
	return opts[option], true
}
