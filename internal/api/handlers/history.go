package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"wikiquiz/internal/attempt"
	"wikiquiz/internal/models"
	"wikiquiz/internal/views"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const historyNoticeFlash = "history_notice"

// HandleHistoryPage lists past quizzes and renders the open modal, if any
func (h *Handler) HandleHistoryPage(c *gin.Context) {
	session := sessions.Default(c)
	log := h.logger(c)

	var loadErr string
	entries, err := h.Backend.History(c.Request.Context())
	if err != nil {
		log.Error("failed to load history", "error", err)
		loadErr = MsgHistoryFailed
	}

	page := views.NewHistoryPage(entries, loadErr, loadModal(session))

	if flashes := session.Flashes(historyNoticeFlash); len(flashes) > 0 {
		if notice, ok := flashes[len(flashes)-1].(string); ok {
			page.Notice = notice
		}
		if err := session.Save(); err != nil {
			log.Warn("failed to clear history notice", "error", err)
		}
	}

	c.HTML(http.StatusOK, "history.tmpl", page)
}

// HandleOpenModal opens a history entry in view or take mode
func (h *Handler) HandleOpenModal(c *gin.Context) {
	session := sessions.Default(c)
	log := h.logger(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid quiz id"})
		return
	}
	mode, ok := attempt.ParseMode(c.DefaultPostForm("mode", string(attempt.ModeView)))
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid mode"})
		return
	}

	entries, err := h.Backend.History(c.Request.Context())
	if err != nil {
		log.Error("failed to load history", "error", err)
		h.flashAndRedirect(c, session, MsgHistoryFailed)
		return
	}
	entry, found := findEntry(entries, id)
	if !found {
		log.Warn("history entry not found", "id", id)
		h.flashAndRedirect(c, session, MsgHistoryNotFound)
		return
	}

	h.saveAndRedirect(c, session, ModalSessionKey, *attempt.OpenModal(entry, mode), "/history")
}

// HandleModalMode toggles the open modal between view and take
func (h *Handler) HandleModalMode(c *gin.Context) {
	session := sessions.Default(c)
	m := loadModal(session)
	if m == nil {
		c.Redirect(http.StatusSeeOther, "/history")
		return
	}

	mode, ok := attempt.ParseMode(c.PostForm("mode"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid mode"})
		return
	}
	m.SetMode(mode)

	h.saveAndRedirect(c, session, ModalSessionKey, *m, "/history")
}

// HandleModalAnswer records an answer in the modal attempt
func (h *Handler) HandleModalAnswer(c *gin.Context) {
	session := sessions.Default(c)
	m := loadModal(session)

	form, ok := parseAnswerForm(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid answer form"})
		return
	}
	if m == nil || m.Attempt.CheckID(form.AttemptID) != nil {
		c.Redirect(http.StatusSeeOther, "/history")
		return
	}

	option, ok := optionAt(m.Entry.Questions, form.Question, form.Option)
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Question or option out of range"})
		return
	}
	if err := m.Select(form.Question, option); err != nil {
		if errors.Is(err, attempt.ErrSubmitted) || errors.Is(err, attempt.ErrViewOnly) {
			c.Redirect(http.StatusSeeOther, "/history")
			return
		}
		h.logger(c).Warn("modal answer rejected", "question", form.Question, "error", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid answer"})
		return
	}

	h.saveAndRedirect(c, session, ModalSessionKey, *m, "/history")
}

// HandleModalSubmit scores the modal attempt
func (h *Handler) HandleModalSubmit(c *gin.Context) {
	session := sessions.Default(c)
	m := loadModal(session)

	id, ok := parseAttemptID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid attempt id"})
		return
	}
	if m == nil || m.Attempt.CheckID(id) != nil {
		c.Redirect(http.StatusSeeOther, "/history")
		return
	}

	if err := m.Submit(); err == nil {
		h.logger(c).Info("history quiz submitted", "id", m.Entry.ID, "score", m.Attempt.Score, "total", m.Entry.Len())
	}

	h.saveAndRedirect(c, session, ModalSessionKey, *m, "/history")
}

// HandleModalRetake starts a fresh attempt on the open modal
func (h *Handler) HandleModalRetake(c *gin.Context) {
	session := sessions.Default(c)
	m := loadModal(session)
	if m == nil {
		c.Redirect(http.StatusSeeOther, "/history")
		return
	}
	m.Retake()
	h.saveAndRedirect(c, session, ModalSessionKey, *m, "/history")
}

// HandleModalClose closes the modal and forgets its attempt
func (h *Handler) HandleModalClose(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(ModalSessionKey)
	if err := session.Save(); err != nil {
		h.logger(c).Error("failed to save session", "key", ModalSessionKey, "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}
	c.Redirect(http.StatusSeeOther, "/history")
}

func (h *Handler) flashAndRedirect(c *gin.Context, session sessions.Session, notice string) {
	session.AddFlash(notice, historyNoticeFlash)
	session.Delete(ModalSessionKey)
	if err := session.Save(); err != nil {
		h.logger(c).Error("failed to save session", "error", err)
	}
	c.Redirect(http.StatusSeeOther, "/history")
}

func findEntry(entries []models.HistoryEntry, id int) (models.HistoryEntry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return models.HistoryEntry{}, false
}
