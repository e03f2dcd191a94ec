package handlers

import (
	"errors"
	"net/http"
	"strings"

	"wikiquiz/internal/attempt"
	"wikiquiz/internal/views"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// HandleGeneratePage renders the generator panel from the session state
func (h *Handler) HandleGeneratePage(c *gin.Context) {
	g := loadGenerator(sessions.Default(c))
	c.HTML(http.StatusOK, "generate.tmpl", views.NewGeneratorPage(g))
}

// HandlePreview stores the typed URL and fetches the article title
func (h *Handler) HandlePreview(c *gin.Context) {
	session := sessions.Default(c)
	g := loadGenerator(session)
	articleURL := strings.TrimSpace(c.PostForm("url"))

	if err := g.EnterURL(c.Request.Context(), h.Backend, articleURL); err != nil {
		h.logger(c).Warn("article preview failed", "url", articleURL, "error", err)
	}

	h.saveAndRedirect(c, session, GeneratorSessionKey, *g, "/")
}

// HandleGenerate requests a quiz for the URL in the form, or the stored one if the form has none
func (h *Handler) HandleGenerate(c *gin.Context) {
	session := sessions.Default(c)
	g := loadGenerator(session)
	log := h.logger(c)

	if articleURL, ok := c.GetPostForm("url"); ok {
		articleURL = strings.TrimSpace(articleURL)
		if articleURL != g.URL {
			g.URL = articleURL
			g.PreviewTitle = ""
		}
	}

	if err := g.Generate(c.Request.Context(), h.Backend); err != nil {
		log.Error("quiz generation failed", "url", g.URL, "error", err)
	} else if g.Quiz != nil && g.Error == "" {
		log.Info("quiz generated", "url", g.URL, "title", g.Quiz.Title, "questions", g.Quiz.Len())
	}

	h.saveAndRedirect(c, session, GeneratorSessionKey, *g, "/")
}

// HandleAnswer records the option the user clicked
func (h *Handler) HandleAnswer(c *gin.Context) {
	session := sessions.Default(c)
	g := loadGenerator(session)

	form, ok := parseAnswerForm(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid answer form"})
		return
	}
	if g.Quiz == nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	if err := g.Attempt.CheckID(form.AttemptID); err != nil {
		h.logger(c).Debug("ignoring answer for stale attempt", "attempt", form.AttemptID)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	option, ok := optionAt(g.Quiz.Questions, form.Question, form.Option)
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Question or option out of range"})
		return
	}
	if err := g.Select(form.Question, option); err != nil {
		if errors.Is(err, attempt.ErrSubmitted) {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		h.logger(c).Warn("answer rejected", "question", form.Question, "error", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid answer"})
		return
	}

	h.saveAndRedirect(c, session, GeneratorSessionKey, *g, "/")
}

// HandleSubmit scores the generator attempt, or shows the incomplete message
func (h *Handler) HandleSubmit(c *gin.Context) {
	session := sessions.Default(c)
	g := loadGenerator(session)

	id, ok := parseAttemptID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid attempt id"})
		return
	}
	if g.Quiz == nil || g.Attempt.CheckID(id) != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	if err := g.Submit(); err == nil {
		h.logger(c).Info("quiz submitted", "title", g.Quiz.Title, "score", g.Attempt.Score, "total", g.Quiz.Len())
	} else if !errors.Is(err, attempt.ErrIncomplete) && !errors.Is(err, attempt.ErrSubmitted) {
		h.logger(c).Warn("submit failed", "error", err)
	}

	h.saveAndRedirect(c, session, GeneratorSessionKey, *g, "/")
}

// HandleNewQuiz drops the current quiz and its answers
func (h *Handler) HandleNewQuiz(c *gin.Context) {
	session := sessions.Default(c)
	g := loadGenerator(session)
	g.NewQuiz()
	h.saveAndRedirect(c, session, GeneratorSessionKey, *g, "/")
}
