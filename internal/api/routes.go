package api

import (
	"fmt"

	"wikiquiz/internal/api/handlers"
	"wikiquiz/internal/logger"
	"wikiquiz/internal/views"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionName is the cookie that identifies a browser's quiz state
const SessionName = "wikiquiz_session"

// NewRouter builds the engine with middleware, templates and every page route
func NewRouter(handler *handlers.Handler, store sessions.Store, log *logger.Logger) (*gin.Engine, error) {
	tmpl, err := views.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(log))
	router.Use(sessions.Sessions(SessionName, store))
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", views.Static())

	SetupRoutes(router, handler)
	return router, nil
}

// SetupRoutes sets up the page routes
func SetupRoutes(router *gin.Engine, handler *handlers.Handler) {
	router.GET("/healthz", handler.HandleHealth)

	// --- Generator tab ---
	router.GET("/", handler.HandleGeneratePage)
	router.POST("/preview", handler.HandlePreview)
	router.POST("/generate", handler.HandleGenerate)

	quiz := router.Group("/quiz")
	{
		quiz.POST("/answer", handler.HandleAnswer)
		quiz.POST("/submit", handler.HandleSubmit)
		quiz.POST("/new", handler.HandleNewQuiz)
	}

	// --- History tab ---
	history := router.Group("/history")
	{
		history.GET("", handler.HandleHistoryPage)
		history.POST("/:id/open", handler.HandleOpenModal)

		modal := history.Group("/modal")
		{
			modal.POST("/mode", handler.HandleModalMode)
			modal.POST("/answer", handler.HandleModalAnswer)
			modal.POST("/submit", handler.HandleModalSubmit)
			modal.POST("/retake", handler.HandleModalRetake)
			modal.POST("/close", handler.HandleModalClose)
		}
	}
}
