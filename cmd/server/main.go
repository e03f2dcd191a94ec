package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wikiquiz/internal/api"
	"wikiquiz/internal/api/handlers"
	"wikiquiz/internal/config"
	"wikiquiz/internal/logger"
	"wikiquiz/internal/quizapi"
	"wikiquiz/internal/sessionstore"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", "error", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Register types needed for session storage
	handlers.RegisterSessionTypes()

	// --- Session Configuration ---
	store, closeStore, err := sessionstore.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to create session store", "error", err)
	}
	defer closeStore()

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.SessionMaxAge,
		Secure:   cfg.SessionSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	// --- Quiz backend ---
	var cache quizapi.PreviewCache
	if cfg.RedisURL != "" {
		redisCache, err := quizapi.NewRedisPreviewCache(cfg.RedisURL, cfg.PreviewCacheTTL)
		if err != nil {
			log.Warn("redis unavailable, preview cache disabled", "error", err)
		} else {
			defer redisCache.Close()
			cache = redisCache
			log.Info("preview cache enabled", "ttl", cfg.PreviewCacheTTL)
		}
	}
	client := quizapi.NewClient(cfg.QuizAPIURL, cfg.QuizAPITimeout, cache, log)

	handler := handlers.NewHandler(client, log)
	router, err := api.NewRouter(handler, store, log)
	if err != nil {
		log.Fatal("failed to build router", "error", err)
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "port", cfg.Port, "quiz_api", cfg.QuizAPIURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "error", err)
		return
	}
	log.Info("server exited properly")
}
