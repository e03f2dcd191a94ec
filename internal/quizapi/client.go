package quizapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"wikiquiz/internal/logger"
	"wikiquiz/internal/models"
)

// maxErrorBody caps how much of a failed response body is kept for logging
const maxErrorBody = 512

// ErrInvalidURL is returned without any request being sent
var ErrInvalidURL = errors.New("not a Wikipedia article URL")

// StatusError reports a non-2xx response from the quiz backend
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: backend returned status %d", e.Op, e.StatusCode)
}

// Client talks to the quiz-generation backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      PreviewCache
	log        *logger.Logger
}

// NewClient creates a Client. cache may be nil, which disables preview caching.
func NewClient(baseURL string, timeout time.Duration, cache PreviewCache, log *logger.Logger) *Client {
	if cache == nil {
		cache = noopCache{}
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cache: cache,
		log:   log,
	}
}

// Preview returns the title of the article at articleURL.
func (c *Client) Preview(ctx context.Context, articleURL string) (string, error) {
	if !IsArticleURL(articleURL) {
		return "", ErrInvalidURL
	}

	if title, ok, err := c.cache.GetTitle(ctx, articleURL); err != nil {
		c.log.Warn("preview cache read failed", "url", articleURL, "error", err)
	} else if ok {
		c.log.Debug("preview cache hit", "url", articleURL)
		return title, nil
	}

	var resp models.PreviewResponse
	if err := c.do(ctx, "preview", http.MethodGet, "/preview?url="+url.QueryEscape(articleURL), &resp); err != nil {
		return "", err
	}

	if err := c.cache.SetTitle(ctx, articleURL, resp.Title); err != nil {
		c.log.Warn("preview cache write failed", "url", articleURL, "error", err)
	}
	return resp.Title, nil
}

// Generate asks the backend to build (or return the stored) quiz for articleURL.
func (c *Client) Generate(ctx context.Context, articleURL string) (*models.Quiz, error) {
	if !IsArticleURL(articleURL) {
		return nil, ErrInvalidURL
	}

	var quiz models.Quiz
	if err := c.do(ctx, "generate", http.MethodPost, "/generate?url="+url.QueryEscape(articleURL), &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

// History lists every quiz the backend has stored, in backend order.
func (c *Client) History(ctx context.Context) ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry
	if err := c.do(ctx, "history", http.MethodGet, "/history", &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	return entries, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, out interface{}) error {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: request failed: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Op: op, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", op, err)
	}

	c.log.Debug("quiz backend call", "op", op, "status", resp.StatusCode, "latency", time.Since(start))
	return nil
}
