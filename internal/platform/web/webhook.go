package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tinypulse/arcade/internal/core"
)

// WebhookReporter posts each finished run as JSON to a host URL.
// Requests run in the background so the game loop never waits on the network;
// failures are logged.
type WebhookReporter struct {
	url     string
	client  *http.Client
	logger  *log.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewWebhookReporter creates a reporter for url. A nil logger uses log.Default().
func NewWebhookReporter(url string, logger *log.Logger) *WebhookReporter {
	if logger == nil {
		logger = log.Default()
	}
	return &WebhookReporter{
		url:     url,
		client:  &http.Client{},
		logger:  logger,
		timeout: 5 * time.Second,
	}
}

// ReportScore implements core.ScoreReporter.
func (w *WebhookReporter) ReportScore(r core.Result) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
		defer cancel()
		if err := w.post(ctx, r); err != nil {
			w.logger.Warn("score webhook failed", "url", w.url, "game", r.GameID, "err", err)
			return
		}
		w.logger.Debug("score webhook delivered", "url", w.url, "run", r.RunID)
	}()
}

func (w *WebhookReporter) post(ctx context.Context, r core.Result) error {
	body, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("web: encode result: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("web: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("web: post result: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("web: host answered %s", resp.Status)
	}
	return nil
}

// Wait blocks until all in-flight deliveries finish.
func (w *WebhookReporter) Wait() {
	w.wg.Wait()
}

var _ core.ScoreReporter = (*WebhookReporter)(nil)
