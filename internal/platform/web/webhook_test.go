package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinypulse/arcade/internal/core"
)

func TestWebhookReporterPostsResult(t *testing.T) {
	var (
		mu       sync.Mutex
		received []core.Result
	)
	host := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var res core.Result
		if assert.NoError(t, json.NewDecoder(r.Body).Decode(&res)) {
			mu.Lock()
			received = append(received, res)
			mu.Unlock()
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer host.Close()

	rep := NewWebhookReporter(host.URL, log.New(&strings.Builder{}))
	want := core.Result{GameID: "blockfall", RunID: "r1", Score: 1200, Lines: 9}
	rep.ReportScore(want)
	rep.Wait()

	require.Len(t, received, 1)
	assert.Equal(t, want, received[0])
}

func TestWebhookReporterLogsFailure(t *testing.T) {
	host := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer host.Close()

	var logs safeBuffer
	rep := NewWebhookReporter(host.URL, log.New(&logs))
	rep.ReportScore(core.Result{GameID: "blockfall", Score: 1})
	rep.Wait()

	assert.Contains(t, logs.String(), "score webhook failed")
	assert.Contains(t, logs.String(), "503")
}

// safeBuffer is a strings.Builder guarded for writes from the delivery goroutine.
type safeBuffer struct {
	mu sync.Mutex
	sb strings.Builder
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sb.String()
}
