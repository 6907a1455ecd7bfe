package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinypulse/arcade/internal/core"
	_ "github.com/tinypulse/arcade/internal/games/blockfall"
	"github.com/tinypulse/arcade/internal/storage"
)

func newTestServer(t *testing.T) (*httptest.Server, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	srv := httptest.NewServer(NewServer(store, log.New(&strings.Builder{})).Routes())
	t.Cleanup(srv.Close)
	return srv, store
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	var body map[string]string
	status := getJSON(t, srv.URL+"/api/health", &body)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}

func TestListGames(t *testing.T) {
	srv, _ := newTestServer(t)

	var games []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	status := getJSON(t, srv.URL+"/api/games", &games)

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, games, struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}{"blockfall", "Blockfall"})
}

func TestListScores(t *testing.T) {
	srv, store := newTestServer(t)
	for _, score := range []int{100, 800, 300} {
		_, err := store.SaveResult(core.Result{GameID: "blockfall", Score: score, Lines: score / 100})
		require.NoError(t, err)
	}

	var scores []storage.ScoreEntry
	status := getJSON(t, srv.URL+"/api/scores/blockfall?limit=2", &scores)

	require.Equal(t, http.StatusOK, status)
	require.Len(t, scores, 2)
	assert.Equal(t, 800, scores[0].Score)
	assert.Equal(t, 8, scores[0].Lines)
	assert.Equal(t, 300, scores[1].Score)
}

func TestListScoresEmpty(t *testing.T) {
	srv, _ := newTestServer(t)

	var scores []storage.ScoreEntry
	status := getJSON(t, srv.URL+"/api/scores/blockfall", &scores)

	assert.Equal(t, http.StatusOK, status)
	assert.NotNil(t, scores)
	assert.Empty(t, scores)
}

func TestListScoresErrors(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"unknown game", "/api/scores/tetrominoes", http.StatusNotFound},
		{"bad limit", "/api/scores/blockfall?limit=abc", http.StatusBadRequest},
		{"zero limit", "/api/scores/blockfall?limit=0", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body map[string]string
			status := getJSON(t, srv.URL+tt.path, &body)
			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestBestScore(t *testing.T) {
	srv, store := newTestServer(t)
	store.SaveResult(core.Result{GameID: "blockfall", Score: 500, Lines: 3})
	store.SaveResult(core.Result{GameID: "blockfall", Score: 1500, Lines: 12})

	var stats storage.GameStats
	status := getJSON(t, srv.URL+"/api/scores/blockfall/best", &stats)

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1500, stats.HighScore)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, int64(15), stats.TotalLines)
}

func TestPostScore(t *testing.T) {
	srv, store := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/scores/blockfall", "application/json",
		strings.NewReader(`{"score": 900, "lines": 7, "run_id": "host-run"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var body struct {
		ID    int64  `json:"id"`
		RunID string `json:"run_id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Positive(t, body.ID)
	assert.Equal(t, "host-run", body.RunID)

	scores, err := store.TopScores("blockfall", 1)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 900, scores[0].Score)
	assert.Equal(t, 7, scores[0].Lines)
}

func TestPostScoreAssignsRunID(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/scores/blockfall", "application/json", strings.NewReader(`{"score": 100}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body["run_id"], 36)
}

func TestPostScoreRejectsBadInput(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, payload := range []string{
		`not json`,
		`{"score": -5}`,
		`{"score": 10, "cheat": true}`,
		`{"game_id": "snake", "score": 10}`,
	} {
		resp, err := http.Post(srv.URL+"/api/scores/blockfall", "application/json", strings.NewReader(payload))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, payload)
	}
}

func TestWebhookReporterDeliversToServer(t *testing.T) {
	srv, store := newTestServer(t)

	var logs strings.Builder
	reporter := NewWebhookReporter(srv.URL+"/api/scores/blockfall", log.New(&logs))
	reporter.ReportScore(core.Result{GameID: "blockfall", RunID: "run-1", Score: 300, Lines: 2})
	reporter.Wait()

	scores, err := store.TopScores("blockfall", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1, logs.String())
	assert.Equal(t, 300, scores[0].Score)
	assert.Equal(t, 2, scores[0].Lines)
	assert.Equal(t, "run-1", scores[0].RunID)
	assert.NotContains(t, logs.String(), "webhook failed")
}

type failingStore struct{}

func (failingStore) SaveResult(core.Result) (int64, error) { return 0, errors.New("boom") }
func (failingStore) TopScores(string, int) ([]storage.ScoreEntry, error) {
	return nil, errors.New("boom")
}
func (failingStore) GetGameStats(string) (*storage.GameStats, error) { return nil, errors.New("boom") }

func TestStoreFailures(t *testing.T) {
	srv := httptest.NewServer(NewServer(failingStore{}, log.New(&strings.Builder{})).Routes())
	defer srv.Close()

	var body map[string]string
	assert.Equal(t, http.StatusInternalServerError, getJSON(t, srv.URL+"/api/scores/blockfall", &body))
	assert.Equal(t, http.StatusInternalServerError, getJSON(t, srv.URL+"/api/scores/blockfall/best", &body))

	resp, err := http.Post(srv.URL+"/api/scores/blockfall", "application/json", strings.NewReader(`{"score": 1}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
