package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tinypulse/arcade/internal/storage"
)

type fakeScores struct {
	entries []storage.ScoreEntry
	err     error
}

func (f fakeScores) TopScores(string, int) ([]storage.ScoreEntry, error) {
	return f.entries, f.err
}

func (f fakeScores) GetGameStats(gameID string) (*storage.GameStats, error) {
	stats := &storage.GameStats{GameID: gameID, GamesCount: len(f.entries)}
	for _, e := range f.entries {
		stats.HighScore = max(stats.HighScore, e.Score)
		stats.TotalLines += int64(e.Lines)
	}
	return stats, nil
}

func TestScoreboardShowsScores(t *testing.T) {
	src := fakeScores{entries: []storage.ScoreEntry{
		{GameID: "blockfall", Score: 1200, Lines: 11, CreatedAt: time.Date(2026, 3, 4, 5, 6, 0, 0, time.UTC)},
		{GameID: "blockfall", Score: 300, Lines: 2},
	}}
	m := NewScoreboardModel(src, "blockfall", "Blockfall", 80, 24)

	view := m.View()
	assert.Contains(t, view, "HIGH SCORES - Blockfall")
	assert.Contains(t, view, "1200")
	assert.Contains(t, view, "2 runs")
	assert.Len(t, m.table.Rows(), 2)
}

func TestScoreboardEmptyAndError(t *testing.T) {
	empty := NewScoreboardModel(fakeScores{}, "blockfall", "Blockfall", 80, 24)
	assert.Contains(t, empty.View(), "No scores recorded yet")

	failing := NewScoreboardModel(fakeScores{err: errors.New("disk gone")}, "blockfall", "Blockfall", 80, 24)
	assert.Contains(t, failing.View(), "disk gone")

	none := NewScoreboardModel(nil, "blockfall", "Blockfall", 80, 24)
	assert.Contains(t, none.View(), "No scores recorded yet")
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(fakeScores{}, "blockfall", "Blockfall", 80, 24)
	next, cmd := m.Update(keyMsg("q"))
	assert.NotNil(t, cmd)
	assert.Equal(t, "", next.View())
}
