package storage

import (
	"github.com/charmbracelet/log"

	"github.com/tinypulse/arcade/internal/core"
)

// Reporter saves finished runs into a Store.
// Failures are logged and never reach the game.
type Reporter struct {
	store  *Store
	logger *log.Logger
}

// NewReporter creates a reporter backed by store. A nil logger uses log.Default().
func NewReporter(store *Store, logger *log.Logger) *Reporter {
	if logger == nil {
		logger = log.Default()
	}
	return &Reporter{store: store, logger: logger}
}

// ReportScore implements core.ScoreReporter. Zero scores are not stored.
// Beating the stored best is logged at info level.
func (r *Reporter) ReportScore(res core.Result) {
	if r.store == nil || res.Score <= 0 {
		return
	}
	best, bestErr := r.store.HighScore(res.GameID)
	id, err := r.store.SaveResult(res)
	if err != nil {
		r.logger.Warn("score not saved", "game", res.GameID, "score", res.Score, "err", err)
		return
	}
	r.logger.Debug("score saved", "game", res.GameID, "score", res.Score, "lines", res.Lines, "id", id)
	if bestErr == nil && res.Score > best {
		r.logger.Info("new high score", "game", res.GameID, "score", res.Score, "previous", best)
	}
}

var _ core.ScoreReporter = (*Reporter)(nil)
