package blockfall

// Status is the externally visible state of the game adapter.
type Status string

const (
	StatusPlaying     Status = "playing"
	StatusPaused      Status = "paused"
	StatusGameOver    Status = "game_over"
	StatusPausedSmall Status = "paused_small_window"
)

// Snapshot captures the renderable state of a run.
type Snapshot struct {
	Tick         uint64
	Status       Status
	State        State
	Score        int
	Lines        int
	Level        int
	DropInterval float64
	Board        [][]ShapeID // copy, [row][col]
	Active       Piece
	Next         ShapeID
}

// Snapshot copies the session state.
func (s *Session) Snapshot() Snapshot {
	status := StatusPlaying
	if s.state == StateGameOver {
		status = StatusGameOver
	}
	return Snapshot{
		Status:       status,
		State:        s.state,
		Score:        s.score,
		Lines:        s.lines,
		Level:        s.Level(),
		DropInterval: s.DropInterval(),
		Board:        s.board.Cells(),
		Active:       s.active,
		Next:         s.next,
	}
}

// Snapshot returns the session snapshot with the adapter's tick and pause state.
func (g *Game) Snapshot() Snapshot {
	snap := g.session.Snapshot()
	snap.Tick = g.tick
	switch {
	case g.tooSmall:
		snap.Status = StatusPausedSmall
	case g.paused && snap.State == StatePlaying:
		snap.Status = StatusPaused
	}
	return snap
}
