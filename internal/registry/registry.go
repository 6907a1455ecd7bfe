// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/tinypulse/arcade/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "blockfall").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Blockfall").
	Title() string

	// Reset initializes the game state for a new session.
	// Restarting after game over is driven through Step with ActionRestart.
	// The RuntimeConfig provides screen dimensions, tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Left, Rotate, Pause, etc.).
	// Returns the result of this tick including current game state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState

	// SetScoreReporter sets the callback invoked once per finished run.
	SetScoreReporter(r core.ScoreReporter)
}

// Resizable is implemented by games that can adapt to a new screen size
// without restarting. Platforms fall back to Reset for other games.
type Resizable interface {
	Resize(w, h int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// ErrUnknownGame is returned by Create for ids that were never registered.
var ErrUnknownGame = errors.New("registry: unknown game")

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory to the registry, usually from the game's init().
// The title is read once from a throwaway instance.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	games := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		games = append(games, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(games, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return games
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
