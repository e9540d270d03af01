package session

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

// Game owns a single State and serializes every transition on it.
// Each swipe runs to completion, persistence included, before the next
// one is accepted.
type Game struct {
	mu     sync.Mutex
	state  State
	rules  Rules
	rng    grid.Source
	store  Store
	logger *log.Logger
	moves  int
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for storage failures and lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// WithSource sets the randomness used for spawning.
func WithSource(rng grid.Source) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithSeed seeds spawning deterministically. 0 means use current time.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// Open creates a Game, resuming saved progress from store when it is
// present and well-formed and starting a new game otherwise.
// A nil store plays in memory only.
func Open(store Store, rules Rules, opts ...Option) *Game {
	g := &Game{
		rules: rules,
		store: store,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.state = g.load()
	return g
}

// load reads the high score and saved progress. Read errors and malformed
// progress fall back to a new game.
func (g *Game) load() State {
	if g.store == nil {
		return NewGame(g.rules, 0, g.rng)
	}

	high, err := g.store.LoadHighScore()
	if err != nil {
		g.logger.Warn("could not load high score", "error", err)
		high = 0
	}

	p, ok, err := g.store.LoadProgress()
	switch {
	case err != nil:
		g.logger.Warn("could not load saved game, starting fresh", "error", err)
	case !ok:
		g.logger.Debug("no saved game")
	default:
		if verr := p.Validate(g.rules); verr != nil {
			g.logger.Warn("discarding saved game", "error", verr)
			break
		}
		s := Resume(p, high)
		if s.HighScore > high {
			if err := g.store.SaveHighScore(s.HighScore); err != nil {
				g.logger.Error("could not save high score", "error", err)
			}
		}
		g.logger.Info("resumed saved game", "score", s.Score, "high", s.HighScore, "phase", s.Phase)
		return s
	}

	return NewGame(g.rules, high, g.rng)
}

// State returns the current state. The grid is a copy.
func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.state
	s.Grid = s.Grid.Clone()
	return s
}

// Rules returns the rules the game was opened with.
func (g *Game) Rules() Rules {
	return g.rules
}

// Moves returns the number of moving swipes since the last restart.
func (g *Game) Moves() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.moves
}

// Swipe applies dir to the current state and persists the result.
// Storage failures are logged; the in-memory state stays authoritative.
// The returned grid is a copy.
func (g *Game) Swipe(dir grid.Direction) (Outcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	out, err := HandleSwipe(g.state, dir, g.rules, g.rng)
	if err == nil && out.Moved {
		g.state = out.State
		g.moves++
		g.persist(out)
	}

	out.State.Grid = out.State.Grid.Clone()
	return out, err
}

// persist writes the effects of a moving swipe.
func (g *Game) persist(out Outcome) {
	if g.store == nil {
		return
	}

	p := Progress{Grid: out.State.Grid, Score: out.State.Score}
	if err := g.store.SaveProgress(p); err != nil {
		g.logger.Error("could not save progress", "error", err)
	}

	if out.HighScoreRaised {
		if err := g.store.SaveHighScore(out.State.HighScore); err != nil {
			g.logger.Error("could not save high score", "score", out.State.HighScore, "error", err)
		}
	}

	if out.GameOver {
		r := Result{
			Score:   out.State.Score,
			MaxTile: out.State.Grid.MaxTile(),
			Moves:   g.moves,
		}
		g.logger.Info("game over", "score", r.Score, "max_tile", r.MaxTile, "moves", r.Moves)
		if err := g.store.RecordGame(r); err != nil {
			g.logger.Error("could not record game", "error", err)
		}
	}
}

// Restart begins a new game. Saved progress is cleared; the high score is kept.
func (g *Game) Restart() State {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.state = Restart(g.state, g.rules, g.rng)
	g.moves = 0

	if g.store != nil {
		if err := g.store.ClearProgress(); err != nil {
			g.logger.Error("could not clear saved game", "error", err)
		}
	}

	s := g.state
	s.Grid = s.Grid.Clone()
	return s
}
