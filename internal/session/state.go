// Package session sequences grid engine calls into a playable game:
// applying swipes, spawning tiles, tracking score and high score, and
// moving between the playing and game-over phases.
package session

import (
	"errors"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

// ErrGameOver is returned for swipes made after the game has ended.
var ErrGameOver = errors.New("session: game is over, restart to continue")

// Phase is the session's position in the game state machine.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "game_over"
)

// Rules controls board size and tile spawning.
type Rules struct {
	Size       int
	StartTiles int
	FourChance float64
}

// DefaultRules returns the classic 4x4 rules.
func DefaultRules() Rules {
	return Rules{
		Size:       grid.DefaultSize,
		StartTiles: 2,
		FourChance: grid.DefaultFourChance,
	}
}

// State is a snapshot of one game. It is a value: transitions return a new
// State and never modify the one passed in.
type State struct {
	Grid      grid.Grid
	Score     int
	HighScore int
	Phase     Phase
}

// GameOver reports whether the state is terminal.
func (s State) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// Outcome describes the effect of a single swipe.
type Outcome struct {
	State           State
	Direction       grid.Direction
	Moved           bool
	ScoreGained     int
	HighScoreRaised bool
	GameOver        bool
	Spawned         grid.Cell
	HasSpawn        bool
}

// NewGame returns a fresh game carrying over highScore.
func NewGame(rules Rules, highScore int, rng grid.Source) State {
	g := grid.New(rules.Size)
	for i := 0; i < rules.StartTiles; i++ {
		g, _, _ = grid.Spawn(g, rng, rules.FourChance)
	}

	return State{
		Grid:      g,
		Score:     0,
		HighScore: max(highScore, 0),
		Phase:     PhasePlaying,
	}
}

// HandleSwipe applies dir to s.
//
// A swipe that moves nothing returns s unchanged with Moved false. A moving
// swipe spawns one tile, adds the merge score, raises the high score when
// it is exceeded and ends the game when no further move is possible.
// Swipes in the game-over phase fail with ErrGameOver.
func HandleSwipe(s State, dir grid.Direction, rules Rules, rng grid.Source) (Outcome, error) {
	if s.GameOver() {
		return Outcome{State: s, Direction: dir, GameOver: true}, ErrGameOver
	}

	res := grid.ApplyDirection(s.Grid, dir)
	if !res.Moved {
		return Outcome{State: s, Direction: dir}, nil
	}

	next := State{
		Score:     s.Score + res.ScoreGained,
		HighScore: s.HighScore,
		Phase:     PhasePlaying,
	}

	var spawned grid.Cell
	var ok bool
	next.Grid, spawned, ok = grid.Spawn(res.Grid, rng, rules.FourChance)

	raised := false
	if next.Score > next.HighScore {
		next.HighScore = next.Score
		raised = true
	}

	if grid.IsTerminal(next.Grid) {
		next.Phase = PhaseGameOver
	}

	return Outcome{
		State:           next,
		Direction:       dir,
		Moved:           true,
		ScoreGained:     res.ScoreGained,
		HighScoreRaised: raised,
		GameOver:        next.GameOver(),
		Spawned:         spawned,
		HasSpawn:        ok,
	}, nil
}

// Restart starts a new game, keeping the high score.
func Restart(s State, rules Rules, rng grid.Source) State {
	return NewGame(rules, s.HighScore, rng)
}

// Resume rebuilds a State from persisted progress. The phase is derived
// from the grid so a saved terminal board resumes in game over.
func Resume(p Progress, highScore int) State {
	s := State{
		Grid:      p.Grid.Clone(),
		Score:     p.Score,
		HighScore: max(highScore, p.Score),
		Phase:     PhasePlaying,
	}
	if grid.IsTerminal(s.Grid) {
		s.Phase = PhaseGameOver
	}
	return s
}
