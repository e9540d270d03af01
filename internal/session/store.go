package session

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

// Progress is the resumable part of a game: the grid and its score.
type Progress struct {
	Grid  grid.Grid
	Score int
}

// Validate checks progress loaded from storage against the rules.
func (p Progress) Validate(rules Rules) error {
	if err := grid.Validate(p.Grid); err != nil {
		return err
	}
	if p.Grid.Size() != rules.Size {
		return fmt.Errorf("session: saved grid is %dx%d, want %dx%d",
			p.Grid.Size(), p.Grid.Size(), rules.Size, rules.Size)
	}
	if p.Score < 0 {
		return fmt.Errorf("session: negative saved score %d", p.Score)
	}
	return nil
}

// Result summarizes a finished game.
type Result struct {
	Score   int
	MaxTile int
	Moves   int
}

// Store persists progress and high scores for one player.
// Implementations own the storage format; the session only decides when
// to read and write.
type Store interface {
	// LoadProgress returns the saved game, or ok=false when none exists.
	LoadProgress() (p Progress, ok bool, err error)

	// LoadHighScore returns the saved high score, or 0 when none exists.
	LoadHighScore() (int, error)

	// SaveProgress overwrites the saved game.
	SaveProgress(p Progress) error

	// SaveHighScore stores a raised high score.
	SaveHighScore(score int) error

	// ClearProgress removes the saved game. The high score is kept.
	ClearProgress() error

	// RecordGame appends a finished game to the score history.
	RecordGame(r Result) error
}
