package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/grid"
	"github.com/vovakirdan/tui-2048/internal/session"
)

// PlayerStore persists one player's game. It implements session.Store.
type PlayerStore struct {
	store  *Store
	player string
}

// Ensure PlayerStore implements session.Store
var _ session.Store = (*PlayerStore)(nil)

// Name returns the player slot name.
func (p *PlayerStore) Name() string {
	return p.player
}

// LoadProgress returns the saved game for the player.
// A grid that cannot be decoded yields an error wrapping ErrCorruptProgress.
func (p *PlayerStore) LoadProgress() (session.Progress, bool, error) {
	var (
		size    int
		rawGrid string
		score   int
	)
	err := p.store.db.QueryRow(
		"SELECT size, grid, score FROM progress WHERE player = ?",
		p.player,
	).Scan(&size, &rawGrid, &score)

	if errors.Is(err, sql.ErrNoRows) {
		return session.Progress{}, false, nil
	}
	if err != nil {
		return session.Progress{}, false, fmt.Errorf("storage: cannot query progress: %w", err)
	}

	var g grid.Grid
	if err := json.Unmarshal([]byte(rawGrid), &g); err != nil {
		return session.Progress{}, false, fmt.Errorf("%w: %v", ErrCorruptProgress, err)
	}
	if g.Size() != size {
		return session.Progress{}, false, fmt.Errorf("%w: grid has %d rows, size column says %d", ErrCorruptProgress, g.Size(), size)
	}

	return session.Progress{Grid: g, Score: score}, true, nil
}

// LoadHighScore returns the player's high score.
func (p *PlayerStore) LoadHighScore() (int, error) {
	return p.store.HighScore(p.player)
}

// SaveProgress stores the grid row-major as JSON together with the score.
func (p *PlayerStore) SaveProgress(progress session.Progress) error {
	data, err := json.Marshal(progress.Grid)
	if err != nil {
		return fmt.Errorf("storage: cannot encode grid: %w", err)
	}

	_, err = p.store.db.Exec(
		`INSERT INTO progress (player, size, grid, score, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(player) DO UPDATE SET
		   size = excluded.size,
		   grid = excluded.grid,
		   score = excluded.score,
		   updated_at = excluded.updated_at`,
		p.player, progress.Grid.Size(), string(data), progress.Score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save progress: %w", err)
	}
	return nil
}

// SaveHighScore raises the player's high score. A lower value never
// replaces a higher stored one.
func (p *PlayerStore) SaveHighScore(score int) error {
	_, err := p.store.db.Exec(
		`INSERT INTO high_scores (player, score, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(player) DO UPDATE SET
		   score = MAX(high_scores.score, excluded.score),
		   updated_at = excluded.updated_at`,
		p.player, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// ClearProgress removes the player's saved game. The high score is kept.
func (p *PlayerStore) ClearProgress() error {
	_, err := p.store.db.Exec("DELETE FROM progress WHERE player = ?", p.player)
	if err != nil {
		return fmt.Errorf("storage: cannot clear progress: %w", err)
	}
	return nil
}

// RecordGame appends a finished game to the history.
func (p *PlayerStore) RecordGame(r session.Result) error {
	_, err := p.store.db.Exec(
		"INSERT INTO scores (player, score, max_tile, moves) VALUES (?, ?, ?, ?)",
		p.player, r.Score, r.MaxTile, r.Moves,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record game: %w", err)
	}
	return nil
}
