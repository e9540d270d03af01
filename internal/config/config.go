// Package config provides YAML-based configuration loading for t2048.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-2048/internal/session"
)

// Config contains all configuration for the game, its storage and the SSH server.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
}

// BoardConfig defines grid size and tile spawning.
type BoardConfig struct {
	Size       int     `yaml:"size"`
	StartTiles int     `yaml:"start_tiles"`
	FourChance float64 `yaml:"four_chance"` // 0.0-1.0
}

// StorageConfig defines where progress and scores are kept.
type StorageConfig struct {
	Path   string `yaml:"path"`
	Player string `yaml:"player"`
}

// LogConfig defines the log destination for local play.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// ServerConfig defines SSH server parameters.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Board size limits.
const (
	MinSize = 2
	MaxSize = 8
)

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	b := c.Board
	if b.Size < MinSize || b.Size > MaxSize {
		return fmt.Errorf("config: board.size %d out of range [%d, %d]", b.Size, MinSize, MaxSize)
	}
	if b.FourChance < 0 || b.FourChance > 1 {
		return fmt.Errorf("config: board.four_chance %.2f out of range [0, 1]", b.FourChance)
	}
	if b.StartTiles < 1 || b.StartTiles > b.Size*b.Size {
		return fmt.Errorf("config: board.start_tiles %d out of range [1, %d]", b.StartTiles, b.Size*b.Size)
	}
	return nil
}

// Rules converts the board section to session rules.
func (c Config) Rules() session.Rules {
	return session.Rules{
		Size:       c.Board.Size,
		StartTiles: c.Board.StartTiles,
		FourChance: c.Board.FourChance,
	}
}
