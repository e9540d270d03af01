package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size:       grid.DefaultSize,
			StartTiles: 2,
			FourChance: grid.DefaultFourChance,
		},
		Storage: StorageConfig{
			Path:   "~/.t2048/t2048.db",
			Player: "local",
		},
		Log: LogConfig{
			Path:  "~/.t2048/t2048.log",
			Level: "info",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
