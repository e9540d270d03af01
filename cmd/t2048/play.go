package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/session"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagSize     int
	flagSeed     int64
	flagPickSize bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048 locally",
	Long: `Start a local game. The saved game of the player slot is resumed
when it exists and matches the board size; otherwise a new game starts.

Controls:
  Arrows/WASD/hjkl  - Swipe
  Mouse drag        - Swipe
  R                 - Restart
  Tab               - Scoreboard
  ?                 - More keys
  Q/Ctrl+C          - Quit

Examples:
  t2048 play
  t2048 play --size 5
  t2048 play --pick-size
  t2048 play --seed 42 --db ./t2048.db
  t2048 play --player alice`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagSize, "size", 0, "Board size (overrides board.size)")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	playCmd.Flags().BoolVar(&flagPickSize, "pick-size", false, "Choose the board size from a menu")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newFileLogger(cfg.Log, "t2048")
	if err != nil {
		return err
	}
	defer closer.Close()

	// Get terminal size for the first frame
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if flagPickSize {
		size, ok, pickErr := tui.RunSizeSelector(width, height, cfg.Board.Size)
		if pickErr != nil {
			return fmt.Errorf("error running size picker: %w", pickErr)
		}
		// User quit the picker
		if !ok {
			return nil
		}
		flagSize = size
	}
	if flagSize > 0 {
		cfg.Board.Size = flagSize
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	store, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database, progress will not be saved: %v\n", err)
		logger.Warn("playing without storage", "error", err)
		store = nil
	}

	var backing session.Store
	if store != nil {
		backing = store.Player(cfg.Storage.Player)
	}

	game := session.Open(backing, cfg.Rules(),
		session.WithLogger(logger.With("player", playerName(cfg.Storage.Player))),
		session.WithSeed(flagSeed),
	)
	logger.Info("game opened", "size", game.Rules().Size, "score", game.State().Score)

	runErr := tui.Run(game, store, tui.ViewConfig{
		Width:  width,
		Height: height,
	})

	// Close store before reporting
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}

// playerName returns the slot name used for an empty player setting.
func playerName(name string) string {
	if name == "" {
		return storage.DefaultPlayer
	}
	return name
}
