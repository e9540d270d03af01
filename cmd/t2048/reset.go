package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagResetAll bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the saved game",
	Long: `Discard the saved game of the player slot. The high score is kept.

With --all, the high scores and finished game history of every player
are cleared as well.

Examples:
  t2048 reset
  t2048 reset --player alice
  t2048 reset --all`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetAll, "all", false, "Also clear high scores and history")
}

func runReset(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	defer store.Close()

	player := store.Player(cfg.Storage.Player)
	if err := player.ClearProgress(); err != nil {
		return err
	}
	fmt.Printf("Saved game of %q discarded.\n", player.Name())

	if flagResetAll {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Println("High scores and history cleared.")
	}
	return nil
}
