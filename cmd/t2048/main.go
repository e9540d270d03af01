// t2048 is the 2048 sliding tile game for the terminal.
//
// Usage:
//
//	t2048 play               - Play locally, resuming the saved game
//	t2048 serve              - Start SSH server for remote play
//	t2048 scores             - Show finished games, best first
//	t2048 reset              - Discard the saved game
//
// Global flags:
//
//	--config <path>  - Config file (default: ~/.t2048/config.yaml)
//	--db <path>      - Database path (overrides storage.path)
//	--player <name>  - Player slot (overrides storage.player)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagPlayer string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 in your terminal",
	Long: `t2048 is the 2048 sliding tile game for the terminal.

Swipe the board with the arrow keys, WASD, hjkl or a mouse drag. Equal
tiles merge and add their value to your score. A new tile appears after
every move; the game ends when no move can change the board.

Progress is saved after every move and restored on the next start.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  scores   - View finished games
  reset    - Discard the saved game

Examples:
  t2048 play
  t2048 play --size 5
  t2048 serve --ssh :2222
  t2048 scores --limit 20
  t2048 reset --all`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (overrides storage.path)")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player slot (overrides storage.player)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetCmd)
}
