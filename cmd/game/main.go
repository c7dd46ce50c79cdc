// game runs the stomp platformer: an ebiten window for play, a headless
// simulator for recorded sessions, and the local high score table.
//
// Usage:
//
//	game play                 - Play the demo stage
//	game play --stage flat    - Play another stage
//	game sim <replay.json>    - Re-simulate a recording without a window
//	game scores [stage]       - Show high scores
//	game stages               - List available stages
//
// Global flags:
//
//	--config <dir>  - Read configs from a directory instead of the built-in set
//	--db <path>     - Set database path (default: ~/.stomp/scores.db)
//	--debug         - Log at debug level
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/stomp/internal/infrastructure/config"
)

var (
	// Global flags
	flagConfigDir string
	flagDBPath    string
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "stomp - a 2D platformer",
	Long: `stomp is a tile based 2D platformer with stompable enemies,
power-ups, checkpoints and local two player co-op.

Examples:
  game play
  game play --stage flat --players 2
  game play --record run.json
  game sim run.json
  game scores demo`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Config directory (default: built-in configs)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.stomp/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(stagesCmd)
}

func newLogger() *log.Logger {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "stomp",
		Level:           level,
	})
}

// newLoader reads from --config when given, otherwise from the embedded set
func newLoader() (*config.Loader, error) {
	if flagConfigDir != "" {
		return config.NewLoader(flagConfigDir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}
