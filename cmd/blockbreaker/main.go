// blockbreaker is a terminal brick breaker with a pointer-driven paddle.
//
// Usage:
//
//	blockbreaker list              - List game variants
//	blockbreaker play [variant]    - Play a variant (menu when omitted)
//	blockbreaker serve             - Start SSH server for remote play
//	blockbreaker scores [variant]  - Show high scores
//	blockbreaker sim               - Run a headless autopilot game
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible launches
//	--db <path>           - Set database path (default: ~/.blockbreaker/scores.db)
//	--config <path>       - Load a custom YAML or TOML config
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreaker/internal/games/blockbreaker"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockbreaker",
	Short: "Block Breaker - break bricks in your terminal",
	Long: `Block Breaker is a single-ball brick breaker for the terminal.
Move the paddle with the mouse or the arrow keys, launch the ball and
clear the wall.

Available commands:
  list     - Show game variants
  play     - Play a variant (or pick one from the menu)
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run a headless autopilot game

Examples:
  blockbreaker play
  blockbreaker play blockbreaker_sudden --difficulty hard
  blockbreaker serve --ssh :2222
  blockbreaker sim --frames 3600 --seed 7`,
	SilenceUsage:      true,
	PersistentPreRunE: applyGameFlags,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockbreaker/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// applyGameFlags hands the config flags to the game package before any
// game is created.
func applyGameFlags(_ *cobra.Command, _ []string) error {
	blockbreaker.SetConfigPath(flagConfig)
	return blockbreaker.SetDifficultyPreset(flagDifficulty)
}

// newLogger builds the process logger. Without --log it writes to fallback;
// pass io.Discard where the terminal belongs to the UI.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
