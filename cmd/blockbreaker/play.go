package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockbreaker/internal/core"
	"github.com/vovakirdan/blockbreaker/internal/platform/tui"
	"github.com/vovakirdan/blockbreaker/internal/registry"
	"github.com/vovakirdan/blockbreaker/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing. Without a variant a menu lets you pick one; after a
game you return to the menu.

Controls:
  Mouse       - Move the paddle
  Click/Space - Launch the ball
  Left/Right  - Nudge the paddle (also A/D)
  P/Esc       - Pause
  R           - Restart (after clear or game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Wider paddle, slower ball
  normal - Default settings
  hard   - Narrower paddle, faster ball
  fixed  - Difficulty scaling stays at the configured level

Examples:
  blockbreaker play
  blockbreaker play blockbreaker
  blockbreaker play blockbreaker_sudden --difficulty hard
  blockbreaker play --config ./my-blockbreaker.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	if len(args) == 1 && !registry.Exists(args[0]) {
		return fmt.Errorf("unknown variant %q (run 'blockbreaker list')", args[0])
	}

	logger, closeLog, err := newLogger("blockbreaker", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if len(args) == 1 {
		return playOne(args[0], store, cfg, logger)
	}
	return playMenu(store, cfg, logger)
}

func playOne(gameID string, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	if err := tui.Run(game, store, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func playMenu(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if !goBack {
				return nil
			}

		case result.GameID != "":
			// A fixed --seed replays the same launches every game.
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			if err := playOne(result.GameID, store, cfg, logger); err != nil {
				logger.Error("game failed", "game", result.GameID, "error", err)
			}
		}
	}
}
