package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreaker/internal/registry"
	"github.com/vovakirdan/blockbreaker/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top 10 runs for a variant (default: blockbreaker).

Examples:
  blockbreaker scores
  blockbreaker scores blockbreaker_sudden
  blockbreaker scores blockbreaker --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded runs for the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "blockbreaker"
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("unknown variant %q (run 'blockbreaker list')", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all runs for %s.\n", game.Title())
		return nil
	}

	runs, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blockbreaker play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %s\n", "Rank", "Score", "Result", "Time", "When")
	fmt.Printf("  %-4s  %-8s  %-6s  %-8s  %s\n", "----", "-----", "------", "----", "----")
	for i, r := range runs {
		result := "-"
		if r.Cleared {
			result = "CLEAR"
		}
		fmt.Printf("  %-4d  %-8s  %-6s  %-8s  %s\n",
			i+1,
			humanize.Comma(int64(r.Score)),
			result,
			r.Duration.Round(time.Second),
			humanize.Time(r.CreatedAt),
		)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Clears: %d  Best: %s  Average: %.0f\n",
			stats.GamesCount, stats.Clears, humanize.Comma(int64(stats.HighScore)), stats.AvgScore)
	}
	return nil
}
