package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tinypulse/arcade/internal/platform/tui"
	"github.com/tinypulse/arcade/internal/registry"
	"github.com/tinypulse/arcade/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresBrowse bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game.

Examples:
  arcade scores blockfall
  arcade scores blockfall --limit 25
  arcade scores blockfall --browse
  arcade scores blockfall --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresBrowse, "browse", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if err := requireGame(gameID); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Cleared all scores for %s.\n", title)
		return nil
	}

	if flagScoresBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, gameID, title, width, height)
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Lines", "When")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10s  %-6d  %s\n",
			i+1, humanize.Comma(int64(entry.Score)), entry.Lines, humanize.Time(entry.CreatedAt))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %s  Games: %d  Lines: %s\n",
			humanize.Comma(int64(stats.HighScore)), stats.GamesCount, humanize.Comma(stats.TotalLines))
	}
	return nil
}
