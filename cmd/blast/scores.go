package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-blast/internal/games/blast"
	"github.com/vovakirdan/tile-blast/internal/registry"
	"github.com/vovakirdan/tile-blast/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and level records",
	Long: `Display the top 10 scores for a game mode. For the campaign,
per-level attempts, wins and best results are listed as well.

Examples:
  blast scores
  blast scores blast_endless
  blast scores --level lvl03
  blast scores blast_endless --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var (
	flagScoresLevel string
	flagClearScores bool
)

func init() {
	scoresCmd.Flags().StringVar(&flagScoresLevel, "level", "", "Show recent attempts of one level")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores and level records of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := blast.IDCampaign
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blast list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores for %s.\n", game.Title())
		return
	}

	if flagScoresLevel != "" {
		printLevelHistory(store, flagScoresLevel)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blast play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}

		if gs, err := store.GetGameStats(gameID); err == nil {
			fmt.Println()
			fmt.Printf("Games: %d  Best: %d  Average: %.0f  Last played: %s\n",
				gs.GamesCount, gs.HighScore, gs.AvgScore, gs.LastPlayed.Format("2006-01-02"))
		}
	}

	stats, err := store.AllLevelStats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving level records: %v\n", err)
		return
	}
	if len(stats) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Levels")
	fmt.Println()
	fmt.Printf("  %-16s  %-8s  %-5s  %-6s  %-10s  %s\n", "Level", "Attempts", "Wins", "Rate", "Best moves", "Best score")
	fmt.Printf("  %-16s  %-8s  %-5s  %-6s  %-10s  %s\n", "-----", "--------", "----", "----", "----------", "----------")
	for _, s := range stats {
		best := "-"
		if s.Wins > 0 {
			best = fmt.Sprint(s.BestMoves)
		}
		fmt.Printf("  %-16s  %-8d  %-5d  %5.0f%%  %-10s  %d\n",
			s.LevelID, s.Attempts, s.Wins, s.WinRate()*100, best, s.BestScore)
	}
}

// printLevelHistory lists the most recent attempts of one level.
func printLevelHistory(store *storage.Store, levelID string) {
	results, err := store.LevelResults(levelID, 20)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving level results: %v\n", err)
		return
	}

	fmt.Printf("Level %s\n", levelID)
	fmt.Println()
	if len(results) == 0 {
		fmt.Println("Not played yet.")
		return
	}

	fmt.Printf("  %-6s  %-5s  %-6s  %s\n", "Result", "Moves", "Score", "Date")
	fmt.Printf("  %-6s  %-5s  %-6s  %s\n", "------", "-----", "-----", "----")
	for _, r := range results {
		outcome := "lost"
		if r.Won {
			outcome = "won"
		}
		fmt.Printf("  %-6s  %-5d  %-6d  %s\n", outcome, r.Moves, r.Score, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.BestLevelResult(levelID); err == nil && best != nil {
		fmt.Println()
		fmt.Printf("Best: %d moves, %d points\n", best.Moves, best.Score)
	}
}
