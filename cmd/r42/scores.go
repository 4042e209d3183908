package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-r42/internal/storage"
)

var (
	flagLimit       int
	flagScorePlayer string
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs with totals over all games.

Examples:
  r42 scores
  r42 scores --limit 25
  r42 scores --player ann
  r42 scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScorePlayer, "player", "", "Show the most recent runs of one player")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			store.Close()
			fail("%v", err)
		}
		fmt.Println("All runs deleted.")
		return
	}

	title := "High Scores"
	var runs []storage.Run
	if flagScorePlayer != "" {
		title = fmt.Sprintf("Recent runs - %s", flagScorePlayer)
		runs, err = store.PlayerRuns(flagScorePlayer, flagLimit)
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'r42 play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-5s  %s\n", "Rank", "Player", "Score", "Level", "Hit%", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-5s  %s\n", "----", "------", "-----", "-----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-8d  %-5d  %-5.0f  %s\n",
			i+1, r.Player, r.Score, r.Level, r.Accuracy(), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Games: %d  Best: %d  Average: %.0f  Deepest level: %d\n",
		stats.GamesPlayed, stats.HighScore, stats.AvgScore, stats.BestLevel)
}
