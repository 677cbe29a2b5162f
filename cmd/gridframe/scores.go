package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/gridframe/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show stored demo high scores",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		games := []string{"pong", "life"}
		if len(args) == 1 {
			games = args
		}
		return runScores(games)
	},
}

func runScores(games []string) error {
	store, err := storage.Open(flagDB)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, game := range games {
		top, err := store.TopScores(game, 10)
		if err != nil {
			return err
		}
		if len(top) == 0 {
			continue
		}
		fmt.Printf("%s:\n", game)
		for i, e := range top {
			fmt.Printf("  %2d. %6d  %s\n", i+1, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
		}
	}
	return nil
}
