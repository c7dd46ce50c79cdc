package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/younwookim/stomp/internal/infrastructure/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [stage]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for a stage, or for every stage
that has scores when no stage is given.

Examples:
  game scores
  game scores demo`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	stages := args
	if len(stages) == 0 {
		if stages, err = store.Stages(); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if len(stages) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}
	for i, stage := range stages {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if err := printScores(out, store, stage); err != nil {
			return err
		}
	}
	return nil
}

func printScores(out io.Writer, store *storage.Store, stage string) error {
	scores, err := store.TopScores(stage, 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n", stage)
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintf(out, "Play 'game play --stage %s' to set the first high score!\n", stage)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
