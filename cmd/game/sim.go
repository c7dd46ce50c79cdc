package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/younwookim/stomp/internal/application/replay"
)

var flagSimStage string

var simCmd = &cobra.Command{
	Use:   "sim <replay.json>",
	Short: "Re-simulate a recorded session without a window",
	Long: `Load a recording made with 'game play --record' and run it through
the same physics headlessly, then print each player's final state.

Examples:
  game sim run.json
  game sim run.json --stage flat
  game sim run.json --config ./configs`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimStage, "stage", "", "Override the stage named in the recording")
}

func runSim(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return err
	}

	loader, err := newLoader()
	if err != nil {
		return err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return err
	}
	stageName := data.Stage
	if flagSimStage != "" {
		stageName = flagSimStage
	}
	stage, err := loader.LoadStage(stageName)
	if err != nil {
		return err
	}

	res, err := replay.NewRunner(cfg, stage, logger).Run(*data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	outcome := "ran out of input"
	switch {
	case res.Completed:
		outcome = "stage clear"
	case res.GameOver:
		outcome = "game over"
	}
	fmt.Fprintf(out, "Stage %s: %s after %d/%d frames\n", res.Stage, outcome, res.Frames, len(data.Frames))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-4s  %-5s  %-5s  %-5s  %-8s  %s\n", "Slot", "Tier", "Lives", "Coins", "Score", "Position")
	fmt.Fprintf(out, "  %-4s  %-5s  %-5s  %-5s  %-8s  %s\n", "----", "----", "-----", "-----", "-----", "--------")
	for _, p := range res.Players {
		fmt.Fprintf(out, "  %-4d  %-5s  %-5d  %-5d  %-8d  %.1f,%.1f\n",
			p.Slot+1, p.Tier, p.Lives, p.Coins, p.Score, p.X, p.Y)
	}
	return nil
}
