package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List available stages",
	Args:  cobra.NoArgs,
	RunE:  runStages,
}

func runStages(cmd *cobra.Command, _ []string) error {
	loader, err := newLoader()
	if err != nil {
		return err
	}
	names, err := loader.ListStages()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range names {
		stage, err := loader.LoadStage(name)
		if err != nil {
			fmt.Fprintf(out, "  %-10s  (invalid: %v)\n", name, err)
			continue
		}
		fmt.Fprintf(out, "  %-10s  %s\n", name, stage.Name)
	}
	return nil
}
