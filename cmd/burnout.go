package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rlopes/studypulse/internal/engine"
)

var burnoutCmd = &cobra.Command{
	Use:   "burnout",
	Short: "Assess burnout risk from recent study patterns",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, closer, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closer()

		result, err := e.AssessBurnout(cmd.Context(), time.Now())
		if errors.Is(err, engine.ErrInsufficientData) {
			fmt.Println("Not enough sessions logged yet for a burnout assessment.")
			fmt.Println(err)
			return nil
		}
		if err != nil {
			return err
		}
		if done, err := printJSON(cmd, result); done || err != nil {
			return err
		}

		fmt.Printf("Burnout risk: %.0f/100 (%s)\n\n", result.TotalScore, result.Severity)
		for _, ind := range result.Indicators {
			marker := " "
			if ind.Detected {
				marker = "!"
			}
			fmt.Printf(" %s %-18s %5.1f/%-4.0f %s\n", marker, ind.Category, ind.Score, ind.MaxScore, ind.Description)
		}
		if len(result.Recommendations) > 0 {
			fmt.Println()
			for _, r := range result.Recommendations {
				fmt.Printf(" - %s\n", r)
			}
		}
		if result.NeedsIntervention {
			fmt.Println("\nThis score calls for a real break, not a lighter schedule.")
		}
		return nil
	},
}
