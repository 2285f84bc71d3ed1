package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rlopes/studypulse/internal/engine"
	"github.com/rlopes/studypulse/internal/learnstyle"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Infer your learning style from logged sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, closer, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closer()

		profile, err := e.LearningProfile(cmd.Context(), time.Now())
		if errors.Is(err, engine.ErrInsufficientData) {
			fmt.Println("The profile needs more history before it says anything useful.")
			fmt.Println(err)
			return nil
		}
		if err != nil {
			return err
		}
		if done, err := printJSON(cmd, profile); done || err != nil {
			return err
		}

		fmt.Printf("Dominant style: %s (confidence %.0f%%, %d sessions)\n\n",
			profile.DominantStyle, profile.Confidence, profile.SessionCount)
		for _, style := range learnstyle.AllStyles {
			fmt.Printf("  %-16s %5.1f\n", style, profile.StyleScores[style])
		}
		fmt.Printf("\nBest time of day:     %s\n", profile.BestTimeOfDay)
		fmt.Printf("Concentration:        %s sessions\n", profile.ConcentrationPattern)
		fmt.Printf("Optimal session:      %d minutes\n", profile.OptimalSessionMin)
		if len(profile.UnclassifiedMethods) > 0 {
			fmt.Printf("\nUnclassified methods (ignored): %v\n", profile.UnclassifiedMethods)
		}
		return nil
	},
}
