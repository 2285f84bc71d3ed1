package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Synthesize all analyses into ranked recommendations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, closer, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closer()

		subjectID, err := optionalSubjectID(cmd, e)
		if err != nil {
			return err
		}
		bundle, err := e.Recommendations(cmd.Context(), subjectID, time.Now())
		if err != nil {
			return err
		}
		if done, err := printJSON(cmd, bundle); done || err != nil {
			return err
		}

		fmt.Printf("Overall: %s (%d critical, %d opportunities)\n",
			bundle.Summary.OverallHealth,
			bundle.Summary.CriticalIssues,
			bundle.Summary.OptimizationOpportunities)

		if len(bundle.Recommendations) == 0 {
			fmt.Println("\nNothing to flag. Keep logging sessions and this gets sharper.")
			return nil
		}

		for _, r := range bundle.Recommendations {
			fmt.Printf("\n[%s] %s\n", r.Priority, r.Title)
			fmt.Printf("  %s\n", r.Description)
			for _, item := range r.ActionItems {
				fmt.Printf("   - %s\n", item)
			}
		}
		return nil
	},
}

func init() {
	recommendCmd.Flags().String("subject", "", "Limit every signal to one subject")
}
