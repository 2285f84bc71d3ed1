package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime study statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, closer, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closer()

		st, err := e.Stats(cmd.Context())
		if err != nil {
			return err
		}
		if done, err := printJSON(cmd, st); done || err != nil {
			return err
		}

		fmt.Printf("Sessions:         %d (%.1f hours)\n", st.Sessions, st.TotalHours)
		fmt.Printf("Assessments:      %d", st.Assessments)
		if st.Assessments > 0 {
			fmt.Printf(" (average %.1f%%)", st.AvgScore)
		}
		fmt.Println()
		fmt.Printf("Active subjects:  %d\n", st.ActiveSubjects)
		fmt.Printf("Review items:     %d active, %d mastered\n", st.ActiveReviews, st.MasteredReviews)
		return nil
	},
}
