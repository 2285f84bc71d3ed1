package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rlopes/studypulse/internal/engine"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a weekly study plan weighted by subject need",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, closer, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closer()

		hours, _ := cmd.Flags().GetFloat64("hours")
		plan, err := e.AllocationPlan(cmd.Context(), hours, time.Now())
		if errors.Is(err, engine.ErrInsufficientData) {
			fmt.Println("A plan needs at least two active subjects to balance between.")
			fmt.Println(err)
			return nil
		}
		if err != nil {
			return err
		}
		if done, err := printJSON(cmd, plan); done || err != nil {
			return err
		}

		fmt.Printf("Weekly plan for %.1f hours\n\n", plan.AvailableWeeklyHours)
		fmt.Printf("%-20s %-6s %-9s %-9s %-9s %s\n", "SUBJECT", "NEED", "URGENCY", "PLANNED", "CURRENT", "PRIORITY")
		for _, a := range plan.Allocations {
			fmt.Printf("%-20s %-6.0f %-9.2f %-9.1f %-9.1f %s\n",
				a.SubjectName, a.NeedScore, a.UrgencyFactor, a.RecommendedHours, a.CurrentHours, a.Priority)
		}

		fmt.Println("\nSchedule:")
		for _, day := range plan.Schedule {
			if len(day.Blocks) == 0 {
				continue
			}
			fmt.Printf("  %s\n", day.Day)
			for _, b := range day.Blocks {
				fmt.Printf("    %-20s %.2fh (%s)\n", b.SubjectName, b.Hours, b.Window)
			}
		}
		return nil
	},
}

func init() {
	planCmd.Flags().Float64("hours", 0, "Available study hours this week (default from config)")
}
