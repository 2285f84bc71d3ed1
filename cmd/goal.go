package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rlopes/studypulse/internal/store"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage study goals",
}

var goalAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, closer, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closer()
		ctx := cmd.Context()

		goal := store.Goal{Title: args[0], Status: "on_track"}
		if name, _ := cmd.Flags().GetString("subject"); name != "" {
			sub, err := subjectByName(ctx, e, name)
			if err != nil {
				return err
			}
			goal.SubjectID = sub.ID
		}
		goal.TargetValue, _ = cmd.Flags().GetFloat64("target")
		if goal.TargetValue <= 0 {
			return fmt.Errorf("--target must be positive")
		}
		if due, _ := cmd.Flags().GetString("due"); due != "" {
			t, err := parseDate(due)
			if err != nil {
				return err
			}
			goal.DueAt = &t
		}

		id, err := e.Store().Goals().Create(ctx, goal)
		if err != nil {
			return fmt.Errorf("add goal: %w", err)
		}
		fmt.Printf("Added goal %q (#%d)\n", goal.Title, id)
		return nil
	},
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List open goals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, closer, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closer()

		goals, err := e.Store().Goals().ListOpen(cmd.Context())
		if err != nil {
			return fmt.Errorf("list goals: %w", err)
		}
		if done, err := printJSON(cmd, goals); done || err != nil {
			return err
		}
		if len(goals) == 0 {
			fmt.Println("No open goals.")
			return nil
		}

		fmt.Printf("%-4s %-30s %-12s %-10s %s\n", "ID", "TITLE", "PROGRESS", "DUE", "STATUS")
		for _, g := range goals {
			due := "-"
			if g.DueAt != nil {
				due = g.DueAt.Format("2006-01-02")
			}
			fmt.Printf("%-4d %-30s %5.1f/%-5.1f %-10s %s\n", g.ID, g.Title, g.CurrentValue, g.TargetValue, due, g.Status)
		}
		return nil
	},
}

func init() {
	goalAddCmd.Flags().String("subject", "", "Subject this goal belongs to")
	goalAddCmd.Flags().Float64("target", 0, "Target value, e.g. chapters or points (required)")
	goalAddCmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	_ = goalAddCmd.MarkFlagRequired("target")

	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalListCmd)
}
