package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rlopes/studypulse/internal/store"
)

var assessCmd = &cobra.Command{
	Use:   "assess <subject>",
	Short: "Record an assessment result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, closer, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closer()
		ctx := cmd.Context()

		sub, err := subjectByName(ctx, e, args[0])
		if err != nil {
			return err
		}

		score, _ := cmd.Flags().GetFloat64("score")
		if score < 0 || score > 100 {
			return fmt.Errorf("--score must be between 0 and 100")
		}

		assessment := store.Assessment{
			SubjectID:    sub.ID,
			TakenAt:      time.Now(),
			ScorePercent: score,
		}
		if at, _ := cmd.Flags().GetString("at"); at != "" {
			t, err := parseDate(at)
			if err != nil {
				return err
			}
			assessment.TakenAt = t
		}
		assessment.Title, _ = cmd.Flags().GetString("title")

		id, err := e.Store().Assessments().Append(ctx, assessment)
		if err != nil {
			return fmt.Errorf("record assessment: %w", err)
		}
		fmt.Printf("Recorded %.1f%% for %s (assessment #%d)\n", score, sub.Name, id)
		return nil
	},
}

func init() {
	assessCmd.Flags().Float64P("score", "s", -1, "Score as a percentage, 0-100 (required)")
	assessCmd.Flags().String("title", "", "Assessment name, e.g. \"midterm\"")
	assessCmd.Flags().String("at", "", "Date taken (YYYY-MM-DD), default now")
	_ = assessCmd.MarkFlagRequired("score")
}
