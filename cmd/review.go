package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rlopes/studypulse/internal/engine"
	"github.com/rlopes/studypulse/internal/forgetting"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Manage spaced-repetition review items",
}

var reviewAddCmd = &cobra.Command{
	Use:   "add <subject> <topic>",
	Short: "Start tracking a topic for spaced review",
	Args:  cobra.ExactArgs(2),
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
		confidence, _ := cmd.Flags().GetInt("confidence")
		difficulty, _ := cmd.Flags().GetInt("difficulty")

		item, err := e.ScheduleReview(ctx, sub.ID, args[1], confidence, difficulty, time.Now())
		if err != nil {
			return fmt.Errorf("schedule review: %w", err)
		}
		fmt.Printf("Tracking %q (#%d), first review on %s\n",
			item.Topic, item.ID, item.NextReviewAt.Format("2006-01-02"))
		return nil
	},
}

var reviewRecordCmd = &cobra.Command{
	Use:   "record <id>",
	Short: "Record the outcome of a review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, closer, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closer()

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid item id %q", args[0])
		}
		confidence, _ := cmd.Flags().GetInt("confidence")
		minutes, _ := cmd.Flags().GetInt("minutes")
		result, _ := cmd.Flags().GetString("result")

		item, err := e.RecordReview(cmd.Context(), id, confidence, minutes, forgetting.Result(result), time.Now())
		if err != nil {
			return fmt.Errorf("record review: %w", err)
		}
		if item.Status == forgetting.StatusMastered {
			fmt.Printf("%q is mastered after %d reviews. It leaves the review rotation.\n", item.Topic, item.ReviewCount)
			return nil
		}
		fmt.Printf("Recorded. Next review of %q on %s (strength %.1f)\n",
			item.Topic, item.NextReviewAt.Format("2006-01-02"), item.Strength)
		return nil
	},
}

var reviewDueCmd = &cobra.Command{
	Use:   "due",
	Short: "List topics due for review, most overdue first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, closer, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closer()
		ctx := cmd.Context()
		now := time.Now()

		subjectID, err := optionalSubjectID(cmd, e)
		if err != nil {
			return err
		}
		items, err := e.ItemsDueForReview(ctx, subjectID, now)
		if err != nil {
			return fmt.Errorf("list due reviews: %w", err)
		}
		if done, err := printJSON(cmd, items); done || err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("Nothing due. Nice.")
			return nil
		}

		fmt.Printf("%-4s %-30s %-10s %s\n", "ID", "TOPIC", "DUE", "RETENTION")
		for _, item := range items {
			retention := forgetting.RetentionAt(item.LastStudyReference(), now, item.Strength)
			fmt.Printf("%-4d %-30s %-10s %.0f%%\n",
				item.ID, item.Topic, item.NextReviewAt.Format("2006-01-02"), retention)
		}
		return nil
	},
}

var reviewAtRiskCmd = &cobra.Command{
	Use:   "at-risk",
	Short: "List topics whose estimated retention has dropped furthest",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, closer, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closer()
		ctx := cmd.Context()

		subjectID, err := optionalSubjectID(cmd, e)
		if err != nil {
			return err
		}
		threshold, _ := cmd.Flags().GetFloat64("below")
		risks, err := e.AtRiskItems(ctx, subjectID, threshold, time.Now())
		if err != nil {
			return fmt.Errorf("list at-risk reviews: %w", err)
		}
		if done, err := printJSON(cmd, risks); done || err != nil {
			return err
		}
		if len(risks) == 0 {
			fmt.Printf("No topics below %.0f%% estimated retention.\n", threshold)
			return nil
		}

		fmt.Printf("%-4s %-30s %-10s %s\n", "ID", "TOPIC", "RETENTION", "STRENGTH")
		for _, r := range risks {
			fmt.Printf("%-4d %-30s %8.0f%% %.1f\n", r.Item.ID, r.Item.Topic, r.Retention, r.Item.Strength)
		}
		return nil
	},
}

var reviewPauseCmd = &cobra.Command{
	Use:   "pause <id>",
	Short: "Pause a review item",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setReviewStatus(cmd, args[0], true) },
}

var reviewResumeCmd = &cobra.Command{
	Use:   "resume <id>",
	Short: "Resume a paused review item",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setReviewStatus(cmd, args[0], false) },
}

func setReviewStatus(cmd *cobra.Command, rawID string, pause bool) error {
	e, closer, err := openEngine(cmd)
	if err != nil {
		return err
	}
	defer closer()

	id, err := strconv.Atoi(rawID)
	if err != nil {
		return fmt.Errorf("invalid item id %q", rawID)
	}
	if pause {
		if err := e.PauseReview(cmd.Context(), id); err != nil {
			return fmt.Errorf("pause review: %w", err)
		}
		fmt.Printf("Paused item #%d. Decay keeps running; resume to pick it back up.\n", id)
		return nil
	}
	if err := e.ResumeReview(cmd.Context(), id); err != nil {
		return fmt.Errorf("resume review: %w", err)
	}
	fmt.Printf("Resumed item #%d.\n", id)
	return nil
}

// optionalSubjectID resolves --subject when given; zero means all subjects.
func optionalSubjectID(cmd *cobra.Command, e *engine.Engine) (int, error) {
	name, _ := cmd.Flags().GetString("subject")
	if name == "" {
		return 0, nil
	}
	sub, err := subjectByName(cmd.Context(), e, name)
	if err != nil {
		return 0, err
	}
	return sub.ID, nil
}

func init() {
	reviewAddCmd.Flags().Int("confidence", 5, "Initial confidence, 1-10")
	reviewAddCmd.Flags().Int("difficulty", 3, "Topic difficulty, 1-5")

	reviewRecordCmd.Flags().Int("confidence", 5, "Confidence after the review, 1-10")
	reviewRecordCmd.Flags().Int("minutes", 0, "Time spent reviewing, in minutes")
	reviewRecordCmd.Flags().String("result", "good", "Review result: easy, good, hard, forgot")

	reviewDueCmd.Flags().String("subject", "", "Limit to one subject")
	reviewAtRiskCmd.Flags().String("subject", "", "Limit to one subject")
	reviewAtRiskCmd.Flags().Float64("below", 60, "Retention threshold in percent")

	reviewCmd.AddCommand(reviewAddCmd)
	reviewCmd.AddCommand(reviewRecordCmd)
	reviewCmd.AddCommand(reviewDueCmd)
	reviewCmd.AddCommand(reviewAtRiskCmd)
	reviewCmd.AddCommand(reviewPauseCmd)
	reviewCmd.AddCommand(reviewResumeCmd)
}
