package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rlopes/studypulse/internal/engine"
	"github.com/rlopes/studypulse/internal/store"
)

var subjectCmd = &cobra.Command{
	Use:   "subject",
	Short: "Manage subjects",
}

var validDifficulties = map[string]bool{"easy": true, "moderate": true, "hard": true, "very_hard": true}
var validPriorities = map[string]bool{"low": true, "medium": true, "high": true}

var subjectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a subject",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, closer, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closer()
		ctx := cmd.Context()

		sub := store.Subject{Name: args[0]}
		sub.Difficulty, _ = cmd.Flags().GetString("difficulty")
		if !validDifficulties[sub.Difficulty] {
			return fmt.Errorf("invalid difficulty %q, want easy, moderate, hard, or very_hard", sub.Difficulty)
		}
		sub.Priority, _ = cmd.Flags().GetString("priority")
		if !validPriorities[sub.Priority] {
			return fmt.Errorf("invalid priority %q, want low, medium, or high", sub.Priority)
		}
		sub.TargetScore, _ = cmd.Flags().GetFloat64("target")
		if exam, _ := cmd.Flags().GetString("exam"); exam != "" {
			t, err := parseDate(exam)
			if err != nil {
				return err
			}
			sub.ExamAt = &t
		}

		id, err := e.Store().Subjects().Create(ctx, sub)
		if err != nil {
			return fmt.Errorf("add subject: %w", err)
		}
		fmt.Printf("Added subject %s (#%d)\n", sub.Name, id)
		return nil
	},
}

var subjectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subjects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, closer, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closer()

		all, _ := cmd.Flags().GetBool("all")
		subjects, err := e.Store().Subjects().List(cmd.Context(), all)
		if err != nil {
			return fmt.Errorf("list subjects: %w", err)
		}
		if done, err := printJSON(cmd, subjects); done || err != nil {
			return err
		}
		if len(subjects) == 0 {
			fmt.Println("No subjects yet. Add one with: studypulse subject add <name>")
			return nil
		}

		fmt.Printf("%-4s %-20s %-10s %-8s %-10s %s\n", "ID", "NAME", "DIFFICULTY", "PRIORITY", "EXAM", "TARGET")
		for _, s := range subjects {
			exam := "-"
			if s.ExamAt != nil {
				exam = s.ExamAt.Format("2006-01-02")
			}
			name := s.Name
			if s.Archived {
				name += " (archived)"
			}
			fmt.Printf("%-4d %-20s %-10s %-8s %-10s %.0f%%\n", s.ID, name, s.Difficulty, s.Priority, exam, s.TargetScore)
		}
		return nil
	},
}

func init() {
	subjectAddCmd.Flags().String("difficulty", "moderate", "Perceived difficulty: easy, moderate, hard, very_hard")
	subjectAddCmd.Flags().String("priority", "medium", "Priority: low, medium, high")
	subjectAddCmd.Flags().Float64("target", 80, "Target assessment score in percent")
	subjectAddCmd.Flags().String("exam", "", "Exam date (YYYY-MM-DD)")
	subjectListCmd.Flags().Bool("all", false, "Include archived subjects")

	subjectCmd.AddCommand(subjectAddCmd)
	subjectCmd.AddCommand(subjectListCmd)
}

// subjectByName resolves a subject, with a hint when it does not exist.
func subjectByName(ctx context.Context, e *engine.Engine, name string) (*store.Subject, error) {
	sub, err := e.Store().Subjects().GetByName(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("unknown subject %q, add it with: studypulse subject add %q", name, name)
	}
	if err != nil {
		return nil, fmt.Errorf("look up subject: %w", err)
	}
	return sub, nil
}
