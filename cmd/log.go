package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rlopes/studypulse/internal/learnstyle"
	"github.com/rlopes/studypulse/internal/store"
)

var logCmd = &cobra.Command{
	Use:   "log <subject>",
	Short: "Log a study session",
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

		minutes, _ := cmd.Flags().GetInt("minutes")
		if minutes <= 0 {
			return fmt.Errorf("--minutes must be positive")
		}

		session := store.Session{
			StartedAt:   time.Now(),
			DurationMin: minutes,
			SubjectID:   sub.ID,
		}
		if at, _ := cmd.Flags().GetString("at"); at != "" {
			t, err := parseDate(at)
			if err != nil {
				return err
			}
			session.StartedAt = t
		}
		if cmd.Flags().Changed("focus") {
			focus, _ := cmd.Flags().GetInt("focus")
			if focus < 0 || focus > 10 {
				return fmt.Errorf("--focus must be between 0 and 10")
			}
			session.Focus = &focus
		}
		session.Method, _ = cmd.Flags().GetString("method")
		session.Notes, _ = cmd.Flags().GetString("notes")

		if session.Method != "" {
			if _, ok := learnstyle.StyleFor(session.Method); !ok {
				fmt.Printf("Note: method %q is not linked to a learning style; known methods: %v\n",
					session.Method, learnstyle.KnownMethods())
			}
		}

		id, err := e.Store().Sessions().Append(ctx, session)
		if err != nil {
			return fmt.Errorf("log session: %w", err)
		}
		fmt.Printf("Logged %d min of %s (session #%d)\n", minutes, sub.Name, id)
		return nil
	},
}

func init() {
	logCmd.Flags().IntP("minutes", "m", 0, "Session length in minutes (required)")
	logCmd.Flags().Int("focus", 0, "Self-rated focus, 0-10")
	logCmd.Flags().String("method", "", "Study method, e.g. flashcards, reading, practice_problems")
	logCmd.Flags().String("notes", "", "Free-text notes about the session")
	logCmd.Flags().String("at", "", "Session start (YYYY-MM-DD), default now")
	_ = logCmd.MarkFlagRequired("minutes")
}
