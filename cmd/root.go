package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rlopes/studypulse/internal/config"
	"github.com/rlopes/studypulse/internal/engine"
	"github.com/rlopes/studypulse/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studypulse",
	Short: "Study analytics for self-directed learners",
	Long: "StudyPulse turns a plain log of study sessions and test scores into " +
		"review schedules, trend analysis, burnout warnings, and weekly study plans.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYPULSE_DB env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json", false, "Print results as JSON")

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(subjectCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(burnoutCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// openEngine loads configuration, opens the store, and wires the engine.
// The returned closer must be called when the command finishes.
func openEngine(cmd *cobra.Command) (*engine.Engine, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log.SetLevel(logrus.DebugLevel)
	} else if lvl, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(lvl)
	}
	if cfg.Log.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store at %s: %w", dbPath, err)
	}

	return engine.New(st, cfg, log), func() { _ = st.Close() }, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the config file / STUDYPULSE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Database.Path != "" {
		return cfg.Database.Path, store.EnsureDir(cfg.Database.Path)
	}
	return store.DefaultDBPath()
}

// printJSON honors the --json flag; returns true when it printed.
func printJSON(cmd *cobra.Command, v any) (bool, error) {
	asJSON, _ := cmd.Flags().GetBool("json")
	if !asJSON {
		return false, nil
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return false, err
	}
	fmt.Println(string(out))
	return true, nil
}

// parseDate accepts YYYY-MM-DD or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return t, nil
}
