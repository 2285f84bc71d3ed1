package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rlopes/studypulse/internal/engine"
	"github.com/rlopes/studypulse/internal/recommend"
	"github.com/rlopes/studypulse/internal/trend"
)

var trendCmd = &cobra.Command{
	Use:   "trend <metric>",
	Short: "Analyze a metric's direction, anomalies, and weekly pattern",
	Long: "Metrics: study_time (minutes per day), focus (daily average), " +
		"performance (daily average assessment score).",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, closer, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer closer()

		days, _ := cmd.Flags().GetInt("days")
		report, err := e.AnalyzeTrend(cmd.Context(), args[0], days, time.Now())
		if errors.Is(err, engine.ErrInsufficientData) {
			fmt.Println("Not enough history for this metric yet.")
			fmt.Println(err)
			return nil
		}
		if err != nil {
			return err
		}
		if done, err := printJSON(cmd, report); done || err != nil {
			return err
		}

		printTrendResult(report.Result)
		printAnomalies(report.Anomalies)
		printWeekly(report.Weekly)
		return nil
	},
}

func printTrendResult(r *trend.Result) {
	if r == nil {
		fmt.Println("Direction: not enough data for a smoothed comparison yet.")
		return
	}
	fmt.Printf("Direction: %s (%.1f%% change, %.2f%%/day momentum, confidence %.0f%%)\n",
		r.Trend, r.ChangePercent, r.MomentumPct, r.Confidence)
	fmt.Printf("Recent average %.1f vs previous %.1f\n", r.RecentAvg, r.PreviousAvg)
}

func printAnomalies(anomalies []trend.Anomaly) {
	if len(anomalies) == 0 {
		return
	}
	fmt.Printf("\nAnomalies (%d):\n", len(anomalies))
	for _, a := range anomalies {
		fmt.Printf("  %s  %.1f (expected %.1f, %.1f sigma, %s)\n",
			a.Date.Format("2006-01-02"), a.Actual, a.Expected, a.Deviations, a.Severity)
	}
}

func printWeekly(w *trend.WeeklyPattern) {
	if w == nil || !w.Detected {
		return
	}
	fmt.Println("\nWeekly pattern:")
	for _, b := range w.Biases {
		direction := "above"
		if b.DeviationPercent < 0 {
			direction = "below"
		}
		fmt.Printf("  %-9s %.1f (%.0f%% %s your average)\n",
			b.Day, b.Average, abs(b.DeviationPercent), direction)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func init() {
	trendCmd.Flags().Int("days", 0, "History window in days (default from config)")
	trendCmd.ValidArgs = []string{recommend.MetricStudyTime, recommend.MetricFocus, recommend.MetricPerformance}
}
