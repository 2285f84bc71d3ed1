// Package engine wires the storage layer to the analysis components and
// exposes the operations the CLI commands call.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rlopes/studypulse/internal/allocation"
	"github.com/rlopes/studypulse/internal/burnout"
	"github.com/rlopes/studypulse/internal/config"
	"github.com/rlopes/studypulse/internal/forgetting"
	"github.com/rlopes/studypulse/internal/learnstyle"
	"github.com/rlopes/studypulse/internal/recommend"
	"github.com/rlopes/studypulse/internal/store"
	"github.com/rlopes/studypulse/internal/trend"
)

// ErrInsufficientData is returned when an analysis lacks the minimum
// history it needs to say anything meaningful.
var ErrInsufficientData = errors.New("not enough history for this analysis")

// ErrUnknownMetric is returned for trend metrics outside study_time, focus,
// and performance.
var ErrUnknownMetric = errors.New("unknown metric")

// snapshotKeep bounds how many historical snapshots are retained per kind.
const snapshotKeep = 10

// Engine is the application facade over the store and analysis components.
type Engine struct {
	st        *store.Store
	cfg       *config.Config
	log       *logrus.Logger
	scheduler *forgetting.Scheduler
	synth     *recommend.Synthesizer
}

func New(st *store.Store, cfg *config.Config, log *logrus.Logger) *Engine {
	return &Engine{
		st:        st,
		cfg:       cfg,
		log:       log,
		scheduler: forgetting.NewScheduler(st.Reviews()),
		synth: recommend.NewSynthesizer(
			st.Sessions(), st.Assessments(), st.Subjects(), st.Goals(), st.Reviews(),
			log,
			recommend.Options{
				LookbackDays: cfg.Analysis.LookbackDays,
				TrendWindow:  cfg.Analysis.TrendWindowDays,
				WeeklyHours:  cfg.Study.WeeklyHours,
			},
		),
	}
}

// Store exposes the underlying repositories for data-entry commands.
func (e *Engine) Store() *store.Store {
	return e.st
}

// ScheduleReview starts tracking a topic for spaced review.
func (e *Engine) ScheduleReview(ctx context.Context, subjectID int, topic string, confidence, difficulty int, now time.Time) (*store.ReviewItem, error) {
	return e.scheduler.Schedule(ctx, subjectID, topic, confidence, difficulty, now)
}

// RecordReview logs a review outcome and reschedules the item.
func (e *Engine) RecordReview(ctx context.Context, itemID, confidence, timeSpentMin int, result forgetting.Result, now time.Time) (*store.ReviewItem, error) {
	return e.scheduler.RecordReview(ctx, itemID, confidence, timeSpentMin, result, now)
}

// ItemsDueForReview lists active items past their review date, most overdue
// first. A zero subjectID means all subjects.
func (e *Engine) ItemsDueForReview(ctx context.Context, subjectID int, now time.Time) ([]store.ReviewItem, error) {
	return e.scheduler.DueForReview(ctx, subjectID, now)
}

// AtRiskItems lists active items whose estimated retention fell below
// threshold, most decayed first.
func (e *Engine) AtRiskItems(ctx context.Context, subjectID int, threshold float64, now time.Time) ([]forgetting.ItemRisk, error) {
	return e.scheduler.AtRisk(ctx, subjectID, threshold, now)
}

// PauseReview takes an item out of the review rotation.
func (e *Engine) PauseReview(ctx context.Context, itemID int) error {
	return e.scheduler.Pause(ctx, itemID)
}

// ResumeReview puts a paused item back into the rotation.
func (e *Engine) ResumeReview(ctx context.Context, itemID int) error {
	return e.scheduler.Resume(ctx, itemID)
}

// AssessBurnout scores the five burnout indicators over the last 90 days.
// Requires at least 5 logged sessions.
func (e *Engine) AssessBurnout(ctx context.Context, now time.Time) (*burnout.Assessment, error) {
	since := now.AddDate(0, 0, -e.lookbackDays())
	sessions, err := e.st.Sessions().ListSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	if len(sessions) < 5 {
		return nil, fmt.Errorf("%w: need 5 sessions, have %d", ErrInsufficientData, len(sessions))
	}
	assessments, err := e.st.Assessments().ListSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("load assessments: %w", err)
	}

	result := burnout.Assess(sessions, assessments, now)
	e.snapshot(ctx, "burnout", result)
	return result, nil
}

// TrendReport combines the direction analysis with anomaly and weekly
// pattern detection over the same series.
type TrendReport struct {
	Metric    string               `json:"metric"`
	Result    *trend.Result        `json:"result,omitempty"`
	Anomalies []trend.Anomaly      `json:"anomalies,omitempty"`
	Weekly    *trend.WeeklyPattern `json:"weekly,omitempty"`
}

// AnalyzeTrend builds the daily series for metric over the trailing days
// and runs direction, anomaly, and weekly pattern analysis on it.
func (e *Engine) AnalyzeTrend(ctx context.Context, metric string, days int, now time.Time) (*TrendReport, error) {
	if days <= 0 {
		days = e.lookbackDays()
	}
	since := now.AddDate(0, 0, -days)

	var samples []trend.Sample
	switch metric {
	case recommend.MetricStudyTime, recommend.MetricFocus:
		sessions, err := e.st.Sessions().ListSince(ctx, since)
		if err != nil {
			return nil, fmt.Errorf("load sessions: %w", err)
		}
		if metric == recommend.MetricStudyTime {
			samples = recommend.DailyStudyMinutes(sessions)
		} else {
			samples = recommend.DailyFocus(sessions)
		}
	case recommend.MetricPerformance:
		assessments, err := e.st.Assessments().ListSince(ctx, since)
		if err != nil {
			return nil, fmt.Errorf("load assessments: %w", err)
		}
		samples = recommend.DailyScores(assessments)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}

	window := e.cfg.Analysis.TrendWindowDays
	report := &TrendReport{
		Metric:    metric,
		Result:    trend.Analyze(samples, metric, window),
		Anomalies: trend.DetectAnomalies(samples, e.cfg.Analysis.AnomalyThreshold),
		Weekly:    trend.DetectWeeklyPattern(samples),
	}
	if report.Result == nil && len(report.Anomalies) == 0 && report.Weekly == nil {
		return nil, fmt.Errorf("%w: need %d days of data for metric %q", ErrInsufficientData, 2*window, metric)
	}
	e.snapshot(ctx, "trend", report)
	return report, nil
}

// AllocationPlan distributes weeklyHours across active subjects by need.
// Requires at least 2 active subjects; zero weeklyHours falls back to the
// configured weekly budget.
func (e *Engine) AllocationPlan(ctx context.Context, weeklyHours float64, now time.Time) (*allocation.Plan, error) {
	if weeklyHours <= 0 {
		weeklyHours = e.cfg.Study.WeeklyHours
	}

	subjects, err := e.st.Subjects().List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("load subjects: %w", err)
	}
	if len(subjects) < 2 {
		return nil, fmt.Errorf("%w: need 2 active subjects, have %d", ErrInsufficientData, len(subjects))
	}

	since := now.AddDate(0, 0, -e.lookbackDays())
	sessions, err := e.st.Sessions().ListSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	assessments, err := e.st.Assessments().ListSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("load assessments: %w", err)
	}
	dueSoon, err := e.scheduler.DueWithin(ctx, 3, now)
	if err != nil {
		e.log.WithError(err).Warn("due-soon counts unavailable for allocation")
		dueSoon = nil
	}

	stats := recommend.BuildSubjectStats(subjects, sessions, assessments, dueSoon, now)
	plan := allocation.Allocate(stats, weeklyHours, now)
	e.snapshot(ctx, "allocation", plan)
	return plan, nil
}

// LearningProfile infers the VARK-style profile. Requires at least 10
// logged sessions.
func (e *Engine) LearningProfile(ctx context.Context, now time.Time) (*learnstyle.Profile, error) {
	since := now.AddDate(0, 0, -e.lookbackDays())
	sessions, err := e.st.Sessions().ListSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	if len(sessions) < 10 {
		return nil, fmt.Errorf("%w: need 10 sessions, have %d", ErrInsufficientData, len(sessions))
	}
	assessments, err := e.st.Assessments().ListSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("load assessments: %w", err)
	}

	profile := learnstyle.BuildProfile(sessions, assessments)
	e.snapshot(ctx, "profile", profile)
	return profile, nil
}

// Recommendations runs the full synthesizer. A non-zero subjectID narrows
// every signal to that subject.
func (e *Engine) Recommendations(ctx context.Context, subjectID int, now time.Time) (*recommend.Bundle, error) {
	bundle, err := e.synth.Generate(ctx, subjectID, now)
	if err != nil {
		return nil, err
	}
	e.snapshot(ctx, "recommendations", bundle)
	return bundle, nil
}

func (e *Engine) lookbackDays() int {
	if e.cfg.Analysis.LookbackDays > 0 {
		return e.cfg.Analysis.LookbackDays
	}
	return 90
}

// snapshot persists an analysis result for later inspection. Failures are
// logged and swallowed; snapshots never block the analysis itself.
func (e *Engine) snapshot(ctx context.Context, kind string, data any) {
	repo := e.st.AnalysisSnapshots()
	if err := repo.Save(ctx, kind, data); err != nil {
		e.log.WithError(err).WithField("kind", kind).Warn("snapshot save failed")
		return
	}
	if err := repo.Prune(ctx, kind, snapshotKeep); err != nil {
		e.log.WithError(err).WithField("kind", kind).Warn("snapshot prune failed")
	}
}
