package recommend

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rlopes/studypulse/internal/allocation"
	"github.com/rlopes/studypulse/internal/burnout"
	"github.com/rlopes/studypulse/internal/forgetting"
	"github.com/rlopes/studypulse/internal/learnstyle"
	"github.com/rlopes/studypulse/internal/store"
	"github.com/rlopes/studypulse/internal/trend"
)

// Minimum data before an analysis contributes to the bundle. Below these
// the analysis is skipped silently rather than reported on noise.
const (
	minSessionsForBurnout  = 5
	minSessionsForTrend    = 5
	minAssessmentsForTrend = 2
	minSessionsForProfile  = 10
	minActiveSubjects      = 2
)

// riskRetentionThreshold is the estimated retention below which an active
// review item counts as close to forgotten.
const riskRetentionThreshold = 60.0

// dueSoonHorizonDays feeds the allocator's forgetting pressure signal.
const dueSoonHorizonDays = 3

// Options tune the synthesizer. Zero values fall back to defaults.
type Options struct {
	LookbackDays int     // history window for every analysis, default 90
	TrendWindow  int     // smoothing window in days, default 7
	WeeklyHours  float64 // available study hours per week, default 20
}

func (o Options) withDefaults() Options {
	if o.LookbackDays <= 0 {
		o.LookbackDays = 90
	}
	if o.TrendWindow <= 0 {
		o.TrendWindow = 7
	}
	if o.WeeklyHours <= 0 {
		o.WeeklyHours = 20
	}
	return o
}

// Synthesizer fans out to every analysis component and folds the results
// into one ranked recommendation bundle.
type Synthesizer struct {
	sessions    store.SessionRepo
	assessments store.AssessmentRepo
	subjects    store.SubjectRepo
	goals       store.GoalRepo
	scheduler   *forgetting.Scheduler
	log         *logrus.Logger
	opts        Options
}

func NewSynthesizer(
	sessions store.SessionRepo,
	assessments store.AssessmentRepo,
	subjects store.SubjectRepo,
	goals store.GoalRepo,
	reviews store.ReviewRepo,
	log *logrus.Logger,
	opts Options,
) *Synthesizer {
	return &Synthesizer{
		sessions:    sessions,
		assessments: assessments,
		subjects:    subjects,
		goals:       goals,
		scheduler:   forgetting.NewScheduler(reviews),
		log:         log,
		opts:        opts.withDefaults(),
	}
}

// Generate runs every analysis with enough data behind it and returns the
// deduplicated, priority-ranked bundle. A non-zero subjectID narrows every
// signal to that subject. A failing analysis is logged and skipped; it never
// aborts the others.
func (s *Synthesizer) Generate(ctx context.Context, subjectID int, now time.Time) (*Bundle, error) {
	since := now.AddDate(0, 0, -s.opts.LookbackDays)

	var (
		sessions    []store.Session
		assessments []store.Assessment
		subjects    []store.Subject
		goals       []store.Goal
	)

	var load errgroup.Group
	load.Go(func() error {
		var err error
		if sessions, err = s.sessions.ListSince(ctx, since); err != nil {
			s.warn("sessions", err)
			sessions = nil
		}
		return nil
	})
	load.Go(func() error {
		var err error
		if assessments, err = s.assessments.ListSince(ctx, since); err != nil {
			s.warn("assessments", err)
			assessments = nil
		}
		return nil
	})
	load.Go(func() error {
		var err error
		if subjects, err = s.subjects.List(ctx, false); err != nil {
			s.warn("subjects", err)
			subjects = nil
		}
		return nil
	})
	load.Go(func() error {
		var err error
		if goals, err = s.goals.ListOpen(ctx); err != nil {
			s.warn("goals", err)
			goals = nil
		}
		return nil
	})
	_ = load.Wait()

	if subjectID != 0 {
		sessions = lo.Filter(sessions, func(s store.Session, _ int) bool { return s.SubjectID == subjectID })
		assessments = lo.Filter(assessments, func(a store.Assessment, _ int) bool { return a.SubjectID == subjectID })
		subjects = lo.Filter(subjects, func(s store.Subject, _ int) bool { return s.ID == subjectID })
		goals = lo.Filter(goals, func(g store.Goal, _ int) bool { return g.SubjectID == subjectID })
	}

	sig := Signals{OpenGoals: goals}

	var analyze errgroup.Group
	analyze.Go(func() error {
		if len(sessions) >= minSessionsForBurnout {
			sig.Burnout = burnout.Assess(sessions, assessments, now)
		}
		return nil
	})
	analyze.Go(func() error {
		sig.Trends = s.analyzeTrends(sessions, assessments)
		return nil
	})
	analyze.Go(func() error {
		due, err := s.scheduler.DueForReview(ctx, subjectID, now)
		if err != nil {
			s.warn("due reviews", err)
		} else {
			sig.Due = due
		}
		risks, err := s.scheduler.AtRisk(ctx, subjectID, riskRetentionThreshold, now)
		if err != nil {
			s.warn("at-risk reviews", err)
		} else {
			sig.AtRisk = risks
		}
		return nil
	})
	analyze.Go(func() error {
		if len(subjects) < minActiveSubjects {
			return nil
		}
		dueSoon, err := s.scheduler.DueWithin(ctx, dueSoonHorizonDays, now)
		if err != nil {
			s.warn("due-soon counts", err)
			dueSoon = nil
		}
		stats := BuildSubjectStats(subjects, sessions, assessments, dueSoon, now)
		sig.Allocation = allocation.Allocate(stats, s.opts.WeeklyHours, now)
		return nil
	})
	analyze.Go(func() error {
		if len(sessions) >= minSessionsForProfile {
			sig.Profile = learnstyle.BuildProfile(sessions, assessments)
		}
		return nil
	})
	_ = analyze.Wait()

	var recs []Recommendation
	recs = append(recs, burnoutRecommendations(sig.Burnout)...)
	recs = append(recs, reviewRecommendations(sig.Due, sig.AtRisk)...)
	recs = append(recs, trendRecommendations(sig.Trends)...)
	recs = append(recs, allocationRecommendations(sig.Allocation)...)
	recs = append(recs, goalRecommendations(sig.OpenGoals, now)...)
	recs = append(recs, profileRecommendations(sig.Profile, now)...)
	recs = rank(recs, now)

	return &Bundle{
		Recommendations: recs,
		Summary:         summarize(recs, sig),
		Signals:         sig,
		GeneratedAt:     now,
	}, nil
}

// analyzeTrends runs the three metric trends, in a fixed order so bundles
// compare cleanly across runs.
func (s *Synthesizer) analyzeTrends(sessions []store.Session, assessments []store.Assessment) []*trend.Result {
	var results []*trend.Result
	if len(sessions) >= minSessionsForTrend {
		if r := trend.Analyze(DailyStudyMinutes(sessions), MetricStudyTime, s.opts.TrendWindow); r != nil {
			results = append(results, r)
		}
		if r := trend.Analyze(DailyFocus(sessions), MetricFocus, s.opts.TrendWindow); r != nil {
			results = append(results, r)
		}
	}
	if len(assessments) >= minAssessmentsForTrend {
		if r := trend.Analyze(DailyScores(assessments), MetricPerformance, s.opts.TrendWindow); r != nil {
			results = append(results, r)
		}
	}
	return results
}

// BuildSubjectStats derives the allocator's per-subject inputs from the
// already loaded history instead of issuing per-subject queries.
func BuildSubjectStats(
	subjects []store.Subject,
	sessions []store.Session,
	assessments []store.Assessment,
	dueSoon map[int]int,
	now time.Time,
) []allocation.SubjectStats {
	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, 0, -30)

	lastStudied := make(map[int]time.Time)
	weeklyMinutes := make(map[int]float64)
	for _, sess := range sessions {
		if last, ok := lastStudied[sess.SubjectID]; !ok || sess.StartedAt.After(last) {
			lastStudied[sess.SubjectID] = sess.StartedAt
		}
		if sess.StartedAt.After(weekAgo) {
			weeklyMinutes[sess.SubjectID] += float64(sess.DurationMin)
		}
	}

	scoreSums := make(map[int]float64)
	scoreCounts := make(map[int]int)
	for _, a := range assessments {
		if a.TakenAt.After(monthAgo) {
			scoreSums[a.SubjectID] += a.ScorePercent
			scoreCounts[a.SubjectID]++
		}
	}

	stats := make([]allocation.SubjectStats, 0, len(subjects))
	for _, sub := range subjects {
		st := allocation.SubjectStats{
			Subject:            sub,
			CurrentWeeklyHours: weeklyMinutes[sub.ID] / 60,
			RecentAvgScore:     -1,
			DueSoon:            dueSoon[sub.ID],
		}
		if last, ok := lastStudied[sub.ID]; ok {
			st.LastStudied = &last
		}
		if n := scoreCounts[sub.ID]; n > 0 {
			st.RecentAvgScore = scoreSums[sub.ID] / float64(n)
		}
		stats = append(stats, st)
	}
	return stats
}

func (s *Synthesizer) warn(analysis string, err error) {
	s.log.WithFields(logrus.Fields{
		"analysis": analysis,
		"error":    err,
	}).Warn("analysis input unavailable, skipping")
}
