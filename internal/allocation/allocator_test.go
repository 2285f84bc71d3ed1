package allocation

import (
	"math"
	"testing"
	"time"

	"github.com/rlopes/studypulse/internal/store"
)

var testNow = time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)

const epsilon = 0.001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func timePtr(t time.Time) *time.Time { return &t }

func subjectStats(name string, opts ...func(*SubjectStats)) SubjectStats {
	st := SubjectStats{
		Subject:        store.Subject{ID: len(name), Name: name, Difficulty: "moderate", TargetScore: 80},
		RecentAvgScore: -1,
	}
	for _, opt := range opts {
		opt(&st)
	}
	return st
}

func TestNeedScore_NeverStudied(t *testing.T) {
	st := subjectStats("algebra")
	// Never studied (15) + moderate difficulty (0), nothing else.
	if got := NeedScore(st, testNow); !almostEqual(got, 15) {
		t.Errorf("NeedScore = %f, want 15", got)
	}
}

func TestNeedScore_RecencyBuckets(t *testing.T) {
	tests := []struct {
		daysAgo int
		want    float64
	}{
		{1, 0},
		{5, 6},
		{10, 12},
		{21, 20},
	}
	for _, tt := range tests {
		st := subjectStats("x", func(s *SubjectStats) {
			s.LastStudied = timePtr(testNow.AddDate(0, 0, -tt.daysAgo))
		})
		if got := NeedScore(st, testNow); !almostEqual(got, tt.want) {
			t.Errorf("NeedScore(studied %dd ago) = %f, want %f", tt.daysAgo, got, tt.want)
		}
	}
}

func TestNeedScore_PerformanceGap(t *testing.T) {
	tests := []struct {
		avg  float64
		want float64
	}{
		{55, 30},  // gap 25
		{65, 20},  // gap 15
		{75, 10},  // gap 5
		{80, 0},   // on target
		{83, 0},   // within the +5 tolerance
		{90, -10}, // exceeding by >5 subtracts
	}
	for _, tt := range tests {
		if got := performancePoints(tt.avg, 80); !almostEqual(got, tt.want) {
			t.Errorf("performancePoints(%f, 80) = %f, want %f", tt.avg, got, tt.want)
		}
	}
}

func TestNeedScore_ClampedAtZero(t *testing.T) {
	// Studied today, easy subject, over target: raw score is negative.
	st := subjectStats("easy one", func(s *SubjectStats) {
		s.LastStudied = timePtr(testNow.AddDate(0, 0, -1))
		s.Subject.Difficulty = "easy"
		s.RecentAvgScore = 95
	})
	if got := NeedScore(st, testNow); got != 0 {
		t.Errorf("NeedScore = %f, want 0 (clamped)", got)
	}
}

func TestNeedScore_DeadlineAndForgetting(t *testing.T) {
	st := subjectStats("organic chem", func(s *SubjectStats) {
		s.LastStudied = timePtr(testNow.AddDate(0, 0, -21)) // 20
		s.Subject.Difficulty = "very_hard"                  // 15
		s.Subject.ExamAt = timePtr(testNow.AddDate(0, 0, 5)) // 25
		s.RecentAvgScore = 55                               // 30
		s.DueSoon = 7                                        // 10
	})
	// 20 + 30 + 15 + 25 + 10 = 100.
	if got := NeedScore(st, testNow); !almostEqual(got, 100) {
		t.Errorf("NeedScore = %f, want 100", got)
	}
}

func TestUrgencyFactor_Buckets(t *testing.T) {
	tests := []struct {
		days int
		want float64
	}{
		{3, 2.0},
		{10, 1.5},
		{25, 1.2},
		{60, 1.0},
	}
	for _, tt := range tests {
		exam := timePtr(testNow.AddDate(0, 0, tt.days))
		if got := UrgencyFactor(exam, testNow); !almostEqual(got, tt.want) {
			t.Errorf("UrgencyFactor(%dd) = %f, want %f", tt.days, got, tt.want)
		}
	}
	if got := UrgencyFactor(nil, testNow); !almostEqual(got, 1.0) {
		t.Errorf("UrgencyFactor(no exam) = %f, want 1.0", got)
	}
}

func TestAllocate_ConservesBudget(t *testing.T) {
	stats := []SubjectStats{
		subjectStats("calculus", func(s *SubjectStats) {
			s.LastStudied = timePtr(testNow.AddDate(0, 0, -10))
			s.Subject.Difficulty = "hard"
			s.RecentAvgScore = 60
		}),
		subjectStats("history", func(s *SubjectStats) {
			s.LastStudied = timePtr(testNow.AddDate(0, 0, -5))
		}),
		subjectStats("spanish", func(s *SubjectStats) {
			s.Subject.ExamAt = timePtr(testNow.AddDate(0, 0, 6))
		}),
	}

	plan := Allocate(stats, 20, testNow)
	var total float64
	for _, a := range plan.Allocations {
		if a.RecommendedHours < 0 {
			t.Errorf("%s recommended %f hours, want >= 0", a.SubjectName, a.RecommendedHours)
		}
		total += a.RecommendedHours
	}
	if !almostEqual(total, 20) {
		t.Errorf("total recommended = %f, want 20", total)
	}
}

func TestAllocate_ZeroNeedAllocatesNothing(t *testing.T) {
	stats := []SubjectStats{
		subjectStats("done", func(s *SubjectStats) {
			s.LastStudied = timePtr(testNow.AddDate(0, 0, -1))
			s.Subject.Difficulty = "easy"
			s.RecentAvgScore = 95
		}),
	}

	plan := Allocate(stats, 20, testNow)
	if len(plan.Allocations) != 1 {
		t.Fatalf("len(Allocations) = %d, want 1", len(plan.Allocations))
	}
	if plan.Allocations[0].RecommendedHours != 0 {
		t.Errorf("RecommendedHours = %f, want 0", plan.Allocations[0].RecommendedHours)
	}
}

func TestAllocate_OrdersByNeed(t *testing.T) {
	stats := []SubjectStats{
		subjectStats("low", func(s *SubjectStats) {
			s.LastStudied = timePtr(testNow.AddDate(0, 0, -5))
		}),
		subjectStats("urgent", func(s *SubjectStats) {
			s.LastStudied = timePtr(testNow.AddDate(0, 0, -21))
			s.Subject.ExamAt = timePtr(testNow.AddDate(0, 0, 4))
			s.RecentAvgScore = 50
		}),
	}

	plan := Allocate(stats, 10, testNow)
	if plan.Allocations[0].SubjectName != "urgent" {
		t.Errorf("first allocation = %s, want urgent", plan.Allocations[0].SubjectName)
	}
	if plan.Allocations[0].RecommendedHours <= plan.Allocations[1].RecommendedHours {
		t.Errorf("urgent hours %f <= low hours %f", plan.Allocations[0].RecommendedHours, plan.Allocations[1].RecommendedHours)
	}
}

func TestPriorityTiers(t *testing.T) {
	tests := []struct {
		need float64
		want string
	}{
		{80, PriorityCritical},
		{75, PriorityCritical},
		{60, PriorityHigh},
		{55, PriorityHigh},
		{40, PriorityMedium},
		{35, PriorityMedium},
		{20, PriorityLow},
	}
	for _, tt := range tests {
		if got := priorityFor(tt.need); got != tt.want {
			t.Errorf("priorityFor(%f) = %s, want %s", tt.need, got, tt.want)
		}
	}
}

func TestBuildWeekSchedule_BlockLimits(t *testing.T) {
	allocations := []Allocation{
		{SubjectID: 1, SubjectName: "calculus", RecommendedHours: 5, Priority: PriorityCritical},
		{SubjectID: 2, SubjectName: "history", RecommendedHours: 2, Priority: PriorityLow},
	}

	week := buildWeekSchedule(allocations)
	if len(week) != 7 {
		t.Fatalf("len(week) = %d, want 7", len(week))
	}
	if week[0].Day != time.Monday {
		t.Errorf("week starts on %s, want Monday", week[0].Day)
	}

	var total float64
	for _, day := range week {
		for _, b := range day.Blocks {
			if b.Hours > maxBlockHours+epsilon {
				t.Errorf("block of %f hours exceeds max %f", b.Hours, maxBlockHours)
			}
			if b.SubjectName == "calculus" && b.Window != WindowMorning {
				t.Errorf("critical subject window = %s, want morning", b.Window)
			}
			if b.SubjectName == "history" && b.Window != WindowFlexible {
				t.Errorf("low subject window = %s, want flexible", b.Window)
			}
			total += b.Hours
		}
	}
	if !almostEqual(total, 7) {
		t.Errorf("scheduled hours = %f, want 7", total)
	}

	// Highest-need subject is dealt first, so Monday's first block is calculus.
	if len(week[0].Blocks) == 0 || week[0].Blocks[0].SubjectName != "calculus" {
		t.Errorf("Monday first block = %+v, want calculus", week[0].Blocks)
	}
}

func TestBuildWeekSchedule_KeepsFinalSliver(t *testing.T) {
	// 1.6 hours slices into a full 1.5h block plus a 0.1h remainder.
	week := buildWeekSchedule([]Allocation{
		{SubjectID: 1, SubjectName: "latin", RecommendedHours: 1.6, Priority: PriorityLow},
	})

	var total float64
	var blocks int
	for _, day := range week {
		for _, b := range day.Blocks {
			total += b.Hours
			blocks++
		}
	}
	if blocks != 2 {
		t.Fatalf("blocks = %d, want 2", blocks)
	}
	if !almostEqual(total, 1.6) {
		t.Errorf("scheduled hours = %f, want 1.6 (remainder must not be dropped)", total)
	}
}
