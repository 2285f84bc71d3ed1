package recommend

import (
	"testing"

	"github.com/rlopes/studypulse/internal/burnout"
)

func TestRank_DeduplicatesKeepingFirst(t *testing.T) {
	recs := rank([]Recommendation{
		{Type: TypeReview, Title: "same", Description: "first"},
		{Type: TypeReview, Title: "same", Description: "second"},
		{Type: TypeTrend, Title: "same", Description: "different type survives"},
	}, testNow)

	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}
	if recs[0].Description != "first" {
		t.Errorf("kept %q, want the first occurrence", recs[0].Description)
	}
}

func TestRank_PriorityOrderStableWithinTier(t *testing.T) {
	recs := rank([]Recommendation{
		{Type: TypeTrend, Title: "a", Priority: PriorityMedium},
		{Type: TypeGoal, Title: "b", Priority: PriorityUrgent},
		{Type: TypeTrend, Title: "c", Priority: PriorityMedium},
		{Type: TypeReview, Title: "d", Priority: PriorityHigh},
	}, testNow)

	want := []string{"b", "d", "a", "c"}
	for i, title := range want {
		if recs[i].Title != title {
			t.Errorf("position %d = %q, want %q", i, recs[i].Title, title)
		}
	}
}

func TestRank_AssignsIDs(t *testing.T) {
	recs := rank([]Recommendation{
		{Type: TypeTrend, Title: "a"},
		{Type: TypeTrend, Title: "b"},
	}, testNow)

	if recs[0].ID == "" || recs[1].ID == "" {
		t.Error("missing recommendation id")
	}
	if recs[0].ID == recs[1].ID {
		t.Error("ids must be unique")
	}
	if !recs[0].CreatedAt.Equal(testNow) {
		t.Errorf("created at = %v, want %v", recs[0].CreatedAt, testNow)
	}
}

func TestHealthFor(t *testing.T) {
	critical := &burnout.Assessment{Severity: burnout.SeverityCritical}
	high := &burnout.Assessment{Severity: burnout.SeverityHigh}

	cases := []struct {
		name   string
		urgent int
		high   int
		sig    Signals
		want   string
	}{
		{"no findings", 0, 0, Signals{}, HealthExcellent},
		{"one high", 0, 1, Signals{}, HealthGood},
		{"two high", 0, 2, Signals{}, HealthFair},
		{"one urgent", 1, 0, Signals{}, HealthNeedsAttention},
		{"burnout high", 0, 0, Signals{Burnout: high}, HealthNeedsAttention},
		{"three urgent", 3, 0, Signals{}, HealthCritical},
		{"burnout critical", 0, 0, Signals{Burnout: critical}, HealthCritical},
	}
	for _, tc := range cases {
		if got := healthFor(tc.urgent, tc.high, tc.sig); got != tc.want {
			t.Errorf("%s: health = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestSummarize_Counts(t *testing.T) {
	recs := []Recommendation{
		{Priority: PriorityUrgent},
		{Priority: PriorityHigh},
		{Priority: PriorityMedium},
		{Priority: PriorityLow},
		{Priority: PriorityLow},
	}
	sum := summarize(recs, Signals{})
	if sum.CriticalIssues != 1 {
		t.Errorf("critical issues = %d, want 1", sum.CriticalIssues)
	}
	if sum.OptimizationOpportunities != 3 {
		t.Errorf("optimizations = %d, want 3", sum.OptimizationOpportunities)
	}
}
