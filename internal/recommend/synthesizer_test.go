package recommend

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rlopes/studypulse/internal/store"
)

var testNow = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

// fakeData is an in-memory backing store shared by the mock repos.
type fakeData struct {
	sessions    []store.Session
	assessments []store.Assessment
	subjects    []store.Subject
	goals       []store.Goal
	reviews     []store.ReviewItem

	sessionsErr error
}

type mockSessions struct{ d *fakeData }

func (m mockSessions) Append(context.Context, store.Session) (int, error) { return 0, nil }
func (m mockSessions) Count(context.Context) (int, error)                 { return len(m.d.sessions), nil }
func (m mockSessions) ListSince(_ context.Context, since time.Time) ([]store.Session, error) {
	if m.d.sessionsErr != nil {
		return nil, m.d.sessionsErr
	}
	var out []store.Session
	for _, s := range m.d.sessions {
		if !s.StartedAt.Before(since) {
			out = append(out, s)
		}
	}
	return out, nil
}
func (m mockSessions) ListBySubject(_ context.Context, subjectID int, since time.Time) ([]store.Session, error) {
	all, err := m.ListSince(context.Background(), since)
	if err != nil {
		return nil, err
	}
	var out []store.Session
	for _, s := range all {
		if s.SubjectID == subjectID {
			out = append(out, s)
		}
	}
	return out, nil
}

type mockAssessments struct{ d *fakeData }

func (m mockAssessments) Append(context.Context, store.Assessment) (int, error) { return 0, nil }
func (m mockAssessments) ListSince(_ context.Context, since time.Time) ([]store.Assessment, error) {
	var out []store.Assessment
	for _, a := range m.d.assessments {
		if !a.TakenAt.Before(since) {
			out = append(out, a)
		}
	}
	return out, nil
}
func (m mockAssessments) ListBySubject(_ context.Context, subjectID int, since time.Time) ([]store.Assessment, error) {
	all, _ := m.ListSince(context.Background(), since)
	var out []store.Assessment
	for _, a := range all {
		if a.SubjectID == subjectID {
			out = append(out, a)
		}
	}
	return out, nil
}

type mockSubjects struct{ d *fakeData }

func (m mockSubjects) Create(context.Context, store.Subject) (int, error) { return 0, nil }
func (m mockSubjects) Get(context.Context, int) (*store.Subject, error) {
	return nil, store.ErrNotFound
}
func (m mockSubjects) GetByName(context.Context, string) (*store.Subject, error) {
	return nil, store.ErrNotFound
}
func (m mockSubjects) List(_ context.Context, includeArchived bool) ([]store.Subject, error) {
	var out []store.Subject
	for _, s := range m.d.subjects {
		if s.Archived && !includeArchived {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

type mockGoals struct{ d *fakeData }

func (m mockGoals) Create(context.Context, store.Goal) (int, error) { return 0, nil }
func (m mockGoals) ListOpen(context.Context) ([]store.Goal, error)  { return m.d.goals, nil }

type mockReviews struct{ d *fakeData }

func (m mockReviews) Create(context.Context, store.ReviewItem) (int, error) { return 0, nil }
func (m mockReviews) Get(context.Context, int) (*store.ReviewItem, error) {
	return nil, store.ErrNotFound
}
func (m mockReviews) Update(context.Context, store.ReviewItem) error { return nil }
func (m mockReviews) List(_ context.Context, subjectID int, status string) ([]store.ReviewItem, error) {
	var out []store.ReviewItem
	for _, item := range m.d.reviews {
		if subjectID != 0 && item.SubjectID != subjectID {
			continue
		}
		if status != "" && item.Status != status {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func newTestSynthesizer(d *fakeData) *Synthesizer {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewSynthesizer(
		mockSessions{d}, mockAssessments{d}, mockSubjects{d}, mockGoals{d}, mockReviews{d},
		log, Options{},
	)
}

func intPtr(v int) *int { return &v }

func TestGenerate_NoData(t *testing.T) {
	s := newTestSynthesizer(&fakeData{})

	bundle, err := s.Generate(context.Background(), 0, testNow)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(bundle.Recommendations) != 0 {
		t.Errorf("got %d recommendations, want 0", len(bundle.Recommendations))
	}
	if bundle.Summary.OverallHealth != HealthExcellent {
		t.Errorf("health = %s, want %s", bundle.Summary.OverallHealth, HealthExcellent)
	}
	if bundle.Signals.Burnout != nil || bundle.Signals.Profile != nil || bundle.Signals.Allocation != nil {
		t.Error("analyses ran despite no data meeting their floors")
	}
}

func TestGenerate_DueReviewsSurface(t *testing.T) {
	d := &fakeData{
		reviews: []store.ReviewItem{
			{ID: 1, Topic: "osmosis", SubjectID: 1, Strength: 5, CreatedAt: testNow.AddDate(0, 0, -10),
				NextReviewAt: testNow.AddDate(0, 0, -1), Status: "active"},
			{ID: 2, Topic: "mitosis", SubjectID: 1, Strength: 5, CreatedAt: testNow.AddDate(0, 0, -10),
				NextReviewAt: testNow.AddDate(0, 0, -2), Status: "active"},
		},
	}
	s := newTestSynthesizer(d)

	bundle, err := s.Generate(context.Background(), 0, testNow)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	var found *Recommendation
	for i := range bundle.Recommendations {
		if bundle.Recommendations[i].Type == TypeReview {
			found = &bundle.Recommendations[i]
		}
	}
	if found == nil {
		t.Fatal("no review recommendation in bundle")
	}
	if found.Title != "2 topics are due for review" {
		t.Errorf("title = %q", found.Title)
	}
	if found.Priority != PriorityMedium {
		t.Errorf("priority = %s, want medium below the 5-item threshold", found.Priority)
	}
}

func TestGenerate_SessionLoadFailureIsIsolated(t *testing.T) {
	d := &fakeData{
		sessionsErr: errors.New("disk full"),
		reviews: []store.ReviewItem{
			{ID: 1, Topic: "osmosis", SubjectID: 1, Strength: 5, CreatedAt: testNow.AddDate(0, 0, -10),
				NextReviewAt: testNow.AddDate(0, 0, -1), Status: "active"},
		},
	}
	s := newTestSynthesizer(d)

	bundle, err := s.Generate(context.Background(), 0, testNow)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(bundle.Signals.Due) != 1 {
		t.Errorf("due items = %d, want 1; review analysis must survive a session load failure", len(bundle.Signals.Due))
	}
	if bundle.Signals.Burnout != nil {
		t.Error("burnout analysis ran without session data")
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	d := &fakeData{
		subjects: []store.Subject{
			{ID: 1, Name: "biology", Difficulty: "hard", Priority: "high", TargetScore: 80},
			{ID: 2, Name: "history", Difficulty: "easy", Priority: "low", TargetScore: 80},
		},
		goals: []store.Goal{
			{ID: 1, Title: "finish unit 4", SubjectID: 1, TargetValue: 10, CurrentValue: 4,
				DueAt: timePtr(testNow.AddDate(0, 0, 5)), Status: "on_track"},
		},
		reviews: []store.ReviewItem{
			{ID: 1, Topic: "osmosis", SubjectID: 1, Strength: 5, CreatedAt: testNow.AddDate(0, 0, -10),
				NextReviewAt: testNow.AddDate(0, 0, -1), Status: "active"},
		},
	}
	for i := 0; i < 20; i++ {
		d.sessions = append(d.sessions, store.Session{
			ID: i + 1, SubjectID: 1 + i%2, StartedAt: testNow.AddDate(0, 0, -i),
			DurationMin: 45, Focus: intPtr(7), Method: "flashcards",
		})
	}
	s := newTestSynthesizer(d)

	first, err := s.Generate(context.Background(), 0, testNow)
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	second, err := s.Generate(context.Background(), 0, testNow)
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if len(first.Recommendations) != len(second.Recommendations) {
		t.Fatalf("lengths differ: %d vs %d", len(first.Recommendations), len(second.Recommendations))
	}
	for i := range first.Recommendations {
		a, b := first.Recommendations[i], second.Recommendations[i]
		if a.Type != b.Type || a.Title != b.Title || a.Priority != b.Priority {
			t.Errorf("position %d differs: (%s %q %s) vs (%s %q %s)",
				i, a.Type, a.Title, a.Priority, b.Type, b.Title, b.Priority)
		}
		if len(a.ActionItems) != len(b.ActionItems) {
			t.Errorf("position %d action item counts differ", i)
			continue
		}
		for j := range a.ActionItems {
			if a.ActionItems[j] != b.ActionItems[j] {
				t.Errorf("position %d action %d differs: %q vs %q", i, j, a.ActionItems[j], b.ActionItems[j])
			}
		}
	}
}

func TestGenerate_AllocationNeedsTwoSubjects(t *testing.T) {
	d := &fakeData{
		subjects: []store.Subject{{ID: 1, Name: "biology", Difficulty: "moderate", Priority: "medium", TargetScore: 80}},
	}
	for i := 0; i < 6; i++ {
		d.sessions = append(d.sessions, store.Session{
			ID: i + 1, SubjectID: 1, StartedAt: testNow.AddDate(0, 0, -i), DurationMin: 30, Method: "reading",
		})
	}
	s := newTestSynthesizer(d)

	bundle, err := s.Generate(context.Background(), 0, testNow)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if bundle.Signals.Allocation != nil {
		t.Error("allocation ran with a single active subject")
	}
}

func TestGenerate_SubjectFilter(t *testing.T) {
	d := &fakeData{
		goals: []store.Goal{
			{ID: 1, Title: "bio goal", SubjectID: 1, TargetValue: 10, CurrentValue: 2,
				DueAt: timePtr(testNow.AddDate(0, 0, 5)), Status: "on_track"},
			{ID: 2, Title: "history goal", SubjectID: 2, TargetValue: 10, CurrentValue: 2,
				DueAt: timePtr(testNow.AddDate(0, 0, 5)), Status: "on_track"},
		},
		reviews: []store.ReviewItem{
			{ID: 1, Topic: "osmosis", SubjectID: 1, Strength: 5, CreatedAt: testNow.AddDate(0, 0, -10),
				NextReviewAt: testNow.AddDate(0, 0, -1), Status: "active"},
			{ID: 2, Topic: "cold war", SubjectID: 2, Strength: 5, CreatedAt: testNow.AddDate(0, 0, -10),
				NextReviewAt: testNow.AddDate(0, 0, -1), Status: "active"},
		},
	}
	s := newTestSynthesizer(d)

	bundle, err := s.Generate(context.Background(), 2, testNow)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(bundle.Signals.Due) != 1 || bundle.Signals.Due[0].Topic != "cold war" {
		t.Errorf("due = %v, want only the filtered subject's item", bundle.Signals.Due)
	}
	if len(bundle.Signals.OpenGoals) != 1 || bundle.Signals.OpenGoals[0].Title != "history goal" {
		t.Errorf("goals = %v, want only the filtered subject's goal", bundle.Signals.OpenGoals)
	}
}

func timePtr(t time.Time) *time.Time { return &t }
