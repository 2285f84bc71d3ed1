package forgetting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rlopes/studypulse/internal/store"
)

// mockReviewRepo is an in-memory ReviewRepo for tests.
type mockReviewRepo struct {
	items  map[int]store.ReviewItem
	nextID int
}

func newMockReviewRepo() *mockReviewRepo {
	return &mockReviewRepo{items: make(map[int]store.ReviewItem), nextID: 1}
}

func (m *mockReviewRepo) Create(_ context.Context, item store.ReviewItem) (int, error) {
	id := m.nextID
	m.nextID++
	item.ID = id
	m.items[id] = item
	return id, nil
}

func (m *mockReviewRepo) Get(_ context.Context, id int) (*store.ReviewItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := item
	return &copied, nil
}

func (m *mockReviewRepo) Update(_ context.Context, item store.ReviewItem) error {
	if _, ok := m.items[item.ID]; !ok {
		return store.ErrNotFound
	}
	m.items[item.ID] = item
	return nil
}

func (m *mockReviewRepo) List(_ context.Context, subjectID int, status string) ([]store.ReviewItem, error) {
	var out []store.ReviewItem
	for _, item := range m.items {
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

var testNow = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

func TestSchedule_SeedsStrengthAndDate(t *testing.T) {
	s := NewScheduler(newMockReviewRepo())

	item, err := s.Schedule(context.Background(), 1, "photosynthesis", 8, 2, testNow)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if !almostEqual(item.Strength, 1.92) {
		t.Errorf("Strength = %f, want 1.92", item.Strength)
	}
	if want := testNow.AddDate(0, 0, 1); !item.NextReviewAt.Equal(want) {
		t.Errorf("NextReviewAt = %v, want %v", item.NextReviewAt, want)
	}
	if item.Status != StatusActive {
		t.Errorf("Status = %s, want active", item.Status)
	}
}

func TestSchedule_Validation(t *testing.T) {
	s := NewScheduler(newMockReviewRepo())
	ctx := context.Background()

	if _, err := s.Schedule(ctx, 1, "  ", 8, 2, testNow); !errors.Is(err, ErrEmptyTopic) {
		t.Errorf("empty topic err = %v, want ErrEmptyTopic", err)
	}
	if _, err := s.Schedule(ctx, 1, "x", 0, 2, testNow); !errors.Is(err, ErrInvalidConfidence) {
		t.Errorf("confidence 0 err = %v, want ErrInvalidConfidence", err)
	}
	if _, err := s.Schedule(ctx, 1, "x", 11, 2, testNow); !errors.Is(err, ErrInvalidConfidence) {
		t.Errorf("confidence 11 err = %v, want ErrInvalidConfidence", err)
	}
	if _, err := s.Schedule(ctx, 1, "x", 8, 6, testNow); !errors.Is(err, ErrInvalidDifficulty) {
		t.Errorf("difficulty 6 err = %v, want ErrInvalidDifficulty", err)
	}
}

func TestRecordReview_UpdatesStrengthAndHistory(t *testing.T) {
	repo := newMockReviewRepo()
	s := NewScheduler(repo)
	ctx := context.Background()

	item, err := s.Schedule(ctx, 1, "mitosis", 8, 2, testNow)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	later := testNow.AddDate(0, 0, 1)
	updated, err := s.RecordReview(ctx, item.ID, 9, 10, ResultGood, later)
	if err != nil {
		t.Fatalf("RecordReview: %v", err)
	}
	if !almostEqual(updated.Strength, 3.84) {
		t.Errorf("Strength = %f, want 3.84", updated.Strength)
	}
	if updated.ReviewCount != 1 {
		t.Errorf("ReviewCount = %d, want 1", updated.ReviewCount)
	}
	if len(updated.History) != 1 || updated.History[0].Result != "good" {
		t.Errorf("History = %+v, want one good event", updated.History)
	}
	if updated.LastReviewedAt == nil || !updated.LastReviewedAt.Equal(later) {
		t.Errorf("LastReviewedAt = %v, want %v", updated.LastReviewedAt, later)
	}
	// IntervalDays(3.84) = ceil(1.10) = 2.
	if want := later.AddDate(0, 0, 2); !updated.NextReviewAt.Equal(want) {
		t.Errorf("NextReviewAt = %v, want %v", updated.NextReviewAt, want)
	}
}

func TestRecordReview_Validation(t *testing.T) {
	repo := newMockReviewRepo()
	s := NewScheduler(repo)
	ctx := context.Background()

	item, _ := s.Schedule(ctx, 1, "x", 8, 2, testNow)

	if _, err := s.RecordReview(ctx, item.ID, 0, 5, ResultGood, testNow); !errors.Is(err, ErrInvalidConfidence) {
		t.Errorf("confidence 0 err = %v", err)
	}
	if _, err := s.RecordReview(ctx, item.ID, 5, -1, ResultGood, testNow); !errors.Is(err, ErrInvalidTimeSpent) {
		t.Errorf("negative time err = %v", err)
	}
	if _, err := s.RecordReview(ctx, item.ID, 5, 5, "perfect", testNow); !errors.Is(err, ErrInvalidResult) {
		t.Errorf("bad result err = %v", err)
	}
	if _, err := s.RecordReview(ctx, 999, 5, 5, ResultGood, testNow); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("missing item err = %v", err)
	}
}

func TestRecordReview_MasteryRule(t *testing.T) {
	repo := newMockReviewRepo()
	s := NewScheduler(repo)
	ctx := context.Background()

	item, _ := s.Schedule(ctx, 1, "krebs cycle", 8, 2, testNow)

	// Four strong reviews: still active.
	when := testNow
	for i := 0; i < 4; i++ {
		when = when.AddDate(0, 0, 1)
		updated, err := s.RecordReview(ctx, item.ID, 9, 5, ResultGood, when)
		if err != nil {
			t.Fatalf("RecordReview %d: %v", i, err)
		}
		if updated.Status != StatusActive {
			t.Fatalf("Status after %d reviews = %s, want active", i+1, updated.Status)
		}
	}

	// Fifth strong review completes the mastery window.
	when = when.AddDate(0, 0, 1)
	updated, err := s.RecordReview(ctx, item.ID, 8, 5, ResultEasy, when)
	if err != nil {
		t.Fatalf("RecordReview: %v", err)
	}
	if updated.Status != StatusMastered {
		t.Errorf("Status = %s, want mastered", updated.Status)
	}
}

func TestRecordReview_MasteryBrokenByWeakReview(t *testing.T) {
	repo := newMockReviewRepo()
	s := NewScheduler(repo)
	ctx := context.Background()

	item, _ := s.Schedule(ctx, 1, "osmosis", 8, 2, testNow)

	when := testNow
	grades := []struct {
		confidence int
		result     Result
	}{
		{9, ResultGood},
		{9, ResultGood},
		{7, ResultGood}, // confidence below the floor
		{9, ResultEasy},
		{9, ResultEasy},
	}
	for _, g := range grades {
		when = when.AddDate(0, 0, 1)
		updated, err := s.RecordReview(ctx, item.ID, g.confidence, 5, g.result, when)
		if err != nil {
			t.Fatalf("RecordReview: %v", err)
		}
		if updated.Status != StatusActive {
			t.Fatalf("Status = %s, want active (weak review inside window)", updated.Status)
		}
	}
}

func TestRecordReview_RejectsNonActive(t *testing.T) {
	repo := newMockReviewRepo()
	s := NewScheduler(repo)
	ctx := context.Background()

	item, _ := s.Schedule(ctx, 1, "x", 8, 2, testNow)
	if err := s.Pause(ctx, item.ID); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if _, err := s.RecordReview(ctx, item.ID, 8, 5, ResultGood, testNow); !errors.Is(err, ErrNotActive) {
		t.Errorf("review of paused item err = %v, want ErrNotActive", err)
	}
	if err := s.Resume(ctx, item.ID); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if _, err := s.RecordReview(ctx, item.ID, 8, 5, ResultGood, testNow); err != nil {
		t.Errorf("review after resume err = %v", err)
	}
}

func TestPauseResume_RejectsWrongStatus(t *testing.T) {
	repo := newMockReviewRepo()
	s := NewScheduler(repo)
	ctx := context.Background()

	item, _ := s.Schedule(ctx, 1, "x", 8, 2, testNow)

	err := s.Resume(ctx, item.ID)
	if !errors.Is(err, ErrWrongStatus) {
		t.Fatalf("Resume of active item err = %v, want ErrWrongStatus", err)
	}
	if !strings.Contains(err.Error(), StatusActive) || !strings.Contains(err.Error(), StatusPaused) {
		t.Errorf("Resume error = %q, want actual and expected statuses named", err)
	}

	if err := s.Pause(ctx, item.ID); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	if err := s.Pause(ctx, item.ID); !errors.Is(err, ErrWrongStatus) {
		t.Errorf("double Pause err = %v, want ErrWrongStatus", err)
	}
}

func TestDueForReview_FiltersAndSorts(t *testing.T) {
	repo := newMockReviewRepo()
	s := NewScheduler(repo)
	ctx := context.Background()

	early, _ := s.Schedule(ctx, 1, "due early", 1, 5, testNow.AddDate(0, 0, -10))
	late, _ := s.Schedule(ctx, 1, "due later", 1, 5, testNow.AddDate(0, 0, -5))
	if _, err := s.Schedule(ctx, 1, "not due", 10, 1, testNow); err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	due, err := s.DueForReview(ctx, 0, testNow)
	if err != nil {
		t.Fatalf("DueForReview: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("len(due) = %d, want 2", len(due))
	}
	if due[0].ID != early.ID || due[1].ID != late.ID {
		t.Errorf("due order = [%d %d], want [%d %d]", due[0].ID, due[1].ID, early.ID, late.ID)
	}
}

func TestAtRisk_SortsWeakestFirst(t *testing.T) {
	repo := newMockReviewRepo()
	s := NewScheduler(repo)
	ctx := context.Background()

	// Weak item studied long ago: retention well below threshold.
	weak, _ := s.Schedule(ctx, 1, "weak", 1, 5, testNow.AddDate(0, 0, -20))
	// Stronger item, still decayed below 90 after a week.
	mid, _ := s.Schedule(ctx, 1, "mid", 10, 1, testNow.AddDate(0, 0, -7))
	// Fresh item: retention near 100.
	if _, err := s.Schedule(ctx, 1, "fresh", 10, 1, testNow); err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	risks, err := s.AtRisk(ctx, 0, 90, testNow)
	if err != nil {
		t.Fatalf("AtRisk: %v", err)
	}
	if len(risks) != 2 {
		t.Fatalf("len(risks) = %d, want 2", len(risks))
	}
	if risks[0].Item.ID != weak.ID || risks[1].Item.ID != mid.ID {
		t.Errorf("risk order = [%d %d], want [%d %d]", risks[0].Item.ID, risks[1].Item.ID, weak.ID, mid.ID)
	}
	if risks[0].Retention >= risks[1].Retention {
		t.Errorf("retention order = [%f %f], want ascending", risks[0].Retention, risks[1].Retention)
	}
}

func TestDueWithin_CountsPerSubject(t *testing.T) {
	repo := newMockReviewRepo()
	s := NewScheduler(repo)
	ctx := context.Background()

	s.Schedule(ctx, 1, "a", 1, 5, testNow.AddDate(0, 0, -3))
	s.Schedule(ctx, 1, "b", 1, 5, testNow.AddDate(0, 0, -3))
	s.Schedule(ctx, 2, "c", 1, 5, testNow.AddDate(0, 0, -3))
	s.Schedule(ctx, 2, "far out", 10, 1, testNow) // due in 2 days' time? strength 3 -> 1 day

	counts, err := s.DueWithin(ctx, 3, testNow)
	if err != nil {
		t.Fatalf("DueWithin: %v", err)
	}
	if counts[1] != 2 {
		t.Errorf("counts[1] = %d, want 2", counts[1])
	}
	if counts[2] < 1 {
		t.Errorf("counts[2] = %d, want >= 1", counts[2])
	}
}
