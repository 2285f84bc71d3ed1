package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rlopes/studypulse/ent/analysissnapshot"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful for file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionRoundTripNilFocus(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	started := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	focus := 7
	if _, err := repo.Append(ctx, Session{StartedAt: started, DurationMin: 45, SubjectID: 1, Method: "flashcards", Focus: &focus}); err != nil {
		t.Fatalf("append rated session: %v", err)
	}
	if _, err := repo.Append(ctx, Session{StartedAt: started.Add(time.Hour), DurationMin: 30, SubjectID: 1}); err != nil {
		t.Fatalf("append unrated session: %v", err)
	}

	got, err := repo.ListSince(ctx, time.Time{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Focus == nil || *got[0].Focus != 7 {
		t.Errorf("rated session focus = %v, want 7", got[0].Focus)
	}
	if got[1].Focus != nil {
		t.Errorf("unrated session focus = %v, want nil", got[1].Focus)
	}
}

func TestSubjectGetNotFound(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.Subjects().Get(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) err = %v, want ErrNotFound", err)
	}
	if _, err := s.Subjects().GetByName(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByName(missing) err = %v, want ErrNotFound", err)
	}
}

func TestReviewItemHistoryRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Reviews()
	ctx := context.Background()

	created := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	id, err := repo.Create(ctx, ReviewItem{
		Topic:             "osmosis",
		SubjectID:         1,
		Strength:          3.6,
		InitialConfidence: 8,
		Difficulty:        2,
		NextReviewAt:      created.AddDate(0, 0, 2),
		Status:            "active",
		History: []ReviewEvent{
			{Date: created, Confidence: 8, TimeSpentMin: 10, Result: "good"},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	item, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if item.Topic != "osmosis" || item.Strength != 3.6 {
		t.Errorf("item = %+v, want topic osmosis with strength 3.6", item)
	}
	if item.LastReviewedAt != nil {
		t.Errorf("LastReviewedAt = %v, want nil before first graded review", item.LastReviewedAt)
	}
	if len(item.History) != 1 {
		t.Fatalf("len(history) = %d, want 1", len(item.History))
	}

	// Append a second event and flip the status, as RecordReview does.
	reviewed := created.AddDate(0, 0, 2)
	item.Strength = 7.2
	item.ReviewCount = 1
	item.LastReviewedAt = &reviewed
	item.NextReviewAt = reviewed.AddDate(0, 0, 3)
	item.History = append(item.History, ReviewEvent{Date: reviewed, Confidence: 9, TimeSpentMin: 5, Result: "easy"})
	if err := repo.Update(ctx, *item); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Strength != 7.2 || got.ReviewCount != 1 {
		t.Errorf("item = %+v, want strength 7.2 with 1 review", got)
	}
	if got.LastReviewedAt == nil || !got.LastReviewedAt.Equal(reviewed) {
		t.Errorf("LastReviewedAt = %v, want %v", got.LastReviewedAt, reviewed)
	}
	if len(got.History) != 2 {
		t.Fatalf("len(history) = %d, want 2", len(got.History))
	}
	last := got.History[1]
	if last.Confidence != 9 || last.TimeSpentMin != 5 || last.Result != "easy" || !last.Date.Equal(reviewed) {
		t.Errorf("history[1] = %+v, want the appended event intact", last)
	}
}

func TestReviewListFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.Reviews()
	ctx := context.Background()

	next := time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC)
	seed := []ReviewItem{
		{Topic: "a", SubjectID: 1, Strength: 2, InitialConfidence: 5, Difficulty: 3, NextReviewAt: next, Status: "active"},
		{Topic: "b", SubjectID: 1, Strength: 2, InitialConfidence: 5, Difficulty: 3, NextReviewAt: next, Status: "paused"},
		{Topic: "c", SubjectID: 2, Strength: 2, InitialConfidence: 5, Difficulty: 3, NextReviewAt: next, Status: "active"},
	}
	for _, item := range seed {
		if _, err := repo.Create(ctx, item); err != nil {
			t.Fatalf("create %s: %v", item.Topic, err)
		}
	}

	all, err := repo.List(ctx, 0, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("len(all) = %d, want 3", len(all))
	}

	active, err := repo.List(ctx, 1, "active")
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(active) != 1 || active[0].Topic != "a" {
		t.Errorf("subject 1 active = %+v, want only item a", active)
	}
}

func TestSnapshotSaveAndPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.AnalysisSnapshots()
	ctx := context.Background()

	// Prune with nothing stored is a no-op.
	if err := repo.Prune(ctx, "burnout", 3); err != nil {
		t.Fatalf("prune (empty): %v", err)
	}

	for i := 0; i < 5; i++ {
		if err := repo.Save(ctx, "burnout", map[string]any{"total": i}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	if err := repo.Save(ctx, "profile", map[string]any{"style": "visual"}); err != nil {
		t.Fatalf("save profile: %v", err)
	}

	if err := repo.Prune(ctx, "burnout", 3); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count := func(kind string) int {
		n, err := s.Client().AnalysisSnapshot.Query().
			Where(analysissnapshot.Kind(kind)).
			Count(ctx)
		if err != nil {
			t.Fatalf("count %s: %v", kind, err)
		}
		return n
	}
	if n := count("burnout"); n != 3 {
		t.Errorf("burnout snapshots after prune = %d, want 3", n)
	}
	// Other kinds are untouched.
	if n := count("profile"); n != 1 {
		t.Errorf("profile snapshots after prune = %d, want 1", n)
	}

	// The survivors are the newest ones.
	rows, err := s.Client().AnalysisSnapshot.Query().
		Where(analysissnapshot.Kind("burnout")).
		All(ctx)
	if err != nil {
		t.Fatalf("query survivors: %v", err)
	}
	for _, row := range rows {
		if total, ok := row.Data["total"].(float64); !ok || total < 2 {
			t.Errorf("survivor data = %v, want totals 2..4", row.Data)
		}
	}
}
