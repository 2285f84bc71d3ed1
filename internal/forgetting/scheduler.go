package forgetting

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rlopes/studypulse/internal/store"
)

// Validation errors returned by the mutating entry points.
var (
	ErrEmptyTopic        = errors.New("topic must not be empty")
	ErrInvalidConfidence = errors.New("confidence must be between 1 and 10")
	ErrInvalidDifficulty = errors.New("difficulty must be between 1 and 5")
	ErrInvalidTimeSpent  = errors.New("time spent must not be negative")
	ErrInvalidResult     = errors.New("result must be easy, good, hard or forgot")
	ErrNotActive         = errors.New("review item is not active")
	ErrWrongStatus       = errors.New("review item status does not allow this transition")
)

// Item statuses. Active items are the only ones scheduled; paused and
// mastered items are retained but excluded from due/at-risk queries.
const (
	StatusActive   = "active"
	StatusMastered = "mastered"
	StatusPaused   = "paused"
)

const (
	// masteryWindow is how many trailing reviews the mastery rule inspects.
	masteryWindow = 5

	// masteryMinConfidence is the confidence floor each of those reviews
	// must meet.
	masteryMinConfidence = 8
)

// Scheduler manages spaced-repetition review items through a ReviewRepo.
// All mutations are read-then-write; concurrent updates of the same item are
// last-writer-wins.
type Scheduler struct {
	repo store.ReviewRepo
}

// NewScheduler creates a scheduler over the given repository.
func NewScheduler(repo store.ReviewRepo) *Scheduler {
	return &Scheduler{repo: repo}
}

// Schedule creates a review item for a newly studied topic and computes its
// first review date from the seeded memory strength.
func (s *Scheduler) Schedule(ctx context.Context, subjectID int, topic string, confidence, difficulty int, now time.Time) (*store.ReviewItem, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, ErrEmptyTopic
	}
	if confidence < 1 || confidence > 10 {
		return nil, ErrInvalidConfidence
	}
	if difficulty < 1 || difficulty > 5 {
		return nil, ErrInvalidDifficulty
	}

	strength := InitialStrength(confidence, difficulty)
	item := store.ReviewItem{
		Topic:             strings.TrimSpace(topic),
		SubjectID:         subjectID,
		Strength:          strength,
		InitialConfidence: confidence,
		Difficulty:        difficulty,
		CreatedAt:         now,
		NextReviewAt:      NextReviewDate(strength, now),
		Status:            StatusActive,
	}

	id, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("create review item: %w", err)
	}
	item.ID = id
	return &item, nil
}

// RecordReview applies a graded review to an active item: the result
// multiplier updates memory strength, the next review date is recomputed,
// and the event is appended to the item's history. An item whose last 5
// reviews are all easy/good with confidence >= 8 is marked mastered.
func (s *Scheduler) RecordReview(ctx context.Context, itemID, confidence, timeSpentMin int, result Result, now time.Time) (*store.ReviewItem, error) {
	if confidence < 1 || confidence > 10 {
		return nil, ErrInvalidConfidence
	}
	if timeSpentMin < 0 {
		return nil, ErrInvalidTimeSpent
	}
	if !ValidResult(result) {
		return nil, ErrInvalidResult
	}

	item, err := s.repo.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.Status != StatusActive {
		return nil, ErrNotActive
	}

	item.Strength = NextStrength(item.Strength, result)
	item.NextReviewAt = NextReviewDate(item.Strength, now)
	item.LastReviewedAt = &now
	item.ReviewCount++
	item.History = append(item.History, store.ReviewEvent{
		Date:         now,
		Confidence:   confidence,
		TimeSpentMin: timeSpentMin,
		Result:       string(result),
	})

	if masteryReached(item.History) {
		item.Status = StatusMastered
	}

	if err := s.repo.Update(ctx, *item); err != nil {
		return nil, err
	}
	return item, nil
}

// Pause retires an active item from scheduling without deleting it.
func (s *Scheduler) Pause(ctx context.Context, itemID int) error {
	return s.setStatus(ctx, itemID, StatusActive, StatusPaused)
}

// Resume returns a paused item to the active schedule.
func (s *Scheduler) Resume(ctx context.Context, itemID int) error {
	return s.setStatus(ctx, itemID, StatusPaused, StatusActive)
}

func (s *Scheduler) setStatus(ctx context.Context, itemID int, from, to string) error {
	item, err := s.repo.Get(ctx, itemID)
	if err != nil {
		return err
	}
	if item.Status != from {
		return fmt.Errorf("%w: item is %s, expected %s", ErrWrongStatus, item.Status, from)
	}
	item.Status = to
	return s.repo.Update(ctx, *item)
}

// DueForReview returns active items whose next review date is at or before
// now, most overdue first. A zero subjectID matches all subjects.
func (s *Scheduler) DueForReview(ctx context.Context, subjectID int, now time.Time) ([]store.ReviewItem, error) {
	items, err := s.repo.List(ctx, subjectID, StatusActive)
	if err != nil {
		return nil, err
	}

	var due []store.ReviewItem
	for _, item := range items {
		if !item.NextReviewAt.After(now) {
			due = append(due, item)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].NextReviewAt.Before(due[j].NextReviewAt)
	})
	return due, nil
}

// ItemRisk pairs an item with its current retention estimate.
type ItemRisk struct {
	Item      store.ReviewItem
	Retention float64
}

// AtRisk returns active items whose modeled retention has fallen below
// threshold, weakest first (lowest retention, then lowest strength).
func (s *Scheduler) AtRisk(ctx context.Context, subjectID int, threshold float64, now time.Time) ([]ItemRisk, error) {
	items, err := s.repo.List(ctx, subjectID, StatusActive)
	if err != nil {
		return nil, err
	}

	var risks []ItemRisk
	for _, item := range items {
		r := RetentionAt(item.LastStudyReference(), now, item.Strength)
		if r < threshold {
			risks = append(risks, ItemRisk{Item: item, Retention: r})
		}
	}
	sort.SliceStable(risks, func(i, j int) bool {
		if risks[i].Retention != risks[j].Retention {
			return risks[i].Retention < risks[j].Retention
		}
		return risks[i].Item.Strength < risks[j].Item.Strength
	})
	return risks, nil
}

// DueWithin counts active items per subject whose review falls due within
// the given number of days. Used by the allocation need score.
func (s *Scheduler) DueWithin(ctx context.Context, days int, now time.Time) (map[int]int, error) {
	items, err := s.repo.List(ctx, 0, StatusActive)
	if err != nil {
		return nil, err
	}

	cutoff := now.AddDate(0, 0, days)
	counts := make(map[int]int)
	for _, item := range items {
		if !item.NextReviewAt.After(cutoff) {
			counts[item.SubjectID]++
		}
	}
	return counts, nil
}

// masteryReached reports whether the trailing reviews satisfy the mastery
// rule: at least 5 events, all easy or good, each with confidence >= 8.
func masteryReached(history []store.ReviewEvent) bool {
	if len(history) < masteryWindow {
		return false
	}
	for _, ev := range history[len(history)-masteryWindow:] {
		if ev.Result != string(ResultEasy) && ev.Result != string(ResultGood) {
			return false
		}
		if ev.Confidence < masteryMinConfidence {
			return false
		}
	}
	return true
}
