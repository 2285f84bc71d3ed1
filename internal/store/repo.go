package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Session is one logged study session.
type Session struct {
	ID          int
	StartedAt   time.Time
	DurationMin int
	Focus       *int // 0-10, nil if not recorded
	SubjectID   int
	Method      string
	Notes       string
}

// FocusOrDefault returns the focus score, or def if none was recorded.
func (s Session) FocusOrDefault(def float64) float64 {
	if s.Focus == nil {
		return def
	}
	return clampFloat(float64(*s.Focus), 0, 10)
}

// Assessment is one graded assessment result.
type Assessment struct {
	ID           int
	SubjectID    int
	TakenAt      time.Time
	ScorePercent float64
	Title        string
}

// Subject is a tracked course or topic area.
type Subject struct {
	ID          int
	Name        string
	Difficulty  string
	Priority    string
	ExamAt      *time.Time
	TargetScore float64
	Archived    bool
}

// Goal is a learner-defined target with a deadline.
type Goal struct {
	ID           int
	Title        string
	SubjectID    int
	TargetValue  float64
	CurrentValue float64
	DueAt        *time.Time
	Status       string
}

// ReviewEvent is one logged review of a spaced-repetition item.
type ReviewEvent struct {
	Date         time.Time
	Confidence   int
	TimeSpentMin int
	Result       string
}

// ReviewItem is the persisted state of one spaced-repetition topic.
type ReviewItem struct {
	ID                int
	Topic             string
	SubjectID         int
	Strength          float64
	InitialConfidence int
	Difficulty        int
	CreatedAt         time.Time
	LastReviewedAt    *time.Time
	NextReviewAt      time.Time
	ReviewCount       int
	Status            string
	History           []ReviewEvent
}

// LastStudyReference returns the timestamp retention decay is measured from:
// the last review if any, otherwise the initial study date.
func (it ReviewItem) LastStudyReference() time.Time {
	if it.LastReviewedAt != nil {
		return *it.LastReviewedAt
	}
	return it.CreatedAt
}

// SessionRepo provides access to logged study sessions.
type SessionRepo interface {
	Append(ctx context.Context, s Session) (int, error)
	ListSince(ctx context.Context, since time.Time) ([]Session, error)
	ListBySubject(ctx context.Context, subjectID int, since time.Time) ([]Session, error)
	Count(ctx context.Context) (int, error)
}

// AssessmentRepo provides access to assessment results.
type AssessmentRepo interface {
	Append(ctx context.Context, a Assessment) (int, error)
	ListSince(ctx context.Context, since time.Time) ([]Assessment, error)
	ListBySubject(ctx context.Context, subjectID int, since time.Time) ([]Assessment, error)
}

// SubjectRepo provides access to subjects.
type SubjectRepo interface {
	Create(ctx context.Context, s Subject) (int, error)
	Get(ctx context.Context, id int) (*Subject, error)
	GetByName(ctx context.Context, name string) (*Subject, error)
	List(ctx context.Context, includeArchived bool) ([]Subject, error)
}

// GoalRepo provides access to goals.
type GoalRepo interface {
	Create(ctx context.Context, g Goal) (int, error)
	ListOpen(ctx context.Context) ([]Goal, error)
}

// ReviewRepo provides access to spaced-repetition items.
// Update replaces the stored item wholesale; concurrent updates of the same
// item are last-writer-wins.
type ReviewRepo interface {
	Create(ctx context.Context, item ReviewItem) (int, error)
	Get(ctx context.Context, id int) (*ReviewItem, error)
	Update(ctx context.Context, item ReviewItem) error
	List(ctx context.Context, subjectID int, status string) ([]ReviewItem, error)
}

// AnalysisSnapshotRepo persists point-in-time copies of derived analysis
// results. Snapshots are informational; nothing is rebuilt from them.
type AnalysisSnapshotRepo interface {
	Save(ctx context.Context, kind string, data any) error
	Prune(ctx context.Context, kind string, keep int) error
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
