package store

import (
	"context"
	"fmt"

	"github.com/rlopes/studypulse/ent"
	"github.com/rlopes/studypulse/ent/reviewitem"
	entschema "github.com/rlopes/studypulse/ent/schema"
)

// reviewRepo implements ReviewRepo using the ent client.
type reviewRepo struct {
	client *ent.Client
}

func (r *reviewRepo) Create(ctx context.Context, item ReviewItem) (int, error) {
	row, err := r.client.ReviewItem.Create().
		SetTopic(item.Topic).
		SetSubjectID(item.SubjectID).
		SetStrength(item.Strength).
		SetInitialConfidence(item.InitialConfidence).
		SetDifficulty(item.Difficulty).
		SetNextReviewAt(item.NextReviewAt).
		SetReviewCount(item.ReviewCount).
		SetStatus(item.Status).
		SetHistory(historyToEnt(item.History)).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save review item: %w", err)
	}
	return row.ID, nil
}

func (r *reviewRepo) Get(ctx context.Context, id int) (*ReviewItem, error) {
	row, err := r.client.ReviewItem.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get review item: %w", err)
	}
	item := reviewItemFromEnt(row)
	return &item, nil
}

func (r *reviewRepo) Update(ctx context.Context, item ReviewItem) error {
	builder := r.client.ReviewItem.UpdateOneID(item.ID).
		SetStrength(item.Strength).
		SetNextReviewAt(item.NextReviewAt).
		SetReviewCount(item.ReviewCount).
		SetStatus(item.Status).
		SetHistory(historyToEnt(item.History))

	if item.LastReviewedAt != nil {
		builder = builder.SetLastReviewedAt(*item.LastReviewedAt)
	}

	_, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("update review item: %w", err)
	}
	return nil
}

func (r *reviewRepo) List(ctx context.Context, subjectID int, status string) ([]ReviewItem, error) {
	q := r.client.ReviewItem.Query()
	if subjectID != 0 {
		q = q.Where(reviewitem.SubjectID(subjectID))
	}
	if status != "" {
		q = q.Where(reviewitem.Status(status))
	}

	rows, err := q.Order(ent.Asc(reviewitem.FieldNextReviewAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query review items: %w", err)
	}

	out := make([]ReviewItem, 0, len(rows))
	for _, row := range rows {
		out = append(out, reviewItemFromEnt(row))
	}
	return out, nil
}

func reviewItemFromEnt(row *ent.ReviewItem) ReviewItem {
	history := make([]ReviewEvent, 0, len(row.History))
	for _, ev := range row.History {
		history = append(history, ReviewEvent{
			Date:         ev.Date,
			Confidence:   ev.Confidence,
			TimeSpentMin: ev.TimeSpentMin,
			Result:       ev.Result,
		})
	}
	return ReviewItem{
		ID:                row.ID,
		Topic:             row.Topic,
		SubjectID:         row.SubjectID,
		Strength:          row.Strength,
		InitialConfidence: row.InitialConfidence,
		Difficulty:        row.Difficulty,
		CreatedAt:         row.CreatedAt,
		LastReviewedAt:    row.LastReviewedAt,
		NextReviewAt:      row.NextReviewAt,
		ReviewCount:       row.ReviewCount,
		Status:            row.Status,
		History:           history,
	}
}

func historyToEnt(events []ReviewEvent) []entschema.ReviewEventData {
	out := make([]entschema.ReviewEventData, 0, len(events))
	for _, ev := range events {
		out = append(out, entschema.ReviewEventData{
			Date:         ev.Date,
			Confidence:   ev.Confidence,
			TimeSpentMin: ev.TimeSpentMin,
			Result:       ev.Result,
		})
	}
	return out
}
