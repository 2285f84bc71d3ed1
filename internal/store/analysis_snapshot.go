package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rlopes/studypulse/ent"
	"github.com/rlopes/studypulse/ent/analysissnapshot"
)

// analysisSnapshotRepo implements AnalysisSnapshotRepo using the ent client.
type analysisSnapshotRepo struct {
	client *ent.Client
}

func (r *analysisSnapshotRepo) Save(ctx context.Context, kind string, data any) error {
	m, err := toMap(data)
	if err != nil {
		return fmt.Errorf("marshal %s snapshot: %w", kind, err)
	}

	_, err = r.client.AnalysisSnapshot.Create().
		SetKind(kind).
		SetData(m).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save %s snapshot: %w", kind, err)
	}
	return nil
}

func (r *analysisSnapshotRepo) Prune(ctx context.Context, kind string, keep int) error {
	// Find the timestamp threshold: the Nth most recent snapshot of this kind.
	rows, err := r.client.AnalysisSnapshot.Query().
		Where(analysissnapshot.Kind(kind)).
		Order(ent.Desc(analysissnapshot.FieldTakenAt)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(rows) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := rows[0].TakenAt
	_, err = r.client.AnalysisSnapshot.Delete().
		Where(
			analysissnapshot.Kind(kind),
			analysissnapshot.TakenAtLTE(threshold),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// toMap converts an analysis result to map[string]any for ent JSON storage.
func toMap(data any) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
