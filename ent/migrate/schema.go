// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisSnapshotsColumns holds the columns for the "analysis_snapshots" table.
	AnalysisSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "taken_at", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// AnalysisSnapshotsTable holds the schema information for the "analysis_snapshots" table.
	AnalysisSnapshotsTable = &schema.Table{
		Name:       "analysis_snapshots",
		Columns:    AnalysisSnapshotsColumns,
		PrimaryKey: []*schema.Column{AnalysisSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysissnapshot_kind_taken_at",
				Unique:  false,
				Columns: []*schema.Column{AnalysisSnapshotsColumns[1], AnalysisSnapshotsColumns[2]},
			},
		},
	}
	// AssessmentsColumns holds the columns for the "assessments" table.
	AssessmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "subject_id", Type: field.TypeInt},
		{Name: "taken_at", Type: field.TypeTime},
		{Name: "score_percent", Type: field.TypeFloat64},
		{Name: "title", Type: field.TypeString, Nullable: true},
	}
	// AssessmentsTable holds the schema information for the "assessments" table.
	AssessmentsTable = &schema.Table{
		Name:       "assessments",
		Columns:    AssessmentsColumns,
		PrimaryKey: []*schema.Column{AssessmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessment_subject_id",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[1]},
			},
			{
				Name:    "assessment_taken_at",
				Unique:  false,
				Columns: []*schema.Column{AssessmentsColumns[2]},
			},
		},
	}
	// GoalsColumns holds the columns for the "goals" table.
	GoalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "title", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeInt, Nullable: true},
		{Name: "target_value", Type: field.TypeFloat64},
		{Name: "current_value", Type: field.TypeFloat64, Default: 0},
		{Name: "due_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "on_track"},
	}
	// GoalsTable holds the schema information for the "goals" table.
	GoalsTable = &schema.Table{
		Name:       "goals",
		Columns:    GoalsColumns,
		PrimaryKey: []*schema.Column{GoalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "goal_status",
				Unique:  false,
				Columns: []*schema.Column{GoalsColumns[6]},
			},
			{
				Name:    "goal_subject_id",
				Unique:  false,
				Columns: []*schema.Column{GoalsColumns[2]},
			},
		},
	}
	// ReviewItemsColumns holds the columns for the "review_items" table.
	ReviewItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "subject_id", Type: field.TypeInt},
		{Name: "strength", Type: field.TypeFloat64},
		{Name: "initial_confidence", Type: field.TypeInt},
		{Name: "difficulty", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "last_reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "next_review_at", Type: field.TypeTime},
		{Name: "review_count", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "history", Type: field.TypeJSON, Nullable: true},
	}
	// ReviewItemsTable holds the schema information for the "review_items" table.
	ReviewItemsTable = &schema.Table{
		Name:       "review_items",
		Columns:    ReviewItemsColumns,
		PrimaryKey: []*schema.Column{ReviewItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewitem_subject_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewItemsColumns[2]},
			},
			{
				Name:    "reviewitem_status",
				Unique:  false,
				Columns: []*schema.Column{ReviewItemsColumns[10]},
			},
			{
				Name:    "reviewitem_next_review_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewItemsColumns[8]},
			},
		},
	}
	// StudySessionsColumns holds the columns for the "study_sessions" table.
	StudySessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "duration_min", Type: field.TypeInt},
		{Name: "focus", Type: field.TypeInt, Nullable: true},
		{Name: "subject_id", Type: field.TypeInt, Nullable: true},
		{Name: "method", Type: field.TypeString, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// StudySessionsTable holds the schema information for the "study_sessions" table.
	StudySessionsTable = &schema.Table{
		Name:       "study_sessions",
		Columns:    StudySessionsColumns,
		PrimaryKey: []*schema.Column{StudySessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studysession_started_at",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[1]},
			},
			{
				Name:    "studysession_subject_id",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[4]},
			},
		},
	}
	// SubjectsColumns holds the columns for the "subjects" table.
	SubjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "difficulty", Type: field.TypeString, Default: "moderate"},
		{Name: "priority", Type: field.TypeString, Default: "medium"},
		{Name: "exam_at", Type: field.TypeTime, Nullable: true},
		{Name: "target_score", Type: field.TypeFloat64, Default: 80},
		{Name: "archived", Type: field.TypeBool, Default: false},
	}
	// SubjectsTable holds the schema information for the "subjects" table.
	SubjectsTable = &schema.Table{
		Name:       "subjects",
		Columns:    SubjectsColumns,
		PrimaryKey: []*schema.Column{SubjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subject_archived",
				Unique:  false,
				Columns: []*schema.Column{SubjectsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisSnapshotsTable,
		AssessmentsTable,
		GoalsTable,
		ReviewItemsTable,
		StudySessionsTable,
		SubjectsTable,
	}
)

func init() {
}
