// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rlopes/studypulse/ent/analysissnapshot"
	"github.com/rlopes/studypulse/ent/assessment"
	"github.com/rlopes/studypulse/ent/goal"
	"github.com/rlopes/studypulse/ent/reviewitem"
	"github.com/rlopes/studypulse/ent/schema"
	"github.com/rlopes/studypulse/ent/studysession"
	"github.com/rlopes/studypulse/ent/subject"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysissnapshotFields := schema.AnalysisSnapshot{}.Fields()
	_ = analysissnapshotFields
	// analysissnapshotDescKind is the schema descriptor for kind field.
	analysissnapshotDescKind := analysissnapshotFields[0].Descriptor()
	// analysissnapshot.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	analysissnapshot.KindValidator = analysissnapshotDescKind.Validators[0].(func(string) error)
	// analysissnapshotDescTakenAt is the schema descriptor for taken_at field.
	analysissnapshotDescTakenAt := analysissnapshotFields[1].Descriptor()
	// analysissnapshot.DefaultTakenAt holds the default value on creation for the taken_at field.
	analysissnapshot.DefaultTakenAt = analysissnapshotDescTakenAt.Default.(func() time.Time)
	assessmentFields := schema.Assessment{}.Fields()
	_ = assessmentFields
	// assessmentDescTakenAt is the schema descriptor for taken_at field.
	assessmentDescTakenAt := assessmentFields[1].Descriptor()
	// assessment.DefaultTakenAt holds the default value on creation for the taken_at field.
	assessment.DefaultTakenAt = assessmentDescTakenAt.Default.(func() time.Time)
	// assessmentDescScorePercent is the schema descriptor for score_percent field.
	assessmentDescScorePercent := assessmentFields[2].Descriptor()
	// assessment.ScorePercentValidator is a validator for the "score_percent" field. It is called by the builders before save.
	assessment.ScorePercentValidator = assessmentDescScorePercent.Validators[0].(func(float64) error)
	goalFields := schema.Goal{}.Fields()
	_ = goalFields
	// goalDescTitle is the schema descriptor for title field.
	goalDescTitle := goalFields[0].Descriptor()
	// goal.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	goal.TitleValidator = goalDescTitle.Validators[0].(func(string) error)
	// goalDescCurrentValue is the schema descriptor for current_value field.
	goalDescCurrentValue := goalFields[3].Descriptor()
	// goal.DefaultCurrentValue holds the default value on creation for the current_value field.
	goal.DefaultCurrentValue = goalDescCurrentValue.Default.(float64)
	// goalDescStatus is the schema descriptor for status field.
	goalDescStatus := goalFields[5].Descriptor()
	// goal.DefaultStatus holds the default value on creation for the status field.
	goal.DefaultStatus = goalDescStatus.Default.(string)
	reviewitemFields := schema.ReviewItem{}.Fields()
	_ = reviewitemFields
	// reviewitemDescTopic is the schema descriptor for topic field.
	reviewitemDescTopic := reviewitemFields[0].Descriptor()
	// reviewitem.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	reviewitem.TopicValidator = reviewitemDescTopic.Validators[0].(func(string) error)
	// reviewitemDescCreatedAt is the schema descriptor for created_at field.
	reviewitemDescCreatedAt := reviewitemFields[5].Descriptor()
	// reviewitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	reviewitem.DefaultCreatedAt = reviewitemDescCreatedAt.Default.(func() time.Time)
	// reviewitemDescReviewCount is the schema descriptor for review_count field.
	reviewitemDescReviewCount := reviewitemFields[8].Descriptor()
	// reviewitem.DefaultReviewCount holds the default value on creation for the review_count field.
	reviewitem.DefaultReviewCount = reviewitemDescReviewCount.Default.(int)
	// reviewitemDescStatus is the schema descriptor for status field.
	reviewitemDescStatus := reviewitemFields[9].Descriptor()
	// reviewitem.DefaultStatus holds the default value on creation for the status field.
	reviewitem.DefaultStatus = reviewitemDescStatus.Default.(string)
	studysessionFields := schema.StudySession{}.Fields()
	_ = studysessionFields
	// studysessionDescStartedAt is the schema descriptor for started_at field.
	studysessionDescStartedAt := studysessionFields[0].Descriptor()
	// studysession.DefaultStartedAt holds the default value on creation for the started_at field.
	studysession.DefaultStartedAt = studysessionDescStartedAt.Default.(func() time.Time)
	// studysessionDescDurationMin is the schema descriptor for duration_min field.
	studysessionDescDurationMin := studysessionFields[1].Descriptor()
	// studysession.DurationMinValidator is a validator for the "duration_min" field. It is called by the builders before save.
	studysession.DurationMinValidator = studysessionDescDurationMin.Validators[0].(func(int) error)
	subjectFields := schema.Subject{}.Fields()
	_ = subjectFields
	// subjectDescName is the schema descriptor for name field.
	subjectDescName := subjectFields[0].Descriptor()
	// subject.NameValidator is a validator for the "name" field. It is called by the builders before save.
	subject.NameValidator = subjectDescName.Validators[0].(func(string) error)
	// subjectDescDifficulty is the schema descriptor for difficulty field.
	subjectDescDifficulty := subjectFields[1].Descriptor()
	// subject.DefaultDifficulty holds the default value on creation for the difficulty field.
	subject.DefaultDifficulty = subjectDescDifficulty.Default.(string)
	// subjectDescPriority is the schema descriptor for priority field.
	subjectDescPriority := subjectFields[2].Descriptor()
	// subject.DefaultPriority holds the default value on creation for the priority field.
	subject.DefaultPriority = subjectDescPriority.Default.(string)
	// subjectDescTargetScore is the schema descriptor for target_score field.
	subjectDescTargetScore := subjectFields[4].Descriptor()
	// subject.DefaultTargetScore holds the default value on creation for the target_score field.
	subject.DefaultTargetScore = subjectDescTargetScore.Default.(float64)
	// subjectDescArchived is the schema descriptor for archived field.
	subjectDescArchived := subjectFields[5].Descriptor()
	// subject.DefaultArchived holds the default value on creation for the archived field.
	subject.DefaultArchived = subjectDescArchived.Default.(bool)
}
