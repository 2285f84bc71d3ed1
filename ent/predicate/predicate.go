// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalysisSnapshot is the predicate function for analysissnapshot builders.
type AnalysisSnapshot func(*sql.Selector)

// Assessment is the predicate function for assessment builders.
type Assessment func(*sql.Selector)

// Goal is the predicate function for goal builders.
type Goal func(*sql.Selector)

// ReviewItem is the predicate function for reviewitem builders.
type ReviewItem func(*sql.Selector)

// StudySession is the predicate function for studysession builders.
type StudySession func(*sql.Selector)

// Subject is the predicate function for subject builders.
type Subject func(*sql.Selector)
