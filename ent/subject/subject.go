// Code generated by ent, DO NOT EDIT.

package subject

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the subject type in the database.
	Label = "subject"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldExamAt holds the string denoting the exam_at field in the database.
	FieldExamAt = "exam_at"
	// FieldTargetScore holds the string denoting the target_score field in the database.
	FieldTargetScore = "target_score"
	// FieldArchived holds the string denoting the archived field in the database.
	FieldArchived = "archived"
	// Table holds the table name of the subject in the database.
	Table = "subjects"
)

// Columns holds all SQL columns for subject fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDifficulty,
	FieldPriority,
	FieldExamAt,
	FieldTargetScore,
	FieldArchived,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultDifficulty holds the default value on creation for the "difficulty" field.
	DefaultDifficulty string
	// DefaultPriority holds the default value on creation for the "priority" field.
	DefaultPriority string
	// DefaultTargetScore holds the default value on creation for the "target_score" field.
	DefaultTargetScore float64
	// DefaultArchived holds the default value on creation for the "archived" field.
	DefaultArchived bool
)

// OrderOption defines the ordering options for the Subject queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByExamAt orders the results by the exam_at field.
func ByExamAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamAt, opts...).ToFunc()
}

// ByTargetScore orders the results by the target_score field.
func ByTargetScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetScore, opts...).ToFunc()
}

// ByArchived orders the results by the archived field.
func ByArchived(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchived, opts...).ToFunc()
}
