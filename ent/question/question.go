// Code generated by ent, DO NOT EDIT.

package question

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldQtype holds the string denoting the qtype field in the database.
	FieldQtype = "qtype"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldHints holds the string denoting the hints field in the database.
	FieldHints = "hints"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// FieldExpectedAnswer holds the string denoting the expected_answer field in the database.
	FieldExpectedAnswer = "expected_answer"
	// FieldKeywords holds the string denoting the keywords field in the database.
	FieldKeywords = "keywords"
	// FieldMinKeywords holds the string denoting the min_keywords field in the database.
	FieldMinKeywords = "min_keywords"
	// FieldMaxLength holds the string denoting the max_length field in the database.
	FieldMaxLength = "max_length"
	// Table holds the table name of the question in the database.
	Table = "questions"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldText,
	FieldQtype,
	FieldVersion,
	FieldHints,
	FieldOptions,
	FieldExpectedAnswer,
	FieldKeywords,
	FieldMinKeywords,
	FieldMaxLength,
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
	// TextValidator is a validator for the "text" field. It is called by the builders before save.
	TextValidator func(string) error
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int
	// DefaultMinKeywords holds the default value on creation for the "min_keywords" field.
	DefaultMinKeywords int
	// DefaultMaxLength holds the default value on creation for the "max_length" field.
	DefaultMaxLength int
)

// Qtype defines the type for the "qtype" enum field.
type Qtype string

// Qtype values.
const (
	QtypeObjective  Qtype = "objective"
	QtypeSubjective Qtype = "subjective"
)

func (q Qtype) String() string {
	return string(q)
}

// QtypeValidator is a validator for the "qtype" field enum values. It is called by the builders before save.
func QtypeValidator(q Qtype) error {
	switch q {
	case QtypeObjective, QtypeSubjective:
		return nil
	default:
		return fmt.Errorf("question: invalid enum value for qtype field: %q", q)
	}
}

// OrderOption defines the ordering options for the Question queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByQtype orders the results by the qtype field.
func ByQtype(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQtype, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByExpectedAnswer orders the results by the expected_answer field.
func ByExpectedAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpectedAnswer, opts...).ToFunc()
}

// ByMinKeywords orders the results by the min_keywords field.
func ByMinKeywords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinKeywords, opts...).ToFunc()
}

// ByMaxLength orders the results by the max_length field.
func ByMaxLength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxLength, opts...).ToFunc()
}
