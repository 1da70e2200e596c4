// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/quizdeck/ent/answerevent"
	"github.com/abhisek/quizdeck/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdate) SetQuestionID(v int) *AnswerEventUpdate {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableQuestionID(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *AnswerEventUpdate) AddQuestionID(v int) *AnswerEventUpdate {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *AnswerEventUpdate) SetAnswer(v string) *AnswerEventUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableAnswer(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *AnswerEventUpdate) SetIsCorrect(v bool) *AnswerEventUpdate {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableIsCorrect(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *AnswerEventUpdate) SetGrade(v int) *AnswerEventUpdate {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableGrade(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *AnswerEventUpdate) AddGrade(v int) *AnswerEventUpdate {
	_u.mutation.AddGrade(v)
	return _u
}

// ClearGrade clears the value of the "grade" field.
func (_u *AnswerEventUpdate) ClearGrade() *AnswerEventUpdate {
	_u.mutation.ClearGrade()
	return _u
}

// SetNextHint sets the "next_hint" field.
func (_u *AnswerEventUpdate) SetNextHint(v string) *AnswerEventUpdate {
	_u.mutation.SetNextHint(v)
	return _u
}

// SetNillableNextHint sets the "next_hint" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableNextHint(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetNextHint(*v)
	}
	return _u
}

// ClearNextHint clears the value of the "next_hint" field.
func (_u *AnswerEventUpdate) ClearNextHint() *AnswerEventUpdate {
	_u.mutation.ClearNextHint()
	return _u
}

// SetFullEvaluation sets the "full_evaluation" field.
func (_u *AnswerEventUpdate) SetFullEvaluation(v string) *AnswerEventUpdate {
	_u.mutation.SetFullEvaluation(v)
	return _u
}

// SetNillableFullEvaluation sets the "full_evaluation" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableFullEvaluation(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetFullEvaluation(*v)
	}
	return _u
}

// ClearFullEvaluation clears the value of the "full_evaluation" field.
func (_u *AnswerEventUpdate) ClearFullEvaluation() *AnswerEventUpdate {
	_u.mutation.ClearFullEvaluation()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *AnswerEventUpdate) SetConfidenceScore(v float64) *AnswerEventUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableConfidenceScore(v *float64) *AnswerEventUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *AnswerEventUpdate) AddConfidenceScore(v float64) *AnswerEventUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *AnswerEventUpdate) ClearConfidenceScore() *AnswerEventUpdate {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(answerevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(answerevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(answerevent.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(answerevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(answerevent.FieldGrade, field.TypeInt, value)
	}
	if _u.mutation.GradeCleared() {
		_spec.ClearField(answerevent.FieldGrade, field.TypeInt)
	}
	if value, ok := _u.mutation.NextHint(); ok {
		_spec.SetField(answerevent.FieldNextHint, field.TypeString, value)
	}
	if _u.mutation.NextHintCleared() {
		_spec.ClearField(answerevent.FieldNextHint, field.TypeString)
	}
	if value, ok := _u.mutation.FullEvaluation(); ok {
		_spec.SetField(answerevent.FieldFullEvaluation, field.TypeString, value)
	}
	if _u.mutation.FullEvaluationCleared() {
		_spec.ClearField(answerevent.FieldFullEvaluation, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(answerevent.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(answerevent.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(answerevent.FieldConfidenceScore, field.TypeFloat64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetQuestionID sets the "question_id" field.
func (_u *AnswerEventUpdateOne) SetQuestionID(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetQuestionID()
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableQuestionID(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// AddQuestionID adds value to the "question_id" field.
func (_u *AnswerEventUpdateOne) AddQuestionID(v int) *AnswerEventUpdateOne {
	_u.mutation.AddQuestionID(v)
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *AnswerEventUpdateOne) SetAnswer(v string) *AnswerEventUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableAnswer(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetIsCorrect sets the "is_correct" field.
func (_u *AnswerEventUpdateOne) SetIsCorrect(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetIsCorrect(v)
	return _u
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableIsCorrect(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetIsCorrect(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *AnswerEventUpdateOne) SetGrade(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableGrade(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *AnswerEventUpdateOne) AddGrade(v int) *AnswerEventUpdateOne {
	_u.mutation.AddGrade(v)
	return _u
}

// ClearGrade clears the value of the "grade" field.
func (_u *AnswerEventUpdateOne) ClearGrade() *AnswerEventUpdateOne {
	_u.mutation.ClearGrade()
	return _u
}

// SetNextHint sets the "next_hint" field.
func (_u *AnswerEventUpdateOne) SetNextHint(v string) *AnswerEventUpdateOne {
	_u.mutation.SetNextHint(v)
	return _u
}

// SetNillableNextHint sets the "next_hint" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableNextHint(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetNextHint(*v)
	}
	return _u
}

// ClearNextHint clears the value of the "next_hint" field.
func (_u *AnswerEventUpdateOne) ClearNextHint() *AnswerEventUpdateOne {
	_u.mutation.ClearNextHint()
	return _u
}

// SetFullEvaluation sets the "full_evaluation" field.
func (_u *AnswerEventUpdateOne) SetFullEvaluation(v string) *AnswerEventUpdateOne {
	_u.mutation.SetFullEvaluation(v)
	return _u
}

// SetNillableFullEvaluation sets the "full_evaluation" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableFullEvaluation(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetFullEvaluation(*v)
	}
	return _u
}

// ClearFullEvaluation clears the value of the "full_evaluation" field.
func (_u *AnswerEventUpdateOne) ClearFullEvaluation() *AnswerEventUpdateOne {
	_u.mutation.ClearFullEvaluation()
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *AnswerEventUpdateOne) SetConfidenceScore(v float64) *AnswerEventUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableConfidenceScore(v *float64) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *AnswerEventUpdateOne) AddConfidenceScore(v float64) *AnswerEventUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// ClearConfidenceScore clears the value of the "confidence_score" field.
func (_u *AnswerEventUpdateOne) ClearConfidenceScore() *AnswerEventUpdateOne {
	_u.mutation.ClearConfidenceScore()
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(answerevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionID(); ok {
		_spec.AddField(answerevent.FieldQuestionID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(answerevent.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsCorrect(); ok {
		_spec.SetField(answerevent.FieldIsCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(answerevent.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(answerevent.FieldGrade, field.TypeInt, value)
	}
	if _u.mutation.GradeCleared() {
		_spec.ClearField(answerevent.FieldGrade, field.TypeInt)
	}
	if value, ok := _u.mutation.NextHint(); ok {
		_spec.SetField(answerevent.FieldNextHint, field.TypeString, value)
	}
	if _u.mutation.NextHintCleared() {
		_spec.ClearField(answerevent.FieldNextHint, field.TypeString)
	}
	if value, ok := _u.mutation.FullEvaluation(); ok {
		_spec.SetField(answerevent.FieldFullEvaluation, field.TypeString, value)
	}
	if _u.mutation.FullEvaluationCleared() {
		_spec.ClearField(answerevent.FieldFullEvaluation, field.TypeString)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(answerevent.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(answerevent.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceScoreCleared() {
		_spec.ClearField(answerevent.FieldConfidenceScore, field.TypeFloat64)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
