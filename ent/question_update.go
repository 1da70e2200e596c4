// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/quizdeck/ent/predicate"
	"github.com/abhisek/quizdeck/ent/question"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetText sets the "text" field.
func (_u *QuestionUpdate) SetText(v string) *QuestionUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableText(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetQtype sets the "qtype" field.
func (_u *QuestionUpdate) SetQtype(v question.Qtype) *QuestionUpdate {
	_u.mutation.SetQtype(v)
	return _u
}

// SetNillableQtype sets the "qtype" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableQtype(v *question.Qtype) *QuestionUpdate {
	if v != nil {
		_u.SetQtype(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *QuestionUpdate) SetVersion(v int) *QuestionUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableVersion(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *QuestionUpdate) AddVersion(v int) *QuestionUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetHints sets the "hints" field.
func (_u *QuestionUpdate) SetHints(v []string) *QuestionUpdate {
	_u.mutation.SetHints(v)
	return _u
}

// AppendHints appends value to the "hints" field.
func (_u *QuestionUpdate) AppendHints(v []string) *QuestionUpdate {
	_u.mutation.AppendHints(v)
	return _u
}

// ClearHints clears the value of the "hints" field.
func (_u *QuestionUpdate) ClearHints() *QuestionUpdate {
	_u.mutation.ClearHints()
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuestionUpdate) SetOptions(v []string) *QuestionUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *QuestionUpdate) AppendOptions(v []string) *QuestionUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *QuestionUpdate) ClearOptions() *QuestionUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetExpectedAnswer sets the "expected_answer" field.
func (_u *QuestionUpdate) SetExpectedAnswer(v string) *QuestionUpdate {
	_u.mutation.SetExpectedAnswer(v)
	return _u
}

// SetNillableExpectedAnswer sets the "expected_answer" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableExpectedAnswer(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetExpectedAnswer(*v)
	}
	return _u
}

// ClearExpectedAnswer clears the value of the "expected_answer" field.
func (_u *QuestionUpdate) ClearExpectedAnswer() *QuestionUpdate {
	_u.mutation.ClearExpectedAnswer()
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *QuestionUpdate) SetKeywords(v []string) *QuestionUpdate {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *QuestionUpdate) AppendKeywords(v []string) *QuestionUpdate {
	_u.mutation.AppendKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *QuestionUpdate) ClearKeywords() *QuestionUpdate {
	_u.mutation.ClearKeywords()
	return _u
}

// SetMinKeywords sets the "min_keywords" field.
func (_u *QuestionUpdate) SetMinKeywords(v int) *QuestionUpdate {
	_u.mutation.ResetMinKeywords()
	_u.mutation.SetMinKeywords(v)
	return _u
}

// SetNillableMinKeywords sets the "min_keywords" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableMinKeywords(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetMinKeywords(*v)
	}
	return _u
}

// AddMinKeywords adds value to the "min_keywords" field.
func (_u *QuestionUpdate) AddMinKeywords(v int) *QuestionUpdate {
	_u.mutation.AddMinKeywords(v)
	return _u
}

// SetMaxLength sets the "max_length" field.
func (_u *QuestionUpdate) SetMaxLength(v int) *QuestionUpdate {
	_u.mutation.ResetMaxLength()
	_u.mutation.SetMaxLength(v)
	return _u
}

// SetNillableMaxLength sets the "max_length" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableMaxLength(v *int) *QuestionUpdate {
	if v != nil {
		_u.SetMaxLength(*v)
	}
	return _u
}

// AddMaxLength adds value to the "max_length" field.
func (_u *QuestionUpdate) AddMaxLength(v int) *QuestionUpdate {
	_u.mutation.AddMaxLength(v)
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := question.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Question.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Qtype(); ok {
		if err := question.QtypeValidator(v); err != nil {
			return &ValidationError{Name: "qtype", err: fmt.Errorf(`ent: validator failed for field "Question.qtype": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Qtype(); ok {
		_spec.SetField(question.FieldQtype, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(question.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(question.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Hints(); ok {
		_spec.SetField(question.FieldHints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldHints, value)
		})
	}
	if _u.mutation.HintsCleared() {
		_spec.ClearField(question.FieldHints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(question.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExpectedAnswer(); ok {
		_spec.SetField(question.FieldExpectedAnswer, field.TypeString, value)
	}
	if _u.mutation.ExpectedAnswerCleared() {
		_spec.ClearField(question.FieldExpectedAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(question.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldKeywords, value)
		})
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(question.FieldKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.MinKeywords(); ok {
		_spec.SetField(question.FieldMinKeywords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinKeywords(); ok {
		_spec.AddField(question.FieldMinKeywords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxLength(); ok {
		_spec.SetField(question.FieldMaxLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxLength(); ok {
		_spec.AddField(question.FieldMaxLength, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetText sets the "text" field.
func (_u *QuestionUpdateOne) SetText(v string) *QuestionUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableText(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetQtype sets the "qtype" field.
func (_u *QuestionUpdateOne) SetQtype(v question.Qtype) *QuestionUpdateOne {
	_u.mutation.SetQtype(v)
	return _u
}

// SetNillableQtype sets the "qtype" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableQtype(v *question.Qtype) *QuestionUpdateOne {
	if v != nil {
		_u.SetQtype(*v)
	}
	return _u
}

// SetVersion sets the "version" field.
func (_u *QuestionUpdateOne) SetVersion(v int) *QuestionUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableVersion(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *QuestionUpdateOne) AddVersion(v int) *QuestionUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetHints sets the "hints" field.
func (_u *QuestionUpdateOne) SetHints(v []string) *QuestionUpdateOne {
	_u.mutation.SetHints(v)
	return _u
}

// AppendHints appends value to the "hints" field.
func (_u *QuestionUpdateOne) AppendHints(v []string) *QuestionUpdateOne {
	_u.mutation.AppendHints(v)
	return _u
}

// ClearHints clears the value of the "hints" field.
func (_u *QuestionUpdateOne) ClearHints() *QuestionUpdateOne {
	_u.mutation.ClearHints()
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuestionUpdateOne) SetOptions(v []string) *QuestionUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *QuestionUpdateOne) AppendOptions(v []string) *QuestionUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *QuestionUpdateOne) ClearOptions() *QuestionUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetExpectedAnswer sets the "expected_answer" field.
func (_u *QuestionUpdateOne) SetExpectedAnswer(v string) *QuestionUpdateOne {
	_u.mutation.SetExpectedAnswer(v)
	return _u
}

// SetNillableExpectedAnswer sets the "expected_answer" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableExpectedAnswer(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetExpectedAnswer(*v)
	}
	return _u
}

// ClearExpectedAnswer clears the value of the "expected_answer" field.
func (_u *QuestionUpdateOne) ClearExpectedAnswer() *QuestionUpdateOne {
	_u.mutation.ClearExpectedAnswer()
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *QuestionUpdateOne) SetKeywords(v []string) *QuestionUpdateOne {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *QuestionUpdateOne) AppendKeywords(v []string) *QuestionUpdateOne {
	_u.mutation.AppendKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *QuestionUpdateOne) ClearKeywords() *QuestionUpdateOne {
	_u.mutation.ClearKeywords()
	return _u
}

// SetMinKeywords sets the "min_keywords" field.
func (_u *QuestionUpdateOne) SetMinKeywords(v int) *QuestionUpdateOne {
	_u.mutation.ResetMinKeywords()
	_u.mutation.SetMinKeywords(v)
	return _u
}

// SetNillableMinKeywords sets the "min_keywords" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableMinKeywords(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetMinKeywords(*v)
	}
	return _u
}

// AddMinKeywords adds value to the "min_keywords" field.
func (_u *QuestionUpdateOne) AddMinKeywords(v int) *QuestionUpdateOne {
	_u.mutation.AddMinKeywords(v)
	return _u
}

// SetMaxLength sets the "max_length" field.
func (_u *QuestionUpdateOne) SetMaxLength(v int) *QuestionUpdateOne {
	_u.mutation.ResetMaxLength()
	_u.mutation.SetMaxLength(v)
	return _u
}

// SetNillableMaxLength sets the "max_length" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableMaxLength(v *int) *QuestionUpdateOne {
	if v != nil {
		_u.SetMaxLength(*v)
	}
	return _u
}

// AddMaxLength adds value to the "max_length" field.
func (_u *QuestionUpdateOne) AddMaxLength(v int) *QuestionUpdateOne {
	_u.mutation.AddMaxLength(v)
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if v, ok := _u.mutation.Text(); ok {
		if err := question.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Question.text": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Qtype(); ok {
		if err := question.QtypeValidator(v); err != nil {
			return &ValidationError{Name: "qtype", err: fmt.Errorf(`ent: validator failed for field "Question.qtype": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
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
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Qtype(); ok {
		_spec.SetField(question.FieldQtype, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(question.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(question.FieldVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Hints(); ok {
		_spec.SetField(question.FieldHints, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHints(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldHints, value)
		})
	}
	if _u.mutation.HintsCleared() {
		_spec.ClearField(question.FieldHints, field.TypeJSON)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldOptions, value)
		})
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(question.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExpectedAnswer(); ok {
		_spec.SetField(question.FieldExpectedAnswer, field.TypeString, value)
	}
	if _u.mutation.ExpectedAnswerCleared() {
		_spec.ClearField(question.FieldExpectedAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(question.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldKeywords, value)
		})
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(question.FieldKeywords, field.TypeJSON)
	}
	if value, ok := _u.mutation.MinKeywords(); ok {
		_spec.SetField(question.FieldMinKeywords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMinKeywords(); ok {
		_spec.AddField(question.FieldMinKeywords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxLength(); ok {
		_spec.SetField(question.FieldMaxLength, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxLength(); ok {
		_spec.AddField(question.FieldMaxLength, field.TypeInt, value)
	}
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
