// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/quizdeck/ent/question"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
}

// SetText sets the "text" field.
func (_c *QuestionCreate) SetText(v string) *QuestionCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetQtype sets the "qtype" field.
func (_c *QuestionCreate) SetQtype(v question.Qtype) *QuestionCreate {
	_c.mutation.SetQtype(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *QuestionCreate) SetVersion(v int) *QuestionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableVersion(v *int) *QuestionCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetHints sets the "hints" field.
func (_c *QuestionCreate) SetHints(v []string) *QuestionCreate {
	_c.mutation.SetHints(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *QuestionCreate) SetOptions(v []string) *QuestionCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetExpectedAnswer sets the "expected_answer" field.
func (_c *QuestionCreate) SetExpectedAnswer(v string) *QuestionCreate {
	_c.mutation.SetExpectedAnswer(v)
	return _c
}

// SetNillableExpectedAnswer sets the "expected_answer" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableExpectedAnswer(v *string) *QuestionCreate {
	if v != nil {
		_c.SetExpectedAnswer(*v)
	}
	return _c
}

// SetKeywords sets the "keywords" field.
func (_c *QuestionCreate) SetKeywords(v []string) *QuestionCreate {
	_c.mutation.SetKeywords(v)
	return _c
}

// SetMinKeywords sets the "min_keywords" field.
func (_c *QuestionCreate) SetMinKeywords(v int) *QuestionCreate {
	_c.mutation.SetMinKeywords(v)
	return _c
}

// SetNillableMinKeywords sets the "min_keywords" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableMinKeywords(v *int) *QuestionCreate {
	if v != nil {
		_c.SetMinKeywords(*v)
	}
	return _c
}

// SetMaxLength sets the "max_length" field.
func (_c *QuestionCreate) SetMaxLength(v int) *QuestionCreate {
	_c.mutation.SetMaxLength(v)
	return _c
}

// SetNillableMaxLength sets the "max_length" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableMaxLength(v *int) *QuestionCreate {
	if v != nil {
		_c.SetMaxLength(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuestionCreate) SetID(v int) *QuestionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := question.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.MinKeywords(); !ok {
		v := question.DefaultMinKeywords
		_c.mutation.SetMinKeywords(v)
	}
	if _, ok := _c.mutation.MaxLength(); !ok {
		v := question.DefaultMaxLength
		_c.mutation.SetMaxLength(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Question.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := question.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "Question.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Qtype(); !ok {
		return &ValidationError{Name: "qtype", err: errors.New(`ent: missing required field "Question.qtype"`)}
	}
	if v, ok := _c.mutation.Qtype(); ok {
		if err := question.QtypeValidator(v); err != nil {
			return &ValidationError{Name: "qtype", err: fmt.Errorf(`ent: validator failed for field "Question.qtype": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Question.version"`)}
	}
	if _, ok := _c.mutation.MinKeywords(); !ok {
		return &ValidationError{Name: "min_keywords", err: errors.New(`ent: missing required field "Question.min_keywords"`)}
	}
	if _, ok := _c.mutation.MaxLength(); !ok {
		return &ValidationError{Name: "max_length", err: errors.New(`ent: missing required field "Question.max_length"`)}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(question.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Qtype(); ok {
		_spec.SetField(question.FieldQtype, field.TypeEnum, value)
		_node.Qtype = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(question.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Hints(); ok {
		_spec.SetField(question.FieldHints, field.TypeJSON, value)
		_node.Hints = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.ExpectedAnswer(); ok {
		_spec.SetField(question.FieldExpectedAnswer, field.TypeString, value)
		_node.ExpectedAnswer = value
	}
	if value, ok := _c.mutation.Keywords(); ok {
		_spec.SetField(question.FieldKeywords, field.TypeJSON, value)
		_node.Keywords = value
	}
	if value, ok := _c.mutation.MinKeywords(); ok {
		_spec.SetField(question.FieldMinKeywords, field.TypeInt, value)
		_node.MinKeywords = value
	}
	if value, ok := _c.mutation.MaxLength(); ok {
		_spec.SetField(question.FieldMaxLength, field.TypeInt, value)
		_node.MaxLength = value
	}
	return _node, _spec
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
