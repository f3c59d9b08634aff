// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillquest/ent/predicate"
	"github.com/abhisek/skillquest/ent/quizprogression"
)

// QuizProgressionUpdate is the builder for updating QuizProgression entities.
type QuizProgressionUpdate struct {
	config
	hooks    []Hook
	mutation *QuizProgressionMutation
}

// Where appends a list predicates to the QuizProgressionUpdate builder.
func (_u *QuizProgressionUpdate) Where(ps ...predicate.QuizProgression) *QuizProgressionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuizProgressionUpdate) SetStatus(v quizprogression.Status) *QuizProgressionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuizProgressionUpdate) SetNillableStatus(v *quizprogression.Status) *QuizProgressionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetQuizzes sets the "quizzes" field.
func (_u *QuizProgressionUpdate) SetQuizzes(v json.RawMessage) *QuizProgressionUpdate {
	_u.mutation.SetQuizzes(v)
	return _u
}

// AppendQuizzes appends value to the "quizzes" field.
func (_u *QuizProgressionUpdate) AppendQuizzes(v json.RawMessage) *QuizProgressionUpdate {
	_u.mutation.AppendQuizzes(v)
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *QuizProgressionUpdate) SetRationale(v string) *QuizProgressionUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *QuizProgressionUpdate) SetNillableRationale(v *string) *QuizProgressionUpdate {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// SetCelebrationTitle sets the "celebration_title" field.
func (_u *QuizProgressionUpdate) SetCelebrationTitle(v string) *QuizProgressionUpdate {
	_u.mutation.SetCelebrationTitle(v)
	return _u
}

// SetNillableCelebrationTitle sets the "celebration_title" field if the given value is not nil.
func (_u *QuizProgressionUpdate) SetNillableCelebrationTitle(v *string) *QuizProgressionUpdate {
	if v != nil {
		_u.SetCelebrationTitle(*v)
	}
	return _u
}

// SetCelebrationMessage sets the "celebration_message" field.
func (_u *QuizProgressionUpdate) SetCelebrationMessage(v string) *QuizProgressionUpdate {
	_u.mutation.SetCelebrationMessage(v)
	return _u
}

// SetNillableCelebrationMessage sets the "celebration_message" field if the given value is not nil.
func (_u *QuizProgressionUpdate) SetNillableCelebrationMessage(v *string) *QuizProgressionUpdate {
	if v != nil {
		_u.SetCelebrationMessage(*v)
	}
	return _u
}

// SetMotivationalQuote sets the "motivational_quote" field.
func (_u *QuizProgressionUpdate) SetMotivationalQuote(v string) *QuizProgressionUpdate {
	_u.mutation.SetMotivationalQuote(v)
	return _u
}

// SetNillableMotivationalQuote sets the "motivational_quote" field if the given value is not nil.
func (_u *QuizProgressionUpdate) SetNillableMotivationalQuote(v *string) *QuizProgressionUpdate {
	if v != nil {
		_u.SetMotivationalQuote(*v)
	}
	return _u
}

// Mutation returns the QuizProgressionMutation object of the builder.
func (_u *QuizProgressionUpdate) Mutation() *QuizProgressionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizProgressionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizProgressionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizProgressionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizProgressionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizProgressionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := quizprogression.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuizProgression.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizProgressionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizprogression.Table, quizprogression.Columns, sqlgraph.NewFieldSpec(quizprogression.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(quizprogression.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Quizzes(); ok {
		_spec.SetField(quizprogression.FieldQuizzes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuizzes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizprogression.FieldQuizzes, value)
		})
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(quizprogression.FieldRationale, field.TypeString, value)
	}
	if value, ok := _u.mutation.CelebrationTitle(); ok {
		_spec.SetField(quizprogression.FieldCelebrationTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.CelebrationMessage(); ok {
		_spec.SetField(quizprogression.FieldCelebrationMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.MotivationalQuote(); ok {
		_spec.SetField(quizprogression.FieldMotivationalQuote, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizprogression.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizProgressionUpdateOne is the builder for updating a single QuizProgression entity.
type QuizProgressionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizProgressionMutation
}

// SetStatus sets the "status" field.
func (_u *QuizProgressionUpdateOne) SetStatus(v quizprogression.Status) *QuizProgressionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuizProgressionUpdateOne) SetNillableStatus(v *quizprogression.Status) *QuizProgressionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetQuizzes sets the "quizzes" field.
func (_u *QuizProgressionUpdateOne) SetQuizzes(v json.RawMessage) *QuizProgressionUpdateOne {
	_u.mutation.SetQuizzes(v)
	return _u
}

// AppendQuizzes appends value to the "quizzes" field.
func (_u *QuizProgressionUpdateOne) AppendQuizzes(v json.RawMessage) *QuizProgressionUpdateOne {
	_u.mutation.AppendQuizzes(v)
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *QuizProgressionUpdateOne) SetRationale(v string) *QuizProgressionUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *QuizProgressionUpdateOne) SetNillableRationale(v *string) *QuizProgressionUpdateOne {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// SetCelebrationTitle sets the "celebration_title" field.
func (_u *QuizProgressionUpdateOne) SetCelebrationTitle(v string) *QuizProgressionUpdateOne {
	_u.mutation.SetCelebrationTitle(v)
	return _u
}

// SetNillableCelebrationTitle sets the "celebration_title" field if the given value is not nil.
func (_u *QuizProgressionUpdateOne) SetNillableCelebrationTitle(v *string) *QuizProgressionUpdateOne {
	if v != nil {
		_u.SetCelebrationTitle(*v)
	}
	return _u
}

// SetCelebrationMessage sets the "celebration_message" field.
func (_u *QuizProgressionUpdateOne) SetCelebrationMessage(v string) *QuizProgressionUpdateOne {
	_u.mutation.SetCelebrationMessage(v)
	return _u
}

// SetNillableCelebrationMessage sets the "celebration_message" field if the given value is not nil.
func (_u *QuizProgressionUpdateOne) SetNillableCelebrationMessage(v *string) *QuizProgressionUpdateOne {
	if v != nil {
		_u.SetCelebrationMessage(*v)
	}
	return _u
}

// SetMotivationalQuote sets the "motivational_quote" field.
func (_u *QuizProgressionUpdateOne) SetMotivationalQuote(v string) *QuizProgressionUpdateOne {
	_u.mutation.SetMotivationalQuote(v)
	return _u
}

// SetNillableMotivationalQuote sets the "motivational_quote" field if the given value is not nil.
func (_u *QuizProgressionUpdateOne) SetNillableMotivationalQuote(v *string) *QuizProgressionUpdateOne {
	if v != nil {
		_u.SetMotivationalQuote(*v)
	}
	return _u
}

// Mutation returns the QuizProgressionMutation object of the builder.
func (_u *QuizProgressionUpdateOne) Mutation() *QuizProgressionMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizProgressionUpdate builder.
func (_u *QuizProgressionUpdateOne) Where(ps ...predicate.QuizProgression) *QuizProgressionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizProgressionUpdateOne) Select(field string, fields ...string) *QuizProgressionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizProgression entity.
func (_u *QuizProgressionUpdateOne) Save(ctx context.Context) (*QuizProgression, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizProgressionUpdateOne) SaveX(ctx context.Context) *QuizProgression {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizProgressionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizProgressionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizProgressionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := quizprogression.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuizProgression.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizProgressionUpdateOne) sqlSave(ctx context.Context) (_node *QuizProgression, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizprogression.Table, quizprogression.Columns, sqlgraph.NewFieldSpec(quizprogression.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizProgression.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizprogression.FieldID)
		for _, f := range fields {
			if !quizprogression.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizprogression.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(quizprogression.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Quizzes(); ok {
		_spec.SetField(quizprogression.FieldQuizzes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuizzes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, quizprogression.FieldQuizzes, value)
		})
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(quizprogression.FieldRationale, field.TypeString, value)
	}
	if value, ok := _u.mutation.CelebrationTitle(); ok {
		_spec.SetField(quizprogression.FieldCelebrationTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.CelebrationMessage(); ok {
		_spec.SetField(quizprogression.FieldCelebrationMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.MotivationalQuote(); ok {
		_spec.SetField(quizprogression.FieldMotivationalQuote, field.TypeString, value)
	}
	_node = &QuizProgression{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizprogression.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
