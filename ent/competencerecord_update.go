// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillquest/ent/competencerecord"
	"github.com/abhisek/skillquest/ent/predicate"
)

// CompetenceRecordUpdate is the builder for updating CompetenceRecord entities.
type CompetenceRecordUpdate struct {
	config
	hooks    []Hook
	mutation *CompetenceRecordMutation
}

// Where appends a list predicates to the CompetenceRecordUpdate builder.
func (_u *CompetenceRecordUpdate) Where(ps ...predicate.CompetenceRecord) *CompetenceRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *CompetenceRecordUpdate) SetMastery(v int) *CompetenceRecordUpdate {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *CompetenceRecordUpdate) SetNillableMastery(v *int) *CompetenceRecordUpdate {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *CompetenceRecordUpdate) AddMastery(v int) *CompetenceRecordUpdate {
	_u.mutation.AddMastery(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *CompetenceRecordUpdate) SetCompleted(v bool) *CompetenceRecordUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *CompetenceRecordUpdate) SetNillableCompleted(v *bool) *CompetenceRecordUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CompetenceRecordUpdate) SetUpdatedAt(v time.Time) *CompetenceRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CompetenceRecordMutation object of the builder.
func (_u *CompetenceRecordUpdate) Mutation() *CompetenceRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompetenceRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompetenceRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompetenceRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompetenceRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompetenceRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := competencerecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompetenceRecordUpdate) check() error {
	if v, ok := _u.mutation.Mastery(); ok {
		if err := competencerecord.MasteryValidator(v); err != nil {
			return &ValidationError{Name: "mastery", err: fmt.Errorf(`ent: validator failed for field "CompetenceRecord.mastery": %w`, err)}
		}
	}
	return nil
}

func (_u *CompetenceRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(competencerecord.Table, competencerecord.Columns, sqlgraph.NewFieldSpec(competencerecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(competencerecord.FieldMastery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(competencerecord.FieldMastery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(competencerecord.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(competencerecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{competencerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompetenceRecordUpdateOne is the builder for updating a single CompetenceRecord entity.
type CompetenceRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompetenceRecordMutation
}

// SetMastery sets the "mastery" field.
func (_u *CompetenceRecordUpdateOne) SetMastery(v int) *CompetenceRecordUpdateOne {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *CompetenceRecordUpdateOne) SetNillableMastery(v *int) *CompetenceRecordUpdateOne {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *CompetenceRecordUpdateOne) AddMastery(v int) *CompetenceRecordUpdateOne {
	_u.mutation.AddMastery(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *CompetenceRecordUpdateOne) SetCompleted(v bool) *CompetenceRecordUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *CompetenceRecordUpdateOne) SetNillableCompleted(v *bool) *CompetenceRecordUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CompetenceRecordUpdateOne) SetUpdatedAt(v time.Time) *CompetenceRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CompetenceRecordMutation object of the builder.
func (_u *CompetenceRecordUpdateOne) Mutation() *CompetenceRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the CompetenceRecordUpdate builder.
func (_u *CompetenceRecordUpdateOne) Where(ps ...predicate.CompetenceRecord) *CompetenceRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompetenceRecordUpdateOne) Select(field string, fields ...string) *CompetenceRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CompetenceRecord entity.
func (_u *CompetenceRecordUpdateOne) Save(ctx context.Context) (*CompetenceRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompetenceRecordUpdateOne) SaveX(ctx context.Context) *CompetenceRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompetenceRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompetenceRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompetenceRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := competencerecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompetenceRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Mastery(); ok {
		if err := competencerecord.MasteryValidator(v); err != nil {
			return &ValidationError{Name: "mastery", err: fmt.Errorf(`ent: validator failed for field "CompetenceRecord.mastery": %w`, err)}
		}
	}
	return nil
}

func (_u *CompetenceRecordUpdateOne) sqlSave(ctx context.Context) (_node *CompetenceRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(competencerecord.Table, competencerecord.Columns, sqlgraph.NewFieldSpec(competencerecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompetenceRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, competencerecord.FieldID)
		for _, f := range fields {
			if !competencerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != competencerecord.FieldID {
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
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(competencerecord.FieldMastery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(competencerecord.FieldMastery, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(competencerecord.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(competencerecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CompetenceRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{competencerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
