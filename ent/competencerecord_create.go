// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillquest/ent/competencerecord"
)

// CompetenceRecordCreate is the builder for creating a CompetenceRecord entity.
type CompetenceRecordCreate struct {
	config
	mutation *CompetenceRecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *CompetenceRecordCreate) SetUserID(v string) *CompetenceRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *CompetenceRecordCreate) SetSkillID(v string) *CompetenceRecordCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetMastery sets the "mastery" field.
func (_c *CompetenceRecordCreate) SetMastery(v int) *CompetenceRecordCreate {
	_c.mutation.SetMastery(v)
	return _c
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_c *CompetenceRecordCreate) SetNillableMastery(v *int) *CompetenceRecordCreate {
	if v != nil {
		_c.SetMastery(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *CompetenceRecordCreate) SetCompleted(v bool) *CompetenceRecordCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *CompetenceRecordCreate) SetNillableCompleted(v *bool) *CompetenceRecordCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CompetenceRecordCreate) SetUpdatedAt(v time.Time) *CompetenceRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CompetenceRecordCreate) SetNillableUpdatedAt(v *time.Time) *CompetenceRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the CompetenceRecordMutation object of the builder.
func (_c *CompetenceRecordCreate) Mutation() *CompetenceRecordMutation {
	return _c.mutation
}

// Save creates the CompetenceRecord in the database.
func (_c *CompetenceRecordCreate) Save(ctx context.Context) (*CompetenceRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompetenceRecordCreate) SaveX(ctx context.Context) *CompetenceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompetenceRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompetenceRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompetenceRecordCreate) defaults() {
	if _, ok := _c.mutation.Mastery(); !ok {
		v := competencerecord.DefaultMastery
		_c.mutation.SetMastery(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := competencerecord.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := competencerecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompetenceRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CompetenceRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := competencerecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CompetenceRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "CompetenceRecord.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := competencerecord.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "CompetenceRecord.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		return &ValidationError{Name: "mastery", err: errors.New(`ent: missing required field "CompetenceRecord.mastery"`)}
	}
	if v, ok := _c.mutation.Mastery(); ok {
		if err := competencerecord.MasteryValidator(v); err != nil {
			return &ValidationError{Name: "mastery", err: fmt.Errorf(`ent: validator failed for field "CompetenceRecord.mastery": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "CompetenceRecord.completed"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CompetenceRecord.updated_at"`)}
	}
	return nil
}

func (_c *CompetenceRecordCreate) sqlSave(ctx context.Context) (*CompetenceRecord, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CompetenceRecordCreate) createSpec() (*CompetenceRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &CompetenceRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(competencerecord.Table, sqlgraph.NewFieldSpec(competencerecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(competencerecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(competencerecord.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.Mastery(); ok {
		_spec.SetField(competencerecord.FieldMastery, field.TypeInt, value)
		_node.Mastery = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(competencerecord.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(competencerecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CompetenceRecordCreateBulk is the builder for creating many CompetenceRecord entities in bulk.
type CompetenceRecordCreateBulk struct {
	config
	err      error
	builders []*CompetenceRecordCreate
}

// Save creates the CompetenceRecord entities in the database.
func (_c *CompetenceRecordCreateBulk) Save(ctx context.Context) ([]*CompetenceRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CompetenceRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompetenceRecordMutation)
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
				if specs[i].ID.Value != nil {
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
func (_c *CompetenceRecordCreateBulk) SaveX(ctx context.Context) []*CompetenceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompetenceRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompetenceRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
