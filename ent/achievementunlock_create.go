// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillquest/ent/achievementunlock"
)

// AchievementUnlockCreate is the builder for creating a AchievementUnlock entity.
type AchievementUnlockCreate struct {
	config
	mutation *AchievementUnlockMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *AchievementUnlockCreate) SetUserID(v string) *AchievementUnlockCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetAchievementID sets the "achievement_id" field.
func (_c *AchievementUnlockCreate) SetAchievementID(v string) *AchievementUnlockCreate {
	_c.mutation.SetAchievementID(v)
	return _c
}

// SetUnlockedAt sets the "unlocked_at" field.
func (_c *AchievementUnlockCreate) SetUnlockedAt(v time.Time) *AchievementUnlockCreate {
	_c.mutation.SetUnlockedAt(v)
	return _c
}

// SetNillableUnlockedAt sets the "unlocked_at" field if the given value is not nil.
func (_c *AchievementUnlockCreate) SetNillableUnlockedAt(v *time.Time) *AchievementUnlockCreate {
	if v != nil {
		_c.SetUnlockedAt(*v)
	}
	return _c
}

// Mutation returns the AchievementUnlockMutation object of the builder.
func (_c *AchievementUnlockCreate) Mutation() *AchievementUnlockMutation {
	return _c.mutation
}

// Save creates the AchievementUnlock in the database.
func (_c *AchievementUnlockCreate) Save(ctx context.Context) (*AchievementUnlock, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AchievementUnlockCreate) SaveX(ctx context.Context) *AchievementUnlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AchievementUnlockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AchievementUnlockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AchievementUnlockCreate) defaults() {
	if _, ok := _c.mutation.UnlockedAt(); !ok {
		v := achievementunlock.DefaultUnlockedAt()
		_c.mutation.SetUnlockedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AchievementUnlockCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AchievementUnlock.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := achievementunlock.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AchievementUnlock.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AchievementID(); !ok {
		return &ValidationError{Name: "achievement_id", err: errors.New(`ent: missing required field "AchievementUnlock.achievement_id"`)}
	}
	if v, ok := _c.mutation.AchievementID(); ok {
		if err := achievementunlock.AchievementIDValidator(v); err != nil {
			return &ValidationError{Name: "achievement_id", err: fmt.Errorf(`ent: validator failed for field "AchievementUnlock.achievement_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnlockedAt(); !ok {
		return &ValidationError{Name: "unlocked_at", err: errors.New(`ent: missing required field "AchievementUnlock.unlocked_at"`)}
	}
	return nil
}

func (_c *AchievementUnlockCreate) sqlSave(ctx context.Context) (*AchievementUnlock, error) {
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

func (_c *AchievementUnlockCreate) createSpec() (*AchievementUnlock, *sqlgraph.CreateSpec) {
	var (
		_node = &AchievementUnlock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(achievementunlock.Table, sqlgraph.NewFieldSpec(achievementunlock.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(achievementunlock.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.AchievementID(); ok {
		_spec.SetField(achievementunlock.FieldAchievementID, field.TypeString, value)
		_node.AchievementID = value
	}
	if value, ok := _c.mutation.UnlockedAt(); ok {
		_spec.SetField(achievementunlock.FieldUnlockedAt, field.TypeTime, value)
		_node.UnlockedAt = value
	}
	return _node, _spec
}

// AchievementUnlockCreateBulk is the builder for creating many AchievementUnlock entities in bulk.
type AchievementUnlockCreateBulk struct {
	config
	err      error
	builders []*AchievementUnlockCreate
}

// Save creates the AchievementUnlock entities in the database.
func (_c *AchievementUnlockCreateBulk) Save(ctx context.Context) ([]*AchievementUnlock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AchievementUnlock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AchievementUnlockMutation)
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
func (_c *AchievementUnlockCreateBulk) SaveX(ctx context.Context) []*AchievementUnlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AchievementUnlockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AchievementUnlockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
