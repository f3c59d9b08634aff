// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/skillquest/ent/quizprogression"
)

// QuizProgressionCreate is the builder for creating a QuizProgression entity.
type QuizProgressionCreate struct {
	config
	mutation *QuizProgressionMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *QuizProgressionCreate) SetUserID(v string) *QuizProgressionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSkillID sets the "skill_id" field.
func (_c *QuizProgressionCreate) SetSkillID(v string) *QuizProgressionCreate {
	_c.mutation.SetSkillID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *QuizProgressionCreate) SetStatus(v quizprogression.Status) *QuizProgressionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *QuizProgressionCreate) SetNillableStatus(v *quizprogression.Status) *QuizProgressionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetGeneratedAt sets the "generated_at" field.
func (_c *QuizProgressionCreate) SetGeneratedAt(v time.Time) *QuizProgressionCreate {
	_c.mutation.SetGeneratedAt(v)
	return _c
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_c *QuizProgressionCreate) SetNillableGeneratedAt(v *time.Time) *QuizProgressionCreate {
	if v != nil {
		_c.SetGeneratedAt(*v)
	}
	return _c
}

// SetQuizzes sets the "quizzes" field.
func (_c *QuizProgressionCreate) SetQuizzes(v json.RawMessage) *QuizProgressionCreate {
	_c.mutation.SetQuizzes(v)
	return _c
}

// SetRationale sets the "rationale" field.
func (_c *QuizProgressionCreate) SetRationale(v string) *QuizProgressionCreate {
	_c.mutation.SetRationale(v)
	return _c
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_c *QuizProgressionCreate) SetNillableRationale(v *string) *QuizProgressionCreate {
	if v != nil {
		_c.SetRationale(*v)
	}
	return _c
}

// SetCelebrationTitle sets the "celebration_title" field.
func (_c *QuizProgressionCreate) SetCelebrationTitle(v string) *QuizProgressionCreate {
	_c.mutation.SetCelebrationTitle(v)
	return _c
}

// SetNillableCelebrationTitle sets the "celebration_title" field if the given value is not nil.
func (_c *QuizProgressionCreate) SetNillableCelebrationTitle(v *string) *QuizProgressionCreate {
	if v != nil {
		_c.SetCelebrationTitle(*v)
	}
	return _c
}

// SetCelebrationMessage sets the "celebration_message" field.
func (_c *QuizProgressionCreate) SetCelebrationMessage(v string) *QuizProgressionCreate {
	_c.mutation.SetCelebrationMessage(v)
	return _c
}

// SetNillableCelebrationMessage sets the "celebration_message" field if the given value is not nil.
func (_c *QuizProgressionCreate) SetNillableCelebrationMessage(v *string) *QuizProgressionCreate {
	if v != nil {
		_c.SetCelebrationMessage(*v)
	}
	return _c
}

// SetMotivationalQuote sets the "motivational_quote" field.
func (_c *QuizProgressionCreate) SetMotivationalQuote(v string) *QuizProgressionCreate {
	_c.mutation.SetMotivationalQuote(v)
	return _c
}

// SetNillableMotivationalQuote sets the "motivational_quote" field if the given value is not nil.
func (_c *QuizProgressionCreate) SetNillableMotivationalQuote(v *string) *QuizProgressionCreate {
	if v != nil {
		_c.SetMotivationalQuote(*v)
	}
	return _c
}

// Mutation returns the QuizProgressionMutation object of the builder.
func (_c *QuizProgressionCreate) Mutation() *QuizProgressionMutation {
	return _c.mutation
}

// Save creates the QuizProgression in the database.
func (_c *QuizProgressionCreate) Save(ctx context.Context) (*QuizProgression, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizProgressionCreate) SaveX(ctx context.Context) *QuizProgression {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizProgressionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizProgressionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizProgressionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := quizprogression.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		v := quizprogression.DefaultGeneratedAt()
		_c.mutation.SetGeneratedAt(v)
	}
	if _, ok := _c.mutation.Rationale(); !ok {
		v := quizprogression.DefaultRationale
		_c.mutation.SetRationale(v)
	}
	if _, ok := _c.mutation.CelebrationTitle(); !ok {
		v := quizprogression.DefaultCelebrationTitle
		_c.mutation.SetCelebrationTitle(v)
	}
	if _, ok := _c.mutation.CelebrationMessage(); !ok {
		v := quizprogression.DefaultCelebrationMessage
		_c.mutation.SetCelebrationMessage(v)
	}
	if _, ok := _c.mutation.MotivationalQuote(); !ok {
		v := quizprogression.DefaultMotivationalQuote
		_c.mutation.SetMotivationalQuote(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizProgressionCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "QuizProgression.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := quizprogression.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuizProgression.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "QuizProgression.skill_id"`)}
	}
	if v, ok := _c.mutation.SkillID(); ok {
		if err := quizprogression.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "QuizProgression.skill_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QuizProgression.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := quizprogression.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuizProgression.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		return &ValidationError{Name: "generated_at", err: errors.New(`ent: missing required field "QuizProgression.generated_at"`)}
	}
	if _, ok := _c.mutation.Quizzes(); !ok {
		return &ValidationError{Name: "quizzes", err: errors.New(`ent: missing required field "QuizProgression.quizzes"`)}
	}
	if _, ok := _c.mutation.Rationale(); !ok {
		return &ValidationError{Name: "rationale", err: errors.New(`ent: missing required field "QuizProgression.rationale"`)}
	}
	if _, ok := _c.mutation.CelebrationTitle(); !ok {
		return &ValidationError{Name: "celebration_title", err: errors.New(`ent: missing required field "QuizProgression.celebration_title"`)}
	}
	if _, ok := _c.mutation.CelebrationMessage(); !ok {
		return &ValidationError{Name: "celebration_message", err: errors.New(`ent: missing required field "QuizProgression.celebration_message"`)}
	}
	if _, ok := _c.mutation.MotivationalQuote(); !ok {
		return &ValidationError{Name: "motivational_quote", err: errors.New(`ent: missing required field "QuizProgression.motivational_quote"`)}
	}
	return nil
}

func (_c *QuizProgressionCreate) sqlSave(ctx context.Context) (*QuizProgression, error) {
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

func (_c *QuizProgressionCreate) createSpec() (*QuizProgression, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizProgression{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizprogression.Table, sqlgraph.NewFieldSpec(quizprogression.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(quizprogression.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SkillID(); ok {
		_spec.SetField(quizprogression.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(quizprogression.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.GeneratedAt(); ok {
		_spec.SetField(quizprogression.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = value
	}
	if value, ok := _c.mutation.Quizzes(); ok {
		_spec.SetField(quizprogression.FieldQuizzes, field.TypeJSON, value)
		_node.Quizzes = value
	}
	if value, ok := _c.mutation.Rationale(); ok {
		_spec.SetField(quizprogression.FieldRationale, field.TypeString, value)
		_node.Rationale = value
	}
	if value, ok := _c.mutation.CelebrationTitle(); ok {
		_spec.SetField(quizprogression.FieldCelebrationTitle, field.TypeString, value)
		_node.CelebrationTitle = value
	}
	if value, ok := _c.mutation.CelebrationMessage(); ok {
		_spec.SetField(quizprogression.FieldCelebrationMessage, field.TypeString, value)
		_node.CelebrationMessage = value
	}
	if value, ok := _c.mutation.MotivationalQuote(); ok {
		_spec.SetField(quizprogression.FieldMotivationalQuote, field.TypeString, value)
		_node.MotivationalQuote = value
	}
	return _node, _spec
}

// QuizProgressionCreateBulk is the builder for creating many QuizProgression entities in bulk.
type QuizProgressionCreateBulk struct {
	config
	err      error
	builders []*QuizProgressionCreate
}

// Save creates the QuizProgression entities in the database.
func (_c *QuizProgressionCreateBulk) Save(ctx context.Context) ([]*QuizProgression, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizProgression, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizProgressionMutation)
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
func (_c *QuizProgressionCreateBulk) SaveX(ctx context.Context) []*QuizProgression {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizProgressionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizProgressionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
