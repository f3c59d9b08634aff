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
	"github.com/abhisek/skillquest/ent/predicate"
	"github.com/abhisek/skillquest/ent/userprofile"
)

// UserProfileUpdate is the builder for updating UserProfile entities.
type UserProfileUpdate struct {
	config
	hooks    []Hook
	mutation *UserProfileMutation
}

// Where appends a list predicates to the UserProfileUpdate builder.
func (_u *UserProfileUpdate) Where(ps ...predicate.UserProfile) *UserProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTotalPoints sets the "total_points" field.
func (_u *UserProfileUpdate) SetTotalPoints(v int) *UserProfileUpdate {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableTotalPoints(v *int) *UserProfileUpdate {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *UserProfileUpdate) AddTotalPoints(v int) *UserProfileUpdate {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *UserProfileUpdate) SetLevel(v int) *UserProfileUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableLevel(v *int) *UserProfileUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *UserProfileUpdate) AddLevel(v int) *UserProfileUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetLearningStyle sets the "learning_style" field.
func (_u *UserProfileUpdate) SetLearningStyle(v string) *UserProfileUpdate {
	_u.mutation.SetLearningStyle(v)
	return _u
}

// SetNillableLearningStyle sets the "learning_style" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableLearningStyle(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetLearningStyle(*v)
	}
	return _u
}

// SetFavoriteTopics sets the "favorite_topics" field.
func (_u *UserProfileUpdate) SetFavoriteTopics(v []string) *UserProfileUpdate {
	_u.mutation.SetFavoriteTopics(v)
	return _u
}

// AppendFavoriteTopics appends value to the "favorite_topics" field.
func (_u *UserProfileUpdate) AppendFavoriteTopics(v []string) *UserProfileUpdate {
	_u.mutation.AppendFavoriteTopics(v)
	return _u
}

// ClearFavoriteTopics clears the value of the "favorite_topics" field.
func (_u *UserProfileUpdate) ClearFavoriteTopics() *UserProfileUpdate {
	_u.mutation.ClearFavoriteTopics()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *UserProfileUpdate) SetLanguage(v string) *UserProfileUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *UserProfileUpdate) SetNillableLanguage(v *string) *UserProfileUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// Mutation returns the UserProfileMutation object of the builder.
func (_u *UserProfileUpdate) Mutation() *UserProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserProfileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(userprofile.Table, userprofile.Columns, sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(userprofile.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(userprofile.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(userprofile.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(userprofile.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearningStyle(); ok {
		_spec.SetField(userprofile.FieldLearningStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.FavoriteTopics(); ok {
		_spec.SetField(userprofile.FieldFavoriteTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFavoriteTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userprofile.FieldFavoriteTopics, value)
		})
	}
	if _u.mutation.FavoriteTopicsCleared() {
		_spec.ClearField(userprofile.FieldFavoriteTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(userprofile.FieldLanguage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserProfileUpdateOne is the builder for updating a single UserProfile entity.
type UserProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserProfileMutation
}

// SetTotalPoints sets the "total_points" field.
func (_u *UserProfileUpdateOne) SetTotalPoints(v int) *UserProfileUpdateOne {
	_u.mutation.ResetTotalPoints()
	_u.mutation.SetTotalPoints(v)
	return _u
}

// SetNillableTotalPoints sets the "total_points" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableTotalPoints(v *int) *UserProfileUpdateOne {
	if v != nil {
		_u.SetTotalPoints(*v)
	}
	return _u
}

// AddTotalPoints adds value to the "total_points" field.
func (_u *UserProfileUpdateOne) AddTotalPoints(v int) *UserProfileUpdateOne {
	_u.mutation.AddTotalPoints(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *UserProfileUpdateOne) SetLevel(v int) *UserProfileUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableLevel(v *int) *UserProfileUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *UserProfileUpdateOne) AddLevel(v int) *UserProfileUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetLearningStyle sets the "learning_style" field.
func (_u *UserProfileUpdateOne) SetLearningStyle(v string) *UserProfileUpdateOne {
	_u.mutation.SetLearningStyle(v)
	return _u
}

// SetNillableLearningStyle sets the "learning_style" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableLearningStyle(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetLearningStyle(*v)
	}
	return _u
}

// SetFavoriteTopics sets the "favorite_topics" field.
func (_u *UserProfileUpdateOne) SetFavoriteTopics(v []string) *UserProfileUpdateOne {
	_u.mutation.SetFavoriteTopics(v)
	return _u
}

// AppendFavoriteTopics appends value to the "favorite_topics" field.
func (_u *UserProfileUpdateOne) AppendFavoriteTopics(v []string) *UserProfileUpdateOne {
	_u.mutation.AppendFavoriteTopics(v)
	return _u
}

// ClearFavoriteTopics clears the value of the "favorite_topics" field.
func (_u *UserProfileUpdateOne) ClearFavoriteTopics() *UserProfileUpdateOne {
	_u.mutation.ClearFavoriteTopics()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *UserProfileUpdateOne) SetLanguage(v string) *UserProfileUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *UserProfileUpdateOne) SetNillableLanguage(v *string) *UserProfileUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// Mutation returns the UserProfileMutation object of the builder.
func (_u *UserProfileUpdateOne) Mutation() *UserProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserProfileUpdate builder.
func (_u *UserProfileUpdateOne) Where(ps ...predicate.UserProfile) *UserProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserProfileUpdateOne) Select(field string, fields ...string) *UserProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UserProfile entity.
func (_u *UserProfileUpdateOne) Save(ctx context.Context) (*UserProfile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserProfileUpdateOne) SaveX(ctx context.Context) *UserProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *UserProfileUpdateOne) sqlSave(ctx context.Context) (_node *UserProfile, err error) {
	_spec := sqlgraph.NewUpdateSpec(userprofile.Table, userprofile.Columns, sqlgraph.NewFieldSpec(userprofile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UserProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, userprofile.FieldID)
		for _, f := range fields {
			if !userprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != userprofile.FieldID {
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
	if value, ok := _u.mutation.TotalPoints(); ok {
		_spec.SetField(userprofile.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalPoints(); ok {
		_spec.AddField(userprofile.FieldTotalPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(userprofile.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(userprofile.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearningStyle(); ok {
		_spec.SetField(userprofile.FieldLearningStyle, field.TypeString, value)
	}
	if value, ok := _u.mutation.FavoriteTopics(); ok {
		_spec.SetField(userprofile.FieldFavoriteTopics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFavoriteTopics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, userprofile.FieldFavoriteTopics, value)
		})
	}
	if _u.mutation.FavoriteTopicsCleared() {
		_spec.ClearField(userprofile.FieldFavoriteTopics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(userprofile.FieldLanguage, field.TypeString, value)
	}
	_node = &UserProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{userprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
