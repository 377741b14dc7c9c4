// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/medorahq/medora_backend/internal/repo/predicate"
	"github.com/medorahq/medora_backend/internal/repo/reminderrule"
)

// ReminderRuleUpdate is the builder for updating ReminderRule entities.
type ReminderRuleUpdate struct {
	config
	hooks    []Hook
	mutation *ReminderRuleMutation
}

// Where appends a list predicates to the ReminderRuleUpdate builder.
func (_u *ReminderRuleUpdate) Where(ps ...predicate.ReminderRule) *ReminderRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReminderRuleUpdate) SetUpdatedAt(v time.Time) *ReminderRuleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *ReminderRuleUpdate) SetClinicID(v uuid.UUID) *ReminderRuleUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *ReminderRuleUpdate) SetNillableClinicID(v *uuid.UUID) *ReminderRuleUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetOffsetMin sets the "offset_min" field.
func (_u *ReminderRuleUpdate) SetOffsetMin(v int) *ReminderRuleUpdate {
	_u.mutation.ResetOffsetMin()
	_u.mutation.SetOffsetMin(v)
	return _u
}

// SetNillableOffsetMin sets the "offset_min" field if the given value is not nil.
func (_u *ReminderRuleUpdate) SetNillableOffsetMin(v *int) *ReminderRuleUpdate {
	if v != nil {
		_u.SetOffsetMin(*v)
	}
	return _u
}

// AddOffsetMin adds value to the "offset_min" field.
func (_u *ReminderRuleUpdate) AddOffsetMin(v int) *ReminderRuleUpdate {
	_u.mutation.AddOffsetMin(v)
	return _u
}

// SetChannel sets the "channel" field.
func (_u *ReminderRuleUpdate) SetChannel(v reminderrule.Channel) *ReminderRuleUpdate {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *ReminderRuleUpdate) SetNillableChannel(v *reminderrule.Channel) *ReminderRuleUpdate {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ReminderRuleUpdate) SetIsActive(v bool) *ReminderRuleUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ReminderRuleUpdate) SetNillableIsActive(v *bool) *ReminderRuleUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetTemplate sets the "template" field.
func (_u *ReminderRuleUpdate) SetTemplate(v string) *ReminderRuleUpdate {
	_u.mutation.SetTemplate(v)
	return _u
}

// SetNillableTemplate sets the "template" field if the given value is not nil.
func (_u *ReminderRuleUpdate) SetNillableTemplate(v *string) *ReminderRuleUpdate {
	if v != nil {
		_u.SetTemplate(*v)
	}
	return _u
}

// ClearTemplate clears the value of the "template" field.
func (_u *ReminderRuleUpdate) ClearTemplate() *ReminderRuleUpdate {
	_u.mutation.ClearTemplate()
	return _u
}

// Mutation returns the ReminderRuleMutation object of the builder.
func (_u *ReminderRuleUpdate) Mutation() *ReminderRuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReminderRuleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReminderRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReminderRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReminderRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReminderRuleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reminderrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReminderRuleUpdate) check() error {
	if v, ok := _u.mutation.OffsetMin(); ok {
		if err := reminderrule.OffsetMinValidator(v); err != nil {
			return &ValidationError{Name: "offset_min", err: fmt.Errorf(`repo: validator failed for field "ReminderRule.offset_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Channel(); ok {
		if err := reminderrule.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`repo: validator failed for field "ReminderRule.channel": %w`, err)}
		}
	}
	return nil
}

func (_u *ReminderRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reminderrule.Table, reminderrule.Columns, sqlgraph.NewFieldSpec(reminderrule.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reminderrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(reminderrule.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.OffsetMin(); ok {
		_spec.SetField(reminderrule.FieldOffsetMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOffsetMin(); ok {
		_spec.AddField(reminderrule.FieldOffsetMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(reminderrule.FieldChannel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(reminderrule.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Template(); ok {
		_spec.SetField(reminderrule.FieldTemplate, field.TypeString, value)
	}
	if _u.mutation.TemplateCleared() {
		_spec.ClearField(reminderrule.FieldTemplate, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reminderrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReminderRuleUpdateOne is the builder for updating a single ReminderRule entity.
type ReminderRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReminderRuleMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReminderRuleUpdateOne) SetUpdatedAt(v time.Time) *ReminderRuleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *ReminderRuleUpdateOne) SetClinicID(v uuid.UUID) *ReminderRuleUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *ReminderRuleUpdateOne) SetNillableClinicID(v *uuid.UUID) *ReminderRuleUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetOffsetMin sets the "offset_min" field.
func (_u *ReminderRuleUpdateOne) SetOffsetMin(v int) *ReminderRuleUpdateOne {
	_u.mutation.ResetOffsetMin()
	_u.mutation.SetOffsetMin(v)
	return _u
}

// SetNillableOffsetMin sets the "offset_min" field if the given value is not nil.
func (_u *ReminderRuleUpdateOne) SetNillableOffsetMin(v *int) *ReminderRuleUpdateOne {
	if v != nil {
		_u.SetOffsetMin(*v)
	}
	return _u
}

// AddOffsetMin adds value to the "offset_min" field.
func (_u *ReminderRuleUpdateOne) AddOffsetMin(v int) *ReminderRuleUpdateOne {
	_u.mutation.AddOffsetMin(v)
	return _u
}

// SetChannel sets the "channel" field.
func (_u *ReminderRuleUpdateOne) SetChannel(v reminderrule.Channel) *ReminderRuleUpdateOne {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *ReminderRuleUpdateOne) SetNillableChannel(v *reminderrule.Channel) *ReminderRuleUpdateOne {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ReminderRuleUpdateOne) SetIsActive(v bool) *ReminderRuleUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ReminderRuleUpdateOne) SetNillableIsActive(v *bool) *ReminderRuleUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetTemplate sets the "template" field.
func (_u *ReminderRuleUpdateOne) SetTemplate(v string) *ReminderRuleUpdateOne {
	_u.mutation.SetTemplate(v)
	return _u
}

// SetNillableTemplate sets the "template" field if the given value is not nil.
func (_u *ReminderRuleUpdateOne) SetNillableTemplate(v *string) *ReminderRuleUpdateOne {
	if v != nil {
		_u.SetTemplate(*v)
	}
	return _u
}

// ClearTemplate clears the value of the "template" field.
func (_u *ReminderRuleUpdateOne) ClearTemplate() *ReminderRuleUpdateOne {
	_u.mutation.ClearTemplate()
	return _u
}

// Mutation returns the ReminderRuleMutation object of the builder.
func (_u *ReminderRuleUpdateOne) Mutation() *ReminderRuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReminderRuleUpdate builder.
func (_u *ReminderRuleUpdateOne) Where(ps ...predicate.ReminderRule) *ReminderRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReminderRuleUpdateOne) Select(field string, fields ...string) *ReminderRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReminderRule entity.
func (_u *ReminderRuleUpdateOne) Save(ctx context.Context) (*ReminderRule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReminderRuleUpdateOne) SaveX(ctx context.Context) *ReminderRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReminderRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReminderRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReminderRuleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reminderrule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReminderRuleUpdateOne) check() error {
	if v, ok := _u.mutation.OffsetMin(); ok {
		if err := reminderrule.OffsetMinValidator(v); err != nil {
			return &ValidationError{Name: "offset_min", err: fmt.Errorf(`repo: validator failed for field "ReminderRule.offset_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Channel(); ok {
		if err := reminderrule.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`repo: validator failed for field "ReminderRule.channel": %w`, err)}
		}
	}
	return nil
}

func (_u *ReminderRuleUpdateOne) sqlSave(ctx context.Context) (_node *ReminderRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reminderrule.Table, reminderrule.Columns, sqlgraph.NewFieldSpec(reminderrule.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ReminderRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reminderrule.FieldID)
		for _, f := range fields {
			if !reminderrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != reminderrule.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reminderrule.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(reminderrule.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.OffsetMin(); ok {
		_spec.SetField(reminderrule.FieldOffsetMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOffsetMin(); ok {
		_spec.AddField(reminderrule.FieldOffsetMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(reminderrule.FieldChannel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(reminderrule.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Template(); ok {
		_spec.SetField(reminderrule.FieldTemplate, field.TypeString, value)
	}
	if _u.mutation.TemplateCleared() {
		_spec.ClearField(reminderrule.FieldTemplate, field.TypeString)
	}
	_node = &ReminderRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reminderrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
