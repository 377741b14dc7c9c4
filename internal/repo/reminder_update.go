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
	"github.com/medorahq/medora_backend/internal/repo/reminder"
)

// ReminderUpdate is the builder for updating Reminder entities.
type ReminderUpdate struct {
	config
	hooks    []Hook
	mutation *ReminderMutation
}

// Where appends a list predicates to the ReminderUpdate builder.
func (_u *ReminderUpdate) Where(ps ...predicate.Reminder) *ReminderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReminderUpdate) SetUpdatedAt(v time.Time) *ReminderUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *ReminderUpdate) SetClinicID(v uuid.UUID) *ReminderUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *ReminderUpdate) SetNillableClinicID(v *uuid.UUID) *ReminderUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *ReminderUpdate) SetAppointmentID(v uuid.UUID) *ReminderUpdate {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *ReminderUpdate) SetNillableAppointmentID(v *uuid.UUID) *ReminderUpdate {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// SetRuleID sets the "rule_id" field.
func (_u *ReminderUpdate) SetRuleID(v uuid.UUID) *ReminderUpdate {
	_u.mutation.SetRuleID(v)
	return _u
}

// SetNillableRuleID sets the "rule_id" field if the given value is not nil.
func (_u *ReminderUpdate) SetNillableRuleID(v *uuid.UUID) *ReminderUpdate {
	if v != nil {
		_u.SetRuleID(*v)
	}
	return _u
}

// ClearRuleID clears the value of the "rule_id" field.
func (_u *ReminderUpdate) ClearRuleID() *ReminderUpdate {
	_u.mutation.ClearRuleID()
	return _u
}

// SetChannel sets the "channel" field.
func (_u *ReminderUpdate) SetChannel(v reminder.Channel) *ReminderUpdate {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *ReminderUpdate) SetNillableChannel(v *reminder.Channel) *ReminderUpdate {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetScheduledFor sets the "scheduled_for" field.
func (_u *ReminderUpdate) SetScheduledFor(v time.Time) *ReminderUpdate {
	_u.mutation.SetScheduledFor(v)
	return _u
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_u *ReminderUpdate) SetNillableScheduledFor(v *time.Time) *ReminderUpdate {
	if v != nil {
		_u.SetScheduledFor(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReminderUpdate) SetStatus(v reminder.Status) *ReminderUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReminderUpdate) SetNillableStatus(v *reminder.Status) *ReminderUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *ReminderUpdate) SetSentAt(v time.Time) *ReminderUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *ReminderUpdate) SetNillableSentAt(v *time.Time) *ReminderUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *ReminderUpdate) ClearSentAt() *ReminderUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// SetError sets the "error" field.
func (_u *ReminderUpdate) SetError(v string) *ReminderUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *ReminderUpdate) SetNillableError(v *string) *ReminderUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ReminderUpdate) ClearError() *ReminderUpdate {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the ReminderMutation object of the builder.
func (_u *ReminderUpdate) Mutation() *ReminderMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReminderUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReminderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReminderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReminderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReminderUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reminder.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReminderUpdate) check() error {
	if v, ok := _u.mutation.Channel(); ok {
		if err := reminder.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`repo: validator failed for field "Reminder.channel": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := reminder.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Reminder.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ReminderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reminder.Table, reminder.Columns, sqlgraph.NewFieldSpec(reminder.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(reminder.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(reminder.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(reminder.FieldAppointmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RuleID(); ok {
		_spec.SetField(reminder.FieldRuleID, field.TypeUUID, value)
	}
	if _u.mutation.RuleIDCleared() {
		_spec.ClearField(reminder.FieldRuleID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(reminder.FieldChannel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledFor(); ok {
		_spec.SetField(reminder.FieldScheduledFor, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reminder.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(reminder.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(reminder.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(reminder.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(reminder.FieldError, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reminder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReminderUpdateOne is the builder for updating a single Reminder entity.
type ReminderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReminderMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ReminderUpdateOne) SetUpdatedAt(v time.Time) *ReminderUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *ReminderUpdateOne) SetClinicID(v uuid.UUID) *ReminderUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *ReminderUpdateOne) SetNillableClinicID(v *uuid.UUID) *ReminderUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetAppointmentID sets the "appointment_id" field.
func (_u *ReminderUpdateOne) SetAppointmentID(v uuid.UUID) *ReminderUpdateOne {
	_u.mutation.SetAppointmentID(v)
	return _u
}

// SetNillableAppointmentID sets the "appointment_id" field if the given value is not nil.
func (_u *ReminderUpdateOne) SetNillableAppointmentID(v *uuid.UUID) *ReminderUpdateOne {
	if v != nil {
		_u.SetAppointmentID(*v)
	}
	return _u
}

// SetRuleID sets the "rule_id" field.
func (_u *ReminderUpdateOne) SetRuleID(v uuid.UUID) *ReminderUpdateOne {
	_u.mutation.SetRuleID(v)
	return _u
}

// SetNillableRuleID sets the "rule_id" field if the given value is not nil.
func (_u *ReminderUpdateOne) SetNillableRuleID(v *uuid.UUID) *ReminderUpdateOne {
	if v != nil {
		_u.SetRuleID(*v)
	}
	return _u
}

// ClearRuleID clears the value of the "rule_id" field.
func (_u *ReminderUpdateOne) ClearRuleID() *ReminderUpdateOne {
	_u.mutation.ClearRuleID()
	return _u
}

// SetChannel sets the "channel" field.
func (_u *ReminderUpdateOne) SetChannel(v reminder.Channel) *ReminderUpdateOne {
	_u.mutation.SetChannel(v)
	return _u
}

// SetNillableChannel sets the "channel" field if the given value is not nil.
func (_u *ReminderUpdateOne) SetNillableChannel(v *reminder.Channel) *ReminderUpdateOne {
	if v != nil {
		_u.SetChannel(*v)
	}
	return _u
}

// SetScheduledFor sets the "scheduled_for" field.
func (_u *ReminderUpdateOne) SetScheduledFor(v time.Time) *ReminderUpdateOne {
	_u.mutation.SetScheduledFor(v)
	return _u
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_u *ReminderUpdateOne) SetNillableScheduledFor(v *time.Time) *ReminderUpdateOne {
	if v != nil {
		_u.SetScheduledFor(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReminderUpdateOne) SetStatus(v reminder.Status) *ReminderUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReminderUpdateOne) SetNillableStatus(v *reminder.Status) *ReminderUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *ReminderUpdateOne) SetSentAt(v time.Time) *ReminderUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *ReminderUpdateOne) SetNillableSentAt(v *time.Time) *ReminderUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *ReminderUpdateOne) ClearSentAt() *ReminderUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// SetError sets the "error" field.
func (_u *ReminderUpdateOne) SetError(v string) *ReminderUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *ReminderUpdateOne) SetNillableError(v *string) *ReminderUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *ReminderUpdateOne) ClearError() *ReminderUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// Mutation returns the ReminderMutation object of the builder.
func (_u *ReminderUpdateOne) Mutation() *ReminderMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReminderUpdate builder.
func (_u *ReminderUpdateOne) Where(ps ...predicate.Reminder) *ReminderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReminderUpdateOne) Select(field string, fields ...string) *ReminderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Reminder entity.
func (_u *ReminderUpdateOne) Save(ctx context.Context) (*Reminder, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReminderUpdateOne) SaveX(ctx context.Context) *Reminder {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReminderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReminderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ReminderUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := reminder.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReminderUpdateOne) check() error {
	if v, ok := _u.mutation.Channel(); ok {
		if err := reminder.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`repo: validator failed for field "Reminder.channel": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := reminder.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Reminder.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ReminderUpdateOne) sqlSave(ctx context.Context) (_node *Reminder, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reminder.Table, reminder.Columns, sqlgraph.NewFieldSpec(reminder.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Reminder.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reminder.FieldID)
		for _, f := range fields {
			if !reminder.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != reminder.FieldID {
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
		_spec.SetField(reminder.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(reminder.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.AppointmentID(); ok {
		_spec.SetField(reminder.FieldAppointmentID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.RuleID(); ok {
		_spec.SetField(reminder.FieldRuleID, field.TypeUUID, value)
	}
	if _u.mutation.RuleIDCleared() {
		_spec.ClearField(reminder.FieldRuleID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Channel(); ok {
		_spec.SetField(reminder.FieldChannel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ScheduledFor(); ok {
		_spec.SetField(reminder.FieldScheduledFor, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(reminder.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(reminder.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(reminder.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(reminder.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(reminder.FieldError, field.TypeString)
	}
	_node = &Reminder{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reminder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
