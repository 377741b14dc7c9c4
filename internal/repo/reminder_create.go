// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/medorahq/medora_backend/internal/repo/reminder"
)

// ReminderCreate is the builder for creating a Reminder entity.
type ReminderCreate struct {
	config
	mutation *ReminderMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReminderCreate) SetCreatedAt(v time.Time) *ReminderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReminderCreate) SetNillableCreatedAt(v *time.Time) *ReminderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReminderCreate) SetUpdatedAt(v time.Time) *ReminderCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReminderCreate) SetNillableUpdatedAt(v *time.Time) *ReminderCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *ReminderCreate) SetClinicID(v uuid.UUID) *ReminderCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetAppointmentID sets the "appointment_id" field.
func (_c *ReminderCreate) SetAppointmentID(v uuid.UUID) *ReminderCreate {
	_c.mutation.SetAppointmentID(v)
	return _c
}

// SetRuleID sets the "rule_id" field.
func (_c *ReminderCreate) SetRuleID(v uuid.UUID) *ReminderCreate {
	_c.mutation.SetRuleID(v)
	return _c
}

// SetNillableRuleID sets the "rule_id" field if the given value is not nil.
func (_c *ReminderCreate) SetNillableRuleID(v *uuid.UUID) *ReminderCreate {
	if v != nil {
		_c.SetRuleID(*v)
	}
	return _c
}

// SetChannel sets the "channel" field.
func (_c *ReminderCreate) SetChannel(v reminder.Channel) *ReminderCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetScheduledFor sets the "scheduled_for" field.
func (_c *ReminderCreate) SetScheduledFor(v time.Time) *ReminderCreate {
	_c.mutation.SetScheduledFor(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReminderCreate) SetStatus(v reminder.Status) *ReminderCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ReminderCreate) SetNillableStatus(v *reminder.Status) *ReminderCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *ReminderCreate) SetSentAt(v time.Time) *ReminderCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *ReminderCreate) SetNillableSentAt(v *time.Time) *ReminderCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *ReminderCreate) SetError(v string) *ReminderCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *ReminderCreate) SetNillableError(v *string) *ReminderCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReminderCreate) SetID(v uuid.UUID) *ReminderCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReminderCreate) SetNillableID(v *uuid.UUID) *ReminderCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ReminderMutation object of the builder.
func (_c *ReminderCreate) Mutation() *ReminderMutation {
	return _c.mutation
}

// Save creates the Reminder in the database.
func (_c *ReminderCreate) Save(ctx context.Context) (*Reminder, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReminderCreate) SaveX(ctx context.Context) *Reminder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReminderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReminderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReminderCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reminder.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reminder.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := reminder.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := reminder.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReminderCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Reminder.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Reminder.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "Reminder.clinic_id"`)}
	}
	if _, ok := _c.mutation.AppointmentID(); !ok {
		return &ValidationError{Name: "appointment_id", err: errors.New(`repo: missing required field "Reminder.appointment_id"`)}
	}
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`repo: missing required field "Reminder.channel"`)}
	}
	if v, ok := _c.mutation.Channel(); ok {
		if err := reminder.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`repo: validator failed for field "Reminder.channel": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScheduledFor(); !ok {
		return &ValidationError{Name: "scheduled_for", err: errors.New(`repo: missing required field "Reminder.scheduled_for"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Reminder.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := reminder.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Reminder.status": %w`, err)}
		}
	}
	return nil
}

func (_c *ReminderCreate) sqlSave(ctx context.Context) (*Reminder, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ReminderCreate) createSpec() (*Reminder, *sqlgraph.CreateSpec) {
	var (
		_node = &Reminder{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reminder.Table, sqlgraph.NewFieldSpec(reminder.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reminder.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reminder.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(reminder.FieldClinicID, field.TypeUUID, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.AppointmentID(); ok {
		_spec.SetField(reminder.FieldAppointmentID, field.TypeUUID, value)
		_node.AppointmentID = value
	}
	if value, ok := _c.mutation.RuleID(); ok {
		_spec.SetField(reminder.FieldRuleID, field.TypeUUID, value)
		_node.RuleID = &value
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(reminder.FieldChannel, field.TypeEnum, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.ScheduledFor(); ok {
		_spec.SetField(reminder.FieldScheduledFor, field.TypeTime, value)
		_node.ScheduledFor = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(reminder.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(reminder.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(reminder.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	return _node, _spec
}

// ReminderCreateBulk is the builder for creating many Reminder entities in bulk.
type ReminderCreateBulk struct {
	config
	err      error
	builders []*ReminderCreate
}

// Save creates the Reminder entities in the database.
func (_c *ReminderCreateBulk) Save(ctx context.Context) ([]*Reminder, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Reminder, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReminderMutation)
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
func (_c *ReminderCreateBulk) SaveX(ctx context.Context) []*Reminder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReminderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReminderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
