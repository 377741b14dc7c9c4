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
	"github.com/medorahq/medora_backend/internal/repo/weeklyslot"
)

// WeeklySlotCreate is the builder for creating a WeeklySlot entity.
type WeeklySlotCreate struct {
	config
	mutation *WeeklySlotMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *WeeklySlotCreate) SetCreatedAt(v time.Time) *WeeklySlotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WeeklySlotCreate) SetNillableCreatedAt(v *time.Time) *WeeklySlotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WeeklySlotCreate) SetUpdatedAt(v time.Time) *WeeklySlotCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WeeklySlotCreate) SetNillableUpdatedAt(v *time.Time) *WeeklySlotCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *WeeklySlotCreate) SetClinicID(v uuid.UUID) *WeeklySlotCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *WeeklySlotCreate) SetDoctorID(v uuid.UUID) *WeeklySlotCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetWeekday sets the "weekday" field.
func (_c *WeeklySlotCreate) SetWeekday(v int8) *WeeklySlotCreate {
	_c.mutation.SetWeekday(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *WeeklySlotCreate) SetStartTime(v string) *WeeklySlotCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *WeeklySlotCreate) SetEndTime(v string) *WeeklySlotCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetDurationMin sets the "duration_min" field.
func (_c *WeeklySlotCreate) SetDurationMin(v int) *WeeklySlotCreate {
	_c.mutation.SetDurationMin(v)
	return _c
}

// SetNillableDurationMin sets the "duration_min" field if the given value is not nil.
func (_c *WeeklySlotCreate) SetNillableDurationMin(v *int) *WeeklySlotCreate {
	if v != nil {
		_c.SetDurationMin(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *WeeklySlotCreate) SetIsActive(v bool) *WeeklySlotCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *WeeklySlotCreate) SetNillableIsActive(v *bool) *WeeklySlotCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WeeklySlotCreate) SetID(v uuid.UUID) *WeeklySlotCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WeeklySlotCreate) SetNillableID(v *uuid.UUID) *WeeklySlotCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the WeeklySlotMutation object of the builder.
func (_c *WeeklySlotCreate) Mutation() *WeeklySlotMutation {
	return _c.mutation
}

// Save creates the WeeklySlot in the database.
func (_c *WeeklySlotCreate) Save(ctx context.Context) (*WeeklySlot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WeeklySlotCreate) SaveX(ctx context.Context) *WeeklySlot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeeklySlotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeeklySlotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WeeklySlotCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := weeklyslot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := weeklyslot.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.DurationMin(); !ok {
		v := weeklyslot.DefaultDurationMin
		_c.mutation.SetDurationMin(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := weeklyslot.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := weeklyslot.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WeeklySlotCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "WeeklySlot.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "WeeklySlot.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "WeeklySlot.clinic_id"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "WeeklySlot.doctor_id"`)}
	}
	if _, ok := _c.mutation.Weekday(); !ok {
		return &ValidationError{Name: "weekday", err: errors.New(`repo: missing required field "WeeklySlot.weekday"`)}
	}
	if v, ok := _c.mutation.Weekday(); ok {
		if err := weeklyslot.WeekdayValidator(v); err != nil {
			return &ValidationError{Name: "weekday", err: fmt.Errorf(`repo: validator failed for field "WeeklySlot.weekday": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`repo: missing required field "WeeklySlot.start_time"`)}
	}
	if v, ok := _c.mutation.StartTime(); ok {
		if err := weeklyslot.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "WeeklySlot.start_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`repo: missing required field "WeeklySlot.end_time"`)}
	}
	if v, ok := _c.mutation.EndTime(); ok {
		if err := weeklyslot.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "WeeklySlot.end_time": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMin(); !ok {
		return &ValidationError{Name: "duration_min", err: errors.New(`repo: missing required field "WeeklySlot.duration_min"`)}
	}
	if v, ok := _c.mutation.DurationMin(); ok {
		if err := weeklyslot.DurationMinValidator(v); err != nil {
			return &ValidationError{Name: "duration_min", err: fmt.Errorf(`repo: validator failed for field "WeeklySlot.duration_min": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "WeeklySlot.is_active"`)}
	}
	return nil
}

func (_c *WeeklySlotCreate) sqlSave(ctx context.Context) (*WeeklySlot, error) {
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

func (_c *WeeklySlotCreate) createSpec() (*WeeklySlot, *sqlgraph.CreateSpec) {
	var (
		_node = &WeeklySlot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(weeklyslot.Table, sqlgraph.NewFieldSpec(weeklyslot.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(weeklyslot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(weeklyslot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(weeklyslot.FieldClinicID, field.TypeUUID, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(weeklyslot.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.Weekday(); ok {
		_spec.SetField(weeklyslot.FieldWeekday, field.TypeInt8, value)
		_node.Weekday = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(weeklyslot.FieldStartTime, field.TypeString, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(weeklyslot.FieldEndTime, field.TypeString, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.DurationMin(); ok {
		_spec.SetField(weeklyslot.FieldDurationMin, field.TypeInt, value)
		_node.DurationMin = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(weeklyslot.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// WeeklySlotCreateBulk is the builder for creating many WeeklySlot entities in bulk.
type WeeklySlotCreateBulk struct {
	config
	err      error
	builders []*WeeklySlotCreate
}

// Save creates the WeeklySlot entities in the database.
func (_c *WeeklySlotCreateBulk) Save(ctx context.Context) ([]*WeeklySlot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WeeklySlot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WeeklySlotMutation)
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
func (_c *WeeklySlotCreateBulk) SaveX(ctx context.Context) []*WeeklySlot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeeklySlotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeeklySlotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
