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
	"github.com/medorahq/medora_backend/internal/repo/clinic"
)

// ClinicCreate is the builder for creating a Clinic entity.
type ClinicCreate struct {
	config
	mutation *ClinicMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClinicCreate) SetCreatedAt(v time.Time) *ClinicCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableCreatedAt(v *time.Time) *ClinicCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClinicCreate) SetUpdatedAt(v time.Time) *ClinicCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableUpdatedAt(v *time.Time) *ClinicCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ClinicCreate) SetDeletedAt(v time.Time) *ClinicCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableDeletedAt(v *time.Time) *ClinicCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *ClinicCreate) SetName(v string) *ClinicCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *ClinicCreate) SetTimezone(v string) *ClinicCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableTimezone(v *string) *ClinicCreate {
	if v != nil {
		_c.SetTimezone(*v)
	}
	return _c
}

// SetPlan sets the "plan" field.
func (_c *ClinicCreate) SetPlan(v string) *ClinicCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// SetNillablePlan sets the "plan" field if the given value is not nil.
func (_c *ClinicCreate) SetNillablePlan(v *string) *ClinicCreate {
	if v != nil {
		_c.SetPlan(*v)
	}
	return _c
}

// SetPlanStatus sets the "plan_status" field.
func (_c *ClinicCreate) SetPlanStatus(v clinic.PlanStatus) *ClinicCreate {
	_c.mutation.SetPlanStatus(v)
	return _c
}

// SetNillablePlanStatus sets the "plan_status" field if the given value is not nil.
func (_c *ClinicCreate) SetNillablePlanStatus(v *clinic.PlanStatus) *ClinicCreate {
	if v != nil {
		_c.SetPlanStatus(*v)
	}
	return _c
}

// SetPlanUntil sets the "plan_until" field.
func (_c *ClinicCreate) SetPlanUntil(v time.Time) *ClinicCreate {
	_c.mutation.SetPlanUntil(v)
	return _c
}

// SetNillablePlanUntil sets the "plan_until" field if the given value is not nil.
func (_c *ClinicCreate) SetNillablePlanUntil(v *time.Time) *ClinicCreate {
	if v != nil {
		_c.SetPlanUntil(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ClinicCreate) SetIsActive(v bool) *ClinicCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableIsActive(v *bool) *ClinicCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClinicCreate) SetID(v uuid.UUID) *ClinicCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableID(v *uuid.UUID) *ClinicCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ClinicMutation object of the builder.
func (_c *ClinicCreate) Mutation() *ClinicMutation {
	return _c.mutation
}

// Save creates the Clinic in the database.
func (_c *ClinicCreate) Save(ctx context.Context) (*Clinic, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClinicCreate) SaveX(ctx context.Context) *Clinic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClinicCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clinic.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := clinic.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		v := clinic.DefaultTimezone
		_c.mutation.SetTimezone(v)
	}
	if _, ok := _c.mutation.Plan(); !ok {
		v := clinic.DefaultPlan
		_c.mutation.SetPlan(v)
	}
	if _, ok := _c.mutation.PlanStatus(); !ok {
		v := clinic.DefaultPlanStatus
		_c.mutation.SetPlanStatus(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := clinic.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := clinic.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClinicCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Clinic.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Clinic.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Clinic.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := clinic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Clinic.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`repo: missing required field "Clinic.timezone"`)}
	}
	if v, ok := _c.mutation.Timezone(); ok {
		if err := clinic.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "Clinic.timezone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Plan(); !ok {
		return &ValidationError{Name: "plan", err: errors.New(`repo: missing required field "Clinic.plan"`)}
	}
	if v, ok := _c.mutation.Plan(); ok {
		if err := clinic.PlanValidator(v); err != nil {
			return &ValidationError{Name: "plan", err: fmt.Errorf(`repo: validator failed for field "Clinic.plan": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PlanStatus(); !ok {
		return &ValidationError{Name: "plan_status", err: errors.New(`repo: missing required field "Clinic.plan_status"`)}
	}
	if v, ok := _c.mutation.PlanStatus(); ok {
		if err := clinic.PlanStatusValidator(v); err != nil {
			return &ValidationError{Name: "plan_status", err: fmt.Errorf(`repo: validator failed for field "Clinic.plan_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "Clinic.is_active"`)}
	}
	return nil
}

func (_c *ClinicCreate) sqlSave(ctx context.Context) (*Clinic, error) {
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

func (_c *ClinicCreate) createSpec() (*Clinic, *sqlgraph.CreateSpec) {
	var (
		_node = &Clinic{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clinic.Table, sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clinic.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(clinic.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(clinic.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(clinic.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(clinic.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(clinic.FieldPlan, field.TypeString, value)
		_node.Plan = value
	}
	if value, ok := _c.mutation.PlanStatus(); ok {
		_spec.SetField(clinic.FieldPlanStatus, field.TypeEnum, value)
		_node.PlanStatus = value
	}
	if value, ok := _c.mutation.PlanUntil(); ok {
		_spec.SetField(clinic.FieldPlanUntil, field.TypeTime, value)
		_node.PlanUntil = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(clinic.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// ClinicCreateBulk is the builder for creating many Clinic entities in bulk.
type ClinicCreateBulk struct {
	config
	err      error
	builders []*ClinicCreate
}

// Save creates the Clinic entities in the database.
func (_c *ClinicCreateBulk) Save(ctx context.Context) ([]*Clinic, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Clinic, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClinicMutation)
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
func (_c *ClinicCreateBulk) SaveX(ctx context.Context) []*Clinic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
