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
	"github.com/medorahq/medora_backend/internal/repo/reminderrule"
)

// ReminderRuleCreate is the builder for creating a ReminderRule entity.
type ReminderRuleCreate struct {
	config
	mutation *ReminderRuleMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReminderRuleCreate) SetCreatedAt(v time.Time) *ReminderRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReminderRuleCreate) SetNillableCreatedAt(v *time.Time) *ReminderRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ReminderRuleCreate) SetUpdatedAt(v time.Time) *ReminderRuleCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ReminderRuleCreate) SetNillableUpdatedAt(v *time.Time) *ReminderRuleCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *ReminderRuleCreate) SetClinicID(v uuid.UUID) *ReminderRuleCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetOffsetMin sets the "offset_min" field.
func (_c *ReminderRuleCreate) SetOffsetMin(v int) *ReminderRuleCreate {
	_c.mutation.SetOffsetMin(v)
	return _c
}

// SetChannel sets the "channel" field.
func (_c *ReminderRuleCreate) SetChannel(v reminderrule.Channel) *ReminderRuleCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *ReminderRuleCreate) SetIsActive(v bool) *ReminderRuleCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *ReminderRuleCreate) SetNillableIsActive(v *bool) *ReminderRuleCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetTemplate sets the "template" field.
func (_c *ReminderRuleCreate) SetTemplate(v string) *ReminderRuleCreate {
	_c.mutation.SetTemplate(v)
	return _c
}

// SetNillableTemplate sets the "template" field if the given value is not nil.
func (_c *ReminderRuleCreate) SetNillableTemplate(v *string) *ReminderRuleCreate {
	if v != nil {
		_c.SetTemplate(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ReminderRuleCreate) SetID(v uuid.UUID) *ReminderRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReminderRuleCreate) SetNillableID(v *uuid.UUID) *ReminderRuleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ReminderRuleMutation object of the builder.
func (_c *ReminderRuleCreate) Mutation() *ReminderRuleMutation {
	return _c.mutation
}

// Save creates the ReminderRule in the database.
func (_c *ReminderRuleCreate) Save(ctx context.Context) (*ReminderRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReminderRuleCreate) SaveX(ctx context.Context) *ReminderRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReminderRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReminderRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReminderRuleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reminderrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := reminderrule.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := reminderrule.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := reminderrule.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReminderRuleCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ReminderRule.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ReminderRule.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "ReminderRule.clinic_id"`)}
	}
	if _, ok := _c.mutation.OffsetMin(); !ok {
		return &ValidationError{Name: "offset_min", err: errors.New(`repo: missing required field "ReminderRule.offset_min"`)}
	}
	if v, ok := _c.mutation.OffsetMin(); ok {
		if err := reminderrule.OffsetMinValidator(v); err != nil {
			return &ValidationError{Name: "offset_min", err: fmt.Errorf(`repo: validator failed for field "ReminderRule.offset_min": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`repo: missing required field "ReminderRule.channel"`)}
	}
	if v, ok := _c.mutation.Channel(); ok {
		if err := reminderrule.ChannelValidator(v); err != nil {
			return &ValidationError{Name: "channel", err: fmt.Errorf(`repo: validator failed for field "ReminderRule.channel": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "ReminderRule.is_active"`)}
	}
	return nil
}

func (_c *ReminderRuleCreate) sqlSave(ctx context.Context) (*ReminderRule, error) {
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

func (_c *ReminderRuleCreate) createSpec() (*ReminderRule, *sqlgraph.CreateSpec) {
	var (
		_node = &ReminderRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reminderrule.Table, sqlgraph.NewFieldSpec(reminderrule.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reminderrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(reminderrule.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(reminderrule.FieldClinicID, field.TypeUUID, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.OffsetMin(); ok {
		_spec.SetField(reminderrule.FieldOffsetMin, field.TypeInt, value)
		_node.OffsetMin = value
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(reminderrule.FieldChannel, field.TypeEnum, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(reminderrule.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.Template(); ok {
		_spec.SetField(reminderrule.FieldTemplate, field.TypeString, value)
		_node.Template = &value
	}
	return _node, _spec
}

// ReminderRuleCreateBulk is the builder for creating many ReminderRule entities in bulk.
type ReminderRuleCreateBulk struct {
	config
	err      error
	builders []*ReminderRuleCreate
}

// Save creates the ReminderRule entities in the database.
func (_c *ReminderRuleCreateBulk) Save(ctx context.Context) ([]*ReminderRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReminderRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReminderRuleMutation)
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
func (_c *ReminderRuleCreateBulk) SaveX(ctx context.Context) []*ReminderRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReminderRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReminderRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
