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
	"github.com/medorahq/medora_backend/internal/repo/assistant"
)

// AssistantCreate is the builder for creating a Assistant entity.
type AssistantCreate struct {
	config
	mutation *AssistantMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *AssistantCreate) SetCreatedAt(v time.Time) *AssistantCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AssistantCreate) SetNillableCreatedAt(v *time.Time) *AssistantCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AssistantCreate) SetUpdatedAt(v time.Time) *AssistantCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AssistantCreate) SetNillableUpdatedAt(v *time.Time) *AssistantCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *AssistantCreate) SetDeletedAt(v time.Time) *AssistantCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *AssistantCreate) SetNillableDeletedAt(v *time.Time) *AssistantCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *AssistantCreate) SetClinicID(v uuid.UUID) *AssistantCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AssistantCreate) SetUserID(v uuid.UUID) *AssistantCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *AssistantCreate) SetNillableUserID(v *uuid.UUID) *AssistantCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *AssistantCreate) SetFirstName(v string) *AssistantCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *AssistantCreate) SetLastName(v string) *AssistantCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *AssistantCreate) SetTitle(v string) *AssistantCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *AssistantCreate) SetNillableTitle(v *string) *AssistantCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *AssistantCreate) SetPhone(v string) *AssistantCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *AssistantCreate) SetNillablePhone(v *string) *AssistantCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *AssistantCreate) SetIsActive(v bool) *AssistantCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *AssistantCreate) SetNillableIsActive(v *bool) *AssistantCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AssistantCreate) SetID(v uuid.UUID) *AssistantCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AssistantCreate) SetNillableID(v *uuid.UUID) *AssistantCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the AssistantMutation object of the builder.
func (_c *AssistantCreate) Mutation() *AssistantMutation {
	return _c.mutation
}

// Save creates the Assistant in the database.
func (_c *AssistantCreate) Save(ctx context.Context) (*Assistant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssistantCreate) SaveX(ctx context.Context) *Assistant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssistantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssistantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssistantCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := assistant.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := assistant.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := assistant.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := assistant.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssistantCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Assistant.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Assistant.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "Assistant.clinic_id"`)}
	}
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`repo: missing required field "Assistant.first_name"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := assistant.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Assistant.first_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastName(); !ok {
		return &ValidationError{Name: "last_name", err: errors.New(`repo: missing required field "Assistant.last_name"`)}
	}
	if v, ok := _c.mutation.LastName(); ok {
		if err := assistant.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Assistant.last_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := assistant.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Assistant.title": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := assistant.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Assistant.phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "Assistant.is_active"`)}
	}
	return nil
}

func (_c *AssistantCreate) sqlSave(ctx context.Context) (*Assistant, error) {
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

func (_c *AssistantCreate) createSpec() (*Assistant, *sqlgraph.CreateSpec) {
	var (
		_node = &Assistant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assistant.Table, sqlgraph.NewFieldSpec(assistant.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(assistant.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(assistant.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(assistant.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(assistant.FieldClinicID, field.TypeUUID, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(assistant.FieldUserID, field.TypeUUID, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(assistant.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(assistant.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(assistant.FieldTitle, field.TypeString, value)
		_node.Title = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(assistant.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(assistant.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// AssistantCreateBulk is the builder for creating many Assistant entities in bulk.
type AssistantCreateBulk struct {
	config
	err      error
	builders []*AssistantCreate
}

// Save creates the Assistant entities in the database.
func (_c *AssistantCreateBulk) Save(ctx context.Context) ([]*Assistant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Assistant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssistantMutation)
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
func (_c *AssistantCreateBulk) SaveX(ctx context.Context) []*Assistant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssistantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssistantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
