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
	"github.com/medorahq/medora_backend/internal/repo/webhookendpoint"
)

// WebhookEndpointCreate is the builder for creating a WebhookEndpoint entity.
type WebhookEndpointCreate struct {
	config
	mutation *WebhookEndpointMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *WebhookEndpointCreate) SetCreatedAt(v time.Time) *WebhookEndpointCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableCreatedAt(v *time.Time) *WebhookEndpointCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WebhookEndpointCreate) SetUpdatedAt(v time.Time) *WebhookEndpointCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableUpdatedAt(v *time.Time) *WebhookEndpointCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *WebhookEndpointCreate) SetClinicID(v uuid.UUID) *WebhookEndpointCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetURL sets the "url" field.
func (_c *WebhookEndpointCreate) SetURL(v string) *WebhookEndpointCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetSecret sets the "secret" field.
func (_c *WebhookEndpointCreate) SetSecret(v string) *WebhookEndpointCreate {
	_c.mutation.SetSecret(v)
	return _c
}

// SetEvents sets the "events" field.
func (_c *WebhookEndpointCreate) SetEvents(v []string) *WebhookEndpointCreate {
	_c.mutation.SetEvents(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *WebhookEndpointCreate) SetIsActive(v bool) *WebhookEndpointCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableIsActive(v *bool) *WebhookEndpointCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetFailureCount sets the "failure_count" field.
func (_c *WebhookEndpointCreate) SetFailureCount(v int) *WebhookEndpointCreate {
	_c.mutation.SetFailureCount(v)
	return _c
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableFailureCount(v *int) *WebhookEndpointCreate {
	if v != nil {
		_c.SetFailureCount(*v)
	}
	return _c
}

// SetLastSuccessAt sets the "last_success_at" field.
func (_c *WebhookEndpointCreate) SetLastSuccessAt(v time.Time) *WebhookEndpointCreate {
	_c.mutation.SetLastSuccessAt(v)
	return _c
}

// SetNillableLastSuccessAt sets the "last_success_at" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableLastSuccessAt(v *time.Time) *WebhookEndpointCreate {
	if v != nil {
		_c.SetLastSuccessAt(*v)
	}
	return _c
}

// SetLastFailureAt sets the "last_failure_at" field.
func (_c *WebhookEndpointCreate) SetLastFailureAt(v time.Time) *WebhookEndpointCreate {
	_c.mutation.SetLastFailureAt(v)
	return _c
}

// SetNillableLastFailureAt sets the "last_failure_at" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableLastFailureAt(v *time.Time) *WebhookEndpointCreate {
	if v != nil {
		_c.SetLastFailureAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WebhookEndpointCreate) SetID(v uuid.UUID) *WebhookEndpointCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WebhookEndpointCreate) SetNillableID(v *uuid.UUID) *WebhookEndpointCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the WebhookEndpointMutation object of the builder.
func (_c *WebhookEndpointCreate) Mutation() *WebhookEndpointMutation {
	return _c.mutation
}

// Save creates the WebhookEndpoint in the database.
func (_c *WebhookEndpointCreate) Save(ctx context.Context) (*WebhookEndpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WebhookEndpointCreate) SaveX(ctx context.Context) *WebhookEndpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookEndpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookEndpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WebhookEndpointCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := webhookendpoint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := webhookendpoint.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := webhookendpoint.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.FailureCount(); !ok {
		v := webhookendpoint.DefaultFailureCount
		_c.mutation.SetFailureCount(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := webhookendpoint.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WebhookEndpointCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "WebhookEndpoint.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "WebhookEndpoint.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "WebhookEndpoint.clinic_id"`)}
	}
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`repo: missing required field "WebhookEndpoint.url"`)}
	}
	if v, ok := _c.mutation.URL(); ok {
		if err := webhookendpoint.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`repo: validator failed for field "WebhookEndpoint.url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Secret(); !ok {
		return &ValidationError{Name: "secret", err: errors.New(`repo: missing required field "WebhookEndpoint.secret"`)}
	}
	if v, ok := _c.mutation.Secret(); ok {
		if err := webhookendpoint.SecretValidator(v); err != nil {
			return &ValidationError{Name: "secret", err: fmt.Errorf(`repo: validator failed for field "WebhookEndpoint.secret": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Events(); !ok {
		return &ValidationError{Name: "events", err: errors.New(`repo: missing required field "WebhookEndpoint.events"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "WebhookEndpoint.is_active"`)}
	}
	if _, ok := _c.mutation.FailureCount(); !ok {
		return &ValidationError{Name: "failure_count", err: errors.New(`repo: missing required field "WebhookEndpoint.failure_count"`)}
	}
	if v, ok := _c.mutation.FailureCount(); ok {
		if err := webhookendpoint.FailureCountValidator(v); err != nil {
			return &ValidationError{Name: "failure_count", err: fmt.Errorf(`repo: validator failed for field "WebhookEndpoint.failure_count": %w`, err)}
		}
	}
	return nil
}

func (_c *WebhookEndpointCreate) sqlSave(ctx context.Context) (*WebhookEndpoint, error) {
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

func (_c *WebhookEndpointCreate) createSpec() (*WebhookEndpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &WebhookEndpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(webhookendpoint.Table, sqlgraph.NewFieldSpec(webhookendpoint.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(webhookendpoint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(webhookendpoint.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(webhookendpoint.FieldClinicID, field.TypeUUID, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(webhookendpoint.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Secret(); ok {
		_spec.SetField(webhookendpoint.FieldSecret, field.TypeString, value)
		_node.Secret = value
	}
	if value, ok := _c.mutation.Events(); ok {
		_spec.SetField(webhookendpoint.FieldEvents, field.TypeJSON, value)
		_node.Events = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(webhookendpoint.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.FailureCount(); ok {
		_spec.SetField(webhookendpoint.FieldFailureCount, field.TypeInt, value)
		_node.FailureCount = value
	}
	if value, ok := _c.mutation.LastSuccessAt(); ok {
		_spec.SetField(webhookendpoint.FieldLastSuccessAt, field.TypeTime, value)
		_node.LastSuccessAt = &value
	}
	if value, ok := _c.mutation.LastFailureAt(); ok {
		_spec.SetField(webhookendpoint.FieldLastFailureAt, field.TypeTime, value)
		_node.LastFailureAt = &value
	}
	return _node, _spec
}

// WebhookEndpointCreateBulk is the builder for creating many WebhookEndpoint entities in bulk.
type WebhookEndpointCreateBulk struct {
	config
	err      error
	builders []*WebhookEndpointCreate
}

// Save creates the WebhookEndpoint entities in the database.
func (_c *WebhookEndpointCreateBulk) Save(ctx context.Context) ([]*WebhookEndpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WebhookEndpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WebhookEndpointMutation)
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
func (_c *WebhookEndpointCreateBulk) SaveX(ctx context.Context) []*WebhookEndpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WebhookEndpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WebhookEndpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
