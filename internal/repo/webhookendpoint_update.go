// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/medorahq/medora_backend/internal/repo/predicate"
	"github.com/medorahq/medora_backend/internal/repo/webhookendpoint"
)

// WebhookEndpointUpdate is the builder for updating WebhookEndpoint entities.
type WebhookEndpointUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookEndpointMutation
}

// Where appends a list predicates to the WebhookEndpointUpdate builder.
func (_u *WebhookEndpointUpdate) Where(ps ...predicate.WebhookEndpoint) *WebhookEndpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WebhookEndpointUpdate) SetUpdatedAt(v time.Time) *WebhookEndpointUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *WebhookEndpointUpdate) SetClinicID(v uuid.UUID) *WebhookEndpointUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableClinicID(v *uuid.UUID) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *WebhookEndpointUpdate) SetURL(v string) *WebhookEndpointUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableURL(v *string) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetSecret sets the "secret" field.
func (_u *WebhookEndpointUpdate) SetSecret(v string) *WebhookEndpointUpdate {
	_u.mutation.SetSecret(v)
	return _u
}

// SetNillableSecret sets the "secret" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableSecret(v *string) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetSecret(*v)
	}
	return _u
}

// SetEvents sets the "events" field.
func (_u *WebhookEndpointUpdate) SetEvents(v []string) *WebhookEndpointUpdate {
	_u.mutation.SetEvents(v)
	return _u
}

// AppendEvents appends value to the "events" field.
func (_u *WebhookEndpointUpdate) AppendEvents(v []string) *WebhookEndpointUpdate {
	_u.mutation.AppendEvents(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *WebhookEndpointUpdate) SetIsActive(v bool) *WebhookEndpointUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableIsActive(v *bool) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetFailureCount sets the "failure_count" field.
func (_u *WebhookEndpointUpdate) SetFailureCount(v int) *WebhookEndpointUpdate {
	_u.mutation.ResetFailureCount()
	_u.mutation.SetFailureCount(v)
	return _u
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableFailureCount(v *int) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetFailureCount(*v)
	}
	return _u
}

// AddFailureCount adds value to the "failure_count" field.
func (_u *WebhookEndpointUpdate) AddFailureCount(v int) *WebhookEndpointUpdate {
	_u.mutation.AddFailureCount(v)
	return _u
}

// SetLastSuccessAt sets the "last_success_at" field.
func (_u *WebhookEndpointUpdate) SetLastSuccessAt(v time.Time) *WebhookEndpointUpdate {
	_u.mutation.SetLastSuccessAt(v)
	return _u
}

// SetNillableLastSuccessAt sets the "last_success_at" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableLastSuccessAt(v *time.Time) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetLastSuccessAt(*v)
	}
	return _u
}

// ClearLastSuccessAt clears the value of the "last_success_at" field.
func (_u *WebhookEndpointUpdate) ClearLastSuccessAt() *WebhookEndpointUpdate {
	_u.mutation.ClearLastSuccessAt()
	return _u
}

// SetLastFailureAt sets the "last_failure_at" field.
func (_u *WebhookEndpointUpdate) SetLastFailureAt(v time.Time) *WebhookEndpointUpdate {
	_u.mutation.SetLastFailureAt(v)
	return _u
}

// SetNillableLastFailureAt sets the "last_failure_at" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableLastFailureAt(v *time.Time) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetLastFailureAt(*v)
	}
	return _u
}

// ClearLastFailureAt clears the value of the "last_failure_at" field.
func (_u *WebhookEndpointUpdate) ClearLastFailureAt() *WebhookEndpointUpdate {
	_u.mutation.ClearLastFailureAt()
	return _u
}

// Mutation returns the WebhookEndpointMutation object of the builder.
func (_u *WebhookEndpointUpdate) Mutation() *WebhookEndpointMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookEndpointUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookEndpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookEndpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookEndpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WebhookEndpointUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := webhookendpoint.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookEndpointUpdate) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := webhookendpoint.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`repo: validator failed for field "WebhookEndpoint.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Secret(); ok {
		if err := webhookendpoint.SecretValidator(v); err != nil {
			return &ValidationError{Name: "secret", err: fmt.Errorf(`repo: validator failed for field "WebhookEndpoint.secret": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailureCount(); ok {
		if err := webhookendpoint.FailureCountValidator(v); err != nil {
			return &ValidationError{Name: "failure_count", err: fmt.Errorf(`repo: validator failed for field "WebhookEndpoint.failure_count": %w`, err)}
		}
	}
	return nil
}

func (_u *WebhookEndpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookendpoint.Table, webhookendpoint.Columns, sqlgraph.NewFieldSpec(webhookendpoint.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(webhookendpoint.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(webhookendpoint.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(webhookendpoint.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Secret(); ok {
		_spec.SetField(webhookendpoint.FieldSecret, field.TypeString, value)
	}
	if value, ok := _u.mutation.Events(); ok {
		_spec.SetField(webhookendpoint.FieldEvents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, webhookendpoint.FieldEvents, value)
		})
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(webhookendpoint.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FailureCount(); ok {
		_spec.SetField(webhookendpoint.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailureCount(); ok {
		_spec.AddField(webhookendpoint.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSuccessAt(); ok {
		_spec.SetField(webhookendpoint.FieldLastSuccessAt, field.TypeTime, value)
	}
	if _u.mutation.LastSuccessAtCleared() {
		_spec.ClearField(webhookendpoint.FieldLastSuccessAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastFailureAt(); ok {
		_spec.SetField(webhookendpoint.FieldLastFailureAt, field.TypeTime, value)
	}
	if _u.mutation.LastFailureAtCleared() {
		_spec.ClearField(webhookendpoint.FieldLastFailureAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookendpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookEndpointUpdateOne is the builder for updating a single WebhookEndpoint entity.
type WebhookEndpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookEndpointMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WebhookEndpointUpdateOne) SetUpdatedAt(v time.Time) *WebhookEndpointUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *WebhookEndpointUpdateOne) SetClinicID(v uuid.UUID) *WebhookEndpointUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableClinicID(v *uuid.UUID) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetURL sets the "url" field.
func (_u *WebhookEndpointUpdateOne) SetURL(v string) *WebhookEndpointUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableURL(v *string) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetSecret sets the "secret" field.
func (_u *WebhookEndpointUpdateOne) SetSecret(v string) *WebhookEndpointUpdateOne {
	_u.mutation.SetSecret(v)
	return _u
}

// SetNillableSecret sets the "secret" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableSecret(v *string) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetSecret(*v)
	}
	return _u
}

// SetEvents sets the "events" field.
func (_u *WebhookEndpointUpdateOne) SetEvents(v []string) *WebhookEndpointUpdateOne {
	_u.mutation.SetEvents(v)
	return _u
}

// AppendEvents appends value to the "events" field.
func (_u *WebhookEndpointUpdateOne) AppendEvents(v []string) *WebhookEndpointUpdateOne {
	_u.mutation.AppendEvents(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *WebhookEndpointUpdateOne) SetIsActive(v bool) *WebhookEndpointUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableIsActive(v *bool) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetFailureCount sets the "failure_count" field.
func (_u *WebhookEndpointUpdateOne) SetFailureCount(v int) *WebhookEndpointUpdateOne {
	_u.mutation.ResetFailureCount()
	_u.mutation.SetFailureCount(v)
	return _u
}

// SetNillableFailureCount sets the "failure_count" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableFailureCount(v *int) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetFailureCount(*v)
	}
	return _u
}

// AddFailureCount adds value to the "failure_count" field.
func (_u *WebhookEndpointUpdateOne) AddFailureCount(v int) *WebhookEndpointUpdateOne {
	_u.mutation.AddFailureCount(v)
	return _u
}

// SetLastSuccessAt sets the "last_success_at" field.
func (_u *WebhookEndpointUpdateOne) SetLastSuccessAt(v time.Time) *WebhookEndpointUpdateOne {
	_u.mutation.SetLastSuccessAt(v)
	return _u
}

// SetNillableLastSuccessAt sets the "last_success_at" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableLastSuccessAt(v *time.Time) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetLastSuccessAt(*v)
	}
	return _u
}

// ClearLastSuccessAt clears the value of the "last_success_at" field.
func (_u *WebhookEndpointUpdateOne) ClearLastSuccessAt() *WebhookEndpointUpdateOne {
	_u.mutation.ClearLastSuccessAt()
	return _u
}

// SetLastFailureAt sets the "last_failure_at" field.
func (_u *WebhookEndpointUpdateOne) SetLastFailureAt(v time.Time) *WebhookEndpointUpdateOne {
	_u.mutation.SetLastFailureAt(v)
	return _u
}

// SetNillableLastFailureAt sets the "last_failure_at" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableLastFailureAt(v *time.Time) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetLastFailureAt(*v)
	}
	return _u
}

// ClearLastFailureAt clears the value of the "last_failure_at" field.
func (_u *WebhookEndpointUpdateOne) ClearLastFailureAt() *WebhookEndpointUpdateOne {
	_u.mutation.ClearLastFailureAt()
	return _u
}

// Mutation returns the WebhookEndpointMutation object of the builder.
func (_u *WebhookEndpointUpdateOne) Mutation() *WebhookEndpointMutation {
	return _u.mutation
}

// Where appends a list predicates to the WebhookEndpointUpdate builder.
func (_u *WebhookEndpointUpdateOne) Where(ps ...predicate.WebhookEndpoint) *WebhookEndpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookEndpointUpdateOne) Select(field string, fields ...string) *WebhookEndpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WebhookEndpoint entity.
func (_u *WebhookEndpointUpdateOne) Save(ctx context.Context) (*WebhookEndpoint, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookEndpointUpdateOne) SaveX(ctx context.Context) *WebhookEndpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookEndpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookEndpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WebhookEndpointUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := webhookendpoint.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookEndpointUpdateOne) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := webhookendpoint.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`repo: validator failed for field "WebhookEndpoint.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Secret(); ok {
		if err := webhookendpoint.SecretValidator(v); err != nil {
			return &ValidationError{Name: "secret", err: fmt.Errorf(`repo: validator failed for field "WebhookEndpoint.secret": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailureCount(); ok {
		if err := webhookendpoint.FailureCountValidator(v); err != nil {
			return &ValidationError{Name: "failure_count", err: fmt.Errorf(`repo: validator failed for field "WebhookEndpoint.failure_count": %w`, err)}
		}
	}
	return nil
}

func (_u *WebhookEndpointUpdateOne) sqlSave(ctx context.Context) (_node *WebhookEndpoint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookendpoint.Table, webhookendpoint.Columns, sqlgraph.NewFieldSpec(webhookendpoint.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "WebhookEndpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhookendpoint.FieldID)
		for _, f := range fields {
			if !webhookendpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != webhookendpoint.FieldID {
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
		_spec.SetField(webhookendpoint.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(webhookendpoint.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(webhookendpoint.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Secret(); ok {
		_spec.SetField(webhookendpoint.FieldSecret, field.TypeString, value)
	}
	if value, ok := _u.mutation.Events(); ok {
		_spec.SetField(webhookendpoint.FieldEvents, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEvents(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, webhookendpoint.FieldEvents, value)
		})
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(webhookendpoint.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FailureCount(); ok {
		_spec.SetField(webhookendpoint.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailureCount(); ok {
		_spec.AddField(webhookendpoint.FieldFailureCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSuccessAt(); ok {
		_spec.SetField(webhookendpoint.FieldLastSuccessAt, field.TypeTime, value)
	}
	if _u.mutation.LastSuccessAtCleared() {
		_spec.ClearField(webhookendpoint.FieldLastSuccessAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastFailureAt(); ok {
		_spec.SetField(webhookendpoint.FieldLastFailureAt, field.TypeTime, value)
	}
	if _u.mutation.LastFailureAtCleared() {
		_spec.ClearField(webhookendpoint.FieldLastFailureAt, field.TypeTime)
	}
	_node = &WebhookEndpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookendpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
