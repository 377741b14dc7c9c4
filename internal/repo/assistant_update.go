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
	"github.com/medorahq/medora_backend/internal/repo/assistant"
	"github.com/medorahq/medora_backend/internal/repo/predicate"
)

// AssistantUpdate is the builder for updating Assistant entities.
type AssistantUpdate struct {
	config
	hooks    []Hook
	mutation *AssistantMutation
}

// Where appends a list predicates to the AssistantUpdate builder.
func (_u *AssistantUpdate) Where(ps ...predicate.Assistant) *AssistantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssistantUpdate) SetUpdatedAt(v time.Time) *AssistantUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *AssistantUpdate) SetDeletedAt(v time.Time) *AssistantUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *AssistantUpdate) SetNillableDeletedAt(v *time.Time) *AssistantUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *AssistantUpdate) ClearDeletedAt() *AssistantUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *AssistantUpdate) SetClinicID(v uuid.UUID) *AssistantUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *AssistantUpdate) SetNillableClinicID(v *uuid.UUID) *AssistantUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AssistantUpdate) SetUserID(v uuid.UUID) *AssistantUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AssistantUpdate) SetNillableUserID(v *uuid.UUID) *AssistantUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *AssistantUpdate) ClearUserID() *AssistantUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *AssistantUpdate) SetFirstName(v string) *AssistantUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *AssistantUpdate) SetNillableFirstName(v *string) *AssistantUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *AssistantUpdate) SetLastName(v string) *AssistantUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *AssistantUpdate) SetNillableLastName(v *string) *AssistantUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *AssistantUpdate) SetTitle(v string) *AssistantUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AssistantUpdate) SetNillableTitle(v *string) *AssistantUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *AssistantUpdate) ClearTitle() *AssistantUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *AssistantUpdate) SetPhone(v string) *AssistantUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *AssistantUpdate) SetNillablePhone(v *string) *AssistantUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *AssistantUpdate) ClearPhone() *AssistantUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AssistantUpdate) SetIsActive(v bool) *AssistantUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AssistantUpdate) SetNillableIsActive(v *bool) *AssistantUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the AssistantMutation object of the builder.
func (_u *AssistantUpdate) Mutation() *AssistantMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssistantUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssistantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssistantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssistantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssistantUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := assistant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssistantUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := assistant.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Assistant.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := assistant.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Assistant.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := assistant.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Assistant.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := assistant.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Assistant.phone": %w`, err)}
		}
	}
	return nil
}

func (_u *AssistantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assistant.Table, assistant.Columns, sqlgraph.NewFieldSpec(assistant.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(assistant.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(assistant.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(assistant.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(assistant.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(assistant.FieldUserID, field.TypeUUID, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(assistant.FieldUserID, field.TypeUUID)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(assistant.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(assistant.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(assistant.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(assistant.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(assistant.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(assistant.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(assistant.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assistant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssistantUpdateOne is the builder for updating a single Assistant entity.
type AssistantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssistantMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AssistantUpdateOne) SetUpdatedAt(v time.Time) *AssistantUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *AssistantUpdateOne) SetDeletedAt(v time.Time) *AssistantUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *AssistantUpdateOne) SetNillableDeletedAt(v *time.Time) *AssistantUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *AssistantUpdateOne) ClearDeletedAt() *AssistantUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *AssistantUpdateOne) SetClinicID(v uuid.UUID) *AssistantUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *AssistantUpdateOne) SetNillableClinicID(v *uuid.UUID) *AssistantUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AssistantUpdateOne) SetUserID(v uuid.UUID) *AssistantUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AssistantUpdateOne) SetNillableUserID(v *uuid.UUID) *AssistantUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *AssistantUpdateOne) ClearUserID() *AssistantUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *AssistantUpdateOne) SetFirstName(v string) *AssistantUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *AssistantUpdateOne) SetNillableFirstName(v *string) *AssistantUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *AssistantUpdateOne) SetLastName(v string) *AssistantUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *AssistantUpdateOne) SetNillableLastName(v *string) *AssistantUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *AssistantUpdateOne) SetTitle(v string) *AssistantUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *AssistantUpdateOne) SetNillableTitle(v *string) *AssistantUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *AssistantUpdateOne) ClearTitle() *AssistantUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *AssistantUpdateOne) SetPhone(v string) *AssistantUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *AssistantUpdateOne) SetNillablePhone(v *string) *AssistantUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *AssistantUpdateOne) ClearPhone() *AssistantUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AssistantUpdateOne) SetIsActive(v bool) *AssistantUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AssistantUpdateOne) SetNillableIsActive(v *bool) *AssistantUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the AssistantMutation object of the builder.
func (_u *AssistantUpdateOne) Mutation() *AssistantMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssistantUpdate builder.
func (_u *AssistantUpdateOne) Where(ps ...predicate.Assistant) *AssistantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssistantUpdateOne) Select(field string, fields ...string) *AssistantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Assistant entity.
func (_u *AssistantUpdateOne) Save(ctx context.Context) (*Assistant, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssistantUpdateOne) SaveX(ctx context.Context) *Assistant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssistantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssistantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AssistantUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := assistant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssistantUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := assistant.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Assistant.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := assistant.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Assistant.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := assistant.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "Assistant.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := assistant.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Assistant.phone": %w`, err)}
		}
	}
	return nil
}

func (_u *AssistantUpdateOne) sqlSave(ctx context.Context) (_node *Assistant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assistant.Table, assistant.Columns, sqlgraph.NewFieldSpec(assistant.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Assistant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assistant.FieldID)
		for _, f := range fields {
			if !assistant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != assistant.FieldID {
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
		_spec.SetField(assistant.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(assistant.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(assistant.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(assistant.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(assistant.FieldUserID, field.TypeUUID, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(assistant.FieldUserID, field.TypeUUID)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(assistant.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(assistant.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(assistant.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(assistant.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(assistant.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(assistant.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(assistant.FieldIsActive, field.TypeBool, value)
	}
	_node = &Assistant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assistant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
