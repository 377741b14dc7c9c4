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
	"github.com/medorahq/medora_backend/internal/repo/doctor"
	"github.com/medorahq/medora_backend/internal/repo/predicate"
)

// DoctorUpdate is the builder for updating Doctor entities.
type DoctorUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorMutation
}

// Where appends a list predicates to the DoctorUpdate builder.
func (_u *DoctorUpdate) Where(ps ...predicate.Doctor) *DoctorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorUpdate) SetUpdatedAt(v time.Time) *DoctorUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DoctorUpdate) SetDeletedAt(v time.Time) *DoctorUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableDeletedAt(v *time.Time) *DoctorUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DoctorUpdate) ClearDeletedAt() *DoctorUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *DoctorUpdate) SetClinicID(v uuid.UUID) *DoctorUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableClinicID(v *uuid.UUID) *DoctorUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DoctorUpdate) SetUserID(v uuid.UUID) *DoctorUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableUserID(v *uuid.UUID) *DoctorUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *DoctorUpdate) ClearUserID() *DoctorUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *DoctorUpdate) SetFirstName(v string) *DoctorUpdate {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableFirstName(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *DoctorUpdate) SetLastName(v string) *DoctorUpdate {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableLastName(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *DoctorUpdate) SetSpecialty(v string) *DoctorUpdate {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableSpecialty(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// ClearSpecialty clears the value of the "specialty" field.
func (_u *DoctorUpdate) ClearSpecialty() *DoctorUpdate {
	_u.mutation.ClearSpecialty()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *DoctorUpdate) SetPhone(v string) *DoctorUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillablePhone(v *string) *DoctorUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *DoctorUpdate) ClearPhone() *DoctorUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *DoctorUpdate) SetIsActive(v bool) *DoctorUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *DoctorUpdate) SetNillableIsActive(v *bool) *DoctorUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the DoctorMutation object of the builder.
func (_u *DoctorUpdate) Mutation() *DoctorMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorUpdate) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := doctor.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Doctor.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := doctor.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Doctor.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialty(); ok {
		if err := doctor.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`repo: validator failed for field "Doctor.specialty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := doctor.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Doctor.phone": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctor.Table, doctor.Columns, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(doctor.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(doctor.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(doctor.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(doctor.FieldUserID, field.TypeUUID, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(doctor.FieldUserID, field.TypeUUID)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(doctor.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(doctor.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(doctor.FieldSpecialty, field.TypeString, value)
	}
	if _u.mutation.SpecialtyCleared() {
		_spec.ClearField(doctor.FieldSpecialty, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(doctor.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(doctor.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(doctor.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorUpdateOne is the builder for updating a single Doctor entity.
type DoctorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorUpdateOne) SetUpdatedAt(v time.Time) *DoctorUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DoctorUpdateOne) SetDeletedAt(v time.Time) *DoctorUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableDeletedAt(v *time.Time) *DoctorUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DoctorUpdateOne) ClearDeletedAt() *DoctorUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *DoctorUpdateOne) SetClinicID(v uuid.UUID) *DoctorUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableClinicID(v *uuid.UUID) *DoctorUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DoctorUpdateOne) SetUserID(v uuid.UUID) *DoctorUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableUserID(v *uuid.UUID) *DoctorUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *DoctorUpdateOne) ClearUserID() *DoctorUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetFirstName sets the "first_name" field.
func (_u *DoctorUpdateOne) SetFirstName(v string) *DoctorUpdateOne {
	_u.mutation.SetFirstName(v)
	return _u
}

// SetNillableFirstName sets the "first_name" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableFirstName(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetFirstName(*v)
	}
	return _u
}

// SetLastName sets the "last_name" field.
func (_u *DoctorUpdateOne) SetLastName(v string) *DoctorUpdateOne {
	_u.mutation.SetLastName(v)
	return _u
}

// SetNillableLastName sets the "last_name" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableLastName(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetLastName(*v)
	}
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *DoctorUpdateOne) SetSpecialty(v string) *DoctorUpdateOne {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableSpecialty(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// ClearSpecialty clears the value of the "specialty" field.
func (_u *DoctorUpdateOne) ClearSpecialty() *DoctorUpdateOne {
	_u.mutation.ClearSpecialty()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *DoctorUpdateOne) SetPhone(v string) *DoctorUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillablePhone(v *string) *DoctorUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *DoctorUpdateOne) ClearPhone() *DoctorUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *DoctorUpdateOne) SetIsActive(v bool) *DoctorUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *DoctorUpdateOne) SetNillableIsActive(v *bool) *DoctorUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the DoctorMutation object of the builder.
func (_u *DoctorUpdateOne) Mutation() *DoctorMutation {
	return _u.mutation
}

// Where appends a list predicates to the DoctorUpdate builder.
func (_u *DoctorUpdateOne) Where(ps ...predicate.Doctor) *DoctorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorUpdateOne) Select(field string, fields ...string) *DoctorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Doctor entity.
func (_u *DoctorUpdateOne) Save(ctx context.Context) (*Doctor, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorUpdateOne) SaveX(ctx context.Context) *Doctor {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctor.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorUpdateOne) check() error {
	if v, ok := _u.mutation.FirstName(); ok {
		if err := doctor.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Doctor.first_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastName(); ok {
		if err := doctor.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Doctor.last_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Specialty(); ok {
		if err := doctor.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`repo: validator failed for field "Doctor.specialty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := doctor.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Doctor.phone": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorUpdateOne) sqlSave(ctx context.Context) (_node *Doctor, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctor.Table, doctor.Columns, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Doctor.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctor.FieldID)
		for _, f := range fields {
			if !doctor.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctor.FieldID {
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
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(doctor.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(doctor.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(doctor.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(doctor.FieldUserID, field.TypeUUID, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(doctor.FieldUserID, field.TypeUUID)
	}
	if value, ok := _u.mutation.FirstName(); ok {
		_spec.SetField(doctor.FieldFirstName, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastName(); ok {
		_spec.SetField(doctor.FieldLastName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(doctor.FieldSpecialty, field.TypeString, value)
	}
	if _u.mutation.SpecialtyCleared() {
		_spec.ClearField(doctor.FieldSpecialty, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(doctor.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(doctor.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(doctor.FieldIsActive, field.TypeBool, value)
	}
	_node = &Doctor{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctor.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
