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
	"github.com/medorahq/medora_backend/internal/repo/appointment"
	"github.com/medorahq/medora_backend/internal/repo/predicate"
)

// AppointmentUpdate is the builder for updating Appointment entities.
type AppointmentUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentMutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdate) Where(ps ...predicate.Appointment) *AppointmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdate) SetUpdatedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *AppointmentUpdate) SetClinicID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableClinicID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *AppointmentUpdate) SetDoctorID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableDoctorID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AppointmentUpdate) SetPatientID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillablePatientID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *AppointmentUpdate) SetStartTime(v time.Time) *AppointmentUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStartTime(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *AppointmentUpdate) SetEndTime(v time.Time) *AppointmentUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableEndTime(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdate) SetStatus(v appointment.Status) *AppointmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStatus(v *appointment.Status) *AppointmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *AppointmentUpdate) SetSource(v string) *AppointmentUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableSource(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AppointmentUpdate) SetReason(v string) *AppointmentUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableReason(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *AppointmentUpdate) ClearReason() *AppointmentUpdate {
	_u.mutation.ClearReason()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AppointmentUpdate) SetNotes(v string) *AppointmentUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableNotes(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AppointmentUpdate) ClearNotes() *AppointmentUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedByID sets the "created_by_id" field.
func (_u *AppointmentUpdate) SetCreatedByID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetCreatedByID(v)
	return _u
}

// SetNillableCreatedByID sets the "created_by_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCreatedByID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetCreatedByID(*v)
	}
	return _u
}

// ClearCreatedByID clears the value of the "created_by_id" field.
func (_u *AppointmentUpdate) ClearCreatedByID() *AppointmentUpdate {
	_u.mutation.ClearCreatedByID()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *AppointmentUpdate) SetCancelledAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCancelledAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *AppointmentUpdate) ClearCancelledAt() *AppointmentUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AppointmentUpdate) SetCompletedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableCompletedAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AppointmentUpdate) ClearCompletedAt() *AppointmentUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdate) Mutation() *AppointmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := appointment.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`repo: validator failed for field "Appointment.source": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(appointment.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(appointment.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(appointment.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(appointment.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(appointment.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(appointment.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(appointment.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(appointment.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(appointment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(appointment.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedByID(); ok {
		_spec.SetField(appointment.FieldCreatedByID, field.TypeUUID, value)
	}
	if _u.mutation.CreatedByIDCleared() {
		_spec.ClearField(appointment.FieldCreatedByID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(appointment.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(appointment.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(appointment.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(appointment.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentUpdateOne is the builder for updating a single Appointment entity.
type AppointmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdateOne) SetUpdatedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *AppointmentUpdateOne) SetClinicID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableClinicID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *AppointmentUpdateOne) SetDoctorID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableDoctorID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *AppointmentUpdateOne) SetPatientID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillablePatientID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *AppointmentUpdateOne) SetStartTime(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStartTime(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *AppointmentUpdateOne) SetEndTime(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableEndTime(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdateOne) SetStatus(v appointment.Status) *AppointmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStatus(v *appointment.Status) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *AppointmentUpdateOne) SetSource(v string) *AppointmentUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableSource(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AppointmentUpdateOne) SetReason(v string) *AppointmentUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableReason(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *AppointmentUpdateOne) ClearReason() *AppointmentUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *AppointmentUpdateOne) SetNotes(v string) *AppointmentUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableNotes(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *AppointmentUpdateOne) ClearNotes() *AppointmentUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetCreatedByID sets the "created_by_id" field.
func (_u *AppointmentUpdateOne) SetCreatedByID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetCreatedByID(v)
	return _u
}

// SetNillableCreatedByID sets the "created_by_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCreatedByID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCreatedByID(*v)
	}
	return _u
}

// ClearCreatedByID clears the value of the "created_by_id" field.
func (_u *AppointmentUpdateOne) ClearCreatedByID() *AppointmentUpdateOne {
	_u.mutation.ClearCreatedByID()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *AppointmentUpdateOne) SetCancelledAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCancelledAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *AppointmentUpdateOne) ClearCancelledAt() *AppointmentUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AppointmentUpdateOne) SetCompletedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableCompletedAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AppointmentUpdateOne) ClearCompletedAt() *AppointmentUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdateOne) Mutation() *AppointmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdateOne) Where(ps ...predicate.Appointment) *AppointmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentUpdateOne) Select(field string, fields ...string) *AppointmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Appointment entity.
func (_u *AppointmentUpdateOne) Save(ctx context.Context) (*Appointment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdateOne) SaveX(ctx context.Context) *Appointment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := appointment.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`repo: validator failed for field "Appointment.source": %w`, err)}
		}
	}
	return nil
}

func (_u *AppointmentUpdateOne) sqlSave(ctx context.Context) (_node *Appointment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Appointment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointment.FieldID)
		for _, f := range fields {
			if !appointment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != appointment.FieldID {
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
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(appointment.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(appointment.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(appointment.FieldPatientID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(appointment.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(appointment.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(appointment.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(appointment.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(appointment.FieldReason, field.TypeString)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(appointment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(appointment.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedByID(); ok {
		_spec.SetField(appointment.FieldCreatedByID, field.TypeUUID, value)
	}
	if _u.mutation.CreatedByIDCleared() {
		_spec.ClearField(appointment.FieldCreatedByID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(appointment.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(appointment.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(appointment.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(appointment.FieldCompletedAt, field.TypeTime)
	}
	_node = &Appointment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
