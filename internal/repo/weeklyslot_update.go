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
	"github.com/medorahq/medora_backend/internal/repo/predicate"
	"github.com/medorahq/medora_backend/internal/repo/weeklyslot"
)

// WeeklySlotUpdate is the builder for updating WeeklySlot entities.
type WeeklySlotUpdate struct {
	config
	hooks    []Hook
	mutation *WeeklySlotMutation
}

// Where appends a list predicates to the WeeklySlotUpdate builder.
func (_u *WeeklySlotUpdate) Where(ps ...predicate.WeeklySlot) *WeeklySlotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WeeklySlotUpdate) SetUpdatedAt(v time.Time) *WeeklySlotUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *WeeklySlotUpdate) SetClinicID(v uuid.UUID) *WeeklySlotUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *WeeklySlotUpdate) SetNillableClinicID(v *uuid.UUID) *WeeklySlotUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *WeeklySlotUpdate) SetDoctorID(v uuid.UUID) *WeeklySlotUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *WeeklySlotUpdate) SetNillableDoctorID(v *uuid.UUID) *WeeklySlotUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetWeekday sets the "weekday" field.
func (_u *WeeklySlotUpdate) SetWeekday(v int8) *WeeklySlotUpdate {
	_u.mutation.ResetWeekday()
	_u.mutation.SetWeekday(v)
	return _u
}

// SetNillableWeekday sets the "weekday" field if the given value is not nil.
func (_u *WeeklySlotUpdate) SetNillableWeekday(v *int8) *WeeklySlotUpdate {
	if v != nil {
		_u.SetWeekday(*v)
	}
	return _u
}

// AddWeekday adds value to the "weekday" field.
func (_u *WeeklySlotUpdate) AddWeekday(v int8) *WeeklySlotUpdate {
	_u.mutation.AddWeekday(v)
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *WeeklySlotUpdate) SetStartTime(v string) *WeeklySlotUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *WeeklySlotUpdate) SetNillableStartTime(v *string) *WeeklySlotUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *WeeklySlotUpdate) SetEndTime(v string) *WeeklySlotUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *WeeklySlotUpdate) SetNillableEndTime(v *string) *WeeklySlotUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetDurationMin sets the "duration_min" field.
func (_u *WeeklySlotUpdate) SetDurationMin(v int) *WeeklySlotUpdate {
	_u.mutation.ResetDurationMin()
	_u.mutation.SetDurationMin(v)
	return _u
}

// SetNillableDurationMin sets the "duration_min" field if the given value is not nil.
func (_u *WeeklySlotUpdate) SetNillableDurationMin(v *int) *WeeklySlotUpdate {
	if v != nil {
		_u.SetDurationMin(*v)
	}
	return _u
}

// AddDurationMin adds value to the "duration_min" field.
func (_u *WeeklySlotUpdate) AddDurationMin(v int) *WeeklySlotUpdate {
	_u.mutation.AddDurationMin(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *WeeklySlotUpdate) SetIsActive(v bool) *WeeklySlotUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *WeeklySlotUpdate) SetNillableIsActive(v *bool) *WeeklySlotUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the WeeklySlotMutation object of the builder.
func (_u *WeeklySlotUpdate) Mutation() *WeeklySlotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WeeklySlotUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeeklySlotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WeeklySlotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeeklySlotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WeeklySlotUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := weeklyslot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WeeklySlotUpdate) check() error {
	if v, ok := _u.mutation.Weekday(); ok {
		if err := weeklyslot.WeekdayValidator(v); err != nil {
			return &ValidationError{Name: "weekday", err: fmt.Errorf(`repo: validator failed for field "WeeklySlot.weekday": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartTime(); ok {
		if err := weeklyslot.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "WeeklySlot.start_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndTime(); ok {
		if err := weeklyslot.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "WeeklySlot.end_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMin(); ok {
		if err := weeklyslot.DurationMinValidator(v); err != nil {
			return &ValidationError{Name: "duration_min", err: fmt.Errorf(`repo: validator failed for field "WeeklySlot.duration_min": %w`, err)}
		}
	}
	return nil
}

func (_u *WeeklySlotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(weeklyslot.Table, weeklyslot.Columns, sqlgraph.NewFieldSpec(weeklyslot.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(weeklyslot.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(weeklyslot.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(weeklyslot.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Weekday(); ok {
		_spec.SetField(weeklyslot.FieldWeekday, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedWeekday(); ok {
		_spec.AddField(weeklyslot.FieldWeekday, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(weeklyslot.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(weeklyslot.FieldEndTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMin(); ok {
		_spec.SetField(weeklyslot.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMin(); ok {
		_spec.AddField(weeklyslot.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(weeklyslot.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weeklyslot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WeeklySlotUpdateOne is the builder for updating a single WeeklySlot entity.
type WeeklySlotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WeeklySlotMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WeeklySlotUpdateOne) SetUpdatedAt(v time.Time) *WeeklySlotUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *WeeklySlotUpdateOne) SetClinicID(v uuid.UUID) *WeeklySlotUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *WeeklySlotUpdateOne) SetNillableClinicID(v *uuid.UUID) *WeeklySlotUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *WeeklySlotUpdateOne) SetDoctorID(v uuid.UUID) *WeeklySlotUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *WeeklySlotUpdateOne) SetNillableDoctorID(v *uuid.UUID) *WeeklySlotUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetWeekday sets the "weekday" field.
func (_u *WeeklySlotUpdateOne) SetWeekday(v int8) *WeeklySlotUpdateOne {
	_u.mutation.ResetWeekday()
	_u.mutation.SetWeekday(v)
	return _u
}

// SetNillableWeekday sets the "weekday" field if the given value is not nil.
func (_u *WeeklySlotUpdateOne) SetNillableWeekday(v *int8) *WeeklySlotUpdateOne {
	if v != nil {
		_u.SetWeekday(*v)
	}
	return _u
}

// AddWeekday adds value to the "weekday" field.
func (_u *WeeklySlotUpdateOne) AddWeekday(v int8) *WeeklySlotUpdateOne {
	_u.mutation.AddWeekday(v)
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *WeeklySlotUpdateOne) SetStartTime(v string) *WeeklySlotUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *WeeklySlotUpdateOne) SetNillableStartTime(v *string) *WeeklySlotUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *WeeklySlotUpdateOne) SetEndTime(v string) *WeeklySlotUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *WeeklySlotUpdateOne) SetNillableEndTime(v *string) *WeeklySlotUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetDurationMin sets the "duration_min" field.
func (_u *WeeklySlotUpdateOne) SetDurationMin(v int) *WeeklySlotUpdateOne {
	_u.mutation.ResetDurationMin()
	_u.mutation.SetDurationMin(v)
	return _u
}

// SetNillableDurationMin sets the "duration_min" field if the given value is not nil.
func (_u *WeeklySlotUpdateOne) SetNillableDurationMin(v *int) *WeeklySlotUpdateOne {
	if v != nil {
		_u.SetDurationMin(*v)
	}
	return _u
}

// AddDurationMin adds value to the "duration_min" field.
func (_u *WeeklySlotUpdateOne) AddDurationMin(v int) *WeeklySlotUpdateOne {
	_u.mutation.AddDurationMin(v)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *WeeklySlotUpdateOne) SetIsActive(v bool) *WeeklySlotUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *WeeklySlotUpdateOne) SetNillableIsActive(v *bool) *WeeklySlotUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the WeeklySlotMutation object of the builder.
func (_u *WeeklySlotUpdateOne) Mutation() *WeeklySlotMutation {
	return _u.mutation
}

// Where appends a list predicates to the WeeklySlotUpdate builder.
func (_u *WeeklySlotUpdateOne) Where(ps ...predicate.WeeklySlot) *WeeklySlotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WeeklySlotUpdateOne) Select(field string, fields ...string) *WeeklySlotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WeeklySlot entity.
func (_u *WeeklySlotUpdateOne) Save(ctx context.Context) (*WeeklySlot, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeeklySlotUpdateOne) SaveX(ctx context.Context) *WeeklySlot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WeeklySlotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeeklySlotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WeeklySlotUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := weeklyslot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WeeklySlotUpdateOne) check() error {
	if v, ok := _u.mutation.Weekday(); ok {
		if err := weeklyslot.WeekdayValidator(v); err != nil {
			return &ValidationError{Name: "weekday", err: fmt.Errorf(`repo: validator failed for field "WeeklySlot.weekday": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartTime(); ok {
		if err := weeklyslot.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "WeeklySlot.start_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndTime(); ok {
		if err := weeklyslot.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "WeeklySlot.end_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DurationMin(); ok {
		if err := weeklyslot.DurationMinValidator(v); err != nil {
			return &ValidationError{Name: "duration_min", err: fmt.Errorf(`repo: validator failed for field "WeeklySlot.duration_min": %w`, err)}
		}
	}
	return nil
}

func (_u *WeeklySlotUpdateOne) sqlSave(ctx context.Context) (_node *WeeklySlot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(weeklyslot.Table, weeklyslot.Columns, sqlgraph.NewFieldSpec(weeklyslot.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "WeeklySlot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, weeklyslot.FieldID)
		for _, f := range fields {
			if !weeklyslot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != weeklyslot.FieldID {
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
		_spec.SetField(weeklyslot.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClinicID(); ok {
		_spec.SetField(weeklyslot.FieldClinicID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(weeklyslot.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Weekday(); ok {
		_spec.SetField(weeklyslot.FieldWeekday, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedWeekday(); ok {
		_spec.AddField(weeklyslot.FieldWeekday, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(weeklyslot.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(weeklyslot.FieldEndTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMin(); ok {
		_spec.SetField(weeklyslot.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMin(); ok {
		_spec.AddField(weeklyslot.FieldDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(weeklyslot.FieldIsActive, field.TypeBool, value)
	}
	_node = &WeeklySlot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weeklyslot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
