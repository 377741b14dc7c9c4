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
	"github.com/medorahq/medora_backend/internal/repo/clinic"
	"github.com/medorahq/medora_backend/internal/repo/predicate"
)

// ClinicUpdate is the builder for updating Clinic entities.
type ClinicUpdate struct {
	config
	hooks    []Hook
	mutation *ClinicMutation
}

// Where appends a list predicates to the ClinicUpdate builder.
func (_u *ClinicUpdate) Where(ps ...predicate.Clinic) *ClinicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClinicUpdate) SetUpdatedAt(v time.Time) *ClinicUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ClinicUpdate) SetDeletedAt(v time.Time) *ClinicUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableDeletedAt(v *time.Time) *ClinicUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ClinicUpdate) ClearDeletedAt() *ClinicUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *ClinicUpdate) SetName(v string) *ClinicUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableName(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *ClinicUpdate) SetTimezone(v string) *ClinicUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableTimezone(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *ClinicUpdate) SetPlan(v string) *ClinicUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// SetNillablePlan sets the "plan" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillablePlan(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetPlan(*v)
	}
	return _u
}

// SetPlanStatus sets the "plan_status" field.
func (_u *ClinicUpdate) SetPlanStatus(v clinic.PlanStatus) *ClinicUpdate {
	_u.mutation.SetPlanStatus(v)
	return _u
}

// SetNillablePlanStatus sets the "plan_status" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillablePlanStatus(v *clinic.PlanStatus) *ClinicUpdate {
	if v != nil {
		_u.SetPlanStatus(*v)
	}
	return _u
}

// SetPlanUntil sets the "plan_until" field.
func (_u *ClinicUpdate) SetPlanUntil(v time.Time) *ClinicUpdate {
	_u.mutation.SetPlanUntil(v)
	return _u
}

// SetNillablePlanUntil sets the "plan_until" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillablePlanUntil(v *time.Time) *ClinicUpdate {
	if v != nil {
		_u.SetPlanUntil(*v)
	}
	return _u
}

// ClearPlanUntil clears the value of the "plan_until" field.
func (_u *ClinicUpdate) ClearPlanUntil() *ClinicUpdate {
	_u.mutation.ClearPlanUntil()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ClinicUpdate) SetIsActive(v bool) *ClinicUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableIsActive(v *bool) *ClinicUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the ClinicMutation object of the builder.
func (_u *ClinicUpdate) Mutation() *ClinicMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClinicUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClinicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClinicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClinicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClinicUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clinic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClinicUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := clinic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Clinic.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Timezone(); ok {
		if err := clinic.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "Clinic.timezone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Plan(); ok {
		if err := clinic.PlanValidator(v); err != nil {
			return &ValidationError{Name: "plan", err: fmt.Errorf(`repo: validator failed for field "Clinic.plan": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlanStatus(); ok {
		if err := clinic.PlanStatusValidator(v); err != nil {
			return &ValidationError{Name: "plan_status", err: fmt.Errorf(`repo: validator failed for field "Clinic.plan_status": %w`, err)}
		}
	}
	return nil
}

func (_u *ClinicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clinic.Table, clinic.Columns, sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clinic.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(clinic.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(clinic.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(clinic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(clinic.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(clinic.FieldPlan, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanStatus(); ok {
		_spec.SetField(clinic.FieldPlanStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PlanUntil(); ok {
		_spec.SetField(clinic.FieldPlanUntil, field.TypeTime, value)
	}
	if _u.mutation.PlanUntilCleared() {
		_spec.ClearField(clinic.FieldPlanUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(clinic.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clinic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClinicUpdateOne is the builder for updating a single Clinic entity.
type ClinicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClinicMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClinicUpdateOne) SetUpdatedAt(v time.Time) *ClinicUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ClinicUpdateOne) SetDeletedAt(v time.Time) *ClinicUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableDeletedAt(v *time.Time) *ClinicUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ClinicUpdateOne) ClearDeletedAt() *ClinicUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetName sets the "name" field.
func (_u *ClinicUpdateOne) SetName(v string) *ClinicUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableName(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *ClinicUpdateOne) SetTimezone(v string) *ClinicUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableTimezone(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *ClinicUpdateOne) SetPlan(v string) *ClinicUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// SetNillablePlan sets the "plan" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillablePlan(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetPlan(*v)
	}
	return _u
}

// SetPlanStatus sets the "plan_status" field.
func (_u *ClinicUpdateOne) SetPlanStatus(v clinic.PlanStatus) *ClinicUpdateOne {
	_u.mutation.SetPlanStatus(v)
	return _u
}

// SetNillablePlanStatus sets the "plan_status" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillablePlanStatus(v *clinic.PlanStatus) *ClinicUpdateOne {
	if v != nil {
		_u.SetPlanStatus(*v)
	}
	return _u
}

// SetPlanUntil sets the "plan_until" field.
func (_u *ClinicUpdateOne) SetPlanUntil(v time.Time) *ClinicUpdateOne {
	_u.mutation.SetPlanUntil(v)
	return _u
}

// SetNillablePlanUntil sets the "plan_until" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillablePlanUntil(v *time.Time) *ClinicUpdateOne {
	if v != nil {
		_u.SetPlanUntil(*v)
	}
	return _u
}

// ClearPlanUntil clears the value of the "plan_until" field.
func (_u *ClinicUpdateOne) ClearPlanUntil() *ClinicUpdateOne {
	_u.mutation.ClearPlanUntil()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *ClinicUpdateOne) SetIsActive(v bool) *ClinicUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableIsActive(v *bool) *ClinicUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the ClinicMutation object of the builder.
func (_u *ClinicUpdateOne) Mutation() *ClinicMutation {
	return _u.mutation
}

// Where appends a list predicates to the ClinicUpdate builder.
func (_u *ClinicUpdateOne) Where(ps ...predicate.Clinic) *ClinicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClinicUpdateOne) Select(field string, fields ...string) *ClinicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Clinic entity.
func (_u *ClinicUpdateOne) Save(ctx context.Context) (*Clinic, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClinicUpdateOne) SaveX(ctx context.Context) *Clinic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClinicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClinicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClinicUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clinic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClinicUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := clinic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Clinic.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Timezone(); ok {
		if err := clinic.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "Clinic.timezone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Plan(); ok {
		if err := clinic.PlanValidator(v); err != nil {
			return &ValidationError{Name: "plan", err: fmt.Errorf(`repo: validator failed for field "Clinic.plan": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PlanStatus(); ok {
		if err := clinic.PlanStatusValidator(v); err != nil {
			return &ValidationError{Name: "plan_status", err: fmt.Errorf(`repo: validator failed for field "Clinic.plan_status": %w`, err)}
		}
	}
	return nil
}

func (_u *ClinicUpdateOne) sqlSave(ctx context.Context) (_node *Clinic, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clinic.Table, clinic.Columns, sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Clinic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clinic.FieldID)
		for _, f := range fields {
			if !clinic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != clinic.FieldID {
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
		_spec.SetField(clinic.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(clinic.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(clinic.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(clinic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(clinic.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(clinic.FieldPlan, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanStatus(); ok {
		_spec.SetField(clinic.FieldPlanStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PlanUntil(); ok {
		_spec.SetField(clinic.FieldPlanUntil, field.TypeTime, value)
	}
	if _u.mutation.PlanUntilCleared() {
		_spec.ClearField(clinic.FieldPlanUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(clinic.FieldIsActive, field.TypeBool, value)
	}
	_node = &Clinic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clinic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
