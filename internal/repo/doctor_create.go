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
	"github.com/medorahq/medora_backend/internal/repo/doctor"
)

// DoctorCreate is the builder for creating a Doctor entity.
type DoctorCreate struct {
	config
	mutation *DoctorMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *DoctorCreate) SetCreatedAt(v time.Time) *DoctorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableCreatedAt(v *time.Time) *DoctorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DoctorCreate) SetUpdatedAt(v time.Time) *DoctorCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableUpdatedAt(v *time.Time) *DoctorCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *DoctorCreate) SetDeletedAt(v time.Time) *DoctorCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableDeletedAt(v *time.Time) *DoctorCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *DoctorCreate) SetClinicID(v uuid.UUID) *DoctorCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *DoctorCreate) SetUserID(v uuid.UUID) *DoctorCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableUserID(v *uuid.UUID) *DoctorCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetFirstName sets the "first_name" field.
func (_c *DoctorCreate) SetFirstName(v string) *DoctorCreate {
	_c.mutation.SetFirstName(v)
	return _c
}

// SetLastName sets the "last_name" field.
func (_c *DoctorCreate) SetLastName(v string) *DoctorCreate {
	_c.mutation.SetLastName(v)
	return _c
}

// SetSpecialty sets the "specialty" field.
func (_c *DoctorCreate) SetSpecialty(v string) *DoctorCreate {
	_c.mutation.SetSpecialty(v)
	return _c
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableSpecialty(v *string) *DoctorCreate {
	if v != nil {
		_c.SetSpecialty(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *DoctorCreate) SetPhone(v string) *DoctorCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *DoctorCreate) SetNillablePhone(v *string) *DoctorCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *DoctorCreate) SetIsActive(v bool) *DoctorCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableIsActive(v *bool) *DoctorCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DoctorCreate) SetID(v uuid.UUID) *DoctorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DoctorCreate) SetNillableID(v *uuid.UUID) *DoctorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DoctorMutation object of the builder.
func (_c *DoctorCreate) Mutation() *DoctorMutation {
	return _c.mutation
}

// Save creates the Doctor in the database.
func (_c *DoctorCreate) Save(ctx context.Context) (*Doctor, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DoctorCreate) SaveX(ctx context.Context) *Doctor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DoctorCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := doctor.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := doctor.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := doctor.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := doctor.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DoctorCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Doctor.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Doctor.updated_at"`)}
	}
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`repo: missing required field "Doctor.clinic_id"`)}
	}
	if _, ok := _c.mutation.FirstName(); !ok {
		return &ValidationError{Name: "first_name", err: errors.New(`repo: missing required field "Doctor.first_name"`)}
	}
	if v, ok := _c.mutation.FirstName(); ok {
		if err := doctor.FirstNameValidator(v); err != nil {
			return &ValidationError{Name: "first_name", err: fmt.Errorf(`repo: validator failed for field "Doctor.first_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastName(); !ok {
		return &ValidationError{Name: "last_name", err: errors.New(`repo: missing required field "Doctor.last_name"`)}
	}
	if v, ok := _c.mutation.LastName(); ok {
		if err := doctor.LastNameValidator(v); err != nil {
			return &ValidationError{Name: "last_name", err: fmt.Errorf(`repo: validator failed for field "Doctor.last_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Specialty(); ok {
		if err := doctor.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`repo: validator failed for field "Doctor.specialty": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := doctor.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Doctor.phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`repo: missing required field "Doctor.is_active"`)}
	}
	return nil
}

func (_c *DoctorCreate) sqlSave(ctx context.Context) (*Doctor, error) {
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

func (_c *DoctorCreate) createSpec() (*Doctor, *sqlgraph.CreateSpec) {
	var (
		_node = &Doctor{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(doctor.Table, sqlgraph.NewFieldSpec(doctor.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(doctor.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(doctor.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(doctor.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.ClinicID(); ok {
		_spec.SetField(doctor.FieldClinicID, field.TypeUUID, value)
		_node.ClinicID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(doctor.FieldUserID, field.TypeUUID, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.FirstName(); ok {
		_spec.SetField(doctor.FieldFirstName, field.TypeString, value)
		_node.FirstName = value
	}
	if value, ok := _c.mutation.LastName(); ok {
		_spec.SetField(doctor.FieldLastName, field.TypeString, value)
		_node.LastName = value
	}
	if value, ok := _c.mutation.Specialty(); ok {
		_spec.SetField(doctor.FieldSpecialty, field.TypeString, value)
		_node.Specialty = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(doctor.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(doctor.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// DoctorCreateBulk is the builder for creating many Doctor entities in bulk.
type DoctorCreateBulk struct {
	config
	err      error
	builders []*DoctorCreate
}

// Save creates the Doctor entities in the database.
func (_c *DoctorCreateBulk) Save(ctx context.Context) ([]*Doctor, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Doctor, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DoctorMutation)
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
func (_c *DoctorCreateBulk) SaveX(ctx context.Context) []*Doctor {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DoctorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DoctorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
