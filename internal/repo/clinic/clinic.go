// Code generated by ent, DO NOT EDIT.

package clinic

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the clinic type in the database.
	Label = "clinic"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldTimezone holds the string denoting the timezone field in the database.
	FieldTimezone = "timezone"
	// FieldPlan holds the string denoting the plan field in the database.
	FieldPlan = "plan"
	// FieldPlanStatus holds the string denoting the plan_status field in the database.
	FieldPlanStatus = "plan_status"
	// FieldPlanUntil holds the string denoting the plan_until field in the database.
	FieldPlanUntil = "plan_until"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// Table holds the table name of the clinic in the database.
	Table = "clinics"
)

// Columns holds all SQL columns for clinic fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldName,
	FieldTimezone,
	FieldPlan,
	FieldPlanStatus,
	FieldPlanUntil,
	FieldIsActive,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultTimezone holds the default value on creation for the "timezone" field.
	DefaultTimezone string
	// TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	TimezoneValidator func(string) error
	// DefaultPlan holds the default value on creation for the "plan" field.
	DefaultPlan string
	// PlanValidator is a validator for the "plan" field. It is called by the builders before save.
	PlanValidator func(string) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// PlanStatus defines the type for the "plan_status" enum field.
type PlanStatus string

// PlanStatusACTIVE is the default value of the PlanStatus enum.
const DefaultPlanStatus = PlanStatusACTIVE

// PlanStatus values.
const (
	PlanStatusACTIVE    PlanStatus = "ACTIVE"
	PlanStatusPAST_DUE  PlanStatus = "PAST_DUE"
	PlanStatusCANCELLED PlanStatus = "CANCELLED"
)

func (ps PlanStatus) String() string {
	return string(ps)
}

// PlanStatusValidator is a validator for the "plan_status" field enum values. It is called by the builders before save.
func PlanStatusValidator(ps PlanStatus) error {
	switch ps {
	case PlanStatusACTIVE, PlanStatusPAST_DUE, PlanStatusCANCELLED:
		return nil
	default:
		return fmt.Errorf("clinic: invalid enum value for plan_status field: %q", ps)
	}
}

// OrderOption defines the ordering options for the Clinic queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByTimezone orders the results by the timezone field.
func ByTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimezone, opts...).ToFunc()
}

// ByPlan orders the results by the plan field.
func ByPlan(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlan, opts...).ToFunc()
}

// ByPlanStatus orders the results by the plan_status field.
func ByPlanStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanStatus, opts...).ToFunc()
}

// ByPlanUntil orders the results by the plan_until field.
func ByPlanUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanUntil, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}
