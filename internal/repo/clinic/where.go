// Code generated by ent, DO NOT EDIT.

package clinic

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medorahq/medora_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldDeletedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldName, v))
}

// Timezone applies equality check predicate on the "timezone" field. It's identical to TimezoneEQ.
func Timezone(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldTimezone, v))
}

// Plan applies equality check predicate on the "plan" field. It's identical to PlanEQ.
func Plan(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldPlan, v))
}

// PlanUntil applies equality check predicate on the "plan_until" field. It's identical to PlanUntilEQ.
func PlanUntil(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldPlanUntil, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Clinic {
	return predicate.Clinic(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Clinic {
	return predicate.Clinic(sql.FieldNotNull(FieldDeletedAt))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContainsFold(FieldName, v))
}

// TimezoneEQ applies the EQ predicate on the "timezone" field.
func TimezoneEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldTimezone, v))
}

// TimezoneNEQ applies the NEQ predicate on the "timezone" field.
func TimezoneNEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldTimezone, v))
}

// TimezoneIn applies the In predicate on the "timezone" field.
func TimezoneIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldTimezone, vs...))
}

// TimezoneNotIn applies the NotIn predicate on the "timezone" field.
func TimezoneNotIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldTimezone, vs...))
}

// TimezoneGT applies the GT predicate on the "timezone" field.
func TimezoneGT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldTimezone, v))
}

// TimezoneGTE applies the GTE predicate on the "timezone" field.
func TimezoneGTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldTimezone, v))
}

// TimezoneLT applies the LT predicate on the "timezone" field.
func TimezoneLT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldTimezone, v))
}

// TimezoneLTE applies the LTE predicate on the "timezone" field.
func TimezoneLTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldTimezone, v))
}

// TimezoneContains applies the Contains predicate on the "timezone" field.
func TimezoneContains(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContains(FieldTimezone, v))
}

// TimezoneHasPrefix applies the HasPrefix predicate on the "timezone" field.
func TimezoneHasPrefix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasPrefix(FieldTimezone, v))
}

// TimezoneHasSuffix applies the HasSuffix predicate on the "timezone" field.
func TimezoneHasSuffix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasSuffix(FieldTimezone, v))
}

// TimezoneEqualFold applies the EqualFold predicate on the "timezone" field.
func TimezoneEqualFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEqualFold(FieldTimezone, v))
}

// TimezoneContainsFold applies the ContainsFold predicate on the "timezone" field.
func TimezoneContainsFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContainsFold(FieldTimezone, v))
}

// PlanEQ applies the EQ predicate on the "plan" field.
func PlanEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldPlan, v))
}

// PlanNEQ applies the NEQ predicate on the "plan" field.
func PlanNEQ(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldPlan, v))
}

// PlanIn applies the In predicate on the "plan" field.
func PlanIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldPlan, vs...))
}

// PlanNotIn applies the NotIn predicate on the "plan" field.
func PlanNotIn(vs ...string) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldPlan, vs...))
}

// PlanGT applies the GT predicate on the "plan" field.
func PlanGT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldPlan, v))
}

// PlanGTE applies the GTE predicate on the "plan" field.
func PlanGTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldPlan, v))
}

// PlanLT applies the LT predicate on the "plan" field.
func PlanLT(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldPlan, v))
}

// PlanLTE applies the LTE predicate on the "plan" field.
func PlanLTE(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldPlan, v))
}

// PlanContains applies the Contains predicate on the "plan" field.
func PlanContains(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContains(FieldPlan, v))
}

// PlanHasPrefix applies the HasPrefix predicate on the "plan" field.
func PlanHasPrefix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasPrefix(FieldPlan, v))
}

// PlanHasSuffix applies the HasSuffix predicate on the "plan" field.
func PlanHasSuffix(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldHasSuffix(FieldPlan, v))
}

// PlanEqualFold applies the EqualFold predicate on the "plan" field.
func PlanEqualFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldEqualFold(FieldPlan, v))
}

// PlanContainsFold applies the ContainsFold predicate on the "plan" field.
func PlanContainsFold(v string) predicate.Clinic {
	return predicate.Clinic(sql.FieldContainsFold(FieldPlan, v))
}

// PlanStatusEQ applies the EQ predicate on the "plan_status" field.
func PlanStatusEQ(v PlanStatus) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldPlanStatus, v))
}

// PlanStatusNEQ applies the NEQ predicate on the "plan_status" field.
func PlanStatusNEQ(v PlanStatus) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldPlanStatus, v))
}

// PlanStatusIn applies the In predicate on the "plan_status" field.
func PlanStatusIn(vs ...PlanStatus) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldPlanStatus, vs...))
}

// PlanStatusNotIn applies the NotIn predicate on the "plan_status" field.
func PlanStatusNotIn(vs ...PlanStatus) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldPlanStatus, vs...))
}

// PlanUntilEQ applies the EQ predicate on the "plan_until" field.
func PlanUntilEQ(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldPlanUntil, v))
}

// PlanUntilNEQ applies the NEQ predicate on the "plan_until" field.
func PlanUntilNEQ(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldPlanUntil, v))
}

// PlanUntilIn applies the In predicate on the "plan_until" field.
func PlanUntilIn(vs ...time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldIn(FieldPlanUntil, vs...))
}

// PlanUntilNotIn applies the NotIn predicate on the "plan_until" field.
func PlanUntilNotIn(vs ...time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldNotIn(FieldPlanUntil, vs...))
}

// PlanUntilGT applies the GT predicate on the "plan_until" field.
func PlanUntilGT(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldGT(FieldPlanUntil, v))
}

// PlanUntilGTE applies the GTE predicate on the "plan_until" field.
func PlanUntilGTE(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldGTE(FieldPlanUntil, v))
}

// PlanUntilLT applies the LT predicate on the "plan_until" field.
func PlanUntilLT(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldLT(FieldPlanUntil, v))
}

// PlanUntilLTE applies the LTE predicate on the "plan_until" field.
func PlanUntilLTE(v time.Time) predicate.Clinic {
	return predicate.Clinic(sql.FieldLTE(FieldPlanUntil, v))
}

// PlanUntilIsNil applies the IsNil predicate on the "plan_until" field.
func PlanUntilIsNil() predicate.Clinic {
	return predicate.Clinic(sql.FieldIsNull(FieldPlanUntil))
}

// PlanUntilNotNil applies the NotNil predicate on the "plan_until" field.
func PlanUntilNotNil() predicate.Clinic {
	return predicate.Clinic(sql.FieldNotNull(FieldPlanUntil))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Clinic {
	return predicate.Clinic(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Clinic {
	return predicate.Clinic(sql.FieldNEQ(FieldIsActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Clinic) predicate.Clinic {
	return predicate.Clinic(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Clinic) predicate.Clinic {
	return predicate.Clinic(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Clinic) predicate.Clinic {
	return predicate.Clinic(sql.NotPredicates(p))
}
