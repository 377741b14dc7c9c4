// Code generated by ent, DO NOT EDIT.

package reminderrule

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medorahq/medora_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v uuid.UUID) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldEQ(FieldClinicID, v))
}

// OffsetMin applies equality check predicate on the "offset_min" field. It's identical to OffsetMinEQ.
func OffsetMin(v int) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldEQ(FieldOffsetMin, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldEQ(FieldIsActive, v))
}

// Template applies equality check predicate on the "template" field. It's identical to TemplateEQ.
func Template(v string) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldEQ(FieldTemplate, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldLTE(FieldUpdatedAt, v))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v uuid.UUID) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v uuid.UUID) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...uuid.UUID) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...uuid.UUID) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDGT applies the GT predicate on the "clinic_id" field.
func ClinicIDGT(v uuid.UUID) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldGT(FieldClinicID, v))
}

// ClinicIDGTE applies the GTE predicate on the "clinic_id" field.
func ClinicIDGTE(v uuid.UUID) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldGTE(FieldClinicID, v))
}

// ClinicIDLT applies the LT predicate on the "clinic_id" field.
func ClinicIDLT(v uuid.UUID) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldLT(FieldClinicID, v))
}

// ClinicIDLTE applies the LTE predicate on the "clinic_id" field.
func ClinicIDLTE(v uuid.UUID) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldLTE(FieldClinicID, v))
}

// OffsetMinEQ applies the EQ predicate on the "offset_min" field.
func OffsetMinEQ(v int) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldEQ(FieldOffsetMin, v))
}

// OffsetMinNEQ applies the NEQ predicate on the "offset_min" field.
func OffsetMinNEQ(v int) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldNEQ(FieldOffsetMin, v))
}

// OffsetMinIn applies the In predicate on the "offset_min" field.
func OffsetMinIn(vs ...int) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldIn(FieldOffsetMin, vs...))
}

// OffsetMinNotIn applies the NotIn predicate on the "offset_min" field.
func OffsetMinNotIn(vs ...int) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldNotIn(FieldOffsetMin, vs...))
}

// OffsetMinGT applies the GT predicate on the "offset_min" field.
func OffsetMinGT(v int) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldGT(FieldOffsetMin, v))
}

// OffsetMinGTE applies the GTE predicate on the "offset_min" field.
func OffsetMinGTE(v int) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldGTE(FieldOffsetMin, v))
}

// OffsetMinLT applies the LT predicate on the "offset_min" field.
func OffsetMinLT(v int) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldLT(FieldOffsetMin, v))
}

// OffsetMinLTE applies the LTE predicate on the "offset_min" field.
func OffsetMinLTE(v int) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldLTE(FieldOffsetMin, v))
}

// ChannelEQ applies the EQ predicate on the "channel" field.
func ChannelEQ(v Channel) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldEQ(FieldChannel, v))
}

// ChannelNEQ applies the NEQ predicate on the "channel" field.
func ChannelNEQ(v Channel) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldNEQ(FieldChannel, v))
}

// ChannelIn applies the In predicate on the "channel" field.
func ChannelIn(vs ...Channel) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldIn(FieldChannel, vs...))
}

// ChannelNotIn applies the NotIn predicate on the "channel" field.
func ChannelNotIn(vs ...Channel) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldNotIn(FieldChannel, vs...))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldNEQ(FieldIsActive, v))
}

// TemplateEQ applies the EQ predicate on the "template" field.
func TemplateEQ(v string) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldEQ(FieldTemplate, v))
}

// TemplateNEQ applies the NEQ predicate on the "template" field.
func TemplateNEQ(v string) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldNEQ(FieldTemplate, v))
}

// TemplateIn applies the In predicate on the "template" field.
func TemplateIn(vs ...string) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldIn(FieldTemplate, vs...))
}

// TemplateNotIn applies the NotIn predicate on the "template" field.
func TemplateNotIn(vs ...string) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldNotIn(FieldTemplate, vs...))
}

// TemplateGT applies the GT predicate on the "template" field.
func TemplateGT(v string) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldGT(FieldTemplate, v))
}

// TemplateGTE applies the GTE predicate on the "template" field.
func TemplateGTE(v string) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldGTE(FieldTemplate, v))
}

// TemplateLT applies the LT predicate on the "template" field.
func TemplateLT(v string) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldLT(FieldTemplate, v))
}

// TemplateLTE applies the LTE predicate on the "template" field.
func TemplateLTE(v string) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldLTE(FieldTemplate, v))
}

// TemplateContains applies the Contains predicate on the "template" field.
func TemplateContains(v string) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldContains(FieldTemplate, v))
}

// TemplateHasPrefix applies the HasPrefix predicate on the "template" field.
func TemplateHasPrefix(v string) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldHasPrefix(FieldTemplate, v))
}

// TemplateHasSuffix applies the HasSuffix predicate on the "template" field.
func TemplateHasSuffix(v string) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldHasSuffix(FieldTemplate, v))
}

// TemplateIsNil applies the IsNil predicate on the "template" field.
func TemplateIsNil() predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldIsNull(FieldTemplate))
}

// TemplateNotNil applies the NotNil predicate on the "template" field.
func TemplateNotNil() predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldNotNull(FieldTemplate))
}

// TemplateEqualFold applies the EqualFold predicate on the "template" field.
func TemplateEqualFold(v string) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldEqualFold(FieldTemplate, v))
}

// TemplateContainsFold applies the ContainsFold predicate on the "template" field.
func TemplateContainsFold(v string) predicate.ReminderRule {
	return predicate.ReminderRule(sql.FieldContainsFold(FieldTemplate, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ReminderRule) predicate.ReminderRule {
	return predicate.ReminderRule(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ReminderRule) predicate.ReminderRule {
	return predicate.ReminderRule(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ReminderRule) predicate.ReminderRule {
	return predicate.ReminderRule(sql.NotPredicates(p))
}
