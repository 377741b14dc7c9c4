// Code generated by ent, DO NOT EDIT.

package webhookendpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medorahq/medora_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v uuid.UUID) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldClinicID, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldURL, v))
}

// Secret applies equality check predicate on the "secret" field. It's identical to SecretEQ.
func Secret(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldSecret, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldIsActive, v))
}

// FailureCount applies equality check predicate on the "failure_count" field. It's identical to FailureCountEQ.
func FailureCount(v int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldFailureCount, v))
}

// LastSuccessAt applies equality check predicate on the "last_success_at" field. It's identical to LastSuccessAtEQ.
func LastSuccessAt(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldLastSuccessAt, v))
}

// LastFailureAt applies equality check predicate on the "last_failure_at" field. It's identical to LastFailureAtEQ.
func LastFailureAt(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldLastFailureAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLTE(FieldUpdatedAt, v))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v uuid.UUID) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v uuid.UUID) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...uuid.UUID) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...uuid.UUID) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDGT applies the GT predicate on the "clinic_id" field.
func ClinicIDGT(v uuid.UUID) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGT(FieldClinicID, v))
}

// ClinicIDGTE applies the GTE predicate on the "clinic_id" field.
func ClinicIDGTE(v uuid.UUID) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGTE(FieldClinicID, v))
}

// ClinicIDLT applies the LT predicate on the "clinic_id" field.
func ClinicIDLT(v uuid.UUID) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLT(FieldClinicID, v))
}

// ClinicIDLTE applies the LTE predicate on the "clinic_id" field.
func ClinicIDLTE(v uuid.UUID) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLTE(FieldClinicID, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldContainsFold(FieldURL, v))
}

// SecretEQ applies the EQ predicate on the "secret" field.
func SecretEQ(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldSecret, v))
}

// SecretNEQ applies the NEQ predicate on the "secret" field.
func SecretNEQ(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldSecret, v))
}

// SecretIn applies the In predicate on the "secret" field.
func SecretIn(vs ...string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIn(FieldSecret, vs...))
}

// SecretNotIn applies the NotIn predicate on the "secret" field.
func SecretNotIn(vs ...string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotIn(FieldSecret, vs...))
}

// SecretGT applies the GT predicate on the "secret" field.
func SecretGT(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGT(FieldSecret, v))
}

// SecretGTE applies the GTE predicate on the "secret" field.
func SecretGTE(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGTE(FieldSecret, v))
}

// SecretLT applies the LT predicate on the "secret" field.
func SecretLT(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLT(FieldSecret, v))
}

// SecretLTE applies the LTE predicate on the "secret" field.
func SecretLTE(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLTE(FieldSecret, v))
}

// SecretContains applies the Contains predicate on the "secret" field.
func SecretContains(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldContains(FieldSecret, v))
}

// SecretHasPrefix applies the HasPrefix predicate on the "secret" field.
func SecretHasPrefix(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldHasPrefix(FieldSecret, v))
}

// SecretHasSuffix applies the HasSuffix predicate on the "secret" field.
func SecretHasSuffix(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldHasSuffix(FieldSecret, v))
}

// SecretEqualFold applies the EqualFold predicate on the "secret" field.
func SecretEqualFold(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEqualFold(FieldSecret, v))
}

// SecretContainsFold applies the ContainsFold predicate on the "secret" field.
func SecretContainsFold(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldContainsFold(FieldSecret, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldIsActive, v))
}

// FailureCountEQ applies the EQ predicate on the "failure_count" field.
func FailureCountEQ(v int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldFailureCount, v))
}

// FailureCountNEQ applies the NEQ predicate on the "failure_count" field.
func FailureCountNEQ(v int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldFailureCount, v))
}

// FailureCountIn applies the In predicate on the "failure_count" field.
func FailureCountIn(vs ...int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIn(FieldFailureCount, vs...))
}

// FailureCountNotIn applies the NotIn predicate on the "failure_count" field.
func FailureCountNotIn(vs ...int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotIn(FieldFailureCount, vs...))
}

// FailureCountGT applies the GT predicate on the "failure_count" field.
func FailureCountGT(v int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGT(FieldFailureCount, v))
}

// FailureCountGTE applies the GTE predicate on the "failure_count" field.
func FailureCountGTE(v int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGTE(FieldFailureCount, v))
}

// FailureCountLT applies the LT predicate on the "failure_count" field.
func FailureCountLT(v int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLT(FieldFailureCount, v))
}

// FailureCountLTE applies the LTE predicate on the "failure_count" field.
func FailureCountLTE(v int) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLTE(FieldFailureCount, v))
}

// LastSuccessAtEQ applies the EQ predicate on the "last_success_at" field.
func LastSuccessAtEQ(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldLastSuccessAt, v))
}

// LastSuccessAtNEQ applies the NEQ predicate on the "last_success_at" field.
func LastSuccessAtNEQ(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldLastSuccessAt, v))
}

// LastSuccessAtIn applies the In predicate on the "last_success_at" field.
func LastSuccessAtIn(vs ...time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIn(FieldLastSuccessAt, vs...))
}

// LastSuccessAtNotIn applies the NotIn predicate on the "last_success_at" field.
func LastSuccessAtNotIn(vs ...time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotIn(FieldLastSuccessAt, vs...))
}

// LastSuccessAtGT applies the GT predicate on the "last_success_at" field.
func LastSuccessAtGT(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGT(FieldLastSuccessAt, v))
}

// LastSuccessAtGTE applies the GTE predicate on the "last_success_at" field.
func LastSuccessAtGTE(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGTE(FieldLastSuccessAt, v))
}

// LastSuccessAtLT applies the LT predicate on the "last_success_at" field.
func LastSuccessAtLT(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLT(FieldLastSuccessAt, v))
}

// LastSuccessAtLTE applies the LTE predicate on the "last_success_at" field.
func LastSuccessAtLTE(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLTE(FieldLastSuccessAt, v))
}

// LastSuccessAtIsNil applies the IsNil predicate on the "last_success_at" field.
func LastSuccessAtIsNil() predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIsNull(FieldLastSuccessAt))
}

// LastSuccessAtNotNil applies the NotNil predicate on the "last_success_at" field.
func LastSuccessAtNotNil() predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotNull(FieldLastSuccessAt))
}

// LastFailureAtEQ applies the EQ predicate on the "last_failure_at" field.
func LastFailureAtEQ(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldLastFailureAt, v))
}

// LastFailureAtNEQ applies the NEQ predicate on the "last_failure_at" field.
func LastFailureAtNEQ(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldLastFailureAt, v))
}

// LastFailureAtIn applies the In predicate on the "last_failure_at" field.
func LastFailureAtIn(vs ...time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIn(FieldLastFailureAt, vs...))
}

// LastFailureAtNotIn applies the NotIn predicate on the "last_failure_at" field.
func LastFailureAtNotIn(vs ...time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotIn(FieldLastFailureAt, vs...))
}

// LastFailureAtGT applies the GT predicate on the "last_failure_at" field.
func LastFailureAtGT(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGT(FieldLastFailureAt, v))
}

// LastFailureAtGTE applies the GTE predicate on the "last_failure_at" field.
func LastFailureAtGTE(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGTE(FieldLastFailureAt, v))
}

// LastFailureAtLT applies the LT predicate on the "last_failure_at" field.
func LastFailureAtLT(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLT(FieldLastFailureAt, v))
}

// LastFailureAtLTE applies the LTE predicate on the "last_failure_at" field.
func LastFailureAtLTE(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLTE(FieldLastFailureAt, v))
}

// LastFailureAtIsNil applies the IsNil predicate on the "last_failure_at" field.
func LastFailureAtIsNil() predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIsNull(FieldLastFailureAt))
}

// LastFailureAtNotNil applies the NotNil predicate on the "last_failure_at" field.
func LastFailureAtNotNil() predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotNull(FieldLastFailureAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WebhookEndpoint) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WebhookEndpoint) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WebhookEndpoint) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.NotPredicates(p))
}
