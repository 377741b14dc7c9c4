// Code generated by ent, DO NOT EDIT.

package weeklyslot

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medorahq/medora_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClinicID applies equality check predicate on the "clinic_id" field. It's identical to ClinicIDEQ.
func ClinicID(v uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldEQ(FieldClinicID, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldEQ(FieldDoctorID, v))
}

// Weekday applies equality check predicate on the "weekday" field. It's identical to WeekdayEQ.
func Weekday(v int8) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldEQ(FieldWeekday, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldEQ(FieldEndTime, v))
}

// DurationMin applies equality check predicate on the "duration_min" field. It's identical to DurationMinEQ.
func DurationMin(v int) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldEQ(FieldDurationMin, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldLTE(FieldUpdatedAt, v))
}

// ClinicIDEQ applies the EQ predicate on the "clinic_id" field.
func ClinicIDEQ(v uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldEQ(FieldClinicID, v))
}

// ClinicIDNEQ applies the NEQ predicate on the "clinic_id" field.
func ClinicIDNEQ(v uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldNEQ(FieldClinicID, v))
}

// ClinicIDIn applies the In predicate on the "clinic_id" field.
func ClinicIDIn(vs ...uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldIn(FieldClinicID, vs...))
}

// ClinicIDNotIn applies the NotIn predicate on the "clinic_id" field.
func ClinicIDNotIn(vs ...uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldNotIn(FieldClinicID, vs...))
}

// ClinicIDGT applies the GT predicate on the "clinic_id" field.
func ClinicIDGT(v uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldGT(FieldClinicID, v))
}

// ClinicIDGTE applies the GTE predicate on the "clinic_id" field.
func ClinicIDGTE(v uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldGTE(FieldClinicID, v))
}

// ClinicIDLT applies the LT predicate on the "clinic_id" field.
func ClinicIDLT(v uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldLT(FieldClinicID, v))
}

// ClinicIDLTE applies the LTE predicate on the "clinic_id" field.
func ClinicIDLTE(v uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldLTE(FieldClinicID, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v uuid.UUID) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldLTE(FieldDoctorID, v))
}

// WeekdayEQ applies the EQ predicate on the "weekday" field.
func WeekdayEQ(v int8) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldEQ(FieldWeekday, v))
}

// WeekdayNEQ applies the NEQ predicate on the "weekday" field.
func WeekdayNEQ(v int8) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldNEQ(FieldWeekday, v))
}

// WeekdayIn applies the In predicate on the "weekday" field.
func WeekdayIn(vs ...int8) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldIn(FieldWeekday, vs...))
}

// WeekdayNotIn applies the NotIn predicate on the "weekday" field.
func WeekdayNotIn(vs ...int8) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldNotIn(FieldWeekday, vs...))
}

// WeekdayGT applies the GT predicate on the "weekday" field.
func WeekdayGT(v int8) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldGT(FieldWeekday, v))
}

// WeekdayGTE applies the GTE predicate on the "weekday" field.
func WeekdayGTE(v int8) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldGTE(FieldWeekday, v))
}

// WeekdayLT applies the LT predicate on the "weekday" field.
func WeekdayLT(v int8) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldLT(FieldWeekday, v))
}

// WeekdayLTE applies the LTE predicate on the "weekday" field.
func WeekdayLTE(v int8) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldLTE(FieldWeekday, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldLTE(FieldStartTime, v))
}

// StartTimeContains applies the Contains predicate on the "start_time" field.
func StartTimeContains(v string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldContains(FieldStartTime, v))
}

// StartTimeHasPrefix applies the HasPrefix predicate on the "start_time" field.
func StartTimeHasPrefix(v string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldHasPrefix(FieldStartTime, v))
}

// StartTimeHasSuffix applies the HasSuffix predicate on the "start_time" field.
func StartTimeHasSuffix(v string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldHasSuffix(FieldStartTime, v))
}

// StartTimeEqualFold applies the EqualFold predicate on the "start_time" field.
func StartTimeEqualFold(v string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldEqualFold(FieldStartTime, v))
}

// StartTimeContainsFold applies the ContainsFold predicate on the "start_time" field.
func StartTimeContainsFold(v string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldContainsFold(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldLTE(FieldEndTime, v))
}

// EndTimeContains applies the Contains predicate on the "end_time" field.
func EndTimeContains(v string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldContains(FieldEndTime, v))
}

// EndTimeHasPrefix applies the HasPrefix predicate on the "end_time" field.
func EndTimeHasPrefix(v string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldHasPrefix(FieldEndTime, v))
}

// EndTimeHasSuffix applies the HasSuffix predicate on the "end_time" field.
func EndTimeHasSuffix(v string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldHasSuffix(FieldEndTime, v))
}

// EndTimeEqualFold applies the EqualFold predicate on the "end_time" field.
func EndTimeEqualFold(v string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldEqualFold(FieldEndTime, v))
}

// EndTimeContainsFold applies the ContainsFold predicate on the "end_time" field.
func EndTimeContainsFold(v string) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldContainsFold(FieldEndTime, v))
}

// DurationMinEQ applies the EQ predicate on the "duration_min" field.
func DurationMinEQ(v int) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldEQ(FieldDurationMin, v))
}

// DurationMinNEQ applies the NEQ predicate on the "duration_min" field.
func DurationMinNEQ(v int) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldNEQ(FieldDurationMin, v))
}

// DurationMinIn applies the In predicate on the "duration_min" field.
func DurationMinIn(vs ...int) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldIn(FieldDurationMin, vs...))
}

// DurationMinNotIn applies the NotIn predicate on the "duration_min" field.
func DurationMinNotIn(vs ...int) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldNotIn(FieldDurationMin, vs...))
}

// DurationMinGT applies the GT predicate on the "duration_min" field.
func DurationMinGT(v int) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldGT(FieldDurationMin, v))
}

// DurationMinGTE applies the GTE predicate on the "duration_min" field.
func DurationMinGTE(v int) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldGTE(FieldDurationMin, v))
}

// DurationMinLT applies the LT predicate on the "duration_min" field.
func DurationMinLT(v int) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldLT(FieldDurationMin, v))
}

// DurationMinLTE applies the LTE predicate on the "duration_min" field.
func DurationMinLTE(v int) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldLTE(FieldDurationMin, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.FieldNEQ(FieldIsActive, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WeeklySlot) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WeeklySlot) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WeeklySlot) predicate.WeeklySlot {
	return predicate.WeeklySlot(sql.NotPredicates(p))
}
