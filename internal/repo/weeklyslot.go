// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/medorahq/medora_backend/internal/repo/weeklyslot"
)

// WeeklySlot is the model entity for the WeeklySlot schema.
type WeeklySlot struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// FK → clinics.id
	ClinicID uuid.UUID `json:"clinic_id,omitempty"`
	// FK → doctors.id
	DoctorID uuid.UUID `json:"doctor_id,omitempty"`
	// ISO weekday: 1=Monday … 7=Sunday
	Weekday int8 `json:"weekday,omitempty"`
	// Zero-padded "HH:MM"
	StartTime string `json:"start_time,omitempty"`
	// Zero-padded "HH:MM"
	EndTime string `json:"end_time,omitempty"`
	// Length of bookable slots carved from this window
	DurationMin int `json:"duration_min,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive     bool `json:"is_active,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WeeklySlot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case weeklyslot.FieldIsActive:
			values[i] = new(sql.NullBool)
		case weeklyslot.FieldWeekday, weeklyslot.FieldDurationMin:
			values[i] = new(sql.NullInt64)
		case weeklyslot.FieldStartTime, weeklyslot.FieldEndTime:
			values[i] = new(sql.NullString)
		case weeklyslot.FieldCreatedAt, weeklyslot.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case weeklyslot.FieldID, weeklyslot.FieldClinicID, weeklyslot.FieldDoctorID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WeeklySlot fields.
func (_m *WeeklySlot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case weeklyslot.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case weeklyslot.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case weeklyslot.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case weeklyslot.FieldClinicID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value != nil {
				_m.ClinicID = *value
			}
		case weeklyslot.FieldDoctorID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field doctor_id", values[i])
			} else if value != nil {
				_m.DoctorID = *value
			}
		case weeklyslot.FieldWeekday:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field weekday", values[i])
			} else if value.Valid {
				_m.Weekday = int8(value.Int64)
			}
		case weeklyslot.FieldStartTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.String
			}
		case weeklyslot.FieldEndTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = value.String
			}
		case weeklyslot.FieldDurationMin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_min", values[i])
			} else if value.Valid {
				_m.DurationMin = int(value.Int64)
			}
		case weeklyslot.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WeeklySlot.
// This includes values selected through modifiers, order, etc.
func (_m *WeeklySlot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this WeeklySlot.
// Note that you need to call WeeklySlot.Unwrap() before calling this method if this WeeklySlot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WeeklySlot) Update() *WeeklySlotUpdateOne {
	return NewWeeklySlotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WeeklySlot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WeeklySlot) Unwrap() *WeeklySlot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: WeeklySlot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WeeklySlot) String() string {
	var builder strings.Builder
	builder.WriteString("WeeklySlot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("clinic_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClinicID))
	builder.WriteString(", ")
	builder.WriteString("doctor_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DoctorID))
	builder.WriteString(", ")
	builder.WriteString("weekday=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weekday))
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime)
	builder.WriteString(", ")
	builder.WriteString("end_time=")
	builder.WriteString(_m.EndTime)
	builder.WriteString(", ")
	builder.WriteString("duration_min=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMin))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteByte(')')
	return builder.String()
}

// WeeklySlots is a parsable slice of WeeklySlot.
type WeeklySlots []*WeeklySlot
