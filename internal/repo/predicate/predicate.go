// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// Assistant is the predicate function for assistant builders.
type Assistant func(*sql.Selector)

// AuditLog is the predicate function for auditlog builders.
type AuditLog func(*sql.Selector)

// Clinic is the predicate function for clinic builders.
type Clinic func(*sql.Selector)

// Doctor is the predicate function for doctor builders.
type Doctor func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// Reminder is the predicate function for reminder builders.
type Reminder func(*sql.Selector)

// ReminderRule is the predicate function for reminderrule builders.
type ReminderRule func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// WebhookEndpoint is the predicate function for webhookendpoint builders.
type WebhookEndpoint func(*sql.Selector)

// WeeklySlot is the predicate function for weeklyslot builders.
type WeeklySlot func(*sql.Selector)
