// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"PENDING", "CONFIRMED", "CANCELLED", "NOSHOW", "COMPLETED"}, Default: "PENDING"},
		{Name: "source", Type: field.TypeString, Size: 50, Default: "staff"},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_by_id", Type: field.TypeUUID, Nullable: true},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_clinic_id_doctor_id_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[4], AppointmentsColumns[6]},
			},
			{
				Name:    "appointment_clinic_id_patient_id",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[5]},
			},
			{
				Name:    "appointment_doctor_id_status_start_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[8], AppointmentsColumns[6]},
			},
		},
	}
	// AssistantsColumns holds the columns for the "assistants" table.
	AssistantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "title", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// AssistantsTable holds the schema information for the "assistants" table.
	AssistantsTable = &schema.Table{
		Name:       "assistants",
		Columns:    AssistantsColumns,
		PrimaryKey: []*schema.Column{AssistantsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assistant_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{AssistantsColumns[4]},
			},
			{
				Name:    "assistant_clinic_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{AssistantsColumns[4], AssistantsColumns[5]},
			},
		},
	}
	// AuditLogsColumns holds the columns for the "audit_logs" table.
	AuditLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "actor_id", Type: field.TypeUUID, Nullable: true},
		{Name: "doctor_id", Type: field.TypeUUID, Nullable: true},
		{Name: "action", Type: field.TypeString, Size: 100},
		{Name: "entity", Type: field.TypeString, Size: 100},
		{Name: "entity_id", Type: field.TypeUUID, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
	}
	// AuditLogsTable holds the schema information for the "audit_logs" table.
	AuditLogsTable = &schema.Table{
		Name:       "audit_logs",
		Columns:    AuditLogsColumns,
		PrimaryKey: []*schema.Column{AuditLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditlog_clinic_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[2], AuditLogsColumns[1]},
			},
			{
				Name:    "auditlog_clinic_id_entity_entity_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[2], AuditLogsColumns[6], AuditLogsColumns[7]},
			},
			{
				Name:    "auditlog_clinic_id_doctor_id",
				Unique:  false,
				Columns: []*schema.Column{AuditLogsColumns[2], AuditLogsColumns[4]},
			},
		},
	}
	// ClinicsColumns holds the columns for the "clinics" table.
	ClinicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "timezone", Type: field.TypeString, Size: 64, Default: "UTC"},
		{Name: "plan", Type: field.TypeString, Size: 50, Default: "free"},
		{Name: "plan_status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "PAST_DUE", "CANCELLED"}, Default: "ACTIVE"},
		{Name: "plan_until", Type: field.TypeTime, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// ClinicsTable holds the schema information for the "clinics" table.
	ClinicsTable = &schema.Table{
		Name:       "clinics",
		Columns:    ClinicsColumns,
		PrimaryKey: []*schema.Column{ClinicsColumns[0]},
	}
	// DoctorsColumns holds the columns for the "doctors" table.
	DoctorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "specialty", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// DoctorsTable holds the schema information for the "doctors" table.
	DoctorsTable = &schema.Table{
		Name:       "doctors",
		Columns:    DoctorsColumns,
		PrimaryKey: []*schema.Column{DoctorsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "doctor_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{DoctorsColumns[4]},
			},
			{
				Name:    "doctor_clinic_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{DoctorsColumns[4], DoctorsColumns[5]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "date_of_birth", Type: field.TypeTime, Nullable: true},
		{Name: "gender", Type: field.TypeEnum, Nullable: true, Enums: []string{"male", "female", "other"}},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "patient_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[4]},
			},
			{
				Name:    "patient_clinic_id_user_id",
				Unique:  true,
				Columns: []*schema.Column{PatientsColumns[4], PatientsColumns[5]},
			},
			{
				Name:    "patient_clinic_id_last_name",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[4], PatientsColumns[7]},
			},
		},
	}
	// RemindersColumns holds the columns for the "reminders" table.
	RemindersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "appointment_id", Type: field.TypeUUID},
		{Name: "rule_id", Type: field.TypeUUID, Nullable: true},
		{Name: "channel", Type: field.TypeEnum, Enums: []string{"SMS", "EMAIL"}},
		{Name: "scheduled_for", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"SCHEDULED", "SENT", "FAILED", "SKIPPED"}, Default: "SCHEDULED"},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// RemindersTable holds the schema information for the "reminders" table.
	RemindersTable = &schema.Table{
		Name:       "reminders",
		Columns:    RemindersColumns,
		PrimaryKey: []*schema.Column{RemindersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reminder_appointment_id_rule_id",
				Unique:  true,
				Columns: []*schema.Column{RemindersColumns[4], RemindersColumns[5]},
			},
			{
				Name:    "reminder_status_scheduled_for",
				Unique:  false,
				Columns: []*schema.Column{RemindersColumns[8], RemindersColumns[7]},
			},
			{
				Name:    "reminder_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{RemindersColumns[3]},
			},
		},
	}
	// ReminderRulesColumns holds the columns for the "reminder_rules" table.
	ReminderRulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "offset_min", Type: field.TypeInt},
		{Name: "channel", Type: field.TypeEnum, Enums: []string{"SMS", "EMAIL"}},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "template", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// ReminderRulesTable holds the schema information for the "reminder_rules" table.
	ReminderRulesTable = &schema.Table{
		Name:       "reminder_rules",
		Columns:    ReminderRulesColumns,
		PrimaryKey: []*schema.Column{ReminderRulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reminderrule_clinic_id_offset_min_channel",
				Unique:  true,
				Columns: []*schema.Column{ReminderRulesColumns[3], ReminderRulesColumns[4], ReminderRulesColumns[5]},
			},
			{
				Name:    "reminderrule_clinic_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{ReminderRulesColumns[3], ReminderRulesColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"CLINIC_ADMIN", "DOCTOR", "ASSISTANT", "PATIENT"}},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "token_version", Type: field.TypeInt, Default: 0},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_clinic_id_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[4], UsersColumns[5]},
			},
			{
				Name:    "user_clinic_id_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4], UsersColumns[7]},
			},
		},
	}
	// WebhookEndpointsColumns holds the columns for the "webhook_endpoints" table.
	WebhookEndpointsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "url", Type: field.TypeString, Size: 500},
		{Name: "secret", Type: field.TypeString},
		{Name: "events", Type: field.TypeJSON},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "failure_count", Type: field.TypeInt, Default: 0},
		{Name: "last_success_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_failure_at", Type: field.TypeTime, Nullable: true},
	}
	// WebhookEndpointsTable holds the schema information for the "webhook_endpoints" table.
	WebhookEndpointsTable = &schema.Table{
		Name:       "webhook_endpoints",
		Columns:    WebhookEndpointsColumns,
		PrimaryKey: []*schema.Column{WebhookEndpointsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "webhookendpoint_clinic_id_url",
				Unique:  true,
				Columns: []*schema.Column{WebhookEndpointsColumns[3], WebhookEndpointsColumns[4]},
			},
			{
				Name:    "webhookendpoint_clinic_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{WebhookEndpointsColumns[3], WebhookEndpointsColumns[7]},
			},
		},
	}
	// WeeklySlotsColumns holds the columns for the "weekly_slots" table.
	WeeklySlotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "clinic_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
		{Name: "weekday", Type: field.TypeInt8},
		{Name: "start_time", Type: field.TypeString, Size: 5},
		{Name: "end_time", Type: field.TypeString, Size: 5},
		{Name: "duration_min", Type: field.TypeInt, Default: 30},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// WeeklySlotsTable holds the schema information for the "weekly_slots" table.
	WeeklySlotsTable = &schema.Table{
		Name:       "weekly_slots",
		Columns:    WeeklySlotsColumns,
		PrimaryKey: []*schema.Column{WeeklySlotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "weeklyslot_doctor_id_weekday_is_active",
				Unique:  false,
				Columns: []*schema.Column{WeeklySlotsColumns[4], WeeklySlotsColumns[5], WeeklySlotsColumns[9]},
			},
			{
				Name:    "weeklyslot_clinic_id",
				Unique:  false,
				Columns: []*schema.Column{WeeklySlotsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		AssistantsTable,
		AuditLogsTable,
		ClinicsTable,
		DoctorsTable,
		PatientsTable,
		RemindersTable,
		ReminderRulesTable,
		UsersTable,
		WebhookEndpointsTable,
		WeeklySlotsTable,
	}
)

func init() {
}
