package authorize

// Permission is a fine-grained capability string layered on top of the role
// check, in "resource:action" form.
type Permission string

const (
	PermAppointmentCreate   Permission = "appointment:create"
	PermAppointmentRead     Permission = "appointment:read"
	PermAppointmentList     Permission = "appointment:list"
	PermAppointmentUpdate   Permission = "appointment:update"
	PermAppointmentConfirm  Permission = "appointment:confirm"
	PermAppointmentComplete Permission = "appointment:complete"
	PermAppointmentCancel   Permission = "appointment:cancel"
	PermAppointmentNoShow   Permission = "appointment:noshow"

	PermWeeklySlotCreate Permission = "weekly_slot:create"
	PermWeeklySlotRead   Permission = "weekly_slot:read"
	PermWeeklySlotList   Permission = "weekly_slot:list"
	PermWeeklySlotUpdate Permission = "weekly_slot:update"
	PermWeeklySlotDelete Permission = "weekly_slot:delete"

	PermReminderRuleCreate Permission = "reminder_rule:create"
	PermReminderRuleList   Permission = "reminder_rule:list"
	PermReminderRuleUpdate Permission = "reminder_rule:update"
	PermReminderRuleDelete Permission = "reminder_rule:delete"

	PermReminderGenerate Permission = "reminder:generate"
	PermReminderList     Permission = "reminder:list"
	PermReminderCancel   Permission = "reminder:cancel"

	PermWebhookCreate Permission = "webhook:create"
	PermWebhookRead   Permission = "webhook:read"
	PermWebhookList   Permission = "webhook:list"
	PermWebhookUpdate Permission = "webhook:update"
	PermWebhookDelete Permission = "webhook:delete"
	PermWebhookTest   Permission = "webhook:test"

	PermAuditList   Permission = "audit:list"
	PermAuditDelete Permission = "audit:delete"

	PermClinicRead   Permission = "clinic:read"
	PermClinicUpdate Permission = "clinic:update"

	PermUserCreate Permission = "user:create"
	PermUserRead   Permission = "user:read"
	PermUserList   Permission = "user:list"
	PermUserUpdate Permission = "user:update"

	PermDoctorCreate Permission = "doctor:create"
	PermDoctorRead   Permission = "doctor:read"
	PermDoctorList   Permission = "doctor:list"
	PermDoctorUpdate Permission = "doctor:update"
	PermDoctorDelete Permission = "doctor:delete"

	PermAssistantCreate Permission = "assistant:create"
	PermAssistantRead   Permission = "assistant:read"
	PermAssistantList   Permission = "assistant:list"
	PermAssistantUpdate Permission = "assistant:update"
	PermAssistantDelete Permission = "assistant:delete"

	PermPatientCreate Permission = "patient:create"
	PermPatientRead   Permission = "patient:read"
	PermPatientList   Permission = "patient:list"
	PermPatientUpdate Permission = "patient:update"
	PermPatientDelete Permission = "patient:delete"
)

// AllPermissions lists every known permission. CLINIC_ADMIN holds all of
// them.
var AllPermissions = []Permission{
	PermAppointmentCreate, PermAppointmentRead, PermAppointmentList,
	PermAppointmentUpdate, PermAppointmentConfirm, PermAppointmentComplete,
	PermAppointmentCancel, PermAppointmentNoShow,
	PermWeeklySlotCreate, PermWeeklySlotRead, PermWeeklySlotList,
	PermWeeklySlotUpdate, PermWeeklySlotDelete,
	PermReminderRuleCreate, PermReminderRuleList, PermReminderRuleUpdate, PermReminderRuleDelete,
	PermReminderGenerate, PermReminderList, PermReminderCancel,
	PermWebhookCreate, PermWebhookRead, PermWebhookList,
	PermWebhookUpdate, PermWebhookDelete, PermWebhookTest,
	PermAuditList, PermAuditDelete,
	PermClinicRead, PermClinicUpdate,
	PermUserCreate, PermUserRead, PermUserList, PermUserUpdate,
	PermDoctorCreate, PermDoctorRead, PermDoctorList, PermDoctorUpdate, PermDoctorDelete,
	PermAssistantCreate, PermAssistantRead, PermAssistantList, PermAssistantUpdate, PermAssistantDelete,
	PermPatientCreate, PermPatientRead, PermPatientList, PermPatientUpdate, PermPatientDelete,
}

// RolePermissions is the static role→permission table, built once at
// package init. Row-level ownership restrictions for DOCTOR, ASSISTANT and
// PATIENT are applied separately in Authorize.
var RolePermissions = map[Role]map[Permission]struct{}{
	RoleClinicAdmin: permSet(AllPermissions...),

	RoleDoctor: permSet(
		PermAppointmentCreate, PermAppointmentRead, PermAppointmentList,
		PermAppointmentUpdate, PermAppointmentConfirm, PermAppointmentComplete,
		PermAppointmentCancel, PermAppointmentNoShow,
		PermWeeklySlotCreate, PermWeeklySlotRead, PermWeeklySlotList,
		PermWeeklySlotUpdate, PermWeeklySlotDelete,
		PermReminderGenerate, PermReminderList, PermReminderCancel,
		PermPatientRead, PermPatientList,
		PermDoctorRead,
		PermClinicRead,
		PermAuditList,
	),

	RoleAssistant: permSet(
		PermAppointmentCreate, PermAppointmentRead, PermAppointmentList,
		PermAppointmentUpdate, PermAppointmentConfirm, PermAppointmentComplete,
		PermAppointmentCancel, PermAppointmentNoShow,
		PermWeeklySlotRead, PermWeeklySlotList,
		PermReminderRuleList,
		PermReminderGenerate, PermReminderList, PermReminderCancel,
		PermPatientCreate, PermPatientRead, PermPatientList, PermPatientUpdate,
		PermDoctorRead, PermDoctorList,
		PermAssistantRead, PermAssistantUpdate,
		PermClinicRead,
	),

	RolePatient: permSet(
		PermAppointmentRead, PermAppointmentList, PermAppointmentCancel,
		PermPatientRead,
		PermDoctorList,
		PermClinicRead,
	),
}

func permSet(perms ...Permission) map[Permission]struct{} {
	s := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		s[p] = struct{}{}
	}
	return s
}

// RoleHas reports whether role holds perm in the static table.
func RoleHas(role Role, perm Permission) bool {
	_, ok := RolePermissions[role][perm]
	return ok
}
