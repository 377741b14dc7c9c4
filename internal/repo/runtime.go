// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/medorahq/medora_backend/internal/repo/appointment"
	"github.com/medorahq/medora_backend/internal/repo/assistant"
	"github.com/medorahq/medora_backend/internal/repo/auditlog"
	"github.com/medorahq/medora_backend/internal/repo/clinic"
	"github.com/medorahq/medora_backend/internal/repo/doctor"
	"github.com/medorahq/medora_backend/internal/repo/patient"
	"github.com/medorahq/medora_backend/internal/repo/reminder"
	"github.com/medorahq/medora_backend/internal/repo/reminderrule"
	"github.com/medorahq/medora_backend/internal/repo/user"
	"github.com/medorahq/medora_backend/internal/repo/webhookendpoint"
	"github.com/medorahq/medora_backend/internal/repo/weeklyslot"
	"github.com/medorahq/medora_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescSource is the schema descriptor for source field.
	appointmentDescSource := appointmentFields[6].Descriptor()
	// appointment.DefaultSource holds the default value on creation for the source field.
	appointment.DefaultSource = appointmentDescSource.Default.(string)
	// appointment.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	appointment.SourceValidator = appointmentDescSource.Validators[0].(func(string) error)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	assistantMixin := schema.Assistant{}.Mixin()
	assistantMixinFields0 := assistantMixin[0].Fields()
	_ = assistantMixinFields0
	assistantMixinFields1 := assistantMixin[1].Fields()
	_ = assistantMixinFields1
	assistantFields := schema.Assistant{}.Fields()
	_ = assistantFields
	// assistantDescCreatedAt is the schema descriptor for created_at field.
	assistantDescCreatedAt := assistantMixinFields1[0].Descriptor()
	// assistant.DefaultCreatedAt holds the default value on creation for the created_at field.
	assistant.DefaultCreatedAt = assistantDescCreatedAt.Default.(func() time.Time)
	// assistantDescUpdatedAt is the schema descriptor for updated_at field.
	assistantDescUpdatedAt := assistantMixinFields1[1].Descriptor()
	// assistant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	assistant.DefaultUpdatedAt = assistantDescUpdatedAt.Default.(func() time.Time)
	// assistant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	assistant.UpdateDefaultUpdatedAt = assistantDescUpdatedAt.UpdateDefault.(func() time.Time)
	// assistantDescFirstName is the schema descriptor for first_name field.
	assistantDescFirstName := assistantFields[2].Descriptor()
	// assistant.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	assistant.FirstNameValidator = func() func(string) error {
		validators := assistantDescFirstName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(first_name string) error {
			for _, fn := range fns {
				if err := fn(first_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// assistantDescLastName is the schema descriptor for last_name field.
	assistantDescLastName := assistantFields[3].Descriptor()
	// assistant.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	assistant.LastNameValidator = func() func(string) error {
		validators := assistantDescLastName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(last_name string) error {
			for _, fn := range fns {
				if err := fn(last_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// assistantDescTitle is the schema descriptor for title field.
	assistantDescTitle := assistantFields[4].Descriptor()
	// assistant.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	assistant.TitleValidator = assistantDescTitle.Validators[0].(func(string) error)
	// assistantDescPhone is the schema descriptor for phone field.
	assistantDescPhone := assistantFields[5].Descriptor()
	// assistant.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	assistant.PhoneValidator = assistantDescPhone.Validators[0].(func(string) error)
	// assistantDescIsActive is the schema descriptor for is_active field.
	assistantDescIsActive := assistantFields[6].Descriptor()
	// assistant.DefaultIsActive holds the default value on creation for the is_active field.
	assistant.DefaultIsActive = assistantDescIsActive.Default.(bool)
	// assistantDescID is the schema descriptor for id field.
	assistantDescID := assistantMixinFields0[0].Descriptor()
	// assistant.DefaultID holds the default value on creation for the id field.
	assistant.DefaultID = assistantDescID.Default.(func() uuid.UUID)
	auditlogMixin := schema.AuditLog{}.Mixin()
	auditlogMixinFields0 := auditlogMixin[0].Fields()
	_ = auditlogMixinFields0
	auditlogMixinFields1 := auditlogMixin[1].Fields()
	_ = auditlogMixinFields1
	auditlogFields := schema.AuditLog{}.Fields()
	_ = auditlogFields
	// auditlogDescCreatedAt is the schema descriptor for created_at field.
	auditlogDescCreatedAt := auditlogMixinFields1[0].Descriptor()
	// auditlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditlog.DefaultCreatedAt = auditlogDescCreatedAt.Default.(func() time.Time)
	// auditlogDescAction is the schema descriptor for action field.
	auditlogDescAction := auditlogFields[3].Descriptor()
	// auditlog.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	auditlog.ActionValidator = func() func(string) error {
		validators := auditlogDescAction.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(action string) error {
			for _, fn := range fns {
				if err := fn(action); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// auditlogDescEntity is the schema descriptor for entity field.
	auditlogDescEntity := auditlogFields[4].Descriptor()
	// auditlog.EntityValidator is a validator for the "entity" field. It is called by the builders before save.
	auditlog.EntityValidator = func() func(string) error {
		validators := auditlogDescEntity.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(entity string) error {
			for _, fn := range fns {
				if err := fn(entity); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// auditlogDescID is the schema descriptor for id field.
	auditlogDescID := auditlogMixinFields0[0].Descriptor()
	// auditlog.DefaultID holds the default value on creation for the id field.
	auditlog.DefaultID = auditlogDescID.Default.(func() uuid.UUID)
	clinicMixin := schema.Clinic{}.Mixin()
	clinicMixinFields0 := clinicMixin[0].Fields()
	_ = clinicMixinFields0
	clinicMixinFields1 := clinicMixin[1].Fields()
	_ = clinicMixinFields1
	clinicFields := schema.Clinic{}.Fields()
	_ = clinicFields
	// clinicDescCreatedAt is the schema descriptor for created_at field.
	clinicDescCreatedAt := clinicMixinFields1[0].Descriptor()
	// clinic.DefaultCreatedAt holds the default value on creation for the created_at field.
	clinic.DefaultCreatedAt = clinicDescCreatedAt.Default.(func() time.Time)
	// clinicDescUpdatedAt is the schema descriptor for updated_at field.
	clinicDescUpdatedAt := clinicMixinFields1[1].Descriptor()
	// clinic.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clinic.DefaultUpdatedAt = clinicDescUpdatedAt.Default.(func() time.Time)
	// clinic.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clinic.UpdateDefaultUpdatedAt = clinicDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clinicDescName is the schema descriptor for name field.
	clinicDescName := clinicFields[0].Descriptor()
	// clinic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	clinic.NameValidator = func() func(string) error {
		validators := clinicDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// clinicDescTimezone is the schema descriptor for timezone field.
	clinicDescTimezone := clinicFields[1].Descriptor()
	// clinic.DefaultTimezone holds the default value on creation for the timezone field.
	clinic.DefaultTimezone = clinicDescTimezone.Default.(string)
	// clinic.TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	clinic.TimezoneValidator = clinicDescTimezone.Validators[0].(func(string) error)
	// clinicDescPlan is the schema descriptor for plan field.
	clinicDescPlan := clinicFields[2].Descriptor()
	// clinic.DefaultPlan holds the default value on creation for the plan field.
	clinic.DefaultPlan = clinicDescPlan.Default.(string)
	// clinic.PlanValidator is a validator for the "plan" field. It is called by the builders before save.
	clinic.PlanValidator = clinicDescPlan.Validators[0].(func(string) error)
	// clinicDescIsActive is the schema descriptor for is_active field.
	clinicDescIsActive := clinicFields[5].Descriptor()
	// clinic.DefaultIsActive holds the default value on creation for the is_active field.
	clinic.DefaultIsActive = clinicDescIsActive.Default.(bool)
	// clinicDescID is the schema descriptor for id field.
	clinicDescID := clinicMixinFields0[0].Descriptor()
	// clinic.DefaultID holds the default value on creation for the id field.
	clinic.DefaultID = clinicDescID.Default.(func() uuid.UUID)
	doctorMixin := schema.Doctor{}.Mixin()
	doctorMixinFields0 := doctorMixin[0].Fields()
	_ = doctorMixinFields0
	doctorMixinFields1 := doctorMixin[1].Fields()
	_ = doctorMixinFields1
	doctorFields := schema.Doctor{}.Fields()
	_ = doctorFields
	// doctorDescCreatedAt is the schema descriptor for created_at field.
	doctorDescCreatedAt := doctorMixinFields1[0].Descriptor()
	// doctor.DefaultCreatedAt holds the default value on creation for the created_at field.
	doctor.DefaultCreatedAt = doctorDescCreatedAt.Default.(func() time.Time)
	// doctorDescUpdatedAt is the schema descriptor for updated_at field.
	doctorDescUpdatedAt := doctorMixinFields1[1].Descriptor()
	// doctor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	doctor.DefaultUpdatedAt = doctorDescUpdatedAt.Default.(func() time.Time)
	// doctor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	doctor.UpdateDefaultUpdatedAt = doctorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// doctorDescFirstName is the schema descriptor for first_name field.
	doctorDescFirstName := doctorFields[2].Descriptor()
	// doctor.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	doctor.FirstNameValidator = func() func(string) error {
		validators := doctorDescFirstName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(first_name string) error {
			for _, fn := range fns {
				if err := fn(first_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// doctorDescLastName is the schema descriptor for last_name field.
	doctorDescLastName := doctorFields[3].Descriptor()
	// doctor.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	doctor.LastNameValidator = func() func(string) error {
		validators := doctorDescLastName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(last_name string) error {
			for _, fn := range fns {
				if err := fn(last_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// doctorDescSpecialty is the schema descriptor for specialty field.
	doctorDescSpecialty := doctorFields[4].Descriptor()
	// doctor.SpecialtyValidator is a validator for the "specialty" field. It is called by the builders before save.
	doctor.SpecialtyValidator = doctorDescSpecialty.Validators[0].(func(string) error)
	// doctorDescPhone is the schema descriptor for phone field.
	doctorDescPhone := doctorFields[5].Descriptor()
	// doctor.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	doctor.PhoneValidator = doctorDescPhone.Validators[0].(func(string) error)
	// doctorDescIsActive is the schema descriptor for is_active field.
	doctorDescIsActive := doctorFields[6].Descriptor()
	// doctor.DefaultIsActive holds the default value on creation for the is_active field.
	doctor.DefaultIsActive = doctorDescIsActive.Default.(bool)
	// doctorDescID is the schema descriptor for id field.
	doctorDescID := doctorMixinFields0[0].Descriptor()
	// doctor.DefaultID holds the default value on creation for the id field.
	doctor.DefaultID = doctorDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescFirstName is the schema descriptor for first_name field.
	patientDescFirstName := patientFields[2].Descriptor()
	// patient.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	patient.FirstNameValidator = func() func(string) error {
		validators := patientDescFirstName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(first_name string) error {
			for _, fn := range fns {
				if err := fn(first_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientDescLastName is the schema descriptor for last_name field.
	patientDescLastName := patientFields[3].Descriptor()
	// patient.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	patient.LastNameValidator = func() func(string) error {
		validators := patientDescLastName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(last_name string) error {
			for _, fn := range fns {
				if err := fn(last_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// patientDescPhone is the schema descriptor for phone field.
	patientDescPhone := patientFields[4].Descriptor()
	// patient.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	patient.PhoneValidator = patientDescPhone.Validators[0].(func(string) error)
	// patientDescEmail is the schema descriptor for email field.
	patientDescEmail := patientFields[5].Descriptor()
	// patient.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	patient.EmailValidator = patientDescEmail.Validators[0].(func(string) error)
	// patientDescIsActive is the schema descriptor for is_active field.
	patientDescIsActive := patientFields[9].Descriptor()
	// patient.DefaultIsActive holds the default value on creation for the is_active field.
	patient.DefaultIsActive = patientDescIsActive.Default.(bool)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	reminderMixin := schema.Reminder{}.Mixin()
	reminderMixinFields0 := reminderMixin[0].Fields()
	_ = reminderMixinFields0
	reminderMixinFields1 := reminderMixin[1].Fields()
	_ = reminderMixinFields1
	reminderFields := schema.Reminder{}.Fields()
	_ = reminderFields
	// reminderDescCreatedAt is the schema descriptor for created_at field.
	reminderDescCreatedAt := reminderMixinFields1[0].Descriptor()
	// reminder.DefaultCreatedAt holds the default value on creation for the created_at field.
	reminder.DefaultCreatedAt = reminderDescCreatedAt.Default.(func() time.Time)
	// reminderDescUpdatedAt is the schema descriptor for updated_at field.
	reminderDescUpdatedAt := reminderMixinFields1[1].Descriptor()
	// reminder.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reminder.DefaultUpdatedAt = reminderDescUpdatedAt.Default.(func() time.Time)
	// reminder.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reminder.UpdateDefaultUpdatedAt = reminderDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reminderDescID is the schema descriptor for id field.
	reminderDescID := reminderMixinFields0[0].Descriptor()
	// reminder.DefaultID holds the default value on creation for the id field.
	reminder.DefaultID = reminderDescID.Default.(func() uuid.UUID)
	reminderruleMixin := schema.ReminderRule{}.Mixin()
	reminderruleMixinFields0 := reminderruleMixin[0].Fields()
	_ = reminderruleMixinFields0
	reminderruleMixinFields1 := reminderruleMixin[1].Fields()
	_ = reminderruleMixinFields1
	reminderruleFields := schema.ReminderRule{}.Fields()
	_ = reminderruleFields
	// reminderruleDescCreatedAt is the schema descriptor for created_at field.
	reminderruleDescCreatedAt := reminderruleMixinFields1[0].Descriptor()
	// reminderrule.DefaultCreatedAt holds the default value on creation for the created_at field.
	reminderrule.DefaultCreatedAt = reminderruleDescCreatedAt.Default.(func() time.Time)
	// reminderruleDescUpdatedAt is the schema descriptor for updated_at field.
	reminderruleDescUpdatedAt := reminderruleMixinFields1[1].Descriptor()
	// reminderrule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	reminderrule.DefaultUpdatedAt = reminderruleDescUpdatedAt.Default.(func() time.Time)
	// reminderrule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	reminderrule.UpdateDefaultUpdatedAt = reminderruleDescUpdatedAt.UpdateDefault.(func() time.Time)
	// reminderruleDescOffsetMin is the schema descriptor for offset_min field.
	reminderruleDescOffsetMin := reminderruleFields[1].Descriptor()
	// reminderrule.OffsetMinValidator is a validator for the "offset_min" field. It is called by the builders before save.
	reminderrule.OffsetMinValidator = reminderruleDescOffsetMin.Validators[0].(func(int) error)
	// reminderruleDescIsActive is the schema descriptor for is_active field.
	reminderruleDescIsActive := reminderruleFields[3].Descriptor()
	// reminderrule.DefaultIsActive holds the default value on creation for the is_active field.
	reminderrule.DefaultIsActive = reminderruleDescIsActive.Default.(bool)
	// reminderruleDescID is the schema descriptor for id field.
	reminderruleDescID := reminderruleMixinFields0[0].Descriptor()
	// reminderrule.DefaultID holds the default value on creation for the id field.
	reminderrule.DefaultID = reminderruleDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[4].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescTokenVersion is the schema descriptor for token_version field.
	userDescTokenVersion := userFields[5].Descriptor()
	// user.DefaultTokenVersion holds the default value on creation for the token_version field.
	user.DefaultTokenVersion = userDescTokenVersion.Default.(int)
	// user.TokenVersionValidator is a validator for the "token_version" field. It is called by the builders before save.
	user.TokenVersionValidator = userDescTokenVersion.Validators[0].(func(int) error)
	// userDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	userDescFailedLoginAttempts := userFields[7].Descriptor()
	// user.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	user.DefaultFailedLoginAttempts = userDescFailedLoginAttempts.Default.(int)
	// user.FailedLoginAttemptsValidator is a validator for the "failed_login_attempts" field. It is called by the builders before save.
	user.FailedLoginAttemptsValidator = userDescFailedLoginAttempts.Validators[0].(func(int) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	webhookendpointMixin := schema.WebhookEndpoint{}.Mixin()
	webhookendpointMixinFields0 := webhookendpointMixin[0].Fields()
	_ = webhookendpointMixinFields0
	webhookendpointMixinFields1 := webhookendpointMixin[1].Fields()
	_ = webhookendpointMixinFields1
	webhookendpointFields := schema.WebhookEndpoint{}.Fields()
	_ = webhookendpointFields
	// webhookendpointDescCreatedAt is the schema descriptor for created_at field.
	webhookendpointDescCreatedAt := webhookendpointMixinFields1[0].Descriptor()
	// webhookendpoint.DefaultCreatedAt holds the default value on creation for the created_at field.
	webhookendpoint.DefaultCreatedAt = webhookendpointDescCreatedAt.Default.(func() time.Time)
	// webhookendpointDescUpdatedAt is the schema descriptor for updated_at field.
	webhookendpointDescUpdatedAt := webhookendpointMixinFields1[1].Descriptor()
	// webhookendpoint.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	webhookendpoint.DefaultUpdatedAt = webhookendpointDescUpdatedAt.Default.(func() time.Time)
	// webhookendpoint.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	webhookendpoint.UpdateDefaultUpdatedAt = webhookendpointDescUpdatedAt.UpdateDefault.(func() time.Time)
	// webhookendpointDescURL is the schema descriptor for url field.
	webhookendpointDescURL := webhookendpointFields[1].Descriptor()
	// webhookendpoint.URLValidator is a validator for the "url" field. It is called by the builders before save.
	webhookendpoint.URLValidator = func() func(string) error {
		validators := webhookendpointDescURL.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(url string) error {
			for _, fn := range fns {
				if err := fn(url); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// webhookendpointDescSecret is the schema descriptor for secret field.
	webhookendpointDescSecret := webhookendpointFields[2].Descriptor()
	// webhookendpoint.SecretValidator is a validator for the "secret" field. It is called by the builders before save.
	webhookendpoint.SecretValidator = webhookendpointDescSecret.Validators[0].(func(string) error)
	// webhookendpointDescIsActive is the schema descriptor for is_active field.
	webhookendpointDescIsActive := webhookendpointFields[4].Descriptor()
	// webhookendpoint.DefaultIsActive holds the default value on creation for the is_active field.
	webhookendpoint.DefaultIsActive = webhookendpointDescIsActive.Default.(bool)
	// webhookendpointDescFailureCount is the schema descriptor for failure_count field.
	webhookendpointDescFailureCount := webhookendpointFields[5].Descriptor()
	// webhookendpoint.DefaultFailureCount holds the default value on creation for the failure_count field.
	webhookendpoint.DefaultFailureCount = webhookendpointDescFailureCount.Default.(int)
	// webhookendpoint.FailureCountValidator is a validator for the "failure_count" field. It is called by the builders before save.
	webhookendpoint.FailureCountValidator = webhookendpointDescFailureCount.Validators[0].(func(int) error)
	// webhookendpointDescID is the schema descriptor for id field.
	webhookendpointDescID := webhookendpointMixinFields0[0].Descriptor()
	// webhookendpoint.DefaultID holds the default value on creation for the id field.
	webhookendpoint.DefaultID = webhookendpointDescID.Default.(func() uuid.UUID)
	weeklyslotMixin := schema.WeeklySlot{}.Mixin()
	weeklyslotMixinFields0 := weeklyslotMixin[0].Fields()
	_ = weeklyslotMixinFields0
	weeklyslotMixinFields1 := weeklyslotMixin[1].Fields()
	_ = weeklyslotMixinFields1
	weeklyslotFields := schema.WeeklySlot{}.Fields()
	_ = weeklyslotFields
	// weeklyslotDescCreatedAt is the schema descriptor for created_at field.
	weeklyslotDescCreatedAt := weeklyslotMixinFields1[0].Descriptor()
	// weeklyslot.DefaultCreatedAt holds the default value on creation for the created_at field.
	weeklyslot.DefaultCreatedAt = weeklyslotDescCreatedAt.Default.(func() time.Time)
	// weeklyslotDescUpdatedAt is the schema descriptor for updated_at field.
	weeklyslotDescUpdatedAt := weeklyslotMixinFields1[1].Descriptor()
	// weeklyslot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	weeklyslot.DefaultUpdatedAt = weeklyslotDescUpdatedAt.Default.(func() time.Time)
	// weeklyslot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	weeklyslot.UpdateDefaultUpdatedAt = weeklyslotDescUpdatedAt.UpdateDefault.(func() time.Time)
	// weeklyslotDescWeekday is the schema descriptor for weekday field.
	weeklyslotDescWeekday := weeklyslotFields[2].Descriptor()
	// weeklyslot.WeekdayValidator is a validator for the "weekday" field. It is called by the builders before save.
	weeklyslot.WeekdayValidator = func() func(int8) error {
		validators := weeklyslotDescWeekday.Validators
		fns := [...]func(int8) error{
			validators[0].(func(int8) error),
			validators[1].(func(int8) error),
		}
		return func(weekday int8) error {
			for _, fn := range fns {
				if err := fn(weekday); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// weeklyslotDescStartTime is the schema descriptor for start_time field.
	weeklyslotDescStartTime := weeklyslotFields[3].Descriptor()
	// weeklyslot.StartTimeValidator is a validator for the "start_time" field. It is called by the builders before save.
	weeklyslot.StartTimeValidator = weeklyslotDescStartTime.Validators[0].(func(string) error)
	// weeklyslotDescEndTime is the schema descriptor for end_time field.
	weeklyslotDescEndTime := weeklyslotFields[4].Descriptor()
	// weeklyslot.EndTimeValidator is a validator for the "end_time" field. It is called by the builders before save.
	weeklyslot.EndTimeValidator = weeklyslotDescEndTime.Validators[0].(func(string) error)
	// weeklyslotDescDurationMin is the schema descriptor for duration_min field.
	weeklyslotDescDurationMin := weeklyslotFields[5].Descriptor()
	// weeklyslot.DefaultDurationMin holds the default value on creation for the duration_min field.
	weeklyslot.DefaultDurationMin = weeklyslotDescDurationMin.Default.(int)
	// weeklyslot.DurationMinValidator is a validator for the "duration_min" field. It is called by the builders before save.
	weeklyslot.DurationMinValidator = weeklyslotDescDurationMin.Validators[0].(func(int) error)
	// weeklyslotDescIsActive is the schema descriptor for is_active field.
	weeklyslotDescIsActive := weeklyslotFields[6].Descriptor()
	// weeklyslot.DefaultIsActive holds the default value on creation for the is_active field.
	weeklyslot.DefaultIsActive = weeklyslotDescIsActive.Default.(bool)
	// weeklyslotDescID is the schema descriptor for id field.
	weeklyslotDescID := weeklyslotMixinFields0[0].Descriptor()
	// weeklyslot.DefaultID holds the default value on creation for the id field.
	weeklyslot.DefaultID = weeklyslotDescID.Default.(func() uuid.UUID)
}
