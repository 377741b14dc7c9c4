package app

import (
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/medorahq/medora_backend/config"
	"github.com/medorahq/medora_backend/internal/events"
	"github.com/medorahq/medora_backend/internal/repo"
	"github.com/medorahq/medora_backend/internal/service/appointment"
	"github.com/medorahq/medora_backend/internal/service/assistant"
	"github.com/medorahq/medora_backend/internal/service/audit"
	"github.com/medorahq/medora_backend/internal/service/auth"
	"github.com/medorahq/medora_backend/internal/service/clinic"
	"github.com/medorahq/medora_backend/internal/service/doctor"
	"github.com/medorahq/medora_backend/internal/service/patient"
	"github.com/medorahq/medora_backend/internal/service/reminder"
	"github.com/medorahq/medora_backend/internal/service/schedule"
	"github.com/medorahq/medora_backend/internal/service/user"
	"github.com/medorahq/medora_backend/internal/service/webhook"
	"github.com/medorahq/medora_backend/pkg/database"
	"github.com/medorahq/medora_backend/pkg/email"
	pasetotoken "github.com/medorahq/medora_backend/pkg/paseto"
	"github.com/medorahq/medora_backend/pkg/session"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuditService,
		ProvideAuditRecorder,
		ProvideAuthService,
		ProvideUserService,
		ProvideClinicService,
		ProvideDoctorService,
		ProvideAssistantService,
		ProvidePatientService,
		ProvideAppointmentService,
		ProvideScheduleService,
		ProvideReminderService,
		ProvideWebhookService,
		ProvidePasetoManager,
	),
)

func ProvideAuditService(db *repo.Client) audit.Service {
	return audit.New(db, slog.Default())
}

// ProvideAuditRecorder exposes the audit service under its write-only
// collaborator interface for the other services.
func ProvideAuditRecorder(svc audit.Service) audit.Recorder {
	return svc
}

func ProvideAuthService(
	db *repo.Client,
	sessions session.Store,
	paseto *pasetotoken.Manager,
	rec audit.Recorder,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, sessions, paseto, rec, cfg)
}

func ProvideUserService(db *repo.Client, rec audit.Recorder, mail *email.Client) user.Service {
	return user.New(db, rec, mail)
}

func ProvideClinicService(db *repo.Client, rec audit.Recorder) clinic.Service {
	return clinic.New(db, rec)
}

func ProvideDoctorService(db *repo.Client, rec audit.Recorder) doctor.Service {
	return doctor.New(db, rec)
}

func ProvideAssistantService(db *repo.Client, rec audit.Recorder) assistant.Service {
	return assistant.New(db, rec)
}

func ProvidePatientService(db *repo.Client, rec audit.Recorder, pub *events.Publisher) patient.Service {
	return patient.New(db, rec, pub)
}

func ProvideAppointmentService(
	db *repo.Client,
	locker *database.AdvisoryLocker,
	rec audit.Recorder,
	pub *events.Publisher,
) appointment.Service {
	return appointment.New(db, locker, rec, pub)
}

func ProvideScheduleService(db *repo.Client, rec audit.Recorder) schedule.Service {
	return schedule.New(db, rec)
}

func ProvideReminderService(db *repo.Client, rec audit.Recorder) reminder.Service {
	return reminder.New(db, rec)
}

func ProvideWebhookService(db *repo.Client, rec audit.Recorder, cfg *config.Config) webhook.Service {
	timeout := time.Duration(cfg.Webhooks.DeliveryTimeoutSeconds) * time.Second
	return webhook.New(db, rec, slog.Default(), timeout)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
