package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/medorahq/medora_backend/config"
	"github.com/medorahq/medora_backend/internal/api/http/handler"
	"github.com/medorahq/medora_backend/internal/api/http/middleware"
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
	pasetotoken "github.com/medorahq/medora_backend/pkg/paseto"
	"github.com/medorahq/medora_backend/pkg/session"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg            *config.Config
	Redis          *redis.Client
	DB             *repo.Client
	PasetoMgr      *pasetotoken.Manager
	Sessions       session.Store
	AuthSvc        auth.Service
	UserSvc        user.Service
	ClinicSvc      clinic.Service
	DoctorSvc      doctor.Service
	AssistantSvc   assistant.Service
	PatientSvc     patient.Service
	AppointmentSvc appointment.Service
	ScheduleSvc    schedule.Service
	ReminderSvc    reminder.Service
	WebhookSvc     webhook.Service
	AuditSvc       audit.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	// 1. Health & Metrics
	r.registerSystemRoutes(app)

	// 2. Initialize Middlewares
	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Sessions)
	withActor := middleware.ResolveActor(r.p.DB)
	requirePerm := middleware.RequirePermission

	// 3. Initialize Handlers
	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	clinicH := handler.NewClinicHandler(r.p.ClinicSvc)
	doctorH := handler.NewDoctorHandler(r.p.DoctorSvc)
	assistantH := handler.NewAssistantHandler(r.p.AssistantSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)
	scheduleH := handler.NewScheduleHandler(r.p.ScheduleSvc)
	reminderH := handler.NewReminderHandler(r.p.ReminderSvc)
	webhookH := handler.NewWebhookHandler(r.p.WebhookSvc)
	auditH := handler.NewAuditHandler(r.p.AuditSvc)

	api := app.Group("/api/v1")

	// 4. Delegate to sub-files
	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired, withActor, requirePerm)
	r.registerClinicRoutes(api, clinicH, authRequired, withActor, requirePerm)
	r.registerDoctorRoutes(api, doctorH, authRequired, withActor, requirePerm)
	r.registerAssistantRoutes(api, assistantH, authRequired, withActor, requirePerm)
	r.registerPatientRoutes(api, patientH, authRequired, withActor, requirePerm)
	r.registerAppointmentRoutes(api, appointmentH, reminderH, authRequired, withActor, requirePerm)
	r.registerScheduleRoutes(api, scheduleH, authRequired, withActor, requirePerm)
	r.registerReminderRoutes(api, reminderH, authRequired, withActor, requirePerm)
	r.registerWebhookRoutes(api, webhookH, authRequired, withActor, requirePerm)
	r.registerAuditRoutes(api, auditH, authRequired, withActor, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return r.p.Redis.Ping(c.Context()).Err() == nil },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
