package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/medorahq/medora_backend/config"
	"github.com/medorahq/medora_backend/internal/events"
	"github.com/medorahq/medora_backend/internal/repo"
	entappt "github.com/medorahq/medora_backend/internal/repo/appointment"
	entclinic "github.com/medorahq/medora_backend/internal/repo/clinic"
	entdoctor "github.com/medorahq/medora_backend/internal/repo/doctor"
	entpatient "github.com/medorahq/medora_backend/internal/repo/patient"
	"github.com/medorahq/medora_backend/internal/service/reminder"
	"github.com/medorahq/medora_backend/internal/service/webhook"
	"github.com/medorahq/medora_backend/pkg/email"
	"github.com/medorahq/medora_backend/pkg/sms"
)

// WorkerModule registers the background workers: the reminder due poller
// and the webhook event dispatcher.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	NC          *nats.Conn
	DB          *repo.Client
	ReminderSvc reminder.Service
	WebhookSvc  webhook.Service
	SMS         *sms.Client
	Email       *email.Client
}

func RegisterWorkers(p WorkerParams) {
	stop := make(chan struct{})

	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go runReminderPoller(stop, p)
			startWebhookDispatcher(p.NC, p.DB, p.WebhookSvc)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stop)
			// NATS drain is handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// reminder_worker
// ---------------------------------------------------------------------------

func runReminderPoller(stop <-chan struct{}, p WorkerParams) {
	interval := time.Duration(p.Cfg.Reminders.PollIntervalSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}
	batch := p.Cfg.Reminders.BatchSize
	if batch <= 0 {
		batch = 100
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	slog.Info("reminder_worker: started", "interval", interval.String(), "batch", batch)
	for {
		select {
		case <-stop:
			slog.Info("reminder_worker: stopped")
			return
		case now := <-t.C:
			deliverDueReminders(context.Background(), now, batch, p)
		}
	}
}

func deliverDueReminders(ctx context.Context, now time.Time, batch int, p WorkerParams) {
	due, err := p.ReminderSvc.ListDue(ctx, now, batch)
	if err != nil {
		slog.Error("reminder_worker: list due reminders failed", "err", err)
		return
	}

	for _, r := range due {
		if err := deliverReminder(ctx, r, p); err != nil {
			slog.Warn("reminder_worker: delivery failed", "reminder_id", r.ID.String(), "err", err)
			if err := p.ReminderSvc.RecordFailed(ctx, r.ID, err.Error()); err != nil {
				slog.Error("reminder_worker: record failure failed", "reminder_id", r.ID.String(), "err", err)
			}
			continue
		}
		if err := p.ReminderSvc.RecordSent(ctx, r.ID); err != nil {
			slog.Error("reminder_worker: record sent failed", "reminder_id", r.ID.String(), "err", err)
		}
	}
}

func deliverReminder(ctx context.Context, r *repo.Reminder, p WorkerParams) error {
	appt, err := p.DB.Appointment.Query().
		Where(entappt.ID(r.AppointmentID)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("load appointment: %w", err)
	}
	if appt.Status != "PENDING" && appt.Status != "CONFIRMED" {
		return fmt.Errorf("appointment is %s", appt.Status)
	}

	pat, err := p.DB.Patient.Query().
		Where(entpatient.ID(appt.PatientID)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("load patient: %w", err)
	}
	doc, err := p.DB.Doctor.Query().
		Where(entdoctor.ID(appt.DoctorID)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("load doctor: %w", err)
	}
	cl, err := p.DB.Clinic.Query().
		Where(entclinic.ID(appt.ClinicID)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("load clinic: %w", err)
	}

	doctorName := strings.TrimSpace(doc.FirstName + " " + doc.LastName)

	switch string(r.Channel) {
	case "SMS":
		if pat.Phone == nil {
			return fmt.Errorf("patient has no phone number")
		}
		loc, lerr := time.LoadLocation(cl.Timezone)
		if lerr != nil {
			loc = time.UTC
		}
		return p.SMS.SendTemplate(ctx, *pat.Phone, p.Cfg.SMS.SMSIR.TemplateID, map[string]string{
			"CLINIC": cl.Name,
			"DOCTOR": doctorName,
			"TIME":   appt.StartTime.In(loc).Format("2 Jan 15:04"),
		})

	case "EMAIL":
		if pat.Email == nil {
			return fmt.Errorf("patient has no email address")
		}
		reason := ""
		if appt.Reason != nil {
			reason = *appt.Reason
		}
		msg := email.BuildAppointmentReminderEmail(email.ReminderEmailData{
			PatientName: strings.TrimSpace(pat.FirstName + " " + pat.LastName),
			Email:       *pat.Email,
			ClinicName:  cl.Name,
			DoctorName:  doctorName,
			StartTime:   appt.StartTime,
			Timezone:    cl.Timezone,
			Reason:      reason,
		})
		return p.Email.Send(ctx, msg)

	default:
		return fmt.Errorf("unknown reminder channel %q", r.Channel)
	}
}

// ---------------------------------------------------------------------------
// webhook_worker
// ---------------------------------------------------------------------------

func startWebhookDispatcher(nc *nats.Conn, db *repo.Client, hooks webhook.Service) {
	_, err := nc.Subscribe(events.SubjectAll(), func(msg *nats.Msg) {
		event, clinicID, err := events.ParseSubject(msg.Subject)
		if err != nil {
			return
		}
		entityID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
		if err != nil {
			return
		}

		ctx := context.Background()

		data, err := eventData(ctx, db, event, clinicID, entityID)
		if err != nil {
			slog.Warn("webhook_worker: load event data failed",
				"event", event, "entity_id", entityID.String(), "err", err)
			return
		}

		hooks.Trigger(ctx, clinicID, event, data)
	})
	if err != nil {
		slog.Error("webhook_worker: subscribe failed", "err", err)
		return
	}

	slog.Info("webhook_worker: started")
}

func eventData(ctx context.Context, db *repo.Client, event string, clinicID, entityID uuid.UUID) (map[string]any, error) {
	switch {
	case strings.HasPrefix(event, "appointment."):
		appt, err := db.Appointment.Query().
			Where(entappt.ID(entityID), entappt.ClinicID(clinicID)).
			Only(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"id":         appt.ID.String(),
			"doctor_id":  appt.DoctorID.String(),
			"patient_id": appt.PatientID.String(),
			"start_time": appt.StartTime.UTC().Format(time.RFC3339),
			"end_time":   appt.EndTime.UTC().Format(time.RFC3339),
			"status":     string(appt.Status),
		}, nil

	case strings.HasPrefix(event, "patient."):
		pat, err := db.Patient.Query().
			Where(entpatient.ID(entityID), entpatient.ClinicID(clinicID)).
			Only(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"id":         pat.ID.String(),
			"first_name": pat.FirstName,
			"last_name":  pat.LastName,
		}, nil

	default:
		return map[string]any{"id": entityID.String()}, nil
	}
}
