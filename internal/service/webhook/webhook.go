package webhook

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"github.com/medorahq/medora_backend/internal/events"
	"github.com/medorahq/medora_backend/internal/repo"
	entep "github.com/medorahq/medora_backend/internal/repo/webhookendpoint"
	"github.com/medorahq/medora_backend/internal/service/audit"
	"github.com/medorahq/medora_backend/pkg/authorize"
)

// TestEvent is the event name used for test deliveries. It is not part of
// the subscribable allow-list.
const TestEvent = "webhook.test"

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateEndpointRequest struct {
	URL    string
	Secret string
	Events []string
}

func (r CreateEndpointRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.URL, validation.Required, is.URL, validation.By(httpScheme)),
		validation.Field(&r.Secret, validation.Required, validation.Length(32, 0)),
		validation.Field(&r.Events, validation.Required, validation.Each(validation.By(knownEvent))),
	)
}

type UpdateEndpointRequest struct {
	URL      *string
	Secret   *string
	Events   []string
	IsActive *bool
}

func (r UpdateEndpointRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.URL, validation.NilOrNotEmpty, is.URL, validation.By(httpSchemePtr)),
		validation.Field(&r.Secret, validation.When(r.Secret != nil, validation.By(secretLenPtr))),
		validation.Field(&r.Events, validation.Each(validation.By(knownEvent))),
	)
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Create(ctx context.Context, actor authorize.Actor, req CreateEndpointRequest) (*repo.WebhookEndpoint, error)
	GetByID(ctx context.Context, actor authorize.Actor, endpointID uuid.UUID) (*repo.WebhookEndpoint, error)
	List(ctx context.Context, actor authorize.Actor) ([]*repo.WebhookEndpoint, error)
	Update(ctx context.Context, actor authorize.Actor, endpointID uuid.UUID, req UpdateEndpointRequest) (*repo.WebhookEndpoint, error)
	Delete(ctx context.Context, actor authorize.Actor, endpointID uuid.UUID) error

	// Test sends one synchronous delivery and surfaces the outcome.
	Test(ctx context.Context, actor authorize.Actor, endpointID uuid.UUID) error

	// Trigger fans the event out to every matching active endpoint. It
	// waits for all deliveries to settle and never reports an error:
	// failures are recorded per endpoint and logged.
	Trigger(ctx context.Context, clinicID uuid.UUID, event string, data any)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type webhookService struct {
	db      *repo.Client
	audit   audit.Recorder
	logger  *slog.Logger
	deliver *deliverer
}

func New(db *repo.Client, rec audit.Recorder, logger *slog.Logger, deliveryTimeout time.Duration) Service {
	return &webhookService{
		db:      db,
		audit:   rec,
		logger:  logger,
		deliver: newDeliverer(deliveryTimeout),
	}
}

func (s *webhookService) Create(ctx context.Context, actor authorize.Actor, req CreateEndpointRequest) (*repo.WebhookEndpoint, error) {
	if err := authorize.Authorize(actor, authorize.PermWebhookCreate, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ep, err := s.db.WebhookEndpoint.Create().
		SetClinicID(actor.ClinicID).
		SetURL(req.URL).
		SetSecret(req.Secret).
		SetEvents(req.Events).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrDuplicateURL
		}
		return nil, fmt.Errorf("create webhook endpoint: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		Action:   "webhook.create",
		Entity:   "webhook_endpoint",
		EntityID: &ep.ID,
		Metadata: map[string]any{"url": req.URL, "events": req.Events},
	})
	return ep, nil
}

func (s *webhookService) GetByID(ctx context.Context, actor authorize.Actor, endpointID uuid.UUID) (*repo.WebhookEndpoint, error) {
	if err := authorize.Authorize(actor, authorize.PermWebhookRead, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, err
	}
	return s.load(ctx, actor.ClinicID, endpointID)
}

func (s *webhookService) List(ctx context.Context, actor authorize.Actor) ([]*repo.WebhookEndpoint, error) {
	if err := authorize.Authorize(actor, authorize.PermWebhookList, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, err
	}

	eps, err := s.db.WebhookEndpoint.Query().
		Where(entep.ClinicID(actor.ClinicID)).
		Order(entep.ByURL()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list webhook endpoints: %w", err)
	}
	return eps, nil
}

func (s *webhookService) Update(ctx context.Context, actor authorize.Actor, endpointID uuid.UUID, req UpdateEndpointRequest) (*repo.WebhookEndpoint, error) {
	if err := authorize.Authorize(actor, authorize.PermWebhookUpdate, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ep, err := s.load(ctx, actor.ClinicID, endpointID)
	if err != nil {
		return nil, err
	}

	upd := s.db.WebhookEndpoint.UpdateOneID(ep.ID)
	if req.URL != nil {
		upd = upd.SetURL(*req.URL)
	}
	if req.Secret != nil {
		upd = upd.SetSecret(*req.Secret)
	}
	if req.Events != nil {
		upd = upd.SetEvents(req.Events)
	}
	if req.IsActive != nil {
		upd = upd.SetIsActive(*req.IsActive)
	}

	ep, err = upd.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrDuplicateURL
		}
		return nil, fmt.Errorf("update webhook endpoint: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		Action:   "webhook.update",
		Entity:   "webhook_endpoint",
		EntityID: &ep.ID,
	})
	return ep, nil
}

func (s *webhookService) Delete(ctx context.Context, actor authorize.Actor, endpointID uuid.UUID) error {
	if err := authorize.Authorize(actor, authorize.PermWebhookDelete, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return err
	}

	ep, err := s.load(ctx, actor.ClinicID, endpointID)
	if err != nil {
		return err
	}

	if err := s.db.WebhookEndpoint.DeleteOne(ep).Exec(ctx); err != nil {
		return fmt.Errorf("delete webhook endpoint: %w", err)
	}

	s.audit.Record(ctx, audit.Entry{
		ClinicID: actor.ClinicID,
		ActorID:  &actor.UserID,
		Action:   "webhook.delete",
		Entity:   "webhook_endpoint",
		EntityID: &ep.ID,
		Metadata: map[string]any{"url": ep.URL},
	})
	return nil
}

func (s *webhookService) Test(ctx context.Context, actor authorize.Actor, endpointID uuid.UUID) error {
	if err := authorize.Authorize(actor, authorize.PermWebhookTest, authorize.Target{ClinicID: actor.ClinicID}); err != nil {
		return err
	}

	ep, err := s.load(ctx, actor.ClinicID, endpointID)
	if err != nil {
		return err
	}

	body, err := encodePayload(NewPayload(TestEvent, actor.ClinicID, map[string]any{
		"endpointId": ep.ID.String(),
	}))
	if err != nil {
		return err
	}

	if err := s.deliver.deliver(ctx, ep.URL, ep.Secret, TestEvent, body); err != nil {
		s.recordFailure(ctx, ep.ID)
		return fmt.Errorf("%w: %v", ErrTestFailed, err)
	}
	s.recordSuccess(ctx, ep.ID)
	return nil
}

func (s *webhookService) Trigger(ctx context.Context, clinicID uuid.UUID, event string, data any) {
	eps, err := s.db.WebhookEndpoint.Query().
		Where(
			entep.ClinicID(clinicID),
			entep.IsActive(true),
		).
		All(ctx)
	if err != nil {
		s.logger.Error("webhook fan-out query failed",
			slog.String("event", event),
			slog.String("clinic_id", clinicID.String()),
			slog.String("error", err.Error()))
		return
	}

	var matching []*repo.WebhookEndpoint
	for _, ep := range eps {
		if subscribed(ep.Events, event) {
			matching = append(matching, ep)
		}
	}
	if len(matching) == 0 {
		return
	}

	body, err := encodePayload(NewPayload(event, clinicID, data))
	if err != nil {
		s.logger.Error("webhook payload encode failed",
			slog.String("event", event),
			slog.String("error", err.Error()))
		return
	}

	// Deliveries run independently; one endpoint's failure never affects
	// another's delivery. We wait for all of them to settle.
	var wg sync.WaitGroup
	for _, ep := range matching {
		wg.Add(1)
		go func(ep *repo.WebhookEndpoint) {
			defer wg.Done()
			if err := s.deliver.deliver(ctx, ep.URL, ep.Secret, event, body); err != nil {
				s.recordFailure(ctx, ep.ID)
				s.logger.Warn("webhook delivery failed",
					slog.String("event", event),
					slog.String("url", ep.URL),
					slog.String("error", err.Error()))
				return
			}
			s.recordSuccess(ctx, ep.ID)
		}(ep)
	}
	wg.Wait()
}

// ---------------------------------------------------------------------------
// Internals
// ---------------------------------------------------------------------------

func (s *webhookService) load(ctx context.Context, clinicID, endpointID uuid.UUID) (*repo.WebhookEndpoint, error) {
	ep, err := s.db.WebhookEndpoint.Query().
		Where(entep.ID(endpointID), entep.ClinicID(clinicID)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get webhook endpoint: %w", err)
	}
	return ep, nil
}

func (s *webhookService) recordSuccess(ctx context.Context, endpointID uuid.UUID) {
	ctx = context.WithoutCancel(ctx)
	err := s.db.WebhookEndpoint.UpdateOneID(endpointID).
		SetFailureCount(0).
		SetLastSuccessAt(time.Now()).
		Exec(ctx)
	if err != nil {
		s.logger.Warn("webhook bookkeeping failed",
			slog.String("endpoint_id", endpointID.String()),
			slog.String("error", err.Error()))
	}
}

func (s *webhookService) recordFailure(ctx context.Context, endpointID uuid.UUID) {
	ctx = context.WithoutCancel(ctx)
	err := s.db.WebhookEndpoint.UpdateOneID(endpointID).
		AddFailureCount(1).
		SetLastFailureAt(time.Now()).
		Exec(ctx)
	if err != nil {
		s.logger.Warn("webhook bookkeeping failed",
			slog.String("endpoint_id", endpointID.String()),
			slog.String("error", err.Error()))
	}
}

func subscribed(set []string, event string) bool {
	for _, e := range set {
		if e == event {
			return true
		}
	}
	return false
}

func httpScheme(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return fmt.Errorf("must be an http or https URL")
	}
	return nil
}

func httpSchemePtr(value any) error {
	switch v := value.(type) {
	case *string:
		if v == nil {
			return nil
		}
		return httpScheme(*v)
	case string:
		return httpScheme(v)
	}
	return nil
}

func secretLenPtr(value any) error {
	var s string
	switch v := value.(type) {
	case *string:
		if v == nil {
			return nil
		}
		s = *v
	case string:
		s = v
	default:
		return nil
	}
	if len(s) < 32 {
		return fmt.Errorf("must be at least 32 characters")
	}
	return nil
}

func knownEvent(value any) error {
	s, _ := value.(string)
	if !events.Valid(s) {
		return fmt.Errorf("unknown event %q", s)
	}
	return nil
}
