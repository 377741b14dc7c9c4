package events

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

const subjectPrefix = "medora"

// Publisher emits domain events on NATS. A publish failure is logged and
// swallowed so event emission never fails the operation that triggered it.
type Publisher struct {
	nc     *nats.Conn
	logger *slog.Logger
}

func NewPublisher(nc *nats.Conn, logger *slog.Logger) *Publisher {
	return &Publisher{nc: nc, logger: logger}
}

// Publish emits event for entityID scoped to clinicID. The wire format is
// "medora.<event>.<clinic_id>" with the entity id as payload.
func (p *Publisher) Publish(event string, clinicID, entityID uuid.UUID) {
	if p == nil || p.nc == nil {
		return
	}
	subject := fmt.Sprintf("%s.%s.%s", subjectPrefix, event, clinicID)
	if err := p.nc.Publish(subject, []byte(entityID.String())); err != nil {
		p.logger.Warn("event publish failed",
			slog.String("subject", subject),
			slog.String("entity_id", entityID.String()),
			slog.String("error", err.Error()))
	}
}

// Subject returns the wildcard subscription subject for event.
func Subject(event string) string {
	return subjectPrefix + "." + event + ".*"
}

// SubjectAll returns the subscription subject matching every domain event.
func SubjectAll() string {
	return subjectPrefix + ".>"
}

// ParseSubject splits a wire subject back into event name and clinic id.
func ParseSubject(subject string) (event string, clinicID uuid.UUID, err error) {
	rest, ok := strings.CutPrefix(subject, subjectPrefix+".")
	if !ok {
		return "", uuid.Nil, fmt.Errorf("unexpected subject %q", subject)
	}
	i := strings.LastIndex(rest, ".")
	if i < 0 {
		return "", uuid.Nil, fmt.Errorf("unexpected subject %q", subject)
	}
	event = rest[:i]
	clinicID, err = uuid.Parse(rest[i+1:])
	if err != nil {
		return "", uuid.Nil, fmt.Errorf("parse clinic id from subject %q: %w", subject, err)
	}
	if !Valid(event) {
		return "", uuid.Nil, fmt.Errorf("unknown event %q", event)
	}
	return event, clinicID, nil
}
