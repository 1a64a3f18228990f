package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/noah-isme/edumanage-api/internal/observability"
)

// Domain event types emitted after successful transitions.
const (
	EventUserRegistered      = "user.registered"
	EventCourseCreated       = "course.created"
	EventCourseEnrolled      = "course.enrolled"
	EventLessonCompleted     = "lesson.completed"
	EventAssignmentSubmitted = "assignment.submitted"
)

// EventPublisher hands domain events to a broker. Implementations must not block for long.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload interface{}) error
}

// publishEvent is best effort: the state change is already persisted.
func publishEvent(ctx context.Context, publisher EventPublisher, logger zerolog.Logger, eventType string, payload interface{}) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, eventType, payload); err != nil {
		observability.EventPublishFailures().WithLabelValues(eventType).Inc()
		contextLogger(ctx, logger).Warn().Err(err).Str("event_type", eventType).Msg("failed to publish domain event")
	}
}

// contextLogger prefers the request-scoped logger bound by the HTTP layer.
func contextLogger(ctx context.Context, fallback zerolog.Logger) *zerolog.Logger {
	if scoped := zerolog.Ctx(ctx); scoped.GetLevel() != zerolog.Disabled {
		return scoped
	}
	return &fallback
}
