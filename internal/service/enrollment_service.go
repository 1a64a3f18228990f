package service

import (
	"context"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/edumanage-api/internal/models"
	"github.com/noah-isme/edumanage-api/internal/observability"
	"github.com/noah-isme/edumanage-api/internal/repository"
)

// EnrollmentService enrolls students and resolves where a course starts.
type EnrollmentService interface {
	Enroll(ctx context.Context, session Session, courseID string) (models.Course, error)
	StartCourse(ctx context.Context, courseID string) (string, error)
}

type enrollmentService struct {
	courses repository.CourseRepository
	events  EventPublisher
	logger  zerolog.Logger
	tracer  trace.Tracer
}

// NewEnrollmentService constructs the enrollment engine.
func NewEnrollmentService(courses repository.CourseRepository, events EventPublisher, logger zerolog.Logger) EnrollmentService {
	return &enrollmentService{
		courses: courses,
		events:  events,
		logger:  logger.With().Str("component", "enrollment_service").Logger(),
		tracer:  otel.Tracer("github.com/noah-isme/edumanage-api/internal/service/enrollment"),
	}
}

func (s *enrollmentService) Enroll(ctx context.Context, session Session, courseID string) (models.Course, error) {
	if err := session.requireRole(models.RoleStudent); err != nil {
		return models.Course{}, err
	}

	spanCtx, span := s.tracer.Start(ctx, "courses.enroll", trace.WithAttributes(
		attribute.String("course.id", courseID),
		attribute.String("user.id", session.UserID()),
	))
	defer span.End()

	var (
		updated  models.Course
		enrolled bool
	)
	err := s.courses.Mutate(spanCtx, func(courses *repository.CourseCollection) error {
		course := courses.Find(courseID)
		if course == nil {
			return ErrCourseNotFound
		}
		if course.Enrolled == nil {
			course.Enrolled = []string{}
		}
		if !course.IsEnrolled(session.UserID()) {
			course.Enrolled = append(course.Enrolled, session.UserID())
			course.Students++
			enrolled = true
		}
		updated = *course
		return nil
	})
	observability.ObserveOperation("enroll", err)
	if err != nil {
		span.RecordError(err)
		return models.Course{}, err
	}

	if enrolled {
		s.logger.Info().Str("course_id", courseID).Str("user_id", session.UserID()).Msg("student enrolled")
		publishEvent(spanCtx, s.events, s.logger, EventCourseEnrolled, map[string]string{
			"course_id": courseID,
			"user_id":   session.UserID(),
		})
	}

	return updated, nil
}

func (s *enrollmentService) StartCourse(ctx context.Context, courseID string) (string, error) {
	courses, err := s.courses.Load(ctx)
	if err != nil {
		return "", err
	}

	course, ok := courses.Get(courseID)
	if !ok {
		return "", ErrCourseNotFound
	}
	if len(course.Lessons) == 0 {
		return "", ErrNoLessons
	}
	return course.Lessons[0].ID, nil
}
