package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/edumanage-api/internal/dto"
	"github.com/noah-isme/edumanage-api/internal/models"
	"github.com/noah-isme/edumanage-api/internal/observability"
	"github.com/noah-isme/edumanage-api/internal/repository"
)

// ErrInvalidDirection indicates an unknown navigation direction.
var ErrInvalidDirection = errors.New("direction must be next or prev")

// Direction moves the lesson cursor.
type Direction string

const (
	// DirectionNext moves forward and marks the lesson being left as completed.
	DirectionNext Direction = dto.DirectionNext
	// DirectionPrev moves backward without touching completion.
	DirectionPrev Direction = dto.DirectionPrev
)

// LessonCursor names the course and lesson the viewer is on.
type LessonCursor struct {
	CourseID string
	LessonID string
}

// ProgressService drives lesson traversal, completion and assignment submission.
type ProgressService interface {
	ViewLesson(ctx context.Context, session Session, cursor LessonCursor) (dto.LessonView, error)
	AdvanceLesson(ctx context.Context, session Session, cursor LessonCursor, direction Direction) (dto.LessonView, error)
	MarkComplete(ctx context.Context, cursor LessonCursor) error
	SubmitAssignment(ctx context.Context, session Session, cursor LessonCursor, payload dto.SubmitAssignmentRequest) (models.Assignment, error)
}

type progressService struct {
	courses   repository.CourseRepository
	validator *validator.Validate
	events    EventPublisher
	logger    zerolog.Logger
	tracer    trace.Tracer
	now       func() time.Time
}

// NewProgressService constructs the lesson progress engine.
func NewProgressService(courses repository.CourseRepository, validate *validator.Validate, events EventPublisher, logger zerolog.Logger) ProgressService {
	return &progressService{
		courses:   courses,
		validator: validate,
		events:    events,
		logger:    logger.With().Str("component", "progress_service").Logger(),
		tracer:    otel.Tracer("github.com/noah-isme/edumanage-api/internal/service/progress"),
		now:       time.Now,
	}
}

func (s *progressService) ViewLesson(ctx context.Context, session Session, cursor LessonCursor) (dto.LessonView, error) {
	if !session.Authenticated() {
		return dto.LessonView{}, ErrNotAuthenticated
	}

	course, index, err := s.locate(ctx, cursor)
	if err != nil {
		return dto.LessonView{}, err
	}
	return dto.NewLessonView(course, index, s.now()), nil
}

func (s *progressService) AdvanceLesson(ctx context.Context, session Session, cursor LessonCursor, direction Direction) (dto.LessonView, error) {
	if !session.Authenticated() {
		return dto.LessonView{}, ErrNotAuthenticated
	}
	if direction != DirectionNext && direction != DirectionPrev {
		return dto.LessonView{}, ErrInvalidDirection
	}

	course, index, err := s.locate(ctx, cursor)
	if err != nil {
		return dto.LessonView{}, err
	}

	switch {
	case direction == DirectionPrev && index > 0:
		return dto.NewLessonView(course, index-1, s.now()), nil
	case direction == DirectionNext && index < len(course.Lessons)-1:
		if err := s.MarkComplete(ctx, cursor); err != nil {
			return dto.LessonView{}, err
		}
		course.Lessons[index].Completed = true
		return dto.NewLessonView(course, index+1, s.now()), nil
	default:
		return dto.NewLessonView(course, index, s.now()), nil
	}
}

func (s *progressService) MarkComplete(ctx context.Context, cursor LessonCursor) error {
	changed := false
	err := s.courses.Mutate(ctx, func(courses *repository.CourseCollection) error {
		course := courses.Find(cursor.CourseID)
		if course == nil {
			return ErrCourseNotFound
		}
		index := course.LessonIndex(cursor.LessonID)
		if index < 0 {
			return ErrLessonNotFound
		}
		changed = !course.Lessons[index].Completed
		course.Lessons[index].Completed = true
		return nil
	})
	observability.ObserveOperation("mark_complete", err)
	if err != nil {
		return err
	}

	if changed {
		s.logger.Info().Str("course_id", cursor.CourseID).Str("lesson_id", cursor.LessonID).Msg("lesson completed")
		publishEvent(ctx, s.events, s.logger, EventLessonCompleted, map[string]string{
			"course_id": cursor.CourseID,
			"lesson_id": cursor.LessonID,
		})
	}
	return nil
}

func (s *progressService) SubmitAssignment(ctx context.Context, session Session, cursor LessonCursor, payload dto.SubmitAssignmentRequest) (models.Assignment, error) {
	if err := session.requireRole(models.RoleStudent); err != nil {
		return models.Assignment{}, err
	}

	check := payload
	check.SubmissionText = strings.TrimSpace(check.SubmissionText)
	if err := s.validator.Struct(check); err != nil {
		return models.Assignment{}, err
	}

	spanCtx, span := s.tracer.Start(ctx, "assignments.submit", trace.WithAttributes(
		attribute.String("course.id", cursor.CourseID),
		attribute.String("lesson.id", cursor.LessonID),
		attribute.String("user.id", session.UserID()),
	))
	defer span.End()

	submittedAt := s.now().UTC()
	var updated models.Assignment
	err := s.courses.Mutate(spanCtx, func(courses *repository.CourseCollection) error {
		course := courses.Find(cursor.CourseID)
		if course == nil {
			return ErrCourseNotFound
		}
		index := course.LessonIndex(cursor.LessonID)
		if index < 0 {
			return ErrLessonNotFound
		}
		assignment := course.Lessons[index].Assignment
		if assignment == nil {
			return ErrNoAssignment
		}
		assignment.Submitted = true
		assignment.SubmissionText = payload.SubmissionText
		assignment.SubmittedAt = &submittedAt
		updated = *assignment
		return nil
	})
	observability.ObserveOperation("submit_assignment", err)
	if err != nil {
		span.RecordError(err)
		return models.Assignment{}, err
	}

	s.logger.Info().Str("assignment_id", updated.ID).Str("user_id", session.UserID()).Msg("assignment submitted")
	publishEvent(spanCtx, s.events, s.logger, EventAssignmentSubmitted, map[string]string{
		"assignment_id": updated.ID,
		"course_id":     cursor.CourseID,
		"lesson_id":     cursor.LessonID,
		"user_id":       session.UserID(),
	})

	return updated, nil
}

func (s *progressService) locate(ctx context.Context, cursor LessonCursor) (models.Course, int, error) {
	courses, err := s.courses.Load(ctx)
	if err != nil {
		return models.Course{}, 0, err
	}

	course, ok := courses.Get(cursor.CourseID)
	if !ok {
		return models.Course{}, 0, ErrCourseNotFound
	}

	index := course.LessonIndex(cursor.LessonID)
	if index < 0 {
		return models.Course{}, 0, ErrLessonNotFound
	}
	return course, index, nil
}
