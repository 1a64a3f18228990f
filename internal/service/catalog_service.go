package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/noah-isme/edumanage-api/internal/dto"
	"github.com/noah-isme/edumanage-api/internal/models"
	"github.com/noah-isme/edumanage-api/internal/observability"
	"github.com/noah-isme/edumanage-api/internal/repository"
)

// CatalogService lists, shows and creates courses.
type CatalogService interface {
	ListCourses(ctx context.Context, filter dto.CourseFilter) ([]dto.CourseSummary, error)
	GetCourse(ctx context.Context, session Session, courseID string) (dto.CourseDetail, error)
	CreateCourse(ctx context.Context, session Session, payload dto.CourseCreateRequest) (models.Course, error)
}

type catalogService struct {
	courses   repository.CourseRepository
	validator *validator.Validate
	events    EventPublisher
	logger    zerolog.Logger
	tracer    trace.Tracer
	now       func() time.Time
	newID     func() string
}

// NewCatalogService constructs the course catalog.
func NewCatalogService(courses repository.CourseRepository, validate *validator.Validate, events EventPublisher, logger zerolog.Logger) CatalogService {
	return &catalogService{
		courses:   courses,
		validator: validate,
		events:    events,
		logger:    logger.With().Str("component", "catalog_service").Logger(),
		tracer:    otel.Tracer("github.com/noah-isme/edumanage-api/internal/service/catalog"),
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

func (s *catalogService) ListCourses(ctx context.Context, filter dto.CourseFilter) ([]dto.CourseSummary, error) {
	courses, err := s.courses.Load(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewCourseSummarySlice(FilterCourses(courses.All(), filter)), nil
}

// FilterCourses applies the category and free-text filters in storage order.
func FilterCourses(courses []models.Course, filter dto.CourseFilter) []models.Course {
	query := strings.ToLower(filter.Query)
	filtered := make([]models.Course, 0, len(courses))
	for _, course := range courses {
		if filter.Category != "" && filter.Category != dto.CategoryAll && course.Category != filter.Category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(course.Title), query) &&
			!strings.Contains(strings.ToLower(course.Description), query) {
			continue
		}
		filtered = append(filtered, course)
	}
	return filtered
}

func (s *catalogService) GetCourse(ctx context.Context, session Session, courseID string) (dto.CourseDetail, error) {
	courses, err := s.courses.Load(ctx)
	if err != nil {
		return dto.CourseDetail{}, err
	}

	course, ok := courses.Get(courseID)
	if !ok {
		return dto.CourseDetail{}, ErrCourseNotFound
	}

	return dto.NewCourseDetail(course, session.UserID()), nil
}

func (s *catalogService) CreateCourse(ctx context.Context, session Session, payload dto.CourseCreateRequest) (models.Course, error) {
	if err := session.requireRole(models.RoleEducator); err != nil {
		return models.Course{}, err
	}

	// Whitespace-only fields fail validation; the stored values are kept as submitted.
	check := payload
	check.Title = strings.TrimSpace(check.Title)
	check.Category = strings.TrimSpace(check.Category)
	check.Description = strings.TrimSpace(check.Description)
	if err := s.validator.Struct(check); err != nil {
		return models.Course{}, err
	}

	spanCtx, span := s.tracer.Start(ctx, "courses.create", trace.WithAttributes(
		attribute.String("course.instructor_id", session.UserID()),
	))
	defer span.End()

	course := models.Course{
		ID:             s.newID(),
		Title:          payload.Title,
		Category:       payload.Category,
		Description:    payload.Description,
		InstructorID:   session.User.ID,
		InstructorName: session.User.Name,
		Duration:       payload.Duration,
		Students:       0,
		Rating:         0,
		Enrolled:       []string{},
		Lessons:        []models.Lesson{},
		CreatedAt:      s.now().UTC(),
	}

	err := s.courses.Mutate(spanCtx, func(courses *repository.CourseCollection) error {
		courses.Append(course)
		return nil
	})
	observability.ObserveOperation("create_course", err)
	if err != nil {
		span.RecordError(err)
		return models.Course{}, err
	}

	s.logger.Info().Str("course_id", course.ID).Str("instructor_id", course.InstructorID).Msg("course created")
	publishEvent(spanCtx, s.events, s.logger, EventCourseCreated, map[string]string{
		"course_id":     course.ID,
		"instructor_id": course.InstructorID,
	})

	return course, nil
}
