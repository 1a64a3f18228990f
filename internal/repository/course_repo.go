package repository

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/noah-isme/edumanage-api/internal/models"
)

// CourseRepository exposes the courses collection.
type CourseRepository interface {
	Load(ctx context.Context) (*CourseCollection, error)
	Save(ctx context.Context, courses *CourseCollection) error
	// Mutate loads the collection, applies fn and persists only when fn succeeds.
	Mutate(ctx context.Context, fn func(courses *CourseCollection) error) error
	Exists(ctx context.Context) (bool, error)
}

type courseRepository struct {
	blob jsonBlob
	mu   sync.Mutex
}

// NewCourseRepository builds the courses gateway on top of a key-value store.
func NewCourseRepository(store KeyValueStore, prefix string, logger zerolog.Logger) CourseRepository {
	logger = logger.With().Str("component", "course_repository").Logger()
	return &courseRepository{blob: newJSONBlob(store, prefix, CoursesKey, logger)}
}

func (r *courseRepository) Load(ctx context.Context) (*CourseCollection, error) {
	courses, _, err := readBlob[[]models.Course](ctx, r.blob)
	if err != nil {
		return nil, err
	}
	return NewCourseCollection(courses), nil
}

func (r *courseRepository) Save(ctx context.Context, courses *CourseCollection) error {
	items := courses.All()
	if items == nil {
		items = []models.Course{}
	}
	return r.blob.write(ctx, items)
}

func (r *courseRepository) Mutate(ctx context.Context, fn func(courses *CourseCollection) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	courses, err := r.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(courses); err != nil {
		return err
	}
	return r.Save(ctx, courses)
}

func (r *courseRepository) Exists(ctx context.Context) (bool, error) {
	return r.blob.exists(ctx)
}
