package service

import (
	"context"
	"sync"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/edumanage-api/internal/models"
	"github.com/noah-isme/edumanage-api/internal/repository"
)

type testStores struct {
	mini     *miniredis.Miniredis
	users    repository.UserRepository
	courses  repository.CourseRepository
	sessions repository.SessionRepository
}

func setupStores(t *testing.T) testStores {
	t.Helper()
	mini, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mini.Close)

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := repository.NewRedisStore(client)
	logger := zerolog.Nop()
	return testStores{
		mini:     mini,
		users:    repository.NewUserRepository(store, repository.DefaultKeyPrefix, logger),
		courses:  repository.NewCourseRepository(store, repository.DefaultKeyPrefix, logger),
		sessions: repository.NewSessionRepository(store, repository.DefaultKeyPrefix, logger),
	}
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

func saveCourses(t *testing.T, repo repository.CourseRepository, courses ...models.Course) {
	t.Helper()
	require.NoError(t, repo.Save(context.Background(), repository.NewCourseCollection(courses)))
}

func loadCourse(t *testing.T, repo repository.CourseRepository, id string) models.Course {
	t.Helper()
	courses, err := repo.Load(context.Background())
	require.NoError(t, err)
	course, ok := courses.Get(id)
	require.True(t, ok)
	return course
}

func studentSession(id string) Session {
	return NewSession(&models.User{ID: id, Name: "Student " + id, Email: id + "@example.com", Role: models.RoleStudent})
}

func educatorSession(id string) Session {
	return NewSession(&models.User{ID: id, Name: "Educator " + id, Email: id + "@example.com", Role: models.RoleEducator})
}

func threeLessonCourse(id, instructorID string) models.Course {
	return models.Course{
		ID:             id,
		Title:          "Course " + id,
		Category:       "programming",
		Description:    "A course",
		InstructorID:   instructorID,
		InstructorName: "Instructor",
		Enrolled:       []string{},
		Lessons: []models.Lesson{
			{ID: id + "_l1", Title: "One", Type: models.LessonTypeVideo},
			{ID: id + "_l2", Title: "Two", Type: models.LessonTypeVideo, Assignment: &models.Assignment{
				ID:      id + "_a1",
				Title:   "Homework",
				DueDate: models.NewDate(2030, time.January, 10),
				Points:  10,
			}},
			{ID: id + "_l3", Title: "Three", Type: models.LessonTypeVideo},
		},
	}
}

type recordedEvent struct {
	Type    string
	Payload interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, eventType string, payload interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{Type: eventType, Payload: payload})
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, 0, len(p.events))
	for _, event := range p.events {
		types = append(types, event.Type)
	}
	return types
}
