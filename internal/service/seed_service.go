package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/edumanage-api/internal/repository"
)

// ErrSeedDisabled indicates the seeding step is disabled by configuration.
var ErrSeedDisabled = errors.New("seeding is disabled")

// SeedResult reports which collections were written.
type SeedResult struct {
	Users   int `json:"users"`
	Courses int `json:"courses"`
}

// SeedService writes the first-run users and catalog.
type SeedService interface {
	SeedDefaults(ctx context.Context) (SeedResult, error)
}

type seedService struct {
	users       repository.UserRepository
	courses     repository.CourseRepository
	credentials CredentialVerifier
	enabled     bool
	logger      zerolog.Logger
	now         func() time.Time
}

// NewSeedService constructs a seeding service.
func NewSeedService(users repository.UserRepository, courses repository.CourseRepository, credentials CredentialVerifier, enabled bool, logger zerolog.Logger) SeedService {
	if credentials == nil {
		credentials = PlaintextVerifier{}
	}
	return &seedService{
		users:       users,
		courses:     courses,
		credentials: credentials,
		enabled:     enabled,
		logger:      logger.With().Str("component", "seed_service").Logger(),
		now:         time.Now,
	}
}

// SeedDefaults only writes collections whose key is absent.
func (s *seedService) SeedDefaults(ctx context.Context) (SeedResult, error) {
	if !s.enabled {
		return SeedResult{}, ErrSeedDisabled
	}

	var result SeedResult
	now := s.now().UTC()

	exists, err := s.users.Exists(ctx)
	if err != nil {
		return SeedResult{}, err
	}
	if !exists {
		users := defaultUsers(now)
		for i := range users {
			secret, err := s.credentials.Hash(users[i].Password)
			if err != nil {
				return SeedResult{}, err
			}
			users[i].Password = secret
		}
		if err := s.users.Save(ctx, repository.NewUserCollection(users)); err != nil {
			return SeedResult{}, err
		}
		result.Users = len(users)
	}

	exists, err = s.courses.Exists(ctx)
	if err != nil {
		return SeedResult{}, err
	}
	if !exists {
		courses := defaultCourses(now)
		if err := s.courses.Save(ctx, repository.NewCourseCollection(courses)); err != nil {
			return SeedResult{}, err
		}
		result.Courses = len(courses)
	}

	s.logger.Info().Int("users", result.Users).Int("courses", result.Courses).Msg("default data seeded")
	return result, nil
}
