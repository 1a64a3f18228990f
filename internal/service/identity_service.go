package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/noah-isme/edumanage-api/internal/dto"
	"github.com/noah-isme/edumanage-api/internal/models"
	"github.com/noah-isme/edumanage-api/internal/observability"
	"github.com/noah-isme/edumanage-api/internal/repository"
)

// IdentityService registers users and manages the single persisted session.
type IdentityService interface {
	Register(ctx context.Context, payload dto.RegisterRequest) (models.User, error)
	Authenticate(ctx context.Context, payload dto.LoginRequest) (models.User, error)
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (Session, error)
}

type identityService struct {
	users       repository.UserRepository
	sessions    repository.SessionRepository
	credentials CredentialVerifier
	validator   *validator.Validate
	events      EventPublisher
	logger      zerolog.Logger
	now         func() time.Time
	newID       func() string
}

// NewIdentityService constructs the identity manager.
func NewIdentityService(users repository.UserRepository, sessions repository.SessionRepository, credentials CredentialVerifier, validate *validator.Validate, events EventPublisher, logger zerolog.Logger) IdentityService {
	if credentials == nil {
		credentials = PlaintextVerifier{}
	}
	return &identityService{
		users:       users,
		sessions:    sessions,
		credentials: credentials,
		validator:   validate,
		events:      events,
		logger:      logger.With().Str("component", "identity_service").Logger(),
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

func (s *identityService) Register(ctx context.Context, payload dto.RegisterRequest) (models.User, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.User{}, err
	}

	secret, err := s.credentials.Hash(payload.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:        s.newID(),
		Name:      payload.Name,
		Email:     payload.Email,
		Password:  secret,
		Role:      models.Role(payload.Role),
		CreatedAt: s.now().UTC(),
	}

	previous, err := s.sessions.Current(ctx)
	if err != nil {
		return models.User{}, err
	}

	// The session is written inside the users mutation so a failed session
	// write leaves the users blob untouched.
	sessionWritten := false
	err = s.users.Mutate(ctx, func(users *repository.UserCollection) error {
		if _, exists := users.FindByEmail(payload.Email); exists {
			return ErrDuplicateEmail
		}
		if err := s.sessions.Set(ctx, user); err != nil {
			return err
		}
		sessionWritten = true
		users.Append(user)
		return nil
	})
	observability.ObserveOperation("register", err)
	if err != nil {
		if sessionWritten {
			s.restoreSession(ctx, previous)
		}
		return models.User{}, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user registered")
	publishEvent(ctx, s.events, s.logger, EventUserRegistered, map[string]string{
		"user_id": user.ID,
		"role":    string(user.Role),
	})

	return user, nil
}

// restoreSession puts back the session that was active before a failed registration.
func (s *identityService) restoreSession(ctx context.Context, previous *models.User) {
	var err error
	if previous == nil {
		err = s.sessions.Clear(ctx)
	} else {
		err = s.sessions.Set(ctx, *previous)
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to restore session after registration failure")
	}
}

func (s *identityService) Authenticate(ctx context.Context, payload dto.LoginRequest) (models.User, error) {
	if err := s.validator.Struct(payload); err != nil {
		return models.User{}, err
	}

	users, err := s.users.Load(ctx)
	if err != nil {
		return models.User{}, err
	}

	role := models.Role(payload.Role)
	user, found := users.Find(func(candidate models.User) bool {
		return candidate.Email == payload.Email &&
			candidate.Role == role &&
			s.credentials.Verify(candidate.Password, payload.Password)
	})
	if !found {
		observability.ObserveOperation("login", ErrInvalidCredentials)
		return models.User{}, ErrInvalidCredentials
	}

	if err := s.sessions.Set(ctx, user); err != nil {
		return models.User{}, err
	}
	observability.ObserveOperation("login", nil)

	s.logger.Info().Str("user_id", user.ID).Msg("user signed in")
	return user, nil
}

func (s *identityService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return err
	}
	s.logger.Info().Msg("session cleared")
	return nil
}

func (s *identityService) CurrentSession(ctx context.Context) (Session, error) {
	user, err := s.sessions.Current(ctx)
	if err != nil {
		return Session{}, err
	}
	return NewSession(user), nil
}
