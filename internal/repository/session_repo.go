package repository

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/noah-isme/edumanage-api/internal/models"
)

// SessionRepository persists the single current-user record.
type SessionRepository interface {
	// Current returns the stored user or nil when nobody is signed in.
	Current(ctx context.Context) (*models.User, error)
	Set(ctx context.Context, user models.User) error
	Clear(ctx context.Context) error
}

type sessionRepository struct {
	blob jsonBlob
}

// NewSessionRepository builds the session gateway on top of a key-value store.
func NewSessionRepository(store KeyValueStore, prefix string, logger zerolog.Logger) SessionRepository {
	logger = logger.With().Str("component", "session_repository").Logger()
	return &sessionRepository{blob: newJSONBlob(store, prefix, SessionKey, logger)}
}

func (r *sessionRepository) Current(ctx context.Context) (*models.User, error) {
	user, found, err := readBlob[models.User](ctx, r.blob)
	if err != nil {
		return nil, err
	}
	if !found || user.ID == "" {
		return nil, nil
	}
	return &user, nil
}

func (r *sessionRepository) Set(ctx context.Context, user models.User) error {
	return r.blob.write(ctx, user)
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.blob.delete(ctx)
}
