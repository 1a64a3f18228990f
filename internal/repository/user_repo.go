package repository

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/noah-isme/edumanage-api/internal/models"
)

// UserRepository exposes the users collection.
type UserRepository interface {
	Load(ctx context.Context) (*UserCollection, error)
	Save(ctx context.Context, users *UserCollection) error
	// Mutate loads the collection, applies fn and persists only when fn succeeds.
	Mutate(ctx context.Context, fn func(users *UserCollection) error) error
	Exists(ctx context.Context) (bool, error)
}

type userRepository struct {
	blob jsonBlob
	mu   sync.Mutex
}

// NewUserRepository builds the users gateway on top of a key-value store.
func NewUserRepository(store KeyValueStore, prefix string, logger zerolog.Logger) UserRepository {
	logger = logger.With().Str("component", "user_repository").Logger()
	return &userRepository{blob: newJSONBlob(store, prefix, UsersKey, logger)}
}

func (r *userRepository) Load(ctx context.Context) (*UserCollection, error) {
	users, _, err := readBlob[[]models.User](ctx, r.blob)
	if err != nil {
		return nil, err
	}
	return NewUserCollection(users), nil
}

func (r *userRepository) Save(ctx context.Context, users *UserCollection) error {
	items := users.All()
	if items == nil {
		items = []models.User{}
	}
	return r.blob.write(ctx, items)
}

func (r *userRepository) Mutate(ctx context.Context, fn func(users *UserCollection) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(users); err != nil {
		return err
	}
	return r.Save(ctx, users)
}

func (r *userRepository) Exists(ctx context.Context) (bool, error) {
	return r.blob.exists(ctx)
}
