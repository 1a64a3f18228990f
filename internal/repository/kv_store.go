package repository

import "context"

// Default keys used by the original browser storage layout.
const (
	DefaultKeyPrefix = "edumanage_"
	UsersKey         = "users"
	CoursesKey       = "courses"
	SessionKey       = "currentUser"
)

// KeyValueStore reads and writes whole blobs addressed by fixed string keys.
type KeyValueStore interface {
	// Get returns the stored blob. found is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Ping reports whether the store answers a read of the session key.
func Ping(ctx context.Context, store KeyValueStore, prefix string) error {
	_, _, err := store.Get(ctx, prefix+SessionKey)
	return err
}
