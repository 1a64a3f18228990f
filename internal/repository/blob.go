package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
)

// jsonBlob reads and writes one JSON document under a fixed key.
type jsonBlob struct {
	store  KeyValueStore
	key    string
	logger zerolog.Logger
}

func newJSONBlob(store KeyValueStore, prefix, name string, logger zerolog.Logger) jsonBlob {
	return jsonBlob{store: store, key: normalizePrefix(prefix) + name, logger: logger}
}

func (b jsonBlob) exists(ctx context.Context) (bool, error) {
	_, found, err := b.store.Get(ctx, b.key)
	if err != nil {
		return false, err
	}
	return found, nil
}

func (b jsonBlob) write(ctx context.Context, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", b.key, err)
	}
	return b.store.Set(ctx, b.key, payload)
}

func (b jsonBlob) delete(ctx context.Context) error {
	return b.store.Delete(ctx, b.key)
}

// readBlob decodes the blob into T. An absent, null or undecodable blob yields
// the zero value with found=false; only store failures are returned as errors.
func readBlob[T any](ctx context.Context, b jsonBlob) (T, bool, error) {
	var zero T
	raw, found, err := b.store.Get(ctx, b.key)
	if err != nil {
		return zero, false, err
	}
	if !found || len(raw) == 0 || string(raw) == "null" {
		return zero, false, nil
	}

	var decoded T
	if err := json.Unmarshal(raw, &decoded); err != nil {
		b.logger.Warn().Err(err).Str("key", b.key).Msg("discarding undecodable blob")
		return zero, false, nil
	}
	return decoded, true, nil
}
