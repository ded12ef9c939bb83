// Package sessionredis provides a Redis-backed session store, used on shared
// dev rigs where several machines drive the same test account. The session is
// one JSON document under a fixed key, so token and role change together.
package sessionredis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/filmoteca/filmoteca-cli/internal/domain/auth"
	"github.com/filmoteca/filmoteca-cli/internal/ports"
)

const defaultKey = "filmoteca:session"

// Store is a Redis-based session store.
type Store struct {
	client redis.UniversalClient
	key    string
}

// NewStore creates a Redis session store under the default key.
func NewStore(client redis.UniversalClient) *Store {
	return &Store{client: client, key: defaultKey}
}

// NewStoreWithKey creates a Redis session store under a custom key.
func NewStoreWithKey(client redis.UniversalClient, key string) *Store {
	if key == "" {
		key = defaultKey
	}
	return &Store{client: client, key: key}
}

func (s *Store) Save(ctx context.Context, sess auth.Session) error {
	if sess.Token == "" {
		return errors.New("session token cannot be empty")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	// No TTL: local expiry is not enforced, the backend decides when the
	// token stops working.
	return s.client.Set(ctx, s.key, data, 0).Err()
}

func (s *Store) Get(ctx context.Context) (auth.Session, error) {
	data, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return auth.Session{}, ports.ErrNoSession
		}
		return auth.Session{}, fmt.Errorf("redis get: %w", err)
	}

	var sess auth.Session
	if unmarshalErr := json.Unmarshal([]byte(data), &sess); unmarshalErr != nil {
		return auth.Session{}, fmt.Errorf("unmarshal session: %w", unmarshalErr)
	}
	if sess.Token == "" {
		return auth.Session{}, ports.ErrNoSession
	}
	return sess, nil
}

func (s *Store) Delete(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
