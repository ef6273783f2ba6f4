package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/gl_gateway/internal/apperrors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "glgw:session:"

// NewRedisClient connects to Redis at url and verifies the connection.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("platform/session: parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("platform/session: ping: %w", err)
	}
	return client, nil
}

// RedisStore keeps sessions in Redis with the session expiry as key TTL.
// ERP tokens are sealed before they are written.
type RedisStore struct {
	client *redis.Client
	sealer *Sealer
}

// NewRedisStore creates a store on top of an existing client.
func NewRedisStore(client *redis.Client, sealer *Sealer) *RedisStore {
	return &RedisStore{client: client, sealer: sealer}
}

var _ Store = (*RedisStore)(nil)

type storedSession struct {
	ID          string    `json:"id"`
	UserName    string    `json:"userName"`
	SealedToken string    `json:"sealedToken"`
	CreatedAt   time.Time `json:"createdAt"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func (r *RedisStore) Save(ctx context.Context, s Session) error {
	sealed, err := r.sealer.Seal(s.ERPToken)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(storedSession{
		ID:          s.ID,
		UserName:    s.UserName,
		SealedToken: sealed,
		CreatedAt:   s.CreatedAt,
		ExpiresAt:   s.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("platform/session: marshal: %w", err)
	}

	var ttl time.Duration
	if !s.ExpiresAt.IsZero() {
		ttl = time.Until(s.ExpiresAt)
		if ttl <= 0 {
			return fmt.Errorf("%w: session already expired", apperrors.ErrValidation)
		}
	}
	if err := r.client.Set(ctx, keyPrefix+s.ID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("platform/session: save: %w", err)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	raw, err := r.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("platform/session: get: %w", err)
	}
	var stored storedSession
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("platform/session: decode: %w", err)
	}
	token, err := r.sealer.Open(stored.SealedToken)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:        stored.ID,
		UserName:  stored.UserName,
		ERPToken:  token,
		CreatedAt: stored.CreatedAt,
		ExpiresAt: stored.ExpiresAt,
	}, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("platform/session: delete: %w", err)
	}
	return nil
}
