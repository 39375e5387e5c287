package redis

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	idemLock      = "LOCK"
	idemResPrefix = "RES:"
)

// StoredResponse is what a completed checkout request answered with.
type StoredResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

// IdempotencyStore guards POST /checkout against client retries.
// A key is either locked by the request in flight or holds that request's final response.
type IdempotencyStore struct {
	rdb     *redis.Client
	ttl     time.Duration
	lockTTL time.Duration
}

func NewIdempotencyStore(rdb *redis.Client, ttl, lockTTL time.Duration) *IdempotencyStore {
	return &IdempotencyStore{rdb: rdb, ttl: ttl, lockTTL: lockTTL}
}

// Begin claims idemKey for the calling request.
//
// Returns:
//   - *StoredResponse: the earlier response when the key already completed.
//   - bool: true if the caller now owns the key and must Save or Abort it.
//   - error: if Redis fails.
func (s *IdempotencyStore) Begin(ctx context.Context, idemKey string) (*StoredResponse, bool, error) {
	key := KeyIdemCheckout(idemKey)

	if res, ok, err := s.result(ctx, key); err != nil || ok {
		return res, false, err
	}

	acquired, err := s.rdb.SetNX(ctx, key, idemLock, s.lockTTL).Result()
	if err != nil || acquired {
		return nil, acquired, err
	}

	// lost the race; the winner may already have finished
	res, _, err := s.result(ctx, key)
	return res, false, err
}

func (s *IdempotencyStore) Save(ctx context.Context, idemKey string, status int, body []byte) error {
	b, err := json.Marshal(StoredResponse{Status: status, Body: body})
	if err != nil {
		return err
	}

	return s.rdb.Set(ctx, KeyIdemCheckout(idemKey), idemResPrefix+string(b), s.ttl).Err()
}

// Abort drops the lock so the client can retry with the same key.
func (s *IdempotencyStore) Abort(ctx context.Context, idemKey string) error {
	return s.rdb.Del(ctx, KeyIdemCheckout(idemKey)).Err()
}

func (s *IdempotencyStore) result(ctx context.Context, key string) (*StoredResponse, bool, error) {
	v, err := s.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if !strings.HasPrefix(v, idemResPrefix) {
		return nil, false, nil
	}

	var res StoredResponse
	if err := json.Unmarshal([]byte(strings.TrimPrefix(v, idemResPrefix)), &res); err != nil {
		return nil, false, err
	}

	return &res, true, nil
}
