// Package redis persists repair run results in Redis, with an optional
// TTL and a ZSET index for listing.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/iconlint/iconlint/pkg/domain"
	"github.com/iconlint/iconlint/pkg/ports"
)

// Store implements ports.RunStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

var _ ports.RunStore = (*Store)(nil)

type Option func(*Store)

// WithTTL sets the expiration for stored runs.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for runs.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Redis store with its own client.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "iconlint:run:",
		ttl:    0, // no expiration by default
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(runID string) string {
	return s.prefix + runID
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save persists the run result and indexes it. The index score is the
// expiration time so List can lazily prune expired entries.
func (s *Store) Save(ctx context.Context, runID string, result *domain.RunResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal run result: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(runID), data, s.ttl)

	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = 4102444800 // 2100-01-01, effectively never
	}
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  score,
		Member: runID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves a run result.
func (s *Store) Load(ctx context.Context, runID string) (*domain.RunResult, error) {
	val, err := s.client.Get(ctx, s.key(runID)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var result domain.RunResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run result: %w", err)
	}
	return &result, nil
}

// Delete removes the run and its index entry.
func (s *Store) Delete(ctx context.Context, runID string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(runID))
	pipe.ZRem(ctx, s.indexKey(), runID)
	_, err := pipe.Exec(ctx)
	return err
}

// List returns the indexed run IDs after pruning expired entries.
func (s *Store) List(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())
	if err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err(); err != nil {
		return nil, fmt.Errorf("failed to prune expired runs: %w", err)
	}

	runs, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
