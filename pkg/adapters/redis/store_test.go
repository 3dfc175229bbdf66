package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iconlint/iconlint/pkg/adapters/redis"
	"github.com/iconlint/iconlint/pkg/domain"
	"github.com/iconlint/iconlint/pkg/ports"
)

func newTestStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	return redis.NewFromClient(client, opts...), mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newTestStore(t)
	ports.RunRunStoreContract(t, store)
}

func TestRedisStore_TTLExpiry(t *testing.T) {
	store, mr := newTestStore(t, redis.WithTTL(time.Minute))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "run-1", &domain.RunResult{Success: true, CompletedSteps: []string{}}))

	// miniredis advances time manually.
	mr.FastForward(2 * time.Minute)

	_, err := store.Load(ctx, "run-1")
	assert.ErrorIs(t, err, domain.ErrRunNotFound)
}
