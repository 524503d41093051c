package cache

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Интеграционные тесты Redis-кэша поднимают redis:7-alpine через testcontainers-go.
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/cache -v -count=1

func startRedis(t *testing.T) (ListingCache, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "6379/tcp")

	lc, err := NewRedisCache(ctx, fmt.Sprintf("redis://%s:%s/0", host, port.Port()), "test:")
	require.NoError(t, err)

	return lc, func() {
		_ = lc.Close()
		_ = c.Terminate(context.Background())
	}
}

func TestNoop_AlwaysMiss(t *testing.T) {
	t.Parallel()

	var c ListingCache = Noop{}
	require.NoError(t, c.Set(context.Background(), "k", []byte("v"), time.Minute))

	v, ok, err := c.Get(context.Background(), "k")
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, v)
	require.NoError(t, c.Close())
}

func TestNewRedisCache_BadURL(t *testing.T) {
	t.Parallel()

	_, err := NewRedisCache(context.Background(), "not-a-redis-url", "")
	require.Error(t, err)
}

func TestIntegration_Redis_SetGetExpire(t *testing.T) {
	c, cleanup := startRedis(t)
	defer cleanup()

	ctx := context.Background()

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Set(ctx, "k1", []byte(`[{"id":1}]`), 200*time.Millisecond))

	v, ok, err := c.Get(ctx, "k1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[{"id":1}]`, string(v))

	require.Eventually(t, func() bool {
		_, ok, err := c.Get(ctx, "k1")
		return err == nil && !ok
	}, 3*time.Second, 50*time.Millisecond)
}
