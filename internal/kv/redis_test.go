package kv

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// startRedis starts a disposable Redis container and returns its host:port
// and URL. The test is skipped when Docker is not available.
func startRedis(t *testing.T) (string, string) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping Redis integration test in short mode")
	}

	// Recover from panic if Docker is not available
	defer func() {
		if r := recover(); r != nil {
			t.Skipf("Skipping Redis test: Docker not available (panic: %v)", r)
		}
	}()

	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Skipf("Skipping Redis test: Docker not available (%v)", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	addr, err := container.Endpoint(ctx, "")
	require.NoError(t, err)
	url, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	return addr, url
}

func TestRueidisBackend_Contract(t *testing.T) {
	addr, _ := startRedis(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	backend, err := NewRueidisBackend(ctx, RueidisOptions{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	testBackendContract(t, backend)
}

func TestGoRedisBackend_Contract(t *testing.T) {
	_, url := startRedis(t)

	opts, err := redis.ParseURL(url)
	require.NoError(t, err)

	backend := NewGoRedisBackend(redis.NewClient(opts))
	t.Cleanup(func() { _ = backend.Close() })

	testBackendContract(t, backend)
}

func TestRueidisBackend_ConnectFailure(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping network test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// Port 1 is reserved and never runs Redis
	_, err := NewRueidisBackend(ctx, RueidisOptions{
		Addr:        "127.0.0.1:1",
		DialTimeout: 500 * time.Millisecond,
	})
	require.Error(t, err)
}
