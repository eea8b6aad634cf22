// Package testutils provides shared fixtures and an in-memory Redis for tests
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-atlas/internal/redis"
)

// CreateTestRedisClient starts a miniredis server and returns a client for
// it. The server is stopped when the test finishes.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client, mr
}
