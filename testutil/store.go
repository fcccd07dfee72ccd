// Package testutil provides shared helpers for store-backed tests.
// The Redis helper runs against an in-process miniredis, so tests never need
// a real Redis server or any environment configuration.
package testutil

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/jmulder/weekend-planner/backend/internal/store"
)

// NewRedisStore returns a Redis-backed document store wired to a fresh
// miniredis instance, plus the miniredis handle for tests that want to
// inspect or corrupt the raw key. Everything is cleaned up when the test
// (and all its subtests) finish.
func NewRedisStore(t *testing.T) (*store.Redis, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return store.NewRedis(client), mr
}
