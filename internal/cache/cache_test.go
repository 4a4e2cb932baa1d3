package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// withTestRedis points the package client at a miniredis instance for the
// duration of the test. Cache tests share the package global, so no t.Parallel.
func withTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)

	prev := client
	client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client = prev })
	return mr
}

func TestGetSetJSON_RoundTrip(t *testing.T) {
	withTestRedis(t)
	ctx := context.Background()

	var missing payload
	found, err := GetJSON(ctx, "nope", &missing)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "k", payload{Name: "x", Count: 3}, time.Minute))

	var got payload
	found, err = GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "x", Count: 3}, got)
}

func TestAside_FetchesOnceThenServesFromCache(t *testing.T) {
	withTestRedis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *payload) func() error {
		return func() error {
			fetches++
			*dest = payload{Name: "fresh", Count: fetches}
			return nil
		}
	}

	var first payload
	require.NoError(t, Aside(ctx, "aside", &first, time.Minute, fetch(&first)))
	assert.Equal(t, 1, fetches)

	var second payload
	require.NoError(t, Aside(ctx, "aside", &second, time.Minute, fetch(&second)))
	assert.Equal(t, 1, fetches, "second read must come from the cache")
	assert.Equal(t, first, second)
}

func TestInvalidate(t *testing.T) {
	mr := withTestRedis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, UserKey(7), payload{Name: "u"}, time.Minute))
	require.True(t, mr.Exists(UserKey(7)))

	InvalidateUser(ctx, 7)
	assert.False(t, mr.Exists(UserKey(7)))
}

func TestNilClientDegradesGracefully(t *testing.T) {
	prev := client
	client = nil
	t.Cleanup(func() { client = prev })
	ctx := context.Background()

	found, err := GetJSON(ctx, "k", &payload{})
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, SetJSON(ctx, "k", payload{}, time.Minute))

	called := false
	var dest payload
	require.NoError(t, Aside(ctx, "k", &dest, time.Minute, func() error {
		called = true
		dest.Name = "direct"
		return nil
	}))
	assert.True(t, called)
	assert.Equal(t, "direct", dest.Name)

	// No panic either.
	Invalidate(ctx, "k")
}
