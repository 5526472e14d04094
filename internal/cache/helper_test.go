package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Value int `json:"value"`
}

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestAsideMissThenHit(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	fetches := 0
	fetch := func(dest *payload) func() error {
		return func() error {
			fetches++
			dest.Value = 42
			return nil
		}
	}

	var first payload
	require.NoError(t, Aside(ctx, "k", &first, time.Minute, fetch(&first)))
	assert.Equal(t, 42, first.Value)
	assert.Equal(t, 1, fetches)

	// Second call is served from Redis without hitting the source.
	var second payload
	require.NoError(t, Aside(ctx, "k", &second, time.Minute, fetch(&second)))
	assert.Equal(t, 42, second.Value)
	assert.Equal(t, 1, fetches)
}

func TestAsideFetchError(t *testing.T) {
	setupMiniredis(t)

	var dest payload
	wantErr := errors.New("db down")
	err := Aside(context.Background(), "k", &dest, time.Minute, func() error { return wantErr })
	assert.ErrorIs(t, err, wantErr)
}

func TestAsideNilClientPassesThrough(t *testing.T) {
	SetClient(nil)

	fetches := 0
	var dest payload
	fetch := func() error {
		fetches++
		dest.Value = 7
		return nil
	}

	require.NoError(t, Aside(context.Background(), "k", &dest, time.Minute, fetch))
	require.NoError(t, Aside(context.Background(), "k", &dest, time.Minute, fetch))
	assert.Equal(t, 2, fetches)
}

func TestInvalidateHabitStreak(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	today := time.Now().UTC()
	key := HabitStreakKey(3, today)

	require.NoError(t, SetJSON(ctx, key, payload{Value: 1}, time.Minute))
	require.True(t, mr.Exists(key))

	InvalidateHabitStreak(ctx, 3)
	assert.False(t, mr.Exists(key))
}

func TestHabitStreakKeyRollsWithDate(t *testing.T) {
	day := time.Date(2026, time.August, 26, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "habit:3:streak:2026-08-26", HabitStreakKey(3, day))
	assert.NotEqual(t, HabitStreakKey(3, day), HabitStreakKey(3, day.AddDate(0, 0, 1)))
}
