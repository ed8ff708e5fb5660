package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizmandi/storefront/pkg/cache"
)

func setupTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { client.Close() })

	return NewStore(client, time.Hour), mr
}

func TestStore_NearbyLocation(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		pref := GeoPreference{Lat: 19.076, Lon: 72.8777, Name: "Mumbai", Distance: "25"}
		require.NoError(t, store.SaveNearbyLocation(ctx, "sess1", pref))

		got, ok := store.NearbyLocation(ctx, "sess1")
		require.True(t, ok)
		assert.Equal(t, pref, *got)
	})

	t.Run("absent preference", func(t *testing.T) {
		got, ok := store.NearbyLocation(ctx, "nope")
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("malformed JSON is swallowed", func(t *testing.T) {
		mr.Set("session:sess2:nearby_location", "{not json")

		got, ok := store.NearbyLocation(ctx, "sess2")
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("clear removes the preference", func(t *testing.T) {
		require.NoError(t, store.SaveNearbyLocation(ctx, "sess3", GeoPreference{Lat: 1, Lon: 2, Name: "x", Distance: "5"}))
		require.NoError(t, store.ClearNearbyLocation(ctx, "sess3"))

		_, ok := store.NearbyLocation(ctx, "sess3")
		assert.False(t, ok)
	})
}

func TestStore_SignupGate(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		gate := SignupGate{Mobile: "9876543210", VerifiedAt: time.Now().UTC().Truncate(time.Second)}
		require.NoError(t, store.SaveSignupGate(ctx, "sess1", gate))

		got, ok := store.SignupGate(ctx, "sess1")
		require.True(t, ok)
		assert.Equal(t, gate.Mobile, got.Mobile)
		assert.WithinDuration(t, gate.VerifiedAt, got.VerifiedAt, time.Second)
	})

	t.Run("absent gate means not verified", func(t *testing.T) {
		_, ok := store.SignupGate(ctx, "nope")
		assert.False(t, ok)
	})

	t.Run("gate without mobile is rejected", func(t *testing.T) {
		mr.Set("session:sess2:seller-signup", `{"mobile":"","verifiedAt":"2026-01-02T15:04:05Z"}`)

		_, ok := store.SignupGate(ctx, "sess2")
		assert.False(t, ok)
	})

	t.Run("clear ends the signup session", func(t *testing.T) {
		require.NoError(t, store.SaveSignupGate(ctx, "sess3", SignupGate{Mobile: "9876543210", VerifiedAt: time.Now()}))
		require.NoError(t, store.ClearSignupGate(ctx, "sess3"))

		_, ok := store.SignupGate(ctx, "sess3")
		assert.False(t, ok)
	})
}

func TestStore_ReturnURL(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveReturnURL(ctx, "sess1", "/machinery/pumps"))

	url, ok := store.ReturnURL(ctx, "sess1")
	require.True(t, ok)
	assert.Equal(t, "/machinery/pumps", url)

	// one-shot: a second read finds nothing
	_, ok = store.ReturnURL(ctx, "sess1")
	assert.False(t, ok)
}

func TestStore_TTL(t *testing.T) {
	store, mr := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveNearbyLocation(ctx, "sess1", GeoPreference{Lat: 1, Lon: 2, Name: "x", Distance: "5"}))

	mr.FastForward(2 * time.Hour)

	_, ok := store.NearbyLocation(ctx, "sess1")
	assert.False(t, ok)
}
