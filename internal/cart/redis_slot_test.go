package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedisSlot(t *testing.T) (*RedisSlot, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisSlot(client), mr
}

func TestRedisSlotRoundTrip(t *testing.T) {
	slot, _ := setupTestRedisSlot(t)

	items := []LineItem{
		{LineKey: "dp-1-50g", ProductID: "dp-1", Name: "Dehydrated Chicken Jerky", VariantLabel: "50g", UnitPrice: 9.99, Quantity: 2},
	}
	require.NoError(t, slot.Save(context.Background(), items))

	loaded, err := slot.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, items, loaded)
}

func TestRedisSlotMissWhenAbsent(t *testing.T) {
	slot, _ := setupTestRedisSlot(t)

	_, err := slot.Load(context.Background())
	assert.True(t, errors.Is(err, ErrSlotMiss))
}

func TestRedisSlotCorruptValue(t *testing.T) {
	slot, mr := setupTestRedisSlot(t)
	require.NoError(t, mr.Set("petz:cart", "{not json"))

	_, err := slot.Load(context.Background())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrSlotMiss))
}

func TestRedisSlotKeyHasNoTTL(t *testing.T) {
	slot, mr := setupTestRedisSlot(t)

	require.NoError(t, slot.Save(context.Background(), []LineItem{{LineKey: "dp-1-50g", Quantity: 1}}))
	assert.Zero(t, mr.TTL("petz:cart"))
}
