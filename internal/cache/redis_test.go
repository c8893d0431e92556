package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadpress/internal/domain"
)

func setupTestRedis(t *testing.T) (*RedisPersister, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisPersister(client), mr
}

func sampleLines() []domain.CartLine {
	return []domain.CartLine{
		{
			ProductID:      "p1",
			ProductName:    "Classic Tee",
			ProductType:    domain.ProductApparel,
			VariantID:      "p1-black",
			Size:           "M",
			ColorCode:      "#000000",
			PriceMode:      domain.PriceModePK,
			Quantity:       2,
			UnitPriceCents: 199900,
		},
		{
			ProductID:      "p2",
			ProductName:    "Sketch Notebook",
			ProductType:    domain.ProductStationery,
			VariantID:      "p2-kraft",
			PageType:       "dotted",
			ColorCode:      "#c8a26a",
			PriceMode:      domain.PriceModeIntl,
			Quantity:       1,
			UnitPriceCents: 899,
		},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	persister, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, persister.Save(ctx, "s1", sampleLines()))

	got, err := persister.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, sampleLines(), got)
}

func TestLoadMissingKeyIsEmptyCart(t *testing.T) {
	persister, _ := setupTestRedis(t)

	got, err := persister.Load(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLoadCorruptPayload(t *testing.T) {
	persister, mr := setupTestRedis(t)
	require.NoError(t, mr.Set(cartKey("s1"), "{not json"))

	_, err := persister.Load(context.Background(), "s1")
	require.ErrorContains(t, err, "unmarshal cart")
}

func TestSaveSetsTTL(t *testing.T) {
	persister, mr := setupTestRedis(t)
	require.NoError(t, persister.Save(context.Background(), "s1", sampleLines()))

	assert.Equal(t, CartTTL, mr.TTL(cartKey("s1")))
}

func TestDelete(t *testing.T) {
	persister, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, persister.Save(ctx, "s1", sampleLines()))
	require.NoError(t, persister.Delete(ctx, "s1"))
	assert.False(t, mr.Exists(cartKey("s1")))

	// deleting a missing key is not an error
	require.NoError(t, persister.Delete(ctx, "s1"))
}

func TestCartKeyFormat(t *testing.T) {
	assert.Equal(t, "cart:abc", cartKey("abc"))
}
