package usecase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mediazone/internal/domain/entity"
	"mediazone/internal/infrastructure/localstore"
)

func testProduct(id string, price float64) entity.Product {
	return entity.Product{ID: id, Title: "Product " + id, Category: "Games", Price: price}
}

func TestCartAddMergesQuantities(t *testing.T) {
	cart := NewCart(localstore.NewMemory())
	product := testProduct("1", 36000)

	cart.Add(product, 2)
	cart.Add(product, 3)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 5*36000.0, cart.Total())
	assert.Equal(t, 5, cart.Count())
}

func TestCartAddDefaultsQuantityToOne(t *testing.T) {
	cart := NewCart(localstore.NewMemory())

	cart.Add(testProduct("1", 100), 0)

	assert.Equal(t, 1, cart.Count())
}

func TestCartDecrementRemovesEntryAtZero(t *testing.T) {
	cart := NewCart(localstore.NewMemory())
	product := testProduct("1", 100)

	cart.Add(product, 1)
	cart.Decrement("1")

	assert.False(t, cart.Contains("1"))
	assert.Empty(t, cart.Items())
}

func TestCartDecrementLowersQuantity(t *testing.T) {
	cart := NewCart(localstore.NewMemory())

	cart.Add(testProduct("1", 100), 3)
	cart.Decrement("1")

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestCartSetQuantityZeroRemovesEntry(t *testing.T) {
	cart := NewCart(localstore.NewMemory())

	cart.Add(testProduct("1", 100), 2)
	cart.SetQuantity("1", 0)

	assert.False(t, cart.Contains("1"))
}

func TestCartClear(t *testing.T) {
	cart := NewCart(localstore.NewMemory())

	cart.Add(testProduct("1", 100), 2)
	cart.Add(testProduct("2", 200), 1)
	cart.Clear()

	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.Total())
	assert.Zero(t, cart.Count())
}

func TestCartPersistsEveryMutation(t *testing.T) {
	storage := localstore.NewMemory()
	cart := NewCart(storage)

	cart.Add(testProduct("1", 36000), 2)

	data, ok := storage.Get("mediazone-cart")
	require.True(t, ok)

	var stored []entity.CartItem
	require.NoError(t, json.Unmarshal(data, &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, 2, stored[0].Quantity)
}

func TestCartHydratesFromStorage(t *testing.T) {
	storage := localstore.NewMemory()

	first := NewCart(storage)
	first.Add(testProduct("1", 36000), 2)
	first.Add(testProduct("2", 12000), 1)

	second := NewCart(storage)
	assert.Equal(t, 3, second.Count())
	assert.Equal(t, 2*36000.0+12000.0, second.Total())
}

func TestCartToleratesCorruptStorage(t *testing.T) {
	storage := localstore.NewMemory()
	storage.Set("mediazone-cart", []byte("{not json"))

	cart := NewCart(storage)

	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.Count())
}
