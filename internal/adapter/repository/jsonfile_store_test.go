package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "mediazone/pkg/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "products.json"), "products", "Product")
}

func TestStoreCreatesDocumentOnFirstAccess(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "nested", "products.json"), "products", "Product")

	records, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, records)

	data, err := os.ReadFile(filepath.Join(dir, "nested", "products.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"products": [], "lastId": 0}`, string(data))
}

func TestStoreCreateAssignsSequentialIds(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Create(map[string]interface{}{"title": "Elden Ring"})
	require.NoError(t, err)
	second, err := store.Create(map[string]interface{}{"title": "Gaming Mouse"})
	require.NoError(t, err)

	assert.Equal(t, "1", first["id"])
	assert.Equal(t, "2", second["id"])
	assert.NotEmpty(t, first["createdAt"])
	assert.NotEmpty(t, first["updatedAt"])
}

func TestStoreNeverReusesDeletedIds(t *testing.T) {
	store := newTestStore(t)

	for _, title := range []string{"a", "b", "c"} {
		_, err := store.Create(map[string]interface{}{"title": title})
		require.NoError(t, err)
	}

	require.NoError(t, store.Delete("2"))

	fourth, err := store.Create(map[string]interface{}{"title": "d"})
	require.NoError(t, err)
	assert.Equal(t, "4", fourth["id"])

	records, err := store.List()
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestStoreUpdateMergesPatch(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Create(map[string]interface{}{"title": "MacBook Pro", "price": 1500000.0, "stock": 3.0})
	require.NoError(t, err)

	updated, err := store.Update(created["id"].(string), map[string]interface{}{"price": 1400000.0})
	require.NoError(t, err)

	assert.Equal(t, "MacBook Pro", updated["title"])
	assert.Equal(t, 1400000.0, updated["price"])
	assert.Equal(t, 3.0, updated["stock"])
}

func TestStoreUpdateUnknownIdLeavesFileUntouched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	store := NewStore(path, "products", "Product")

	_, err := store.Create(map[string]interface{}{"title": "PS5 Controller"})
	require.NoError(t, err)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = store.Update("999", map[string]interface{}{"title": "changed"})
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStoreDeleteUnknownIdReturnsNotFound(t *testing.T) {
	store := newTestStore(t)

	err := store.Delete("1")
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestStoreCreateThenGetRoundTrips(t *testing.T) {
	store := newTestStore(t)

	created, err := store.Create(map[string]interface{}{
		"title":       "Attack on Titan Vol. 1",
		"category":    "Anime",
		"price":       12000.0,
		"description": "manga",
	})
	require.NoError(t, err)

	fetched, err := store.Get(created["id"].(string))
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}
