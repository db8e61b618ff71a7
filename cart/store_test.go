package cart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	lines := []Line{
		{ProductID: "p1", Name: "Ashwagandha", Price: 100, OfferPrice: 80, Quantity: 2},
		{ProductID: "p2", Name: "Tulsi Drops", Price: 50, OfferPrice: 45, Quantity: 1},
	}
	require.NoError(t, store.Save("k", lines))

	got := store.Load("k")
	assert.Equal(t, lines, got, "round trip must preserve order and values")
}

func TestStoreMissingKeyIsEmpty(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, store.Load("never-saved"))
}

func TestStoreMalformedDataResetsToEmpty(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0644))

	assert.Empty(t, store.Load("bad"), "malformed cart data resets to empty, never errors")
}

func TestStoreDropsInvalidLines(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	raw := `[
		{"product_id":"p1","quantity":2},
		{"product_id":"","quantity":1},
		{"product_id":"p2","quantity":0},
		{"product_id":"p1","quantity":9}
	]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "k.json"), []byte(raw), 0644))

	got := store.Load("k")
	require.Len(t, got, 1, "empty ids, zero quantities and duplicate products are dropped")
	assert.Equal(t, "p1", got[0].ProductID)
	assert.Equal(t, 2, got[0].Quantity, "first occurrence wins for duplicates")
}

func TestStoreKeyIsSanitizedForDisk(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save("../../etc/passwd", []Line{{ProductID: "p", Quantity: 1}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].Name(), "/")
}
