package accumulator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textileio/go-accumulator/blockstore"
)

func TestBagPeaksEmpty(t *testing.T) {
	root, err := BagPeaks(NewPeaks())
	require.NoError(t, err)
	assert.True(t, root.IsZero())
}

func TestBagPeaksSingle(t *testing.T) {
	peaks := NewPeaks()
	only := blockstore.NewRef([]byte("solo"))
	peaks.Append(only)

	root, err := BagPeaks(peaks)
	require.NoError(t, err)
	assert.Equal(t, only, root, "a single peak is promoted unchanged")
}

func TestBagPeaksFoldOrder(t *testing.T) {
	a := blockstore.NewRef([]byte("tallest"))
	b := blockstore.NewRef([]byte("middle"))
	c := blockstore.NewRef([]byte("shortest"))

	peaks := NewPeaks()
	for _, ref := range []blockstore.Ref{a, b, c} {
		peaks.Append(ref)
	}

	// fold right to left: the two shortest first, then the tallest on the
	// left of the running commitment
	bc, err := HashPair(b, c)
	require.NoError(t, err)
	want, err := HashPair(a, bc)
	require.NoError(t, err)

	root, err := BagPeaks(peaks)
	require.NoError(t, err)
	assert.Equal(t, want, root)
}

func TestBagPeaksNeverWrites(t *testing.T) {
	ctx := context.Background()
	store := blockstore.NewMemory()
	s, err := NewState(ctx, store)
	require.NoError(t, err)
	for i := 0; i < 11; i++ {
		_, err := Push(ctx, store, &s, []byte{byte(i)})
		require.NoError(t, err)
	}

	before := store.Len()
	for j := 0; j < 3; j++ {
		_, err := GetRoot(ctx, store, s)
		require.NoError(t, err)
	}
	assert.Equal(t, before, store.Len(), "bagging is a pure query")
}
