package accumulator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textileio/go-accumulator/blockstore"
)

func TestPeaksFlushLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := blockstore.NewMemory()

	peaks := NewPeaks()
	refs := []blockstore.Ref{
		blockstore.NewRef([]byte("tall")),
		blockstore.NewRef([]byte("short")),
	}
	for _, ref := range refs {
		peaks.Append(ref)
	}

	handle, err := peaks.Flush(ctx, store)
	require.NoError(t, err)

	loaded, err := LoadPeaks(ctx, store, handle)
	require.NoError(t, err)
	assert.Equal(t, refs, loaded.Refs())
	assert.Equal(t, 2, loaded.Len())
}

func TestPeaksEmptyHandleStable(t *testing.T) {
	ctx := context.Background()
	store := blockstore.NewMemory()

	a, err := NewPeaks().Flush(ctx, store)
	require.NoError(t, err)
	b, err := NewPeaks().Flush(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	loaded, err := LoadPeaks(ctx, store, a)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Len())
}

func TestPeaksStacking(t *testing.T) {
	peaks := NewPeaks()
	a := blockstore.NewRef([]byte("a"))
	b := blockstore.NewRef([]byte("b"))
	peaks.Append(a)
	peaks.Append(b)

	assert.Equal(t, b, peaks.Pop())
	assert.Equal(t, a, peaks.Pop())
	assert.Equal(t, 0, peaks.Len())

	_, err := peaks.Get(0)
	assert.ErrorIs(t, err, ErrPeakRange)
}

func TestPeaksStagedUntilFlush(t *testing.T) {
	ctx := context.Background()
	store := blockstore.NewMemory()

	handle, err := NewPeaks().Flush(ctx, store)
	require.NoError(t, err)

	peaks, err := LoadPeaks(ctx, store, handle)
	require.NoError(t, err)
	peaks.Append(blockstore.NewRef([]byte("staged")))

	// the committed handle still resolves to the empty list
	committed, err := LoadPeaks(ctx, store, handle)
	require.NoError(t, err)
	assert.Equal(t, 0, committed.Len())
}

func TestLoadPeaksCorrupt(t *testing.T) {
	ctx := context.Background()
	store := blockstore.NewMemory()

	data, err := codec.MarshalCBOR(uint64(42))
	require.NoError(t, err)
	ref, err := store.Put(ctx, data)
	require.NoError(t, err)

	_, err = LoadPeaks(ctx, store, ref)
	assert.ErrorIs(t, err, ErrCorruptNode)
}
