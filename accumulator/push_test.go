package accumulator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textileio/go-accumulator/blockstore"
)

func TestPushSimple(t *testing.T) {
	ctx := context.Background()
	store := blockstore.NewMemory()
	s, err := NewState(ctx, store)
	require.NoError(t, err)

	res, err := Push(ctx, store, &s, []byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), res.Index)
	assert.Equal(t, uint64(1), s.LeafCount)

	root, err := GetRoot(ctx, store, s)
	require.NoError(t, err)
	assert.Equal(t, res.Root, root)

	// with a single peak the root is the peak itself, no extra hashing
	peaks, err := GetPeaks(ctx, store, s)
	require.NoError(t, err)
	require.Len(t, peaks, 1)
	assert.Equal(t, peaks[0], root)
}

func TestPushPeakCounts(t *testing.T) {
	ctx := context.Background()
	store := blockstore.NewMemory()
	s, err := NewState(ctx, store)
	require.NoError(t, err)

	var root blockstore.Ref
	for i := uint64(1); i <= 11; i++ {
		res, err := Push(ctx, store, &s, []byte{byte(i)})
		require.NoError(t, err)
		require.Equal(t, i-1, res.Index)
		require.Equal(t, i, s.LeafCount)
		require.Equal(t, uint64(s.PeakCount()), uint64(len(mustPeaks(t, ctx, store, s))))
		root = res.Root
	}

	// 11 = 0b1011, three set bits
	assert.Equal(t, uint32(3), s.PeakCount())
	got, err := GetRoot(ctx, store, s)
	require.NoError(t, err)
	assert.Equal(t, root, got, "bagging the reloaded peaks list must reproduce the returned root")

	for i := uint64(12); i <= 31; i++ {
		_, err := Push(ctx, store, &s, []byte{byte(i)})
		require.NoError(t, err)
	}
	// 31 = 0b11111, five set bits
	assert.Equal(t, uint32(5), s.PeakCount())
}

func TestPushDeterministic(t *testing.T) {
	ctx := context.Background()

	storeA, storeB := blockstore.NewMemory(), blockstore.NewMemory()
	a, err := NewState(ctx, storeA)
	require.NoError(t, err)
	b, err := NewState(ctx, storeB)
	require.NoError(t, err)

	// two independent accumulators fed the same sequence agree at every
	// prefix length
	for i := 0; i < 20; i++ {
		value := []byte{byte(i), byte(i * 3)}
		resA, err := Push(ctx, storeA, &a, value)
		require.NoError(t, err)
		resB, err := Push(ctx, storeB, &b, value)
		require.NoError(t, err)

		require.Equal(t, resA.Root, resB.Root)
		require.Equal(t, resA.Index, resB.Index)
		require.Equal(t, a, b)
		require.Equal(t, mustPeaks(t, ctx, storeA, a), mustPeaks(t, ctx, storeB, b))
	}
}

// failingStore wraps a store, failing every Put after a threshold. It stands
// in for an I/O failure part way through a merge sequence.
type failingStore struct {
	blockstore.Store
	remaining int
}

func (f *failingStore) Put(ctx context.Context, data []byte) (blockstore.Ref, error) {
	if f.remaining <= 0 {
		return blockstore.Ref{}, assert.AnError
	}
	f.remaining--
	return f.Store.Put(ctx, data)
}

func TestPushMidMergeFailureLeavesStateIntact(t *testing.T) {
	ctx := context.Background()
	store := blockstore.NewMemory()
	s, err := NewState(ctx, store)
	require.NoError(t, err)

	// 7 leaves means the next push carries through three merges
	for i := 0; i < 7; i++ {
		_, err := Push(ctx, store, &s, []byte{byte(i)})
		require.NoError(t, err)
	}
	committed := s
	committedRoot, err := GetRoot(ctx, store, s)
	require.NoError(t, err)

	// allow the leaf write and the first merge, then fail
	failing := &failingStore{Store: store, remaining: 2}
	_, err = Push(ctx, failing, &s, []byte("doomed"))
	require.Error(t, err)

	assert.Equal(t, committed, s, "a failed push must not mutate the state")
	root, err := GetRoot(ctx, store, s)
	require.NoError(t, err)
	assert.Equal(t, committedRoot, root)

	// and the state remains pushable
	_, err = Push(ctx, store, &s, []byte("recovered"))
	assert.NoError(t, err)
	assert.Equal(t, uint64(8), s.LeafCount)
}

func mustPeaks(t *testing.T, ctx context.Context, store blockstore.Getter, s State) []blockstore.Ref {
	t.Helper()
	peaks, err := GetPeaks(ctx, store, s)
	require.NoError(t, err)
	return peaks
}
