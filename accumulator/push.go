package accumulator

import (
	"context"
	"fmt"

	"github.com/textileio/go-accumulator/blockstore"
	"github.com/textileio/go-accumulator/mmr"
)

// PushResult reports the outcome of a push.
type PushResult struct {
	// Root is the bagged root commitment after the value was pushed.
	Root blockstore.Ref
	// Index is the insertion index assigned to the value.
	Index uint64
}

// Push persists value as a new leaf and appends it to the accumulator,
// merging peaks as required. It returns the new root commitment and the
// index assigned to the value.
//
// All peaks list mutation is staged in memory and committed in one Flush;
// if any store operation fails, s is left unchanged and the previously
// committed state remains intact. Push is not internally synchronized, see
// the package comment for the single writer contract.
func Push[T any](ctx context.Context, store blockstore.Store, s *State, value T) (PushResult, error) {
	peaks, err := LoadPeaks(ctx, store, s.Peaks)
	if err != nil {
		return PushResult{}, err
	}

	data, err := codec.MarshalCBOR(value)
	if err != nil {
		return PushResult{}, fmt.Errorf("encoding leaf: %w", err)
	}
	leaf, err := store.Put(ctx, data)
	if err != nil {
		return PushResult{}, fmt.Errorf("persisting leaf: %w", err)
	}
	peaks.Append(leaf)

	// Adding a leaf is a binary counter increment: every trailing one bit of
	// the previous count is a carry, merging the two shortest peaks into one
	// a height above.
	merges := mmr.TrailingOnes(s.LeafCount)
	for n := uint64(0); n < merges; n++ {
		right := peaks.Pop()
		left := peaks.Pop()
		merged, err := HashWritePair(ctx, store, left, right)
		if err != nil {
			return PushResult{}, fmt.Errorf("merging peaks: %w", err)
		}
		peaks.Append(merged)
	}

	handle, err := peaks.Flush(ctx, store)
	if err != nil {
		return PushResult{}, fmt.Errorf("committing peaks list: %w", err)
	}

	s.Peaks = handle
	s.LeafCount++

	root, err := BagPeaks(peaks)
	if err != nil {
		return PushResult{}, err
	}
	return PushResult{Root: root, Index: s.LeafCount - 1}, nil
}
