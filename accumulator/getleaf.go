package accumulator

import (
	"context"
	"fmt"

	"github.com/textileio/go-accumulator/blockstore"
	"github.com/textileio/go-accumulator/mmr"
)

// GetLeafAt returns the value pushed at index, as observed through the
// snapshot s. Lookups are snapshot relative: the walk geometry depends on
// s.LeafCount, and a stale State simply answers for the accumulator as it
// was then.
//
// This is the one best effort entry point: an out of range index and any
// traversal failure both collapse to ok=false rather than an error. Only a
// failure to load the peaks list handle itself is surfaced.
func GetLeafAt[T any](
	ctx context.Context, store blockstore.Getter, s State, index uint64,
) (T, bool, error) {
	var zero T
	peaks, err := LoadPeaks(ctx, store, s.Peaks)
	if err != nil {
		return zero, false, err
	}
	value, err := leafAt[T](ctx, store, index, s.LeafCount, peaks)
	if err != nil {
		return zero, false, nil
	}
	return value, true, nil
}

// leafAt walks from the peak of the eigentree containing leafIndex down to
// the leaf, following the bits of the resolved path.
func leafAt[T any](
	ctx context.Context, store blockstore.Getter, leafIndex uint64, leafCount uint64, peaks *Peaks,
) (T, error) {
	var zero T

	path, peakIndex, err := mmr.EigenPath(leafIndex, leafCount)
	if err != nil {
		return zero, err
	}
	ref, err := peaks.Get(peakIndex)
	if err != nil {
		return zero, err
	}

	// A height zero eigentree has no interior nodes, the peak reference is
	// the leaf reference.
	if path == 1 {
		return decodeLeaf[T](ctx, store, ref)
	}

	left, right, err := loadPair(ctx, store, ref)
	if err != nil {
		return zero, err
	}
	// Walk the interior bits, most significant first, stopping short of the
	// final bit. Each bit selects a child to descend into.
	for pos := mmr.BitLength64(path) - 2; pos >= 1; pos-- {
		ref = left
		if (path>>pos)&1 == 1 {
			ref = right
		}
		left, right, err = loadPair(ctx, store, ref)
		if err != nil {
			return zero, err
		}
	}
	// The final bit selects the leaf itself.
	ref = left
	if path&1 == 1 {
		ref = right
	}
	return decodeLeaf[T](ctx, store, ref)
}

func decodeLeaf[T any](ctx context.Context, store blockstore.Getter, ref blockstore.Ref) (T, error) {
	var value T
	data, err := store.Get(ctx, ref)
	if err != nil {
		return value, err
	}
	if err := codec.UnmarshalInto(data, &value); err != nil {
		return value, fmt.Errorf("decoding leaf %s: %w", ref, ErrCorruptNode)
	}
	return value, nil
}
