package accumulator

import (
	"context"

	"github.com/textileio/go-accumulator/blockstore"
)

// GetRoot recomputes the bagged root commitment from the committed peaks
// list. O(peak count) and safe to run concurrently with other reads.
func GetRoot(ctx context.Context, store blockstore.Getter, s State) (blockstore.Ref, error) {
	peaks, err := LoadPeaks(ctx, store, s.Peaks)
	if err != nil {
		return blockstore.Ref{}, err
	}
	return BagPeaks(peaks)
}

// GetPeaks returns the committed peak references, tallest first.
func GetPeaks(ctx context.Context, store blockstore.Getter, s State) ([]blockstore.Ref, error) {
	peaks, err := LoadPeaks(ctx, store, s.Peaks)
	if err != nil {
		return nil, err
	}
	return peaks.Refs(), nil
}
