package accumulator

import (
	"github.com/textileio/go-accumulator/blockstore"
)

// BagPeaks combines the current peaks into the single root commitment. The
// fold runs right to left, starting from the two shortest peaks, so the
// tallest peak is hashed in last.
//
// Bagging is a pure query: it never writes to the store, which allows it to
// be evaluated against arbitrary peak sets for verification. The empty
// accumulator bags to the zero reference, which no stored block can have.
// A single peak is promoted to the root unchanged.
func BagPeaks(peaks *Peaks) (blockstore.Ref, error) {
	n := peaks.Len()
	if n == 0 {
		return blockstore.Ref{}, nil
	}
	if n == 1 {
		return peaks.refs[0], nil
	}
	root, err := HashPair(peaks.refs[n-2], peaks.refs[n-1])
	if err != nil {
		return blockstore.Ref{}, err
	}
	for i := 2; i < n; i++ {
		root, err = HashPair(peaks.refs[n-1-i], root)
		if err != nil {
			return blockstore.Ref{}, err
		}
	}
	return root, nil
}
