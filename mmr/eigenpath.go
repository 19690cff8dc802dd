package mmr

import (
	"errors"
	"math/bits"
)

var ErrLeafRange = errors.New("leaf index out of range for the given leaf count")

// EigenPath locates the leaf at leafIndex within an MMR of leafCount leaves.
// It returns the walk path through the eigentree containing the leaf, and the
// index in the packed peaks list (tallest peak first) of that eigentree's
// peak.
//
// The path is read most significant bit first. The top bit is a sentinel
// marking the height of the eigentree; each bit below it selects a child, 0
// for left and 1 for right, ending with the bit that selects the leaf
// itself. A path of exactly 1 means the eigentree has height zero and the
// peak reference is the leaf reference.
//
// If leafIndex is not less than leafCount the result is ErrLeafRange.
func EigenPath(leafIndex uint64, leafCount uint64) (uint64, uint64, error) {
	if leafIndex >= leafCount {
		return 0, 0, ErrLeafRange
	}

	// XOR turns matching bits into zeros. The first divergence between the
	// leaf index and the leaf count, reading from the top, is the height at
	// which the leaf's eigentree sits: everything above it is forest shape
	// common to both.
	diff := leafIndex ^ leafCount
	height := Log2Uint64(diff)
	size := uint64(1) << height
	mask := size - 1

	// One peak per set bit of the count. The set bits of the count below the
	// eigentree height belong to shorter peaks packed after ours.
	totalPeaks := uint64(bits.OnesCount64(leafCount))
	lowerPeaks := uint64(bits.OnesCount64(leafCount & mask))
	peakIndex := totalPeaks - lowerPeaks - 1

	// The offset within the eigentree, with the sentinel bit set at the
	// eigentree height.
	localPath := (leafIndex & mask) | size

	return localPath, peakIndex, nil
}
