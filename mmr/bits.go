package mmr

import "math/bits"

func BitLength64(num uint64) uint64 { return uint64(BitLength(num)) }
func BitLength(num uint64) int {
	return bits.Len64(num)
}

// Log2Uint64 efficiently computes log base 2 of num
func Log2Uint64(num uint64) uint64 {
	return uint64(bits.Len64(num) - 1)
}

// TrailingOnes returns the number of contiguous one bits at the least
// significant end of num. When num is a leaf count, this is the number of
// peak merges required to append the next leaf.
func TrailingOnes(num uint64) uint64 {
	return uint64(bits.TrailingZeros64(^num))
}

// PeakCount returns the number of peaks in the MMR with leafCount leaves.
// There is exactly one peak per set bit of the leaf count.
func PeakCount(leafCount uint64) uint32 {
	return uint32(bits.OnesCount64(leafCount))
}
