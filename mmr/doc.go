package mmr

/*
Package mmr provides the pure integer derivations for a peaks-list Merkle
Mountain Range. Nothing in this package performs I/O; every function is a
total function of unsigned 64 bit inputs.

An MMR over n leaves is a forest of perfect binary trees ("eigentrees") whose
heights mirror the set bits of n. For n = 11 = 0b1011 the forest is

	3         .
	        /   \
	2      /     \
	      /       \
	1    /         \     .
	    / \        / \   / \
	0  0 . . . . . 7  8 9   10

one eigentree of 8 leaves (bit 3), one of 2 leaves (bit 1) and one of 1 leaf
(bit 0), kept in a packed peaks list ordered from the tallest peak (most
significant bit) to the shortest. Because the forest shape is fully
determined by n alone, all navigation reduces to bit arithmetic:

  - appending a leaf is a binary counter increment. Each trailing one bit of
    the previous count is a carry that merges two equal-height peaks into
    one a height above (TrailingOnes).
  - the eigentree holding leaf i, and the walk from that eigentree's peak
    down to the leaf, fall out of i XOR n and a couple of masked popcounts
    (EigenPath).

Callers must use unsigned arithmetic throughout. The derivations rely on the
behaviour of ^x and x&(size-1) over uint64; a signed interpretation corrupts
the trailing ones count.
*/
