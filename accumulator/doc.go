package accumulator

/*
Package accumulator implements an append-only authenticated accumulator, a
Merkle Mountain Range whose nodes live in a content addressed block store.

Every pushed value is persisted as a leaf block and appended to the packed
peaks list. When the previous leaf count has trailing one bits, pairs of
equal height peaks are merged, binary counter style, into pair nodes. The
whole structure at any point is captured by two words: the leaf count and the
content reference of the peaks list. Because everything reachable from a
published peaks handle is immutable, any captured (handle, count) snapshot
remains a complete, consistent historical view no matter how far the
accumulator grows after it.

The root commitment is produced by "bagging" the peaks: folding them
right-to-left with the pure pair hash. Bagging never writes, so it can be
used against arbitrary peak sets for verification.

Push performs an unsynchronized read-modify-write of the state and must be
serialized by the caller: exactly one logical writer per State. Reads
(GetRoot, GetPeaks, GetLeafAt) may run concurrently with each other and with
a push, each against its own snapshot. No operation retries internally; the
engine is intended for deterministic, replay sensitive call sites where
hidden retries would be unsound.

Pushed values are expected to be nonced by the caller. Identical leaf
content pushed at two indices shares one block, and nothing here prevents or
detects that.
*/
