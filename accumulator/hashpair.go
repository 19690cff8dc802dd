package accumulator

import (
	"context"
	"fmt"

	"github.com/textileio/go-accumulator/blockstore"
)

// encodePair produces the canonical encoding of a pair node: a two element
// array of the child references. Leaf indices are deliberately not mixed in,
// incoming values are expected to be nonced already.
func encodePair(left blockstore.Ref, right blockstore.Ref) ([]byte, error) {
	if left.IsZero() || right.IsZero() {
		return nil, ErrPairMissingChild
	}
	return codec.MarshalCBOR([2]blockstore.Ref{left, right})
}

// HashPair returns the content reference the pair node for (left, right)
// would be stored under, without writing it. For all valid inputs
// HashPair(l, r) equals the reference returned by HashWritePair(l, r).
func HashPair(left blockstore.Ref, right blockstore.Ref) (blockstore.Ref, error) {
	data, err := encodePair(left, right)
	if err != nil {
		return blockstore.Ref{}, err
	}
	return blockstore.NewRef(data), nil
}

// HashWritePair persists the pair node for (left, right) and returns its
// content reference.
func HashWritePair(
	ctx context.Context, store blockstore.Putter, left blockstore.Ref, right blockstore.Ref,
) (blockstore.Ref, error) {
	data, err := encodePair(left, right)
	if err != nil {
		return blockstore.Ref{}, err
	}
	return store.Put(ctx, data)
}

// loadPair fetches ref and decodes it as a pair node. A block that exists
// but does not decode as exactly two references is reported as
// ErrCorruptNode, distinct from plain absence.
func loadPair(
	ctx context.Context, store blockstore.Getter, ref blockstore.Ref,
) (blockstore.Ref, blockstore.Ref, error) {
	data, err := store.Get(ctx, ref)
	if err != nil {
		return blockstore.Ref{}, blockstore.Ref{}, err
	}
	var pair [2]blockstore.Ref
	if err := codec.UnmarshalInto(data, &pair); err != nil {
		return blockstore.Ref{}, blockstore.Ref{}, fmt.Errorf("decoding pair node %s: %w", ref, ErrCorruptNode)
	}
	return pair[0], pair[1], nil
}
