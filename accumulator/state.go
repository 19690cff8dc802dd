package accumulator

import (
	"context"
	"fmt"

	"github.com/textileio/go-accumulator/blockstore"
	"github.com/textileio/go-accumulator/mmr"
)

// State is the complete durable description of an accumulator: how many
// leaves it holds and where its peaks list lives. It only ever grows; no
// operation decreases LeafCount or removes a stored node.
type State struct {
	_ struct{} `cbor:",toarray"`

	// LeafCount is the number of values pushed so far.
	LeafCount uint64
	// Peaks is the content reference of the packed peaks list.
	Peaks blockstore.Ref
}

// NewState creates an empty accumulator, persisting its empty peaks list.
func NewState(ctx context.Context, store blockstore.Putter) (State, error) {
	handle, err := NewPeaks().Flush(ctx, store)
	if err != nil {
		return State{}, fmt.Errorf("creating empty peaks list: %w", err)
	}
	return State{LeafCount: 0, Peaks: handle}, nil
}

// PeakCount is the number of current peaks, one per set bit of the leaf
// count.
func (s State) PeakCount() uint32 {
	return mmr.PeakCount(s.LeafCount)
}

// EncodeState produces the canonical encoding of s, suitable for storing as
// a block in its own right.
func EncodeState(s State) ([]byte, error) {
	return codec.MarshalCBOR(s)
}

func DecodeState(data []byte) (State, error) {
	var s State
	if err := codec.UnmarshalInto(data, &s); err != nil {
		return State{}, fmt.Errorf("decoding accumulator state: %w", err)
	}
	return s, nil
}
