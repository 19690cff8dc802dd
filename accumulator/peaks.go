package accumulator

import (
	"context"
	"fmt"

	"github.com/textileio/go-accumulator/blockstore"
)

// Peaks is the packed list of peak references, ordered tallest first. It is
// loaded from a single content addressed handle and mutated only in memory;
// nothing is published until Flush succeeds, so a failure part way through a
// merge sequence leaves the previously committed handle untouched.
//
// Like the rest of the low level engine, Peaks places a burden of knowledge
// on the caller: Pop on an empty list panics rather than guessing.
type Peaks struct {
	refs []blockstore.Ref
}

func NewPeaks() *Peaks {
	return &Peaks{}
}

// LoadPeaks fetches and decodes the peaks list stored under handle.
func LoadPeaks(ctx context.Context, store blockstore.Getter, handle blockstore.Ref) (*Peaks, error) {
	data, err := store.Get(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("loading peaks list %s: %w", handle, err)
	}
	var refs []blockstore.Ref
	if err := codec.UnmarshalInto(data, &refs); err != nil {
		return nil, fmt.Errorf("decoding peaks list %s: %w", handle, ErrCorruptNode)
	}
	return &Peaks{refs: refs}, nil
}

func (p *Peaks) Len() int {
	return len(p.refs)
}

func (p *Peaks) Get(i uint64) (blockstore.Ref, error) {
	if i >= uint64(len(p.refs)) {
		return blockstore.Ref{}, ErrPeakRange
	}
	return p.refs[i], nil
}

func (p *Peaks) Append(ref blockstore.Ref) {
	p.refs = append(p.refs, ref)
}

// Pop removes and returns the last (shortest) peak.
func (p *Peaks) Pop() blockstore.Ref {
	last := p.refs[len(p.refs)-1]
	p.refs = p.refs[:len(p.refs)-1]
	return last
}

// Refs returns a copy of the packed list, tallest peak first.
func (p *Peaks) Refs() []blockstore.Ref {
	return append([]blockstore.Ref{}, p.refs...)
}

// Flush persists the current list and returns its new handle. This is the
// only point at which peaks list mutations become observable.
func (p *Peaks) Flush(ctx context.Context, store blockstore.Putter) (blockstore.Ref, error) {
	// encode nil as an empty list so the empty handle is stable
	refs := p.refs
	if refs == nil {
		refs = []blockstore.Ref{}
	}
	data, err := codec.MarshalCBOR(refs)
	if err != nil {
		return blockstore.Ref{}, err
	}
	return store.Put(ctx, data)
}
