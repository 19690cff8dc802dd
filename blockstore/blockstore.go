// Package blockstore defines the content addressed storage contract the
// accumulator engine is written against, a map backed implementation for
// tests and embedding, and a leveldb backed implementation for durable use.
//
// Stores are strictly append only: blocks are immutable once written and
// there is no delete. Put is idempotent, re-putting identical bytes returns
// the same reference and performs no new write.
package blockstore

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("blockstore: block not found")

type Getter interface {
	// Get resolves a reference to the block bytes it addresses, or
	// ErrNotFound.
	Get(ctx context.Context, ref Ref) ([]byte, error)
}

type Putter interface {
	// Put writes a block and returns its content reference. The reference
	// is a pure function of the bytes, see NewRef.
	Put(ctx context.Context, data []byte) (Ref, error)
}

type Store interface {
	Getter
	Putter
}

// TagStore extends a store with a small mutable namespace of named refs.
// Tags sit outside the content addressed contract; they exist so a caller
// can keep a durable head pointer next to the blocks it addresses.
type TagStore interface {
	Store
	SetTag(ctx context.Context, name string, ref Ref) error
	// Tag resolves a named ref, or ErrNotFound if the tag was never set.
	Tag(ctx context.Context, name string) (Ref, error)
}
