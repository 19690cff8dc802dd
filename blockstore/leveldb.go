package blockstore

import (
	"context"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	leveldbstorage "github.com/syndtr/goleveldb/leveldb/storage"
)

// key prefixes keep the content addressed blocks and the mutable tag
// namespace disjoint within one database.
var (
	blockKeyPrefix = []byte("b/")
	tagKeyPrefix   = []byte("t/")
)

// LevelDB is a Store backed by a leveldb database. LevelDB handles its own
// synchronization, so a single LevelDB value is safe for concurrent readers
// alongside a single writer.
type LevelDB struct {
	db *leveldb.DB
}

// NewLevelDB opens or creates a database at path. An empty path opens a
// non-durable in-memory database.
func NewLevelDB(path string) (*LevelDB, error) {
	var db *leveldb.DB
	var err error
	if path == "" {
		db, err = leveldb.Open(leveldbstorage.NewMemStorage(), nil)
	} else {
		db, err = leveldb.OpenFile(path, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("opening blockstore at %q: %w", path, err)
	}
	return &LevelDB{db: db}, nil
}

func (s *LevelDB) Close() error {
	return s.db.Close()
}

func blockKey(ref Ref) []byte {
	return append(append([]byte{}, blockKeyPrefix...), ref[:]...)
}

func tagKey(name string) []byte {
	return append(append([]byte{}, tagKeyPrefix...), name...)
}

func (s *LevelDB) Put(_ context.Context, data []byte) (Ref, error) {
	ref := NewRef(data)
	key := blockKey(ref)
	ok, err := s.db.Has(key, nil)
	if err != nil {
		return Ref{}, fmt.Errorf("checking block %s: %w", ref, err)
	}
	if ok {
		return ref, nil
	}
	if err := s.db.Put(key, data, nil); err != nil {
		return Ref{}, fmt.Errorf("writing block %s: %w", ref, err)
	}
	return ref, nil
}

func (s *LevelDB) Get(_ context.Context, ref Ref) ([]byte, error) {
	data, err := s.db.Get(blockKey(ref), nil)
	if err == leveldb.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading block %s: %w", ref, err)
	}
	return data, nil
}

func (s *LevelDB) SetTag(_ context.Context, name string, ref Ref) error {
	if err := s.db.Put(tagKey(name), ref[:], nil); err != nil {
		return fmt.Errorf("writing tag %q: %w", name, err)
	}
	return nil
}

func (s *LevelDB) Tag(_ context.Context, name string) (Ref, error) {
	data, err := s.db.Get(tagKey(name), nil)
	if err == leveldb.ErrNotFound {
		return Ref{}, ErrNotFound
	}
	if err != nil {
		return Ref{}, fmt.Errorf("reading tag %q: %w", name, err)
	}
	if len(data) != RefSize {
		return Ref{}, fmt.Errorf("tag %q holds %d bytes, want %d", name, len(data), RefSize)
	}
	var ref Ref
	copy(ref[:], data)
	return ref, nil
}
