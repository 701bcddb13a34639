// Package bookstore persists engine.Recommendation results keyed by
// Zobrist hash in a BadgerDB database, so repeated analysis of the same
// position across process runs can skip the search. Entirely outside the
// engine's search hot path: an optional collaborator around it, never
// consulted mid-search.
package bookstore

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/dustin/go-humanize"

	"github.com/jmkopper/taflgo/pkg/board"
	"github.com/jmkopper/taflgo/pkg/engine"
)

// Store wraps a BadgerDB database keyed by board.ZobristHash.
type Store struct {
	db *badger.DB
}

// Open opens (creating if absent) a book database at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("bookstore: open %v: %w", dir, err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func key(hash board.ZobristHash) []byte {
	return []byte(fmt.Sprintf("pos:%016x", uint64(hash)))
}

// Put stores rec under hash, overwriting any existing entry.
func (s *Store) Put(hash board.ZobristHash, rec engine.Recommendation) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("bookstore: marshal recommendation: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(hash), data)
	})
}

// Get returns the stored recommendation for hash, if present.
func (s *Store) Get(hash board.ZobristHash) (engine.Recommendation, bool, error) {
	var rec engine.Recommendation
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(hash))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return engine.Recommendation{}, false, fmt.Errorf("bookstore: get: %w", err)
	}
	return rec, found, nil
}

// Size reports the on-disk footprint of the database in a human-readable
// form, e.g. "4.2 MB".
func (s *Store) Size() string {
	lsm, vlog := s.db.Size()
	return humanize.Bytes(uint64(lsm + vlog))
}
