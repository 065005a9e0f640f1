package analysis

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Record is a completed search result cached against the Zobrist hash of
// the position it was computed for.
type Record struct {
	Depth     int       `json:"depth"`
	Score     int       `json:"score"`
	BestMove  string    `json:"best_move"` // UCI long algebraic, e.g. "e2e4"
	PV        []string  `json:"pv"`
	Nodes     uint64    `json:"nodes"`
	Timestamp time.Time `json:"timestamp"`
}

// Store wraps a BadgerDB database keyed by Zobrist hash.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the analysis cache at dir. If dir is
// empty, the platform default data directory is used.
func Open(dir string) (*Store, error) {
	if dir == "" {
		var err error
		dir, err = DefaultDBDir()
		if err != nil {
			return nil, fmt.Errorf("analysis: resolve default dir: %w", err)
		}
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("analysis: open %s: %w", dir, err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func hashKey(hash uint64) []byte {
	return []byte(strconv.FormatUint(hash, 16))
}

// Put caches a search result for the position with the given Zobrist hash.
// A newer record for the same hash overwrites an older one; a shallower
// record never overwrites a deeper one, since a deeper result subsumes it.
func (s *Store) Put(hash uint64, rec Record) error {
	rec.Timestamp = time.Now()

	existing, found, err := s.Get(hash)
	if err != nil {
		return fmt.Errorf("analysis: put: %w", err)
	}
	if found && existing.Depth > rec.Depth {
		return nil
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("analysis: marshal record: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(hashKey(hash), data)
	})
}

// Get retrieves the cached search result for a position's Zobrist hash.
// found is false when no record is cached for that hash.
func (s *Store) Get(hash uint64) (rec Record, found bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, getErr := txn.Get(hashKey(hash))
		if getErr == badger.ErrKeyNotFound {
			return nil
		}
		if getErr != nil {
			return getErr
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return Record{}, false, fmt.Errorf("analysis: get: %w", err)
	}
	return rec, found, nil
}

// Delete removes the cached record for a position's Zobrist hash, if any.
func (s *Store) Delete(hash uint64) error {
	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete(hashKey(hash))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		return err
	})
}

// Count returns the number of cached records.
func (s *Store) Count() (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}
