package storage

import (
	"context"
	"errors"
	"path/filepath"

	badger "github.com/dgraph-io/badger/v4"
)

const maxConflictRetries = 8

// BadgerKV implements KV with Badger DB.
type BadgerKV struct {
	db *badger.DB
}

func NewBadgerKV(path string) (*BadgerKV, error) {
	opts := badger.DefaultOptions(filepath.Clean(path))
	opts.Logger = nil                         // badger logs are noisy next to zap
	opts = opts.WithValueLogFileSize(1 << 20) // smaller value log for local dev
	opts = opts.WithSyncWrites(true)          // votes must survive a crash
	return openBadger(opts)
}

// NewInMemoryBadgerKV is used by tests and throwaway nodes.
func NewInMemoryBadgerKV() (*BadgerKV, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return openBadger(opts)
}

func openBadger(opts badger.Options) (*BadgerKV, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerKV{db: db}, nil
}

func (s *BadgerKV) Close() error {
	return s.db.Close()
}

func (s *BadgerKV) Get(ctx context.Context, key []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *BadgerKV) Put(ctx context.Context, key, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

func (s *BadgerKV) Delete(ctx context.Context, key []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

func (s *BadgerKV) Scan(ctx context.Context, prefix []byte, fn func(key, value []byte) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			v, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if err := fn(item.KeyCopy(nil), v); err != nil {
				return err
			}
		}
		return nil
	})
}

// Update relies on Badger's optimistic transactions: a concurrent write to the
// same key aborts the commit with ErrConflict and the whole read-modify-write
// is run again.
func (s *BadgerKV) Update(ctx context.Context, key []byte, fn func(old []byte) ([]byte, error)) error {
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := s.db.Update(func(txn *badger.Txn) error {
			var old []byte
			item, err := txn.Get(key)
			switch {
			case errors.Is(err, badger.ErrKeyNotFound):
			case err != nil:
				return err
			default:
				if old, err = item.ValueCopy(nil); err != nil {
					return err
				}
			}
			next, err := fn(old)
			if err != nil {
				return err
			}
			if next == nil {
				if old == nil {
					return nil
				}
				return txn.Delete(key)
			}
			return txn.Set(key, next)
		})
		if errors.Is(err, badger.ErrConflict) && attempt < maxConflictRetries {
			continue
		}
		return err
	}
}
