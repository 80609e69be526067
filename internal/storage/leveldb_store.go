package storage

import (
	"context"
	"errors"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	lvstorage "github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

var syncWrite = &opt.WriteOptions{Sync: true}

// LevelKV wraps a LevelDB connection.
type LevelKV struct {
	conn *leveldb.DB
}

// NewLevelKV opens (or creates) a LevelDB instance at the given path
func NewLevelKV(path string) (*LevelKV, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, err
	}
	return &LevelKV{conn: db}, nil
}

func NewInMemoryLevelKV() (*LevelKV, error) {
	db, err := leveldb.Open(lvstorage.NewMemStorage(), nil)
	if err != nil {
		return nil, err
	}
	return &LevelKV{conn: db}, nil
}

// Close safely closes the LevelDB connection
func (l *LevelKV) Close() error {
	return l.conn.Close()
}

func (l *LevelKV) Get(ctx context.Context, key []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, err := l.conn.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrNotFound
	}
	return v, err
}

func (l *LevelKV) Put(ctx context.Context, key, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return l.conn.Put(key, value, syncWrite)
}

func (l *LevelKV) Delete(ctx context.Context, key []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return l.conn.Delete(key, syncWrite)
}

func (l *LevelKV) Scan(ctx context.Context, prefix []byte, fn func(key, value []byte) error) error {
	iter := l.conn.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()
	for iter.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		k := append([]byte(nil), iter.Key()...)
		v := append([]byte(nil), iter.Value()...)
		if err := fn(k, v); err != nil {
			return err
		}
	}
	return iter.Error()
}

// Update runs inside a LevelDB transaction, which holds off every other
// writer until it commits or is discarded.
func (l *LevelKV) Update(ctx context.Context, key []byte, fn func(old []byte) ([]byte, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tr, err := l.conn.OpenTransaction()
	if err != nil {
		return err
	}
	defer tr.Discard()

	old, err := tr.Get(key, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		old, err = nil, nil
	}
	if err != nil {
		return err
	}
	next, err := fn(old)
	if err != nil {
		return err
	}
	switch {
	case next != nil:
		err = tr.Put(key, next, nil)
	case old != nil:
		err = tr.Delete(key, nil)
	}
	if err != nil {
		return err
	}
	return tr.Commit()
}
