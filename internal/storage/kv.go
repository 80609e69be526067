package storage

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrProposalExists = errors.New("proposal already exists")
	ErrMemberInUse    = errors.New("member in use by roster")
)

// KV is the durable key-value engine underneath the proposal store and the
// circuit directory (kept minimal, allows swapping implementations).
//
// Update is an atomic read-modify-write of a single key: fn receives the
// current value (nil when absent) and returns the value to store, or nil to
// delete the key. fn may run more than once when the engine retries a
// conflicting transaction, so it must not have side effects.
type KV interface {
	Get(ctx context.Context, key []byte) ([]byte, error)
	Put(ctx context.Context, key, value []byte) error
	Delete(ctx context.Context, key []byte) error
	Scan(ctx context.Context, prefix []byte, fn func(key, value []byte) error) error
	Update(ctx context.Context, key []byte, fn func(old []byte) ([]byte, error)) error
	Close() error
}

const (
	EngineBadger  = "badger"
	EngineLevelDB = "leveldb"
)

// Open opens the named engine at path.
func Open(engine, path string) (KV, error) {
	switch engine {
	case EngineBadger, "":
		return NewBadgerKV(path)
	case EngineLevelDB:
		return NewLevelKV(path)
	default:
		return nil, fmt.Errorf("unknown storage engine %q", engine)
	}
}
