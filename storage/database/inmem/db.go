package inmemdb

import (
	"context"
	"sync"

	"github.com/Hellothereeee2312/Portal/core/portal"
)

type (
	// DB keeps every blob in a map. Contents live as long as the process.
	DB struct {
		kv *kvTable
	}

	kvTable struct {
		sync.RWMutex
		table map[string][]byte
	}
)

var _ portal.Backend = (*DB)(nil) // interface compliance check

func Open() (*DB, error) {
	db := &DB{
		kv: &kvTable{table: make(map[string][]byte)},
	}
	return db, nil
}

func (db *DB) Get(_ context.Context, key string) ([]byte, error) {
	db.kv.RLock()
	defer db.kv.RUnlock()

	val, ok := db.kv.table[key]
	if !ok {
		return nil, portal.ErrKeyNotFound
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (db *DB) Put(_ context.Context, key string, value []byte) error {
	db.kv.Lock()
	defer db.kv.Unlock()

	val := make([]byte, len(value))
	copy(val, value)
	db.kv.table[key] = val
	return nil
}

func (db *DB) Delete(_ context.Context, key string) error {
	db.kv.Lock()
	defer db.kv.Unlock()
	delete(db.kv.table, key)
	return nil
}

func (db *DB) Close() error { return nil }

// Keys lists the stored keys, in no particular order.
func (db *DB) Keys() []string {
	db.kv.RLock()
	defer db.kv.RUnlock()

	keys := make([]string, 0, len(db.kv.table))
	for k := range db.kv.table {
		keys = append(keys, k)
	}
	return keys
}
