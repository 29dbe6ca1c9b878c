package boltdb

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.etcd.io/bbolt"

	"github.com/Hellothereeee2312/Portal/core/portal"
)

var bucketName = []byte("portal")

// DB stores every blob as one key of a single bbolt bucket.
type DB struct {
	db *bbolt.DB
}

var _ portal.Backend = (*DB)(nil) // interface compliance check

func Open(path string) (*DB, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, errors.Wrap(err, "opening bolt file")
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "creating bucket")
	}

	return &DB{db: db}, nil
}

func (s *DB) Get(_ context.Context, key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return fmt.Errorf("bucket %s not found", bucketName)
		}
		v := b.Get([]byte(key))
		if v == nil {
			return portal.ErrKeyNotFound
		}
		// v is only valid for the life of the transaction
		out = make([]byte, len(v))
		copy(out, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *DB) Put(_ context.Context, key string, value []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketName)
		if err != nil {
			return err
		}
		return b.Put([]byte(key), value)
	})
}

func (s *DB) Delete(_ context.Context, key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		if b == nil {
			return fmt.Errorf("bucket %s not found", bucketName)
		}
		return b.Delete([]byte(key))
	})
}

func (s *DB) Close() error {
	return s.db.Close()
}
