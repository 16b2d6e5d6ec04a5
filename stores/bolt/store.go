package bolt

import (
	"context"
	"log"

	"elevated-studio/core"

	"github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"
)

const snapshotBucket = "snapshots"

type boltStore struct {
	db *bolt.DB
}

// NewStore creates a new bbolt-based store backed by a single file.
func NewStore(path string) *boltStore {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		log.Fatalf("failed to open bbolt database: %v", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(snapshotBucket))
		return err
	})
	if err != nil {
		db.Close()
		log.Fatalf("failed to create snapshot bucket: %v", err)
	}

	return &boltStore{db: db}
}

func (s *boltStore) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		stored := tx.Bucket([]byte(snapshotBucket)).Get([]byte(key))
		if stored == nil {
			return core.ErrKeyNotFound
		}
		// The slice is only valid inside the transaction.
		data = make([]byte, len(stored))
		copy(data, stored)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *boltStore) Put(ctx context.Context, key string, data []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(snapshotBucket)).Put([]byte(key), data)
	})
	if err != nil {
		logrus.WithError(err).WithField("key", key).Error("Failed to write snapshot")
		return err
	}
	logrus.WithFields(logrus.Fields{
		"key":         key,
		"data_length": len(data),
	}).Debug("Snapshot written")
	return nil
}

func (s *boltStore) Close() error {
	return s.db.Close()
}
