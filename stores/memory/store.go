package memory

import (
	"context"
	"sync"

	"elevated-studio/core"

	"github.com/sirupsen/logrus"
)

// memStore keeps snapshot slots in a map. It is the default backend; data
// lives only as long as the process.
type memStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

// NewStore creates a new in-memory store.
func NewStore() *memStore {
	return &memStore{slots: make(map[string][]byte)}
}

func (s *memStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.slots[key]
	if !ok {
		return nil, core.ErrKeyNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *memStore) Put(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.slots[key] = stored

	logrus.WithFields(logrus.Fields{
		"key":         key,
		"data_length": len(data),
	}).Debug("Snapshot stored")
	return nil
}

func (s *memStore) Close() error {
	return nil
}
