package filesystem

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"elevated-studio/core"

	"github.com/sirupsen/logrus"
)

// fsStore keeps one JSON file per snapshot key under a base directory.
type fsStore struct {
	basePath string
}

// NewStore creates a new filesystem-based store.
func NewStore(basePath string) *fsStore {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		log.Fatalf("failed to create base directory: %v", err)
	}
	return &fsStore{basePath: basePath}
}

func (s *fsStore) slotPath(key string) (string, error) {
	// Keys are fixed constants, but refuse anything path-like regardless.
	if filepath.Base(key) != key || key == "" || key == "." || key == ".." {
		return "", fmt.Errorf("invalid snapshot key %q", key)
	}
	return filepath.Join(s.basePath, key+".json"), nil
}

func (s *fsStore) Get(ctx context.Context, key string) ([]byte, error) {
	path, err := s.slotPath(key)
	if err != nil {
		return nil, err
	}
	log := logrus.WithFields(logrus.Fields{"key": key, "path": path})

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debug("Snapshot file does not exist")
			return nil, core.ErrKeyNotFound
		}
		log.WithError(err).Error("Failed to read snapshot file")
		return nil, err
	}
	return data, nil
}

func (s *fsStore) Put(ctx context.Context, key string, data []byte) error {
	path, err := s.slotPath(key)
	if err != nil {
		return err
	}
	log := logrus.WithFields(logrus.Fields{"key": key, "path": path, "data_length": len(data)})

	if err := os.WriteFile(path, data, 0644); err != nil {
		log.WithError(err).Error("Failed to write snapshot file")
		return err
	}
	log.Debug("Snapshot written")
	return nil
}

func (s *fsStore) Close() error {
	return nil
}
