package sqlite

import (
	"context"
	"database/sql"
	"log"

	"elevated-studio/core"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

type sqliteStore struct {
	db *sql.DB
}

// NewStore creates a new SQLite-based store.
func NewStore(dataSourceName string) *sqliteStore {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		log.Fatalf("failed to open sqlite database: %v", err)
	}

	stmt := `CREATE TABLE IF NOT EXISTS snapshots (
		key        TEXT PRIMARY KEY,
		data       BLOB,
		updated_at DATETIME
	);`
	if _, err = db.Exec(stmt); err != nil {
		log.Fatalf("failed to create snapshots table: %v", err)
	}

	return &sqliteStore{db}
}

func (s *sqliteStore) Get(ctx context.Context, key string) ([]byte, error) {
	log := logrus.WithField("key", key)

	var data []byte
	err := s.db.QueryRowContext(ctx, "SELECT data FROM snapshots WHERE key = ?", key).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Debug("No snapshot row for key")
			return nil, core.ErrKeyNotFound
		}
		log.WithError(err).Error("Failed to read snapshot")
		return nil, err
	}
	return data, nil
}

func (s *sqliteStore) Put(ctx context.Context, key string, data []byte) error {
	log := logrus.WithFields(logrus.Fields{"key": key, "data_length": len(data)})

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		key, data)
	if err != nil {
		log.WithError(err).Error("Failed to write snapshot")
		return err
	}
	log.Debug("Snapshot written")
	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
