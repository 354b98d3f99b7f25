// Package sqlite persists workflow progress in a SQLite file so a
// restarted daemon keeps refusing rewound cursors for settled steps.
package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Tora-Build/w3cash-sdk-sub001/model"
	"github.com/Tora-Build/w3cash-sdk-sub001/progress"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store implements progress.Store over SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (or creates) the progress database at path and applies
// bundled migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("progress path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrations fs: %w", err)
	}
	if err := applyMigrations(sqlDB, sub); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) Cursor(digest model.Digest) (uint32, bool, error) {
	var cursor int64
	err := s.sqlDB.QueryRow(
		"SELECT cursor FROM workflow_progress WHERE payload_digest = ?",
		digest.String(),
	).Scan(&cursor)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("query progress: %w", err)
	}
	return uint32(cursor), true, nil
}

func (s *Store) Record(digest model.Digest, cursor uint32) error {
	_, err := s.sqlDB.Exec(`
INSERT INTO workflow_progress (payload_digest, cursor, updated_at)
VALUES (?1, ?2, ?3)
ON CONFLICT(payload_digest) DO UPDATE
SET cursor = excluded.cursor, updated_at = excluded.updated_at
WHERE excluded.cursor > workflow_progress.cursor;
`, digest.String(), int64(cursor), time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("record progress: %w", err)
	}
	return nil
}

var _ progress.Store = (*Store)(nil)
