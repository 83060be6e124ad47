// Package sqlite almacén de preferencias en un archivo SQLite local (driver pure Go de modernc).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/jhoicas/chipaflow-api/internal/domain/repository"
)

var _ repository.SettingsStore = (*SettingsStore)(nil)

// SettingsStore tabla clave/valor `settings`.
type SettingsStore struct {
	db   *sql.DB
	path string
}

// NewSettingsStore abre (o crea) el archivo y la tabla.
func NewSettingsStore(path string) (*SettingsStore, error) {
	if path == "" {
		path = "settings.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite admite un único escritor; una conexión evita SQLITE_BUSY entre goroutines.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create settings table: %w", err)
	}
	return &SettingsStore{db: db, path: path}, nil
}

// Get ok=false si la clave no existe.
func (s *SettingsStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("select setting %s: %w", key, err)
	}
	return value, true, nil
}

// Set upsert de la clave.
func (s *SettingsStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings(key, value, updated_at) VALUES(?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return fmt.Errorf("upsert setting %s: %w", key, err)
	}
	return nil
}

// Delete borra la clave; no falla si no existe.
func (s *SettingsStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete setting %s: %w", key, err)
	}
	return nil
}

// Path ruta del archivo.
func (s *SettingsStore) Path() string { return s.path }

// Close cierra la base.
func (s *SettingsStore) Close() error { return s.db.Close() }
