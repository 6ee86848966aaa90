// Package session remembers a visitor's theme and selected project across reloads.
// Visitors are identified by an opaque random cookie; nothing about the client is stored.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"github.com/mahdifarro/portfolio/internal/session/migrations"
	"github.com/mahdifarro/portfolio/internal/theme"
)

const table = "preferences"

// Preferences is what one visitor has chosen.
type Preferences struct {
	Theme       theme.Mode
	ProjectSlug string
	UpdatedAt   time.Time
}

// Store persists preferences in SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the SQLite file at path and applies migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &StoreError{Message: "storage path is required"}
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, &StoreError{Message: "open sqlite db", Cause: err}
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &StoreError{Message: "ping sqlite db", Cause: err}
	}
	if err := applyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, &StoreError{Message: "run migrations", Cause: err}
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the stored preferences for a session, or false when none exist.
func (s *Store) Get(ctx context.Context, sessionID string) (Preferences, bool, error) {
	query, args, err := sq.Select("theme", "project_slug", "updated_at").
		From(table).
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
	if err != nil {
		return Preferences{}, false, &StoreError{Message: "build select", Cause: err}
	}

	var (
		mode    string
		slug    string
		updated int64
	)
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&mode, &slug, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return Preferences{}, false, nil
	}
	if err != nil {
		return Preferences{}, false, &StoreError{Message: "load preferences", Cause: err}
	}

	parsed, err := theme.ParseMode(mode)
	if err != nil {
		parsed = theme.Default
	}
	return Preferences{
		Theme:       parsed,
		ProjectSlug: slug,
		UpdatedAt:   time.UnixMilli(updated).UTC(),
	}, true, nil
}

// SaveTheme records the visitor's theme, keeping any stored project.
func (s *Store) SaveTheme(ctx context.Context, sessionID string, mode theme.Mode) error {
	return s.upsert(ctx, sessionID, "theme", string(mode))
}

// SaveProject records the visitor's active project, keeping any stored theme.
func (s *Store) SaveProject(ctx context.Context, sessionID, slug string) error {
	return s.upsert(ctx, sessionID, "project_slug", slug)
}

func (s *Store) upsert(ctx context.Context, sessionID, column, value string) error {
	if sessionID == "" {
		return &StoreError{Message: "session id is required"}
	}
	query, args, err := sq.Insert(table).
		Columns("session_id", column, "updated_at").
		Values(sessionID, value, s.now().UTC().UnixMilli()).
		Suffix(fmt.Sprintf("ON CONFLICT(session_id) DO UPDATE SET %[1]s = excluded.%[1]s, updated_at = excluded.updated_at", column)).
		ToSql()
	if err != nil {
		return &StoreError{Message: "build upsert", Cause: err}
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return &StoreError{Message: fmt.Sprintf("save %s", column), Cause: err}
	}
	return nil
}

// Cleanup removes sessions untouched for longer than retention.
func (s *Store) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().Add(-retention).UTC().UnixMilli()
	query, args, err := sq.Delete(table).Where(sq.Lt{"updated_at": cutoff}).ToSql()
	if err != nil {
		return 0, &StoreError{Message: "build cleanup", Cause: err}
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, &StoreError{Message: "cleanup preferences", Cause: err}
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// RunCleanup calls Cleanup now and then every interval until ctx is done.
func (s *Store) RunCleanup(ctx context.Context, interval, retention time.Duration, logger *slog.Logger) {
	run := func() {
		n, err := s.Cleanup(ctx, retention)
		if err != nil {
			if ctx.Err() == nil {
				logger.Error("preference cleanup failed", "error", err)
			}
			return
		}
		if n > 0 {
			logger.Info("removed stale preferences", "count", n, "retention", retention)
		}
	}

	run()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			run()
		}
	}
}
