// ABOUTME: SQLite storage handle with lazy, single-flight acquisition.
// ABOUTME: Uses modernc.org/sqlite (pure Go, no CGO required).
package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
	_ "modernc.org/sqlite"
)

// Handle owns the process-wide SQLite connection. The first Acquire opens the
// store, creates the schema, and seeds reference data; subsequent calls reuse
// the live connection. A dead connection is detected with a ping and reopened
// transparently. Concurrent cold-start callers share one in-flight open, so
// schema creation never races with itself.
type Handle struct {
	path string
	seed bool
	log  zerolog.Logger

	mu   sync.Mutex
	open singleflight.Group
	db   *sql.DB
}

// HandleOption configures a Handle.
type HandleOption func(*Handle)

// WithLogger attaches a logger for open/reopen and seeding events.
func WithLogger(log zerolog.Logger) HandleOption {
	return func(h *Handle) { h.log = log }
}

// WithoutSeed skips reference-data seeding after schema creation. Schema
// creation itself always runs.
func WithoutSeed() HandleOption {
	return func(h *Handle) { h.seed = false }
}

// NewHandle creates a Handle for the database at path. Nothing is opened
// until the first Acquire.
func NewHandle(path string, opts ...HandleOption) *Handle {
	h := &Handle{
		path: path,
		seed: true,
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "liftlog")
}

// DefaultDBPath returns the default database path following XDG spec.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), "liftlog.db")
}

// Acquire returns the live database connection, opening it on first use and
// reopening it if the previous connection died. Any schema or seeding failure
// is returned to the caller; the handle is left closed in that case.
func (h *Handle) Acquire() (*sql.DB, error) {
	h.mu.Lock()
	db := h.db
	h.mu.Unlock()

	if db != nil && db.Ping() == nil {
		return db, nil
	}

	v, err, _ := h.open.Do("acquire", func() (any, error) {
		h.mu.Lock()
		defer h.mu.Unlock()

		// A concurrent caller may have finished reopening while we waited.
		if h.db != nil {
			if h.db.Ping() == nil {
				return h.db, nil
			}
			h.log.Warn().Str("path", h.path).Msg("storage handle unresponsive, reopening")
			_ = h.db.Close()
			h.db = nil
		}

		db, err := h.openStore()
		if err != nil {
			return nil, err
		}
		h.db = db
		return db, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*sql.DB), nil
}

// Release closes and clears the connection. Safe to call when already closed.
func (h *Handle) Release() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.db == nil {
		return nil
	}
	err := h.db.Close()
	h.db = nil
	if err != nil {
		return storageErrorf("close database", err)
	}
	return nil
}

// openStore opens the database file, applies pragmas, and guarantees schema
// and seed data are present. Called with h.mu held.
func (h *Handle) openStore() (*sql.DB, error) {
	dir := filepath.Dir(h.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, storageErrorf("create data directory", err)
	}

	db, err := sql.Open("sqlite", h.path)
	if err != nil {
		return nil, storageErrorf("open database", err)
	}

	if err := os.Chmod(h.path, 0600); err != nil && !os.IsNotExist(err) {
		_ = db.Close()
		return nil, storageErrorf("set database permissions", err)
	}

	if err := configurePragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, storageErrorf("initialize schema", err)
	}

	if h.seed {
		if err := seedReferenceData(db, h.log); err != nil {
			_ = db.Close()
			return nil, storageErrorf("seed reference data", err)
		}
	}

	h.log.Debug().Str("path", h.path).Msg("storage handle opened")
	return db, nil
}

// configurePragmas sets up SQLite for mobile-style single-writer use.
func configurePragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return storageErrorf("execute "+pragma, err)
		}
	}
	return nil
}
