// Package sqldb adapts a database/sql handle to the types.Conn capability.
// MySQL family databases go through github.com/go-sql-driver/mysql and
// SQLite through modernc.org/sqlite.
package sqldb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/attrschema/pkg/types"
)

var _ types.Conn = (*DB)(nil)

// DB implements types.Conn on top of *sql.DB.
type DB struct {
	mu      sync.Mutex
	db      *sql.DB
	config  types.Config
	dialect types.Dialect
	runID   string
	owned   bool // Close closes db only when Open created it
	log     zerolog.Logger
}

// Open validates cfg, opens the database with the driver matching its
// dialect and pings it.
func Open(cfg types.Config, log zerolog.Logger) (*DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dialect := cfg.ParsedDialect()
	switch dialect {
	case types.DialectSQLite:
		if err := ensureSQLiteDir(cfg.DSN); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	default:
		if _, err := mysql.ParseDSN(cfg.DSN); err != nil {
			return nil, fmt.Errorf("%w: %v", types.ErrDSNInvalid, err)
		}
	}

	db, err := sql.Open(dialect.DriverName(), cfg.DSN)
	if err != nil {
		return nil, err
	}
	if dialect == types.DialectSQLite {
		// Each connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", dialect, err)
	}

	d := Wrap(db, cfg, log)
	d.owned = true
	return d, nil
}

// Wrap adapts an already open handle. Closing the returned DB leaves db open.
func Wrap(db *sql.DB, cfg types.Config, log zerolog.Logger) *DB {
	runID := generateRunID()
	dialect := cfg.ParsedDialect()
	return &DB{
		db:      db,
		config:  cfg,
		dialect: dialect,
		runID:   runID,
		log: log.With().
			Str("run_id", runID).
			Str("dialect", dialect.String()).
			Str("prefix", cfg.TablePrefix).
			Logger(),
	}
}

// TablePrefix implements types.Conn.
func (d *DB) TablePrefix() string { return d.config.TablePrefix }

// Dialect implements types.Conn. It reports the configured identifier
// unchanged so the ensurer performs its own resolution.
func (d *DB) Dialect() string { return d.config.Dialect }

// RunID identifies this adapter in log output.
func (d *DB) RunID() string { return d.runID }

// Exec runs one statement. Driver errors are returned unchanged.
func (d *DB) Exec(query string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return types.ErrConnClosed
	}

	start := time.Now()
	if _, err := d.db.Exec(query); err != nil {
		d.log.Error().Err(err).Str("stmt", summarize(query)).Msg("statement failed")
		return err
	}
	d.log.Debug().
		Str("stmt", summarize(query)).
		Dur("elapsed", time.Since(start)).
		Msg("statement executed")
	return nil
}

// Close releases the handle. Close is idempotent.
func (d *DB) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return nil
	}
	var err error
	if d.owned {
		err = d.db.Close()
	}
	d.db = nil
	return err
}

// ensureSQLiteDir creates the parent directory of a file DSN.
func ensureSQLiteDir(dsn string) error {
	if dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return nil
	}
	return os.MkdirAll(filepath.Dir(dsn), 0o755)
}

// summarize returns the first line of a statement for logging.
func summarize(query string) string {
	line, _, _ := strings.Cut(query, "\n")
	return strings.TrimSuffix(strings.TrimSpace(line), " (")
}

// generateRunID returns a UUID v7, falling back to v4.
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
