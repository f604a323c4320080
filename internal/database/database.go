package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite3 driver
	"go.uber.org/zap"

	apperrors "gamenight-admin/internal/errors"
	"gamenight-admin/internal/metrics"
)

// Default timeout for database operations
const defaultTimeout = 5 * time.Second

// Database manages the admin tools' access to the Game Night database file.
type Database struct {
	db     *sql.DB
	dbPath string
	logger *zap.Logger
}

// New opens (creating if absent) the SQLite database at dbPath and ensures
// the users table exists. Parent directories are created as needed.
func New(ctx context.Context, dbPath string, logger *zap.Logger) (*Database, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	start := time.Now()
	var err error
	defer func() { recordQuery("open", start, err) }()

	if err = os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, apperrors.StorageError("database.New", fmt.Errorf("create parent directory: %w", err))
	}

	// busy_timeout helps prevent "database is locked" errors when the
	// Game Night server holds the file open.
	connStr := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000", dbPath)

	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, apperrors.StorageError("database.New", fmt.Errorf("open database: %w", err))
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err = db.PingContext(pingCtx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("failed to close database after ping failure", zap.Error(closeErr))
		}
		return nil, apperrors.StorageError("database.New", fmt.Errorf("connect to database: %w", err))
	}

	// One connection is enough for a single-threaded administrative run.
	db.SetMaxOpenConns(1)

	d := &Database{
		db:     db,
		dbPath: dbPath,
		logger: logger,
	}

	if err = d.initialize(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("failed to close database after initialization failure", zap.Error(closeErr))
		}
		return nil, err
	}

	logger.Debug("database ready", zap.String("path", dbPath))
	return d, nil
}

// initialize issues the idempotent schema statement for the users table.
func (d *Database) initialize(ctx context.Context) error {
	start := time.Now()
	var err error
	defer func() { recordQuery("ensure_schema", start, err) }()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
	`

	if _, err = d.db.ExecContext(ctx, schema); err != nil {
		err = apperrors.StorageError("database.initialize", fmt.Errorf("ensure users table: %w", err))
		return err
	}
	return nil
}

// Path returns the filesystem path of the database file.
func (d *Database) Path() string {
	return d.dbPath
}

// Close closes the database connection.
func (d *Database) Close() error {
	return d.db.Close()
}

// userTableColumns returns the column names of the users table in
// declaration order.
func (d *Database) userTableColumns(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rows, err := d.db.QueryContext(ctx, "SELECT name FROM pragma_table_info('users') ORDER BY cid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		columns = append(columns, name)
	}
	return columns, rows.Err()
}

// recordQuery records database query metrics
func recordQuery(operation string, start time.Time, err error) {
	duration := time.Since(start).Seconds()
	status := "success"
	if err != nil {
		status = "error"
	}
	metrics.DBQueryTotal.WithLabelValues(operation, status).Inc()
	metrics.DBQueryDuration.WithLabelValues(operation).Observe(duration)
}
