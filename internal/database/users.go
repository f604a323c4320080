package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	apperrors "gamenight-admin/internal/errors"
)

// AdminUsername is the one account name this tool manages.
const AdminUsername = "admin"

// User represents a row of the Game Night users table.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AdminExists reports whether the admin row is present.
func (d *Database) AdminExists(ctx context.Context) (exists bool, err error) {
	start := time.Now()
	defer func() { recordQuery("admin_exists", start, err) }()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var count int
	err = d.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE username = ?", AdminUsername,
	).Scan(&count)
	if err != nil {
		return false, apperrors.StorageError("database.AdminExists", err)
	}
	return count > 0, nil
}

// SetAdminPassword stores passwordHash for the admin row, creating the row
// with is_admin set when it does not exist yet. Only password_hash changes
// on an existing row; id, username, is_admin, and created_at are preserved.
// The returned created flag is true when a new row was inserted.
func (d *Database) SetAdminPassword(ctx context.Context, passwordHash string) (created bool, err error) {
	start := time.Now()
	defer func() { recordQuery("set_admin_password", start, err) }()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return false, apperrors.StorageError("database.SetAdminPassword", fmt.Errorf("begin transaction: %w", err))
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			d.logger.Error("transaction rollback failed", zap.Error(rbErr))
		}
	}()

	var count int
	err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE username = ?", AdminUsername,
	).Scan(&count)
	if err != nil {
		return false, apperrors.StorageError("database.SetAdminPassword", err)
	}

	if count > 0 {
		_, err = tx.ExecContext(ctx,
			"UPDATE users SET password_hash = ? WHERE username = ?",
			passwordHash, AdminUsername,
		)
	} else {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO users (username, password_hash, is_admin) VALUES (?, ?, 1)",
			AdminUsername, passwordHash,
		)
		created = true
	}
	if err != nil {
		return false, apperrors.StorageError("database.SetAdminPassword", err)
	}

	if err = tx.Commit(); err != nil {
		return false, apperrors.StorageError("database.SetAdminPassword", fmt.Errorf("commit: %w", err))
	}

	d.logger.Debug("admin password stored",
		zap.Bool("created", created),
		zap.String("username", AdminUsername),
	)
	return created, nil
}

// GetUserByUsername retrieves a user row. The returned error wraps
// sql.ErrNoRows when no such user exists.
func (d *Database) GetUserByUsername(ctx context.Context, username string) (user *User, err error) {
	start := time.Now()
	defer func() { recordQuery("get_user", start, err) }()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var u User
	err = d.db.QueryRowContext(ctx,
		"SELECT id, username, password_hash, is_admin, created_at FROM users WHERE username = ?",
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		return nil, apperrors.StorageError("database.GetUserByUsername", err)
	}
	return &u, nil
}
