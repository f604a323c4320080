package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
)

// adminRowCount counts rows with the admin username, bypassing the public API.
func adminRowCount(t *testing.T, db *Database) int {
	t.Helper()

	var count int
	err := db.db.QueryRow("SELECT COUNT(*) FROM users WHERE username = ?", AdminUsername).Scan(&count)
	if err != nil {
		t.Fatalf("failed to count admin rows: %v", err)
	}
	return count
}

func TestAdminExists_EmptyDatabase(t *testing.T) {
	db, _ := setupTestDB(t)

	exists, err := db.AdminExists(context.Background())
	if err != nil {
		t.Fatalf("AdminExists() error = %v", err)
	}
	if exists {
		t.Error("AdminExists() = true on a fresh database")
	}
}

func TestSetAdminPassword_CreatesRow(t *testing.T) {
	db, _ := setupTestDB(t)
	ctx := context.Background()

	created, err := db.SetAdminPassword(ctx, "first-hash")
	if err != nil {
		t.Fatalf("SetAdminPassword() error = %v", err)
	}
	if !created {
		t.Error("created = false, want true for a fresh database")
	}

	exists, err := db.AdminExists(ctx)
	if err != nil {
		t.Fatalf("AdminExists() error = %v", err)
	}
	if !exists {
		t.Error("AdminExists() = false after SetAdminPassword()")
	}

	user, err := db.GetUserByUsername(ctx, AdminUsername)
	if err != nil {
		t.Fatalf("GetUserByUsername() error = %v", err)
	}
	if user.Username != AdminUsername {
		t.Errorf("Username = %q, want %q", user.Username, AdminUsername)
	}
	if user.PasswordHash != "first-hash" {
		t.Errorf("PasswordHash = %q, want %q", user.PasswordHash, "first-hash")
	}
	if !user.IsAdmin {
		t.Error("IsAdmin = false, want true")
	}
	if user.ID == 0 {
		t.Error("ID should be auto-assigned")
	}
	if user.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set at row creation")
	}
}

func TestSetAdminPassword_UpdatesExistingRow(t *testing.T) {
	db, _ := setupTestDB(t)
	ctx := context.Background()

	created, err := db.SetAdminPassword(ctx, "first-hash")
	if err != nil {
		t.Fatalf("first SetAdminPassword() error = %v", err)
	}
	if !created {
		t.Fatal("first run should create the row")
	}

	before, err := db.GetUserByUsername(ctx, AdminUsername)
	if err != nil {
		t.Fatalf("GetUserByUsername() error = %v", err)
	}

	created, err = db.SetAdminPassword(ctx, "second-hash")
	if err != nil {
		t.Fatalf("second SetAdminPassword() error = %v", err)
	}
	if created {
		t.Error("second run should update, not create")
	}

	after, err := db.GetUserByUsername(ctx, AdminUsername)
	if err != nil {
		t.Fatalf("GetUserByUsername() error = %v", err)
	}

	if after.PasswordHash != "second-hash" {
		t.Errorf("PasswordHash = %q, want %q", after.PasswordHash, "second-hash")
	}
	// Only the hash may change.
	if after.ID != before.ID {
		t.Errorf("ID changed from %d to %d", before.ID, after.ID)
	}
	if !after.IsAdmin {
		t.Error("IsAdmin flag was lost on update")
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("CreatedAt changed from %v to %v", before.CreatedAt, after.CreatedAt)
	}
}

func TestSetAdminPassword_ExactlyOneAdminRow(t *testing.T) {
	db, _ := setupTestDB(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := db.SetAdminPassword(ctx, "hash"); err != nil {
			t.Fatalf("run %d: SetAdminPassword() error = %v", i+1, err)
		}
	}

	if count := adminRowCount(t, db); count != 1 {
		t.Errorf("admin row count = %d, want 1", count)
	}
}

func TestSetAdminPassword_LeavesOtherUsersAlone(t *testing.T) {
	db, _ := setupTestDB(t)
	ctx := context.Background()

	_, err := db.db.Exec(
		"INSERT INTO users (username, password_hash, is_admin) VALUES (?, ?, 0)",
		"alice", "alice-hash",
	)
	if err != nil {
		t.Fatalf("failed to insert fixture user: %v", err)
	}

	if _, err := db.SetAdminPassword(ctx, "admin-hash"); err != nil {
		t.Fatalf("SetAdminPassword() error = %v", err)
	}

	alice, err := db.GetUserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetUserByUsername(alice) error = %v", err)
	}
	if alice.PasswordHash != "alice-hash" {
		t.Errorf("alice's PasswordHash = %q, want %q", alice.PasswordHash, "alice-hash")
	}
	if alice.IsAdmin {
		t.Error("alice's IsAdmin flag should be untouched")
	}
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	db, _ := setupTestDB(t)

	_, err := db.GetUserByUsername(context.Background(), "nobody")
	if err == nil {
		t.Fatal("GetUserByUsername() should fail for a missing user")
	}
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("error should wrap sql.ErrNoRows, got %v", err)
	}
}
