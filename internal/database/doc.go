// Package database provides SQLite storage operations for the admin tools.
//
// It owns exactly one table in the Game Night application's database, the
// users table, and exactly one row within it, the admin row. The schema
// statement is idempotent and safe to repeat against a live database.
//
// The database uses WAL mode with a busy timeout so an admin run can
// proceed while the Game Night server holds the file open.
package database
