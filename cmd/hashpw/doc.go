// Command hashpw generates a bcrypt hash for a Game Night password.
//
// Usage:
//
//	hashpw [password]
//
// With an argument, the hash is printed immediately:
//
//	Bcrypt hash for '<password>': <hash>
//
// Without an argument on a terminal, the password is read twice through a
// hidden prompt and must match. Without an argument and without a
// terminal, a usage line is printed and the exit status is 1.
//
// The hash uses the same cost factor as resetadmin, so its output can be
// placed directly into the users table's password_hash column.
package main
