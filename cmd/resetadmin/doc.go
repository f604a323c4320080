// Command resetadmin resets or creates the Game Night admin account's
// password hash in the application's SQLite database.
//
// Usage:
//
//	resetadmin [password]
//
// The single optional positional argument is the new plaintext password;
// it defaults to "admin" when absent. There are no flags or subcommands.
//
// Configuration:
//
// An optional .env file beside the executable may set DATABASE_URL in the
// form sqlite:<path>. The same variable in the process environment takes
// precedence over the file. Relative paths are resolved against the
// executable's directory. The default is sqlite:./game_night.db.
//
// Environment:
//
//	DATABASE_URL - Database location override (format sqlite:<path>)
//	LOG_LEVEL    - Diagnostic log level on stderr (default: info)
//
// Notes:
//
// The tool overwrites the admin password on every run without confirmation
// or authentication. That is deliberate: it is a recovery tool for an
// operator who already has filesystem access to the database, which is
// full control. The new plaintext password is echoed in the final login
// instructions for the same reason.
//
// Exit status is 0 on success and 1 on any error. Failures are reported on
// standard output with a message and a remediation hint specific to the
// kind of failure (configuration, storage, or hashing).
package main
