// Package logging provides structured logging for the admin tools.
//
// Diagnostic logs are written to standard error with zap's console
// encoding, keeping them separate from the operator-facing result
// messages the commands print to standard output.
//
// The log level is configured via the LOG_LEVEL environment variable
// (debug, info, warn, error; default info). Setting DEBUG=true forces
// the debug level regardless of LOG_LEVEL.
package logging
