// Package metrics provides Prometheus instrumentation for the admin tools.
//
// All metrics are prefixed with "game_night_admin_" to avoid naming
// collisions with the Game Night server's own metrics.
//
// # Metric Categories
//
// ## Database Metrics
//
// Monitor database query performance:
//   - DBQueryTotal: Counter of queries by operation and status
//   - DBQueryDuration: Histogram of query duration by operation
//
// ## Hashing Metrics
//
// Monitor bcrypt work:
//   - PasswordHashTotal: Counter of hash computations by status
//   - PasswordHashDuration: Histogram of hash computation duration
//
// # Recording Metrics
//
// Metrics are registered with the default Prometheus registry using
// promauto. Record them from other packages through the exported
// variables:
//
//	import "gamenight-admin/internal/metrics"
//
//	metrics.DBQueryTotal.WithLabelValues("set_admin_password", "success").Inc()
//	metrics.PasswordHashDuration.Observe(0.251)
//
// The tools are short-lived processes with no scrape endpoint; the
// instruments exist so the database and auth layers stay drop-in
// compatible with the server's dashboards if they are ever embedded.
package metrics
