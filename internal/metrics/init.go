package metrics

// DBOperations lists the label values the database layer records,
// mirrored by InitializeMetrics and the integration tests.
var DBOperations = []string{
	"open",
	"ensure_schema",
	"admin_exists",
	"set_admin_password",
	"get_user",
}

// InitializeMetrics pre-populates all expected label combinations so that
// every series exists from the first observation. Call once at startup.
func InitializeMetrics() {
	statuses := []string{"success", "error"}

	for _, op := range DBOperations {
		for _, status := range statuses {
			DBQueryTotal.WithLabelValues(op, status)
		}
		DBQueryDuration.WithLabelValues(op)
	}

	for _, status := range statuses {
		PasswordHashTotal.WithLabelValues(status)
	}
}
