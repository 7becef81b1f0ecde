// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, empty text, unknown task).
	UserError = 1

	// ConfigError indicates a missing or invalid API URL or config file.
	ConfigError = 2

	// BackendError indicates a backend/API/network error.
	BackendError = 3
)
