// Package exitcode defines exit codes for the CLI.
package exitcode

// Exit codes returned by every command.
const (
	// Success indicates successful completion, including no-op UI events.
	Success = 0

	// UserError indicates a user error (bad args, malformed id or handle).
	UserError = 1

	// AuthError indicates an auth/config error.
	AuthError = 2

	// BackendError indicates a storage or Google Tasks API failure.
	BackendError = 3
)
