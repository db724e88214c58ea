package cli

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: storage failures, initialization failures, or anything
	// unexpected.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, unknown flags or commands.
	ExitUsage = 2

	// ExitNotFound indicates a requested group or player does not exist.
	ExitNotFound = 3

	// ExitValidation indicates a validation error.
	// Use for: empty or overlong names, unknown team labels.
	ExitValidation = 5

	// ExitConflict indicates the group or player already exists.
	ExitConflict = 6
)
