package cli

import (
	"errors"

	"github.com/thenoetrevino/turmas/internal/database"
	"github.com/thenoetrevino/turmas/internal/models"
)

// Error codes that are not domain error kinds
const (
	CodeInitialization     = "INITIALIZATION_ERROR"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	CodeInternal           = "INTERNAL_ERROR"
)

// GenericFailureMessage is shown for every failure that is not a domain error
const GenericFailureMessage = "something went wrong, please try again"

// CommandError is returned by commands after the failure has been reported
// to the user; it only carries the exit code back to the root command.
type CommandError struct {
	Code int
	Err  error
}

func (e *CommandError) Error() string {
	return e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Classification is what the user sees for an error
type Classification struct {
	Code       string
	Message    string
	Suggestion string
	ExitCode   int
	// Unexpected failures are logged; domain errors are not.
	Unexpected bool
}

// Classify maps an error to an error code, a user-facing message and an
// exit code. Domain errors are shown verbatim; everything else is generic.
func Classify(err error) Classification {
	if domainErr, ok := models.AsDomainError(err); ok {
		c := Classification{
			Code:    string(domainErr.Kind),
			Message: domainErr.Error(),
		}
		switch domainErr.Kind {
		case models.KindGroupNotFound:
			c.ExitCode = ExitNotFound
			c.Suggestion = "List groups with: turmas group list"
		case models.KindPlayerNotFound:
			c.ExitCode = ExitNotFound
			c.Suggestion = "List players with: turmas player list --group <name>"
		case models.KindDuplicateGroup, models.KindDuplicatePlayer:
			c.ExitCode = ExitConflict
		case models.KindInvalidTeam:
			c.ExitCode = ExitValidation
			c.Suggestion = "Use --team A or --team B"
		default:
			c.ExitCode = ExitValidation
		}
		return c
	}

	switch {
	case errors.Is(err, ErrInitialization):
		return Classification{
			Code:       CodeInitialization,
			Message:    err.Error(),
			Suggestion: "Check ~/.config/turmas/config.yaml and the TURMAS_* environment variables",
			ExitCode:   ExitError,
			Unexpected: true,
		}
	case errors.Is(err, database.ErrStorageUnavailable):
		return Classification{
			Code:       CodeStorageUnavailable,
			Message:    GenericFailureMessage,
			ExitCode:   ExitError,
			Unexpected: true,
		}
	default:
		return Classification{
			Code:       CodeInternal,
			Message:    GenericFailureMessage,
			ExitCode:   ExitError,
			Unexpected: true,
		}
	}
}

// ExitCode returns the process exit code for the error Execute returned.
// Errors that never went through a command (cobra flag and argument
// errors) are usage errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code
	}
	return ExitUsage
}
