package cli

import (
	"errors"

	"github.com/openmaf/maf/pkg/models"
)

// exitCodeFor maps runtime errors onto the fixed exit codes. Structured
// errors carry their own fields; this only decides the process outcome.
func exitCodeFor(err error) int {
	var illegal *models.IllegalTransitionError
	var leaseConflict *models.LeaseConflictError
	var fileLeased *models.FileLeasedError

	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, models.ErrInvalidArgument):
		return ExitInvalidArgs
	case errors.Is(err, models.ErrQuotaExceeded):
		return ExitQuota
	case errors.As(err, &leaseConflict), errors.As(err, &fileLeased):
		return ExitConflict
	case errors.As(err, &illegal),
		errors.Is(err, models.ErrNotFound),
		errors.Is(err, models.ErrExpired),
		errors.Is(err, models.ErrNotHeldByAgent),
		errors.Is(err, models.ErrUnknownChannel),
		errors.Is(err, models.ErrReadOnly),
		errors.Is(err, models.ErrTimeout):
		return ExitError
	default:
		return ExitError
	}
}
