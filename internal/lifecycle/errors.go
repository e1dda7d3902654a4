package lifecycle

import "errors"

// Rejection reasons returned by validation and lifecycle operations.
// Callers match them with errors.Is; the wrapped message carries the
// detail to surface verbatim to the user. A rejected operation leaves
// the store untouched.
var (
	ErrEntityNotFound      = errors.New("entity not found")
	ErrResourceUnavailable = errors.New("resource unavailable")
	ErrLicenseExpired      = errors.New("driver license expired")
	ErrCapacityExceeded    = errors.New("cargo weight exceeds vehicle capacity")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrInvalidOdometer     = errors.New("odometer reading must exceed last recorded value")
	ErrDuplicatePlate      = errors.New("license plate already in use")
)
