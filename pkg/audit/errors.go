package audit

import "errors"

var (
	// ErrStorageNotAvailable indicates the storage backend is unavailable.
	ErrStorageNotAvailable = errors.New("audit.storage_not_available")

	// ErrEventValidation indicates event validation failed.
	ErrEventValidation = errors.New("audit.event_validation")
)
