package repositories

import "errors"

// Error taxonomy shared by repositories and units of work. Callers match
// with errors.Is and decide the user-facing behavior themselves.
var (
	// ErrInvalidArgument: malformed input (id <= 0, nil filter, empty
	// required string). Raised before any store access.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound: a referenced entity is absent. Raised only by operations
	// that require existence; plain Get returns (nil, nil) instead.
	ErrNotFound = errors.New("entity not found")

	// ErrPersistenceConflict: the store rejected a write (constraint
	// violation, concurrent conflict). Raised from SaveChanges with the
	// transaction left open so the caller chooses rollback vs retry.
	ErrPersistenceConflict = errors.New("persistence conflict")
)
