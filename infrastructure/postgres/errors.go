package postgres

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isConflict reports whether the store rejected a write for reasons a caller
// may want to retry or surface as a conflict: unique or foreign-key
// violations and friends. GORM's error translation covers postgres and
// sqlite; the string check catches constraint classes it does not map.
func isConflict(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "constraint")
}
