package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Filter narrows a query inside the store's query layer. Predicates are
// composed onto the statement rather than materializing rows and filtering
// client-side.
type Filter func(tx *gorm.DB) *gorm.DB

// Where builds a Filter from a condition and its arguments.
func Where(query string, args ...any) Filter {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(query, args...)
	}
}

// Repository is the uniform persistence contract, one instance per entity
// type and unit of work. Reads execute immediately against the unit's
// session; Add/AddRange/Update/Remove only stage work, visible after the
// owning unit of work flushes via SaveChanges.
type Repository[T any, ID comparable] interface {
	// Get returns the entity or nil. Absence is not an error here.
	Get(ctx context.Context, id ID) (*T, error)
	GetAll(ctx context.Context) ([]T, error)
	GetByFilter(ctx context.Context, filter Filter) ([]T, error)
	// ContainsAny is an existence probe; it never loads matching rows.
	ContainsAny(ctx context.Context, filters ...Filter) (bool, error)
	Add(ctx context.Context, entity *T) error
	AddRange(ctx context.Context, entities []*T) error
	Update(ctx context.Context, entity *T) error
	Remove(ctx context.Context, entity *T) error
}
