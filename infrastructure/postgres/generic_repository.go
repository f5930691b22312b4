package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"todoapp/domain/repositories"
)

// GenericRepository is the uniform GORM implementation behind every entity
// repository. Reads run against the owning unit's current connection;
// writes are staged and only hit the store when the unit flushes.
type GenericRepository[T any, ID comparable] struct {
	u    *unitOfWork
	name string
}

func newGenericRepository[T any, ID comparable](u *unitOfWork, name string) *GenericRepository[T, ID] {
	return &GenericRepository[T, ID]{u: u, name: name}
}

// invalidID rejects malformed identifiers before any store access.
func invalidID(id any) bool {
	switch v := id.(type) {
	case int:
		return v <= 0
	case int64:
		return v <= 0
	case string:
		return v == ""
	}
	return false
}

func (r *GenericRepository[T, ID]) Get(ctx context.Context, id ID) (*T, error) {
	if invalidID(id) {
		return nil, fmt.Errorf("get %s %v: %w", r.name, id, repositories.ErrInvalidArgument)
	}

	var entity T
	res := r.u.conn(ctx).Limit(1).Find(&entity, clause.Eq{Column: clause.PrimaryColumn, Value: id})
	if res.Error != nil {
		return nil, fmt.Errorf("get %s %v: %w", r.name, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &entity, nil
}

func (r *GenericRepository[T, ID]) GetAll(ctx context.Context) ([]T, error) {
	var entities []T
	if err := r.u.conn(ctx).Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("get all %s: %w", r.name, err)
	}
	return entities, nil
}

func (r *GenericRepository[T, ID]) GetByFilter(ctx context.Context, filter repositories.Filter) ([]T, error) {
	if filter == nil {
		return nil, fmt.Errorf("get %s by filter: nil filter: %w", r.name, repositories.ErrInvalidArgument)
	}

	var entities []T
	if err := filter(r.u.conn(ctx).Model(new(T))).Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("get %s by filter: %w", r.name, err)
	}
	return entities, nil
}

func (r *GenericRepository[T, ID]) ContainsAny(ctx context.Context, filters ...repositories.Filter) (bool, error) {
	q := r.u.conn(ctx).Model(new(T)).Select("count(*) > 0")
	for _, f := range filters {
		if f == nil {
			return false, fmt.Errorf("contains any %s: nil filter: %w", r.name, repositories.ErrInvalidArgument)
		}
		q = f(q)
	}

	var exists bool
	if err := q.Scan(&exists).Error; err != nil {
		return false, fmt.Errorf("contains any %s: %w", r.name, err)
	}
	return exists, nil
}

func (r *GenericRepository[T, ID]) Add(ctx context.Context, entity *T) error {
	if entity == nil {
		return fmt.Errorf("add %s: nil entity: %w", r.name, repositories.ErrInvalidArgument)
	}

	r.u.stage(func(tx *gorm.DB) (int64, error) {
		res := tx.Create(entity)
		return res.RowsAffected, res.Error
	})
	return nil
}

func (r *GenericRepository[T, ID]) AddRange(ctx context.Context, entities []*T) error {
	if len(entities) == 0 {
		return nil
	}
	for _, e := range entities {
		if e == nil {
			return fmt.Errorf("add range %s: nil entity: %w", r.name, repositories.ErrInvalidArgument)
		}
	}

	r.u.stage(func(tx *gorm.DB) (int64, error) {
		res := tx.Create(entities)
		return res.RowsAffected, res.Error
	})
	return nil
}

// Update stages a full-row write of the entity. No concurrency stamp is
// compared: last write wins.
func (r *GenericRepository[T, ID]) Update(ctx context.Context, entity *T) error {
	if entity == nil {
		return fmt.Errorf("update %s: nil entity: %w", r.name, repositories.ErrInvalidArgument)
	}

	r.u.stage(func(tx *gorm.DB) (int64, error) {
		res := tx.Omit(clause.Associations).Save(entity)
		return res.RowsAffected, res.Error
	})
	return nil
}

// Remove stages a delete. Owned children go with it through the store's
// cascade rules.
func (r *GenericRepository[T, ID]) Remove(ctx context.Context, entity *T) error {
	if entity == nil {
		return fmt.Errorf("remove %s: nil entity: %w", r.name, repositories.ErrInvalidArgument)
	}

	r.u.stage(func(tx *gorm.DB) (int64, error) {
		res := tx.Delete(entity)
		return res.RowsAffected, res.Error
	})
	return nil
}
