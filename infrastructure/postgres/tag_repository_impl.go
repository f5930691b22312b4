package postgres

import (
	"context"
	"fmt"

	"todoapp/domain/models"
	"todoapp/domain/repositories"
)

type TagRepositoryImpl struct {
	*GenericRepository[models.Tag, int]
}

func NewTagRepository(u *unitOfWork) repositories.TagRepository {
	return &TagRepositoryImpl{
		GenericRepository: newGenericRepository[models.Tag, int](u, "tag"),
	}
}

func (r *TagRepositoryImpl) GetByTitle(ctx context.Context, title string) (*models.Tag, error) {
	if title == "" {
		return nil, fmt.Errorf("get tag by title: empty title: %w", repositories.ErrInvalidArgument)
	}

	var tag models.Tag
	res := r.u.conn(ctx).Limit(1).Find(&tag, "title = ?", title)
	if res.Error != nil {
		return nil, fmt.Errorf("get tag by title %q: %w", title, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &tag, nil
}
