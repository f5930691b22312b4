package repositories

import (
	"context"

	"todoapp/domain/models"
)

type TagRepository interface {
	Repository[models.Tag, int]

	// GetByTitle returns the tag with the given title or nil.
	GetByTitle(ctx context.Context, title string) (*models.Tag, error)
}
