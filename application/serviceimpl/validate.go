package serviceimpl

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"todoapp/domain/repositories"
)

var validate = validator.New()

// validateRequest checks a DTO against its validate tags before any store
// access and folds failures into the invalid-argument taxonomy.
func validateRequest(req any) error {
	if req == nil {
		return fmt.Errorf("nil request: %w", repositories.ErrInvalidArgument)
	}
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%s: %w", err.Error(), repositories.ErrInvalidArgument)
	}
	return nil
}
