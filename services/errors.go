package services

import (
	"errors"

	"github.com/kendall-kelly/ecommerce-api/apperrors"
	"github.com/kendall-kelly/ecommerce-api/repository"
)

// wrapRepoError converts a repository error into an application error.
// entity names the record for not-found messages, action describes what
// failed for internal errors.
func wrapRepoError(err error, entity, action string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.NotFound(entity + " not found")
	}
	return apperrors.Internal("Failed to "+action, err)
}
