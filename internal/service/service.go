// Package service orchestrates validation and persistence for each content
// entity. Services are stateless; every call stands alone.
package service

import (
	"errors"

	"gorm.io/gorm"

	"portfolio/internal/models"
)

// notFound translates the persistence layer's missing-record error into the
// API error taxonomy; other errors pass through unchanged.
func notFound(err error, resource string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError(resource, id)
	}
	return err
}
