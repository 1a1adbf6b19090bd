package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_ErrorAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	err := NewInternalError(cause)
	assert.Equal(t, "Internal server error: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestNewMissingFieldsError(t *testing.T) {
	t.Parallel()

	err := NewMissingFieldsError([]string{"name", "email"})
	assert.Equal(t, "VALIDATION_ERROR", err.Code)
	assert.Equal(t, "Missing fields", err.Message)
	assert.Equal(t, []string{"name", "email"}, err.Fields)
}

func TestNewNotFoundError(t *testing.T) {
	t.Parallel()

	err := NewNotFoundError("Project", 7)
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, "Project with ID 7 not found", err.Message)
}
