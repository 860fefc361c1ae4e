package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/autoinvest_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_StoreUnavailable(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("deposit failed: %w", apperrors.NewAppError(500, "failed to begin transaction", cause))

	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAppError_ClientCodesAreNotStoreFailures(t *testing.T) {
	err := apperrors.NewAppError(400, "invalid nextToken", errors.New("bad base64"))

	assert.NotErrorIs(t, err, apperrors.ErrStoreUnavailable)
}

func TestNewNotFoundError(t *testing.T) {
	err := apperrors.NewNotFoundError("transaction abc not found")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NotErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.Equal(t, "transaction abc not found: resource not found", err.Error())
}
