package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/autoinvest_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "unique violation", err: &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "accounts_handle_key"}, wantErr: apperrors.ErrDuplicate},
		{name: "foreign key violation", err: &pgconn.PgError{Code: pgForeignKeyViolation}, wantErr: apperrors.ErrNotFound},
		{name: "check violation", err: &pgconn.PgError{Code: pgCheckViolation}, wantErr: apperrors.ErrConflict},
		{name: "numeric overflow", err: &pgconn.PgError{Code: pgNumericOverflow, Message: "numeric field overflow"}, wantErr: apperrors.ErrInvalidAmount},
		{name: "wrapped numeric overflow", err: fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgNumericOverflow}), wantErr: apperrors.ErrInvalidAmount},
		{name: "connection failure", err: errors.New("connection refused"), wantErr: apperrors.ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wrapError(tt.err, "failed to credit account %s", "acc-1")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "acc-1")
		})
	}
}

func TestWrapError_OverflowIsNotStoreFailure(t *testing.T) {
	err := wrapError(&pgconn.PgError{Code: pgNumericOverflow}, "failed to credit account %s", "acc-1")
	assert.False(t, errors.Is(err, apperrors.ErrStoreUnavailable))
}
