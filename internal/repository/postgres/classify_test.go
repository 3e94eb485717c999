package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"

	"villa_cms/internal/storage"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"unique violation", &pgconn.PgError{Code: uniqueViolation, Message: "duplicate key"}, storage.ErrValidation},
		{"check violation", fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: checkViolation}), storage.ErrValidation},
		{"not null", &pgconn.PgError{Code: notNullViolation}, storage.ErrValidation},
		{"integer out of range", &pgconn.PgError{Code: numericValueOutOfRange, Message: "integer out of range"}, storage.ErrValidation},
		{"other sqlstate", &pgconn.PgError{Code: "40001"}, storage.ErrStorage},
		{"deadline", context.DeadlineExceeded, storage.ErrStorage},
		{"connection", errors.New("dial tcp: connection refused"), storage.ErrStorage},
		{"not found passes through", &storage.NotFoundError{Entity: "room", ID: 1}, storage.ErrNotFound},
		{"precondition passes through", &storage.PreconditionError{Op: "x", Reason: "y"}, storage.ErrPrecondition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify("postgres.test", tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.Contains(t, got.Error(), "postgres.test")
		})
	}

	assert.NoError(t, classify("op", nil))
}

func TestClassify_KeepsCause(t *testing.T) {
	err := classify("op", context.DeadlineExceeded)

	var se *storage.StorageError
	assert.ErrorAs(t, err, &se)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStrs(t *testing.T) {
	assert.Equal(t, []string{}, strs(nil))
	assert.Equal(t, []string{"a"}, strs([]string{"a"}))
}
