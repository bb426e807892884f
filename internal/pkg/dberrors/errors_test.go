package dberrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/campusdb/registrar/internal/pkg/dberrors"
)

func TestIsConstraintViolation(t *testing.T) {
	for _, code := range []string{"23502", "23503", "23505", "23514"} {
		assert.True(t, dberrors.IsConstraintViolation(&pgconn.PgError{Code: code}), code)
	}

	assert.False(t, dberrors.IsConstraintViolation(&pgconn.PgError{Code: "42601"}))
	assert.False(t, dberrors.IsConstraintViolation(errors.New("plain error")))
	assert.False(t, dberrors.IsConstraintViolation(nil))
}

func TestIsConstraintViolation_Wrapped(t *testing.T) {
	err := fmt.Errorf("create student: %w", &pgconn.PgError{Code: "23505"})
	assert.True(t, dberrors.IsConstraintViolation(err))
	assert.True(t, dberrors.IsUniqueViolation(err))
}

func TestIsDuplicateConstraintError(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "students_email_key"}
	assert.True(t, dberrors.IsDuplicateConstraintError(err, "students_email_key"))
	assert.False(t, dberrors.IsDuplicateConstraintError(err, "courses_course_code_key"))
}

func TestIsConnectivityError(t *testing.T) {
	assert.True(t, dberrors.IsConnectivityError(&pgconn.PgError{Code: "08006"}))
	assert.True(t, dberrors.IsConnectivityError(&pgconn.PgError{Code: "08001"}))
	assert.False(t, dberrors.IsConnectivityError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, dberrors.IsConnectivityError(errors.New("plain error")))
}

func TestConstraintMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&pgconn.PgError{Code: "23502", ColumnName: "email"}, "missing required field: email"},
		{&pgconn.PgError{Code: "23503"}, "referenced record does not exist or is still referenced"},
		{&pgconn.PgError{Code: "23505"}, "a record with this value already exists"},
		{&pgconn.PgError{Code: "23514"}, "value out of allowed range"},
		{errors.New("plain error"), "constraint violation"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, dberrors.ConstraintMessage(tt.err))
	}
}
