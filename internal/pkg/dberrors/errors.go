package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes the handlers care about. Integrity violations map
// to a 400 for the client; connection-class failures map to a 500.
const (
	codeNotNullViolation    = "23502"
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

// IsUniqueViolation reports whether err is a PostgreSQL unique violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

// IsDuplicateConstraintError reports whether err is a unique violation on a
// specific named constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation && pgErr.ConstraintName == constraintName
}

// IsForeignKeyViolation reports whether err is a PostgreSQL foreign key
// violation, i.e. a write referenced a row that does not exist or a delete
// would orphan dependent rows.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}

// IsCheckViolation reports whether err is a PostgreSQL check constraint
// violation (out-of-range credits, grade values, enum columns).
func IsCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeCheckViolation
}

// IsConstraintViolation reports whether err is any integrity violation the
// store rejects a write for: not-null, foreign key, unique, or check.
func IsConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case codeNotNullViolation, codeForeignKeyViolation, codeUniqueViolation, codeCheckViolation:
		return true
	}
	return false
}

// IsConnectivityError reports whether err indicates the store could not be
// reached at all (SQLSTATE class 08, connection exceptions).
func IsConnectivityError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08"
	}
	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr)
}

// ConstraintMessage translates an integrity violation into a stable,
// client-safe message. The raw PgError text is for the server log only.
func ConstraintMessage(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "constraint violation"
	}
	switch pgErr.Code {
	case codeNotNullViolation:
		return "missing required field: " + pgErr.ColumnName
	case codeForeignKeyViolation:
		return "referenced record does not exist or is still referenced"
	case codeUniqueViolation:
		return "a record with this value already exists"
	case codeCheckViolation:
		return "value out of allowed range"
	default:
		return "constraint violation"
	}
}
