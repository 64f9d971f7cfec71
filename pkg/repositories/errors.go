package repositories

import (
	"errors"
	"regexp"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/agencydesk/backoffice/pkg/apperrors"
)

// PostgreSQL error codes checked at the repository boundary.
const (
	pgUndefinedColumn = "42703"
	pgUndefinedTable  = "42P01"
	pgUniqueViolation = "23505"
)

var columnNamePattern = regexp.MustCompile(`column "([^"]+)"`)

// mapStoreError translates low-level store failures into the application
// error taxonomy. An undefined column or table means the deployed schema is
// behind the code - an administrative condition, reported as a distinguished
// SchemaError rather than the raw driver error.
func mapStoreError(err error, table string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUndefinedColumn:
			column := ""
			if m := columnNamePattern.FindStringSubmatch(pgErr.Message); m != nil {
				column = m[1]
			}
			return &apperrors.SchemaError{Table: table, Column: column, Err: err}
		case pgUndefinedTable:
			return &apperrors.SchemaError{Table: table, Err: err}
		case pgUniqueViolation:
			return apperrors.ErrConflict
		}
	}
	return err
}
