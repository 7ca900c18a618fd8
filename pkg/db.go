package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgCodeUniqueViolation     = "23505"
	PgCodeForeignKeyViolation = "23503"
)

func IsNoRowsError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
