// README: Translation of Postgres error codes into the shared error taxonomy.
package infra

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"velo/internal/types"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// StoreError maps uniqueness and foreign-key violations onto
// types.ErrConstraint so handlers can distinguish them from plain store
// failures. Other errors pass through unchanged.
func StoreError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation, codeForeignKeyViolation:
			return fmt.Errorf("%s: %w", pgErr.Message, types.ErrConstraint)
		}
	}
	return err
}
