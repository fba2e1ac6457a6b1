package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"dog-walk-service/internal/domain/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// classify traduce errores del driver a la taxonomía de errs.
// Nunca incluye el texto de la query ni el DSN en el mensaje.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}

	// ya clasificado (p.ej. error de dominio devuelto dentro de una tx)
	if errors.Is(err, errs.ErrNotFound) || errors.Is(err, errs.ErrConflict) ||
		errors.Is(err, errs.ErrInvalidInput) || errors.Is(err, errs.ErrStoreUnavailable) {
		return err
	}

	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, context.Canceled)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23505":
			return fmt.Errorf("%w: %s violates %s", errs.ErrConflict, op, pgErr.ConstraintName)
		case pgErr.Code == "23503":
			return fmt.Errorf("%w: %s references a missing row (%s)", errs.ErrNotFound, op, pgErr.ConstraintName)
		case pgErr.Code == "23514" || pgErr.Code == "22P02":
			return fmt.Errorf("%w: %s violates %s", errs.ErrInvalidInput, op, pgErr.ConstraintName)
		case strings.HasPrefix(pgErr.Code, "08"), pgErr.Code == "53300", pgErr.Code == "57P01", pgErr.Code == "57P03":
			return fmt.Errorf("%w: %s (sqlstate %s)", errs.ErrStoreUnavailable, op, pgErr.Code)
		default:
			return fmt.Errorf("%s: store error (sqlstate %s)", op, pgErr.Code)
		}
	}

	var connErr *pgconn.ConnectError
	var netErr net.Error
	if errors.As(err, &connErr) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) ||
		pgconn.Timeout(err) ||
		errors.As(err, &netErr) {
		return fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, op)
	}

	return fmt.Errorf("%s: unexpected store error", op)
}
