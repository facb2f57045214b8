package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos de error de Postgres que las capas superiores traducen a errores
// de dominio.
const pgUniqueViolation = "23505"

// isUniqueViolation reporta si el error proviene de un constraint UNIQUE
// (email de usuario, key de rol, par org/sku, aristas de membresía).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
